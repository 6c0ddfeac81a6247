package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/altwise-pvt-ltd/qms-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/ports/driven"
)

// metaSeededKey is the store_meta key marking the one-time seed as done.
const metaSeededKey = "documents_seeded"

// Store is the SQLite-backed local record store. It owns its lifecycle:
// construction runs migrations and the one-time document seeding.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.qms/data/qms.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".qms", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "qms.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	if err := s.EnsureSeeded(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding documents: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DocumentStore returns a DocumentStore interface backed by this store.
func (s *Store) DocumentStore() driven.DocumentStore {
	return &documentStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// EnsureSeeded populates the document register from the seed list exactly
// once per store. The guard is a persisted flag, not table emptiness, so
// an explicitly emptied register stays empty on reopen. Safe to call any
// number of times.
func (s *Store) EnsureSeeded(ctx context.Context) error {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM store_meta WHERE key = ?", metaSeededKey).Scan(&value)
	switch {
	case err == nil:
		return nil // already seeded
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("reading seed flag: %w", err)
	}

	docs, err := seedDocumentList()
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i := range docs {
		if err := insertDocumentTx(ctx, tx, &docs[i]); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO store_meta (key, value) VALUES (?, ?)", metaSeededKey, "1"); err != nil {
		return fmt.Errorf("writing seed flag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}

// ==================== Document Store ====================

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// Insert stores a new document.
func (s *documentStore) Insert(ctx context.Context, doc *domain.Document) error {
	if doc.ID == "" {
		return domain.ErrInvalidInput
	}

	var exists int
	err := s.store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE id = ?", doc.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking document identity: %w", err)
	}
	if exists > 0 {
		return domain.ErrAlreadyExists
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO documents (id, category, sub_category, department, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Category, doc.SubCategory, doc.Department, doc.Status, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	return nil
}

// InsertBatch stores several documents atomically.
func (s *documentStore) InsertBatch(ctx context.Context, docs []domain.Document) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i := range docs {
		if err := insertDocumentTx(ctx, tx, &docs[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// insertDocumentTx inserts one document within a transaction.
func insertDocumentTx(ctx context.Context, tx *sql.Tx, doc *domain.Document) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO documents (id, category, sub_category, department, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Category, doc.SubCategory, doc.Department, doc.Status, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting document %s: %w", doc.ID, err)
	}
	return nil
}

// Get retrieves a document by ID.
func (s *documentStore) Get(ctx context.Context, id string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, category, sub_category, department, status, created_at
		FROM documents WHERE id = ?
	`, id)

	var doc domain.Document
	if err := row.Scan(&doc.ID, &doc.Category, &doc.SubCategory,
		&doc.Department, &doc.Status, &doc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}
	return &doc, nil
}

// List returns documents matching the filter, newest first.
func (s *documentStore) List(ctx context.Context, filter driven.DocumentFilter) ([]domain.Document, error) {
	query := `
		SELECT id, category, sub_category, department, status, created_at
		FROM documents`

	var clauses []string
	var args []any
	addClause := func(column, value string) {
		if value != "" {
			clauses = append(clauses, column+" = ?")
			args = append(args, value)
		}
	}
	addClause("category", filter.Category)
	addClause("sub_category", filter.SubCategory)
	addClause("department", filter.Department)
	addClause("status", filter.Status)
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document //nolint:prealloc // size unknown from query
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.ID, &doc.Category, &doc.SubCategory,
			&doc.Department, &doc.Status, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return docs, nil
}

// Update modifies an existing document. created_at is deliberately left
// out of the SET clause: the creation timestamp is immutable.
func (s *documentStore) Update(ctx context.Context, doc *domain.Document) error {
	res, err := s.store.db.ExecContext(ctx, `
		UPDATE documents SET
			category = ?,
			sub_category = ?,
			department = ?,
			status = ?
		WHERE id = ?
	`, doc.Category, doc.SubCategory, doc.Department, doc.Status, doc.ID)
	if err != nil {
		return fmt.Errorf("updating document: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a document by ID.
func (s *documentStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
