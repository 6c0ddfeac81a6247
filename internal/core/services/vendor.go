package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/ports/driven"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/ports/driving"
	"github.com/altwise-pvt-ltd/qms-cli/internal/logger"
)

// Ensure VendorService implements the interface.
var _ driving.VendorService = (*VendorService)(nil)

// seqKeyCreate sequences create requests, which have no identity yet.
const seqKeyCreate = "new"

// seqKeyList sequences list loads.
const seqKeyList = "list"

// VendorService owns the in-memory vendor list, the selection and the view
// state, and mediates every read and write against the remote service.
//
// Remote responses are applied under a per-identity sequence guard: each
// outgoing request takes the next sequence number for its record, and a
// response is discarded if a newer request for the same record was issued
// while it was in flight. This keeps a slow earlier response from
// overwriting a faster later one.
type VendorService struct {
	api driven.VendorAPI

	mu         sync.Mutex
	vendors    []domain.Vendor
	selectedID string
	view       driving.View
	loading    bool
	lastErr    error
	seq        map[string]uint64
}

// NewVendorService creates a vendor service backed by the remote API.
func NewVendorService(api driven.VendorAPI) *VendorService {
	return &VendorService{
		api:  api,
		view: driving.ViewList,
		seq:  make(map[string]uint64),
	}
}

// Load replaces the in-memory list from the remote service. An empty
// filter loads all vendors. On failure the previous list is kept and the
// error recorded for display.
func (s *VendorService) Load(ctx context.Context, filter domain.VendorType) error {
	seq := s.issueSeq(seqKeyList)

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var (
		vendors []domain.Vendor
		err     error
	)
	if filter == "" {
		vendors, err = s.api.List(ctx)
	} else {
		vendors, err = s.api.ListByType(ctx, filter)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq[seqKeyList] != seq {
		logger.Debug("discarding stale vendor list response (seq %d)", seq)
		return domain.ErrSuperseded
	}
	s.loading = false

	if err != nil {
		logger.Warn("vendor list load failed: %v", err)
		s.lastErr = err
		return err
	}

	s.vendors = vendors
	s.lastErr = nil
	logger.Debug("loaded %d vendors", len(vendors))
	return nil
}

// Vendors returns a copy of the current in-memory vendor list.
func (s *VendorService) Vendors() []domain.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Vendor, len(s.vendors))
	copy(out, s.vendors)
	return out
}

// Selected returns the currently selected vendor, or nil.
func (s *VendorService) Selected() *domain.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return nil
	}
	if v, ok := s.findLocked(s.selectedID); ok {
		out := v
		return &out
	}
	return nil
}

// View returns the active view.
func (s *VendorService) View() driving.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Loading reports whether a load is in flight.
func (s *VendorService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the most recent remote failure.
func (s *VendorService) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// BeginAdd transitions to the add view with no selection.
func (s *VendorService) BeginAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
	s.view = driving.ViewAdd
}

// BeginEdit selects a vendor and transitions to the edit view.
func (s *VendorService) BeginEdit(id string) error {
	return s.selectInto(id, driving.ViewEdit)
}

// BeginView selects a vendor and transitions to the detail view.
func (s *VendorService) BeginView(id string) error {
	return s.selectInto(id, driving.ViewDetail)
}

func (s *VendorService) selectInto(id string, view driving.View) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.findLocked(id); !ok {
		return fmt.Errorf("vendor %s: %w", id, domain.ErrNotFound)
	}
	s.selectedID = id
	s.view = view
	return nil
}

// Cancel returns to the list view and clears the selection.
func (s *VendorService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = ""
	s.view = driving.ViewList
}

// Save validates the form and writes it remotely: update when a vendor is
// selected for editing, create otherwise. Validation always runs before
// the write; an invalid form never reaches the wire.
func (s *VendorService) Save(ctx context.Context, form domain.Vendor) (*domain.Vendor, error) {
	if result := domain.ValidateVendor(form); !result.Valid {
		return nil, &domain.ValidationError{Result: result}
	}

	s.mu.Lock()
	updating := s.view == driving.ViewEdit && s.selectedID != ""
	if updating {
		form.ID = s.selectedID
	}
	s.mu.Unlock()

	key := seqKeyCreate
	if updating {
		key = form.ID
	}
	seq := s.issueSeq(key)

	var (
		saved *domain.Vendor
		err   error
	)
	if updating {
		saved, err = s.api.Update(ctx, form)
	} else {
		saved, err = s.api.Create(ctx, form)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq[key] != seq {
		logger.Debug("discarding stale save response for %s (seq %d)", key, seq)
		return nil, domain.ErrSuperseded
	}

	if err != nil {
		// Failed saves keep the form open with the error recorded.
		logger.Warn("vendor save failed: %v", err)
		s.lastErr = err
		return nil, err
	}

	if updating {
		s.replaceLocked(*saved)
	} else {
		s.vendors = append([]domain.Vendor{*saved}, s.vendors...)
	}
	s.selectedID = ""
	s.view = driving.ViewList
	s.lastErr = nil
	return saved, nil
}

// Delete removes a vendor after explicit confirmation. On failure the
// list entry stays in place.
func (s *VendorService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrDeleteNotConfirmed
	}

	seq := s.issueSeq(id)
	err := s.api.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq[id] != seq {
		logger.Debug("discarding stale delete response for %s (seq %d)", id, seq)
		return domain.ErrSuperseded
	}

	if err != nil {
		logger.Warn("vendor delete failed: %v", err)
		s.lastErr = err
		return err
	}

	for i := range s.vendors {
		if s.vendors[i].ID == id {
			s.vendors = append(s.vendors[:i], s.vendors[i+1:]...)
			break
		}
	}
	if s.selectedID == id {
		s.selectedID = ""
		s.view = driving.ViewList
	}
	s.lastErr = nil
	return nil
}

// Score sets one evaluation criterion for a vendor, recomputes the
// evaluation and persists it remotely. The vendor is taken from the
// in-memory list, or fetched when not loaded.
func (s *VendorService) Score(
	ctx context.Context, id string, criterion domain.Criterion, value int,
) (*domain.Vendor, error) {
	s.mu.Lock()
	vendor, ok := s.findLocked(id)
	s.mu.Unlock()

	if !ok {
		remote, err := s.api.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		vendor = *remote
	}

	evaluation, err := domain.ScoreCriterion(criterion, value, vendor.Evaluation)
	if err != nil {
		return nil, err
	}
	vendor.Evaluation = evaluation

	seq := s.issueSeq(id)
	saved, err := s.api.Update(ctx, vendor)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq[id] != seq {
		logger.Debug("discarding stale score response for %s (seq %d)", id, seq)
		return nil, domain.ErrSuperseded
	}

	if err != nil {
		logger.Warn("vendor score update failed: %v", err)
		s.lastErr = err
		return nil, err
	}

	s.replaceLocked(*saved)
	s.lastErr = nil
	return saved, nil
}

// issueSeq reserves the next sequence number for a record.
func (s *VendorService) issueSeq(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[key]++
	return s.seq[key]
}

// findLocked looks up a vendor in the list. Caller holds the mutex.
func (s *VendorService) findLocked(id string) (domain.Vendor, bool) {
	for i := range s.vendors {
		if s.vendors[i].ID == id {
			return s.vendors[i], true
		}
	}
	return domain.Vendor{}, false
}

// replaceLocked replaces a list entry by identity, or appends when the
// identity is not present. Caller holds the mutex.
func (s *VendorService) replaceLocked(v domain.Vendor) {
	for i := range s.vendors {
		if s.vendors[i].ID == v.ID {
			s.vendors[i] = v
			return
		}
	}
	s.vendors = append(s.vendors, v)
}
