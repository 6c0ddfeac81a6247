package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/ports/driven"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage the controlled-document register",
	Long:  `List, view, add and remove documents in the local register.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show document info",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new document",
	Args:  cobra.NoArgs,
	RunE:  runDocumentAdd,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Remove a document from the register",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentDelete,
}

// Document command flags.
var (
	docCategory    string
	docSubCategory string
	docDepartment  string
	docStatus      string
)

func init() {
	for _, cmd := range []*cobra.Command{documentListCmd, documentAddCmd} {
		cmd.Flags().StringVar(&docCategory, "category", "", "document category")
		cmd.Flags().StringVar(&docSubCategory, "sub-category", "", "document sub-category")
		cmd.Flags().StringVar(&docDepartment, "department", "", "owning department")
		cmd.Flags().StringVar(&docStatus, "status", "", "document status")
	}

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentAddCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	filter := driven.DocumentFilter{
		Category:    docCategory,
		SubCategory: docSubCategory,
		Department:  docDepartment,
		Status:      docStatus,
	}

	docs, err := documentService.List(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	for i := range docs {
		d := &docs[i]
		cmd.Printf("  %s\n", d.ID)
		cmd.Printf("    %s / %s\n", d.Category, d.SubCategory)
		cmd.Printf("    Department: %s\n", d.Department)
		cmd.Printf("    Status:     %s\n", d.Status)
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc, err := documentService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Category:     %s\n", doc.Category)
	cmd.Printf("  Sub-category: %s\n", doc.SubCategory)
	cmd.Printf("  Department:   %s\n", doc.Department)
	cmd.Printf("  Status:       %s\n", doc.Status)
	cmd.Printf("  Created:      %s\n", doc.CreatedAt.Format("2006-01-02"))
	return nil
}

func runDocumentAdd(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	doc := domain.Document{
		Category:    docCategory,
		SubCategory: docSubCategory,
		Department:  docDepartment,
		Status:      docStatus,
	}

	created, err := documentService.Add(context.Background(), doc)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return errors.New("category and sub-category are required")
		}
		return fmt.Errorf("failed to add document: %w", err)
	}

	cmd.Printf("Document registered: %s\n", created.ID)
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	if err := documentService.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Document %s removed.\n", args[0])
	return nil
}
