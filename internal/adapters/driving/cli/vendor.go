package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
)

var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Manage vendor records",
	Long:  `List, create, update, score and delete vendor records on the remote QMS service.`,
}

var vendorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vendors",
	Args:  cobra.NoArgs,
	RunE:  runVendorList,
}

var vendorGetCmd = &cobra.Command{
	Use:   "get [vendor-id]",
	Short: "Show one vendor",
	Args:  cobra.ExactArgs(1),
	RunE:  runVendorGet,
}

var vendorCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new vendor",
	Args:  cobra.NoArgs,
	RunE:  runVendorCreate,
}

var vendorUpdateCmd = &cobra.Command{
	Use:   "update [vendor-id]",
	Short: "Update an existing vendor",
	Args:  cobra.ExactArgs(1),
	RunE:  runVendorUpdate,
}

var vendorDeleteCmd = &cobra.Command{
	Use:   "delete [vendor-id]",
	Short: "Delete a vendor",
	Long:  `Deletes a vendor record. Requires --yes as the explicit confirmation step.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runVendorDelete,
}

var vendorScoreCmd = &cobra.Command{
	Use:   "score [vendor-id] [criterion] [value]",
	Short: "Score one evaluation criterion",
	Long: `Sets one criterion (quality, delivery, price, equipment, service) to a
score level (10, 20, 30, 40 or 50) and recomputes the vendor's total and
acceptance status.`,
	Args: cobra.ExactArgs(3),
	RunE: runVendorScore,
}

// Vendor command flags.
var (
	vendorListType  string
	vendorListJSON  bool
	vendorDeleteYes bool

	vendorName       string
	vendorPhone      string
	vendorEmail      string
	vendorAddress    string
	vendorCategory   string
	vendorContact    string
	vendorType       string
	vendorStatus     string
	vendorAssessment string
)

func init() {
	vendorListCmd.Flags().StringVarP(&vendorListType, "type", "t", "", "filter by vendor type (New or Existing)")
	vendorListCmd.Flags().BoolVar(&vendorListJSON, "json", false, "output as JSON")

	vendorDeleteCmd.Flags().BoolVarP(&vendorDeleteYes, "yes", "y", false, "confirm the deletion")

	for _, cmd := range []*cobra.Command{vendorCreateCmd, vendorUpdateCmd} {
		cmd.Flags().StringVar(&vendorName, "name", "", "vendor name")
		cmd.Flags().StringVar(&vendorPhone, "phone", "", "contact phone (10 digits)")
		cmd.Flags().StringVar(&vendorEmail, "email", "", "contact email")
		cmd.Flags().StringVar(&vendorAddress, "address", "", "postal address")
		cmd.Flags().StringVar(&vendorCategory, "category", "", "item category dealt")
		cmd.Flags().StringVar(&vendorContact, "contact", "", "contact person")
		cmd.Flags().StringVar(&vendorType, "type", "", "vendor type (New or Existing)")
		cmd.Flags().StringVar(&vendorStatus, "status", "", "vendor status")
		cmd.Flags().StringVar(&vendorAssessment, "assessment-date", "", "assessment date")
	}

	vendorCmd.AddCommand(vendorListCmd)
	vendorCmd.AddCommand(vendorGetCmd)
	vendorCmd.AddCommand(vendorCreateCmd)
	vendorCmd.AddCommand(vendorUpdateCmd)
	vendorCmd.AddCommand(vendorDeleteCmd)
	vendorCmd.AddCommand(vendorScoreCmd)
	rootCmd.AddCommand(vendorCmd)
}

func runVendorList(cmd *cobra.Command, _ []string) error {
	if vendorService == nil {
		return errors.New("vendor service not configured")
	}

	ctx := context.Background()
	if err := vendorService.Load(ctx, domain.VendorType(vendorListType)); err != nil {
		return fmt.Errorf("failed to load vendors: %w", err)
	}

	vendors := vendorService.Vendors()
	if vendorListJSON {
		data, err := json.MarshalIndent(vendors, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal vendors: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(vendors) == 0 {
		cmd.Println("No vendors found.")
		return nil
	}

	for i := range vendors {
		v := &vendors[i]
		cmd.Printf("  %s\n", v.ID)
		cmd.Printf("    Name:       %s (%s)\n", v.Name, v.Type)
		cmd.Printf("    Category:   %s\n", v.Category)
		cmd.Printf("    Status:     %s\n", v.Status)
		cmd.Printf("    Acceptance: %s", v.AcceptanceStatus())
		if v.Evaluation != nil {
			cmd.Printf(" (total %d)", v.Evaluation.TotalScore)
		}
		cmd.Println()
		cmd.Println()
	}

	cmd.Printf("Total: %d vendors\n", len(vendors))
	return nil
}

func runVendorGet(cmd *cobra.Command, args []string) error {
	if vendorService == nil {
		return errors.New("vendor service not configured")
	}

	id := args[0]
	ctx := context.Background()

	if err := vendorService.Load(ctx, ""); err != nil {
		return fmt.Errorf("failed to load vendors: %w", err)
	}
	if err := vendorService.BeginView(id); err != nil {
		return fmt.Errorf("failed to select vendor: %w", err)
	}
	defer vendorService.Cancel()

	v := vendorService.Selected()
	if v == nil {
		return fmt.Errorf("vendor %s: %w", id, domain.ErrNotFound)
	}

	printVendor(cmd, v)
	return nil
}

func runVendorCreate(cmd *cobra.Command, _ []string) error {
	if vendorService == nil {
		return errors.New("vendor service not configured")
	}

	form := domain.Vendor{
		Name:           vendorName,
		Phone:          vendorPhone,
		Email:          vendorEmail,
		Address:        vendorAddress,
		Category:       vendorCategory,
		ContactPerson:  vendorContact,
		Type:           domain.VendorType(vendorType),
		Status:         vendorStatus,
		AssessmentDate: vendorAssessment,
	}

	vendorService.BeginAdd()
	created, err := vendorService.Save(context.Background(), form)
	if err != nil {
		vendorService.Cancel()
		return saveError(err)
	}

	cmd.Printf("Vendor created: %s\n", created.ID)
	return nil
}

func runVendorUpdate(cmd *cobra.Command, args []string) error {
	if vendorService == nil {
		return errors.New("vendor service not configured")
	}

	id := args[0]
	ctx := context.Background()

	if err := vendorService.Load(ctx, ""); err != nil {
		return fmt.Errorf("failed to load vendors: %w", err)
	}
	if err := vendorService.BeginEdit(id); err != nil {
		return fmt.Errorf("failed to select vendor: %w", err)
	}

	current := vendorService.Selected()
	if current == nil {
		vendorService.Cancel()
		return fmt.Errorf("vendor %s: %w", id, domain.ErrNotFound)
	}

	// Only flags the user actually set override the current record.
	form := *current
	flags := cmd.Flags()
	if flags.Changed("name") {
		form.Name = vendorName
	}
	if flags.Changed("phone") {
		form.Phone = vendorPhone
	}
	if flags.Changed("email") {
		form.Email = vendorEmail
	}
	if flags.Changed("address") {
		form.Address = vendorAddress
	}
	if flags.Changed("category") {
		form.Category = vendorCategory
	}
	if flags.Changed("contact") {
		form.ContactPerson = vendorContact
	}
	if flags.Changed("type") {
		form.Type = domain.VendorType(vendorType)
	}
	if flags.Changed("status") {
		form.Status = vendorStatus
	}
	if flags.Changed("assessment-date") {
		form.AssessmentDate = vendorAssessment
	}

	updated, err := vendorService.Save(ctx, form)
	if err != nil {
		vendorService.Cancel()
		return saveError(err)
	}

	cmd.Printf("Vendor updated: %s\n", updated.ID)
	return nil
}

func runVendorDelete(cmd *cobra.Command, args []string) error {
	if vendorService == nil {
		return errors.New("vendor service not configured")
	}

	id := args[0]
	if err := vendorService.Delete(context.Background(), id, vendorDeleteYes); err != nil {
		if errors.Is(err, domain.ErrDeleteNotConfirmed) {
			return errors.New("refusing to delete without --yes")
		}
		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	cmd.Printf("Vendor %s deleted.\n", id)
	return nil
}

func runVendorScore(cmd *cobra.Command, args []string) error {
	if vendorService == nil {
		return errors.New("vendor service not configured")
	}

	id := args[0]
	criterion := domain.Criterion(args[1])
	value, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("score must be a number: %w", err)
	}

	updated, err := vendorService.Score(context.Background(), id, criterion, value)
	if err != nil {
		return fmt.Errorf("failed to score vendor: %w", err)
	}

	cmd.Printf("Scored %s %s=%d\n", updated.Name, criterion, value)
	if updated.Evaluation != nil {
		cmd.Printf("  Total:      %d\n", updated.Evaluation.TotalScore)
		cmd.Printf("  Acceptance: %s\n", updated.Evaluation.Status)
	}
	return nil
}

// printVendor renders one vendor record.
func printVendor(cmd *cobra.Command, v *domain.Vendor) {
	cmd.Printf("Vendor: %s\n\n", v.ID)
	cmd.Printf("  Name:       %s\n", v.Name)
	cmd.Printf("  Type:       %s\n", v.Type)
	cmd.Printf("  Category:   %s\n", v.Category)
	cmd.Printf("  Contact:    %s\n", v.ContactPerson)
	cmd.Printf("  Phone:      %s\n", v.Phone)
	cmd.Printf("  Email:      %s\n", v.Email)
	cmd.Printf("  Address:    %s\n", v.Address)
	cmd.Printf("  Status:     %s\n", v.Status)
	if v.AssessmentDate != "" {
		cmd.Printf("  Assessed:   %s\n", v.AssessmentDate)
	}
	cmd.Printf("  Acceptance: %s\n", v.AcceptanceStatus())

	if ev := v.Evaluation; ev != nil {
		cmd.Println("\n  Evaluation:")
		for _, c := range domain.Criteria {
			if score, ok := ev.Scores[c]; ok {
				cmd.Printf("    %-10s %d\n", c, score)
			}
		}
		cmd.Printf("    %-10s %d\n", "total", ev.TotalScore)
	}
}

// saveError renders validation failures field by field; everything else
// passes through wrapped.
func saveError(err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		msg := "invalid vendor:"
		for field, fieldErr := range vErr.Result.Errors {
			msg += fmt.Sprintf("\n  %s: %s", field, fieldErr)
		}
		return errors.New(msg)
	}
	return fmt.Errorf("failed to save vendor: %w", err)
}
