package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/altwise-pvt-ltd/qms-cli/internal/adapters/driven/storage/memory"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/ports/driven"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/services"
)

// apiStub implements driven.VendorAPI for command tests.
type apiStub struct {
	listFn       func(ctx context.Context) ([]domain.Vendor, error)
	listByTypeFn func(ctx context.Context, vendorType domain.VendorType) ([]domain.Vendor, error)
	getFn        func(ctx context.Context, id string) (*domain.Vendor, error)
	createFn     func(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)
	updateFn     func(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)
	deleteFn     func(ctx context.Context, id string) error
}

var _ driven.VendorAPI = (*apiStub)(nil)

func (a *apiStub) List(ctx context.Context) ([]domain.Vendor, error) {
	if a.listFn == nil {
		return nil, nil
	}
	return a.listFn(ctx)
}

func (a *apiStub) ListByType(ctx context.Context, vendorType domain.VendorType) ([]domain.Vendor, error) {
	if a.listByTypeFn == nil {
		return nil, nil
	}
	return a.listByTypeFn(ctx, vendorType)
}

func (a *apiStub) Get(ctx context.Context, id string) (*domain.Vendor, error) {
	if a.getFn == nil {
		return nil, errors.New("unexpected Get call")
	}
	return a.getFn(ctx, id)
}

func (a *apiStub) Create(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	if a.createFn == nil {
		return nil, errors.New("unexpected Create call")
	}
	return a.createFn(ctx, v)
}

func (a *apiStub) Update(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	if a.updateFn == nil {
		return nil, errors.New("unexpected Update call")
	}
	return a.updateFn(ctx, v)
}

func (a *apiStub) Delete(ctx context.Context, id string) error {
	if a.deleteFn == nil {
		return errors.New("unexpected Delete call")
	}
	return a.deleteFn(ctx, id)
}

// setupCLI swaps mock-backed services into the package wiring for the
// duration of one test.
func setupCLI(t *testing.T, api driven.VendorAPI) {
	t.Helper()

	prevVendor := vendorService
	prevDocument := documentService

	if api == nil {
		api = &apiStub{}
	}
	vendorService = services.NewVendorService(api)
	documentService = services.NewDocumentService(memory.NewDocumentStore())

	t.Cleanup(func() {
		vendorService = prevVendor
		documentService = prevDocument
		resetFlags(rootCmd)
	})
}

// resetFlags restores defaults and clears Changed so executions do not
// leak flag state into each other.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the root command with args, capturing output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
