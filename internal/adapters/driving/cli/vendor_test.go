package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
)

func stubVendor(id string) domain.Vendor {
	return domain.Vendor{
		ID:       id,
		Name:     "MediSource Supplies",
		Phone:    "5551234567",
		Email:    "c@m.com",
		Address:  "789 Medical Plaza",
		Category: "Consumables",
		Type:     domain.VendorTypeNew,
		Status:   "Active",
	}
}

func TestVendorCommands_Registered(t *testing.T) {
	subcommands := make(map[string]bool)
	for _, cmd := range vendorCmd.Commands() {
		subcommands[cmd.Name()] = true
	}
	for _, name := range []string{"list", "get", "create", "update", "delete", "score"} {
		assert.True(t, subcommands[name], "missing vendor subcommand %q", name)
	}
}

func TestVendorList(t *testing.T) {
	setupCLI(t, &apiStub{
		listFn: func(context.Context) ([]domain.Vendor, error) {
			return []domain.Vendor{stubVendor("v1"), stubVendor("v2")}, nil
		},
	})

	out, err := executeCommand(t, "vendor", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "v1")
	assert.Contains(t, out, "MediSource Supplies")
	assert.Contains(t, out, "Total: 2 vendors")
}

func TestVendorList_Empty(t *testing.T) {
	setupCLI(t, &apiStub{})

	out, err := executeCommand(t, "vendor", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No vendors found.")
}

func TestVendorList_FiltersByType(t *testing.T) {
	var gotType domain.VendorType
	setupCLI(t, &apiStub{
		listByTypeFn: func(_ context.Context, vendorType domain.VendorType) ([]domain.Vendor, error) {
			gotType = vendorType
			return []domain.Vendor{stubVendor("v1")}, nil
		},
	})

	_, err := executeCommand(t, "vendor", "list", "--type", "Existing")
	require.NoError(t, err)
	assert.Equal(t, domain.VendorTypeExisting, gotType)
}

func TestVendorList_JSON(t *testing.T) {
	setupCLI(t, &apiStub{
		listFn: func(context.Context) ([]domain.Vendor, error) {
			return []domain.Vendor{stubVendor("v1")}, nil
		},
	})

	out, err := executeCommand(t, "vendor", "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"ID": "v1"`)
}

func TestVendorGet(t *testing.T) {
	setupCLI(t, &apiStub{
		listFn: func(context.Context) ([]domain.Vendor, error) {
			return []domain.Vendor{stubVendor("v1")}, nil
		},
	})

	out, err := executeCommand(t, "vendor", "get", "v1")
	require.NoError(t, err)
	assert.Contains(t, out, "Vendor: v1")
	assert.Contains(t, out, "Acceptance: Pending")
}

func TestVendorGet_NotFound(t *testing.T) {
	setupCLI(t, &apiStub{})

	_, err := executeCommand(t, "vendor", "get", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVendorCreate(t *testing.T) {
	setupCLI(t, &apiStub{
		createFn: func(_ context.Context, v domain.Vendor) (*domain.Vendor, error) {
			v.ID = "v-created"
			return &v, nil
		},
	})

	out, err := executeCommand(t, "vendor", "create",
		"--name", "MediSource Supplies",
		"--phone", "5551234567",
		"--email", "c@m.com",
		"--address", "789 Medical Plaza",
		"--category", "Consumables",
		"--type", "New")
	require.NoError(t, err)
	assert.Contains(t, out, "Vendor created: v-created")
}

func TestVendorCreate_ValidationFailure(t *testing.T) {
	setupCLI(t, &apiStub{})

	_, err := executeCommand(t, "vendor", "create",
		"--name", "Jo",
		"--phone", "123",
		"--email", "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid vendor:")
	assert.Contains(t, err.Error(), "name:")
	assert.Contains(t, err.Error(), "phone:")
}

func TestVendorUpdate_MergesUnchangedFields(t *testing.T) {
	var sent domain.Vendor
	setupCLI(t, &apiStub{
		listFn: func(context.Context) ([]domain.Vendor, error) {
			return []domain.Vendor{stubVendor("v1")}, nil
		},
		updateFn: func(_ context.Context, v domain.Vendor) (*domain.Vendor, error) {
			sent = v
			return &v, nil
		},
	})

	out, err := executeCommand(t, "vendor", "update", "v1", "--phone", "5559876543")
	require.NoError(t, err)
	assert.Contains(t, out, "Vendor updated: v1")
	assert.Equal(t, "5559876543", sent.Phone)
	assert.Equal(t, "MediSource Supplies", sent.Name, "unset flags keep current values")
}

func TestVendorDelete_RequiresYes(t *testing.T) {
	setupCLI(t, &apiStub{})

	_, err := executeCommand(t, "vendor", "delete", "v1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to delete without --yes")
}

func TestVendorDelete_Confirmed(t *testing.T) {
	deleted := ""
	setupCLI(t, &apiStub{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	out, err := executeCommand(t, "vendor", "delete", "v1", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "v1", deleted)
	assert.Contains(t, out, "Vendor v1 deleted.")
}

func TestVendorScore(t *testing.T) {
	setupCLI(t, &apiStub{
		getFn: func(_ context.Context, id string) (*domain.Vendor, error) {
			v := stubVendor(id)
			return &v, nil
		},
		updateFn: func(_ context.Context, v domain.Vendor) (*domain.Vendor, error) {
			return &v, nil
		},
	})

	out, err := executeCommand(t, "vendor", "score", "v1", "quality", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "quality=50")
	assert.Contains(t, out, "Total:      50")
}

func TestVendorScore_InvalidValue(t *testing.T) {
	setupCLI(t, &apiStub{
		getFn: func(_ context.Context, id string) (*domain.Vendor, error) {
			v := stubVendor(id)
			return &v, nil
		},
	})

	_, err := executeCommand(t, "vendor", "score", "v1", "quality", "35")
	assert.ErrorIs(t, err, domain.ErrInvalidScore)

	_, err = executeCommand(t, "vendor", "score", "v1", "punctuality", "30")
	assert.ErrorIs(t, err, domain.ErrUnknownCriterion)

	_, err = executeCommand(t, "vendor", "score", "v1", "quality", "high")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "score must be a number")
}

func TestVendorList_RemoteFailure(t *testing.T) {
	loadErr := errors.New("connection refused")
	setupCLI(t, &apiStub{
		listFn: func(context.Context) ([]domain.Vendor, error) {
			return nil, loadErr
		},
	})

	_, err := executeCommand(t, "vendor", "list")
	assert.ErrorIs(t, err, loadErr)
}
