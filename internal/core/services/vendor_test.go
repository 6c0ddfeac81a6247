package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altwise-pvt-ltd/qms-cli/internal/core/domain"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/ports/driving"
)

// mockVendorAPI implements driven.VendorAPI with configurable functions.
type mockVendorAPI struct {
	listFn       func(ctx context.Context) ([]domain.Vendor, error)
	listByTypeFn func(ctx context.Context, vendorType domain.VendorType) ([]domain.Vendor, error)
	getFn        func(ctx context.Context, id string) (*domain.Vendor, error)
	createFn     func(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)
	updateFn     func(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (m *mockVendorAPI) List(ctx context.Context) ([]domain.Vendor, error) {
	if m.listFn == nil {
		return nil, errors.New("unexpected List call")
	}
	return m.listFn(ctx)
}

func (m *mockVendorAPI) ListByType(ctx context.Context, vendorType domain.VendorType) ([]domain.Vendor, error) {
	if m.listByTypeFn == nil {
		return nil, errors.New("unexpected ListByType call")
	}
	return m.listByTypeFn(ctx, vendorType)
}

func (m *mockVendorAPI) Get(ctx context.Context, id string) (*domain.Vendor, error) {
	if m.getFn == nil {
		return nil, errors.New("unexpected Get call")
	}
	return m.getFn(ctx, id)
}

func (m *mockVendorAPI) Create(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	if m.createFn == nil {
		return nil, errors.New("unexpected Create call")
	}
	return m.createFn(ctx, v)
}

func (m *mockVendorAPI) Update(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	if m.updateFn == nil {
		return nil, errors.New("unexpected Update call")
	}
	return m.updateFn(ctx, v)
}

func (m *mockVendorAPI) Delete(ctx context.Context, id string) error {
	if m.deleteFn == nil {
		return errors.New("unexpected Delete call")
	}
	return m.deleteFn(ctx, id)
}

func validForm() domain.Vendor {
	return domain.Vendor{
		Name:     "MediSource Supplies",
		Phone:    "5551234567",
		Email:    "c@m.com",
		Category: "Consumables",
		Type:     domain.VendorTypeNew,
		Address:  "789 Medical Plaza",
	}
}

// loadedService returns a service whose list already holds the given vendors.
func loadedService(t *testing.T, vendors []domain.Vendor) (*VendorService, *mockVendorAPI) {
	t.Helper()

	api := &mockVendorAPI{
		listFn: func(context.Context) ([]domain.Vendor, error) {
			return vendors, nil
		},
	}
	svc := NewVendorService(api)
	require.NoError(t, svc.Load(context.Background(), ""))
	return svc, api
}

func TestVendorService_Load_ReplacesList(t *testing.T) {
	svc, _ := loadedService(t, []domain.Vendor{
		{ID: "v1", Name: "Alpha Diagnostics"},
		{ID: "v2", Name: "Beta Reagents"},
	})

	vendors := svc.Vendors()
	require.Len(t, vendors, 2)
	assert.Equal(t, "Alpha Diagnostics", vendors[0].Name)
	assert.False(t, svc.Loading())
	assert.NoError(t, svc.LastError())
}

func TestVendorService_Load_ByType(t *testing.T) {
	var gotType domain.VendorType
	api := &mockVendorAPI{
		listByTypeFn: func(_ context.Context, vendorType domain.VendorType) ([]domain.Vendor, error) {
			gotType = vendorType
			return []domain.Vendor{{ID: "v1", Type: vendorType}}, nil
		},
	}
	svc := NewVendorService(api)

	require.NoError(t, svc.Load(context.Background(), domain.VendorTypeExisting))
	assert.Equal(t, domain.VendorTypeExisting, gotType)
	assert.Len(t, svc.Vendors(), 1)
}

func TestVendorService_Load_FailureKeepsPreviousList(t *testing.T) {
	svc, api := loadedService(t, []domain.Vendor{{ID: "v1", Name: "Alpha Diagnostics"}})

	loadErr := errors.New("connection refused")
	api.listFn = func(context.Context) ([]domain.Vendor, error) {
		return nil, loadErr
	}

	err := svc.Load(context.Background(), "")
	assert.ErrorIs(t, err, loadErr)
	assert.Len(t, svc.Vendors(), 1, "previous list survives a failed load")
	assert.ErrorIs(t, svc.LastError(), loadErr)
}

func TestVendorService_Load_StaleResponseDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	api := &mockVendorAPI{
		listFn: func(context.Context) ([]domain.Vendor, error) {
			if calls.Add(1) == 1 {
				close(firstStarted)
				<-release
				return []domain.Vendor{{ID: "stale", Name: "Stale Result"}}, nil
			}
			return []domain.Vendor{{ID: "fresh", Name: "Fresh Result"}}, nil
		},
	}
	svc := NewVendorService(api)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		firstErr = svc.Load(context.Background(), "")
	}()

	<-firstStarted
	require.NoError(t, svc.Load(context.Background(), ""))

	close(release)
	wg.Wait()

	assert.ErrorIs(t, firstErr, domain.ErrSuperseded)
	vendors := svc.Vendors()
	require.Len(t, vendors, 1)
	assert.Equal(t, "fresh", vendors[0].ID, "slow early response must not overwrite the later one")
}

func TestVendorService_ViewTransitions(t *testing.T) {
	svc, _ := loadedService(t, []domain.Vendor{{ID: "v1", Name: "Alpha Diagnostics"}})
	assert.Equal(t, driving.ViewList, svc.View())

	svc.BeginAdd()
	assert.Equal(t, driving.ViewAdd, svc.View())
	assert.Nil(t, svc.Selected())

	require.NoError(t, svc.BeginEdit("v1"))
	assert.Equal(t, driving.ViewEdit, svc.View())
	require.NotNil(t, svc.Selected())
	assert.Equal(t, "v1", svc.Selected().ID)

	svc.Cancel()
	assert.Equal(t, driving.ViewList, svc.View())
	assert.Nil(t, svc.Selected())

	require.NoError(t, svc.BeginView("v1"))
	assert.Equal(t, driving.ViewDetail, svc.View())
}

func TestVendorService_BeginEdit_UnknownVendor(t *testing.T) {
	svc, _ := loadedService(t, nil)
	assert.ErrorIs(t, svc.BeginEdit("missing"), domain.ErrNotFound)
	assert.Equal(t, driving.ViewList, svc.View())
}

func TestVendorService_Save_InvalidFormNeverReachesAPI(t *testing.T) {
	apiCalled := false
	api := &mockVendorAPI{
		createFn: func(_ context.Context, v domain.Vendor) (*domain.Vendor, error) {
			apiCalled = true
			return &v, nil
		},
	}
	svc := NewVendorService(api)
	svc.BeginAdd()

	form := validForm()
	form.Email = "not-an-email"
	_, err := svc.Save(context.Background(), form)

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Result.Errors, "email")
	assert.False(t, apiCalled, "invalid form must not reach the wire")
}

func TestVendorService_Save_CreatePrepends(t *testing.T) {
	svc, api := loadedService(t, []domain.Vendor{{ID: "v1", Name: "Alpha Diagnostics"}})
	api.createFn = func(_ context.Context, v domain.Vendor) (*domain.Vendor, error) {
		v.ID = "v-created"
		return &v, nil
	}

	svc.BeginAdd()
	saved, err := svc.Save(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, "v-created", saved.ID)

	vendors := svc.Vendors()
	require.Len(t, vendors, 2)
	assert.Equal(t, "v-created", vendors[0].ID, "new vendor goes to the front")
	assert.Equal(t, driving.ViewList, svc.View())
	assert.Nil(t, svc.Selected())
}

func TestVendorService_Save_UpdateReplacesInPlace(t *testing.T) {
	existing := validForm()
	existing.ID = "v1"
	svc, api := loadedService(t, []domain.Vendor{existing, {ID: "v2", Name: "Beta Reagents"}})

	api.updateFn = func(_ context.Context, v domain.Vendor) (*domain.Vendor, error) {
		assert.Equal(t, "v1", v.ID, "update carries the selected identity")
		return &v, nil
	}

	require.NoError(t, svc.BeginEdit("v1"))
	form := validForm()
	form.Name = "MediSource Supplies Ltd"
	saved, err := svc.Save(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "v1", saved.ID)

	vendors := svc.Vendors()
	require.Len(t, vendors, 2)
	assert.Equal(t, "MediSource Supplies Ltd", vendors[0].Name)
	assert.Equal(t, "v2", vendors[1].ID)
	assert.Equal(t, driving.ViewList, svc.View())
}

func TestVendorService_Save_RemoteFailureKeepsForm(t *testing.T) {
	svc, api := loadedService(t, nil)
	saveErr := errors.New("server unavailable")
	api.createFn = func(context.Context, domain.Vendor) (*domain.Vendor, error) {
		return nil, saveErr
	}

	svc.BeginAdd()
	_, err := svc.Save(context.Background(), validForm())
	assert.ErrorIs(t, err, saveErr)
	assert.Equal(t, driving.ViewAdd, svc.View(), "failed save keeps the form open")
	assert.ErrorIs(t, svc.LastError(), saveErr)
	assert.Empty(t, svc.Vendors())
}

func TestVendorService_Save_StaleUpdateDiscarded(t *testing.T) {
	existing := validForm()
	existing.ID = "v1"
	svc, api := loadedService(t, []domain.Vendor{existing})

	firstStarted := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	api.updateFn = func(_ context.Context, v domain.Vendor) (*domain.Vendor, error) {
		if calls.Add(1) == 1 {
			close(firstStarted)
			<-release
		}
		return &v, nil
	}

	require.NoError(t, svc.BeginEdit("v1"))
	slow := validForm()
	slow.Name = "Slow Edit"

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = svc.Save(context.Background(), slow)
	}()
	<-firstStarted

	require.NoError(t, svc.BeginEdit("v1"))
	fast := validForm()
	fast.Name = "Fast Edit"
	_, err := svc.Save(context.Background(), fast)
	require.NoError(t, err)

	close(release)
	wg.Wait()

	assert.ErrorIs(t, firstErr, domain.ErrSuperseded)
	vendors := svc.Vendors()
	require.Len(t, vendors, 1)
	assert.Equal(t, "Fast Edit", vendors[0].Name)
}

func TestVendorService_Delete_RequiresConfirmation(t *testing.T) {
	svc, _ := loadedService(t, []domain.Vendor{{ID: "v1", Name: "Alpha Diagnostics"}})

	err := svc.Delete(context.Background(), "v1", false)
	assert.ErrorIs(t, err, domain.ErrDeleteNotConfirmed)
	assert.Len(t, svc.Vendors(), 1, "unconfirmed delete must not touch the list")
}

func TestVendorService_Delete_RemovesFromList(t *testing.T) {
	svc, api := loadedService(t, []domain.Vendor{
		{ID: "v1", Name: "Alpha Diagnostics"},
		{ID: "v2", Name: "Beta Reagents"},
	})
	api.deleteFn = func(_ context.Context, id string) error {
		assert.Equal(t, "v1", id)
		return nil
	}

	require.NoError(t, svc.BeginView("v1"))
	require.NoError(t, svc.Delete(context.Background(), "v1", true))

	vendors := svc.Vendors()
	require.Len(t, vendors, 1)
	assert.Equal(t, "v2", vendors[0].ID)
	assert.Nil(t, svc.Selected(), "deleting the selected vendor clears the selection")
	assert.Equal(t, driving.ViewList, svc.View())
}

func TestVendorService_Delete_RemoteFailureKeepsEntry(t *testing.T) {
	svc, api := loadedService(t, []domain.Vendor{{ID: "v1", Name: "Alpha Diagnostics"}})
	deleteErr := errors.New("server unavailable")
	api.deleteFn = func(context.Context, string) error { return deleteErr }

	err := svc.Delete(context.Background(), "v1", true)
	assert.ErrorIs(t, err, deleteErr)
	assert.Len(t, svc.Vendors(), 1)
}

func TestVendorService_Score_UpdatesListEntry(t *testing.T) {
	existing := validForm()
	existing.ID = "v1"
	svc, api := loadedService(t, []domain.Vendor{existing})
	api.updateFn = func(_ context.Context, v domain.Vendor) (*domain.Vendor, error) {
		return &v, nil
	}

	saved, err := svc.Score(context.Background(), "v1", domain.CriterionQuality, 50)
	require.NoError(t, err)
	require.NotNil(t, saved.Evaluation)
	assert.Equal(t, 50, saved.Evaluation.TotalScore)
	assert.Equal(t, domain.AcceptanceRejected, saved.Evaluation.Status)

	vendors := svc.Vendors()
	require.Len(t, vendors, 1)
	require.NotNil(t, vendors[0].Evaluation)
	assert.Equal(t, 50, vendors[0].Evaluation.Scores[domain.CriterionQuality])
}

func TestVendorService_Score_AccumulatesToAcceptance(t *testing.T) {
	existing := validForm()
	existing.ID = "v1"
	svc, api := loadedService(t, []domain.Vendor{existing})
	api.updateFn = func(_ context.Context, v domain.Vendor) (*domain.Vendor, error) {
		return &v, nil
	}

	ctx := context.Background()
	_, err := svc.Score(ctx, "v1", domain.CriterionQuality, 50)
	require.NoError(t, err)
	saved, err := svc.Score(ctx, "v1", domain.CriterionDelivery, 50)
	require.NoError(t, err)

	assert.Equal(t, 100, saved.Evaluation.TotalScore)
	assert.Equal(t, domain.AcceptanceAccepted, saved.Evaluation.Status)
}

func TestVendorService_Score_FetchesUnloadedVendor(t *testing.T) {
	svc, api := loadedService(t, nil)
	api.getFn = func(_ context.Context, id string) (*domain.Vendor, error) {
		assert.Equal(t, "v9", id)
		v := validForm()
		v.ID = id
		return &v, nil
	}
	api.updateFn = func(_ context.Context, v domain.Vendor) (*domain.Vendor, error) {
		return &v, nil
	}

	saved, err := svc.Score(context.Background(), "v9", domain.CriterionService, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, saved.Evaluation.TotalScore)

	vendors := svc.Vendors()
	require.Len(t, vendors, 1, "fetched vendor joins the list after scoring")
	assert.Equal(t, "v9", vendors[0].ID)
}

func TestVendorService_Score_RejectsInvalidInput(t *testing.T) {
	existing := validForm()
	existing.ID = "v1"
	svc, _ := loadedService(t, []domain.Vendor{existing})

	_, err := svc.Score(context.Background(), "v1", "punctuality", 30)
	assert.ErrorIs(t, err, domain.ErrUnknownCriterion)

	_, err = svc.Score(context.Background(), "v1", domain.CriterionQuality, 35)
	assert.ErrorIs(t, err, domain.ErrInvalidScore)
}
