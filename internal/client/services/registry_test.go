package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/driverdesk/internal/common"
	"github.com/dmitrijs2005/driverdesk/internal/drivers"
	"github.com/dmitrijs2005/driverdesk/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func validFields() drivers.Fields {
	return drivers.Fields{
		LastName:            "Ivanov",
		FirstName:           "Ivan",
		MiddleName:          "Ivanovich",
		Passport:            "1234 567890",
		RegistrationAddress: "Lenina 1",
		LivingAddress:       "Mira 2",
		Phone:               "+79991234567",
		Email:               "a@b.com",
		Photo:               "/photos/ivanov.png",
	}
}

func validLicense() drivers.License {
	return drivers.License{Number: "77 01 123456", IssueDate: "01.02.2020", ExpiryDate: "01.02.2030", Authority: "GIBDD", Categories: "B"}
}

func newTestRegistry(t *testing.T) (RegistryService, *drivers.MemoryStore) {
	t.Helper()
	store := drivers.NewMemoryStore()
	return NewRegistryService(store, validation.New(false), nil), store
}

// ---- fake store ----

type fakeStore struct {
	drivers.Store

	createErr error
	created   []string
}

func (f *fakeStore) CreateDriver(_ context.Context, id string, _ drivers.Fields) error {
	f.created = append(f.created, id)
	return f.createErr
}

// ---- TESTS ----

func TestNewDriverID_IsUUID(t *testing.T) {
	svc, _ := newTestRegistry(t)

	a, b := svc.NewDriverID(), svc.NewDriverID()
	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCreateDriver_StoresValidRecord(t *testing.T) {
	svc, _ := newTestRegistry(t)
	ctx := context.Background()
	id := svc.NewDriverID()

	require.NoError(t, svc.CreateDriver(ctx, id, validFields()))

	d, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, d.ID)
	assert.Equal(t, "Ivanov", d.LastName)
}

func TestCreateDriver_InvalidNotStored(t *testing.T) {
	svc, store := newTestRegistry(t)
	ctx := context.Background()

	f := validFields()
	f.Passport = "12345678"
	f.Email = "nope"

	err := svc.CreateDriver(ctx, "id-1", f)
	require.ErrorIs(t, err, common.ErrValidation)

	var verrs validation.Errors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{"passport", "email"}, verrs.Fields())

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateDriver_EmptyID(t *testing.T) {
	svc, _ := newTestRegistry(t)
	require.ErrorIs(t, svc.CreateDriver(context.Background(), "", validFields()), common.ErrValidation)
}

func TestCreateDriver_StoreErrorWrapped(t *testing.T) {
	boom := errors.New("boom")
	fs := &fakeStore{createErr: boom}
	svc := NewRegistryService(fs, validation.New(false), nil)

	err := svc.CreateDriver(context.Background(), "id-1", validFields())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"id-1"}, fs.created)
}

func TestAddLicense_Appends(t *testing.T) {
	svc, _ := newTestRegistry(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateDriver(ctx, "id-1", validFields()))

	first, second := validLicense(), validLicense()
	second.Number = "77 01 654321"
	require.NoError(t, svc.AddLicense(ctx, "id-1", first))
	require.NoError(t, svc.AddLicense(ctx, "id-1", second))

	d, err := svc.Get(ctx, "id-1")
	require.NoError(t, err)
	require.Len(t, d.Licenses, 2)
	assert.Equal(t, "77 01 654321", d.Licenses[1].Number)
}

func TestAddLicense_UnknownDriver(t *testing.T) {
	svc, store := newTestRegistry(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateDriver(ctx, "id-1", validFields()))

	err := svc.AddLicense(ctx, "never-created", validLicense())
	require.ErrorIs(t, err, common.ErrNotFound)

	d, err := store.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Empty(t, d.Licenses)
}

func TestAddLicense_Invalid(t *testing.T) {
	svc, _ := newTestRegistry(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateDriver(ctx, "id-1", validFields()))

	lic := validLicense()
	lic.Categories = ""
	require.ErrorIs(t, svc.AddLicense(ctx, "id-1", lic), common.ErrValidation)

	d, err := svc.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Empty(t, d.Licenses)
}

func TestList_PassesThrough(t *testing.T) {
	svc, _ := newTestRegistry(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateDriver(ctx, "a", validFields()))
	require.NoError(t, svc.CreateDriver(ctx, "b", validFields()))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
}
