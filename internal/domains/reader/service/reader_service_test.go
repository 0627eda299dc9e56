package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/reader"
)

type fakeReaderRepo struct {
	byID       map[uuid.UUID]*reader.Reader
	phones     map[string]bool
	lastSearch string
	listResult []reader.Reader

	// stalePhoneCheck makes ExistsByPhone miss taken phones, modeling two
	// concurrent creates both passing the pre-check; the store-level
	// unique constraint in Create is then the only guard.
	stalePhoneCheck bool
}

func newFakeReaderRepo() *fakeReaderRepo {
	return &fakeReaderRepo{
		byID:   map[uuid.UUID]*reader.Reader{},
		phones: map[string]bool{},
	}
}

func (f *fakeReaderRepo) Create(_ context.Context, rd *reader.Reader) (*reader.Reader, error) {
	if f.phones[rd.Phone] {
		return nil, reader.ErrPhoneExists
	}
	rd.ID = uuid.New()
	f.byID[rd.ID] = rd
	f.phones[rd.Phone] = true
	return rd, nil
}

func (f *fakeReaderRepo) GetByID(_ context.Context, id uuid.UUID) (*reader.Reader, error) {
	if rd, ok := f.byID[id]; ok {
		return rd, nil
	}
	return nil, reader.ErrReaderNotFound
}

func (f *fakeReaderRepo) List(_ context.Context, search string) ([]reader.Reader, error) {
	f.lastSearch = search
	return f.listResult, nil
}

func (f *fakeReaderRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeReaderRepo) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	if f.stalePhoneCheck {
		return false, nil
	}
	return f.phones[phone], nil
}

func TestCreateReader(t *testing.T) {
	repo := newFakeReaderRepo()
	svc := NewReaderService(repo)

	rd, err := svc.Create(context.Background(), &reader.CreateReaderRequest{
		FirstName: "Anna",
		LastName:  "Petrova",
		Phone:     "+7-900-000-00-01",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rd.ID)
	assert.Equal(t, "+7-900-000-00-01", rd.Phone)
}

func TestCreateReaderDuplicatePhone(t *testing.T) {
	repo := newFakeReaderRepo()
	repo.phones["+7-900-000-00-01"] = true
	svc := NewReaderService(repo)

	_, err := svc.Create(context.Background(), &reader.CreateReaderRequest{
		FirstName: "Anna",
		LastName:  "Petrova",
		Phone:     "+7-900-000-00-01",
	})
	assert.ErrorIs(t, err, reader.ErrPhoneExists)
}

func TestCreateReaderPhoneRaceMapsToConflict(t *testing.T) {
	repo := newFakeReaderRepo()
	repo.phones["+7-900-000-00-01"] = true
	repo.stalePhoneCheck = true
	svc := NewReaderService(repo)

	// The pre-check misses the taken phone; the constraint violation from
	// the store must still come back as the conflict sentinel.
	_, err := svc.Create(context.Background(), &reader.CreateReaderRequest{
		FirstName: "Anna",
		LastName:  "Petrova",
		Phone:     "+7-900-000-00-01",
	})
	require.ErrorIs(t, err, reader.ErrPhoneExists)
	assert.Equal(t, 409, reader.ToHTTPStatus(err))
	assert.Equal(t, "PHONE_EXISTS", reader.ToErrorCode(err))
}

func TestCreateReaderValidation(t *testing.T) {
	svc := NewReaderService(newFakeReaderRepo())

	_, err := svc.Create(context.Background(), &reader.CreateReaderRequest{
		FirstName: "Anna",
	})
	assert.Error(t, err)
}

func TestListReadersByUUIDSearch(t *testing.T) {
	repo := newFakeReaderRepo()
	svc := NewReaderService(repo)

	rd, err := svc.Create(context.Background(), &reader.CreateReaderRequest{
		FirstName: "Anna",
		LastName:  "Petrova",
		Phone:     "+7-900-000-00-01",
	})
	require.NoError(t, err)

	// A uuid search term selects that exact reader.
	result, err := svc.List(context.Background(), reader.Filter{Search: rd.ID.String()})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, rd.ID, result[0].ID)

	// An unknown uuid yields an empty list, not an error.
	result, err = svc.List(context.Background(), reader.Filter{Search: uuid.NewString()})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestListReadersBySubstring(t *testing.T) {
	repo := newFakeReaderRepo()
	repo.listResult = []reader.Reader{{FirstName: "Anna"}}
	svc := NewReaderService(repo)

	result, err := svc.List(context.Background(), reader.Filter{Search: "Ann"})
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Ann", repo.lastSearch)
}
