package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
)

type fakeAuthorRepo struct {
	authors map[uuid.UUID]*author.Author
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: map[uuid.UUID]*author.Author{}}
}

func (f *fakeAuthorRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	a.ID = uuid.New()
	f.authors[a.ID] = a
	return a, nil
}

func (f *fakeAuthorRepo) GetByID(_ context.Context, id uuid.UUID) (*author.Author, error) {
	if a, ok := f.authors[id]; ok {
		return a, nil
	}
	return nil, author.ErrAuthorNotFound
}

func (f *fakeAuthorRepo) List(_ context.Context, _ author.Filter) ([]author.Author, error) {
	out := make([]author.Author, 0, len(f.authors))
	for _, a := range f.authors {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAuthorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(f.authors, id)
	return nil
}

func (f *fakeAuthorRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.authors[id]
	return ok, nil
}

func TestCreateAuthor(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	patronymic := "Sergeyevich"
	a, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		FirstName:  "Alexander",
		LastName:   "Pushkin",
		Patronymic: &patronymic,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a.ID)
	require.NotNil(t, a.Patronymic)
	assert.Equal(t, "Sergeyevich", *a.Patronymic)
}

func TestCreateAuthorValidation(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		FirstName: "Alexander",
	})
	assert.Error(t, err)
}

func TestDuplicateAuthorNamesAllowed(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	req := &author.CreateAuthorRequest{FirstName: "Leo", LastName: "Tolstoy"}

	first, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetAuthorNotFound(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestDeleteAuthor(t *testing.T) {
	svc := NewAuthorService(newFakeAuthorRepo())

	a, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		FirstName: "Leo",
		LastName:  "Tolstoy",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), a.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), a.ID), author.ErrAuthorNotFound)
}
