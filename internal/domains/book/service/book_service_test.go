package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/genre"
)

type fakeBookRepo struct {
	created      *book.Book
	createdGenre []uuid.UUID
	lastFilter   book.Filter
	replenished  int
}

func (f *fakeBookRepo) Create(_ context.Context, b *book.Book, genreIDs []uuid.UUID) (*book.Book, error) {
	b.ID = uuid.New()
	f.created = b
	f.createdGenre = genreIDs
	return b, nil
}

func (f *fakeBookRepo) GetByID(_ context.Context, _ uuid.UUID) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (f *fakeBookRepo) List(_ context.Context, filter book.Filter) ([]book.Book, error) {
	f.lastFilter = filter
	return []book.Book{}, nil
}

func (f *fakeBookRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeBookRepo) Replenish(_ context.Context, _ uuid.UUID, qty int) (int, error) {
	// Mirrors the store's check constraint on available_count.
	if f.replenished+qty < 0 {
		return 0, book.ErrStockUnderflow
	}
	f.replenished += qty
	return f.replenished, nil
}

func (f *fakeBookRepo) ExistsByID(_ context.Context, _ uuid.UUID) (bool, error) {
	return true, nil
}

type fakeAuthorRepo struct {
	existing map[uuid.UUID]bool
}

func (f *fakeAuthorRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	return a, nil
}

func (f *fakeAuthorRepo) GetByID(_ context.Context, id uuid.UUID) (*author.Author, error) {
	if f.existing[id] {
		return &author.Author{ID: id}, nil
	}
	return nil, author.ErrAuthorNotFound
}

func (f *fakeAuthorRepo) List(_ context.Context, _ author.Filter) ([]author.Author, error) {
	return nil, nil
}

func (f *fakeAuthorRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeAuthorRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

type fakeGenreRepo struct {
	existing map[uuid.UUID]bool
}

func (f *fakeGenreRepo) Create(_ context.Context, g *genre.Genre) (*genre.Genre, error) {
	return g, nil
}

func (f *fakeGenreRepo) GetByID(_ context.Context, id uuid.UUID) (*genre.Genre, error) {
	if f.existing[id] {
		return &genre.Genre{ID: id}, nil
	}
	return nil, genre.ErrGenreNotFound
}

func (f *fakeGenreRepo) List(_ context.Context, _ genre.Filter) ([]genre.Genre, error) {
	return nil, nil
}

func (f *fakeGenreRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeGenreRepo) ExistsSimilarName(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func newBookFixture() (*fakeBookRepo, *fakeAuthorRepo, *fakeGenreRepo, book.Service, uuid.UUID) {
	authorID := uuid.New()

	books := &fakeBookRepo{}
	authors := &fakeAuthorRepo{existing: map[uuid.UUID]bool{authorID: true}}
	genres := &fakeGenreRepo{existing: map[uuid.UUID]bool{}}

	svc := NewBookService(books, authors, genres)
	return books, authors, genres, svc, authorID
}

func TestCreateBook(t *testing.T) {
	books, _, _, svc, authorID := newBookFixture()

	genreIDs := []uuid.UUID{uuid.New(), uuid.New()}
	b, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:          "Dead Souls",
		AuthorID:       authorID,
		ISBN:           "978-5-17-090000-0",
		YearPublished:  1842,
		AvailableCount: 5,
		Genres:         genreIDs,
	})
	require.NoError(t, err)

	assert.Equal(t, "Dead Souls", b.Title)
	assert.Equal(t, 5, b.AvailableCount)
	assert.Equal(t, genreIDs, books.createdGenre)
}

func TestCreateBookUnknownAuthor(t *testing.T) {
	_, _, _, svc, _ := newBookFixture()

	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:    "Dead Souls",
		AuthorID: uuid.New(),
		ISBN:     "978-5-17-090000-0",
	})
	assert.ErrorIs(t, err, book.ErrAuthorNotFound)
}

func TestCreateBookValidation(t *testing.T) {
	_, _, _, svc, authorID := newBookFixture()

	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		AuthorID: authorID,
		ISBN:     "978-5-17-090000-0",
	})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), &book.CreateBookRequest{
		Title:          "Dead Souls",
		AuthorID:       authorID,
		ISBN:           "978-5-17-090000-0",
		AvailableCount: -1,
	})
	assert.Error(t, err)
}

func TestListBooksDropsUnknownGenre(t *testing.T) {
	books, _, genres, svc, _ := newBookFixture()

	knownGenre := uuid.New()
	genres.existing[knownGenre] = true

	// A known genre id stays in the filter.
	_, err := svc.List(context.Background(), book.Filter{GenreID: &knownGenre})
	require.NoError(t, err)
	require.NotNil(t, books.lastFilter.GenreID)
	assert.Equal(t, knownGenre, *books.lastFilter.GenreID)

	// An unknown genre id is dropped instead of failing the request.
	unknownGenre := uuid.New()
	_, err = svc.List(context.Background(), book.Filter{GenreID: &unknownGenre})
	require.NoError(t, err)
	assert.Nil(t, books.lastFilter.GenreID)
}

func TestListByAuthor(t *testing.T) {
	books, _, _, svc, authorID := newBookFixture()

	_, err := svc.ListByAuthor(context.Background(), authorID)
	require.NoError(t, err)
	require.NotNil(t, books.lastFilter.AuthorID)
	assert.Equal(t, authorID, *books.lastFilter.AuthorID)
}

func TestListByAuthorUnknownAuthor(t *testing.T) {
	_, _, _, svc, _ := newBookFixture()

	_, err := svc.ListByAuthor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestReplenish(t *testing.T) {
	_, _, _, svc, _ := newBookFixture()

	count, err := svc.Replenish(context.Background(), uuid.New(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	// A negative adjustment is allowed as long as stock stays at zero or
	// above.
	count, err = svc.Replenish(context.Background(), uuid.New(), -7)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestReplenishUnderflow(t *testing.T) {
	_, _, _, svc, _ := newBookFixture()

	_, err := svc.Replenish(context.Background(), uuid.New(), 3)
	require.NoError(t, err)

	_, err = svc.Replenish(context.Background(), uuid.New(), -5)
	require.ErrorIs(t, err, book.ErrStockUnderflow)
	assert.Equal(t, 400, book.ToHTTPStatus(err))
	assert.Equal(t, "STOCK_UNDERFLOW", book.ToErrorCode(err))
}
