package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/borrowing"
	"library-backend/internal/domains/reader"
	"library-backend/internal/shared"
)

type fakeBorrowingRepo struct {
	created    *borrowing.Borrowing
	createErr  error
	listResult []borrowing.Borrowing
	lastFilter borrowing.Filter
	returnErr  error
	returnedAs *shared.DateOnly
}

func (f *fakeBorrowingRepo) Create(_ context.Context, b *borrowing.Borrowing) (*borrowing.Borrowing, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = uuid.New()
	f.created = b
	return b, nil
}

func (f *fakeBorrowingRepo) GetByID(_ context.Context, id uuid.UUID) (*borrowing.Borrowing, error) {
	return nil, borrowing.ErrBorrowingNotFound
}

// List classifies the seeded loans the way the store's type filter does,
// through the model's own open/overdue predicates.
func (f *fakeBorrowingRepo) List(_ context.Context, filter borrowing.Filter) ([]borrowing.Borrowing, error) {
	f.lastFilter = filter
	today := shared.Today()

	out := make([]borrowing.Borrowing, 0, len(f.listResult))
	for _, b := range f.listResult {
		if filter.ReaderID != nil && b.ReaderID != *filter.ReaderID {
			continue
		}
		switch filter.Type {
		case borrowing.TypeOpen:
			if !b.IsOpen() {
				continue
			}
		case borrowing.TypeClosed:
			if b.IsOpen() {
				continue
			}
		case borrowing.TypeOverdue:
			if !b.IsOverdue(today) {
				continue
			}
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBorrowingRepo) Return(_ context.Context, _ uuid.UUID, returnedDate shared.DateOnly) error {
	f.returnedAs = &returnedDate
	return f.returnErr
}

func (f *fakeBorrowingRepo) Update(_ context.Context, _ uuid.UUID, _ *borrowing.EditBorrowingRequest) error {
	return nil
}

func (f *fakeBorrowingRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type fakeReaderRepo struct {
	existing map[uuid.UUID]bool
}

func (f *fakeReaderRepo) Create(_ context.Context, rd *reader.Reader) (*reader.Reader, error) {
	return rd, nil
}

func (f *fakeReaderRepo) GetByID(_ context.Context, id uuid.UUID) (*reader.Reader, error) {
	if f.existing[id] {
		return &reader.Reader{ID: id}, nil
	}
	return nil, reader.ErrReaderNotFound
}

func (f *fakeReaderRepo) List(_ context.Context, _ string) ([]reader.Reader, error) {
	return nil, nil
}

func (f *fakeReaderRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

func (f *fakeReaderRepo) ExistsByPhone(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type fakeBookRepo struct {
	books map[uuid.UUID]*book.Book
}

func (f *fakeBookRepo) Create(_ context.Context, b *book.Book, _ []uuid.UUID) (*book.Book, error) {
	return b, nil
}

func (f *fakeBookRepo) GetByID(_ context.Context, id uuid.UUID) (*book.Book, error) {
	if b, ok := f.books[id]; ok {
		return b, nil
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeBookRepo) List(_ context.Context, _ book.Filter) ([]book.Book, error) {
	return nil, nil
}

func (f *fakeBookRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeBookRepo) Replenish(_ context.Context, _ uuid.UUID, _ int) (int, error) {
	return 0, nil
}

func (f *fakeBookRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.books[id]
	return ok, nil
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 14).Format(shared.DateLayout)
}

func newFixture() (*fakeBorrowingRepo, *fakeReaderRepo, *fakeBookRepo, borrowing.Service, uuid.UUID, uuid.UUID) {
	readerID := uuid.New()
	bookID := uuid.New()

	borrowings := &fakeBorrowingRepo{}
	readers := &fakeReaderRepo{existing: map[uuid.UUID]bool{readerID: true}}
	books := &fakeBookRepo{books: map[uuid.UUID]*book.Book{
		bookID: {ID: bookID, Title: "The Master and Margarita", AvailableCount: 3},
	}}

	svc := NewBorrowingService(borrowings, readers, books)
	return borrowings, readers, books, svc, readerID, bookID
}

func TestCreateBorrowing(t *testing.T) {
	borrowings, _, _, svc, readerID, bookID := newFixture()

	b, err := svc.Create(context.Background(), &borrowing.CreateBorrowingRequest{
		ReaderID: readerID,
		BookID:   bookID,
		Deadline: futureDate(),
	})
	require.NoError(t, err)

	assert.Equal(t, readerID, b.ReaderID)
	assert.Equal(t, bookID, b.BookID)
	assert.Equal(t, shared.Today().String(), b.BorrowedDate.String())
	assert.Nil(t, b.ReturnedDate)
	require.NotNil(t, borrowings.created)
}

func TestCreateBorrowingUnknownReader(t *testing.T) {
	_, _, _, svc, _, bookID := newFixture()

	_, err := svc.Create(context.Background(), &borrowing.CreateBorrowingRequest{
		ReaderID: uuid.New(),
		BookID:   bookID,
		Deadline: futureDate(),
	})
	assert.ErrorIs(t, err, borrowing.ErrReaderNotFound)
}

func TestCreateBorrowingUnknownBook(t *testing.T) {
	_, _, _, svc, readerID, _ := newFixture()

	_, err := svc.Create(context.Background(), &borrowing.CreateBorrowingRequest{
		ReaderID: readerID,
		BookID:   uuid.New(),
		Deadline: futureDate(),
	})
	assert.ErrorIs(t, err, borrowing.ErrBookNotFound)
}

func TestCreateBorrowingNoStock(t *testing.T) {
	_, _, books, svc, readerID, bookID := newFixture()
	books.books[bookID].AvailableCount = 0

	_, err := svc.Create(context.Background(), &borrowing.CreateBorrowingRequest{
		ReaderID: readerID,
		BookID:   bookID,
		Deadline: futureDate(),
	})
	assert.ErrorIs(t, err, borrowing.ErrNoCopiesAvailable)
}

func TestCreateBorrowingBadDeadlineFormat(t *testing.T) {
	_, _, _, svc, readerID, bookID := newFixture()

	for _, deadline := range []string{"14.02.2030", "2030/02/14", "soon"} {
		_, err := svc.Create(context.Background(), &borrowing.CreateBorrowingRequest{
			ReaderID: readerID,
			BookID:   bookID,
			Deadline: deadline,
		})
		assert.ErrorIs(t, err, borrowing.ErrInvalidDeadlineFormat, "deadline %q", deadline)
	}
}

func TestCreateBorrowingDeadlineInPast(t *testing.T) {
	_, _, _, svc, readerID, bookID := newFixture()

	yesterday := time.Now().AddDate(0, 0, -1).Format(shared.DateLayout)
	_, err := svc.Create(context.Background(), &borrowing.CreateBorrowingRequest{
		ReaderID: readerID,
		BookID:   bookID,
		Deadline: yesterday,
	})
	assert.ErrorIs(t, err, borrowing.ErrDeadlineInPast)
}

func TestCreateBorrowingDeadlineToday(t *testing.T) {
	_, _, _, svc, readerID, bookID := newFixture()

	// A same-day deadline is allowed; only strictly past dates fail.
	_, err := svc.Create(context.Background(), &borrowing.CreateBorrowingRequest{
		ReaderID: readerID,
		BookID:   bookID,
		Deadline: shared.Today().String(),
	})
	assert.NoError(t, err)
}

func TestCreateBorrowingValidation(t *testing.T) {
	_, _, _, svc, readerID, _ := newFixture()

	_, err := svc.Create(context.Background(), &borrowing.CreateBorrowingRequest{
		ReaderID: readerID,
		Deadline: futureDate(),
	})
	assert.Error(t, err)
}

func TestCreateBorrowingStockRace(t *testing.T) {
	// The repository loses the conditional decrement; the sentinel must
	// come through unwrapped.
	borrowings, _, _, svc, readerID, bookID := newFixture()
	borrowings.createErr = borrowing.ErrNoCopiesAvailable

	_, err := svc.Create(context.Background(), &borrowing.CreateBorrowingRequest{
		ReaderID: readerID,
		BookID:   bookID,
		Deadline: futureDate(),
	})
	assert.ErrorIs(t, err, borrowing.ErrNoCopiesAvailable)
}

func TestReturnUsesToday(t *testing.T) {
	borrowings, _, _, svc, _, _ := newFixture()

	require.NoError(t, svc.Return(context.Background(), uuid.New()))
	require.NotNil(t, borrowings.returnedAs)
	assert.Equal(t, shared.Today().String(), borrowings.returnedAs.String())
}

func TestReturnAlreadyReturned(t *testing.T) {
	borrowings, _, _, svc, _, _ := newFixture()
	borrowings.returnErr = borrowing.ErrAlreadyReturned

	err := svc.Return(context.Background(), uuid.New())
	assert.ErrorIs(t, err, borrowing.ErrAlreadyReturned)
}

func TestListTypeFilterPartition(t *testing.T) {
	borrowings, _, _, svc, _, _ := newFixture()

	pastDate := shared.NewDateOnly(time.Now().AddDate(0, 0, -3))
	futureDate := shared.NewDateOnly(time.Now().AddDate(0, 0, 3))

	openCurrent := borrowing.Borrowing{ID: uuid.New(), Deadline: futureDate}
	openOverdue := borrowing.Borrowing{ID: uuid.New(), Deadline: pastDate}
	closedLate := borrowing.Borrowing{ID: uuid.New(), Deadline: pastDate, ReturnedDate: &pastDate}
	borrowings.listResult = []borrowing.Borrowing{openCurrent, openOverdue, closedLate}

	ids := func(list []borrowing.Borrowing) []uuid.UUID {
		out := make([]uuid.UUID, 0, len(list))
		for _, b := range list {
			out = append(out, b.ID)
		}
		return out
	}

	all, err := svc.List(context.Background(), borrowing.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	open, err := svc.List(context.Background(), borrowing.Filter{Type: borrowing.TypeOpen})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{openCurrent.ID, openOverdue.ID}, ids(open))

	closed, err := svc.List(context.Background(), borrowing.Filter{Type: borrowing.TypeClosed})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{closedLate.ID}, ids(closed))

	// open and close partition the whole set.
	assert.Equal(t, len(all), len(open)+len(closed))

	// overdue is the open subset past its deadline; a closed loan past its
	// deadline never counts.
	overdue, err := svc.List(context.Background(), borrowing.Filter{Type: borrowing.TypeOverdue})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{openOverdue.ID}, ids(overdue))
}

func TestListByReader(t *testing.T) {
	borrowings, _, _, svc, readerID, _ := newFixture()
	borrowings.listResult = []borrowing.Borrowing{{ID: uuid.New(), ReaderID: readerID}}

	result, err := svc.ListByReader(context.Background(), readerID)
	require.NoError(t, err)
	assert.Len(t, result, 1)
	require.NotNil(t, borrowings.lastFilter.ReaderID)
	assert.Equal(t, readerID, *borrowings.lastFilter.ReaderID)
}

func TestListByReaderUnknownReader(t *testing.T) {
	_, _, _, svc, _, _ := newFixture()

	_, err := svc.ListByReader(context.Background(), uuid.New())
	assert.ErrorIs(t, err, reader.ErrReaderNotFound)
}
