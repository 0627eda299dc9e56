package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/borrowing"
	"library-backend/internal/domains/reader"
	"library-backend/internal/shared"
)

type borrowingService struct {
	borrowings borrowing.Repository
	readers    reader.Repository
	books      book.Repository
}

// NewBorrowingService creates the borrowing service.
func NewBorrowingService(
	borrowings borrowing.Repository,
	readers reader.Repository,
	books book.Repository,
) borrowing.Service {
	return &borrowingService{
		borrowings: borrowings,
		readers:    readers,
		books:      books,
	}
}

// Create checks the loan's preconditions in a fixed order: reader, book,
// stock, deadline shape, deadline not in the past. The stock read here is
// advisory; the repository re-checks it under the transaction.
func (s *borrowingService) Create(ctx context.Context, req *borrowing.CreateBorrowingRequest) (*borrowing.Borrowing, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.readers.ExistsByID(ctx, req.ReaderID)
	if err != nil {
		return nil, fmt.Errorf("create borrowing: %w", err)
	}
	if !exists {
		return nil, borrowing.ErrReaderNotFound
	}

	bk, err := s.books.GetByID(ctx, req.BookID)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return nil, borrowing.ErrBookNotFound
		}
		return nil, fmt.Errorf("create borrowing: %w", err)
	}
	if bk.AvailableCount <= 0 {
		return nil, borrowing.ErrNoCopiesAvailable
	}

	deadline, err := shared.ParseDateOnly(req.Deadline)
	if err != nil {
		return nil, borrowing.ErrInvalidDeadlineFormat
	}
	if deadline.Before(shared.Today()) {
		return nil, borrowing.ErrDeadlineInPast
	}

	b := &borrowing.Borrowing{
		ReaderID:     req.ReaderID,
		BookID:       req.BookID,
		BorrowedDate: shared.Today(),
		Deadline:     deadline,
	}

	created, err := s.borrowings.Create(ctx, b)
	if err != nil {
		if errors.Is(err, borrowing.ErrNoCopiesAvailable) {
			return nil, err
		}
		return nil, fmt.Errorf("create borrowing: %w", err)
	}

	return created, nil
}

func (s *borrowingService) GetByID(ctx context.Context, id uuid.UUID) (*borrowing.Borrowing, error) {
	return s.borrowings.GetByID(ctx, id)
}

func (s *borrowingService) List(ctx context.Context, filter borrowing.Filter) ([]borrowing.Borrowing, error) {
	borrowings, err := s.borrowings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list borrowings: %w", err)
	}

	return borrowings, nil
}

func (s *borrowingService) ListByReader(ctx context.Context, readerID uuid.UUID) ([]borrowing.Borrowing, error) {
	exists, err := s.readers.ExistsByID(ctx, readerID)
	if err != nil {
		return nil, fmt.Errorf("list borrowings by reader: %w", err)
	}
	if !exists {
		return nil, reader.ErrReaderNotFound
	}

	return s.List(ctx, borrowing.Filter{ReaderID: &readerID})
}

func (s *borrowingService) Return(ctx context.Context, id uuid.UUID) error {
	return s.borrowings.Return(ctx, id, shared.Today())
}

func (s *borrowingService) Edit(ctx context.Context, id uuid.UUID, req *borrowing.EditBorrowingRequest) error {
	return s.borrowings.Update(ctx, id, req)
}

func (s *borrowingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.borrowings.Delete(ctx, id)
}
