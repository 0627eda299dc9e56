package job

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/borrowing"
	"library-backend/internal/shared"
	"library-backend/pkg/cache"
)

// OverdueScanPayload is the (empty) payload of the periodic overdue scan.
type OverdueScanPayload struct{}

// OverdueReport is what the scan leaves behind in the cache.
type OverdueReport struct {
	GeneratedAt time.Time      `json:"generatedAt"`
	Count       int            `json:"count"`
	Items       []OverdueEntry `json:"items"`
}

type OverdueEntry struct {
	BorrowingID string `json:"borrowingId"`
	ReaderName  string `json:"readerName"`
	BookTitle   string `json:"bookTitle"`
	Deadline    string `json:"deadline"`
	DaysLate    int    `json:"daysLate"`
}

// OverdueScanHandler walks open loans past their deadline and caches a
// summary report.
type OverdueScanHandler struct {
	borrowingService borrowing.Service
	cache            cache.Cache
}

func NewOverdueScanHandler(borrowingService borrowing.Service, cache cache.Cache) *OverdueScanHandler {
	return &OverdueScanHandler{
		borrowingService: borrowingService,
		cache:            cache,
	}
}

func (h *OverdueScanHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	overdue, err := h.borrowingService.List(ctx, borrowing.Filter{Type: borrowing.TypeOverdue})
	if err != nil {
		log.Error().Err(err).Msg("Failed to list overdue borrowings")
		return fmt.Errorf("list overdue borrowings: %w", err)
	}

	today := shared.Today()
	report := OverdueReport{
		GeneratedAt: time.Now().UTC(),
		Items:       make([]OverdueEntry, 0, len(overdue)),
	}

	for _, b := range overdue {
		// The store classifies with its own clock; re-check against ours
		// so daysLate is never negative around a day boundary.
		if !b.IsOverdue(today) {
			continue
		}

		daysLate := int(today.Sub(b.Deadline.Time).Hours() / 24)

		log.Warn().
			Str("borrowing_id", b.ID.String()).
			Str("reader", b.Reader.LastName+" "+b.Reader.FirstName).
			Str("book", b.Book.Title).
			Str("deadline", b.Deadline.String()).
			Int("days_late", daysLate).
			Msg("Borrowing is overdue")

		report.Items = append(report.Items, OverdueEntry{
			BorrowingID: b.ID.String(),
			ReaderName:  b.Reader.LastName + " " + b.Reader.FirstName,
			BookTitle:   b.Book.Title,
			Deadline:    b.Deadline.String(),
			DaysLate:    daysLate,
		})
	}
	report.Count = len(report.Items)

	if err := h.cache.Set(ctx, shared.OverdueReportCacheKey, report, 24*time.Hour); err != nil {
		log.Error().Err(err).Msg("Failed to cache overdue report")
		return fmt.Errorf("cache overdue report: %w", err)
	}

	log.Info().
		Int("overdue_count", report.Count).
		Msg("Overdue scan completed")

	return nil
}
