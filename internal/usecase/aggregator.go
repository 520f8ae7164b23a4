package usecase

import (
	"math"

	"github.com/presupuestador/backend/internal/domain"
)

// Summarize partitions a finalized match list and computes quote totals.
// In-store-only items count toward coverage (the customer can get them) but
// are excluded from the online total (this channel cannot fulfill them).
// Coverage of an empty list is defined as 0, not NaN.
func Summarize(items []domain.MatchedItem) domain.Summary {
	s := domain.Summary{TotalItems: len(items)}

	for _, it := range items {
		switch {
		case it.Matched && it.InStoreOnly:
			s.InStoreItems++
		case it.Matched:
			s.FoundItems++
			s.EstimatedTotal += it.Subtotal
		default:
			s.NotFoundItems++
		}
	}

	s.EstimatedTotal = roundCurrency(s.EstimatedTotal)

	if s.TotalItems > 0 {
		s.CoveragePercent = int(math.Round(100 * float64(s.FoundItems+s.InStoreItems) / float64(s.TotalItems)))
	}

	return s
}
