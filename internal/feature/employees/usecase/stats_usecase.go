package usecase

import (
	"context"
	"sort"
	"time"

	"hr_backend/internal/feature/employees/domain/entity"
)

// maxMonthlyBuckets is how many (year, month) buckets the monthly series keeps.
const maxMonthlyBuckets = 12

// StatsSource supplies the records the aggregations run over.
// The aggregation itself is store-independent: it is a pure
// transformation over the fetched slice.
type StatsSource interface {
	// FindAllForStats returns every employee record. Only Status and
	// CreatedAt are consumed by the aggregations.
	FindAllForStats(ctx context.Context) ([]entity.Employee, error)
}

// MonthlyCount is one (year, month) bucket of the creation series.
type MonthlyCount struct {
	Label string `json:"date"`
	Count int    `json:"count"`
}

// StatsSnapshot bundles both aggregate views of the employee table.
type StatsSnapshot struct {
	StatusCounts map[entity.Status]int
	Monthly      []MonthlyCount
}

// statsUsecase computes aggregate statistics over employee records.
type statsUsecase struct {
	source StatsSource
}

// NewStatsUsecase creates a new instance of statsUsecase.
func NewStatsUsecase(source StatsSource) *statsUsecase {
	return &statsUsecase{source: source}
}

// GetStats fetches all records and runs both aggregations.
func (u *statsUsecase) GetStats(ctx context.Context) (*StatsSnapshot, error) {
	records, err := u.source.FindAllForStats(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsSnapshot{
		StatusCounts: CountByStatus(records),
		Monthly:      MonthlyCreationCounts(records),
	}, nil
}

// CountByStatus groups records by status. The result always carries all
// four enumerated statuses, with absent ones at 0, so callers never have
// to null-check.
func CountByStatus(records []entity.Employee) map[entity.Status]int {
	counts := make(map[entity.Status]int, 4)
	for _, s := range entity.AllStatuses() {
		counts[s] = 0
	}
	for _, r := range records {
		counts[r.Status]++
	}
	return counts
}

// monthKey is a (year, month) bucket identifier.
type monthKey struct {
	year  int
	month time.Month
}

// MonthlyCreationCounts buckets records by (year, month) of CreatedAt,
// keeps the 12 most recent buckets, and returns them oldest-first with
// "Jan 2006" labels, ready for charting.
func MonthlyCreationCounts(records []entity.Employee) []MonthlyCount {
	buckets := map[monthKey]int{}
	for _, r := range records {
		k := monthKey{year: r.CreatedAt.Year(), month: r.CreatedAt.Month()}
		buckets[k]++
	}

	keys := make([]monthKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}

	// Most recent first, so truncation keeps the latest 12 buckets.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].month > keys[j].month
	})
	if len(keys) > maxMonthlyBuckets {
		keys = keys[:maxMonthlyBuckets]
	}

	// Reverse into ascending order for chart-friendly output.
	out := make([]MonthlyCount, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		k := keys[i]
		label := time.Date(k.year, k.month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		out = append(out, MonthlyCount{Label: label, Count: buckets[k]})
	}
	return out
}
