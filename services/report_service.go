package services

import (
	"context"
	"sort"
	"time"

	"pos-kasir/models"
	"pos-kasir/repositories"
)

type SalesSummary struct {
	Period             string  `json:"period"`
	TotalSales         int     `json:"total_sales"`
	TransactionCount   int     `json:"transaction_count"`
	AverageTransaction float64 `json:"average_transaction"`
}

type DailySales struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Total int    `json:"total"`
}

type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Localized short weekday labels, Sunday first.
var shortDayNames = map[time.Weekday]string{
	time.Sunday:    "Min",
	time.Monday:    "Sen",
	time.Tuesday:   "Sel",
	time.Wednesday: "Rab",
	time.Thursday:  "Kam",
	time.Friday:    "Jum",
	time.Saturday:  "Sab",
}

// ReportService derives read-side aggregates from the transaction log.
// The computations are pure; data volumes are small enough that the full
// list is loaded each time.
type ReportService struct {
	store repositories.Store
	now   func() time.Time
}

func NewReportService(store repositories.Store) *ReportService {
	return &ReportService{store: store, now: time.Now}
}

func (s *ReportService) Summary(ctx context.Context, period string) (*SalesSummary, error) {
	transactions, err := s.store.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}
	summary := SummarizeSales(transactions, period, s.now())
	return &summary, nil
}

func (s *ReportService) WeeklySales(ctx context.Context) ([]DailySales, error) {
	transactions, err := s.store.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return WeeklySeries(transactions, s.now()), nil
}

func (s *ReportService) TopProducts(ctx context.Context, limit int) ([]ProductSales, error) {
	transactions, err := s.store.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return TopProducts(transactions, limit), nil
}

func (s *ReportService) Range(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	return s.store.GetTransactionsByDateRange(ctx, start, end)
}

// SummarizeSales totals transactions for a period ending now. "today"
// covers [local midnight, next midnight); "week" and "month" are trailing
// windows. The average guards against an empty period.
func SummarizeSales(transactions []models.Transaction, period string, now time.Time) SalesSummary {
	// Every period ends at the next local midnight so a sale later today
	// is always part of today's numbers.
	end := midnight(now).AddDate(0, 0, 1)

	var start time.Time
	switch period {
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = now.AddDate(0, -1, 0)
	default:
		period = "today"
		start = midnight(now)
	}

	summary := SalesSummary{Period: period}
	for _, t := range transactions {
		if t.Timestamp.Before(start) || !t.Timestamp.Before(end) {
			continue
		}
		summary.TotalSales += t.Total
		summary.TransactionCount++
	}
	if summary.TransactionCount > 0 {
		summary.AverageTransaction = float64(summary.TotalSales) / float64(summary.TransactionCount)
	}
	return summary
}

// WeeklySeries buckets the trailing 7 calendar days ending today, oldest
// to newest. Each bucket covers that day's local-time window and carries
// its localized short weekday label. This ordering is the canonical one
// for every report surface.
func WeeklySeries(transactions []models.Transaction, now time.Time) []DailySales {
	series := make([]DailySales, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := midnight(now.AddDate(0, 0, -offset))
		next := day.AddDate(0, 0, 1)

		total := 0
		for _, t := range transactions {
			if !t.Timestamp.Before(day) && t.Timestamp.Before(next) {
				total += t.Total
			}
		}
		series = append(series, DailySales{
			Name:  shortDayNames[day.Weekday()],
			Date:  day.Format("2006-01-02"),
			Total: total,
		})
	}
	return series
}

// TopProducts tallies sold quantity per product name across all item
// snapshots, descending. Ties keep the first-seen order of the names.
func TopProducts(transactions []models.Transaction, limit int) []ProductSales {
	totals := map[string]int{}
	order := []string{}
	for _, t := range transactions {
		for _, item := range t.Items {
			if _, seen := totals[item.ProductName]; !seen {
				order = append(order, item.ProductName)
			}
			totals[item.ProductName] += item.Quantity
		}
	}

	ranked := make([]ProductSales, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, ProductSales{Name: name, Quantity: totals[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
