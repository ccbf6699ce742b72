package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-kasir/models"
)

func saleAt(ts time.Time, total int) models.Transaction {
	return models.Transaction{Total: total, Timestamp: ts, Cashier: "admin"}
}

func saleWithItems(ts time.Time, items ...models.TransactionItem) models.Transaction {
	total := 0
	for _, item := range items {
		total += item.Subtotal
	}
	return models.Transaction{Items: items, Total: total, Timestamp: ts, Cashier: "admin"}
}

func soldItem(name string, quantity int) models.TransactionItem {
	return models.TransactionItem{
		ProductName:  name,
		ProductPrice: 10000,
		Quantity:     quantity,
		Subtotal:     10000 * quantity,
	}
}

func TestSummarizeSalesToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)
	midnightToday := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	transactions := []models.Transaction{
		saleAt(midnightToday, 10000),                                    // first second of today
		saleAt(time.Date(2026, 3, 10, 23, 59, 59, 0, time.Local), 5000), // last second of today
		saleAt(time.Date(2026, 3, 9, 23, 59, 59, 0, time.Local), 70000), // yesterday
		saleAt(time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local), 90000),   // tomorrow
	}

	summary := SummarizeSales(transactions, "today", now)
	assert.Equal(t, "today", summary.Period)
	assert.Equal(t, 15000, summary.TotalSales)
	assert.Equal(t, 2, summary.TransactionCount)
	assert.InDelta(t, 7500.0, summary.AverageTransaction, 0.001)
}

func TestSummarizeSalesWeekIncludesLaterToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	transactions := []models.Transaction{
		// A sale later today still counts toward the weekly numbers.
		saleAt(time.Date(2026, 3, 10, 21, 0, 0, 0, time.Local), 20000),
		saleAt(now.AddDate(0, 0, -3), 30000),
		saleAt(now.AddDate(0, 0, -8), 99000), // outside the trailing week
	}

	summary := SummarizeSales(transactions, "week", now)
	assert.Equal(t, "week", summary.Period)
	assert.Equal(t, 50000, summary.TotalSales)
	assert.Equal(t, 2, summary.TransactionCount)
}

func TestSummarizeSalesMonth(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	transactions := []models.Transaction{
		saleAt(now.AddDate(0, 0, -20), 40000),
		saleAt(now.AddDate(0, -2, 0), 80000),
	}

	summary := SummarizeSales(transactions, "month", now)
	assert.Equal(t, 40000, summary.TotalSales)
	assert.Equal(t, 1, summary.TransactionCount)
}

func TestSummarizeSalesUnknownPeriodDefaultsToToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	summary := SummarizeSales(nil, "quarter", now)
	assert.Equal(t, "today", summary.Period)
	assert.Equal(t, 0, summary.TransactionCount)
	assert.Equal(t, 0.0, summary.AverageTransaction)
}

func TestWeeklySeriesOrderingAndBuckets(t *testing.T) {
	// Tuesday, 2026-03-10.
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

	transactions := []models.Transaction{
		saleAt(time.Date(2026, 3, 4, 10, 0, 0, 0, time.Local), 10000),  // oldest bucket
		saleAt(time.Date(2026, 3, 4, 18, 0, 0, 0, time.Local), 5000),   // same bucket
		saleAt(time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local), 25000),  // today
		saleAt(time.Date(2026, 3, 3, 23, 59, 0, 0, time.Local), 77000), // before the window
		saleAt(time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local), 88000),  // after the window
	}

	series := WeeklySeries(transactions, now)
	require.Len(t, series, 7)

	// Oldest to newest, ending today, with localized day labels.
	assert.Equal(t, "2026-03-04", series[0].Date)
	assert.Equal(t, "Rab", series[0].Name)
	assert.Equal(t, 15000, series[0].Total)

	assert.Equal(t, "2026-03-10", series[6].Date)
	assert.Equal(t, "Sel", series[6].Name)
	assert.Equal(t, 25000, series[6].Total)

	labels := make([]string, 0, 7)
	for _, day := range series {
		labels = append(labels, day.Name)
	}
	assert.Equal(t, []string{"Rab", "Kam", "Jum", "Sab", "Min", "Sen", "Sel"}, labels)

	for _, day := range series[1:6] {
		assert.Equal(t, 0, day.Total)
	}
}

func TestTopProducts(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

	transactions := []models.Transaction{
		saleWithItems(now, soldItem("Kopi Susu", 3), soldItem("Croissant", 5)),
		saleWithItems(now, soldItem("Kopi Susu", 2)),
		saleWithItems(now, soldItem("Americano", 1)),
	}

	ranked := TopProducts(transactions, 5)
	require.Len(t, ranked, 3)

	// Kopi Susu and Croissant tie at 5; the first-seen name wins the tie.
	assert.Equal(t, ProductSales{Name: "Kopi Susu", Quantity: 5}, ranked[0])
	assert.Equal(t, ProductSales{Name: "Croissant", Quantity: 5}, ranked[1])
	assert.Equal(t, ProductSales{Name: "Americano", Quantity: 1}, ranked[2])
}

func TestTopProductsLimit(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

	transactions := []models.Transaction{
		saleWithItems(now,
			soldItem("A", 9),
			soldItem("B", 8),
			soldItem("C", 7),
		),
	}

	ranked := TopProducts(transactions, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, "A", ranked[0].Name)
	assert.Equal(t, "B", ranked[1].Name)
}

func TestTopProductsEmpty(t *testing.T) {
	assert.Empty(t, TopProducts(nil, 5))
}

func TestReportServiceSummary(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	store := &stubStore{transactions: []models.Transaction{
		saleAt(now.Add(-time.Hour), 12000),
	}}

	service := NewReportService(store)
	service.now = func() time.Time { return now }

	summary, err := service.Summary(context.Background(), "today")
	require.NoError(t, err)
	assert.Equal(t, 12000, summary.TotalSales)
	assert.Equal(t, 1, summary.TransactionCount)
}
