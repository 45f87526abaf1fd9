// Package report aggregates classified records and renders the CSV and text
// outputs. Writers take io.Writer; commands decide file placement.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/bakeledger-dev/bakeledger/internal/model"
)

// CategoryOrder is the rendering order for category breakdowns.
var CategoryOrder = []model.Category{
	model.CategoryRawMaterial,
	model.CategoryConsumable,
	model.CategoryEquipment,
	model.CategoryOverseasPayment,
	model.CategoryOther,
}

// CategoryLabels maps categories to their report labels.
var CategoryLabels = map[model.Category]string{
	model.CategoryRawMaterial:     "原材料",
	model.CategoryConsumable:      "耗材",
	model.CategoryEquipment:       "设备",
	model.CategoryOverseasPayment: "海外支付",
	model.CategoryOther:           "其他不相关",
}

// Totals is the per-category count and amount aggregation over one run.
type Totals struct {
	counts map[model.Category]int
	sums   map[model.Category]decimal.Decimal
}

// Accumulate folds classified records into a Totals.
func Accumulate(records []model.ClassifiedPurchase) *Totals {
	t := &Totals{
		counts: make(map[model.Category]int),
		sums:   make(map[model.Category]decimal.Decimal),
	}
	for _, rec := range records {
		t.counts[rec.Category]++
		t.sums[rec.Category] = t.sums[rec.Category].Add(rec.Amount)
	}
	return t
}

// Count returns the record count for a category.
func (t *Totals) Count(cat model.Category) int {
	return t.counts[cat]
}

// Sum returns the amount sum for a category.
func (t *Totals) Sum(cat model.Category) decimal.Decimal {
	if s, ok := t.sums[cat]; ok {
		return s
	}
	return decimal.Zero
}

// GrandCount returns the total record count across all categories.
func (t *Totals) GrandCount() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}

// GrandTotal returns the total amount across all categories.
func (t *Totals) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range t.sums {
		total = total.Add(s)
	}
	return total
}

// Percent returns a category's share of the grand total as a percentage
// with two decimal places. Zero grand total yields zero.
func (t *Totals) Percent(cat model.Category) decimal.Decimal {
	grand := t.GrandTotal()
	if grand.IsZero() {
		return decimal.Zero
	}
	return t.Sum(cat).Mul(decimal.NewFromInt(100)).DivRound(grand, 2)
}
