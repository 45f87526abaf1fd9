package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bakeledger-dev/bakeledger/internal/model"
)

// bom is prepended to every CSV output so spreadsheet software detects UTF-8.
const bom = "\uFEFF"

const orderListHeader = "订单号,支付日期时间,产品名称,价格（元）"

// WriteOrderList writes the order rows for the requested categories as a
// BOM-prefixed CSV with every field quoted.
func WriteOrderList(w io.Writer, records []model.ClassifiedPurchase, categories ...model.Category) error {
	wanted := make(map[model.Category]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	if _, err := fmt.Fprintln(w, bom+orderListHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rec := range records {
		if !wanted[rec.Category] {
			continue
		}
		row := quoteRow(rec.OrderID, rec.PayTime, rec.Product, rec.Amount.StringFixed(2))
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return nil
}

// ExcludedStats summarizes the two sections of the excluded-orders list.
type ExcludedStats struct {
	AbsoluteCount int
	AbsoluteTotal decimal.Decimal
	PossiblyCount int
	PossiblyTotal decimal.Decimal
}

const excludedListHeader = "订单号,支付日期时间,产品名称,价格（元）,排除原因"

// WriteExcludedList writes the excluded records in two sections: hard
// excludes first, then the possibly-related rows flagged for manual review.
func WriteExcludedList(w io.Writer, records []model.ClassifiedPurchase) (ExcludedStats, error) {
	stats := ExcludedStats{
		AbsoluteTotal: decimal.Zero,
		PossiblyTotal: decimal.Zero,
	}

	var absolute, possibly []model.ClassifiedPurchase
	for _, rec := range records {
		if !rec.Excluded() {
			continue
		}
		switch rec.ExcludeType {
		case model.ExcludeAbsolute:
			absolute = append(absolute, rec)
			stats.AbsoluteCount++
			stats.AbsoluteTotal = stats.AbsoluteTotal.Add(rec.Amount)
		case model.ExcludePossiblyRelated:
			possibly = append(possibly, rec)
			stats.PossiblyCount++
			stats.PossiblyTotal = stats.PossiblyTotal.Add(rec.Amount)
		}
	}

	var b strings.Builder
	b.WriteString(bom + excludedListHeader + "\n")

	b.WriteString("\n=== 绝对不相干 ===\n")
	for _, rec := range absolute {
		b.WriteString(excludedRow(rec))
	}

	b.WriteString("\n=== 不直接相关但有可能，需要人工确认 ===\n")
	for _, rec := range possibly {
		b.WriteString(excludedRow(rec))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return stats, fmt.Errorf("writing excluded list: %w", err)
	}
	return stats, nil
}

func excludedRow(rec model.ClassifiedPurchase) string {
	return quoteRow(rec.OrderID, rec.PayTime, rec.Product, rec.Amount.StringFixed(2), rec.Reason) + "\n"
}

// quoteRow joins fields into one CSV row with every field double-quoted.
func quoteRow(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
