package report

import (
	"fmt"
	"io"
	"strings"
)

const ruleWidth = 60

// WriteStatistics renders the consolidated text summary: per-category counts
// and sums, the grand total, and each category's share of the total amount.
func WriteStatistics(w io.Writer, totals *Totals) error {
	var b strings.Builder

	heavy := strings.Repeat("=", ruleWidth)
	light := strings.Repeat("-", ruleWidth)

	b.WriteString(heavy + "\n")
	b.WriteString("                   支付宝交易记录处理统计\n")
	b.WriteString(heavy + "\n\n")

	b.WriteString("类别统计：\n")
	b.WriteString(light + "\n")
	for _, cat := range CategoryOrder {
		fmt.Fprintf(&b, "%s: %4d 笔    %12s 元\n",
			padLabel(CategoryLabels[cat]), totals.Count(cat), totals.Sum(cat).StringFixed(2))
	}
	b.WriteString(light + "\n")
	fmt.Fprintf(&b, "%s: %4d 笔    %12s 元\n",
		padLabel("合计"), totals.GrandCount(), totals.GrandTotal().StringFixed(2))
	b.WriteString(heavy + "\n")

	b.WriteString("\n占比分析：\n")
	b.WriteString(light + "\n")
	if !totals.GrandTotal().IsZero() {
		for _, cat := range CategoryOrder {
			fmt.Fprintf(&b, "%s: %s%%\n", padLabel(CategoryLabels[cat]), totals.Percent(cat).StringFixed(2))
		}
	}
	b.WriteString(heavy + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing statistics: %w", err)
	}
	return nil
}

// padLabel pads a CJK label to a fixed display width. Chinese characters
// render double-width, so padding counts runes rather than bytes.
func padLabel(label string) string {
	const width = 14
	n := 0
	for _, r := range label {
		if r > 0x7F {
			n += 2
		} else {
			n++
		}
	}
	if n >= width {
		return label
	}
	return label + strings.Repeat(" ", width-n)
}
