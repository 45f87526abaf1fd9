package importer

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bakeledger-dev/bakeledger/internal/model"
)

// AlipayParser parses Alipay transaction record exports. The format is a
// tab-then-comma delimited text file with a fixed header block and summary
// footer lines mixed into the data.
type AlipayParser struct{}

const (
	alipayHeaderLines = 5
	alipayMinTabParts = 3
	alipayMinFields   = 11

	// Sub-field positions after the comma split of the third tab part.
	alipayColCreateTime   = 1
	alipayColPayTime      = 2
	alipayColSource       = 4
	alipayColCounterparty = 6
	alipayColProduct      = 7
	alipayColAmount       = 8
	alipayColDirection    = 9
	alipayColStatus       = 10
)

// Format returns the parser name.
func (p *AlipayParser) Format() string { return "alipay" }

// Parse reads an Alipay export and returns the successful expense records.
// Malformed or out-of-scope lines are skipped, never an error.
func (p *AlipayParser) Parse(r io.Reader) ([]model.PurchaseRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []model.PurchaseRecord
	skipped := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		if lineNo <= alipayHeaderLines {
			continue
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || isAlipayBoilerplate(line) {
			continue
		}

		rec, ok := parseAlipayLine(line)
		if !ok {
			skipped++
			slog.Debug("skipping malformed statement line", "line", lineNo)
			continue
		}

		// Only successful expense transactions are in scope.
		if !strings.Contains(rec.Direction, "支出") || !strings.Contains(rec.Status, "交易成功") {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	if skipped > 0 {
		slog.Warn("skipped malformed statement lines", "count", skipped)
	}
	return records, nil
}

// isAlipayBoilerplate reports whether a line is a separator or one of the
// summary footer lines the export appends after the data.
func isAlipayBoilerplate(line string) bool {
	if strings.HasPrefix(line, "-") {
		return true
	}
	if strings.Contains(line, "共") ||
		strings.Contains(line, "已收入") ||
		strings.Contains(line, "待收入") ||
		strings.Contains(line, "待支出") ||
		strings.Contains(line, "导出时间") {
		return true
	}
	// The 已支出 summary line collides with real expense rows; a data row
	// always carries a padded direction field plus a success status.
	if strings.Contains(line, "已支出") && !strings.Contains(line, "支出      ,交易成功") {
		return true
	}
	return false
}

func parseAlipayLine(line string) (model.PurchaseRecord, bool) {
	tabParts := strings.Split(line, "\t")
	if len(tabParts) < alipayMinTabParts {
		return model.PurchaseRecord{}, false
	}

	fields := strings.Split(tabParts[2], ",")
	if len(fields) < alipayMinFields {
		return model.PurchaseRecord{}, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return model.PurchaseRecord{
		TransactionID: strings.TrimSpace(tabParts[0]),
		OrderID:       strings.TrimSpace(strings.TrimLeft(tabParts[1], ", \t")),
		CreateTime:    fields[alipayColCreateTime],
		PayTime:       fields[alipayColPayTime],
		Source:        fields[alipayColSource],
		Counterparty:  fields[alipayColCounterparty],
		Product:       fields[alipayColProduct],
		Amount:        parseAmount(fields[alipayColAmount]),
		Direction:     fields[alipayColDirection],
		Status:        fields[alipayColStatus],
	}, true
}

// parseAmount converts a statement amount field leniently: thousands
// separators are stripped and anything unparseable becomes zero rather than
// failing the line.
func parseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
