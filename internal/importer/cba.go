package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bakeledger-dev/bakeledger/internal/model"
)

// CBAParser parses Commonwealth Bank CSV exports: date, amount, description
// and an optional running balance, with quoted fields and a signed amount.
type CBAParser struct{}

const (
	cbaMinFields  = 3
	cbaColDate    = 0
	cbaColAmount  = 1
	cbaColDesc    = 2
	cbaColBalance = 3
)

// Format returns the parser name.
func (p *CBAParser) Format() string { return "cba" }

// Parse reads a CBA CSV and returns BankTransactions. The header row is
// detected by a non-numeric amount; malformed rows are skipped with a
// warning.
func (p *CBAParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var txns []model.BankTransaction
	row := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			slog.Warn("skipping unreadable CSV row", "row", row, "error", err)
			continue
		}

		txn, ok := parseCBARow(rec)
		if !ok {
			// Row 1 with a non-numeric amount is the header; anything
			// else is a malformed line worth flagging.
			if row > 1 {
				slog.Warn("skipping malformed CSV row", "row", row)
			}
			continue
		}
		txns = append(txns, txn)
	}

	if len(txns) == 0 {
		return nil, fmt.Errorf("no valid transactions parsed from CSV")
	}
	return txns, nil
}

func parseCBARow(rec []string) (model.BankTransaction, bool) {
	if len(rec) < cbaMinFields {
		return model.BankTransaction{}, false
	}

	date := strings.TrimSpace(rec[cbaColDate])
	amountStr := cleanBankAmount(rec[cbaColAmount])
	desc := strings.TrimSpace(rec[cbaColDesc])
	balance := ""
	if len(rec) > cbaColBalance {
		balance = cleanBankAmount(rec[cbaColBalance])
	}

	if date == "" || amountStr == "" {
		return model.BankTransaction{}, false
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return model.BankTransaction{}, false
	}

	return model.BankTransaction{
		Date:        date,
		Amount:      amount,
		Description: desc,
		Balance:     balance,
	}, true
}

// cleanBankAmount strips the '+' sign prefix, stray quotes and thousands
// separators CBA puts in amount columns.
func cleanBankAmount(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "+", "")
	s = strings.ReplaceAll(s, "\"", "")
	s = strings.ReplaceAll(s, ",", "")
	return s
}
