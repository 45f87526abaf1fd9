package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bakeledger-dev/bakeledger/internal/model"
)

// bankHeader is the CSV header for classified bank output.
const bankHeader = "Date,Amount,Description,Balance,Type,Party,Confidence,Reason"

// WriteClassifiedBank writes bank rows with their classification columns
// appended, BOM-prefixed for spreadsheet import.
func WriteClassifiedBank(w io.Writer, rows []model.ClassifiedBankTransaction) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(bankHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		rec := []string{
			row.Date,
			row.Amount.StringFixed(2),
			row.Description,
			row.Balance,
			string(row.Type),
			string(row.Party),
			string(row.Confidence),
			row.Reason,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// BankSummary accumulates income and expense totals by party. Expense and
// refund amounts are tallied as absolute values.
type BankSummary struct {
	CompanyIncome   decimal.Decimal
	PersonalIncome  decimal.Decimal
	CompanyExpense  decimal.Decimal
	PersonalExpense decimal.Decimal
	UnknownExpense  decimal.Decimal
}

// SummarizeBank folds classified bank rows into a BankSummary.
func SummarizeBank(rows []model.ClassifiedBankTransaction) BankSummary {
	var s BankSummary
	for _, row := range rows {
		switch row.Type {
		case model.TxnIncome:
			if row.Party == model.PartyCompany {
				s.CompanyIncome = s.CompanyIncome.Add(row.Amount)
			} else {
				s.PersonalIncome = s.PersonalIncome.Add(row.Amount)
			}
		case model.TxnExpense, model.TxnRefund:
			value := row.Amount.Abs()
			switch row.Party {
			case model.PartyCompany:
				s.CompanyExpense = s.CompanyExpense.Add(value)
			case model.PartyPersonal:
				s.PersonalExpense = s.PersonalExpense.Add(value)
			default:
				s.UnknownExpense = s.UnknownExpense.Add(value)
			}
		}
	}
	return s
}

// Render returns the human-readable summary block printed after a bank run.
func (s BankSummary) Render() string {
	var b strings.Builder
	b.WriteString("Income summary (amount > 0):\n")
	fmt.Fprintf(&b, "  Company income : $%s\n", s.CompanyIncome.StringFixed(2))
	fmt.Fprintf(&b, "  Personal income: $%s\n\n", s.PersonalIncome.StringFixed(2))
	b.WriteString("Expense summary (absolute values):\n")
	fmt.Fprintf(&b, "  Company expense : $%s\n", s.CompanyExpense.StringFixed(2))
	fmt.Fprintf(&b, "  Personal expense: $%s\n", s.PersonalExpense.StringFixed(2))
	fmt.Fprintf(&b, "  Unknown expense : $%s\n", s.UnknownExpense.StringFixed(2))
	return b.String()
}
