package model

import "github.com/shopspring/decimal"

// BankTransaction represents a parsed bank CSV row.
type BankTransaction struct {
	Date        string
	Amount      decimal.Decimal // negative = expense, positive = income
	Description string
	Balance     string // optional fourth column, passed through
}

// TxnType is the income/expense/refund axis of a bank classification.
type TxnType string

const (
	TxnIncome  TxnType = "income"
	TxnExpense TxnType = "expense"
	TxnRefund  TxnType = "refund"
)

// Party is the company/personal axis of a bank classification.
type Party string

const (
	PartyCompany  Party = "company"
	PartyPersonal Party = "personal"
	PartyUnknown  Party = "unknown"
)

// Confidence grades how strong the matching signal was.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// BankClassification is the classifier verdict for one bank transaction.
type BankClassification struct {
	Type       TxnType
	Party      Party
	Confidence Confidence
	Reason     string
}

// ClassifiedBankTransaction pairs a bank row with its verdict.
type ClassifiedBankTransaction struct {
	BankTransaction
	BankClassification
}
