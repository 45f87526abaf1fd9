package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bakeledger-dev/bakeledger/internal/model"
	"github.com/bakeledger-dev/bakeledger/internal/rules"
)

// BankClassifier assigns bank statement rows to company/personal/unknown.
// It is deliberately conservative: all non-refund income is treated as
// company revenue, and expenses default to personal unless a strong
// business signal matches.
type BankClassifier struct {
	rules       rules.BankRules
	largeAmount decimal.Decimal
}

// NewBankClassifier creates a BankClassifier. Expenses at or above
// largeAmount combined with a government/tax keyword are treated as company.
func NewBankClassifier(rs *rules.Ruleset, largeAmount decimal.Decimal) *BankClassifier {
	return &BankClassifier{rules: rs.Bank, largeAmount: largeAmount}
}

// Classify categorizes one bank transaction. Matching is case-insensitive.
func (c *BankClassifier) Classify(txn model.BankTransaction) model.BankClassification {
	desc := strings.ToLower(txn.Description)

	isRefund := containsAny(desc, c.rules.Refund)

	if txn.Amount.IsPositive() && !isRefund {
		return model.BankClassification{
			Type:       model.TxnIncome,
			Party:      model.PartyCompany,
			Confidence: model.ConfidenceHigh,
			Reason:     "amount > 0 and not a refund, treated as company income",
		}
	}

	txnType := model.TxnExpense
	if isRefund {
		txnType = model.TxnRefund
	}

	if containsAny(desc, c.rules.PossibleSupplier) {
		return model.BankClassification{
			Type:       txnType,
			Party:      model.PartyUnknown,
			Confidence: model.ConfidenceMedium,
			Reason:     "matches possible supplier keyword, requires manual review",
		}
	}

	if containsAny(desc, c.rules.BusinessExpense) {
		return model.BankClassification{
			Type:       txnType,
			Party:      model.PartyCompany,
			Confidence: model.ConfidenceHigh,
			Reason:     "matched business expense keyword",
		}
	}

	if containsAny(desc, c.rules.Supermarket) {
		return model.BankClassification{
			Type:       txnType,
			Party:      model.PartyUnknown,
			Confidence: model.ConfidenceMedium,
			Reason:     "supermarket transaction, requires manual review",
		}
	}

	if containsAny(desc, c.rules.Personal) {
		return model.BankClassification{
			Type:       txnType,
			Party:      model.PartyPersonal,
			Confidence: model.ConfidenceHigh,
			Reason:     "matched personal expense keyword",
		}
	}

	if txn.Amount.Abs().GreaterThanOrEqual(c.largeAmount) && containsAny(desc, c.rules.Government) {
		return model.BankClassification{
			Type:       txnType,
			Party:      model.PartyCompany,
			Confidence: model.ConfidenceMedium,
			Reason:     "large amount with government/tax keyword",
		}
	}

	// Conservative default for tax purposes: unmatched expenses stay
	// personal and get a low confidence for later review.
	return model.BankClassification{
		Type:       txnType,
		Party:      model.PartyPersonal,
		Confidence: model.ConfidenceLow,
		Reason:     "no strong keyword matched, default to personal",
	}
}
