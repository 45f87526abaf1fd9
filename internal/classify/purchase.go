// Package classify implements the keyword classifiers for purchase records
// and bank statement rows. Classification is a pure function over the loaded
// rule tables: every input resolves to a category, never an error.
package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bakeledger-dev/bakeledger/internal/model"
	"github.com/bakeledger-dev/bakeledger/internal/rules"
)

// Markers recognized outside the keyword tables.
const (
	overseasSourceMarker  = "阿里巴巴和外部商家"
	overseasProductMarker = "海外税费费用"
	moldKeyword           = "模具"
)

// Disposability markers that turn a 模具 match into a consumable.
var disposableMarkers = []string{"一次性", "纸"}

// Classifier assigns purchase records to business categories.
type Classifier struct {
	rules              *rules.Ruleset
	equipmentThreshold decimal.Decimal
}

// NewClassifier creates a Classifier. Equipment matches below the threshold
// are reclassified as consumables (small-ticket tools are not capital
// equipment).
func NewClassifier(rs *rules.Ruleset, equipmentThreshold decimal.Decimal) *Classifier {
	return &Classifier{rules: rs, equipmentThreshold: equipmentThreshold}
}

// Classify categorizes one purchase. Rule order matters: the keyword tables
// overlap, and later rules only run when earlier ones did not match.
func (c *Classifier) Classify(rec model.PurchaseRecord) model.Classification {
	product := rec.Product

	// Known business software/services short-circuit everything else; a
	// generic keyword pass would misclassify them.
	if c.isBusinessSoftware(product, rec.Counterparty) {
		return model.Classification{Category: model.CategoryConsumable}
	}

	// Overseas payments are routed by source channel or product marker,
	// bypassing the keyword tables.
	if strings.Contains(rec.Source, overseasSourceMarker) ||
		strings.Contains(product, overseasProductMarker) {
		return model.Classification{Category: model.CategoryOverseasPayment}
	}

	if product == "" {
		return model.Classification{
			Category:    model.CategoryOther,
			ExcludeType: model.ExcludeAbsolute,
			Reason:      "产品名称为空",
		}
	}

	// Equipment terms are the most specific, so they go first.
	if c.matchesEquipment(product) {
		if rec.Amount.LessThan(c.equipmentThreshold) {
			return model.Classification{Category: model.CategoryConsumable}
		}
		return model.Classification{Category: model.CategoryEquipment}
	}

	for _, kw := range c.rules.RawMaterial {
		if strings.Contains(product, kw) {
			return model.Classification{Category: model.CategoryRawMaterial}
		}
	}

	for _, kw := range c.rules.Consumable {
		if strings.Contains(product, kw) {
			return model.Classification{Category: model.CategoryConsumable}
		}
	}

	// Hard excludes run only after every substantive table missed. An
	// ambiguous keyword (one that is also a substring of bakery terms) is
	// suppressed per-keyword when a bakery context phrase is present; the
	// scan then continues with the next exclude keyword.
	for _, kw := range c.rules.AbsoluteExclude {
		if !strings.Contains(product, kw) {
			continue
		}
		if contexts, ok := c.rules.AmbiguousExcludes[kw]; ok && containsAny(product, contexts) {
			continue
		}
		return model.Classification{
			Category:    model.CategoryOther,
			ExcludeType: model.ExcludeAbsolute,
			Reason:      "包含绝对排除关键词: " + kw,
		}
	}

	for _, kw := range c.rules.PossiblyRelated {
		if strings.Contains(product, kw) {
			return model.Classification{
				Category:    model.CategoryOther,
				ExcludeType: model.ExcludePossiblyRelated,
				Reason:      "可能相关（超市/商店购物，需确认是否包含烘焙用品）: " + kw,
			}
		}
	}

	return model.Classification{
		Category:    model.CategoryOther,
		ExcludeType: model.ExcludePossiblyRelated,
		Reason:      "未匹配到烘焙相关关键词",
	}
}

// isBusinessSoftware reports whether the record is a known software/service
// purchase. Stripe is keyed on counterparty plus product to avoid matching
// arbitrary text that merely mentions it.
func (c *Classifier) isBusinessSoftware(product, counterparty string) bool {
	for _, kw := range c.rules.BusinessSoftware {
		if kw == "Stripe" || kw == "STRIPE" {
			if strings.Contains(counterparty, "Stripe") && strings.Contains(product, "STRIPE") {
				return true
			}
			continue
		}
		if strings.Contains(product, kw) {
			return true
		}
	}
	return false
}

// matchesEquipment scans the equipment table. A bare 模具 match is skipped
// when the product also carries a disposability marker; that combination is
// a consumable, not durable equipment.
func (c *Classifier) matchesEquipment(product string) bool {
	for _, kw := range c.rules.Equipment {
		if !strings.Contains(product, kw) {
			continue
		}
		if kw == moldKeyword && containsAny(product, disposableMarkers) {
			continue
		}
		return true
	}
	return false
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
