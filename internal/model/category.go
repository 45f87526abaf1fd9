package model

// Category is the business category assigned to a purchase record.
type Category string

const (
	CategoryRawMaterial     Category = "raw_material"
	CategoryConsumable      Category = "consumable"
	CategoryEquipment       Category = "equipment"
	CategoryOverseasPayment Category = "overseas_payment"
	CategoryOther           Category = "other"
)

// ExcludeType subdivides CategoryOther by how the record was ruled out.
type ExcludeType string

const (
	// ExcludeAbsolute marks records that matched a hard exclude keyword.
	ExcludeAbsolute ExcludeType = "absolute"
	// ExcludePossiblyRelated marks records that need manual review.
	ExcludePossiblyRelated ExcludeType = "possibly_related"
)

// Classification is the classifier verdict for one purchase record.
// Reason and ExcludeType are only set for CategoryOther.
type Classification struct {
	Category    Category
	ExcludeType ExcludeType
	Reason      string
}

// Excluded reports whether the record was ruled out rather than categorized.
func (c Classification) Excluded() bool {
	return c.Category == CategoryOther
}
