package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakeledger-dev/bakeledger/internal/model"
	"github.com/bakeledger-dev/bakeledger/internal/rules"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newTestClassifier() *Classifier {
	return NewClassifier(rules.Default(), decimal.NewFromInt(300))
}

func classifyProduct(c *Classifier, product, amount string) model.Classification {
	return c.Classify(model.PurchaseRecord{Product: product, Amount: dec(amount)})
}

func TestClassify_RawMaterial(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		product string
		amount  string
	}{
		{"新良面粉 高筋 5kg", "45.50"},
		{"安佳黄油 454g", "62.00"},
		{"烘焙原料 大礼包", "120.00"},
	}
	for _, tt := range tests {
		got := classifyProduct(c, tt.product, tt.amount)
		assert.Equal(t, model.CategoryRawMaterial, got.Category, "product %q", tt.product)
		assert.Empty(t, got.Reason)
	}
}

func TestClassify_AmbiguousIngredientContext(t *testing.T) {
	// 三洋糕粉 sits in the consumable table and 粉-adjacent terms overlap
	// with exclude keywords; the bakery context must keep it in scope.
	c := newTestClassifier()
	got := classifyProduct(c, "三洋糕粉 500g", "25.00")
	assert.NotEqual(t, model.CategoryOther, got.Category)
	assert.Equal(t, model.CategoryConsumable, got.Category)
}

func TestClassify_EquipmentThreshold(t *testing.T) {
	c := newTestClassifier()

	// Below 300: small-ticket tool, reclassified as consumable.
	got := classifyProduct(c, "压面机 小型", "250.00")
	assert.Equal(t, model.CategoryConsumable, got.Category)

	// At/above 300: capital equipment.
	got = classifyProduct(c, "压面机 商用", "5000.00")
	assert.Equal(t, model.CategoryEquipment, got.Category)

	got = classifyProduct(c, "压面机", "300.00")
	assert.Equal(t, model.CategoryEquipment, got.Category)
}

func TestClassify_DisposableMoldIsNeverEquipment(t *testing.T) {
	c := newTestClassifier()

	for _, product := range []string{"一次性模具 50个装", "纸模具 50个装"} {
		got := classifyProduct(c, product, "400.00")
		assert.NotEqual(t, model.CategoryEquipment, got.Category, "product %q", product)
		// Falls through to the consumable table (模具/一次性/纸杯 overlap).
		assert.Equal(t, model.CategoryConsumable, got.Category, "product %q", product)
	}

	// A durable mold above the threshold stays equipment.
	got := classifyProduct(c, "模具 不锈钢 商用", "400.00")
	assert.Equal(t, model.CategoryEquipment, got.Category)
}

func TestClassify_BusinessSoftwareOverride(t *testing.T) {
	c := newTestClassifier()

	// Stripe needs both counterparty and product to match.
	got := c.Classify(model.PurchaseRecord{
		Product:      "STRIPE",
		Counterparty: "Stripe Inc",
		Amount:       dec("30.00"),
	})
	assert.Equal(t, model.CategoryConsumable, got.Category)

	// Product alone is not enough for Stripe.
	got = c.Classify(model.PurchaseRecord{
		Product:      "STRIPE",
		Counterparty: "Some Shop",
		Amount:       dec("30.00"),
	})
	assert.NotEqual(t, model.CategoryConsumable, got.Category)

	// Midjourney matches on product name only.
	got = classifyProduct(c, "Midjourney subscription", "80.00")
	assert.Equal(t, model.CategoryConsumable, got.Category)
}

func TestClassify_OverseasPayment(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify(model.PurchaseRecord{
		Product: "某某商品",
		Source:  "阿里巴巴和外部商家",
		Amount:  dec("99.00"),
	})
	assert.Equal(t, model.CategoryOverseasPayment, got.Category)

	got = classifyProduct(c, "海外税费费用", "12.00")
	assert.Equal(t, model.CategoryOverseasPayment, got.Category)
}

func TestClassify_AbsoluteExclude(t *testing.T) {
	c := newTestClassifier()

	got := classifyProduct(c, "花呗自动还款", "500.00")
	require.Equal(t, model.CategoryOther, got.Category)
	assert.Equal(t, model.ExcludeAbsolute, got.ExcludeType)
	assert.Contains(t, got.Reason, "花呗")
}

func TestClassify_AmbiguousExcludeSuppressedByBakeryContext(t *testing.T) {
	c := newTestClassifier()

	// 箱 is an exclude keyword, but 雪媚娘 marks bakery context; the row
	// must not land in other/absolute.
	got := classifyProduct(c, "雪媚娘专用箱", "35.00")
	if got.Category == model.CategoryOther {
		assert.Equal(t, model.ExcludePossiblyRelated, got.ExcludeType)
	}

	// Without bakery context the same keyword excludes.
	got = classifyProduct(c, "樟木箱 大号", "200.00")
	require.Equal(t, model.CategoryOther, got.Category)
	assert.Equal(t, model.ExcludeAbsolute, got.ExcludeType)
}

func TestClassify_AmbiguousSuppressionIsPerKeyword(t *testing.T) {
	c := newTestClassifier()

	// 包 is suppressed by the 驴打滚 context, but the unambiguous 药
	// keyword still excludes the row on the next scan step.
	got := classifyProduct(c, "驴打滚包 配药品", "40.00")
	require.Equal(t, model.CategoryOther, got.Category)
	assert.Equal(t, model.ExcludeAbsolute, got.ExcludeType)
	assert.Contains(t, got.Reason, "药")
}

func TestClassify_PossiblyRelated(t *testing.T) {
	c := newTestClassifier()

	got := classifyProduct(c, "JOY MART purchase", "80.00")
	require.Equal(t, model.CategoryOther, got.Category)
	assert.Equal(t, model.ExcludePossiblyRelated, got.ExcludeType)
	assert.Contains(t, got.Reason, "JOY MART")
}

func TestClassify_DefaultFallback(t *testing.T) {
	c := newTestClassifier()

	got := classifyProduct(c, "完全无关的东西XYZ", "10.00")
	require.Equal(t, model.CategoryOther, got.Category)
	assert.Equal(t, model.ExcludePossiblyRelated, got.ExcludeType)
	assert.Equal(t, "未匹配到烘焙相关关键词", got.Reason)
}

func TestClassify_EmptyProduct(t *testing.T) {
	c := newTestClassifier()

	got := classifyProduct(c, "", "10.00")
	require.Equal(t, model.CategoryOther, got.Category)
	assert.Equal(t, model.ExcludeAbsolute, got.ExcludeType)
	assert.Equal(t, "产品名称为空", got.Reason)
}

func TestClassify_Totality(t *testing.T) {
	c := newTestClassifier()
	valid := map[model.Category]bool{
		model.CategoryRawMaterial:     true,
		model.CategoryConsumable:      true,
		model.CategoryEquipment:       true,
		model.CategoryOverseasPayment: true,
		model.CategoryOther:           true,
	}

	products := []string{
		"", "面粉", "压面机", "Midjourney", "随机文本", "茶叶", "包装盒",
		"海外税费费用", "JOY MART", "电影票", "一次性模具",
	}
	for _, p := range products {
		got := classifyProduct(c, p, "100.00")
		assert.True(t, valid[got.Category], "product %q yielded %q", p, got.Category)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := newTestClassifier()
	rec := model.PurchaseRecord{
		Product:      "压面机 小型",
		Counterparty: "某五金店",
		Source:       "淘宝",
		Amount:       dec("250.00"),
	}

	first := c.Classify(rec)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Classify(rec))
	}
}
