package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlipayParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/alipay_records.txt")
	require.NoError(t, err)

	p := &AlipayParser{}
	records, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	// 8 data lines: one malformed, one income, one failed transaction.
	require.Len(t, records, 5)

	first := records[0]
	assert.Equal(t, "2025101522001430981", first.TransactionID)
	assert.Equal(t, "T2025101500001", first.OrderID)
	assert.Equal(t, "2025-10-15 09:12:40", first.PayTime)
	assert.Equal(t, "新良旗舰店", first.Counterparty)
	assert.Equal(t, "新良面粉 高筋 5kg", first.Product)
	assert.Equal(t, "45.50", first.Amount.StringFixed(2))
	assert.Contains(t, first.Direction, "支出")
	assert.Contains(t, first.Status, "交易成功")

	overseas := records[2]
	assert.Equal(t, "阿里巴巴和外部商家", overseas.Source)
	assert.Equal(t, "1234.56", overseas.Amount.StringFixed(2))

	stripe := records[3]
	assert.Equal(t, "Stripe Inc", stripe.Counterparty)
	assert.Equal(t, "STRIPE", stripe.Product)
}

func TestAlipayParser_OnlySuccessfulExpenses(t *testing.T) {
	data, err := os.ReadFile("../../testdata/alipay_records.txt")
	require.NoError(t, err)

	p := &AlipayParser{}
	records, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	for _, rec := range records {
		assert.Contains(t, rec.Direction, "支出")
		assert.Contains(t, rec.Status, "交易成功")
	}
}

func TestAlipayParser_EmptyInput(t *testing.T) {
	p := &AlipayParser{}
	records, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, records)
}

func TestAlipayParser_HeaderOnly(t *testing.T) {
	input := "line1\nline2\nline3\nline4\nline5\n"
	p := &AlipayParser{}
	records, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Nil(t, records)
}

func TestAlipayParser_LenientAmount(t *testing.T) {
	// A data row with an unparseable amount keeps the line with amount 0.
	line := "TX1\t,ORDER1\t ,2025-10-15 09:00:00,2025-10-15 09:00:01,2025-10-15 09:00:02,淘宝,即时到账交易,某店,某商品,无效金额,支出      ,交易成功    ,"
	input := "h\nh\nh\nh\nh\n" + line + "\n"

	p := &AlipayParser{}
	records, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Amount.IsZero())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"45.50", "45.50"},
		{"1,234.56", "1234.56"},
		{" 99 ", "99.00"},
		{"", "0.00"},
		{"abc", "0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseAmount(tt.in).StringFixed(2), "input %q", tt.in)
	}
}
