package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCBAParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/cba_statement.csv")
	require.NoError(t, err)

	p := &CBAParser{}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	// Header, one short line and one non-numeric amount are skipped.
	require.Len(t, txns, 6)

	first := txns[0]
	assert.Equal(t, "18/03/2025", first.Date)
	assert.Equal(t, "850.00", first.Amount.StringFixed(2))
	assert.True(t, first.Amount.IsPositive())
	assert.Equal(t, "Fast Transfer From MING HUANG INV20250529001", first.Description)
	assert.Equal(t, "12850.00", first.Balance)

	expense := txns[1]
	assert.True(t, expense.Amount.IsNegative())
	assert.Equal(t, "-150.00", expense.Amount.StringFixed(2))
}

func TestCBAParser_NoBalanceColumn(t *testing.T) {
	input := "01/04/2025,\"-20.00\",\"CAFE LUNCH\"\n"
	p := &CBAParser{}
	txns, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Empty(t, txns[0].Balance)
}

func TestCBAParser_QuotedDelimiter(t *testing.T) {
	input := "01/04/2025,\"-1,250.00\",\"FOODLINK, SYDNEY\",\"+100.00\"\n"
	p := &CBAParser{}
	txns, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "-1250.00", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "FOODLINK, SYDNEY", txns[0].Description)
}

func TestCBAParser_NoValidRows(t *testing.T) {
	p := &CBAParser{}
	_, err := p.Parse(strings.NewReader("Date,Amount,Description\n"))
	assert.Error(t, err)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("cba"))
	assert.NotNil(t, r.Get("CBA"))
	assert.Nil(t, r.Get("chase"))
}
