package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Priority(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want aggregateField
	}{
		{"shipping", "SHIPPING AND HANDLING 332.28", fieldShipping},
		{"hdlg", "HDLG CHARGE 332.28", fieldShipping},
		{"subtotal", "SUB TOTAL 12504.77", fieldSubtotal},
		{"grand total", "TOTAL (CAD) 13591.55", fieldTotal},
		{"tax", "TAX 753.50", fieldTax},
		{"tax summary header ignored", "TAX SUMMARY", fieldNone},
		{"shipping wins over tax", "SHIPPING TAX 10.00", fieldShipping},
		{"subtotal wins over tax", "SUB TOTAL BEFORE TAX 10.00", fieldSubtotal},
		{"plain item row", "011120225 16 62.56", fieldNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classify(tc.in))
		})
	}
}

func TestConsumeRow_TakesLastNumber(t *testing.T) {
	var acc Accumulator

	consumed := acc.ConsumeRow("SUB TOTAL 16.00 62.56")
	require.True(t, consumed)
	assert.Equal(t, "62.56", acc.Totals().Subtotal.StringFixed(2))
}

func TestConsumeRow_LabelWithoutNumberStillConsumes(t *testing.T) {
	var acc Accumulator

	require.True(t, acc.ConsumeRow("SUB TOTAL"))
	assert.True(t, acc.Totals().Subtotal.IsZero())
}

func TestConsumeRow_NonAggregateRow(t *testing.T) {
	var acc Accumulator
	assert.False(t, acc.ConsumeRow("011120225 CAFFE VERONA 16 62.56"))
}

func TestFillFromText_DoesNotOverwriteTableValues(t *testing.T) {
	var acc Accumulator
	require.True(t, acc.ConsumeRow("SUB TOTAL 100.00"))

	acc.FillFromText([]string{
		"SUB TOTAL 999.99",
		"TAX 7.50",
		"TOTAL (CAD) 110.00",
	})

	totals := acc.Totals()
	assert.Equal(t, "100.00", totals.Subtotal.StringFixed(2), "table value survives the text pass")
	assert.Equal(t, "7.50", totals.Tax.StringFixed(2))
	assert.Equal(t, "110.00", totals.Total.StringFixed(2))
}

func TestFillFromText_GroupTriggerSkipsWhenAllSet(t *testing.T) {
	var acc Accumulator
	require.True(t, acc.ConsumeRow("SUB TOTAL 100.00"))
	require.True(t, acc.ConsumeRow("TAX 5.00"))
	require.True(t, acc.ConsumeRow("TOTAL (CAD) 105.00"))

	acc.FillFromText([]string{"SUB TOTAL 999.99", "TAX 999.99", "TOTAL (CAD) 999.99"})

	totals := acc.Totals()
	assert.Equal(t, "100.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", totals.Tax.StringFixed(2))
	assert.Equal(t, "105.00", totals.Total.StringFixed(2))
}

func TestFillFromText_ShippingCheckedSeparately(t *testing.T) {
	var acc Accumulator
	require.True(t, acc.ConsumeRow("SUB TOTAL 100.00"))
	require.True(t, acc.ConsumeRow("TAX 5.00"))
	require.True(t, acc.ConsumeRow("TOTAL (CAD) 105.00"))

	acc.FillFromText([]string{"SHIPPING, HDLG 332.28"})

	assert.Equal(t, "332.28", acc.Totals().Shipping.StringFixed(2))
}

func TestFillFromText_TaxSummaryLineIgnored(t *testing.T) {
	var acc Accumulator
	acc.FillFromText([]string{
		"TAX SUMMARY 999.99",
		"TAX 753.50",
	})
	assert.Equal(t, "753.50", acc.Totals().Tax.StringFixed(2))
}
