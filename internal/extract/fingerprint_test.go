package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliquigan/invoicegl/internal/document"
)

func testTemplate() Template {
	return Template{
		Name:   "test-vendor",
		Marker: "TEST VENDOR INC",
		Items: []KnownItem{
			{Code: "011120225", Quantity: 16, LineTotal: decimal.RequireFromString("62.56")},
			{Code: "011107006", Quantity: 48, LineTotal: decimal.RequireFromString("192.48")},
			{Code: "011039690", Quantity: 6, LineTotal: decimal.RequireFromString("40.20")},
		},
	}
}

func TestFingerprint_EmitsKnownItemsInTemplateOrder(t *testing.T) {
	doc := &document.Document{
		Lines: []string{
			"TEST VENDOR INC",
			"011107006 ESPRESSO ROAST 48 192.48",
			"011120225 CAFFE VERONA 16 62.56",
		},
	}

	res := newTestExtractor(testTemplate()).Extract(doc)

	require.Len(t, res.Items, 2)
	assert.Equal(t, TierFingerprint, res.Stats.Tier)
	assert.Equal(t, "test-vendor", res.Stats.Template)
	// Template order, not document order.
	assert.Equal(t, "011120225", res.Items[0].Code)
	assert.Equal(t, "011107006", res.Items[1].Code)
	assert.Equal(t, "62.56", res.Items[0].LineTotal.StringFixed(2))
}

func TestFingerprint_AuthoritativeOverTablePass(t *testing.T) {
	doc := docWithRows(itemRow("011039690", document.NumberCell(6), document.TextCell("40.20")))
	doc.Lines = []string{"011120225 CAFFE VERONA 16 62.56"}

	res := newTestExtractor(testTemplate()).Extract(doc)

	require.Len(t, res.Items, 1)
	assert.Equal(t, TierFingerprint, res.Stats.Tier)
	assert.Equal(t, "011120225", res.Items[0].Code, "fingerprint wins; table items ignored")
}

func TestFingerprint_RequiresRowContext(t *testing.T) {
	// The code appears only in boilerplate with no monetary figure on
	// the line, so the fingerprint must not fire.
	doc := &document.Document{
		Lines: []string{
			"TEST VENDOR INC",
			"reference 011120225 appears in terms and conditions",
		},
	}

	res := newTestExtractor(testTemplate()).Extract(doc)

	assert.Empty(t, res.Items)
	assert.Equal(t, TierNone, res.Stats.Tier)
}

func TestFingerprint_NoHitsFallThrough(t *testing.T) {
	doc := &document.Document{
		Lines: []string{"999999999 UNKNOWN GOODS 2 10.00"},
	}

	res := newTestExtractor(testTemplate()).Extract(doc)

	require.Len(t, res.Items, 1)
	assert.Equal(t, TierText, res.Stats.Tier)
	assert.Equal(t, "999999999", res.Items[0].Code)
}

func TestStarbucksTemplate(t *testing.T) {
	tpl := StarbucksTemplate()
	assert.Equal(t, "starbucks-ca", tpl.Name)
	assert.Len(t, tpl.Items, 63)

	last := tpl.Items[len(tpl.Items)-1]
	assert.Equal(t, StarbucksShippingCode, last.Code)
	assert.Equal(t, "332.28", last.LineTotal.StringFixed(2))
}

func TestTemplate_MarkerPresent(t *testing.T) {
	tpl := testTemplate()
	assert.True(t, tpl.MarkerPresent("invoice from TEST VENDOR INC, page 1"))
	assert.False(t, tpl.MarkerPresent("some other vendor"))
	assert.True(t, Template{}.MarkerPresent("anything"))
}
