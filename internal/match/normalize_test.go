package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := map[string]string{
		"PostalCode":     "postalcode",
		"postal_code":    "postalcode",
		"postal-code":    "postalcode",
		"Postal Code":    "postalcode",
		"XMLPayload":     "xmlpayload",
		"PriceCents":     "pricecents",
		"TestDateYear":   "testdateyear",
		"test_date_year": "testdateyear",
		"":               "",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeIdent(in), in)
	}
}

func TestNormalizeIdentWithSuffixStrip(t *testing.T) {
	tests := map[string]string{
		"CustomerId":  "customer",
		"customer_id": "customer",
		"LineIds":     "line",
		"PlacedAt":    "placed",
		"PlacedUTC":   "placed",
		"Id":          "id",
		"At":          "at",
		"Sku":         "sku",
		"PriceCents":  "pricecents",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeIdentWithSuffixStrip(in), in)
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"PostalCode", []string{"Postal", "Code"}},
		{"postalCode", []string{"postal", "Code"}},
		{"HTTPHeader", []string{"HTTP", "Header"}},
		{"lines_sku", []string{"lines", "sku"}},
		{"Id", []string{"Id"}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tokenizeCamelCase(tt.input), tt.input)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Inners[3].Name", "inners[].name"},
		{"Inners[].Name", "inners[].name"},
		{"[0]Year", "[]year"},
		{"[12].Lines[0].Sku", "[].lines[].sku"},
		{"billing_address.ZipCode", "billingaddress.zipcode"},
		{"TestDateYear", "testdateyear"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeKey(tt.input), tt.input)
	}
}

func TestLeafSegment(t *testing.T) {
	assert.Equal(t, "Sku", leafSegment("Lines[0].Sku"))
	assert.Equal(t, "Year", leafSegment("[0]Year"))
	assert.Equal(t, "Id", leafSegment("Id"))
	assert.Equal(t, "", leafSegment("Tags[]"))
}
