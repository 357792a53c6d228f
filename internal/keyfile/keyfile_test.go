package keyfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatmap/internal/analyze"
)

const sample = `
version: "1"
types:
  - type: store.Address
    keys:
      Zip: Postcode
  - type: flatmap/store.Order
    mandatory: [Id, Placed]
    ignore: Coupon
`

func storeGraph(t *testing.T) *analyze.TypeGraph {
	t.Helper()

	graph, err := analyze.NewAnalyzer().LoadPackages("flatmap/store")
	require.NoError(t, err)

	return graph
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Types, 2)
	assert.Equal(t, map[string]string{"Zip": "Postcode"}, f.Types[0].Keys)
	assert.Equal(t, StringOrArray{"Id", "Placed"}, f.Types[1].Mandatory)
	assert.Equal(t, StringOrArray{"Coupon"}, f.Types[1].Ignore)
}

func TestParse_DefaultVersion(t *testing.T) {
	f, err := Parse([]byte("types: []"))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)

	_, err = Parse([]byte("types: {"))
	require.Error(t, err)
}

func TestMarshal_StringOrArray(t *testing.T) {
	out, err := Marshal(&File{Version: "1", Types: []TypeKeys{{
		Type:      "Line",
		Mandatory: StringOrArray{"Sku"},
		Ignore:    StringOrArray{"Qty", "PriceCents"},
	}}})
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "mandatory: Sku\n")
	assert.Contains(t, s, "ignore:\n")
	assert.Contains(t, s, "- PriceCents\n")
}

func TestResolveTypeID(t *testing.T) {
	graph := storeGraph(t)

	for _, name := range []string{"Order", "store.Order", "flatmap/store.Order"} {
		info := ResolveTypeID(name, graph)
		require.NotNil(t, info, name)
		assert.Equal(t, "Order", info.ID.Name)
	}

	assert.Nil(t, ResolveTypeID("warehouse.Order", graph))
	assert.Nil(t, ResolveTypeID("Invoice", graph))
	assert.Nil(t, ResolveTypeID("", graph))
	assert.Nil(t, ResolveTypeID(".Order", graph))
}

func TestCompileAndApply(t *testing.T) {
	graph := storeGraph(t)

	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	set, diags := Compile(f, graph)
	require.NoError(t, diags.Error())

	address := analyze.TypeID{PkgPath: "flatmap/store", Name: "Address"}
	order := analyze.TypeID{PkgPath: "flatmap/store", Name: "Order"}

	assert.Equal(t, analyze.FlatTag{Key: "Postcode"}, set.Apply(address, "Zip", analyze.FlatTag{Key: "PostalCode"}))
	assert.Equal(t, analyze.FlatTag{}, set.Apply(address, "City", analyze.FlatTag{}))
	assert.Equal(t, analyze.FlatTag{Mandatory: true}, set.Apply(order, "Placed", analyze.FlatTag{}))
	assert.Equal(t, analyze.FlatTag{Skip: true}, set.Apply(order, "Coupon", analyze.FlatTag{Key: "Code"}))

	var none Set
	assert.Equal(t, analyze.FlatTag{Key: "K"}, none.Apply(order, "Id", analyze.FlatTag{Key: "K"}))
}

func TestValidate(t *testing.T) {
	graph := storeGraph(t)

	tests := []struct {
		name  string
		yaml  string
		codes []string
	}{
		{
			name:  "unknown type",
			yaml:  "types: [{type: store.Invoice}]",
			codes: []string{"type_not_found"},
		},
		{
			name:  "not a struct",
			yaml:  "types: [{type: OrderStatus}]",
			codes: []string{"not_a_struct"},
		},
		{
			name:  "duplicate type",
			yaml:  "types: [{type: Order}, {type: store.Order}]",
			codes: []string{"duplicate_type"},
		},
		{
			name:  "unknown field",
			yaml:  "types: [{type: Line, keys: {Skuu: Code}, mandatory: Qty}]",
			codes: []string{"field_not_found"},
		},
		{
			name:  "empty key",
			yaml:  "types: [{type: Line, keys: {Sku: ''}}]",
			codes: []string{"empty_key"},
		},
		{
			name:  "version",
			yaml:  "version: '2'\ntypes: []",
			codes: []string{"unsupported_version"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			diags := Validate(f, graph)
			assert.Equal(t, tt.codes, diags.Codes())
		})
	}
}

func TestValidate_Suggestions(t *testing.T) {
	f, err := Parse([]byte("types: [{type: Line, ignore: [Skuu]}]"))
	require.NoError(t, err)

	diags := Validate(f, storeGraph(t))
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, []string{"Sku"}, diags.Errors[0].Suggestions)
	assert.Contains(t, diags.Error().Error(), `did you mean Sku?`)
}

func TestValidate_Warnings(t *testing.T) {
	f, err := Parse([]byte("types: [{type: Line, keys: {Qty: Count}, mandatory: Qty, ignore: Qty}]"))
	require.NoError(t, err)

	diags := Validate(f, storeGraph(t))
	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, "ignored_field_keyed", diags.Warnings[0].Code)
	assert.Equal(t, "ignored_field_mandatory", diags.Warnings[1].Code)
}

func TestValidate_Nil(t *testing.T) {
	assert.Equal(t, []string{"file_is_nil"}, Validate(nil, nil).Codes())
	assert.Equal(t, []string{"graph_is_nil"}, Validate(&File{Version: "1"}, nil).Codes())
}
