package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePkg = "flatmap/store"

func loadStore(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(storePkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func field(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}

	require.Failf(t, "field not found", "%s has no field %s", info.ID, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadStore(t)

	assert.Contains(t, graph.Packages, storePkg)
	assert.Contains(t, graph.Types, TypeID{PkgPath: storePkg, Name: "Order"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: storePkg, Name: "Line"})
	assert.ElementsMatch(t, []TypeID{
		{PkgPath: storePkg, Name: "Address"},
		{PkgPath: storePkg, Name: "Customer"},
		{PkgPath: storePkg, Name: "Line"},
		{PkgPath: storePkg, Name: "Order"},
		{PkgPath: storePkg, Name: "OrderStatus"},
	}, graph.Packages[storePkg].Types)
}

func TestAnalyzer_StoreOrderFields(t *testing.T) {
	graph := loadStore(t)

	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NotNil(t, order)
	assert.Equal(t, TypeKindStruct, order.Kind)

	var names []string
	for _, f := range order.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"Id", "Customer", "Placed", "Express", "Status", "Shipping", "Lines", "Tags", "Coupon"}, names)
}

func TestAnalyzer_ExternalTypes(t *testing.T) {
	graph := loadStore(t)
	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})

	placed := field(t, order, "Placed")
	assert.Equal(t, TypeKindExternal, placed.Type.Kind)
	assert.True(t, placed.Type.Is("time", "Time"))

	customer := field(t, order, "Customer")
	assert.Equal(t, TypeKindExternal, customer.Type.Kind)
	assert.True(t, customer.Type.Is("flatmap/entity", "Ref"))
	assert.Empty(t, customer.Type.Fields)
}

func TestAnalyzer_FieldTags(t *testing.T) {
	graph := loadStore(t)

	address := graph.GetType(TypeID{PkgPath: storePkg, Name: "Address"})
	require.NotNil(t, address)

	zip := field(t, address, "Zip")
	assert.Equal(t, FlatTag{Key: "PostalCode"}, zip.FlatTag())
	assert.True(t, zip.HasTag("yaml"))
	assert.Equal(t, "zip", zip.GetTag("yaml"))

	line := graph.GetType(TypeID{PkgPath: storePkg, Name: "Line"})
	assert.Equal(t, FlatTag{Mandatory: true}, field(t, line, "Sku").FlatTag())
	assert.Equal(t, FlatTag{}, field(t, line, "Qty").FlatTag())
}

func TestAnalyzer_SliceField(t *testing.T) {
	graph := loadStore(t)
	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})

	lines := field(t, order, "Lines")
	assert.Equal(t, TypeKindSlice, lines.Type.Kind)
	require.NotNil(t, lines.Type.ElemType)
	assert.Equal(t, TypeKindStruct, lines.Type.ElemType.Kind)
	assert.Equal(t, "Line", lines.Type.ElemType.ID.Name)

	tags := field(t, order, "Tags")
	assert.Equal(t, TypeKindSlice, tags.Type.Kind)
	assert.Equal(t, TypeKindBasic, tags.Type.ElemType.Kind)
}

func TestAnalyzer_PointerField(t *testing.T) {
	graph := loadStore(t)
	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})

	coupon := field(t, order, "Coupon")
	assert.Equal(t, TypeKindPointer, coupon.Type.Kind)
	require.NotNil(t, coupon.Type.ElemType)
	assert.Equal(t, TypeKindBasic, coupon.Type.ElemType.Kind)
}

func TestAnalyzer_TypeAlias(t *testing.T) {
	graph := loadStore(t)

	status := graph.GetType(TypeID{PkgPath: storePkg, Name: "OrderStatus"})
	require.NotNil(t, status)
	assert.Equal(t, TypeKindAlias, status.Kind)
	assert.Equal(t, TypeKindBasic, status.Underlying.Kind)
}

func TestAnalyzer_GetStruct(t *testing.T) {
	a := NewAnalyzer()
	_, err := a.LoadPackages(storePkg)
	require.NoError(t, err)

	info, err := a.GetStruct(storePkg, "Order")
	require.NoError(t, err)
	assert.Equal(t, "Order", info.ID.Name)

	_, err = a.GetStruct(storePkg, "OrderStatus")
	require.ErrorContains(t, err, "is not a struct")

	_, err = a.GetStruct(storePkg, "Invoice")
	require.ErrorContains(t, err, "not found")
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: storePkg, Name: "Order"}
	assert.Equal(t, "flatmap/store.Order", id.String())

	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestFieldInfo_FlatTag(t *testing.T) {
	tests := []struct {
		tag  string
		want FlatTag
	}{
		{``, FlatTag{}},
		{`flat:"Year"`, FlatTag{Key: "Year"}},
		{`flat:",mandatory"`, FlatTag{Mandatory: true}},
		{`flat:"Year, mandatory"`, FlatTag{Key: "Year", Mandatory: true}},
		{`flat:"-"`, FlatTag{Skip: true}},
		{`json:"year"`, FlatTag{}},
	}

	for _, tt := range tests {
		f := FieldInfo{Name: "MyField", Tag: reflect.StructTag(tt.tag)}
		assert.Equal(t, tt.want, f.FlatTag(), tt.tag)
	}
}
