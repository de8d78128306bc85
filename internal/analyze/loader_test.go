package analyze

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePkg = "reflection-assert/store"

func loadStore(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer(Config{}).LoadPackages(storePkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func findField(t *testing.T, info *TypeInfo, name string) *FieldInfo {
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

	require.Contains(t, graph.Packages, storePkg)

	pkg := graph.Packages[storePkg]
	assert.Equal(t, "store", pkg.Name)
	assert.Equal(t, "store", filepath.Base(pkg.Dir))

	for _, name := range []string{"Audit", "Customer", "Order", "OrderItem", "OrderStatus", "Page", "Product", "cart"} {
		assert.Contains(t, graph.Types, TypeID{PkgPath: storePkg, Name: name})
	}
}

func TestAnalyzer_Structs(t *testing.T) {
	graph := loadStore(t)

	var names []string
	for _, s := range graph.Structs(storePkg) {
		names = append(names, s.ID.Name)
	}

	assert.Equal(t, []string{"Audit", "Customer", "Order", "OrderItem", "Page", "Product", "cart"}, names)
	assert.Nil(t, graph.Structs("reflection-assert/missing"))
}

func TestAnalyzer_OrderFields(t *testing.T) {
	graph := loadStore(t)

	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NotNil(t, order)
	assert.Equal(t, TypeKindStruct, order.Kind)
	assert.True(t, order.Exported)

	var names []string
	for _, f := range order.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"Audit", "ID", "Customer", "Status", "Items", "Notes", "Revision", "checksum"}, names)

	audit := findField(t, order, "Audit")
	assert.True(t, audit.Embedded)
	assert.True(t, audit.EmbeddedStruct())

	checksum := findField(t, order, "checksum")
	assert.False(t, checksum.Exported)
	assert.Equal(t, 7, checksum.Index)

	revision := findField(t, order, "Revision")
	assert.True(t, revision.Transient())
	assert.True(t, revision.HasTag("refeq"))
	assert.False(t, findField(t, order, "ID").Transient())
}

func TestAnalyzer_FieldKinds(t *testing.T) {
	graph := loadStore(t)

	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	customer := graph.GetType(TypeID{PkgPath: storePkg, Name: "Customer"})
	audit := graph.GetType(TypeID{PkgPath: storePkg, Name: "Audit"})
	require.NotNil(t, order)
	require.NotNil(t, customer)
	require.NotNil(t, audit)

	items := findField(t, order, "Items").Type
	assert.Equal(t, TypeKindSlice, items.Kind)
	assert.Equal(t, TypeKindStruct, items.ElemType.Kind)
	assert.Same(t, graph.GetType(TypeID{PkgPath: storePkg, Name: "OrderItem"}), items.ElemType)

	ptr := findField(t, order, "Customer").Type
	assert.Equal(t, TypeKindPointer, ptr.Kind)
	assert.Same(t, customer, ptr.ElemType)

	address := findField(t, customer, "Address").Type
	assert.Equal(t, TypeKindPointer, address.Kind)
	assert.Equal(t, TypeKindBasic, address.ElemType.Kind)

	labels := findField(t, customer, "Labels").Type
	assert.Equal(t, TypeKindMap, labels.Kind)
	assert.Equal(t, "string", labels.KeyType.ID.Name)

	status := findField(t, order, "Status").Type
	assert.Equal(t, TypeKindNamed, status.Kind)
	assert.Equal(t, TypeKindBasic, status.Underlying.Kind)

	created := findField(t, audit, "CreatedAt").Type
	assert.Equal(t, TypeKindExternal, created.Kind)
	assert.Equal(t, TypeID{PkgPath: "time", Name: "Time"}, created.ID)
}

func TestAnalyzer_GenericAndUnexported(t *testing.T) {
	graph := loadStore(t)

	page := graph.GetType(TypeID{PkgPath: storePkg, Name: "Page"})
	require.NotNil(t, page)
	assert.True(t, page.Generic)

	cart := graph.GetType(TypeID{PkgPath: storePkg, Name: "cart"})
	require.NotNil(t, cart)
	assert.False(t, cart.Exported)
	assert.False(t, findField(t, cart, "owner").Exported)
}

func TestAnalyzer_GetStruct(t *testing.T) {
	a := NewAnalyzer(Config{})
	_, err := a.LoadPackages(storePkg)
	require.NoError(t, err)

	order, err := a.GetStruct(storePkg, "Order")
	require.NoError(t, err)
	assert.Equal(t, "Order", order.ID.Name)

	_, err = a.GetStruct(storePkg, "OrderStatus")
	assert.ErrorContains(t, err, "is not a struct (kind: named)")

	_, err = a.GetStruct(storePkg, "Invoice")
	assert.ErrorContains(t, err, "not found")
}

func TestAnalyzer_LoadErrors(t *testing.T) {
	_, err := NewAnalyzer(Config{}).LoadPackages("reflection-assert/does/not/exist")
	assert.Error(t, err)
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: storePkg, Name: "Order"}
	assert.Equal(t, "reflection-assert/store.Order", id.String())

	// Empty package path
	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "named", TypeKindNamed.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestFieldInfo_Transient(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{`refeq:"-"`, true},
		{`refeq:"-,"`, true},
		{`json:"-"`, false},
		{`refeq:"name"`, false},
		{``, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			f := FieldInfo{Name: "F", Tag: reflectTag(tt.tag)}
			assert.Equal(t, tt.want, f.Transient())
		})
	}
}
