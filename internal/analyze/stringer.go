package analyze

import (
	"strings"
)

// TypeString returns a readable representation of t relative to the
// package pkgPath: types of that package are not qualified.
//
//	Order, []OrderItem, *time.Time, map[string]Tag
func TypeString(t *TypeInfo, pkgPath string) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case TypeKindPointer:
		return "*" + TypeString(t.ElemType, pkgPath)

	case TypeKindSlice:
		return "[]" + TypeString(t.ElemType, pkgPath)

	case TypeKindMap:
		return "map[" + TypeString(t.KeyType, pkgPath) + "]" + TypeString(t.ElemType, pkgPath)

	case TypeKindStruct, TypeKindNamed, TypeKindExternal:
		if !t.IsNamed() {
			return "struct{...}"
		}

		if t.ID.PkgPath == "" || t.ID.PkgPath == pkgPath {
			return t.ID.Name
		}

		return t.GoType.String()

	default:
		// Basic, arrays, interfaces and the rest render like go/types does
		return t.GoType.String()
	}
}

// FieldPath joins a type name and field names with dots.
// Example: Order, Items -> "Order.Items"
func FieldPath(typeName string, fieldNames ...string) string {
	return strings.Join(append([]string{typeName}, fieldNames...), ".")
}
