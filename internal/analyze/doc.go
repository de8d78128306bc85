// Package analyze loads Go packages and extracts the struct types whose
// field accessors refeq-gen emits.
//
// It uses golang.org/x/tools/go/packages with go/types to build an
// in-memory model of named types and their fields.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/named/pointer/slice/map/external)
//   - FieldInfo: describes field name, type, tags, embedding and visibility
package analyze
