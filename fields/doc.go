// Package fields describes the comparable fields of struct types.
//
// A Descriptor lists the fields of one struct type together with accessors
// reading them from an owner value. Descriptors are either registered
// explicitly (usually by code emitted by refeq-gen, see RegisterAccessors)
// or derived from reflection on first use and cached. Derived descriptors
// hold every named field in declaration order, unexported ones included;
// fields tagged `refeq:"-"` are marked transient. Unexported fields of an
// addressable owner are returned as readable values, see Readable.
//
// The registry also carries the platform boundary: the list of package path
// prefixes whose types are treated as opaque platform types rather than
// user-defined hierarchies.
package fields
