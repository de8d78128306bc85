// Package refassert provides testify style assertions backed by the refeq
// engine. A failure names the first difference, its field path and both
// values, followed by a unified diff of the complete expected and actual
// values.
//
//	refassert.ReflectionEquals(t, want, got)
//	refassert.LenientEquals(t, want, got)
//	refassert.PropertyReflectionEquals(t, "Address.City", "Ghent", got)
//	refassert.PropertiesLenientEquals(t, "ID", []int{2, 1}, orders)
package refassert
