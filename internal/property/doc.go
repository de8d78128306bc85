// Package property reads values out of nested structs, maps and
// collections by a dotted path such as "Address.Street", "Orders[0].ID" or
// "Orders[].ID".
package property
