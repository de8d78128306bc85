// Package options holds the leniency settings of a comparison.
//
// Settings come from three sources:
//   - the Options struct built directly or from Mode flags (FromModes);
//   - an untyped option map (FromMap), where unknown keys are rejected;
//   - a YAML document (Parse, LoadFile) validated against an embedded JSON
//     schema before it is decoded.
package options
