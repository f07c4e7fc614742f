// Package encode writes IR nodes as project file text, JSON or YAML.
//
// Output is deterministic: dictionary keys are written in alphabetical
// order, and the records of a root level "objects" dictionary are grouped
// by their isa field, groups in name order and GUIDs sorted within each
// group, so that repeated saves of the same graph produce the same bytes.
//
// Bare tokens cannot start with a minus sign, so negative numbers are
// written quoted and decode back as strings with the same text.
//
// # Usage
//
//	// Encode as a project file
//	err := encode.Encode(node, w, encode.EncodeHeader(true), encode.EncodeSections(true))
//
//	// Encode as single line JSON
//	err := encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
//
// # Related Packages
//
//   - github.com/signadot/pbxmod/ir - IR representation
//   - github.com/signadot/pbxmod/parse - Parse text to IR
package encode
