package encode

import "github.com/signadot/pbxmod/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent sets the indentation width in spaces.  Zero indents project
// files with tabs and JSON with two spaces.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodeHeader writes the encoding marker line that starts every project file.
func EncodeHeader(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

// EncodeSections brackets each isa group of the objects dictionary with
// Begin/End section comments.
func EncodeSections(v bool) EncodeOption {
	return func(es *EncState) { es.sections = v }
}
