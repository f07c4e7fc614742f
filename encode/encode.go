package encode

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/pbxmod/format"
	"github.com/signadot/pbxmod/ir"
	"github.com/signadot/pbxmod/token"
)

// Header is the first line of every project file.
const Header = "// !$*UTF8*$!"

type EncState struct {
	depth, indent int

	format   format.Format
	wire     bool
	header   bool
	sections bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch es.format {
	case format.JSONFormat:
		if es.indent == 0 {
			es.indent = 2
		}
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.PBXFormat:
	default:
		return fmt.Errorf("%w: unknown format %s", ErrEncoding, es.format)
	}
	if es.header {
		if err := writeString(w, applyColor(es, ir.StringType, CommentColor, Header)+"\n"); err != nil {
			return err
		}
	}
	if err := encode(node, w, es, true); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// Helper functions for writing

// writeNL starts a new line at the current depth, or writes a single
// space in wire mode.
func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return writeString(w, " ")
	}
	return writeString(w, "\n"+indentString(es))
}

func indentString(es *EncState) string {
	if es.indent == 0 {
		return strings.Repeat("\t", es.depth)
	}
	return strings.Repeat(" ", es.indent*es.depth)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	return writeString(w, applyColor(es, t, SepColor, sep))
}

// quoteString writes v bare when the decoder would read it back as the
// same string, and quoted otherwise.
func quoteString(v string) string {
	if token.NeedsQuote(v) {
		return token.Quote(v)
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil && strconv.FormatInt(i, 10) == v {
		return token.Quote(v)
	}
	return v
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState, root bool) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es, root)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, quoteString(node.String)))
	case ir.NumberType:
		v := strconv.FormatInt(node.Int64, 10)
		if token.NeedsQuote(v) {
			v = token.Quote(v)
		}
		return writeString(w, applyColor(es, ir.NumberType, ValueColor, v))
	default:
		return fmt.Errorf("%w: unknown type %d", ErrEncoding, node.Type)
	}
}

func sortedFields(node *ir.Node) []int {
	idx := make([]int, len(node.Fields))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return strings.Compare(node.Fields[a].String, node.Fields[b].String)
	})
	return idx
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState, root bool) error {
	if len(node.Fields) == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for _, i := range sortedFields(node) {
		key, val := node.Fields[i].String, node.Values[i]
		if err := writeNL(w, es); err != nil {
			return err
		}
		var err error
		if root && key == "objects" && val.Type == ir.ObjectType && len(val.Fields) != 0 {
			err = writeField(w, es, key, func() error { return encodeObjects(val, w, es) })
		} else {
			err = writeField(w, es, key, func() error { return encode(val, w, es, false) })
		}
		if err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func writeField(w io.Writer, es *EncState, key string, val func() error) error {
	if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, quoteString(key))); err != nil {
		return err
	}
	if err := writeSep(w, es, ir.ObjectType, " = "); err != nil {
		return err
	}
	if err := val(); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, ";")
}

// encodeObjects writes the GUID keyed record store grouped by isa.
func encodeObjects(node *ir.Node, w io.Writer, es *EncState) error {
	groups := map[string][]int{}
	for i, v := range node.Values {
		isa := ir.GetString(v, "isa")
		groups[isa] = append(groups[isa], i)
	}
	isas := make([]string, 0, len(groups))
	for isa := range groups {
		isas = append(isas, isa)
	}
	slices.Sort(isas)
	sections := es.sections && !es.wire

	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for _, isa := range isas {
		idx := groups[isa]
		slices.SortFunc(idx, func(a, b int) int {
			return strings.Compare(node.Fields[a].String, node.Fields[b].String)
		})
		if sections && isa != "" {
			c := fmt.Sprintf("\n\n/* Begin %s section */", isa)
			if err := writeString(w, applyColor(es, ir.StringType, CommentColor, c)); err != nil {
				return err
			}
		}
		for _, i := range idx {
			if err := writeNL(w, es); err != nil {
				return err
			}
			guid := node.Fields[i].String
			if err := writeString(w, applyColor(es, ir.ObjectType, GUIDColor, quoteString(guid))); err != nil {
				return err
			}
			if err := writeSep(w, es, ir.ObjectType, " = "); err != nil {
				return err
			}
			if err := encode(node.Values[i], w, es, false); err != nil {
				return err
			}
			if err := writeSep(w, es, ir.ObjectType, ";"); err != nil {
				return err
			}
		}
		if sections && isa != "" {
			c := fmt.Sprintf("\n/* End %s section */", isa)
			if err := writeString(w, applyColor(es, ir.StringType, CommentColor, c)); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ArrayType, "()")
	}
	if err := writeSep(w, es, ir.ArrayType, "("); err != nil {
		return err
	}
	es.depth++
	for _, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es, false); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, ")")
}
