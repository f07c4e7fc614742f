package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/pbxmod/ir"
)

func jsonString(v string) (string, error) {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func writeJSONNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.StringType:
		s, err := jsonString(node.String)
		if err != nil {
			return err
		}
		return writeString(w, applyColor(es, ir.StringType, ValueColor, s))
	case ir.NumberType:
		return writeString(w, applyColor(es, ir.NumberType, ValueColor, strconv.FormatInt(node.Int64, 10)))
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return writeSep(w, es, ir.ArrayType, "[]")
		}
		if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
			return err
		}
		es.depth++
		for i, v := range node.Values {
			if i > 0 {
				if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
					return err
				}
			}
			if err := writeJSONNL(w, es); err != nil {
				return err
			}
			if err := encodeJSON(v, w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeJSONNL(w, es); err != nil {
			return err
		}
		return writeSep(w, es, ir.ArrayType, "]")
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return writeSep(w, es, ir.ObjectType, "{}")
		}
		if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
			return err
		}
		colon := ": "
		if es.wire {
			colon = ":"
		}
		es.depth++
		for n, i := range sortedFields(node) {
			if n > 0 {
				if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
					return err
				}
			}
			if err := writeJSONNL(w, es); err != nil {
				return err
			}
			k, err := jsonString(node.Fields[i].String)
			if err != nil {
				return err
			}
			if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, k)); err != nil {
				return err
			}
			if err := writeSep(w, es, ir.ObjectType, colon); err != nil {
				return err
			}
			if err := encodeJSON(node.Values[i], w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeJSONNL(w, es); err != nil {
			return err
		}
		return writeSep(w, es, ir.ObjectType, "}")
	default:
		return fmt.Errorf("%w: unknown type %d", ErrEncoding, node.Type)
	}
}
