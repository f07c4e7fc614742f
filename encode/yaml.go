package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/pbxmod/ir"
)

// ToYAML converts node to values understood by go-yaml, keeping the
// alphabetical key order with yaml.MapSlice.
func ToYAML(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		return node.Int64, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			y, err := ToYAML(v)
			if err != nil {
				return nil, err
			}
			res[i] = y
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for _, i := range sortedFields(node) {
			y, err := ToYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: node.Fields[i].String, Value: y})
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %d", ErrEncoding, node.Type)
	}
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	y, err := ToYAML(node)
	if err != nil {
		return err
	}
	yOpts := []yaml.EncodeOption{}
	if es.indent != 0 {
		yOpts = append(yOpts, yaml.Indent(es.indent))
	}
	if es.wire {
		yOpts = append(yOpts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(y, yOpts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}
