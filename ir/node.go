package ir

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String string
	Int64  int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Int64 = y.Int64
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := yv.CloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := yf.CloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Fields[i] = dstI
	}
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Int64:  v,
		String: strconv.FormatInt(v, 10),
	}
}

// FromStrings builds a list of string nodes.
func FromStrings(vs ...string) *Node {
	res := make([]*Node, len(vs))
	for i, v := range vs {
		res[i] = FromString(v)
	}
	return FromSlice(res)
}

func NewObject() *Node {
	return &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
}

func ToMap(node *Node) map[string]*Node {
	if node == nil || node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: FromString(key), Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	return FromKeyValsAt(&Node{}, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		kv.Key.ParentField = kv.Key.String
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key.String
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// GetString returns the string (or integer text) under field, or "" if absent.
func GetString(y *Node, field string) string {
	v := Get(y, field)
	if v == nil || !v.Type.IsLeaf() {
		return ""
	}
	return v.String
}

// Keys returns the dictionary keys in insertion order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// Set replaces the value under field, or appends a new field.
func (y *Node) Set(field string, v *Node) {
	if y.Type != ObjectType {
		panic(fmt.Sprintf("Set %q on %s", field, y.Type))
	}
	v.Parent = y
	v.ParentField = field
	for i := range y.Fields {
		if y.Fields[i].String == field {
			v.ParentIndex = i
			y.Values[i] = v
			return
		}
	}
	key := FromString(field)
	key.Parent = y
	key.ParentField = field
	key.ParentIndex = len(y.Fields)
	v.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

// Delete removes field, reporting whether it was present.
func (y *Node) Delete(field string) bool {
	for i := range y.Fields {
		if y.Fields[i].String != field {
			continue
		}
		y.Fields = slices.Delete(y.Fields, i, i+1)
		y.Values = slices.Delete(y.Values, i, i+1)
		for j := i; j < len(y.Fields); j++ {
			y.Fields[j].ParentIndex = j
			y.Values[j].ParentIndex = j
		}
		return true
	}
	return false
}

// Append adds elements to a list node.
func (y *Node) Append(vs ...*Node) {
	if y.Type != ArrayType {
		panic(fmt.Sprintf("Append on %s", y.Type))
	}
	for _, v := range vs {
		v.Parent = y
		v.ParentIndex = len(y.Values)
		v.ParentField = ""
		y.Values = append(y.Values, v)
	}
}

// Strings returns the scalar elements of a list node as strings.
func (y *Node) Strings() []string {
	if y == nil || y.Type != ArrayType {
		return nil
	}
	res := make([]string, 0, len(y.Values))
	for _, v := range y.Values {
		if v.Type.IsLeaf() {
			res = append(res, v.String)
		}
	}
	return res
}
