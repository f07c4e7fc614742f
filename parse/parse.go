package parse

import (
	"os"
	"strconv"

	"github.com/signadot/pbxmod/debug"
	"github.com/signadot/pbxmod/ir"
	"github.com/signadot/pbxmod/token"
)

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fromTokenizeErr(err)
	}
	if debug.Parse() {
		token.PrintTokens(os.Stderr, toks, "parse")
	}
	end := token.NewPosDoc(d).End()
	if len(toks) == 0 {
		return nil, newError(end, ErrEmpty, "empty document")
	}
	p := &parser{toks: toks, end: end, opts: pOpts}
	off := 0
	res, err := p.value(nil, &off)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		t := &toks[off]
		return nil, newError(t.Pos, ErrTrailing, "unexpected %q after root value", string(t.Bytes))
	}
	return res, nil
}

type parser struct {
	toks []token.Token
	end  *token.Pos
	opts *parseOpts
}

func (p *parser) trackPos(node *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

// next returns the token at *pi, or an end of input error naming what was
// expected.
func (p *parser) next(pi *int, want string) (*token.Token, error) {
	if *pi >= len(p.toks) {
		return nil, newError(p.end, ErrEOF, "unexpected end of input, expected %s", want)
	}
	return &p.toks[*pi], nil
}

func (p *parser) value(parent *ir.Node, pi *int) (*ir.Node, error) {
	t, err := p.next(pi, "value")
	if err != nil {
		return nil, err
	}
	switch t.Type {
	case token.TLCurl:
		*pi++
		obj := ir.NewObject()
		obj.Parent = parent
		p.trackPos(obj, t.Pos)
		return p.parseObj(obj, pi)
	case token.TLParen:
		*pi++
		arr := &ir.Node{Type: ir.ArrayType, Parent: parent, Values: []*ir.Node{}}
		p.trackPos(arr, t.Pos)
		return p.parseArr(arr, pi)
	case token.TLiteral:
		*pi++
		res := scalar(string(t.Bytes))
		res.Parent = parent
		p.trackPos(res, t.Pos)
		return res, nil
	case token.TString:
		*pi++
		res := ir.FromString(t.String())
		res.Parent = parent
		p.trackPos(res, t.Pos)
		return res, nil
	default:
		return nil, newError(t.Pos, nil, "unexpected %q, expected value", string(t.Bytes))
	}
}

// scalar decodes a bare token.  Only the canonical base 10 text of an int64
// becomes an integer, so GUIDs and zero padded names stay strings.
func scalar(s string) *ir.Node {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil || strconv.FormatInt(i, 10) != s {
		return ir.FromString(s)
	}
	return ir.FromInt(i)
}

func (p *parser) parseObj(obj *ir.Node, pi *int) (*ir.Node, error) {
	for {
		t, err := p.next(pi, "key or '}'")
		if err != nil {
			return nil, err
		}
		switch t.Type {
		case token.TRCurl:
			*pi++
			return obj, nil
		case token.TLiteral, token.TString:
		default:
			return nil, newError(t.Pos, nil, "unexpected %q, expected key or '}'", string(t.Bytes))
		}
		key := t.String()
		*pi++
		eq, err := p.next(pi, "'='")
		if err != nil {
			return nil, err
		}
		if eq.Type != token.TEquals {
			return nil, newError(eq.Pos, nil, "unexpected %q after key %q, expected '='", string(eq.Bytes), key)
		}
		*pi++
		val, err := p.value(obj, pi)
		if err != nil {
			return nil, err
		}
		semi, err := p.next(pi, "';'")
		if err != nil {
			return nil, err
		}
		if semi.Type != token.TSemi {
			return nil, newError(semi.Pos, nil, "unexpected %q after value of %q, expected ';'", string(semi.Bytes), key)
		}
		*pi++
		obj.Set(key, val)
	}
}

func (p *parser) parseArr(arr *ir.Node, pi *int) (*ir.Node, error) {
	for {
		t, err := p.next(pi, "value or ')'")
		if err != nil {
			return nil, err
		}
		if t.Type == token.TRParen {
			*pi++
			return arr, nil
		}
		elt, err := p.value(arr, pi)
		if err != nil {
			return nil, err
		}
		arr.Append(elt)
		t, err = p.next(pi, "',' or ')'")
		if err != nil {
			return nil, err
		}
		switch t.Type {
		case token.TComma:
			*pi++
		case token.TRParen:
			*pi++
			return arr, nil
		default:
			return nil, newError(t.Pos, nil, "unexpected %q in list, expected ',' or ')'", string(t.Bytes))
		}
	}
}
