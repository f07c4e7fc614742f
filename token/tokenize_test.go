package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokTest struct {
	in   string
	typs []TokenType
	strs []string
}

func TestTokenize(t *testing.T) {
	tests := []tokTest{
		{
			in:   `{}`,
			typs: []TokenType{TLCurl, TRCurl},
			strs: []string{"{", "}"},
		},
		{
			in:   `{ isa = PBXGroup; }`,
			typs: []TokenType{TLCurl, TLiteral, TEquals, TLiteral, TSemi, TRCurl},
			strs: []string{"{", "isa", "=", "PBXGroup", ";", "}"},
		},
		{
			in:   `( a, "b c", )`,
			typs: []TokenType{TLParen, TLiteral, TComma, TString, TComma, TRParen},
			strs: []string{"(", "a", ",", "b c", ",", ")"},
		},
		{
			in:   "// !$*UTF8*$!\n{ path = usr/lib/libz.dylib; }",
			typs: []TokenType{TLCurl, TLiteral, TEquals, TLiteral, TSemi, TRCurl},
			strs: []string{"{", "path", "=", "usr/lib/libz.dylib", ";", "}"},
		},
		{
			in:   "0A1B /* main.m */ = 42; // trailing\n",
			typs: []TokenType{TLiteral, TEquals, TLiteral, TSemi},
			strs: []string{"0A1B", "=", "42", ";"},
		},
		{
			in:   `a//comment`,
			typs: []TokenType{TLiteral},
			strs: []string{"a"},
		},
		{
			in:   `"say \"hi\"\n"`,
			typs: []TokenType{TString},
			strs: []string{"say \"hi\"\n"},
		},
	}
	for _, tt := range tests {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("tokenize %q: %v", tt.in, err)
			continue
		}
		typs := make([]TokenType, len(toks))
		strs := make([]string, len(toks))
		for i := range toks {
			typs[i] = toks[i].Type
			strs[i] = toks[i].String()
		}
		if diff := cmp.Diff(tt.typs, typs); diff != "" {
			t.Errorf("%q types (-want +got):\n%s", tt.in, diff)
		}
		if diff := cmp.Diff(tt.strs, strs); diff != "" {
			t.Errorf("%q values (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenizeComments(t *testing.T) {
	toks, err := Tokenize(nil, []byte("a /* b */ c // d"), TokenComments(true))
	if err != nil {
		t.Fatal(err)
	}
	got := []string{}
	for i := range toks {
		got = append(got, toks[i].String())
	}
	if diff := cmp.Diff([]string{"a", "/* b */", "c", "// d"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in        string
		err       error
		line, col int
	}{
		{in: `"abc`, err: ErrUnterminated, line: 1, col: 1},
		{in: "{\n  a = <b>;\n}", err: ErrUnexpected, line: 2, col: 7},
		{in: "x /* never closed", err: ErrUnterminated, line: 1, col: 3},
		{in: "a = \"\\u00\";", err: ErrBadUnicode, line: 1, col: 5},
		{in: "{ a = \"x\xffy\"; }", err: ErrBadUTF8, line: 1, col: 7},
		{in: "{ a = x\xffy; }", err: ErrBadUTF8, line: 1, col: 8},
	}
	for _, tt := range tests {
		_, err := Tokenize(nil, []byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v want %v", tt.in, err, tt.err)
			continue
		}
		var terr *TokenizeErr
		if !errors.As(err, &terr) {
			t.Errorf("%q: not a TokenizeErr: %T", tt.in, err)
			continue
		}
		line, col := terr.Pos.LineCol()
		if line != tt.line || col != tt.col {
			t.Errorf("%q: at %d:%d want %d:%d", tt.in, line, col, tt.line, tt.col)
		}
	}
}

func TestPosLineCol(t *testing.T) {
	d := NewPosDoc([]byte("ab\ncd\n\nef"))
	for off, want := range map[int][2]int{
		0: {1, 1},
		2: {1, 3},
		3: {2, 1},
		4: {2, 2},
		6: {3, 1},
		7: {4, 1},
		9: {4, 3},
	} {
		l, c := d.LineCol(off)
		if l != want[0] || c != want[1] {
			t.Errorf("offset %d: got %d:%d want %d:%d", off, l, c, want[0], want[1])
		}
	}
}
