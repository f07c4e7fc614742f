package token

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

var punct = map[byte]TokenType{
	'{': TLCurl,
	'}': TRCurl,
	'(': TLParen,
	')': TRParen,
	'=': TEquals,
	';': TSemi,
	',': TComma,
}

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	opt := &tokenOpts{}
	for _, f := range opts {
		f(opt)
	}
	posDoc := NewPosDoc(src)
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			i++
			continue
		case '"':
			j, err := bsEscQuoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			if !utf8.Valid(src[i : i+j]) {
				return nil, NewTokenizeErr(ErrBadUTF8, posDoc.Pos(i))
			}
			if _, err := Unquote(string(src[i : i+j])); err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: src[i : i+j]})
			i += j
			continue
		case '/':
			if i+1 < n && (src[i+1] == '/' || src[i+1] == '*') {
				j, err := commentLen(src[i:])
				if err != nil {
					return nil, NewTokenizeErr(err, posDoc.Pos(i))
				}
				if opt.comments {
					dst = append(dst, Token{Type: TComment, Pos: posDoc.Pos(i), Bytes: src[i : i+j]})
				}
				i += j
				continue
			}
		}
		if tt, ok := punct[c]; ok {
			dst = append(dst, Token{Type: tt, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
			continue
		}
		j := literalLen(src[i:])
		if j == 0 {
			r, _ := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError {
				return nil, NewTokenizeErr(ErrBadUTF8, posDoc.Pos(i))
			}
			return nil, UnexpectedErr(fmt.Sprintf("%q", r), posDoc.Pos(i))
		}
		dst = append(dst, Token{Type: TLiteral, Pos: posDoc.Pos(i), Bytes: src[i : i+j]})
		i += j
	}
	return dst, nil
}

// commentLen returns the length of the comment at the start of d, which
// begins with // or /*.  Line comments stop before the newline.
func commentLen(d []byte) (int, error) {
	if d[1] == '/' {
		j := bytes.IndexByte(d, '\n')
		if j == -1 {
			return len(d), nil
		}
		return j, nil
	}
	j := bytes.Index(d[2:], []byte("*/"))
	if j == -1 {
		return 0, fmt.Errorf("%w comment", ErrUnterminated)
	}
	return j + 4, nil
}
