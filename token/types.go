package token

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TLParen
	TRParen
	TEquals
	TSemi
	TComma
	TLiteral
	TString
	TComment
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TEquals:  "TEquals",
		TSemi:    "TSemi",
		TComma:   "TComma",
		TLiteral: "TLiteral",
		TString:  "TString",
		TComment: "TComment",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

// String returns the value of the token: the unescaped contents of a quoted
// string, or the raw bytes otherwise.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		s, err := Unquote(string(t.Bytes))
		if err != nil {
			return string(t.Bytes)
		}
		return s
	default:
		return string(t.Bytes)
	}
}

// IsScalar reports whether the token can stand for a value or a key.
func (t *Token) IsScalar() bool {
	return t.Type == TLiteral || t.Type == TString
}
