package token

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

func NeedsQuote(v string) bool {
	return !IsLiteral(v)
}

// Quote returns v as a double-quoted string using the escapes understood by
// Unquote.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) && r < 0x10000 {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'U', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// bsEscQuoted returns the length of the double-quoted string at the start of
// d, including both quotes.
func bsEscQuoted(d []byte) (int, error) {
	esc := false
	for i := 1; i < len(d); i++ {
		switch d[i] {
		case '\\':
			esc = !esc
		case '"':
			if !esc {
				return i + 1, nil
			}
			esc = false
		default:
			esc = false
		}
	}
	return 0, ErrUnterminated
}

// Unquote decodes a double-quoted string.  Unknown escapes stand for the
// escaped character itself.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return "", ErrUnterminated
	}
	v = v[1 : len(v)-1]
	if strings.IndexByte(v, '\\') == -1 {
		return v, nil
	}
	b := &strings.Builder{}
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(v) {
			return "", ErrBadEscape
		}
		switch v[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'u', 'U':
			if i+5 > len(v) {
				return "", ErrBadUnicode
			}
			u, err := strconv.ParseUint(v[i+1:i+5], 16, 32)
			if err != nil {
				return "", ErrBadUnicode
			}
			b.WriteRune(rune(u))
			i += 4
		default:
			b.WriteByte(v[i])
		}
	}
	return b.String(), nil
}
