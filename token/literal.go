package token

// isLiteralByte reports whether c may appear in a bare scalar.
func isLiteralByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '_', '.', '/':
		return true
	}
	return false
}

// literalLen returns the length of the bare scalar at the start of d.  A
// comment opener ends the literal, so `a//b` is `a` followed by a comment.
func literalLen(d []byte) int {
	i := 0
	for i < len(d) && isLiteralByte(d[i]) {
		if d[i] == '/' && i+1 < len(d) && (d[i+1] == '/' || d[i+1] == '*') {
			break
		}
		i++
	}
	return i
}

// IsLiteral reports whether v can be written without quotes.
func IsLiteral(v string) bool {
	if v == "" {
		return false
	}
	return literalLen([]byte(v)) == len(v)
}
