package ir

import "strings"

// Truth interprets a scalar the way project files spell booleans:
// "YES"/"NO" (any case) or digits.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ObjectType:
		return len(node.Fields) != 0
	case ArrayType:
		return len(node.Values) != 0
	case NumberType:
		return node.Int64 != 0
	case StringType:
		switch strings.ToUpper(node.String) {
		case "", "NO", "0", "FALSE":
			return false
		}
		return true
	}
	return false
}
