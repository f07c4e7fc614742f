package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		{"Integer < String", FromInt(1), FromString("a"), -1},
		{"String < List", FromString("a"), FromSlice(nil), -1},
		{"List < Dictionary", FromSlice(nil), FromKeyVals(nil), -1},

		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Int == Int", FromInt(7), FromInt(7), 0},
		{"String < String", FromString("a"), FromString("b"), -1},

		{"Empty List == Empty List", FromSlice(nil), FromSlice(nil), 0},
		{"Short List < Long List", FromStrings("a"), FromStrings("a", "b"), -1},
		{"List order matters", FromStrings("a", "b"), FromStrings("b", "a"), -1},

		{"Dict key order ignored",
			FromKeyVals([]KeyVal{{FromString("a"), FromInt(1)}, {FromString("b"), FromInt(2)}}),
			FromKeyVals([]KeyVal{{FromString("b"), FromInt(2)}, {FromString("a"), FromInt(1)}}),
			0},
		{"Dict value differs",
			FromKeyVals([]KeyVal{{FromString("a"), FromInt(1)}}),
			FromKeyVals([]KeyVal{{FromString("a"), FromInt(2)}}),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare() reversed = %v, want %v", got, -tt.expected)
			}
		})
	}
}
