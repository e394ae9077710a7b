package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Number < String < List < Compound
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < List", FromString("a"), FromSlice(nil), -1},
		{"List < Compound", FromSlice(nil), FromKeyVals(nil), -1},

		// Numbers compare by magnitude
		{"byte == double", FromByte(1), FromDouble(1.0), 0},
		{"long == int", FromLong(7), FromInt(7), 0},
		{"short < float", FromShort(1), FromFloat(1.5), -1},
		{"true == byte 1", FromBool(true), FromByte(1), 0},

		{"String < String", FromString("a"), FromString("b"), -1},

		{"Empty List == Empty List", FromSlice(nil), FromSlice(nil), 0},
		{"Short List < Long List", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"List Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		{"Empty Compound == Empty Compound", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Key order is ignored",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(2)}, {Key: "a", Val: FromInt(1)}}),
			0},
		{"Short Compound < Long Compound",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			-1},
		{"Compound Value Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
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
