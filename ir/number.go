package ir

import "math"

// FromInteger returns a number of width w holding v. Integer widths
// narrower than long wrap the way a host cast would.
func FromInteger(w Width, v int64) *Node {
	if w.IsFloat() {
		return FromReal(w, float64(v))
	}
	switch w {
	case ByteWidth:
		v = int64(int8(v))
	case ShortWidth:
		v = int64(int16(v))
	case IntWidth:
		v = int64(int32(v))
	}
	return &Node{Type: NumberType, Width: w, Int64: v, Float64: float64(v)}
}

// FromReal returns a number of width w holding f. Integer widths
// truncate toward zero.
func FromReal(w Width, f float64) *Node {
	if !w.IsFloat() {
		return FromInteger(w, truncate(f))
	}
	if w == FloatWidth {
		f = float64(float32(f))
	}
	return &Node{Type: NumberType, Width: w, Int64: truncate(f), Float64: f}
}

func FromInt(v int64) *Node {
	return FromInteger(IntWidth, v)
}

func FromLong(v int64) *Node {
	return FromInteger(LongWidth, v)
}

func FromByte(v int8) *Node {
	return FromInteger(ByteWidth, int64(v))
}

func FromShort(v int16) *Node {
	return FromInteger(ShortWidth, int64(v))
}

func FromFloat(f float32) *Node {
	return FromReal(FloatWidth, float64(f))
}

func FromDouble(f float64) *Node {
	return FromReal(DoubleWidth, f)
}

// FromBool returns the byte 1 or 0.
func FromBool(v bool) *Node {
	if v {
		return FromByte(1)
	}
	return FromByte(0)
}

// Float returns the magnitude of a number node. All numeric
// comparisons go through it.
func (y *Node) Float() float64 {
	return y.Float64
}

// Int returns the integral value of a number node.
func (y *Node) Int() int64 {
	return y.Int64
}

// Retype converts a number to width w, keeping its magnitude as well as
// the target width allows.
func (y *Node) Retype(w Width) *Node {
	if y.Width.IsFloat() {
		return FromReal(w, y.Float64)
	}
	return FromInteger(w, y.Int64)
}

func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
