// Package numrange parses and evaluates number ranges written as
//
//	5..10   5 <= x <= 10
//	..10    x <= 10
//	5..     x >= 5
//	7       x == 7
//	(5..10) 5 < x < 10
//	[5..10) 5 <= x < 10
//
// Bounds are inclusive unless a parenthesis is written on that side.
package numrange

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

var ErrRange = errors.New("number range")

// Range is an immutable pair of optional bounds.
type Range struct {
	Min, Max                   float64
	HasMin, HasMax             bool
	MinExclusive, MaxExclusive bool
}

// Parse parses a range from s. Surrounding space is ignored.
func Parse(s string) (*Range, error) {
	src := s
	s = strings.TrimSpace(s)
	r := &Range{}
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrRange)
	}
	switch s[0] {
	case '(':
		r.MinExclusive = true
		s = s[1:]
	case '[':
		s = s[1:]
	}
	if s != "" {
		switch s[len(s)-1] {
		case ')':
			r.MaxExclusive = true
			s = s[:len(s)-1]
		case ']':
			s = s[:len(s)-1]
		}
	}
	lo, hi, isSpan := strings.Cut(s, "..")
	if !isSpan {
		v, err := parseBound(lo)
		if err != nil || r.MinExclusive || r.MaxExclusive {
			return nil, fmt.Errorf("%w: %q", ErrRange, src)
		}
		r.Min, r.Max, r.HasMin, r.HasMax = v, v, true, true
		return r, nil
	}
	if strings.TrimSpace(lo) != "" {
		v, err := parseBound(lo)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: lower bound: %w", ErrRange, src, err)
		}
		r.Min, r.HasMin = v, true
	}
	if strings.TrimSpace(hi) != "" {
		v, err := parseBound(hi)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: upper bound: %w", ErrRange, src, err)
		}
		r.Max, r.HasMax = v, true
	}
	return r, nil
}

func parseBound(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, errors.New("NaN bound")
	}
	return v, nil
}

// Matches reports whether v lies within r.
func (r *Range) Matches(v float64) bool {
	if r.HasMin {
		if v < r.Min || (r.MinExclusive && v == r.Min) {
			return false
		}
	}
	if r.HasMax {
		if v > r.Max || (r.MaxExclusive && v == r.Max) {
			return false
		}
	}
	return true
}

func (r *Range) String() string {
	var b strings.Builder
	if r.MinExclusive {
		b.WriteByte('(')
	}
	if r.HasMin {
		b.WriteString(strconv.FormatFloat(r.Min, 'g', -1, 64))
	}
	if !(r.HasMin && r.HasMax && r.Min == r.Max && !r.MinExclusive && !r.MaxExclusive) {
		b.WriteString("..")
		if r.HasMax {
			b.WriteString(strconv.FormatFloat(r.Max, 'g', -1, 64))
		}
	}
	if r.MaxExclusive {
		b.WriteByte(')')
	}
	return b.String()
}

var cache sync.Map // string -> *Range or error

// Cached is like Parse but remembers the result for each distinct s.
func Cached(s string) (*Range, error) {
	if v, ok := cache.Load(s); ok {
		return unpack(v)
	}
	r, err := Parse(s)
	var v any = r
	if err != nil {
		v = err
	}
	v, _ = cache.LoadOrStore(s, v)
	return unpack(v)
}

func unpack(v any) (*Range, error) {
	if err, ok := v.(error); ok {
		return nil, err
	}
	return v.(*Range), nil
}

// Match parses s through the cache and reports whether v lies in it. A
// malformed range matches nothing.
func Match(s string, v float64) bool {
	r, err := Cached(s)
	if err != nil {
		return false
	}
	return r.Matches(v)
}
