package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/nbtc/token"
)

var ErrSyntax = errors.New("path syntax")

// KPath is a path into a tagged tree, one segment per link.
// Exactly one of Field and Index is set on every segment.
type KPath struct {
	Field *string // Compound key
	Index *int    // List position
	Next  *KPath  // Next segment in path (nil for leaf)
}

// Field returns a single field segment.
func Field(name string) *KPath {
	return &KPath{Field: &name}
}

// Index returns a single list index segment.
func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// String returns the path string representation of this KPath.
// Example:
//
//	KPath{Field: &"a", Next: &KPath{Field: &"b"}} → "a.b"
//	KPath{Field: &"a", Next: &KPath{Index: &0}} → "a[0]"
//	KPath{Field: &"a.b"} → `"a.b"`
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(x.SegmentString())
			continue
		}
		buf.WriteString(x.SegmentString())
	}
	return buf.String()
}

// SegmentString returns the canonical string representation of this
// single segment, without a leading dot.
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Field != nil {
		field := *p.Field
		if token.KPathQuoteField(field) {
			return token.Quote(field)
		}
		return field
	}
	if p.Index != nil {
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return ""
}

// Parse parses a path string into a KPath.
//
// Examples:
//   - "a.b.c" → 3 field segments
//   - "a[0][1]" → field then 2 index segments
//   - "[2].name" → index then field
//   - "" → root path (returns nil)
//
// Returns an error wrapping ErrSyntax if the path syntax is invalid.
func Parse(kpath string) (*KPath, error) {
	if kpath == "" {
		return nil, nil
	}
	root := &KPath{}
	if err := parseFrag(kpath, root, true); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, kpath, err)
	}
	return root, nil
}

// MustParse is like Parse but panics on error.
func MustParse(kpath string) *KPath {
	kp, err := Parse(kpath)
	if err != nil {
		panic(err)
	}
	return kp
}

func parseFrag(frag string, seg *KPath, first bool) error {
	switch frag[0] {
	case '[':
		i := strings.IndexByte(frag, ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := parseIndex(frag[1:i])
		if err != nil {
			return err
		}
		seg.Index = &index
		return parseRest(frag[i+1:], seg)
	case '.':
		if first {
			return fmt.Errorf("leading '.'")
		}
		frag = frag[1:]
	}
	field, rest, err := parseField(frag)
	if err != nil {
		return err
	}
	seg.Field = &field
	return parseRest(rest, seg)
}

func parseRest(rest string, seg *KPath) error {
	if rest == "" {
		return nil
	}
	if rest[0] != '.' && rest[0] != '[' {
		return fmt.Errorf("expected '.' or '[' before %q", rest)
	}
	next := &KPath{}
	if err := parseFrag(rest, next, false); err != nil {
		return err
	}
	seg.Next = next
	return nil
}

// parseIndex parses a non-negative list index.
func parseIndex(is string) (int, error) {
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid list index %q", is)
	}
	return int(u64), nil
}

// parseField parses a field name, quoted or up to the next '.' or '['.
func parseField(frag string) (field, rest string, err error) {
	if frag == "" {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if frag[0] == '\'' || frag[0] == '"' {
		n, err := token.QuotedLen([]byte(frag))
		if err != nil {
			return "", "", fmt.Errorf("invalid quoted field: %w", err)
		}
		return token.QuotedToString([]byte(frag[:n])), frag[n:], nil
	}
	i := strings.IndexAny(frag, ".[]")
	if i == -1 {
		return frag, "", nil
	}
	if frag[i] == ']' {
		return "", "", fmt.Errorf("unexpected ']'")
	}
	if i == 0 {
		return "", "", fmt.Errorf("empty field")
	}
	return frag[:i], frag[i:], nil
}

// SplitPath splits a path on '.' and before every '['. Bracketed
// segments keep their brackets. Quoting is not interpreted.
//
// Examples:
//   - SplitPath("a.b.c") → ["a", "b", "c"]
//   - SplitPath("a[0].b") → ["a", "[0]", "b"]
//   - SplitPath("[1][2]") → ["[1]", "[2]"]
//   - SplitPath("") → []
func SplitPath(path string) []string {
	if path == "" {
		return []string{}
	}
	var segs []string
	start := 0
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '.':
			segs = append(segs, path[start:i])
			start = i + 1
		case '[':
			if i > start {
				segs = append(segs, path[start:i])
			}
			start = i
		}
	}
	return append(segs, path[start:])
}

// Len returns the number of segments.
func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Segments returns single segment copies of every segment in order.
func (p *KPath) Segments() []*KPath {
	var res []*KPath
	for x := p; x != nil; x = x.Next {
		res = append(res, x.copySegment())
	}
	return res
}

// LastSegment returns the last segment of the path.
func (p *KPath) LastSegment() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// Parent returns a copy of all segments except the last, or nil if the
// path has at most one segment.
func (p *KPath) Parent() *KPath {
	if p == nil || p.Next == nil {
		return nil
	}
	segs := p.Segments()
	return link(segs[:len(segs)-1])
}

// Append returns a copy of p followed by a copy of q.
func (p *KPath) Append(q *KPath) *KPath {
	return link(append(p.Segments(), q.Segments()...))
}

// Clone returns a deep copy of p.
func (p *KPath) Clone() *KPath {
	return link(p.Segments())
}

func link(segs []*KPath) *KPath {
	if len(segs) == 0 {
		return nil
	}
	for i := 0; i < len(segs)-1; i++ {
		segs[i].Next = segs[i+1]
	}
	segs[len(segs)-1].Next = nil
	return segs[0]
}

func (p *KPath) copySegment() *KPath {
	res := &KPath{}
	if p.Field != nil {
		tmp := *p.Field
		res.Field = &tmp
	}
	if p.Index != nil {
		tmp := *p.Index
		res.Index = &tmp
	}
	return res
}

// Join joins two path strings.
//
// Examples:
//   - Join("a", "b.c") → "a.b.c"
//   - Join("a", "[0]") → "a[0]"
//   - Join("", "b") → "b"
func Join(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	if suffix == "" {
		return prefix
	}
	if suffix[0] == '[' {
		return prefix + suffix
	}
	return prefix + "." + suffix
}

// Compare compares two paths segment by segment; fields sort before
// indices. Returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p *KPath) Compare(other *KPath) int {
	pa, pb := p, other
	for pa != nil && pb != nil {
		if c := compareSegment(pa, pb); c != 0 {
			return c
		}
		pa, pb = pa.Next, pb.Next
	}
	switch {
	case pa == nil && pb == nil:
		return 0
	case pa == nil:
		return -1
	}
	return 1
}

func compareSegment(a, b *KPath) int {
	switch {
	case a.Field != nil && b.Field != nil:
		return strings.Compare(*a.Field, *b.Field)
	case a.Field != nil:
		return -1
	case b.Field != nil:
		return 1
	case *a.Index < *b.Index:
		return -1
	case *a.Index > *b.Index:
		return 1
	}
	return 0
}

func (kp *KPath) MarshalText() ([]byte, error) {
	return []byte(kp.String()), nil
}

func (kp *KPath) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	if pp == nil {
		*kp = KPath{}
		return nil
	}
	*kp = *pp
	return nil
}
