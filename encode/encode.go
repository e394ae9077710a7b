package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/nbtc/format"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/token"
)

type EncState struct {
	depth   int
	indent  int
	compact bool

	format format.Format

	palette *Palette
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.SNBTFormat:
		if err := encodeSNBT(node, w, es); err != nil {
			return err
		}
		if es.compact {
			return nil
		}
		return writeString(w, "\n")
	case format.YAMLFormat, format.JSONFormat:
		return encodeYAML(node, w, es)
	}
	return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
}

// MustString encodes node to a string, panicking on error.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}


func encodeSNBT(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.CompoundType:
		return encodeCompound(node, w, es)
	case ir.ListType:
		return encodeList(node, w, es)
	case ir.StringType:
		return writeString(w, es.palette.Paint(stringRole(node.String), snbtString(node.String)))
	case ir.NumberType:
		num, suffix := NumberText(node)
		return writeString(w, es.palette.Paint(NumberRole, num)+es.palette.Suffix(node.Width, suffix))
	}
	return fmt.Errorf("cannot encode node of type %s", node.Type)
}

func encodeCompound(node *ir.Node, w io.Writer, es *EncState) error {
	sep := func(s string) string { return es.palette.Paint(BraceRole, s) }
	if len(node.Fields) == 0 {
		return writeString(w, sep("{}"))
	}
	if err := writeString(w, sep("{")); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeString(w, sep(",")); err != nil {
				return err
			}
		}
		if err := es.newline(w); err != nil {
			return err
		}
		key := field
		if token.NeedsQuote(key) {
			key = token.Quote(key)
		}
		colon := ":"
		if !es.compact {
			colon = ": "
		}
		if err := writeString(w, es.palette.Paint(KeyRole, key)+sep(colon)); err != nil {
			return err
		}
		if err := encodeSNBT(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.newline(w); err != nil {
		return err
	}
	return writeString(w, sep("}"))
}

func encodeList(node *ir.Node, w io.Writer, es *EncState) error {
	sep := func(s string) string { return es.palette.Paint(BracketRole, s) }
	if len(node.Values) == 0 {
		return writeString(w, sep("[]"))
	}
	inline := es.compact
	if !inline {
		inline = true
		for _, v := range node.Values {
			if !v.Type.IsLeaf() {
				inline = false
				break
			}
		}
	}
	if err := writeString(w, sep("[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			comma := ","
			if inline && !es.compact {
				comma = ", "
			}
			if err := writeString(w, sep(comma)); err != nil {
				return err
			}
		}
		if !inline {
			if err := es.newline(w); err != nil {
				return err
			}
		}
		if err := encodeSNBT(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if !inline {
		if err := es.newline(w); err != nil {
			return err
		}
	}
	return writeString(w, sep("]"))
}

func (es *EncState) newline(w io.Writer) error {
	if es.compact {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

// snbtString writes s bare when it would read back as the same string.
func snbtString(s string) string {
	if s == "" || token.NeedsQuote(s) || s == "true" || s == "false" {
		return token.Quote(s)
	}
	c := s[0]
	if ('a' <= c && c <= 'z' && c != 'e') || ('A' <= c && c <= 'Z' && c != 'E') || c == '_' {
		return s
	}
	return token.Quote(s)
}

// NumberText returns the digits and the width suffix of a number node.
func NumberText(node *ir.Node) (string, string) {
	switch node.Width {
	case ir.ByteWidth:
		return strconv.FormatInt(node.Int64, 10), "b"
	case ir.ShortWidth:
		return strconv.FormatInt(node.Int64, 10), "s"
	case ir.LongWidth:
		return strconv.FormatInt(node.Int64, 10), "L"
	case ir.FloatWidth:
		return realText(node.Float64, 32), "f"
	case ir.DoubleWidth:
		return realText(node.Float64, 64), "d"
	}
	return strconv.FormatInt(node.Int64, 10), ""
}

// realText clamps NaN and infinities, which SNBT cannot spell, to 0
// and the largest finite value of the width.
func realText(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		f = 0
	case math.IsInf(f, 0) && bits == 32:
		f = math.Copysign(math.MaxFloat32, f)
	case math.IsInf(f, 0):
		f = math.Copysign(math.MaxFloat64, f)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	var opts []yaml.EncodeOption
	if es.format.IsJSON() {
		opts = append(opts, yaml.JSON())
	} else {
		opts = append(opts, yaml.Indent(es.indent))
	}
	d, err := yaml.MarshalWithOptions(ToYAMLValue(node), opts...)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", es.format, err)
	}
	_, err = w.Write(d)
	return err
}

// ToYAMLValue converts node to values goccy/go-yaml encodes with the
// key order of node.
func ToYAMLValue(node *ir.Node) any {
	switch node.Type {
	case ir.CompoundType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f, Value: ToYAMLValue(node.Values[i])}
		}
		return res
	case ir.ListType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToYAMLValue(v)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Width.IsFloat() {
			return node.Float64
		}
		return node.Int64
	}
	return nil
}
