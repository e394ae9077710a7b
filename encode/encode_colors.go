package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/nbtc/ir"
)

// Role is the part of SNBT text a color applies to.
type Role int

const (
	KeyRole Role = iota
	StringRole
	// TemplateRole is a string holding a dollar reference or a $[...]
	// expression.
	TemplateRole
	NumberRole
	BraceRole
	BracketRole
)

// Palette colors SNBT output. Number suffixes get a color per width so
// that 1b, 1s and 1L are told apart at a glance.
type Palette struct {
	roles    map[Role]func(a ...any) string
	suffixes map[ir.Width]func(a ...any) string
}

// NewPalette returns the default terminal palette.
func NewPalette() *Palette {
	rgb := func(r, g, b int) func(a ...any) string {
		return color.RGB(r, g, b).SprintFunc()
	}
	return &Palette{
		roles: map[Role]func(a ...any) string{
			KeyRole:      rgb(128, 168, 196),
			StringRole:   rgb(8, 196, 16),
			TemplateRole: color.New(color.FgHiYellow, color.Bold).SprintFunc(),
			NumberRole:   rgb(128, 216, 236),
			BraceRole:    rgb(196, 128, 128),
			BracketRole:  rgb(196, 168, 128),
		},
		suffixes: map[ir.Width]func(a ...any) string{
			ir.ByteWidth:   rgb(168, 0, 196),
			ir.ShortWidth:  rgb(196, 96, 16),
			ir.LongWidth:   rgb(255, 0, 196),
			ir.FloatWidth:  rgb(74, 92, 138),
			ir.DoubleWidth: color.New(color.FgBlue).SprintFunc(),
		},
	}
}

// Paint colors s for role r. Roles without a color leave s as is.
func (p *Palette) Paint(r Role, s string) string {
	if p == nil || s == "" {
		return s
	}
	if f := p.roles[r]; f != nil {
		return f(s)
	}
	return s
}

// Suffix colors the width suffix of a number.
func (p *Palette) Suffix(w ir.Width, s string) string {
	if p == nil || s == "" {
		return s
	}
	if f := p.suffixes[w]; f != nil {
		return f(s)
	}
	return s
}

// stringRole picks TemplateRole for strings a template compiler would
// read as an expression.
func stringRole(s string) Role {
	t := strings.TrimSpace(s)
	if strings.Contains(t, "$[") {
		return TemplateRole
	}
	if len(t) > 1 && t[0] == '$' && t != "$overwrite" {
		c := t[1]
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			return TemplateRole
		}
	}
	return StringRole
}
