package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Format is a text form of a tree.
type Format int

const (
	SNBTFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// spec names a format: its canonical name, its one letter flag and the
// file extensions it is read from, the first being the one it is
// written with.
type spec struct {
	name  string
	short string
	exts  []string
}

var specs = [...]spec{
	SNBTFormat: {name: "snbt", short: "s", exts: []string{".snbt", ".nbt.txt", ".mcfunction"}},
	YAMLFormat: {name: "yaml", short: "y", exts: []string{".yaml", ".yml"}},
	JSONFormat: {name: "json", short: "j", exts: []string{".json"}},
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(specs)
}

// ParseFormat reads a format by name or by its one letter flag, case
// insensitively.
func ParseFormat(v string) (Format, error) {
	lv := strings.ToLower(v)
	for i := range specs {
		if lv == specs[i].name || lv == specs[i].short {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrBadFormat, v, strings.Join(Names(), ", "))
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return specs[f].name
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(specs[f].name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsSNBT() bool { return f == SNBTFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the extension files of this format are written with.
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return specs[f].exts[0]
}

// FromPath guesses the format of a file from its extension. Unknown
// extensions are read as SNBT.
func FromPath(path string) Format {
	base := strings.ToLower(filepath.Base(path))
	for i := range specs {
		for _, ext := range specs[i].exts {
			if strings.HasSuffix(base, ext) {
				return Format(i)
			}
		}
	}
	return SNBTFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	res := make([]Format, len(specs))
	for i := range specs {
		res[i] = Format(i)
	}
	return res
}

// Names returns the canonical format names, sorted.
func Names() []string {
	res := make([]string, len(specs))
	for i := range specs {
		res[i] = specs[i].name
	}
	slices.Sort(res)
	return res
}
