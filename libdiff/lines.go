package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/nbtc/encode"
	"github.com/signadot/nbtc/ir"
)

// Line is a line of a text diff, without its newline.
type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return l.Op.String() + " " + l.Text
}

// Lines diffs the pretty SNBT forms of from and to line by line.
func Lines(from, to *ir.Node) []Line {
	return LineDiff(encode.MustString(from), encode.MustString(to))
}

// LineDiff diffs two texts line by line.
func LineDiff(from, to string) []Line {
	dmp := diffpatch.New()
	fromChars, toChars, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, text := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			res = append(res, Line{Op: op, Text: text})
		}
	}
	return res
}

// Changed reports whether lines holds anything but Equal lines.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}
