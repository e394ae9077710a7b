package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/nbtc/encode"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/ir/kpath"
)

var out io.Writer = os.Stderr

// SNBT wraps a node so that it prints in SNBT form with %s.
type SNBT struct{ *ir.Node }

func (y SNBT) String() string {
	return snbt(y.Node)
}

func snbt(x *ir.Node) string {
	if x == nil {
		return "<none>"
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf, encode.Compact(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return buf.String()
}

// Logf writes a debug message to stderr. Tree and path arguments are
// rendered as SNBT and path text.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = snbt(x)
		case *kpath.KPath:
			args[i] = x.String()
		}
	}
	fmt.Fprintf(out, msg, args...)
}
