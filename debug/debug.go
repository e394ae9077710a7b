package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Match   bool
	Merge   bool
	Path    bool
	Compile bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("NBTC_DEBUG_MATCH")
	d.Merge = boolEnv("NBTC_DEBUG_MERGE")
	d.Path = boolEnv("NBTC_DEBUG_PATH")
	d.Compile = boolEnv("NBTC_DEBUG_COMPILE")
	d.Eval = boolEnv("NBTC_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Merge() bool {
	return d.Merge
}
func Path() bool {
	return d.Path
}
func Compile() bool {
	return d.Compile
}
func Eval() bool {
	return d.Eval
}
