package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc/encode"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/parse"
)

const docSep = "\n---\n"

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// getDocs reads the "---" separated documents of path, or of standard
// input if path is "-".
func getDocs(cfg *MainConfig, cc *cli.Context, path string) ([]*ir.Node, error) {
	in, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	opts := cfg.fileParseOpts(path)
	var res []*ir.Node
	for i, doc := range bytes.Split(in, []byte(docSep)) {
		y, err := parse.Parse(doc, opts...)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, y)
	}
	return res, nil
}

// forEachDoc calls f on each document of each file, standard input if
// there are none, and writes the non-nil results separated by "---".
func forEachDoc(cfg *MainConfig, cc *cli.Context, files []string, f func(*ir.Node) (*ir.Node, error)) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	w := cc.Out
	n := 0
	for _, file := range files {
		docs, err := getDocs(cfg, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for i, doc := range docs {
			res, err := f(doc)
			if err != nil {
				return fmt.Errorf("%s: document %d: %w", file, i, err)
			}
			if res == nil {
				continue
			}
			if n > 0 {
				if _, err := w.Write([]byte(docSep[1:])); err != nil {
					return err
				}
			}
			n++
			if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
	}
	return nil
}
