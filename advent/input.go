package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"
)

const zstdExt = ".zst"

// stashedInput returns the path of the input stashed for the given day,
// preferring an uncompressed copy. If neither exists it returns the
// uncompressed name so that the caller reports a sensible path.
func stashedInput(dir, day string) string {
	name := filepath.Join(dir, "day"+day+".txt")
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if _, err := os.Stat(name + zstdExt); err == nil {
		return name + zstdExt
	}
	return name
}

// readInput reads a puzzle input from path ("-" means stdin),
// decompressing it if the name ends in .zst.
func readInput(path string, stdin io.Reader) (string, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	if strings.HasSuffix(path, zstdExt) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return "", fmt.Errorf("error reading %s: %s", path, err)
		}
		defer dec.Close()
		r = dec
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %s", path, err)
	}
	return string(b), nil
}

func inputExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func formatResult(n int64, comma bool) string {
	if comma {
		return humanize.Comma(n)
	}
	return fmt.Sprint(n)
}
