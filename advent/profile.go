package main

import (
	"fmt"
	"os"

	"github.com/felixge/fgprof"
)

// startProfile begins writing an fgprof profile (pprof format) to path.
// The returned function stops profiling and closes the file.
func startProfile(path string) (stop func() error, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating profile: %s", err)
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
