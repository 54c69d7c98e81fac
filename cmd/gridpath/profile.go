package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/felixge/fgprof"
	"github.com/pkg/profile"
)

// startProfile begins the requested profile and returns its stop function.
// kind "" disables profiling. cpu and mem use pkg/profile; wall samples
// on- and off-CPU time with fgprof into dir/wall.pprof.
func startProfile(kind, dir string) (func() error, error) {
	switch kind {
	case "":
		return func() error { return nil }, nil
	case "cpu", "mem":
		mode := profile.CPUProfile
		if kind == "mem" {
			mode = profile.MemProfile
		}
		p := profile.Start(mode, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
		return func() error { p.Stop(); return nil }, nil
	case "wall":
		f, err := os.Create(filepath.Join(dir, "wall.pprof"))
		if err != nil {
			return nil, fmt.Errorf("create wall profile: %w", err)
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		return func() error {
			if err := stop(); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		}, nil
	default:
		return nil, fmt.Errorf("%w: profile %q (want cpu, mem or wall)", ErrBadConfig, kind)
	}
}
