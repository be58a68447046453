package toolpath

import (
	"errors"
	"fmt"

	"github.com/kpango/glg"

	"toolpath/internal/gcode"
	"toolpath/internal/source"
)

// LineSource is what Extract reads from. *source.Reader satisfies it.
type LineSource interface {
	Next() ([]byte, bool)
	Line() int
	Err() error
}

type Options struct {
	// Log receives per-line diagnostics. nil means glg.Get().
	Log *glg.Glg
}

func (o Options) log() *glg.Glg {
	if o.Log == nil {
		return glg.Get()
	}
	return o.Log
}

// Report counts what happened to the input lines.
type Report struct {
	Lines     int
	Moves     int
	Ignored   int
	Malformed int
	BadFields int
}

func (r Report) String() string {
	return fmt.Sprintf("%d lines, %d moves, %d other directives, %d malformed, %d bad fields",
		r.Lines, r.Moves, r.Ignored, r.Malformed, r.BadFields)
}

// Extract runs the whole source through the decoder and accumulator. Lines
// that fail to decode are logged and skipped; only a read error from src is
// returned.
func Extract(src LineSource, opts Options) (Path, Report, error) {
	log := opts.log()
	acc := NewAccumulator()
	var rep Report
	for {
		raw, ok := src.Next()
		if !ok {
			break
		}
		rep.Lines++
		d, err := gcode.Decode(string(raw))
		switch {
		case errors.Is(err, gcode.ErrField):
			rep.BadFields++
			log.Warnf("line %d dropped: %v", src.Line(), err)
			continue
		case err != nil:
			rep.Malformed++
			log.Debugf("line %d skipped: %v", src.Line(), err)
			continue
		case d == nil:
			continue
		}
		if !acc.Apply(*d) {
			rep.Ignored++
			continue
		}
		rep.Moves++
		if rep.Moves == 1 {
			log.Infof("print started at: %s, %s, %s", d.X, d.Y, d.Z)
		}
	}
	if err := src.Err(); err != nil {
		return nil, rep, fmt.Errorf("read line %d: %w", src.Line()+1, err)
	}
	return acc.Finish(), rep, nil
}

// Load extracts the path of the G-code file at path ("-" for stdin).
func Load(path string, opts Options) (Path, Report, error) {
	r, err := source.Open(path)
	if err != nil {
		return nil, Report{}, err
	}
	defer r.Close()
	p, rep, err := Extract(r, opts)
	if err != nil {
		return nil, rep, fmt.Errorf("%s: %w", path, err)
	}
	opts.log().Infof("%s: %s", path, rep)
	return p, rep, nil
}
