// Package profile unifies the profiling api between Gio profiler and pkg/profile.
package profile

import (
	"fmt"
	"log"
	"strings"

	"gioui.org/layout"
	"gioui.org/x/profiling"
	"github.com/pkg/profile"
)

// Mode selects what is profiled.
type Mode string

const (
	None      Mode = "none"
	CPU       Mode = "cpu"
	Memory    Mode = "mem"
	Block     Mode = "block"
	Goroutine Mode = "goroutine"
	Mutex     Mode = "mutex"
	Trace     Mode = "trace"
	// Gio records per-frame timings of the window to a CSV file.
	Gio Mode = "gio"
)

// Modes lists every supported mode.
var Modes = []Mode{None, CPU, Memory, Block, Goroutine, Mutex, Trace, Gio}

// ParseMode accepts a mode name in any case. The empty string is None.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return None, nil
	}
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return None, fmt.Errorf("unknown profile mode %q", s)
}

// String implements flag.Value.
func (m *Mode) String() string {
	if m == nil || *m == "" {
		return string(None)
	}
	return string(*m)
}

// Set implements flag.Value.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Profiler runs one profiling session.
type Profiler struct {
	Mode     Mode
	starter  func(p *profile.Profile)
	stopper  func()
	recorder func(gtx layout.Context)
}

// NewProfiler creates a profiler for the mode.
func (m Mode) NewProfiler() Profiler {
	switch m {
	case CPU:
		return Profiler{Mode: m, starter: profile.CPUProfile}
	case Memory:
		return Profiler{Mode: m, starter: profile.MemProfile}
	case Block:
		return Profiler{Mode: m, starter: profile.BlockProfile}
	case Goroutine:
		return Profiler{Mode: m, starter: profile.GoroutineProfile}
	case Mutex:
		return Profiler{Mode: m, starter: profile.MutexProfile}
	case Trace:
		return Profiler{Mode: m, starter: profile.TraceProfile}
	case Gio:
		return gioProfiler()
	}
	return Profiler{Mode: None}
}

func gioProfiler() Profiler {
	var recorder *profiling.CSVTimingRecorder
	return Profiler{
		Mode: Gio,
		starter: func(*profile.Profile) {
			var err error
			recorder, err = profiling.NewRecorder(nil)
			if err != nil {
				log.Printf("starting profiler: %v", err)
			}
		},
		stopper: func() {
			if recorder == nil {
				return
			}
			if err := recorder.Stop(); err != nil {
				log.Printf("stopping profiler: %v", err)
			}
		},
		recorder: func(gtx layout.Context) {
			if recorder == nil {
				return
			}
			recorder.Profile(gtx)
		},
	}
}

// Start profiling.
func (p *Profiler) Start() {
	switch {
	case p.starter == nil:
	case p.Mode == Gio:
		p.starter(nil)
	default:
		p.stopper = profile.Start(p.starter, profile.NoShutdownHook).Stop
	}
}

// Stop profiling. It is safe to call on a profiler that never started.
func (p *Profiler) Stop() {
	if p.stopper != nil {
		p.stopper()
		p.stopper = nil
	}
}

// Record GUI stats for the frame.
func (p Profiler) Record(gtx layout.Context) {
	if p.recorder != nil {
		p.recorder(gtx)
	}
}
