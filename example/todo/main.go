// Package todo demonstrates swipeable rows in a to-do list.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"git.sr.ht/~gioverse/swipeable/config"
	"git.sr.ht/~gioverse/swipeable/profile"
)

var (
	// configPath is an optional TOML settings file.
	configPath string
	// profileMode overrides the profile of the settings file.
	profileMode profile.Mode
	// debug outlines every action.
	debug bool
	// locale overrides the language of the settings file.
	locale string
	// extra is the number of generated to-dos below the fixed ones.
	extra int
)

func init() {
	flag.StringVar(&configPath, "config", "", "path to a TOML settings file")
	flag.Var(&profileMode, "profile", "create the provided kind of profile. Use one of [none, cpu, mem, block, goroutine, mutex, trace, gio]")
	flag.BoolVar(&debug, "debug", false, "outline swipe actions")
	flag.StringVar(&locale, "locale", "", "user interface language, such as en or de")
	flag.IntVar(&extra, "extra", 20, "number of generated to-dos")
}

func main() {
	flag.Parse()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if profileMode != "" {
		cfg.Profile = profileMode
	}
	if locale != "" {
		cfg.Locale = locale
	}
	cfg.Debug = cfg.Debug || debug
	log.Printf("locale %s, profile %s, action size %vdp", cfg.Locale, cfg.Profile, cfg.Swipe.ActionSize)

	ui := NewUI(cfg, NewMessages(cfg.Locale), Generate(extra))
	go func() {
		w := app.NewWindow(
			app.Title(ui.Messages.Title()),
			app.Size(unit.Dp(420), unit.Dp(760)),
		)
		if err := ui.Run(w); err != nil {
			fmt.Fprintf(os.Stderr, "error: premature window close: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	// Surrender main thread to OS.
	// Necessary for certain platforms.
	app.Main()
}

// Run handles window events and renders the application.
func (ui *UI) Run(w *app.Window) error {
	profiler := ui.Config.Profile.NewProfiler()
	profiler.Start()
	defer profiler.Stop()
	var ops op.Ops
	for event := range w.Events() {
		switch event := event.(type) {
		case system.DestroyEvent:
			return event.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, event)
			profiler.Record(gtx)
			ui.Layout(gtx)
			event.Frame(&ops)
		}
	}
	return nil
}
