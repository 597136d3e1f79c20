package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/database"
	"github.com/akyairhashvil/countdown/internal/history"
	"github.com/akyairhashvil/countdown/internal/report"
	"github.com/akyairhashvil/countdown/internal/tui"
	"github.com/akyairhashvil/countdown/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const settingTheme = "theme"

type options struct {
	plain   bool
	report  bool
	version bool
	hours   int
	minutes int
	seconds int
}

// errUsage reports a command line that parseFlags already complained about.
var errUsage = errors.New("invalid usage")

func main() {
	cfgPath := filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName)
	mgr, err := config.NewManager(cfgPath)
	util.MustSucceed("load config", err)

	if err := run(mgr, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// run owns every resource opened after the config, so deferred cleanup
// happens before main decides the exit code.
func run(mgr *config.Manager, args []string) error {
	cfg := mgr.GetConfig()
	opts, err := parseFlags(args, cfg.Timer, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}
	if opts.version {
		fmt.Printf("%s %s\n", config.AppName, tui.VersionLabel())
		return nil
	}

	ctx := context.Background()

	// 1. History store
	var db *database.Database
	if cfg.History.Enabled {
		db, err = database.Open(ctx, historyPath(cfg))
		if err != nil {
			return err
		}
		defer db.Close()
	}

	if opts.report {
		if db == nil {
			return errors.New("history is disabled; nothing to report")
		}
		path, err := report.Generate(ctx, db, util.ReportsDir(config.AppName), time.Now())
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	// 2. Engine and controller
	ctrl := countdown.NewController(countdown.NewEngine())
	ctrl.SelectHours(opts.hours)
	ctrl.SelectMinutes(opts.minutes)
	ctrl.SelectSeconds(opts.seconds)

	recorded := make(chan error, 1)
	if db != nil {
		events, _ := ctrl.Subscribe()
		go func() {
			recorded <- history.NewRecorder(db).Run(ctx, events)
		}()
	} else {
		close(recorded)
	}

	// 3. Run the countdown in line mode or as a full screen program
	if opts.plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
		err = runPlain(ctrl, os.Stdout, interrupt)
		signal.Stop(interrupt)
	} else {
		var (
			settings database.SettingsRepository
			src      report.Source
		)
		if db != nil {
			settings, src = db, db
		}
		model := tui.NewModel(ctrl, tuiOptions(ctx, mgr, settings, src))
		_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	}

	util.LogError("close engine", ctrl.Close())
	util.LogError("history", <-recorded)
	return err
}

// parseFlags reads the command line. Duration flags default to the
// selection stored in the config file, clamped to the picker ranges.
func parseFlags(args []string, defaults config.TimerConfig, output io.Writer) (options, error) {
	opts := options{}
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&opts.plain, "plain", false, "count down on stdout instead of the full screen view")
	fs.BoolVar(&opts.report, "report", false, "write a PDF report of recent countdowns and exit")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.IntVar(&opts.hours, "h", util.Clamp(defaults.Hours, 0, config.MaxHours), "hours to select")
	fs.IntVar(&opts.minutes, "m", util.Clamp(defaults.Minutes, 0, config.MaxMinutes), "minutes to select")
	fs.IntVar(&opts.seconds, "s", util.Clamp(defaults.Seconds, 0, config.MaxSeconds), "seconds to select")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(output, err)
		return options{}, err
	}
	limits := []struct {
		name       string
		value, max int
	}{
		{"h", opts.hours, config.MaxHours},
		{"m", opts.minutes, config.MaxMinutes},
		{"s", opts.seconds, config.MaxSeconds},
	}
	for _, l := range limits {
		if l.value < 0 || l.value > l.max {
			err := fmt.Errorf("-%s must be between 0 and %d, got %d", l.name, l.max, l.value)
			fmt.Fprintln(output, err)
			return options{}, err
		}
	}
	return opts, nil
}

func historyPath(cfg *config.Config) string {
	if cfg.History.Path != "" {
		return cfg.History.Path
	}
	return filepath.Join(util.DataDir(config.AppName), config.DBFileName)
}

// resolveTheme prefers the theme saved from inside the program over the
// config file.
func resolveTheme(ctx context.Context, settings database.SettingsRepository, cfg *config.Config) string {
	if settings != nil {
		if name, ok := settings.GetSetting(ctx, settingTheme); ok && name != "" {
			return name
		}
	}
	return cfg.Theme.Name
}

// tuiOptions wires theme persistence to settings and the report key to
// src. Either may be nil when history is disabled.
func tuiOptions(ctx context.Context, mgr *config.Manager, settings database.SettingsRepository, src report.Source) tui.Options {
	opts := tui.Options{
		Theme: resolveTheme(ctx, settings, mgr.GetConfig()),
		OnTheme: func(name string) error {
			if settings != nil {
				if err := settings.SetSetting(ctx, settingTheme, name); err != nil {
					return err
				}
			}
			return mgr.UpdateTheme(name)
		},
	}
	if src != nil {
		opts.OnReport = func() (string, error) {
			return report.Generate(ctx, src, util.ReportsDir(config.AppName), time.Now())
		}
	}
	return opts
}

// runPlain starts the selected countdown and prints every published value
// until it completes or is cancelled by a signal on interrupt.
func runPlain(ctrl *countdown.Controller, out io.Writer, interrupt <-chan os.Signal) error {
	events, unsubscribe := ctrl.Subscribe()
	defer unsubscribe()

	if _, err := ctrl.StartSelected(); err != nil {
		return err
	}
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Cause {
			case countdown.CauseStarted, countdown.CauseTicked:
				if remaining, ok := ev.State.Remaining(); ok {
					fmt.Fprintln(out, util.FormatClock(remaining))
				}
			case countdown.CauseCompleted:
				fmt.Fprintln(out, "done")
				return nil
			case countdown.CauseCancelled, countdown.CauseClosed:
				fmt.Fprintln(out, "cancelled")
				return nil
			}
		case <-interrupt:
			if _, err := ctrl.Cancel(); err != nil {
				return err
			}
		}
	}
}
