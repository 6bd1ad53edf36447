package main

import (
	"cmp"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"spool/internal/browser"
	"spool/internal/catalog"
	"spool/internal/config"
	"spool/internal/layout"
	"spool/internal/telemetry"
	"spool/internal/trace"
	"spool/internal/ui"
)

// options holds the parsed CLI flags for the terminal browser.
type options struct {
	configPath string
	logFile    string
	topic      string
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ~/.config/spool/config.yaml)")
	flag.StringVar(&opts.logFile, "log-file", "", "write logs to this file (default: discard)")
	flag.StringVar(&opts.topic, "topic", "", "topic to show first")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spool [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Spool browses news summaries by topic in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	// stdout belongs to the terminal UI; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := cmp.Or(opts.logFile, cfg.Log.File); path != "" {
		f, err := telemetry.OpenLogFile(path)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := telemetry.NewLogger(logOut, cfg.Log.Level, cfg.Log.Format, "tui")
	if err != nil {
		return err
	}

	cat := catalog.Default()
	topic := cmp.Or(opts.topic, cfg.UI.InitialTopic)
	if topic != "" && !cat.Has(topic) {
		return fmt.Errorf("unknown topic %q (choose from %s)", topic, strings.Join(cat.Keys(), ", "))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := trace.NewProvider(ctx, trace.Config{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
		Insecure:    cfg.Trace.Insecure,
	})
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", "error", err)
		}
	}()

	rec := telemetry.NewRecorder(logger, tp.Tracer(), telemetry.SurfaceTerminal)
	b := browser.New(cat,
		browser.WithInitialTopic(topic),
		browser.WithObserver(rec.Observer(ctx)),
	)
	logger.Info("starting", "topic", b.Selected(), "tracing", tp.Exporting())

	model := ui.NewAppModel(ctx, b, layout.Default().Title, rec).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "spool: %v\n", err)
		os.Exit(1)
	}
}
