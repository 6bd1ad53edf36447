package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spool/internal/config"
	"spool/internal/telemetry"
	"spool/internal/trace"
	"spool/internal/web"
)

// options holds the parsed CLI flags for the web server.
type options struct {
	addr       string
	exportDir  string
	configPath string
	verbose    bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	flag.StringVar(&opts.exportDir, "export", "", "write a static site to this directory and exit")
	flag.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ~/.config/spool/config.yaml)")
	flag.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spool-web [flags]\n\n")
		fmt.Fprintf(os.Stderr, "spool-web serves the Spool topic browser over HTTP,\n")
		fmt.Fprintf(os.Stderr, "or exports it as static HTML with -export.\n\n")
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
	if opts.addr != "" {
		cfg.Web.Addr = opts.addr
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}

	logOut := os.Stderr
	if cfg.Log.File != "" {
		f, err := telemetry.OpenLogFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := telemetry.NewLogger(logOut, cfg.Log.Level, cfg.Log.Format, "web")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
			logger.Warn("trace shutdown", slog.Any("error", err))
		}
	}()

	surface := telemetry.SurfaceWeb
	if opts.exportDir != "" {
		surface = telemetry.SurfaceExport
	}
	rec := telemetry.NewRecorder(logger, tp.Tracer(), surface)

	srv, err := web.NewServer(web.Config{Addr: cfg.Web.Addr}, web.WithRecorder(rec))
	if err != nil {
		return err
	}
	if opts.exportDir != "" {
		return srv.Export(ctx, opts.exportDir)
	}
	return srv.Run(ctx)
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "spool-web: %v\n", err)
		os.Exit(1)
	}
}
