package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/mailgram/mailgram/pkg/bot"
	"github.com/mailgram/mailgram/pkg/config"
	"github.com/mailgram/mailgram/pkg/prefs"
	"github.com/mailgram/mailgram/pkg/telegram"
	"github.com/mailgram/mailgram/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	Token   string `long:"telegram.token" env:"BOT_TOKEN" description:"telegram bot token, overrides config"`
	Secret  string `long:"telegram.secret" env:"BOT_SECRET" description:"webhook shared secret, overrides config"`
	Domains string `long:"domains" env:"ALLOWED_DOMAINS" description:"comma-separated allowed domains, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting mailgram version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run loads the config, wires the bot and serves the webhook until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// redo logging setup with secrets masked
	var secrets []string
	if cfg.BotToken() != "" {
		secrets = append(secrets, cfg.BotToken())
	}
	if cfg.WebhookSecret() != "" {
		secrets = append(secrets, cfg.WebhookSecret())
	}
	setupLog(opts.Debug, secrets...)

	// without a token the server still runs, the webhook reports the
	// missing configuration per-request
	var dispatcher server.Dispatcher
	if cfg.BotToken() == "" {
		log.Printf("[WARN] telegram token not set, webhook handling disabled")
	} else {
		client, err := telegram.New(cfg.BotToken())
		if err != nil {
			return fmt.Errorf("failed to create telegram client: %w", err)
		}
		dispatcher = bot.New(client, prefs.NewStore(), cfg)
	}

	log.Printf("[INFO] allowed domains: %v", cfg.Domains())

	srv := server.New(cfg, dispatcher, revision, opts.Debug)
	return srv.Run(ctx)
}

// loadConfig reads the optional config file and applies CLI/env overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}

	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.Token != "" {
		cfg.Telegram.Token = opts.Token
	}
	if opts.Secret != "" {
		cfg.Telegram.Secret = opts.Secret
	}
	cfg.SetDomainsFromList(opts.Domains)

	return cfg, nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
