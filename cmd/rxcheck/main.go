// Command rxcheck verifies the signal laws and combinators against the
// scheduler, either on virtual time or on the wall clock.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	ossignal "os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

type options struct {
	Config   string `help:"YAML configuration file." type:"existingfile"`
	LogLevel string `help:"Log level (trace, debug, info, warn, error). Overrides the config file."`

	Run struct {
		Realtime  bool     `help:"Run on the wall clock instead of virtual time."`
		Scenarios []string `arg:"" optional:"" help:"Scenarios to run. Defaults to the config file list, or all."`
	} `cmd:"" help:"Run scenarios and report mismatches."`

	List struct{} `cmd:"" help:"List available scenarios."`
}

func main() {
	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	var opts options
	parser, err := kong.New(&opts,
		kong.Name("rxcheck"),
		kong.Description("Verify signal laws and combinators."),
		kong.Writers(out, out),
	)
	if err != nil {
		return err
	}
	cliCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := DefaultConfig()
	if opts.Config != "" {
		if cfg, err = LoadConfig(opts.Config); err != nil {
			return err
		}
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Run.Realtime {
		cfg.Realtime = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(out, cfg.LogLevel)

	switch strings.Fields(cliCtx.Command())[0] {
	case "list":
		for _, sc := range scenarios {
			fmt.Fprintf(out, "%-26s %s\n", sc.name, sc.description)
		}
		return nil
	case "run":
		names := opts.Run.Scenarios
		if len(names) == 0 {
			names = cfg.Scenarios
		}
		return verify(ctx, scenarios, names, cfg, log)
	}
	return nil
}

func newLogger(out io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	return log
}
