/*
Command cssinline inlines the stylesheets of an HTML document.

	cssinline mail.html > inlined.html

The document is read from the file given as the single argument, the
result is written to standard output. Rules which cannot be understood are
silently dropped; to see what has been dropped, set a trace level:

	CSSINLINE_TRACE=Debug cssinline mail.html

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/cssinline"
	"github.com/npillmayer/schuko/tracing"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
)

const version = "0.1.0"

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "cssinline",
		Usage:           "moves <style> rules of an HTML document into style attributes",
		Version:         version,
		ArgsUsage:       "FILE",
		HideHelpCommand: true,
		Before:          initializeTracing,
		Action:          run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "trace",
				Usage:   "trace `LEVEL` (Error, Info or Debug) to stderr",
				Hidden:  true,
				Sources: cli.EnvVars("CSSINLINE_TRACE"),
			},
		},
	}
}

func initializeTracing(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if level := cmd.String("trace"); level != "" {
		if err := setupTracing(level); err != nil {
			return ctx, fmt.Errorf("unable to set up tracing: %w", err)
		}
	}
	return ctx, nil
}

var errUsage = errors.New("expecting exactly one argument: the HTML file to process")

func run(_ context.Context, cmd *cli.Command) (err error) {
	if cmd.NArg() != 1 {
		return errUsage
	}
	fname := cmd.Args().First()
	in, err := os.Open(fname)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", fname, err)
	}
	defer in.Close()
	out := bufio.NewWriter(cmd.Root().Writer)
	defer func() {
		err = multierr.Append(err, out.Flush())
	}()
	report := func(err error) {
		tracing.Select("cssinline").Infof("%s: %v", fname, err)
	}
	if err := cssinline.InlineReader(in, out, cssinline.WithDiagnostics(report)); err != nil {
		return fmt.Errorf("unable to process '%s': %w", fname, err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var err error
	// os.Exit skips deferred functions, stop has to be called first
	defer func() {
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "cssinline: %v\n", err)
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}
