package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/owais-io/siawo-banner/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, app.New(app.OutputPath)))
}

func run(args []string, stdout, stderr io.Writer, a *app.App) int {
	flags := flag.NewFlagSet("siawo-banner", flag.ContinueOnError)
	flags.SetOutput(stderr)
	debug := flags.Bool("debug", false, "log font resolution and render steps to stderr")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *debug {
		a.Logger = app.NewFileLogger(stderr)
		a.Logger.Infof("main", "debug logging enabled")
	}

	path, err := a.Run()
	if err != nil {
		fmt.Fprintln(stderr, "banner error:", err)
		return 1
	}
	fmt.Fprintf(stdout, "Banner created successfully: %s\n", path)
	return 0
}
