// Command basic_client connects to a robot-control service, prints the
// odometry of position2d:<index> while driving the robot in a circle, and
// stops it cleanly on CTRL-C.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/edwinhayes/basicclient/config"
	"github.com/edwinhayes/basicclient/player"
	"github.com/edwinhayes/basicclient/session"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	code := run(ctx, os.Args, nil, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the client and returns the process exit code. A nil environ
// reads runtime settings from the process environment.
func run(ctx context.Context, args []string, environ map[string]string, stdout, stderr io.Writer) int {
	prog := filepath.Base(args[0])

	settings, err := config.Resolve(args[1:])
	if err != nil {
		var usage *config.UsageError
		if errors.Is(err, config.ErrHelp) && errors.As(err, &usage) {
			fmt.Fprint(stdout, usage.Usage)
			return exitOK
		}
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		if errors.As(err, &usage) {
			fmt.Fprint(stderr, usage.Usage)
		}
		return exitUsage
	}

	runtime, err := config.LoadRuntime(environ)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return exitUsage
	}

	logger := player.NewLogger(stderr, settings.Debug, runtime.LogFormat)
	logger.WithFields(logrus.Fields{
		"settings": fmt.Sprintf("%+v", settings),
		"runtime":  fmt.Sprintf("%+v", runtime),
	}).Debug("starting")

	dialer := player.NewDialer(player.Options{
		DialTimeout: runtime.DialTimeout,
		ReadTimeout: runtime.ReadTimeout,
		Logger:      logger,
	})
	ctrl := session.New(settings, runtime, dialer, stdout, logger)
	if err := ctrl.Run(ctx); err != nil {
		fmt.Fprintf(stderr, "%s: Error while connecting to %s:%d.\n", prog, settings.Host, settings.Port)
		fmt.Fprintf(stderr, "%s: Error details: %v\n", prog, err)
		return exitFailure
	}
	return exitOK
}
