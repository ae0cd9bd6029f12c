// Command fake_service serves an in-process robot-control service for trying
// basic_client without a robot. Commands are logged, not executed.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/edwinhayes/basicclient/player"
	"github.com/edwinhayes/basicclient/player/playertest"
)

type options struct {
	Host       string  `long:"host" default:"localhost" description:"Address to listen on."`
	Port       int     `short:"p" long:"port" default:"6665" description:"Port to listen on."`
	Position2d []int   `long:"position2d" default:"0" description:"position2d device index (repeatable)."`
	Laser      []int   `long:"laser" description:"laser device index (repeatable)."`
	Rate       float64 `short:"r" long:"rate" default:"10" description:"Default PUSH rate (Hz)."`
	FailAfter  int     `long:"fail-after" default:"0" description:"Fail every read after this many (0 = never)."`
	Debug      bool    `long:"debug" description:"Log every call."`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logger := player.NewLogger(os.Stderr, opts.Debug, player.LogFormatText)
	svc := playertest.NewService(playertest.Options{
		Position2d: opts.Position2d,
		Laser:      opts.Laser,
		UpdateRate: opts.Rate,
		FailAfter:  opts.FailAfter,
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:    net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		Handler: svc.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("shutdown")
		}
	}()

	logger.WithFields(logrus.Fields{
		"addr":       srv.Addr,
		"position2d": opts.Position2d,
		"laser":      opts.Laser,
	}).Info("serving")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Error("serve")
		os.Exit(1)
	}
	logger.Info("stopped")
}
