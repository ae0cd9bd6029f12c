// Package config resolves the client's startup options.
//
// Settings come from the command line and are fixed once resolved. Runtime
// holds tuning knobs that are read from BASICCLIENT_* environment variables
// only.
package config

import (
	"bytes"
	"math"
	"net"
	"strconv"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/edwinhayes/basicclient/player"
)

// Settings is the resolved command line.
type Settings struct {
	Host  string
	Port  int
	Debug bool
	// UseLaser also subscribes the laser device at Index.
	UseLaser bool
	// Set selects scenario combinations. It is accepted but not consumed.
	Set        string
	Index      int
	Mode       player.DataMode
	UpdateRate float64
}

// Defaults returns the settings used when no option is given.
func Defaults() Settings {
	return Settings{
		Host:       "localhost",
		Port:       6665,
		Set:        "*",
		Index:      0,
		Mode:       player.DataModePush,
		UpdateRate: 0,
	}
}

func (s Settings) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type serverOptions struct {
	Host string `long:"host" default:"localhost" description:"Player server host."`
	Port int    `short:"p" long:"port" default:"6665" description:"Player server port."`
}

type otherOptions struct {
	Debug  bool    `long:"debug" description:"Activates debug mode."`
	Laser  bool    `long:"laser" description:"Uses laser."`
	Set    string  `long:"set" default:"*" description:"Which combinations to run."`
	Index  int     `short:"i" long:"index" default:"0" description:"Index."`
	Mode   int     `short:"m" long:"mode" default:"1" description:"Data mode (1 = PUSH, 2 = PULL)."`
	Update float64 `short:"u" long:"update" default:"0" description:"Update rate (Hz)."`
}

type options struct {
	Server serverOptions `group:"Player server settings"`
	Other  otherOptions  `group:"Other options"`
}

func newParser(opts *options) *flags.Parser {
	return flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
}

// Usage returns the help text listing every option.
func Usage() string {
	var opts options
	var buf bytes.Buffer
	newParser(&opts).WriteHelp(&buf)
	return buf.String()
}

// Resolve parses args, which must not include the program name. Positional
// arguments are ignored. Every failure is a *UsageError; --help yields one
// wrapping ErrHelp.
func Resolve(args []string) (Settings, error) {
	var opts options
	p := newParser(&opts)

	if _, err := p.ParseArgs(args); err != nil {
		var buf bytes.Buffer
		p.WriteHelp(&buf)
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return Settings{}, &UsageError{Err: ErrHelp, Usage: buf.String()}
		}
		return Settings{}, &UsageError{Err: err, Usage: buf.String()}
	}

	s := Settings{
		Host:       opts.Server.Host,
		Port:       opts.Server.Port,
		Debug:      opts.Other.Debug,
		UseLaser:   opts.Other.Laser,
		Set:        opts.Other.Set,
		Index:      opts.Other.Index,
		Mode:       player.DataMode(opts.Other.Mode),
		UpdateRate: opts.Other.Update,
	}
	if err := s.Validate(); err != nil {
		return Settings{}, &UsageError{Err: err, Usage: Usage()}
	}
	return s, nil
}

// Validate checks ranges the parser cannot express.
func (s Settings) Validate() error {
	switch {
	case s.Host == "":
		return errors.New("host must not be empty")
	case s.Port < 1 || s.Port > 65535:
		return errors.Errorf("port %d out of range 1..65535", s.Port)
	case s.Index < 0:
		return errors.Errorf("index %d must not be negative", s.Index)
	case !s.Mode.Valid():
		return errors.Errorf("unknown data mode %d", int(s.Mode))
	case s.UpdateRate < 0 || math.IsNaN(s.UpdateRate) || math.IsInf(s.UpdateRate, 0):
		return errors.Errorf("invalid update rate %v", s.UpdateRate)
	}
	return nil
}
