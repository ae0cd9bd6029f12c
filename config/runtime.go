package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/edwinhayes/basicclient/player"
)

// EnvPrefix is prepended to every Runtime variable name.
const EnvPrefix = "BASICCLIENT_"

// Runtime holds tuning that has no command line option.
type Runtime struct {
	// DialTimeout bounds the connect handshake.
	DialTimeout time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	// ReadTimeout bounds each blocking read. Zero waits until data arrives
	// or the client is interrupted.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"0s"`
	// ShutdownTimeout bounds each cleanup step.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"2s"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	// MotorCheckAttempts enables the motor check before polling when
	// greater than zero.
	MotorCheckAttempts int `env:"MOTOR_CHECK_ATTEMPTS" envDefault:"0"`
}

// LoadRuntime reads Runtime from environ. A nil environ means the process
// environment.
func LoadRuntime(environ map[string]string) (Runtime, error) {
	var r Runtime
	if err := env.ParseWithOptions(&r, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return Runtime{}, errors.Wrap(err, "error getting env configs")
	}
	if err := r.Validate(); err != nil {
		return Runtime{}, err
	}
	return r, nil
}

func (r Runtime) Validate() error {
	switch {
	case r.DialTimeout < 0:
		return errors.Errorf("%sDIAL_TIMEOUT must not be negative", EnvPrefix)
	case r.ReadTimeout < 0:
		return errors.Errorf("%sREAD_TIMEOUT must not be negative", EnvPrefix)
	case r.ShutdownTimeout <= 0:
		return errors.Errorf("%sSHUTDOWN_TIMEOUT must be positive", EnvPrefix)
	case r.LogFormat != player.LogFormatText && r.LogFormat != player.LogFormatJSON:
		return errors.Errorf("%sLOG_FORMAT must be %q or %q, not %q", EnvPrefix, player.LogFormatText, player.LogFormatJSON, r.LogFormat)
	case r.MotorCheckAttempts < 0:
		return errors.Errorf("%sMOTOR_CHECK_ATTEMPTS must not be negative", EnvPrefix)
	}
	return nil
}
