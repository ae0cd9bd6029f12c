// Package session drives one robot: it connects, subscribes the position2d
// device, polls odometry while commanding a constant velocity, and always
// stops the robot and releases the service on the way out.
package session

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/edwinhayes/basicclient/config"
	"github.com/edwinhayes/basicclient/player"
)

var (
	// ErrClosed is returned by Run on a controller that has already run.
	ErrClosed = errors.New("session is closed")
	// ErrMotorCheck means the robot never reported the zeroed odometry.
	ErrMotorCheck = errors.New("motor check failed")
)

// LoopInterval is the pause between polling iterations. It does not depend
// on the service's update rate.
const LoopInterval = 100 * time.Millisecond

// Drive is the velocity commanded on every polling iteration.
var Drive = player.VelocityCommand{Linear: -1, Angular: 1, Immediate: true}

// Controller owns one connection and its subscriptions. It is not safe for
// concurrent use; interrupts are delivered by cancelling the context passed
// to Run.
type Controller struct {
	settings config.Settings
	runtime  config.Runtime
	dialer   player.Dialer
	out      io.Writer
	logger   logrus.FieldLogger
	interval time.Duration

	state    State
	client   player.Client
	position player.Position2d
	laser    player.Laser
}

// New returns a controller that prints poses and shutdown messages to out.
func New(settings config.Settings, runtime config.Runtime, dialer player.Dialer, out io.Writer, logger logrus.FieldLogger) *Controller {
	if runtime.ShutdownTimeout <= 0 {
		runtime.ShutdownTimeout = 2 * time.Second
	}
	if logger == nil {
		nop := logrus.New()
		nop.SetOutput(io.Discard)
		logger = nop
	}
	return &Controller{
		settings: settings,
		runtime:  runtime,
		dialer:   dialer,
		out:      out,
		logger:   logger.WithField("addr", settings.Addr()),
		interval: LoopInterval,
	}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) setState(s State) {
	c.logger.Debugf("session %s -> %s", c.state, s)
	c.state = s
}

// Run connects, subscribes and polls until ctx is cancelled or the
// connection fails, then shuts down. Startup failures are returned; a
// polling loop that ends for any reason yields nil once cleanup is done.
func (c *Controller) Run(ctx context.Context) error {
	if c.state != Unconnected {
		return ErrClosed
	}

	if err := c.connect(ctx); err != nil {
		c.setState(Closed)
		return err
	}
	if err := c.subscribe(ctx); err != nil {
		c.release()
		return err
	}
	if err := c.checkMotors(ctx); err != nil {
		c.shutdown()
		return err
	}

	c.setState(Polling)
	err := c.poll(ctx)
	if ctx.Err() != nil {
		c.setState(Interrupted)
		fmt.Fprintln(c.out, "Interrupted by CTRL-C.")
		c.logger.Info("interrupted")
	} else {
		c.setState(Faulted)
		fmt.Fprintf(c.out, "Something was wrong: %v\n", err)
		c.logger.WithError(err).Error("polling stopped")
	}
	c.shutdown()
	return nil
}

func (c *Controller) connect(ctx context.Context) error {
	client, err := c.dialer.Dial(ctx, c.settings.Host, c.settings.Port)
	if err != nil {
		if !errors.Is(err, player.ErrConnection) {
			err = player.WithKind(player.ErrConnection, err, "connect %s", c.settings.Addr())
		}
		return err
	}
	c.client = client
	c.setState(Connected)

	if err := client.SetDataMode(ctx, c.settings.Mode); err != nil {
		c.release()
		return player.WithKind(player.ErrConnection, err, "configure %s", c.settings.Addr())
	}
	if err := client.SetUpdateRate(ctx, c.settings.UpdateRate); err != nil {
		c.release()
		return player.WithKind(player.ErrConnection, err, "configure %s", c.settings.Addr())
	}
	c.logger.WithFields(logrus.Fields{
		"mode":   c.settings.Mode,
		"update": c.settings.UpdateRate,
	}).Info("connected")
	return nil
}

func (c *Controller) subscribe(ctx context.Context) error {
	position := c.client.Position2d(c.settings.Index)
	if err := position.Subscribe(ctx, player.AccessOpen); err != nil {
		return c.subscriptionError(err, player.InterfacePosition2d)
	}
	c.position = position

	if c.settings.UseLaser {
		laser := c.client.Laser(c.settings.Index)
		if err := laser.Subscribe(ctx, player.AccessOpen); err != nil {
			return c.subscriptionError(err, player.InterfaceLaser)
		}
		c.laser = laser
	}

	if c.settings.Set != "*" {
		c.logger.Debugf("combination filter %q has no effect", c.settings.Set)
	}
	c.setState(Subscribed)
	c.logger.WithField("index", c.settings.Index).Info("subscribed")
	return nil
}

func (c *Controller) subscriptionError(err error, iface string) error {
	if errors.Is(err, player.ErrSubscription) {
		return err
	}
	return player.WithKind(player.ErrSubscription, err, "subscribe %s:%d", iface, c.settings.Index)
}

// checkMotors enables the motors and waits for the odometry reset to show
// up in the data, trying MotorCheckAttempts times.
func (c *Controller) checkMotors(ctx context.Context) error {
	attempts := c.runtime.MotorCheckAttempts
	if attempts <= 0 {
		return nil
	}
	if err := c.position.SetMotorEnable(ctx, true); err != nil {
		return player.WithKind(ErrMotorCheck, err, "motor check")
	}
	for i := 0; i < attempts; i++ {
		if err := c.position.SetOdometry(ctx, player.Pose{}); err != nil {
			return player.WithKind(ErrMotorCheck, err, "motor check")
		}
		if err := c.client.Read(ctx); err != nil {
			return player.WithKind(ErrMotorCheck, err, "motor check")
		}
		if pose, err := c.position.Pose(); err == nil && pose.X == 0 {
			c.logger.Debugf("motors answered after %d attempts", i+1)
			return nil
		}
	}
	c.logger.Errorf("failed to connect to robot after %d attempts", attempts)
	return errors.Wrapf(ErrMotorCheck, "no answer after %d attempts", attempts)
}

// poll runs until ctx is done or an iteration fails.
func (c *Controller) poll(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.client.Read(ctx); err != nil {
			return err
		}

		pose, err := c.position.Pose()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, pose)

		if c.laser != nil {
			c.logScan()
		}

		if err := c.drive(ctx); err != nil {
			return err
		}
		if err := player.Sleep(ctx, c.interval); err != nil {
			return err
		}
	}
}

// drive sends the loop's velocity command. An interrupt does not cancel it,
// so it completes before the final Stop is sent. ShutdownTimeout bounds it.
func (c *Controller) drive(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.runtime.ShutdownTimeout)
	defer cancel()
	return c.position.SetCmdVel(ctx, Drive)
}

func (c *Controller) logScan() {
	scan, err := c.laser.Scan()
	if err != nil {
		c.logger.WithError(err).Debug("no scan")
		return
	}
	if r, b, ok := scan.Nearest(); ok {
		c.logger.Debugf("scan of %d beams, nearest %.3fm at %.3frad", len(scan.Ranges), r, b)
	}
}

// shutdown stops the robot, then releases everything Run acquired.
func (c *Controller) shutdown() {
	c.setState(ShuttingDown)
	fmt.Fprintln(c.out, "Clean up")
	c.step("stop robot", func(ctx context.Context) error {
		return c.position.SetCmdVel(ctx, player.Stop)
	})
	c.release()
}

// release unsubscribes what is subscribed and disconnects. Failures are
// logged and the remaining steps still run.
func (c *Controller) release() {
	if c.state != ShuttingDown {
		c.setState(ShuttingDown)
	}
	if c.laser != nil {
		c.step("unsubscribe laser", c.laser.Unsubscribe)
	}
	if c.position != nil {
		c.step("unsubscribe position2d", c.position.Unsubscribe)
	}
	c.step("disconnect", c.client.Disconnect)
	c.setState(Closed)
}

// step runs one cleanup action under its own deadline, since the context
// given to Run may already be cancelled.
func (c *Controller) step(name string, f func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.runtime.ShutdownTimeout)
	defer cancel()
	if err := f(ctx); err != nil {
		c.logger.WithError(err).Warnf("%s failed", name)
		return
	}
	c.logger.Debug(name)
}
