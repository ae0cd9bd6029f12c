// Package player is a client binding for a Player-style robot-control
// service. A Dialer opens a Client; the Client hands out device proxies
// (Position2d, Laser) whose state is refreshed by Client.Read.
//
// A Client and its proxies must be used from a single goroutine.
package player

//go:generate mockgen -source=player.go -destination=../mock/player_mock.go -package=mock

import (
	"context"
)

// Dialer opens connections to a robot-control service.
type Dialer interface {
	Dial(ctx context.Context, host string, port int) (Client, error)
}

// DialerFunc adapts a plain func to a Dialer.
type DialerFunc func(ctx context.Context, host string, port int) (Client, error)

func (f DialerFunc) Dial(ctx context.Context, host string, port int) (Client, error) {
	return f(ctx, host, port)
}

type Client interface {
	// Addr returns the host:port the client is connected to.
	Addr() string
	SetDataMode(ctx context.Context, mode DataMode) error
	// SetUpdateRate asks the service to push data at hz. Zero keeps the
	// service default.
	SetUpdateRate(ctx context.Context, hz float64) error
	// Read blocks until the next data update has been received and
	// dispatched to the subscribed proxies. In PULL mode it requests the
	// update first. Any failure wraps ErrConnectionLost.
	Read(ctx context.Context) error
	// Position2d returns the proxy for the position2d device at index.
	// The proxy is not subscribed yet.
	Position2d(index int) Position2d
	// Laser returns the proxy for the laser device at index.
	Laser(index int) Laser
	Disconnect(ctx context.Context) error
}

// Position2d is a differential-drive base: odometry in, velocity out.
type Position2d interface {
	Index() int
	Subscribe(ctx context.Context, access AccessMode) error
	Unsubscribe(ctx context.Context) error
	// Pose returns the pose delivered by the last Read.
	Pose() (Pose, error)
	SetCmdVel(ctx context.Context, cmd VelocityCommand) error
	SetMotorEnable(ctx context.Context, enable bool) error
	SetOdometry(ctx context.Context, pose Pose) error
}

// Laser is a planar range finder.
type Laser interface {
	Index() int
	Subscribe(ctx context.Context, access AccessMode) error
	Unsubscribe(ctx context.Context) error
	// Scan returns the scan delivered by the last Read.
	Scan() (Scan, error)
}
