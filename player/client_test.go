package player_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinhayes/basicclient/player"
	"github.com/edwinhayes/basicclient/player/playertest"
)

func dial(t *testing.T, svc *playertest.Service) player.Client {
	t.Helper()
	host, port := playertest.Start(t, svc)
	c, err := player.NewDialer(player.Options{Name: "test", DialTimeout: time.Second}).
		Dial(context.Background(), host, port)
	require.NoError(t, err)
	return c
}

func TestDialRejected(t *testing.T) {
	host, port := playertest.Start(t, playertest.NewService(playertest.Options{RejectConnect: true}))
	_, err := player.NewDialer(player.Options{}).Dial(context.Background(), host, port)
	require.Error(t, err)
	assert.True(t, errors.Is(err, player.ErrConnection))

	var status *player.StatusError
	require.True(t, errors.As(err, &status))
	assert.Equal(t, "connect", status.Method)
	assert.Equal(t, player.APIStatusError, status.Code)
}

func TestDialUnreachable(t *testing.T) {
	host, port := playertest.Start(t, playertest.NewService(playertest.Options{}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := player.NewDialer(player.Options{}).Dial(ctx, host, port)
	assert.True(t, errors.Is(err, player.ErrConnection))
}

func TestReadPose(t *testing.T) {
	svc := playertest.NewService(playertest.Options{
		UpdateRate: 100,
		Poses:      []player.Pose{{X: 1}, {X: 2, Y: 1, Theta: 0.5}},
	})
	c := dial(t, svc)
	ctx := context.Background()

	pos := c.Position2d(0)
	_, err := pos.Pose()
	assert.True(t, errors.Is(err, player.ErrNotSubscribed))

	require.NoError(t, pos.Subscribe(ctx, player.AccessOpen))
	_, err = pos.Pose()
	assert.True(t, errors.Is(err, player.ErrNoData))

	require.NoError(t, c.Read(ctx))
	p, err := pos.Pose()
	require.NoError(t, err)
	assert.Equal(t, player.Pose{X: 1}, p)

	require.NoError(t, c.Read(ctx))
	require.NoError(t, c.Read(ctx))
	p, err = pos.Pose()
	require.NoError(t, err)
	assert.Equal(t, player.Pose{X: 2, Y: 1, Theta: 0.5}, p)

	require.NoError(t, pos.Unsubscribe(ctx))
	require.NoError(t, c.Disconnect(ctx))
	assert.Equal(t, 0, svc.Sessions())
}

func TestSubscribeFailures(t *testing.T) {
	svc := playertest.NewService(playertest.Options{
		Held: []playertest.Device{{Interface: player.InterfaceLaser, Index: 0}},
	})
	c := dial(t, svc)
	ctx := context.Background()

	err := c.Position2d(3).Subscribe(ctx, player.AccessOpen)
	assert.True(t, errors.Is(err, player.ErrSubscription), "missing device: %v", err)

	err = c.Laser(0).Subscribe(ctx, player.AccessOpen)
	assert.True(t, errors.Is(err, player.ErrSubscription), "held device: %v", err)

	var status *player.StatusError
	require.True(t, errors.As(err, &status))
	assert.Contains(t, status.Message, "held by another client")
}

func TestReadFailure(t *testing.T) {
	svc := playertest.NewService(playertest.Options{UpdateRate: 100, FailAfter: 1})
	c := dial(t, svc)
	ctx := context.Background()
	require.NoError(t, c.Position2d(0).Subscribe(ctx, player.AccessOpen))

	require.NoError(t, c.Read(ctx))
	err := c.Read(ctx)
	assert.True(t, errors.Is(err, player.ErrConnectionLost), "%v", err)
}

func TestReadTimeout(t *testing.T) {
	svc := playertest.NewService(playertest.Options{})
	host, port := playertest.Start(t, svc)
	c, err := player.NewDialer(player.Options{ReadTimeout: 50 * time.Millisecond}).
		Dial(context.Background(), host, port)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Position2d(0).Subscribe(ctx, player.AccessOpen))
	require.NoError(t, c.SetUpdateRate(ctx, 0.5))

	start := time.Now()
	err = c.Read(ctx)
	assert.True(t, errors.Is(err, player.ErrConnectionLost), "%v", err)
	assert.Less(t, int64(time.Since(start)), int64(time.Second))
}

func TestPullMode(t *testing.T) {
	svc := playertest.NewService(playertest.Options{Poses: []player.Pose{{X: 4}}})
	c := dial(t, svc)
	ctx := context.Background()

	require.NoError(t, c.SetDataMode(ctx, player.DataModePull))
	require.NoError(t, c.Position2d(0).Subscribe(ctx, player.AccessOpen))
	require.NoError(t, c.Read(ctx))

	p, err := c.Position2d(0).Pose()
	require.NoError(t, err)
	assert.Equal(t, 4.0, p.X)
	assert.Equal(t, 1, svc.Count("requestData"))

	assert.Error(t, c.SetDataMode(ctx, player.DataMode(9)))
}

func TestSetUpdateRate(t *testing.T) {
	svc := playertest.NewService(playertest.Options{})
	c := dial(t, svc)
	ctx := context.Background()

	require.NoError(t, c.SetUpdateRate(ctx, 0))
	assert.Equal(t, 0, svc.Count("setUpdateRate"))
	require.NoError(t, c.SetUpdateRate(ctx, 50))
	assert.Equal(t, 1, svc.Count("setUpdateRate"))
	assert.Error(t, c.SetUpdateRate(ctx, -1))
}

func TestLaserScan(t *testing.T) {
	svc := playertest.NewService(playertest.Options{UpdateRate: 100, Laser: []int{0}, LaserSamples: 5})
	c := dial(t, svc)
	ctx := context.Background()

	l := c.Laser(0)
	require.NoError(t, l.Subscribe(ctx, player.AccessOpen))
	require.NoError(t, c.Read(ctx))

	scan, err := l.Scan()
	require.NoError(t, err)
	assert.Len(t, scan.Ranges, 5)
	r, _, ok := scan.Nearest()
	require.True(t, ok)
	assert.Equal(t, 2.0, r)
}

func TestCommands(t *testing.T) {
	svc := playertest.NewService(playertest.Options{UpdateRate: 100})
	c := dial(t, svc)
	ctx := context.Background()

	pos := c.Position2d(0)
	assert.Error(t, pos.SetCmdVel(ctx, player.Stop), "not subscribed")

	require.NoError(t, pos.Subscribe(ctx, player.AccessOpen))
	require.NoError(t, pos.SetMotorEnable(ctx, true))
	require.NoError(t, pos.SetCmdVel(ctx, player.VelocityCommand{Linear: -1, Angular: 1, Immediate: true}))
	require.NoError(t, pos.SetCmdVel(ctx, player.Stop))
	require.NoError(t, pos.SetOdometry(ctx, player.Pose{X: 3, Y: 4}))

	assert.Equal(t, []player.VelocityCommand{
		player.Stop,
		{Linear: -1, Angular: 1, Immediate: true},
		player.Stop,
	}, svc.Commands(0))

	require.NoError(t, c.Read(ctx))
	p, err := pos.Pose()
	require.NoError(t, err)
	assert.Equal(t, player.Pose{X: 3, Y: 4}, p)
}

func TestDisconnectedClient(t *testing.T) {
	c := dial(t, playertest.NewService(playertest.Options{}))
	ctx := context.Background()
	require.NoError(t, c.Disconnect(ctx))
	require.NoError(t, c.Disconnect(ctx))

	err := c.Position2d(0).Subscribe(ctx, player.AccessOpen)
	assert.True(t, errors.Is(err, player.ErrDisconnected))
}
