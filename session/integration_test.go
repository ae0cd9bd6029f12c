package session

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinhayes/basicclient/config"
	"github.com/edwinhayes/basicclient/player"
	"github.com/edwinhayes/basicclient/player/playertest"
)

func serve(t *testing.T, opts playertest.Options) (*playertest.Service, config.Settings) {
	t.Helper()
	svc := playertest.NewService(opts)
	host, port := playertest.Start(t, svc)
	settings := config.Defaults()
	settings.Host, settings.Port = host, port
	return svc, settings
}

func newController(settings config.Settings, runtime config.Runtime, out *bytes.Buffer) *Controller {
	c := New(settings, runtime, player.NewDialer(player.Options{Name: "test", DialTimeout: time.Second}), out, nil)
	c.interval = time.Millisecond
	return c
}

func TestSessionAgainstService(t *testing.T) {
	svc, settings := serve(t, playertest.Options{
		UpdateRate: 200,
		FailAfter:  3,
		Poses:      []player.Pose{{X: 1.5, Y: -2.0, Theta: 0.3927}},
	})
	var out bytes.Buffer
	c := newController(settings, config.Runtime{}, &out)

	require.NoError(t, c.Run(context.Background()))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 5, out.String())
	for _, l := range lines[:3] {
		assert.Equal(t, "x: 1.500000m  y: -2.000000m  theta: 0.392700rad", l)
	}
	assert.True(t, strings.HasPrefix(lines[3], "Something was wrong: lost connection to service"), lines[3])
	assert.Equal(t, "Clean up", lines[4])

	assert.Equal(t, []player.VelocityCommand{Drive, Drive, Drive, player.Stop}, svc.Commands(0))
	assert.Equal(t, 1, svc.Count("unsubscribe"))
	assert.Equal(t, 0, svc.Sessions())

	calls := svc.Calls()
	last := calls[len(calls)-3:]
	assert.Equal(t, "setCmdVel", last[0].Method)
	assert.Equal(t, "unsubscribe", last[1].Method)
	assert.Equal(t, "disconnect", last[2].Method)
}

func TestSessionInterruptedAgainstService(t *testing.T) {
	svc, settings := serve(t, playertest.Options{UpdateRate: 50, Laser: []int{0}})
	settings.UseLaser = true
	settings.Mode = player.DataModePull
	var out bytes.Buffer
	c := newController(settings, config.Runtime{}, &out)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	require.NoError(t, c.Run(ctx))

	assert.True(t, strings.HasSuffix(out.String(), "Interrupted by CTRL-C.\nClean up\n"), out.String())
	cmds := svc.Commands(0)
	require.NotEmpty(t, cmds)
	assert.Equal(t, player.Stop, cmds[len(cmds)-1])
	assert.Equal(t, 2, svc.Count("unsubscribe"))
	assert.Equal(t, 0, svc.Sessions())
}

func TestSessionHeldDevice(t *testing.T) {
	svc, settings := serve(t, playertest.Options{
		Held: []playertest.Device{{Interface: player.InterfacePosition2d, Index: 1}},
	})
	settings.Index = 1
	c := newController(settings, config.Runtime{}, &bytes.Buffer{})

	err := c.Run(context.Background())
	assert.ErrorIs(t, err, player.ErrSubscription)
	assert.Equal(t, 1, svc.Count("disconnect"))
	assert.Equal(t, 0, svc.Sessions())
	assert.Empty(t, svc.Commands(1))
}

func TestSessionMotorCheckAgainstService(t *testing.T) {
	svc, settings := serve(t, playertest.Options{UpdateRate: 200, FailAfter: 2})
	c := newController(settings, config.Runtime{MotorCheckAttempts: 5}, &bytes.Buffer{})

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, 1, svc.Count("setMotorEnable"))
	assert.Equal(t, 1, svc.Count("setOdometry"))
}

func TestStopFollowsCommandInFlight(t *testing.T) {
	svc := playertest.NewService(playertest.Options{UpdateRate: 200})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The first drive command reaches the service after the client has
	// been interrupted.
	var once sync.Once
	handler := svc.Handler()
	host, port := playertest.StartHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if bytes.Contains(body, []byte("<methodName>setCmdVel</methodName>")) &&
			bytes.Contains(body, []byte("<double>-1</double>")) {
			once.Do(func() {
				cancel()
				time.Sleep(150 * time.Millisecond)
			})
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		handler.ServeHTTP(w, r)
	}))

	settings := config.Defaults()
	settings.Host, settings.Port = host, port
	var out bytes.Buffer
	c := newController(settings, config.Runtime{}, &out)

	require.NoError(t, c.Run(ctx))
	assert.True(t, strings.HasSuffix(out.String(), "Interrupted by CTRL-C.\nClean up\n"), out.String())
	assert.Equal(t, []player.VelocityCommand{Drive, player.Stop}, svc.Commands(0))
}
