package player

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/edwinhayes/basicclient/xmlrpc"
)

// Options configure the clients created by NewDialer.
type Options struct {
	// Name identifies the client to the service. Defaults to
	// "<program>@<host>".
	Name string
	// DialTimeout bounds the connect handshake. Zero means no bound.
	DialTimeout time.Duration
	// ReadTimeout bounds each Read. Zero means Read waits until data
	// arrives or its context is done.
	ReadTimeout time.Duration
	// HTTPClient carries the XML-RPC calls. Defaults to a fresh client.
	HTTPClient *http.Client
	Logger     logrus.FieldLogger
}

type dialer struct {
	opts Options
}

// NewDialer returns a Dialer that speaks the service's XML-RPC API.
func NewDialer(opts Options) Dialer {
	if opts.Name == "" {
		opts.Name = defaultClientName()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	return &dialer{opts: opts}
}

// Dial performs the connect handshake. A single attempt is made; failures
// wrap ErrConnection.
func (d *dialer) Dial(ctx context.Context, host string, port int) (Client, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	if d.opts.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.opts.DialTimeout)
		defer cancel()
	}

	c := &client{
		rpc:         xmlrpc.NewClient(fmt.Sprintf("http://%s/", addr), d.opts.HTTPClient),
		addr:        addr,
		mode:        DataModePush,
		readTimeout: d.opts.ReadTimeout,
		logger:      d.opts.Logger.WithField("addr", addr),
		positions:   make(map[int]*position2d),
		lasers:      make(map[int]*laser),
	}

	value, err := callAPI(ctx, c.rpc, "connect", d.opts.Name)
	if err != nil {
		return nil, WithKind(ErrConnection, err, "connect %s", addr)
	}
	sid, ok := value.(string)
	if !ok || sid == "" {
		return nil, WithKind(ErrConnection, errors.Errorf("bad session id %v", value), "connect %s", addr)
	}
	c.sid = sid
	c.logger = c.logger.WithField("session", sid)
	c.logger.Debug("connected")
	return c, nil
}

// client implements Client. It must be accessed from a single goroutine.
type client struct {
	rpc         *xmlrpc.Client
	addr        string
	sid         string
	mode        DataMode
	readTimeout time.Duration
	logger      logrus.FieldLogger
	positions   map[int]*position2d
	lasers      map[int]*laser
	lastSeq     int64
	closed      bool
}

func (c *client) Addr() string {
	return c.addr
}

func (c *client) call(ctx context.Context, method string, args ...interface{}) (interface{}, error) {
	if c.closed {
		return nil, errors.Wrap(ErrDisconnected, method)
	}
	return callAPI(ctx, c.rpc, method, append([]interface{}{c.sid}, args...)...)
}

func (c *client) SetDataMode(ctx context.Context, mode DataMode) error {
	if !mode.Valid() {
		return errors.Errorf("unknown data mode %d", int(mode))
	}
	if _, err := c.call(ctx, "setDataMode", int(mode)); err != nil {
		return errors.Wrapf(err, "set data mode %s", mode)
	}
	c.mode = mode
	c.logger.Debugf("data mode %s", mode)
	return nil
}

func (c *client) SetUpdateRate(ctx context.Context, hz float64) error {
	if hz < 0 {
		return errors.Errorf("negative update rate %v", hz)
	}
	if hz == 0 {
		return nil
	}
	if _, err := c.call(ctx, "setUpdateRate", hz); err != nil {
		return errors.Wrapf(err, "set update rate %v Hz", hz)
	}
	c.logger.Debugf("update rate %v Hz", hz)
	return nil
}

func (c *client) Read(ctx context.Context) error {
	if c.readTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.readTimeout)
		defer cancel()
	}

	if c.mode == DataModePull {
		if _, err := c.call(ctx, "requestData"); err != nil {
			return WithKind(ErrConnectionLost, err, "request data")
		}
	}

	value, err := c.call(ctx, "read", int(c.readTimeout/time.Millisecond))
	if err != nil {
		return WithKind(ErrConnectionLost, err, "read")
	}
	payload, ok := value.(string)
	if !ok {
		return WithKind(ErrConnectionLost, errors.Errorf("payload is %T", value), "read")
	}
	f, err := decodeFrame([]byte(payload))
	if err != nil {
		return WithKind(ErrConnectionLost, err, "read")
	}

	c.dispatch(f)
	return nil
}

func (c *client) dispatch(f *frame) {
	if f.seq <= c.lastSeq {
		c.logger.Debugf("stale frame %d after %d", f.seq, c.lastSeq)
	}
	c.lastSeq = f.seq

	// Data is only current for the frame that carried it.
	for _, p := range c.positions {
		p.fresh = false
	}
	for _, l := range c.lasers {
		l.fresh = false
	}
	for index, pose := range f.poses {
		if p, ok := c.positions[index]; ok && p.subscribed {
			p.pose, p.fresh = pose, true
		}
	}
	for index, scan := range f.scans {
		if l, ok := c.lasers[index]; ok && l.subscribed {
			l.scan, l.fresh = scan, true
		}
	}
	for _, iface := range f.other {
		c.logger.Debugf("ignoring data for interface %s", iface)
	}
}

func (c *client) Position2d(index int) Position2d {
	p, ok := c.positions[index]
	if !ok {
		p = &position2d{client: c, index: index}
		c.positions[index] = p
	}
	return p
}

func (c *client) Laser(index int) Laser {
	l, ok := c.lasers[index]
	if !ok {
		l = &laser{client: c, index: index}
		c.lasers[index] = l
	}
	return l
}

// Disconnect closes the session. The client is unusable afterwards even if
// the service reported an error.
func (c *client) Disconnect(ctx context.Context) error {
	if c.closed {
		return nil
	}
	_, err := c.call(ctx, "disconnect")
	c.closed = true
	if err != nil {
		return errors.Wrapf(err, "disconnect %s", c.addr)
	}
	c.logger.Debug("disconnected")
	return nil
}

// subscribe is shared by the device proxies.
func (c *client) subscribe(ctx context.Context, iface string, index int, access AccessMode) error {
	if _, err := c.call(ctx, "subscribe", iface, index, int(access)); err != nil {
		return WithKind(ErrSubscription, err, "subscribe %s:%d", iface, index)
	}
	c.logger.Debugf("subscribed %s:%d", iface, index)
	return nil
}

func (c *client) unsubscribe(ctx context.Context, iface string, index int) error {
	if _, err := c.call(ctx, "unsubscribe", iface, index); err != nil {
		return errors.Wrapf(err, "unsubscribe %s:%d", iface, index)
	}
	c.logger.Debugf("unsubscribed %s:%d", iface, index)
	return nil
}
