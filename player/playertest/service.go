// Package playertest provides an in-process robot-control service speaking
// the player XML-RPC API. It stores commands and reports scripted poses; it
// does not simulate motion.
package playertest

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/edwinhayes/basicclient/player"
	"github.com/edwinhayes/basicclient/xmlrpc"
)

// Device names one device of the service.
type Device struct {
	Interface string
	Index     int
}

func (d Device) String() string {
	return fmt.Sprintf("%s:%d", d.Interface, d.Index)
}

type Options struct {
	// Position2d lists the position2d device indices. Defaults to {0}.
	Position2d []int
	// Laser lists the laser device indices.
	Laser []int
	// Held lists devices already exclusively held by another client.
	Held []Device
	// Poses is the pose script, one entry per read. The last pose repeats
	// once the script is exhausted; an empty script reports the odometry.
	Poses []player.Pose
	// FailAfter makes every read after the first FailAfter ones fail.
	// Zero never fails.
	FailAfter int
	// RejectConnect refuses every handshake.
	RejectConnect bool
	// UpdateRate is the PUSH cadence in Hz until a client sets its own.
	// Defaults to 10.
	UpdateRate float64
	// LaserSamples is the number of beams per scan. Defaults to 181.
	LaserSamples int
	Logger       logrus.FieldLogger
}

// Call is one recorded API call.
type Call struct {
	Method  string
	Session string
	Device  Device
	// Command is set for setCmdVel.
	Command player.VelocityCommand
	// Enable is set for setMotorEnable.
	Enable bool
	// Pose is set for setOdometry.
	Pose player.Pose
}

type session struct {
	id      string
	name    string
	mode    player.DataMode
	rate    player.Rate
	pending bool
	seq     int64
	subs    map[Device]bool
}

// Service is a fake robot-control service. It is safe for concurrent use.
type Service struct {
	opts Options

	mu       sync.Mutex
	devices  map[Device]bool
	holders  map[Device]string
	sessions map[string]*session
	odometry map[int]player.Pose
	calls    []Call
	nextID   int
	reads    int
}

func NewService(opts Options) *Service {
	if opts.Position2d == nil {
		opts.Position2d = []int{0}
	}
	if opts.UpdateRate <= 0 {
		opts.UpdateRate = 10
	}
	if opts.LaserSamples <= 0 {
		opts.LaserSamples = 181
	}
	if opts.Logger == nil {
		logger := logrus.New()
		logger.SetLevel(logrus.WarnLevel)
		opts.Logger = logger
	}

	s := &Service{
		opts:     opts,
		devices:  make(map[Device]bool),
		holders:  make(map[Device]string),
		sessions: make(map[string]*session),
		odometry: make(map[int]player.Pose),
	}
	for _, i := range opts.Position2d {
		s.devices[Device{player.InterfacePosition2d, i}] = true
	}
	for _, i := range opts.Laser {
		s.devices[Device{player.InterfaceLaser, i}] = true
	}
	for _, d := range opts.Held {
		s.devices[d] = true
		s.holders[d] = "other"
	}
	return s
}

// Handler returns the XML-RPC endpoint of the service.
func (s *Service) Handler() http.Handler {
	h := xmlrpc.NewHandler(map[string]xmlrpc.Method{
		"connect":        s.connect,
		"disconnect":     s.disconnect,
		"setDataMode":    s.setDataMode,
		"setUpdateRate":  s.setUpdateRate,
		"requestData":    s.requestData,
		"read":           s.read,
		"subscribe":      s.subscribe,
		"unsubscribe":    s.unsubscribe,
		"setCmdVel":      s.setCmdVel,
		"setMotorEnable": s.setMotorEnable,
		"setOdometry":    s.setOdometry,
	})
	h.SetLogger(s.opts.Logger)
	return h
}

// Calls returns every recorded call in order.
func (s *Service) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Commands returns the velocity commands sent to position2d:index.
func (s *Service) Commands(index int) []player.VelocityCommand {
	var cmds []player.VelocityCommand
	for _, c := range s.Calls() {
		if c.Method == "setCmdVel" && c.Device.Index == index {
			cmds = append(cmds, c.Command)
		}
	}
	return cmds
}

// Count returns how many times method was called.
func (s *Service) Count(method string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Sessions returns the number of open sessions.
func (s *Service) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Service) record(c Call) {
	s.calls = append(s.calls, c)
}

func success(value interface{}) (interface{}, error) {
	return player.APIResult(player.APIStatusSuccess, "Success", value), nil
}

func failure(format string, args ...interface{}) (interface{}, error) {
	return player.APIResult(player.APIStatusError, fmt.Sprintf(format, args...), 0), nil
}

// lookup must be called with s.mu held.
func (s *Service) lookup(sid string) (*session, bool) {
	sess, found := s.sessions[sid]
	return sess, found
}

func (s *Service) connect(name string) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opts.RejectConnect {
		return failure("connection refused for %s", name)
	}
	s.nextID++
	sess := &session{
		id:   fmt.Sprintf("s%d", s.nextID),
		name: name,
		mode: player.DataModePush,
		rate: player.NewRate(s.opts.UpdateRate),
		subs: make(map[Device]bool),
	}
	s.sessions[sess.id] = sess
	s.record(Call{Method: "connect", Session: sess.id})
	s.opts.Logger.WithField("session", sess.id).Infof("client %s connected", name)
	return success(sess.id)
}

func (s *Service) disconnect(sid string) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Call{Method: "disconnect", Session: sid})
	sess, found := s.lookup(sid)
	if !found {
		return failure("no session %s", sid)
	}
	for d := range sess.subs {
		delete(s.holders, d)
	}
	delete(s.sessions, sid)
	s.opts.Logger.WithField("session", sid).Info("client disconnected")
	return success(0)
}

func (s *Service) setDataMode(sid string, mode int32) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Call{Method: "setDataMode", Session: sid})
	sess, found := s.lookup(sid)
	if !found {
		return failure("no session %s", sid)
	}
	m := player.DataMode(mode)
	if !m.Valid() {
		return failure("unknown data mode %d", mode)
	}
	sess.mode = m
	return success(0)
}

func (s *Service) setUpdateRate(sid string, hz float64) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Call{Method: "setUpdateRate", Session: sid})
	sess, found := s.lookup(sid)
	if !found {
		return failure("no session %s", sid)
	}
	if hz <= 0 || math.IsInf(hz, 0) || math.IsNaN(hz) {
		return failure("invalid update rate %v", hz)
	}
	sess.rate = player.NewRate(hz)
	return success(0)
}

func (s *Service) requestData(sid string) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(Call{Method: "requestData", Session: sid})
	sess, found := s.lookup(sid)
	if !found {
		return failure("no session %s", sid)
	}
	sess.pending = true
	return success(0)
}

func (s *Service) subscribe(sid string, iface string, index int32, access int32) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := Device{iface, int(index)}
	s.record(Call{Method: "subscribe", Session: sid, Device: d})
	sess, found := s.lookup(sid)
	if !found {
		return failure("no session %s", sid)
	}
	if player.AccessMode(access) != player.AccessOpen {
		return failure("unsupported access mode %d for %s", access, d)
	}
	if !s.devices[d] {
		return failure("no such device %s", d)
	}
	if holder, held := s.holders[d]; held && holder != sid {
		return failure("device %s is held by another client", d)
	}
	s.holders[d] = sid
	sess.subs[d] = true
	return success(0)
}

func (s *Service) unsubscribe(sid string, iface string, index int32) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := Device{iface, int(index)}
	s.record(Call{Method: "unsubscribe", Session: sid, Device: d})
	sess, found := s.lookup(sid)
	if !found {
		return failure("no session %s", sid)
	}
	if !sess.subs[d] {
		return failure("%s is not subscribed", d)
	}
	delete(sess.subs, d)
	delete(s.holders, d)
	return success(0)
}

// device checks that sid holds d. It must be called with s.mu held.
func (s *Service) device(sid string, d Device) error {
	sess, found := s.lookup(sid)
	if !found {
		return errors.Errorf("no session %s", sid)
	}
	if !sess.subs[d] {
		return errors.Errorf("%s is not subscribed", d)
	}
	return nil
}

func (s *Service) setCmdVel(sid string, index int32, vx, vy, va float64, immediate bool) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := Device{player.InterfacePosition2d, int(index)}
	cmd := player.VelocityCommand{Linear: vx, Lateral: vy, Angular: va, Immediate: immediate}
	s.record(Call{Method: "setCmdVel", Session: sid, Device: d, Command: cmd})
	if err := s.device(sid, d); err != nil {
		return failure("%v", err)
	}
	return success(0)
}

func (s *Service) setMotorEnable(sid string, index int32, enable bool) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := Device{player.InterfacePosition2d, int(index)}
	s.record(Call{Method: "setMotorEnable", Session: sid, Device: d, Enable: enable})
	if err := s.device(sid, d); err != nil {
		return failure("%v", err)
	}
	return success(0)
}

func (s *Service) setOdometry(sid string, index int32, x, y, a float64) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := Device{player.InterfacePosition2d, int(index)}
	pose := player.Pose{X: x, Y: y, Theta: a}
	s.record(Call{Method: "setOdometry", Session: sid, Device: d, Pose: pose})
	if err := s.device(sid, d); err != nil {
		return failure("%v", err)
	}
	s.odometry[int(index)] = pose
	return success(0)
}

// read blocks for one PUSH cycle, then returns a frame for every device the
// session holds. A failed read is reported as a fault.
func (s *Service) read(sid string, timeoutMs int32) (interface{}, error) {
	s.mu.Lock()
	sess, found := s.lookup(sid)
	if !found {
		s.mu.Unlock()
		return nil, errors.Errorf("no session %s", sid)
	}
	s.record(Call{Method: "read", Session: sid})
	if s.opts.FailAfter > 0 && s.reads >= s.opts.FailAfter {
		s.mu.Unlock()
		return nil, errors.New("robot connection dropped")
	}
	mode := sess.mode
	if mode == player.DataModePull {
		if !sess.pending {
			s.mu.Unlock()
			return nil, errors.New("no data requested")
		}
		sess.pending = false
	}
	s.mu.Unlock()

	if mode == player.DataModePush {
		ctx := context.Background()
		if timeoutMs > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
			defer cancel()
		}
		// Only the owning client reads a session, so the rate is not shared.
		if err := sess.rate.Sleep(ctx); err != nil {
			return nil, errors.Wrap(err, "waiting for data")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	sess.seq++
	payload, err := json.Marshal(s.frame(sess))
	if err != nil {
		return nil, err
	}
	return success(string(payload))
}

type jsonFrame struct {
	Seq     int64        `json:"seq"`
	Devices []jsonDevice `json:"devices"`
}

type jsonDevice struct {
	Interface string    `json:"interface"`
	Index     int       `json:"index"`
	Pose      *jsonPose `json:"pose,omitempty"`
	Ranges    []float64 `json:"ranges,omitempty"`
	Bearings  []float64 `json:"bearings,omitempty"`
}

type jsonPose struct {
	PX float64 `json:"px"`
	PY float64 `json:"py"`
	PA float64 `json:"pa"`
}

// frame must be called with s.mu held.
func (s *Service) frame(sess *session) jsonFrame {
	f := jsonFrame{Seq: sess.seq, Devices: make([]jsonDevice, 0, len(sess.subs))}
	for d := range sess.subs {
		jd := jsonDevice{Interface: d.Interface, Index: d.Index}
		switch d.Interface {
		case player.InterfacePosition2d:
			p := s.pose(d.Index)
			jd.Pose = &jsonPose{PX: p.X, PY: p.Y, PA: p.Theta}
		case player.InterfaceLaser:
			jd.Ranges, jd.Bearings = s.scan()
		}
		f.Devices = append(f.Devices, jd)
	}
	return f
}

// pose must be called with s.mu held, after s.reads has been advanced.
func (s *Service) pose(index int) player.Pose {
	if n := len(s.opts.Poses); n > 0 {
		i := s.reads - 1
		if i >= n {
			i = n - 1
		}
		return s.opts.Poses[i]
	}
	return s.odometry[index]
}

// scan returns a half-circle sweep with every beam at 2m.
func (s *Service) scan() (ranges, bearings []float64) {
	n := s.opts.LaserSamples
	ranges = make([]float64, n)
	bearings = make([]float64, n)
	for i := 0; i < n; i++ {
		ranges[i] = 2
		if n > 1 {
			bearings[i] = -math.Pi/2 + math.Pi*float64(i)/float64(n-1)
		}
	}
	return ranges, bearings
}
