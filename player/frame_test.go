package player

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrame(t *testing.T) {
	data := []byte(`{"seq": 7, "devices": [
		{"interface": "position2d", "index": 0, "pose": {"px": 1.5, "py": -2, "pa": 0.3927}},
		{"interface": "laser", "index": 1, "ranges": [2, 1.25], "bearings": [-0.5, 0.5]},
		{"interface": "sonar", "index": 0}
	]}`)

	f, err := decodeFrame(data)
	require.NoError(t, err)
	assert.Equal(t, int64(7), f.seq)
	assert.Equal(t, Pose{X: 1.5, Y: -2, Theta: 0.3927}, f.poses[0])
	assert.Equal(t, Scan{Ranges: []float64{2, 1.25}, Bearings: []float64{-0.5, 0.5}}, f.scans[1])
	assert.Equal(t, []string{"sonar"}, f.other)
}

func TestDecodeFrameWithoutDevices(t *testing.T) {
	f, err := decodeFrame([]byte(`{"seq": 1}`))
	require.NoError(t, err)
	assert.Empty(t, f.poses)
	assert.Empty(t, f.scans)
}

func TestDecodeFrameErrors(t *testing.T) {
	cases := map[string]string{
		"missing seq":        `{"devices": []}`,
		"missing pose":       `{"seq": 1, "devices": [{"interface": "position2d", "index": 0}]}`,
		"pose not a number":  `{"seq": 1, "devices": [{"interface": "position2d", "index": 0, "pose": {"px": "a", "py": 0, "pa": 0}}]}`,
		"missing index":      `{"seq": 1, "devices": [{"interface": "position2d"}]}`,
		"range not a number": `{"seq": 1, "devices": [{"interface": "laser", "index": 0, "ranges": ["x"], "bearings": [0]}]}`,
		"length mismatch":    `{"seq": 1, "devices": [{"interface": "laser", "index": 0, "ranges": [1, 2], "bearings": [0]}]}`,
		"not json":           `seq=1`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeFrame([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestDispatchDropsDataMissingFromFrame(t *testing.T) {
	c := &client{
		logger:    discardLogger(),
		positions: make(map[int]*position2d),
		lasers:    make(map[int]*laser),
	}
	pos := c.Position2d(0).(*position2d)
	pos.subscribed = true
	las := c.Laser(0).(*laser)
	las.subscribed = true

	c.dispatch(&frame{
		seq:   1,
		poses: map[int]Pose{0: {X: 1}},
		scans: map[int]Scan{0: {Ranges: []float64{2}, Bearings: []float64{0}}},
	})
	p, err := pos.Pose()
	require.NoError(t, err)
	assert.Equal(t, Pose{X: 1}, p)
	_, err = las.Scan()
	require.NoError(t, err)

	c.dispatch(&frame{seq: 2, poses: map[int]Pose{}, scans: map[int]Scan{}})
	_, err = pos.Pose()
	assert.True(t, errors.Is(err, ErrNoData), "%v", err)
	_, err = las.Scan()
	assert.True(t, errors.Is(err, ErrNoData), "%v", err)
}
