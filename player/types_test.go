package player

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoseString(t *testing.T) {
	p := Pose{X: 1.5, Y: -2.0, Theta: 0.3927}
	assert.Equal(t, "x: 1.500000m  y: -2.000000m  theta: 0.392700rad", p.String())
}

func TestPoseValidate(t *testing.T) {
	require.NoError(t, Pose{X: 1, Y: 2, Theta: 3}.Validate())

	for _, p := range []Pose{
		{X: math.NaN()},
		{Y: math.Inf(1)},
		{Theta: math.Inf(-1)},
	} {
		err := p.Validate()
		assert.True(t, errors.Is(err, ErrInvalidPose), "pose %+v: %v", p, err)
	}
}

func TestStopCommand(t *testing.T) {
	assert.True(t, Stop.IsStop())
	assert.True(t, Stop.Immediate)
	assert.False(t, VelocityCommand{Linear: -1, Angular: 1}.IsStop())
}

func TestDataMode(t *testing.T) {
	assert.True(t, DataModePush.Valid())
	assert.True(t, DataModePull.Valid())
	assert.False(t, DataMode(7).Valid())
	assert.Equal(t, "PUSH", DataModePush.String())
	assert.Equal(t, "DataMode(7)", DataMode(7).String())
}

func TestScanNearest(t *testing.T) {
	_, _, ok := Scan{}.Nearest()
	assert.False(t, ok)

	r, b, ok := Scan{Ranges: []float64{3, 0.5, 2}, Bearings: []float64{-1, 0, 1}}.Nearest()
	require.True(t, ok)
	assert.Equal(t, 0.5, r)
	assert.Equal(t, 0.0, b)
}
