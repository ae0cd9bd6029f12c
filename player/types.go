package player

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// DataMode is the delivery policy for device data.
type DataMode int

const (
	// DataModePush makes the service stream updates.
	DataModePush DataMode = 1
	// DataModePull makes the client request each update.
	DataModePull DataMode = 2
)

func (m DataMode) Valid() bool {
	return m == DataModePush || m == DataModePull
}

func (m DataMode) String() string {
	switch m {
	case DataModePush:
		return "PUSH"
	case DataModePull:
		return "PULL"
	}
	return "DataMode(" + strconv.Itoa(int(m)) + ")"
}

// AccessMode is requested when subscribing to a device.
type AccessMode int

const (
	AccessOpen  AccessMode = 1
	AccessClose AccessMode = 2
	AccessError AccessMode = 3
)

// Device interface names understood by the service.
const (
	InterfacePosition2d = "position2d"
	InterfaceLaser      = "laser"
)

// Pose is a 2D position in meters and a heading in radians.
type Pose struct {
	X     float64
	Y     float64
	Theta float64
}

func (p Pose) String() string {
	return fmt.Sprintf("x: %fm  y: %fm  theta: %frad", p.X, p.Y, p.Theta)
}

// Validate rejects poses with NaN or infinite components.
func (p Pose) Validate() error {
	for name, v := range map[string]float64{"x": p.X, "y": p.Y, "theta": p.Theta} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidPose, "%s is %v", name, v)
		}
	}
	return nil
}

// VelocityCommand drives a position2d device. Lateral is only meaningful for
// holonomic bases.
type VelocityCommand struct {
	Linear    float64
	Lateral   float64
	Angular   float64
	Immediate bool
}

// Stop halts the robot at once.
var Stop = VelocityCommand{Immediate: true}

// IsStop reports whether every velocity is zero.
func (c VelocityCommand) IsStop() bool {
	return c.Linear == 0 && c.Lateral == 0 && c.Angular == 0
}

// Scan is one laser sweep. Ranges[i] was measured at Bearings[i].
type Scan struct {
	Ranges   []float64
	Bearings []float64
}

// Nearest returns the smallest range and its bearing. ok is false for an
// empty scan.
func (s Scan) Nearest() (rng, bearing float64, ok bool) {
	for i, r := range s.Ranges {
		if !ok || r < rng {
			rng, bearing, ok = r, s.Bearings[i], true
		}
	}
	return rng, bearing, ok
}
