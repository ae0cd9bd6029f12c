package player

import (
	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// frame is one data update as delivered by the service's read method:
//
//	{"seq": 7, "devices": [
//	  {"interface": "position2d", "index": 0, "pose": {"px": 1.5, "py": -2, "pa": 0.39}},
//	  {"interface": "laser", "index": 0, "ranges": [...], "bearings": [...]}
//	]}
type frame struct {
	seq   int64
	poses map[int]Pose
	scans map[int]Scan
	// other lists devices of interfaces this client does not know.
	other []string
}

func decodeFrame(data []byte) (*frame, error) {
	f := &frame{
		poses: make(map[int]Pose),
		scans: make(map[int]Scan),
	}

	seq, err := jsonparser.GetInt(data, "seq")
	if err != nil {
		return nil, errors.Wrap(err, "frame seq")
	}
	f.seq = seq

	var deviceErr error
	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if deviceErr != nil {
			return
		}
		if err != nil {
			deviceErr = err
			return
		}
		deviceErr = f.addDevice(value)
	}, "devices")
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return nil, errors.Wrap(err, "frame devices")
	}
	if deviceErr != nil {
		return nil, deviceErr
	}
	return f, nil
}

func (f *frame) addDevice(value []byte) error {
	iface, err := jsonparser.GetString(value, "interface")
	if err != nil {
		return errors.Wrap(err, "device interface")
	}
	index, err := jsonparser.GetInt(value, "index")
	if err != nil {
		return errors.Wrapf(err, "%s index", iface)
	}

	switch iface {
	case InterfacePosition2d:
		pose, err := decodePose(value)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", iface, index)
		}
		f.poses[int(index)] = pose
	case InterfaceLaser:
		scan, err := decodeScan(value)
		if err != nil {
			return errors.Wrapf(err, "%s:%d", iface, index)
		}
		f.scans[int(index)] = scan
	default:
		f.other = append(f.other, iface)
	}
	return nil
}

func decodePose(value []byte) (Pose, error) {
	var pose Pose
	var err error
	if pose.X, err = jsonparser.GetFloat(value, "pose", "px"); err != nil {
		return Pose{}, errors.Wrap(err, "pose px")
	}
	if pose.Y, err = jsonparser.GetFloat(value, "pose", "py"); err != nil {
		return Pose{}, errors.Wrap(err, "pose py")
	}
	if pose.Theta, err = jsonparser.GetFloat(value, "pose", "pa"); err != nil {
		return Pose{}, errors.Wrap(err, "pose pa")
	}
	return pose, nil
}

func decodeScan(value []byte) (Scan, error) {
	var scan Scan
	var err error
	if scan.Ranges, err = floatArray(value, "ranges"); err != nil {
		return Scan{}, err
	}
	if scan.Bearings, err = floatArray(value, "bearings"); err != nil {
		return Scan{}, err
	}
	if len(scan.Ranges) != len(scan.Bearings) {
		return Scan{}, errors.Errorf("%d ranges but %d bearings", len(scan.Ranges), len(scan.Bearings))
	}
	return scan, nil
}

func floatArray(value []byte, key string) ([]float64, error) {
	out := make([]float64, 0)
	var parseErr error
	_, err := jsonparser.ArrayEach(value, func(v []byte, dataType jsonparser.ValueType, offset int, err error) {
		if parseErr != nil {
			return
		}
		if dataType != jsonparser.Number {
			parseErr = errors.Errorf("%s: %s is not a number", key, v)
			return
		}
		f, err := jsonparser.ParseFloat(v)
		if err != nil {
			parseErr = errors.Wrap(err, key)
			return
		}
		out = append(out, f)
	}, key)
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	return out, parseErr
}
