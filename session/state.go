package session

import (
	"fmt"
)

// State is the lifecycle stage of a Controller.
type State int

const (
	Unconnected State = iota
	Connected
	Subscribed
	Polling
	Interrupted
	Faulted
	ShuttingDown
	Closed
)

var stateNames = [...]string{
	Unconnected:  "Unconnected",
	Connected:    "Connected",
	Subscribed:   "Subscribed",
	Polling:      "Polling",
	Interrupted:  "Interrupted",
	Faulted:      "Faulted",
	ShuttingDown: "ShuttingDown",
	Closed:       "Closed",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}
