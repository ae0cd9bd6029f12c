package player

import (
	"net"
	"os"
	"path/filepath"
)

// determineHost names this machine in the client name sent on connect.
func determineHost() string {
	// PLAYER_HOSTNAME wins: it is the name the operator wants the service to
	// show, which detection cannot know on multi-homed or NATed hosts.
	if hostname, ok := os.LookupEnv("PLAYER_HOSTNAME"); ok && hostname != "" {
		return hostname
	}

	// Try using the hostname
	if osHostname, err := os.Hostname(); err == nil && osHostname != "localhost" {
		return osHostname
	}

	// Fall back on the interface IP
	if addrs, err := net.InterfaceAddrs(); err == nil {
		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
				return ipnet.IP.String()
			}
		}
	}
	// Fall back to the loopback IP
	return "127.0.0.1"
}

// defaultClientName identifies this process to the service, e.g.
// "basic_client@robolab3".
func defaultClientName() string {
	return filepath.Base(os.Args[0]) + "@" + determineHost()
}
