package playertest

import (
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
)

// Start serves svc on a loopback port for the duration of the test and
// returns its host and port.
func Start(t testing.TB, svc *Service) (host string, port int) {
	t.Helper()
	return StartHandler(t, svc.Handler())
}

// StartHandler is Start for a handler wrapping a Service's.
func StartHandler(t testing.TB, h http.Handler) (host string, port int) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	host, p, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatal(err)
	}
	port, err = strconv.Atoi(p)
	if err != nil {
		t.Fatal(err)
	}
	return host, port
}
