package xmlrpc

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Fault is a well-formed XML-RPC fault returned by the remote side.
type Fault struct {
	Code   int
	String string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("xmlrpc fault: code=%d string=%s", f.Code, f.String)
}

// Client sends XML-RPC calls to a single endpoint.
type Client struct {
	URL  string
	HTTP *http.Client
}

// NewClient returns a Client for url. A nil httpClient means
// http.DefaultClient.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{URL: url, HTTP: httpClient}
}

// Call invokes method on the remote host and returns the decoded result.
// The request is abandoned when ctx is done.
func (c *Client) Call(ctx context.Context, method string, args ...interface{}) (interface{}, error) {
	var buf bytes.Buffer
	if err := emitRequest(&buf, method, args...); err != nil {
		return nil, errors.Wrap(err, "building request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, &buf)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "text/xml")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "sending %s", method)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("%s: HTTP status %s", method, resp.Status)
	}

	ok, result, err := parseResponse(xml.NewDecoder(resp.Body))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s response", method)
	}
	if ok {
		return result, nil
	}
	return nil, toFault(result)
}

// Call is a convenience wrapper around a one-off Client using
// http.DefaultClient.
func Call(ctx context.Context, url string, method string, args ...interface{}) (interface{}, error) {
	return NewClient(url, nil).Call(ctx, method, args...)
}

func toFault(v interface{}) error {
	m, ok := v.(map[string]interface{})
	if !ok {
		return errors.New("malformed fault response")
	}
	code, ok := m["faultCode"].(int32)
	if !ok {
		return errors.New("malformed fault response: faultCode")
	}
	s, ok := m["faultString"].(string)
	if !ok {
		return errors.New("malformed fault response: faultString")
	}
	return &Fault{Code: int(code), String: s}
}
