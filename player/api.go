package player

import (
	"context"

	"github.com/pkg/errors"

	"github.com/edwinhayes/basicclient/xmlrpc"
)

// Status codes carried in the first element of every API result.
const (
	APIStatusError   int32 = -1
	APIStatusFailure int32 = 0
	APIStatusSuccess int32 = 1
)

// APIResult builds the [code, message, value] triplet every service method
// returns.
func APIResult(code int32, message string, value interface{}) []interface{} {
	return []interface{}{code, message, value}
}

// callAPI performs an XML-RPC call and unpacks the result triplet. A
// non-success code is returned as a *StatusError.
func callAPI(ctx context.Context, rpc *xmlrpc.Client, method string, args ...interface{}) (interface{}, error) {
	result, err := rpc.Call(ctx, method, args...)
	if err != nil {
		return nil, err
	}

	xs, ok := result.([]interface{})
	if !ok {
		return nil, errors.Errorf("%s: malformed API result", method)
	}
	if len(xs) != 3 {
		return nil, errors.Errorf("%s: malformed API result, length must be 3 but is %d", method, len(xs))
	}
	code, ok := xs[0].(int32)
	if !ok {
		return nil, errors.Errorf("%s: status code is not int", method)
	}
	message, ok := xs[1].(string)
	if !ok {
		return nil, errors.Errorf("%s: status message is not string", method)
	}

	if code != APIStatusSuccess {
		return nil, &StatusError{Method: method, Code: code, Message: message}
	}
	return xs[2], nil
}
