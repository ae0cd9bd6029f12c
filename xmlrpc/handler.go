package xmlrpc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

// Method is a Go func taking the decoded XML-RPC arguments and returning
// (value, error). Integer parameters arrive as int32 and are converted to the
// declared numeric type when needed.
type Method interface{}

// Fault codes emitted by Handler.
const (
	FaultInvalidRequest = 1
	FaultNoMethod       = 2
	FaultBadParams      = 3
	FaultMethodFailed   = 4
	FaultBadResult      = 5
)

// Handler serves XML-RPC calls over HTTP.
type Handler struct {
	mapping map[string]Method
	wait    sync.WaitGroup
	logger  logrus.FieldLogger
}

func NewHandler(mapping map[string]Method) *Handler {
	return &Handler{mapping: mapping}
}

// SetLogger enables debug logging of every dispatched call.
func (h *Handler) SetLogger(logger logrus.FieldLogger) {
	h.logger = logger
}

// WaitForShutdown blocks until every in-flight call has returned.
func (h *Handler) WaitForShutdown() {
	h.wait.Wait()
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.wait.Add(1)
	defer h.wait.Done()

	var buf bytes.Buffer
	name, args, err := parseRequest(xml.NewDecoder(req.Body))
	if err != nil {
		h.fault(w, &buf, FaultInvalidRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if h.logger != nil {
		h.logger.WithField("method", name).Debugf("xmlrpc call %v", args)
	}

	method, ok := h.mapping[name]
	if !ok {
		h.fault(w, &buf, FaultNoMethod, fmt.Sprintf("no method named '%s'", name))
		return
	}

	in, err := bindArgs(method, args)
	if err != nil {
		h.fault(w, &buf, FaultBadParams, fmt.Sprintf("method '%s': %v", name, err))
		return
	}

	result, err := invoke(method, in)
	if err != nil {
		h.fault(w, &buf, FaultMethodFailed, fmt.Sprintf("method '%s' failed: %v", name, err))
		return
	}

	if err := emitResponse(&buf, result); err != nil {
		buf.Reset()
		h.fault(w, &buf, FaultBadResult, fmt.Sprintf("method '%s' returned an invalid result: %v", name, err))
		return
	}
	h.write(w, &buf)
}

func (h *Handler) fault(w http.ResponseWriter, buf *bytes.Buffer, code int, message string) {
	if h.logger != nil {
		h.logger.WithField("code", code).Debug(message)
	}
	emitFault(buf, code, message)
	h.write(w, buf)
}

func (h *Handler) write(w http.ResponseWriter, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func bindArgs(method Method, args []interface{}) ([]reflect.Value, error) {
	fn := reflect.ValueOf(method)
	ft := fn.Type()
	if ft.Kind() != reflect.Func || ft.NumOut() != 2 || !ft.Out(1).Implements(errorType) {
		return nil, fmt.Errorf("not a (value, error) func")
	}
	if ft.IsVariadic() || ft.NumIn() != len(args) {
		return nil, fmt.Errorf("expected %d arguments, got %d", ft.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		want := ft.In(i)
		if arg == nil {
			in[i] = reflect.Zero(want)
			continue
		}
		v := reflect.ValueOf(arg)
		switch {
		case v.Type().AssignableTo(want):
			in[i] = v
		case isNumeric(v.Kind()) && isNumeric(want.Kind()):
			in[i] = v.Convert(want)
		default:
			return nil, fmt.Errorf("argument %d: cannot use %s as %s", i, v.Type(), want)
		}
	}
	return in, nil
}

func invoke(method Method, in []reflect.Value) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	out := reflect.ValueOf(method).Call(in)
	if e := out[1]; !e.IsNil() {
		return nil, e.Interface().(error)
	}
	return out[0].Interface(), nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
