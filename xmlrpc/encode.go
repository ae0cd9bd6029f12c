// Package xmlrpc is a small XML-RPC codec with a context-aware client and an
// http.Handler that dispatches calls to plain Go functions.
package xmlrpc

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"reflect"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func emitTagged(buf *bytes.Buffer, tag, text string) {
	buf.WriteString("<" + tag + ">")
	buf.WriteString(text)
	buf.WriteString("</" + tag + ">")
}

// emitValue writes the XML-RPC encoding of value, without the surrounding
// <value> element. A nil value emits nothing.
func emitValue(buf *bytes.Buffer, value interface{}) error {
	if bs, ok := value.([]byte); ok {
		emitTagged(buf, "base64", base64.StdEncoding.EncodeToString(bs))
		return nil
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return nil
	}

	switch val.Kind() {
	case reflect.Bool:
		if val.Bool() {
			emitTagged(buf, "boolean", "1")
		} else {
			emitTagged(buf, "boolean", "0")
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		emitTagged(buf, "int", strconv.FormatInt(val.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		emitTagged(buf, "int", strconv.FormatUint(val.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		emitTagged(buf, "double", strconv.FormatFloat(val.Float(), 'g', -1, 64))
	case reflect.String:
		emitTagged(buf, "string", xmlEscape(val.String()))
	case reflect.Array, reflect.Slice:
		buf.WriteString("<array><data>")
		for i := 0; i < val.Len(); i++ {
			buf.WriteString("<value>")
			if err := emitValue(buf, val.Index(i).Interface()); err != nil {
				return err
			}
			buf.WriteString("</value>")
		}
		buf.WriteString("</data></array>")
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return errors.New("map key must be string")
		}
		// Sorted so that requests are byte-for-byte reproducible.
		keys := val.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		buf.WriteString("<struct>")
		for _, key := range keys {
			buf.WriteString("<member>")
			emitTagged(buf, "name", xmlEscape(key.String()))
			buf.WriteString("<value>")
			if err := emitValue(buf, val.MapIndex(key).Interface()); err != nil {
				return err
			}
			buf.WriteString("</value></member>")
		}
		buf.WriteString("</struct>")
	default:
		return errors.Errorf("unsupported kind %s (%s)", val.Kind(), val.Type())
	}
	return nil
}

func emitRequest(buf *bytes.Buffer, method string, args ...interface{}) error {
	buf.WriteString(xml.Header)
	buf.WriteString("<methodCall>")
	emitTagged(buf, "methodName", xmlEscape(method))
	buf.WriteString("<params>")
	for _, arg := range args {
		buf.WriteString("<param><value>")
		if err := emitValue(buf, arg); err != nil {
			return errors.Wrapf(err, "argument of %s", method)
		}
		buf.WriteString("</value></param>")
	}
	buf.WriteString("</params></methodCall>")
	return nil
}

func emitResponse(buf *bytes.Buffer, value interface{}) error {
	buf.WriteString(xml.Header)
	buf.WriteString("<methodResponse><params><param><value>")
	if err := emitValue(buf, value); err != nil {
		return err
	}
	buf.WriteString("</value></param></params></methodResponse>")
	return nil
}

func emitFault(buf *bytes.Buffer, code int, message string) {
	buf.WriteString(xml.Header)
	buf.WriteString("<methodResponse><fault><value>")
	// A fault struct only holds an int and a string, which always encode.
	_ = emitValue(buf, map[string]interface{}{
		"faultCode":   code,
		"faultString": message,
	})
	buf.WriteString("</value></fault></methodResponse>")
}
