package xmlrpc

import (
	"encoding/base64"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func nextTag(d *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := d.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if elem, ok := token.(xml.StartElement); ok {
			return elem, nil
		}
	}
}

func expectNextTag(d *xml.Decoder, name string) (xml.StartElement, error) {
	tag, err := nextTag(d)
	if err != nil {
		return xml.StartElement{}, err
	}
	if tag.Name.Local != name {
		return xml.StartElement{}, errors.Errorf("expected <%s>, got <%s>", name, tag.Name.Local)
	}
	return tag, nil
}

// skipTo consumes tokens up to and including the end element called name.
// Only character data may appear before it.
func skipTo(d *xml.Decoder, name string) error {
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			return errors.Errorf("unexpected <%s> before </%s>", t.Name.Local, name)
		case xml.EndElement:
			if t.Name.Local == name {
				return nil
			}
		}
	}
}

// readText collects character data up to the next end element, which is
// consumed.
func readText(d *xml.Decoder) (string, error) {
	var sb strings.Builder
	for {
		token, err := d.Token()
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			return "", errors.Errorf("unexpected <%s> in scalar", t.Name.Local)
		case xml.EndElement:
			return sb.String(), nil
		}
	}
}

// parseValue parses a value after the <value> tag has been read. On success
// the closing </value> has been consumed as well.
func parseValue(d *xml.Decoder) (interface{}, error) {
	var text []byte
	for {
		token, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text = append(text, t...)
		case xml.StartElement:
			v, err := parseTyped(d, t.Name.Local)
			if err != nil {
				return nil, err
			}
			if err := skipTo(d, "value"); err != nil {
				return nil, err
			}
			return v, nil
		case xml.EndElement:
			// A value without a type element is a string.
			return string(text), nil
		}
	}
}

func parseTyped(d *xml.Decoder, kind string) (interface{}, error) {
	switch kind {
	case "array":
		return parseArray(d)
	case "struct":
		return parseStruct(d)
	}

	text, err := readText(d)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "boolean":
		switch strings.TrimSpace(text) {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
		return nil, errors.Errorf("invalid boolean %q", text)
	case "i4", "int":
		i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
		if err != nil {
			return nil, errors.Wrap(err, "int")
		}
		return int32(i), nil
	case "double":
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, errors.Wrap(err, "double")
		}
		return f, nil
	case "string":
		return text, nil
	case "base64":
		bs, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
		if err != nil {
			return nil, errors.Wrap(err, "base64")
		}
		return bs, nil
	case "nil":
		return nil, nil
	}
	return nil, errors.Errorf("unsupported type <%s>", kind)
}

func parseArray(d *xml.Decoder) ([]interface{}, error) {
	if _, err := expectNextTag(d, "data"); err != nil {
		return nil, err
	}
	a := make([]interface{}, 0)
	for {
		token, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local != "value" {
				return nil, errors.Errorf("unexpected <%s> in array", t.Name.Local)
			}
			v, err := parseValue(d)
			if err != nil {
				return nil, err
			}
			a = append(a, v)
		case xml.EndElement:
			if t.Name.Local == "data" {
				return a, skipTo(d, "array")
			}
		}
	}
}

func parseStruct(d *xml.Decoder) (map[string]interface{}, error) {
	m := make(map[string]interface{})
	for {
		token, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local != "member" {
				return nil, errors.Errorf("unexpected <%s> in struct", t.Name.Local)
			}
			name, value, err := parseMember(d)
			if err != nil {
				return nil, err
			}
			m[name] = value
		case xml.EndElement:
			if t.Name.Local == "struct" {
				return m, nil
			}
		}
	}
}

func parseMember(d *xml.Decoder) (name string, value interface{}, err error) {
	for {
		token, err := d.Token()
		if err != nil {
			return "", nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "name":
				if name, err = readText(d); err != nil {
					return "", nil, err
				}
			case "value":
				if value, err = parseValue(d); err != nil {
					return "", nil, err
				}
			default:
				return "", nil, errors.Errorf("unexpected <%s> in member", t.Name.Local)
			}
		case xml.EndElement:
			if t.Name.Local == "member" {
				return name, value, nil
			}
		}
	}
}

func parseRequest(d *xml.Decoder) (method string, args []interface{}, err error) {
	if _, err = expectNextTag(d, "methodCall"); err != nil {
		return "", nil, err
	}
	if _, err = expectNextTag(d, "methodName"); err != nil {
		return "", nil, err
	}
	if method, err = readText(d); err != nil {
		return "", nil, err
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return "", nil, errors.New("empty methodName")
	}

	for {
		token, err := d.Token()
		if err != nil {
			return "", nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "value" {
				v, err := parseValue(d)
				if err != nil {
					return "", nil, err
				}
				args = append(args, v)
			}
		case xml.EndElement:
			if t.Name.Local == "params" || t.Name.Local == "methodCall" {
				return method, args, nil
			}
		}
	}
}

// parseResponse reports ok=false together with the decoded fault value when
// the response is a fault.
func parseResponse(d *xml.Decoder) (ok bool, result interface{}, err error) {
	if _, err = expectNextTag(d, "methodResponse"); err != nil {
		return false, nil, err
	}
	tag, err := nextTag(d)
	if err != nil {
		return false, nil, err
	}
	switch tag.Name.Local {
	case "params":
		if _, err = expectNextTag(d, "param"); err != nil {
			return false, nil, err
		}
		if _, err = expectNextTag(d, "value"); err != nil {
			return false, nil, err
		}
		result, err = parseValue(d)
		return err == nil, result, err
	case "fault":
		if _, err = expectNextTag(d, "value"); err != nil {
			return false, nil, err
		}
		result, err = parseValue(d)
		return false, result, err
	}
	return false, nil, errors.Errorf("unexpected <%s> in methodResponse", tag.Name.Local)
}
