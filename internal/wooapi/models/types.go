package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func unquote(data []byte) (string, bool) {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == "" {
		return "", false
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var v string
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return strings.TrimSpace(v), v != ""
		}
		s = s[1 : len(s)-1]
	}
	return s, true
}

// Int accepts a JSON number, a numeric string or null. A number with a
// fractional part is an error, ids and quantities are never fractional.
type Int int64

func (i *Int) UnmarshalJSON(data []byte) error {
	s, ok := unquote(data)
	if !ok {
		*i = 0
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*i = Int(v)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		*i = 0
		return errors.Errorf("not an integer: %s", s)
	}
	*i = Int(f)
	return nil
}

// String accepts a JSON string, number, bool or null.
type String string

func (s *String) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && (raw[0] == '{' || raw[0] == '[') {
		*s = ""
		return errors.Errorf("not a scalar: %.20s", raw)
	}
	v, ok := unquote(data)
	if !ok {
		*s = ""
		return nil
	}
	*s = String(v)
	return nil
}

// Money accepts a decimal as JSON number or string; anything unparsable is zero.
type Money struct {
	decimal.Decimal
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s, ok := unquote(data)
	if !ok {
		m.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		m.Decimal = decimal.Zero
		return errors.Wrapf(err, "failed decimal.NewFromString(%s)", s)
	}
	m.Decimal = d
	return nil
}

// Time holds a WooCommerce timestamp. The store sends site-local wall clock
// without an offset, it is kept as is.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s, ok := unquote(data)
	if !ok {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := dateparse.ParseAny(s)
	if err != nil {
		t.Time = time.Time{}
		return errors.Wrapf(err, "failed dateparse.ParseAny(%s)", s)
	}
	t.Time = parsed
	return nil
}

// decodeFields decodes every known key on its own so one bad field only
// zeroes that field. Problems are returned for logging.
func decodeFields(data []byte, targets map[string]interface{}) ([]string, error) {
	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, "not a JSON object")
	}

	var problems []string
	for key, target := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			problems = append(problems, key+": "+err.Error())
		}
	}
	return problems, nil
}
