package types

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The dashboard posts form values verbatim, so ids and amounts arrive either
// as JSON numbers or as numeric strings, and an untouched field arrives as "".
// The Null* types below accept all three shapes, treat "" as NULL, and
// marshal back to plain JSON numbers, strings or null.

var jsonNull = []byte("null")

// unquote returns the decoded string when b is a JSON string.
func unquote(b []byte) (string, bool, error) {
	if len(b) == 0 || b[0] != '"' {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", false, err
	}
	return strings.TrimSpace(s), true, nil
}

// NullInt64 is a nullable integer column such as a foreign key.
type NullInt64 struct {
	sql.NullInt64
}

// Int64 returns a valid NullInt64 holding v.
func Int64(v int64) NullInt64 {
	return NullInt64{sql.NullInt64{Int64: v, Valid: true}}
}

// Present reports whether the value is set and non-zero.
func (n NullInt64) Present() bool { return n.Valid && n.Int64 != 0 }

func (n NullInt64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return strconv.AppendInt(nil, n.Int64, 10), nil
}

func (n *NullInt64) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	n.Int64, n.Valid = 0, false
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	raw := string(b)
	s, quoted, err := unquote(b)
	if err != nil {
		return err
	}
	if quoted {
		if s == "" {
			return nil
		}
		raw = s
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Accept integral floats such as 3.0.
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int64(f)) {
			return fmt.Errorf("invalid integer %q", raw)
		}
		v = int64(f)
	}
	n.Int64, n.Valid = v, true
	return nil
}

// NullFloat64 is a nullable decimal column such as a fee or rate.
type NullFloat64 struct {
	sql.NullFloat64
}

// Float64 returns a valid NullFloat64 holding v.
func Float64(v float64) NullFloat64 {
	return NullFloat64{sql.NullFloat64{Float64: v, Valid: true}}
}

// Present reports whether the value is set and non-zero.
func (n NullFloat64) Present() bool { return n.Valid && n.Float64 != 0 }

func (n NullFloat64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.Float64)
}

func (n *NullFloat64) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	n.Float64, n.Valid = 0, false
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	raw := string(b)
	s, quoted, err := unquote(b)
	if err != nil {
		return err
	}
	if quoted {
		if s == "" {
			return nil
		}
		raw = s
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", raw)
	}
	n.Float64, n.Valid = v, true
	return nil
}

// NullString is a nullable text column. An empty string is stored as NULL so
// optional unique columns (email) accept any number of blank values.
type NullString struct {
	sql.NullString
}

// String returns a valid NullString holding v, or NULL when v is empty.
func String(v string) NullString {
	return NullString{sql.NullString{String: v, Valid: v != ""}}
}

// Present reports whether the value is set and non-blank.
func (n NullString) Present() bool { return n.Valid && strings.TrimSpace(n.String) != "" }

func (n NullString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}
	return json.Marshal(n.String)
}

func (n *NullString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	n.String, n.Valid = "", false
	if bytes.Equal(b, jsonNull) {
		return nil
	}
	s, quoted, err := unquote(b)
	if err != nil {
		return err
	}
	if !quoted {
		// Numbers and booleans keep their literal text.
		s = string(b)
	}
	if s == "" {
		return nil
	}
	n.String, n.Valid = s, true
	return nil
}

// present reports whether a required text field is non-blank.
func present(s string) bool { return strings.TrimSpace(s) != "" }
