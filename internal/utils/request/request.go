// Package request holds the parsing steps every handler repeats: decoding a
// JSON body, reading the {id} path segment and reading typed query values.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ErrEmptyBody is returned by DecodeJSON when the request has no body.
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON decodes the request body into v. Unknown fields are rejected
// so a typo in a field name is reported instead of silently ignored.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	return err
}

// PathID parses the {id} path segment as a positive integer.
func PathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id: must be a positive integer")
	}
	return id, nil
}

// Query wraps url.Values with typed getters. A missing or empty key yields
// the zero value; a malformed one is reported by Err.
type Query struct {
	values url.Values
	errs   []error
}

// NewQuery reads the URL query of r.
func NewQuery(r *http.Request) *Query {
	return &Query{values: r.URL.Query()}
}

// String returns the trimmed value of key.
func (q *Query) String(key string) string {
	return strings.TrimSpace(q.values.Get(key))
}

// List splits a comma separated value, dropping empty items.
func (q *Query) List(key string) []string {
	raw := q.String(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (q *Query) Int(key string) int {
	raw := q.String(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.errs = append(q.errs, fmt.Errorf("query %s: %q is not an integer", key, raw))
		return 0
	}
	return n
}

func (q *Query) Float(key string) float64 {
	raw := q.String(key)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		q.errs = append(q.errs, fmt.Errorf("query %s: %q is not a number", key, raw))
		return 0
	}
	return f
}

func (q *Query) Bool(key string) bool {
	raw := q.String(key)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		q.errs = append(q.errs, fmt.Errorf("query %s: %q is not a boolean", key, raw))
		return false
	}
	return b
}

// Err reports every malformed value read so far.
func (q *Query) Err() error {
	return errors.Join(q.errs...)
}
