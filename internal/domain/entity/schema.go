package entity

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"smartagri/pkg/logger"
)

// schema lists the fields a collection is allowed to carry.
type schema []string

func (s schema) has(field string) bool {
	for _, f := range s {
		if f == field {
			return true
		}
	}
	return false
}

// FieldTypeError reports a field whose stored type does not match the schema.
type FieldTypeError struct {
	Collection string
	DocumentID string
	Field      string
	Want       string
	Got        interface{}
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s/%s: field %q: want %s, got %T", e.Collection, e.DocumentID, e.Field, e.Want, e.Got)
}

// fieldReader extracts typed fields from a raw document. The first type
// mismatch is kept and returned by Done; unexpected fields are logged and
// dropped.
type fieldReader struct {
	collection string
	id         string
	data       map[string]interface{}
	schema     schema
	err        error
}

func newFieldReader(collection, id string, data map[string]interface{}, s schema) *fieldReader {
	return &fieldReader{collection: collection, id: id, data: data, schema: s}
}

func (r *fieldReader) fail(field, want string, got interface{}) {
	if r.err == nil {
		r.err = &FieldTypeError{Collection: r.collection, DocumentID: r.id, Field: field, Want: want, Got: got}
	}
}

func (r *fieldReader) String(field string) string {
	switch v := r.data[field].(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		r.fail(field, "string", v)
		return ""
	}
}

func (r *fieldReader) Float(field string) float64 {
	switch v := r.data[field].(type) {
	case nil:
		return 0
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			r.fail(field, "number", v)
		}
		return f
	default:
		r.fail(field, "number", v)
		return 0
	}
}

func (r *fieldReader) Int(field string) int {
	switch v := r.data[field].(type) {
	case nil:
		return 0
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		r.fail(field, "integer", v)
		return 0
	}
}

func (r *fieldReader) Bool(field string) bool {
	switch v := r.data[field].(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v == "on" || v == "true"
	default:
		r.fail(field, "bool", v)
		return false
	}
}

// Time accepts native timestamps and the ISO strings written by older clients.
func (r *fieldReader) Time(field string) time.Time {
	switch v := r.data[field].(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return v
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			r.fail(field, "timestamp", v)
		}
		return t
	default:
		r.fail(field, "timestamp", v)
		return time.Time{}
	}
}

// Unexpected returns the sorted field names outside the schema.
func (r *fieldReader) Unexpected() []string {
	var extra []string
	for key := range r.data {
		if !r.schema.has(key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return extra
}

func (r *fieldReader) Done() error {
	if extra := r.Unexpected(); len(extra) > 0 {
		logger.Warn("Ignoring unexpected fields in %s/%s: %s", r.collection, r.id, strings.Join(extra, ", "))
	}
	return r.err
}
