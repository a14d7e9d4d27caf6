// internal/domain/models/lenient.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Year is a year held as text. Empty means unknown.
// Numeric BSON or JSON values decode to their decimal form (2027 -> "2027").
type Year string

// String returns the year as plain text.
func (y Year) String() string { return string(y) }

// UnmarshalBSONValue accepts string, numeric, boolean and null values.
func (y *Year) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v, ok := scalarText(bson.RawValue{Type: t, Value: data})
	if !ok {
		return fmt.Errorf("year: unsupported BSON type %s", t)
	}
	*y = Year(v)
	return nil
}

// UnmarshalJSON accepts a JSON string, number or null.
func (y *Year) UnmarshalJSON(b []byte) error {
	v, err := jsonText(b)
	if err != nil {
		return fmt.Errorf("year: %w", err)
	}
	*y = Year(v)
	return nil
}

// Text is a free or categorical text field. Non-string values are kept as
// their textual form (3 -> "3", true -> "true") so one odd document does
// not fail a whole read.
type Text string

// String returns the value as plain text.
func (t Text) String() string { return string(t) }

// UnmarshalBSONValue accepts any BSON value.
func (t *Text) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	*t = Text(anyText(bson.RawValue{Type: bt, Value: data}))
	return nil
}

// UnmarshalJSON accepts any JSON value.
func (t *Text) UnmarshalJSON(b []byte) error {
	v, err := jsonText(b)
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}
	*t = Text(v)
	return nil
}

// ID is a document identifier as text: the hex form of an ObjectID, or the
// value itself for string and numeric ids.
type ID string

// NewID returns the hex form of a fresh ObjectID.
func NewID() ID { return ID(primitive.NewObjectID().Hex()) }

// String returns the id as text.
func (id ID) String() string { return string(id) }

// MarshalBSONValue writes a 24-digit hex id as an ObjectID and anything
// else as a string.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if oid, err := primitive.ObjectIDFromHex(string(id)); err == nil {
		return bson.MarshalValue(oid)
	}
	return bson.MarshalValue(string(id))
}

// UnmarshalBSONValue accepts any BSON value.
func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*id = ID(anyText(bson.RawValue{Type: t, Value: data}))
	return nil
}

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(b []byte) error {
	v, err := jsonText(b)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(v)
	return nil
}

// Number is a numeric measure (intensity, likelihood, relevance).
// An empty string in the store decodes to 0.
type Number float64

// Float returns the value as float64.
func (n Number) Float() float64 { return float64(n) }

// UnmarshalBSONValue accepts numeric, string and null values.
func (n *Number) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		*n = Number(rv.Double())
	case bsontype.Int32:
		*n = Number(rv.Int32())
	case bsontype.Int64:
		*n = Number(rv.Int64())
	case bsontype.String:
		v, err := parseNumber(rv.StringValue())
		if err != nil {
			return err
		}
		*n = v
	case bsontype.Null, bsontype.Undefined:
		*n = 0
	default:
		return fmt.Errorf("number: unsupported BSON type %s", t)
	}
	return nil
}

// UnmarshalJSON accepts a JSON number, a numeric string, "" or null.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := parseNumber(s)
		if err != nil {
			return err
		}
		*n = v
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("number: %w", err)
	}
	*n = Number(f)
	return nil
}

func parseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("number: %q is not numeric", s)
	}
	return Number(f), nil
}

// scalarText renders string, numeric, boolean and null values as text.
// ok is false for every other BSON type.
func scalarText(rv bson.RawValue) (v string, ok bool) {
	switch rv.Type {
	case bsontype.String:
		return rv.StringValue(), true
	case bsontype.Int32:
		return strconv.FormatInt(int64(rv.Int32()), 10), true
	case bsontype.Int64:
		return strconv.FormatInt(rv.Int64(), 10), true
	case bsontype.Double:
		return strconv.FormatFloat(rv.Double(), 'f', -1, 64), true
	case bsontype.Boolean:
		return strconv.FormatBool(rv.Boolean()), true
	case bsontype.Null, bsontype.Undefined:
		return "", true
	}
	return "", false
}

// anyText is scalarText extended to ObjectIDs (hex) and, for anything
// else, the value's extended JSON.
func anyText(rv bson.RawValue) string {
	if v, ok := scalarText(rv); ok {
		return v
	}
	if rv.Type == bsontype.ObjectID {
		return rv.ObjectID().Hex()
	}
	return rv.String()
}

// jsonText returns a JSON string's contents, "" for null, and the compact
// literal for numbers, booleans, arrays and objects.
func jsonText(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0:
		return "", fmt.Errorf("empty value")
	case bytes.Equal(b, []byte("null")):
		return "", nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return "", err
	}
	return buf.String(), nil
}
