package model

import (
	"errors"
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

/*
Wire conversion shared by the serializable model types. Discord transmits
64-bit values as decimal strings because clients that decode JSON numbers
into IEEE-754 doubles silently corrupt anything above 2^53. On output we
always emit a quoted decimal string; on input we accept any of the shapes
producers actually use - a string, an unsigned integer, or a signed
integer (audit log change records and some config formats send raw
numbers).
*/

////////////////////////////////////////////////////////////////////////////////

// ErrZeroID is returned when wire data deserializes to the reserved zero
// identifier.
var ErrZeroID = errors.New("id must not be zero")

// parseUint lexes a base-10 unsigned 64-bit numeral.
func parseUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q as uint64: %w", s, err)
	}
	return v, nil
}

// parseWireUint converts a raw JSON value - a quoted decimal string, an
// unsigned integer, or a non-negative signed integer - to a uint64.
// Negative integers are out of range for every type in this package.
func parseWireUint(data []byte) (uint64, error) {
	if len(data) == 0 {
		return 0, errors.New("empty JSON value")
	}
	if data[0] == '"' {
		if len(data) < 2 || data[len(data)-1] != '"' {
			return 0, fmt.Errorf("malformed JSON string %s", data)
		}
		return parseUint(string(data[1 : len(data)-1]))
	}
	s := string(data)
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s as an integer: %w", s, err)
	}
	v, err := safecast.Conv[uint64](i)
	if err != nil {
		return 0, fmt.Errorf("integer %d is not an unsigned value: %w", i, err)
	}
	return v, nil
}

// appendUint renders v as a base-10 decimal numeral.
func appendUint(buf []byte, v uint64) []byte {
	return strconv.AppendUint(buf, v, 10)
}

// appendQuotedUint renders v as a quoted decimal string. Values are never
// emitted as raw JSON numbers, regardless of magnitude.
func appendQuotedUint(buf []byte, v uint64) []byte {
	buf = append(buf, '"')
	buf = strconv.AppendUint(buf, v, 10)
	return append(buf, '"')
}

// decodeMsgpackUint converts the next msgpack value - a decimal string
// or an integer - to a uint64, mirroring parseWireUint for the msgpack
// wire shape used by entity caches.
func decodeMsgpackUint(dec *msgpack.Decoder) (uint64, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return 0, fmt.Errorf("failed to peek msgpack code: %w", err)
	}
	switch {
	case msgpcode.IsString(c):
		s, err := dec.DecodeString()
		if err != nil {
			return 0, fmt.Errorf("failed to decode msgpack string: %w", err)
		}
		return parseUint(s)
	case c == msgpcode.Int8 || c == msgpcode.Int16 || c == msgpcode.Int32 ||
		c == msgpcode.Int64 || msgpcode.IsFixedNum(c) && c >= msgpcode.NegFixedNumLow:
		i, err := dec.DecodeInt64()
		if err != nil {
			return 0, fmt.Errorf("failed to decode msgpack integer: %w", err)
		}
		v, err := safecast.Conv[uint64](i)
		if err != nil {
			return 0, fmt.Errorf("integer %d is not an unsigned value: %w", i, err)
		}
		return v, nil
	default:
		v, err := dec.DecodeUint64()
		if err != nil {
			return 0, fmt.Errorf("expected a string or integer: %w", err)
		}
		return v, nil
	}
}

// isJSONNull reports whether data is the JSON null literal. Unmarshaling
// null into any model type is a no-op, per encoding/json convention.
func isJSONNull(data []byte) bool {
	return string(data) == "null"
}
