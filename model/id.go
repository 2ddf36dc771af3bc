// Package model defines the typed identifiers and permission bitflags
// shared by every API payload: snowflake ID families, the 64-bit
// permission set, and the timestamps derived from them. All types are
// immutable values, safe to copy and share across goroutines.
package model

import (
	"cmp"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

/*
Snowflake identifiers are unsigned 64-bit values whose top 42 bits encode
the creation time as milliseconds since the Discord epoch. Zero is
reserved to mean "absent" and is never a valid identifier.

Each entity gets its own wrapper type (ChannelID, UserID, ...) embedding
the unexported base, so the families share one implementation but are
never assignable to one another. Construct them with the family
constructors in id_types.go, or by unmarshaling wire data.
*/

////////////////////////////////////////////////////////////////////////////////

// snowflake is the shared storage and behavior of the identifier
// families. The zero value means "absent" and is never produced by a
// constructor or an unmarshal.
type snowflake struct {
	value uint64
}

// newSnowflake constructs a snowflake from a trusted in-process value.
// A zero id is a defect at the call site, not bad input, so it panics.
func newSnowflake(kind string, id uint64) snowflake {
	if id == 0 {
		panic(fmt.Sprintf("attempted to construct a %s from the invalid value 0", kind))
	}
	return snowflake{value: id}
}

// Get returns the underlying value.
func (s snowflake) Get() uint64 {
	return s.value
}

// IsZero reports whether the identifier is the absent zero value.
func (s snowflake) IsZero() bool {
	return s.value == 0
}

// CreatedAt returns the time the identifier was generated, decoded from
// the top 42 bits of the value.
func (s snowflake) CreatedAt() Timestamp {
	return TimestampFromMillis(int64(s.value>>22) + DiscordEpoch)
}

// String returns the value as a base-10 decimal string.
func (s snowflake) String() string {
	buf := make([]byte, 0, 20)
	return string(appendUint(buf, s.value))
}

// MarshalJSON encodes the identifier as a quoted decimal string. The
// zero value is not a valid identifier and fails; optional fields should
// be pointers so absent identifiers are omitted instead.
func (s snowflake) MarshalJSON() ([]byte, error) {
	if s.value == 0 {
		return nil, fmt.Errorf("failed to marshal snowflake: %w", ErrZeroID)
	}
	return appendQuotedUint(make([]byte, 0, 22), s.value), nil
}

// UnmarshalJSON decodes a snowflake from a quoted decimal string, an
// unsigned integer, or a non-negative signed integer. Zero is rejected.
func (s *snowflake) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	v, err := parseWireUint(data)
	if err != nil {
		return fmt.Errorf("failed to unmarshal snowflake: %w", err)
	}
	if v == 0 {
		return fmt.Errorf("failed to unmarshal snowflake: %w", ErrZeroID)
	}
	s.value = v
	return nil
}

// MarshalText encodes the identifier as decimal text, for use as a map
// key or in formats that negotiate through encoding.TextMarshaler.
func (s snowflake) MarshalText() ([]byte, error) {
	if s.value == 0 {
		return nil, fmt.Errorf("failed to marshal snowflake: %w", ErrZeroID)
	}
	return appendUint(make([]byte, 0, 20), s.value), nil
}

// UnmarshalText decodes decimal text. Zero is rejected.
func (s *snowflake) UnmarshalText(data []byte) error {
	v, err := parseUint(string(data))
	if err != nil {
		return fmt.Errorf("failed to unmarshal snowflake: %w", err)
	}
	if v == 0 {
		return fmt.Errorf("failed to unmarshal snowflake: %w", ErrZeroID)
	}
	s.value = v
	return nil
}

// EncodeMsgpack encodes the identifier as a decimal string, matching the
// JSON wire contract.
func (s snowflake) EncodeMsgpack(enc *msgpack.Encoder) error {
	if s.value == 0 {
		return fmt.Errorf("failed to encode snowflake: %w", ErrZeroID)
	}
	return enc.EncodeString(s.String())
}

// DecodeMsgpack accepts a string or integer, matching the JSON wire
// contract.
func (s *snowflake) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := decodeMsgpackUint(dec)
	if err != nil {
		return fmt.Errorf("failed to decode snowflake: %w", err)
	}
	if v == 0 {
		return fmt.Errorf("failed to decode snowflake: %w", ErrZeroID)
	}
	s.value = v
	return nil
}

// CompareIDs orders two identifiers of the same family by numeric value.
// The creation timestamp lives in the high bits, so this order is
// consistent with generation order.
func CompareIDs[T interface{ Get() uint64 }](a, b T) int {
	return cmp.Compare(a.Get(), b.Get())
}
