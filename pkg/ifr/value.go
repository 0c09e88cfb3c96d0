// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

import (
	"encoding/binary"
	"fmt"
)

// ValueType is the EFI_IFR_TYPE_* tag that selects the active branch
// of a value union. The union's bytes carry no discriminant of their
// own; a value is only meaningful next to its tag.
type ValueType uint8

// Value type tags.
const (
	TypeNumSize8  ValueType = 0x00
	TypeNumSize16 ValueType = 0x01
	TypeNumSize32 ValueType = 0x02
	TypeNumSize64 ValueType = 0x03
	TypeBoolean   ValueType = 0x04
	TypeTime      ValueType = 0x05
	TypeDate      ValueType = 0x06
	TypeString    ValueType = 0x07
	TypeOther     ValueType = 0x08
	TypeUndefined ValueType = 0x09
	TypeAction    ValueType = 0x0A
	TypeBuffer    ValueType = 0x0B
	TypeRef       ValueType = 0x0C
)

var valueTypeNames = map[ValueType]string{
	TypeNumSize8:  "NumSize8",
	TypeNumSize16: "NumSize16",
	TypeNumSize32: "NumSize32",
	TypeNumSize64: "NumSize64",
	TypeBoolean:   "Boolean",
	TypeTime:      "Time",
	TypeDate:      "Date",
	TypeString:    "String",
	TypeOther:     "Other",
	TypeUndefined: "Undefined",
	TypeAction:    "Action",
	TypeBuffer:    "Buffer",
	TypeRef:       "Ref",
}

func (t ValueType) String() string {
	if s, ok := valueTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Unknown(%#02x)", uint8(t))
}

// ValueRegionLen is the size of the union region a tagged value
// occupies on the wire, regardless of how many bytes its tag uses.
const ValueRegionLen = 8

// TypeValue is a tagged value. The union region is kept as raw bytes
// and every typed accessor is gated by the tag, so there is no way to
// read the stored bytes under a different tag. Decoded values keep
// their region bytes verbatim, which makes re-encoding bit-exact even
// when the unused part of the region was not zero.
type TypeValue struct {
	Type ValueType
	raw  [ValueRegionLen]byte
}

// decodeTypeValue reads a tag-t value from an 8-byte union region.
func decodeTypeValue(t ValueType, region []byte) (TypeValue, error) {
	if len(region) != ValueRegionLen {
		return TypeValue{}, fmt.Errorf("%w: value region is %d bytes, want %d",
			ErrLengthMismatch, len(region), ValueRegionLen)
	}
	v := TypeValue{Type: t}
	copy(v.raw[:], region)
	return v, nil
}

// encodeTypeValue renders the 8-byte union region.
func (v *TypeValue) encode() [ValueRegionLen]byte {
	return v.raw
}

// Uint8 returns the value for tag NumSize8.
func (v *TypeValue) Uint8() (uint8, bool) {
	if v.Type != TypeNumSize8 {
		return 0, false
	}
	return v.raw[0], true
}

// Uint16 returns the value for tag NumSize16.
func (v *TypeValue) Uint16() (uint16, bool) {
	if v.Type != TypeNumSize16 {
		return 0, false
	}
	return binary.LittleEndian.Uint16(v.raw[:2]), true
}

// Uint32 returns the value for tag NumSize32.
func (v *TypeValue) Uint32() (uint32, bool) {
	if v.Type != TypeNumSize32 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(v.raw[:4]), true
}

// Uint64 returns the value for tag NumSize64.
func (v *TypeValue) Uint64() (uint64, bool) {
	if v.Type != TypeNumSize64 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(v.raw[:]), true
}

// Bool returns the value for tag Boolean.
func (v *TypeValue) Bool() (bool, bool) {
	if v.Type != TypeBoolean {
		return false, false
	}
	return v.raw[0] != 0, true
}

// Time returns the value for tag Time.
func (v *TypeValue) Time() (HiiTime, bool) {
	if v.Type != TypeTime {
		return HiiTime{}, false
	}
	return HiiTime{Hour: v.raw[0], Minute: v.raw[1], Second: v.raw[2]}, true
}

// Date returns the value for tag Date.
func (v *TypeValue) Date() (HiiDate, bool) {
	if v.Type != TypeDate {
		return HiiDate{}, false
	}
	return HiiDate{
		Year:  binary.LittleEndian.Uint16(v.raw[:2]),
		Month: v.raw[2],
		Day:   v.raw[3],
	}, true
}

// StringID returns the value for tags String and Action, both of
// which carry a string handle.
func (v *TypeValue) StringID() (StringID, bool) {
	if v.Type != TypeString && v.Type != TypeAction {
		return 0, false
	}
	return StringID(binary.LittleEndian.Uint16(v.raw[:2])), true
}

// RefID returns the question handle for tag Ref.
func (v *TypeValue) RefID() (QuestionID, bool) {
	if v.Type != TypeRef {
		return 0, false
	}
	return QuestionID(binary.LittleEndian.Uint16(v.raw[:2])), true
}

// Bytes returns the raw union region for the tags the format does not
// promise an interpretation for (Other, Undefined, Buffer). For all
// other tags the typed accessors apply and Bytes returns nil.
func (v *TypeValue) Bytes() []byte {
	switch v.Type {
	case TypeOther, TypeUndefined, TypeBuffer:
		b := make([]byte, ValueRegionLen)
		copy(b, v.raw[:])
		return b
	}
	return nil
}

// NewNumericValue builds a numeric value under the given size tag.
// Values wider than the tag permits are rejected.
func NewNumericValue(t ValueType, val uint64) (TypeValue, error) {
	v := TypeValue{Type: t}
	switch t {
	case TypeNumSize8:
		if val > 0xFF {
			return TypeValue{}, fmt.Errorf("%w: %d under tag %s", ErrValueOutOfRange, val, t)
		}
		v.raw[0] = uint8(val)
	case TypeNumSize16:
		if val > 0xFFFF {
			return TypeValue{}, fmt.Errorf("%w: %d under tag %s", ErrValueOutOfRange, val, t)
		}
		binary.LittleEndian.PutUint16(v.raw[:2], uint16(val))
	case TypeNumSize32:
		if val > 0xFFFFFFFF {
			return TypeValue{}, fmt.Errorf("%w: %d under tag %s", ErrValueOutOfRange, val, t)
		}
		binary.LittleEndian.PutUint32(v.raw[:4], uint32(val))
	case TypeNumSize64:
		binary.LittleEndian.PutUint64(v.raw[:], val)
	default:
		return TypeValue{}, fmt.Errorf("%w: tag %s is not numeric", ErrValueOutOfRange, t)
	}
	return v, nil
}

// NewBoolValue builds a Boolean value.
func NewBoolValue(b bool) TypeValue {
	v := TypeValue{Type: TypeBoolean}
	if b {
		v.raw[0] = 1
	}
	return v
}

// NewTimeValue builds a Time value.
func NewTimeValue(t HiiTime) TypeValue {
	v := TypeValue{Type: TypeTime}
	v.raw[0], v.raw[1], v.raw[2] = t.Hour, t.Minute, t.Second
	return v
}

// NewDateValue builds a Date value.
func NewDateValue(d HiiDate) TypeValue {
	v := TypeValue{Type: TypeDate}
	binary.LittleEndian.PutUint16(v.raw[:2], d.Year)
	v.raw[2], v.raw[3] = d.Month, d.Day
	return v
}

// NewStringValue builds a String value.
func NewStringValue(id StringID) TypeValue {
	v := TypeValue{Type: TypeString}
	binary.LittleEndian.PutUint16(v.raw[:2], uint16(id))
	return v
}

// NewRefValue builds a Ref value.
func NewRefValue(id QuestionID) TypeValue {
	v := TypeValue{Type: TypeRef}
	binary.LittleEndian.PutUint16(v.raw[:2], uint16(id))
	return v
}

func (v TypeValue) String() string {
	switch v.Type {
	case TypeNumSize8:
		n, _ := v.Uint8()
		return fmt.Sprintf("%s(%d)", v.Type, n)
	case TypeNumSize16:
		n, _ := v.Uint16()
		return fmt.Sprintf("%s(%d)", v.Type, n)
	case TypeNumSize32:
		n, _ := v.Uint32()
		return fmt.Sprintf("%s(%d)", v.Type, n)
	case TypeNumSize64:
		n, _ := v.Uint64()
		return fmt.Sprintf("%s(%d)", v.Type, n)
	case TypeBoolean:
		b, _ := v.Bool()
		return fmt.Sprintf("%s(%v)", v.Type, b)
	case TypeTime:
		t, _ := v.Time()
		return fmt.Sprintf("%s(%02d:%02d:%02d)", v.Type, t.Hour, t.Minute, t.Second)
	case TypeDate:
		d, _ := v.Date()
		return fmt.Sprintf("%s(%04d-%02d-%02d)", v.Type, d.Year, d.Month, d.Day)
	case TypeString, TypeAction:
		id, _ := v.StringID()
		return fmt.Sprintf("%s(%#x)", v.Type, uint16(id))
	case TypeRef:
		id, _ := v.RefID()
		return fmt.Sprintf("%s(%#x)", v.Type, uint16(id))
	}
	return fmt.Sprintf("%s(%x)", v.Type, v.raw[:])
}

// MarshalJSON implements json.Marshaler; values render through String
// so JSON dumps never reinterpret the union region.
func (v TypeValue) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}
