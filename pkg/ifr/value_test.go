// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeValueAccessorsAreGated(t *testing.T) {
	// 300 under a NumSize16 tag; the same region must be unreadable
	// under any other tag.
	region := []byte{0x2C, 0x01, 0, 0, 0, 0, 0, 0}
	v, err := decodeTypeValue(TypeNumSize16, region)
	require.NoError(t, err)

	got16, ok := v.Uint16()
	require.True(t, ok)
	assert.Equal(t, uint16(300), got16)

	_, ok = v.Uint8()
	assert.False(t, ok)
	_, ok = v.Uint32()
	assert.False(t, ok)
	_, ok = v.Uint64()
	assert.False(t, ok)
	_, ok = v.Bool()
	assert.False(t, ok)
	_, ok = v.Date()
	assert.False(t, ok)
	_, ok = v.Time()
	assert.False(t, ok)
	_, ok = v.StringID()
	assert.False(t, ok)
	_, ok = v.RefID()
	assert.False(t, ok)
	assert.Nil(t, v.Bytes())
}

func TestTypeValueKeepsUnusedRegionBytes(t *testing.T) {
	// A NumSize8 value only uses one byte, but whatever the producer
	// left in the other seven must come back out on encode.
	region := []byte{0x7F, 0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03}
	v, err := decodeTypeValue(TypeNumSize8, region)
	require.NoError(t, err)

	got, ok := v.Uint8()
	require.True(t, ok)
	assert.Equal(t, uint8(0x7F), got)
	assert.Equal(t, region, v.raw[:])
}

func TestTypeValueDateTime(t *testing.T) {
	v := NewDateValue(HiiDate{Year: 2024, Month: 2, Day: 29})
	d, ok := v.Date()
	require.True(t, ok)
	assert.Equal(t, HiiDate{Year: 2024, Month: 2, Day: 29}, d)

	v = NewTimeValue(HiiTime{Hour: 23, Minute: 59, Second: 58})
	tm, ok := v.Time()
	require.True(t, ok)
	assert.Equal(t, HiiTime{Hour: 23, Minute: 59, Second: 58}, tm)
}

func TestTypeValueStringAndAction(t *testing.T) {
	v := NewStringValue(0x1234)
	id, ok := v.StringID()
	require.True(t, ok)
	assert.Equal(t, StringID(0x1234), id)

	// An Action tag carries a string handle too.
	v, err := decodeTypeValue(TypeAction, []byte{0x34, 0x12, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	id, ok = v.StringID()
	require.True(t, ok)
	assert.Equal(t, StringID(0x1234), id)
}

func TestTypeValueBytes(t *testing.T) {
	region := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	for _, tag := range []ValueType{TypeOther, TypeUndefined, TypeBuffer} {
		v, err := decodeTypeValue(tag, region)
		require.NoError(t, err)
		assert.Equal(t, region, v.Bytes(), "tag %s", tag)
	}
}

func TestNewNumericValueRange(t *testing.T) {
	v, err := NewNumericValue(TypeNumSize8, 0xFF)
	require.NoError(t, err)
	got, ok := v.Uint8()
	require.True(t, ok)
	assert.Equal(t, uint8(0xFF), got)

	_, err = NewNumericValue(TypeNumSize8, 0x100)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = NewNumericValue(TypeNumSize16, 0x10000)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = NewNumericValue(TypeNumSize32, 0x100000000)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = NewNumericValue(TypeBoolean, 1)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestDecodeTypeValueRegionLen(t *testing.T) {
	_, err := decodeTypeValue(TypeNumSize8, []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
