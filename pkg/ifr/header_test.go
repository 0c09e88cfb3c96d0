// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHeader(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want OpHeader
	}{
		{"form opens scope", []byte{0x01, 0x86}, OpHeader{OpForm, 6, true}},
		{"end", []byte{0x29, 0x02}, OpHeader{OpEnd, 2, false}},
		{"plain text", []byte{0x03, 0x08}, OpHeader{OpText, 8, false}},
		{"max length", []byte{0x5F, 0xFF}, OpHeader{OpGUID, 127, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := decodeHeader(tt.buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, h)
		})
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"one byte", []byte{0x01}},
		{"length zero", []byte{0x01, 0x00}},
		{"length one", []byte{0x01, 0x01}},
		{"scoped length one", []byte{0x01, 0x81}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeHeader(tt.buf)
			assert.ErrorIs(t, err, ErrInvalidHeader)
		})
	}
}

func TestDecodeHeaderScopedEnd(t *testing.T) {
	_, err := decodeHeader([]byte{0x29, 0x82})
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestEncodeHeader(t *testing.T) {
	h, err := encodeHeader(OpForm, 6, true)
	require.NoError(t, err)
	assert.Equal(t, [2]byte{0x01, 0x86}, h)

	h, err = encodeHeader(OpEnd, 2, false)
	require.NoError(t, err)
	assert.Equal(t, [2]byte{0x29, 0x02}, h)
}

func TestEncodeHeaderTooLarge(t *testing.T) {
	_, err := encodeHeader(OpGUID, MaxRecordLen+1, false)
	assert.ErrorIs(t, err, ErrRecordTooLarge)
}
