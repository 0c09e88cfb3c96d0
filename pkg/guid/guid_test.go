// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	g, err := Parse(Example)
	require.NoError(t, err)
	// Mixed endianness: the three leading fields are byte-swapped.
	want := GUID{0x67, 0x45, 0x23, 0x01, 0xAB, 0x89, 0xEF, 0xCD,
		0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}
	assert.Equal(t, want, *g)
	assert.Equal(t, Example, g.String())
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"01234567-89AB-CDEF-0123",
		"z1234567-89AB-CDEF-0123-456789ABCDEF",
		"01234567-89AB-CDEF-0123-456789ABCDEF00",
	} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded, expected error", s)
		}
	}
}

func TestFromBytes(t *testing.T) {
	g, err := Parse(Example)
	require.NoError(t, err)
	g2, err := FromBytes(g[:])
	require.NoError(t, err)
	assert.Equal(t, *g, *g2)

	_, err = FromBytes(g[:5])
	assert.Error(t, err)
}

func TestIsZero(t *testing.T) {
	var z GUID
	assert.True(t, z.IsZero())
	assert.False(t, MustParse(Example).IsZero())
}

func TestJSONRoundTrip(t *testing.T) {
	g := MustParse("EE4E5898-3914-4259-9D6E-DC7BD79403CF")
	b, err := json.Marshal(g)
	require.NoError(t, err)

	var g2 GUID
	require.NoError(t, json.Unmarshal(b, &g2))
	assert.Equal(t, *g, g2)
}
