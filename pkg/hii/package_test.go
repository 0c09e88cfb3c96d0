// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hii

import (
	"encoding/binary"
	"testing"

	"github.com/linuxboot/ifrkit/pkg/guid"
	"github.com/linuxboot/ifrkit/pkg/ifr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pkg(t PackageType, payload []byte) []byte {
	out := make([]byte, PackageHeaderLen+len(payload))
	write3Size(out, uint32(len(out)))
	out[3] = uint8(t)
	copy(out[PackageHeaderLen:], payload)
	return out
}

func list(pkgs ...[]byte) []byte {
	g := guid.MustParse(guid.Example)
	out := make([]byte, ListHeaderLen)
	copy(out, g[:])
	for _, p := range pkgs {
		out = append(out, p...)
	}
	binary.LittleEndian.PutUint32(out[guid.Size:], uint32(len(out)))
	return out
}

// formBytes is a minimal valid opcode stream: one empty form.
var formBytes = []byte{0x01, 0x86, 0x01, 0x00, 0x05, 0x00, 0x29, 0x02}

func TestParsePackageList(t *testing.T) {
	buf := list(
		pkg(TypeStrings, []byte{0xAA, 0xBB}),
		pkg(TypeForms, formBytes),
		pkg(TypeEnd, nil),
	)
	l, err := ParsePackageList(buf)
	require.NoError(t, err)
	assert.Equal(t, *guid.MustParse(guid.Example), l.GUID)
	require.Len(t, l.Packages, 3)

	assert.Equal(t, TypeStrings, l.Packages[0].Type)
	assert.Equal(t, []byte{0xAA, 0xBB}, l.Packages[0].Data())
	assert.Nil(t, l.Packages[0].Records)

	forms := l.FormsPackages()
	require.Len(t, forms, 1)
	require.Len(t, forms[0].Records, 1)
	assert.Equal(t, ifr.OpForm, forms[0].Records[0].Op)
}

func TestPackageListRoundTrip(t *testing.T) {
	buf := list(
		pkg(TypeForms, formBytes),
		pkg(TypeImages, []byte{1, 2, 3, 4, 5}),
		pkg(TypeEnd, nil),
	)
	l, err := ParsePackageList(buf)
	require.NoError(t, err)

	out, err := l.Encode()
	require.NoError(t, err)
	assert.Equal(t, buf, out)
}

func TestParsePackageListLenientForms(t *testing.T) {
	// The second forms package holds a broken stream; the list must
	// still come back with the first one decoded.
	buf := list(
		pkg(TypeForms, formBytes),
		pkg(TypeForms, []byte{0x01, 0x86, 0x01, 0x00, 0x05, 0x00}), // scope never closed
		pkg(TypeEnd, nil),
	)
	l, err := ParsePackageList(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ifr.ErrUnterminatedScope)

	require.Len(t, l.Packages, 3)
	assert.NotNil(t, l.Packages[0].Records)
	assert.Nil(t, l.Packages[1].Records)
	assert.NotEmpty(t, l.Packages[1].Data())
}

func TestParsePackageListErrors(t *testing.T) {
	t.Run("short buffer", func(t *testing.T) {
		_, err := ParsePackageList(make([]byte, 10))
		assert.ErrorIs(t, err, ErrInvalidPackageList)
	})

	t.Run("length mismatch", func(t *testing.T) {
		buf := list(pkg(TypeEnd, nil))
		binary.LittleEndian.PutUint32(buf[guid.Size:], uint32(len(buf)+4))
		_, err := ParsePackageList(buf)
		assert.ErrorIs(t, err, ErrInvalidPackageList)
	})

	t.Run("package overruns list", func(t *testing.T) {
		bad := pkg(TypeStrings, []byte{1, 2, 3})
		write3Size(bad, 100)
		_, err := ParsePackageList(list(bad))
		assert.ErrorIs(t, err, ErrInvalidPackage)
	})

	t.Run("bytes after end package", func(t *testing.T) {
		buf := list(pkg(TypeEnd, nil), pkg(TypeStrings, nil))
		_, err := ParsePackageList(buf)
		assert.ErrorIs(t, err, ErrInvalidPackage)
	})
}

func TestPackageEncodeFromRecords(t *testing.T) {
	// A forms package rebuilt from a hand-made forest gets a fresh
	// header length.
	p := &Package{
		Type: TypeForms,
		Records: []*ifr.Record{{
			Op:         ifr.OpForm,
			OpensScope: true,
			Body:       &ifr.Form{FormID: 2, Title: 9},
		}},
	}
	out, err := p.Encode()
	require.NoError(t, err)
	assert.Equal(t, uint32(PackageHeaderLen+8), read3Size(out))
	assert.Equal(t, uint8(TypeForms), out[3])
}

func TestPackageTypeString(t *testing.T) {
	assert.Equal(t, "FORMS", TypeForms.String())
	assert.Equal(t, "SYSTEM_0xe3", PackageType(0xE3).String())
	assert.Equal(t, "UNKNOWN_0x42", PackageType(0x42).String())
}
