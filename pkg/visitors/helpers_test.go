// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visitors

import (
	"encoding/binary"
	"testing"

	"github.com/linuxboot/ifrkit/pkg/guid"
	"github.com/linuxboot/ifrkit/pkg/hii"
	"github.com/stretchr/testify/require"
)

// sampleList builds a package list with one forms package holding a
// formset, a varstore named "Setup" and a form with one checkbox.
func sampleList(t *testing.T) *hii.PackageList {
	t.Helper()
	g := guid.MustParse(guid.Example)

	qh := []byte{
		0x01, 0x00, 0x02, 0x00, // prompt, help
		0x0A, 0x00, 0x01, 0x00, // question id, varstore id
		0x00, 0x00, 0x00, // var offset, flags
	}
	var forms []byte
	addRec := func(op uint8, opensScope bool, payload ...byte) {
		lenByte := uint8(2 + len(payload))
		if opensScope {
			lenByte |= 0x80
		}
		forms = append(forms, op, lenByte)
		forms = append(forms, payload...)
	}
	addRec(0x0E, true, append(append([]byte{}, g[:]...), 0x03, 0x00, 0x04, 0x00, 0x02)...) // formset
	addRec(0x24, false, append(append([]byte{}, g[:]...), 0x01, 0x00, 0x40, 0x00, 'S', 'e', 't', 'u', 'p', 0x00)...)
	addRec(0x01, true, 0x01, 0x00, 0x05, 0x00) // form
	addRec(0x06, false, append(append([]byte{}, qh...), 0x00)...) // checkbox
	addRec(0x29, false)                        // end form
	addRec(0x29, false)                        // end formset

	pkg := make([]byte, 4+len(forms))
	pkg[0] = uint8(len(pkg))
	pkg[3] = uint8(hii.TypeForms)
	copy(pkg[4:], forms)

	end := []byte{4, 0, 0, uint8(hii.TypeEnd)}

	buf := make([]byte, hii.ListHeaderLen)
	copy(buf, g[:])
	buf = append(buf, pkg...)
	buf = append(buf, end...)
	binary.LittleEndian.PutUint32(buf[guid.Size:], uint32(len(buf)))

	l, err := hii.ParsePackageList(buf)
	require.NoError(t, err)
	return l
}
