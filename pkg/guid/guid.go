// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package guid implements the mixed-endian GUID layout used by EFI.
// The first three fields are stored little-endian on the wire, the
// trailing eight bytes are stored as-is.
package guid

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/linuxboot/ifrkit/pkg/log"
)

// Size is the number of bytes in a GUID.
const Size = 16

// Example is an example of a string GUID.
const Example = "01234567-89AB-CDEF-0123-456789ABCDEF"

// byteOrder maps the position of each hex-encoded byte in the
// canonical string form to its position in the wire form.
var byteOrder = [Size]int{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

// GUID is the wire representation of an EFI GUID.
type GUID [Size]byte

// Parse parses a canonical GUID string such as Example.
func Parse(s string) (*GUID, error) {
	stripped := strings.ReplaceAll(s, "-", "")
	decoded, err := hex.DecodeString(stripped)
	if err != nil || len(decoded) != Size {
		return nil, fmt.Errorf("guid string must look like %q, got %q", Example, s)
	}
	g := &GUID{}
	for i, pos := range byteOrder {
		g[pos] = decoded[i]
	}
	return g, nil
}

// MustParse parses a GUID string or dies.
func MustParse(s string) *GUID {
	g, err := Parse(s)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return g
}

// FromBytes reads a wire-format GUID from the start of buf.
func FromBytes(buf []byte) (*GUID, error) {
	if len(buf) < Size {
		return nil, fmt.Errorf("need %d bytes for a GUID, got %d", Size, len(buf))
	}
	g := &GUID{}
	copy(g[:], buf[:Size])
	return g, nil
}

func (g GUID) String() string {
	var canon [Size]byte
	for i, pos := range byteOrder {
		canon[i] = g[pos]
	}
	h := strings.ToUpper(hex.EncodeToString(canon[:]))
	return h[:8] + "-" + h[8:12] + "-" + h[12:16] + "-" + h[16:20] + "-" + h[20:]
}

// IsZero reports whether the GUID is all zeroes.
func (g *GUID) IsZero() bool {
	return *g == GUID{}
}

// MarshalJSON implements json.Marshaler.
func (g *GUID) MarshalJSON() ([]byte, error) {
	return []byte(`{"GUID" : "` + g.String() + `"}`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *GUID) UnmarshalJSON(b []byte) error {
	j := make(map[string]string)
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	parsed, err := Parse(j["GUID"])
	if err != nil {
		return err
	}
	copy(g[:], parsed[:])
	return nil
}
