// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

import "fmt"

// Header constants. Every record starts with a 1-byte opcode and a
// 1-byte field packing the total record length (low 7 bits, header
// included) with the opens-scope flag (high bit).
const (
	// HeaderLen is the size of the record header.
	HeaderLen = 2

	// MaxRecordLen is the largest total record length the 7-bit
	// length field can carry.
	MaxRecordLen = 0x7F

	scopeBit = 0x80
	lenMask  = 0x7F
)

// OpHeader is the decoded form of a record header.
type OpHeader struct {
	Op         Opcode
	Length     uint8
	OpensScope bool
}

// decodeHeader reads a record header from the start of buf.
func decodeHeader(buf []byte) (OpHeader, error) {
	if len(buf) < HeaderLen {
		return OpHeader{}, fmt.Errorf("%w: %d bytes remaining, need %d",
			ErrInvalidHeader, len(buf), HeaderLen)
	}
	h := OpHeader{
		Op:         Opcode(buf[0]),
		Length:     buf[1] & lenMask,
		OpensScope: buf[1]&scopeBit != 0,
	}
	if h.Length < HeaderLen {
		return OpHeader{}, fmt.Errorf("%w: opcode %s declares length %d",
			ErrInvalidHeader, h.Op, h.Length)
	}
	// An END that opened a scope could never be closed without
	// breaking a byte-exact round trip, so it is rejected outright.
	if h.Op == OpEnd && h.OpensScope {
		return OpHeader{}, fmt.Errorf("%w: END cannot open a scope", ErrInvalidHeader)
	}
	return h, nil
}

// encodeHeader renders the 2-byte header for a record of totalLen
// bytes (header included).
func encodeHeader(op Opcode, totalLen int, opensScope bool) ([HeaderLen]byte, error) {
	if totalLen > MaxRecordLen {
		return [HeaderLen]byte{}, fmt.Errorf("%w: opcode %s needs %d bytes, limit is %d",
			ErrRecordTooLarge, op, totalLen, MaxRecordLen)
	}
	lenByte := uint8(totalLen)
	if opensScope {
		lenByte |= scopeBit
	}
	return [HeaderLen]byte{uint8(op), lenByte}, nil
}
