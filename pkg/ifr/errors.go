// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

import "errors"

// Decode and encode failure kinds. Every error returned by this
// package wraps one of these, with the offset and opcode of the
// offending record in the message. Whether to abort or to skip the
// broken record using its declared length is the caller's call; the
// parser never resynchronizes on content.
var (
	// ErrInvalidHeader means a record header was truncated or its
	// declared length was below the two header bytes.
	ErrInvalidHeader = errors.New("invalid opcode header")

	// ErrLengthMismatch means the declared record length disagrees
	// with the fixed width of the opcode's shape.
	ErrLengthMismatch = errors.New("record length does not match opcode shape")

	// ErrTruncatedTail means a variable tail (name string, ID list,
	// GUID list) does not fit the record's declared length.
	ErrTruncatedTail = errors.New("truncated record tail")

	// ErrUnterminatedScope means input ended while scopes were open.
	ErrUnterminatedScope = errors.New("unterminated scope")

	// ErrUnbalancedEnd means an End record appeared with no open scope.
	ErrUnbalancedEnd = errors.New("unbalanced end of scope")

	// ErrNestingTooDeep means the scope depth exceeded Parser.MaxDepth.
	// This is a policy guard, not part of the wire format.
	ErrNestingTooDeep = errors.New("scope nesting too deep")

	// ErrRecordTooLarge means an encoded record would not fit the
	// 7-bit length field.
	ErrRecordTooLarge = errors.New("record too large for 7-bit length")

	// ErrValueOutOfRange means a value is wider than its type tag
	// permits.
	ErrValueOutOfRange = errors.New("value out of range for type tag")
)
