// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

import (
	"fmt"
)

// DefaultMaxDepth bounds scope nesting during parsing. Real firmware
// forms rarely nest past a dozen levels; the limit exists so that a
// crafted stream cannot drive unbounded recursion in later tree walks.
const DefaultMaxDepth = 64

// Parser decodes opcode streams. The zero value is ready to use.
type Parser struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// Parse decodes buf into a forest of records. The input must span
// complete records exactly: trailing bytes that do not form a full
// record are an error, as is a scope left open at end of input.
//
// END markers are structural; they close the innermost open scope and
// do not appear in the result. Encode re-emits them.
func (p *Parser) Parse(buf []byte) ([]*Record, error) {
	maxDepth := p.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var (
		forest []*Record
		stack  []*Record
		off    int
	)
	attach := func(r *Record) {
		if len(stack) == 0 {
			forest = append(forest, r)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, r)
		}
	}

	for off < len(buf) {
		h, err := decodeHeader(buf[off:])
		if err != nil {
			return nil, fmt.Errorf("at offset %#x: %w", off, err)
		}
		if off+int(h.Length) > len(buf) {
			return nil, fmt.Errorf("%w: at offset %#x: %s declares %d bytes, %d remain",
				ErrInvalidHeader, off, h.Op, h.Length, len(buf)-off)
		}
		raw := buf[off : off+int(h.Length)]
		payload := raw[HeaderLen:]

		if h.Op == OpEnd {
			// decodeHeader already rejects END with the scope bit.
			if len(payload) != 0 {
				return nil, fmt.Errorf("%w: at offset %#x: END carries %d payload bytes",
					ErrLengthMismatch, off, len(payload))
			}
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: at offset %#x", ErrUnbalancedEnd, off)
			}
			stack = stack[:len(stack)-1]
			off += int(h.Length)
			continue
		}

		var body Body
		if s, known := shapes[h.Op]; known {
			body, err = s.decode(h, payload)
			if err != nil {
				return nil, fmt.Errorf("at offset %#x: %w", off, err)
			}
		} else {
			// Unknown opcode: keep the payload verbatim so the record
			// survives a round trip.
			body = &Opaque{Opcode: h.Op, Data: append([]byte(nil), payload...)}
		}

		r := &Record{
			Op:         h.Op,
			OpensScope: h.OpensScope,
			Length:     h.Length,
			Body:       body,
			buf:        raw,
		}
		attach(r)
		if h.OpensScope {
			if len(stack) == maxDepth {
				return nil, fmt.Errorf("%w: at offset %#x: %d scopes already open",
					ErrNestingTooDeep, off, len(stack))
			}
			stack = append(stack, r)
		}
		off += int(h.Length)
	}

	if len(stack) != 0 {
		open := stack[len(stack)-1]
		return nil, fmt.Errorf("%w: %d scopes still open, innermost is %s",
			ErrUnterminatedScope, len(stack), open.Op)
	}
	return forest, nil
}

// Parse decodes buf with the default parser configuration.
func Parse(buf []byte) ([]*Record, error) {
	p := &Parser{}
	return p.Parse(buf)
}
