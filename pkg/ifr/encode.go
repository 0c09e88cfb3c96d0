// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Encode renders the record forest back to wire bytes. A forest
// produced by Parse encodes to the exact input; for hand-built trees
// the length fields are computed from the bodies and END markers are
// emitted after each record that opens a scope.
func Encode(forest []*Record) ([]byte, error) {
	if err := validate(forest); err != nil {
		return nil, err
	}
	var out []byte
	for _, r := range forest {
		var err error
		out, err = appendRecord(out, r)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// EncodeRecord renders a single record and its subtree.
func EncodeRecord(r *Record) ([]byte, error) {
	return Encode([]*Record{r})
}

func appendRecord(out []byte, r *Record) ([]byte, error) {
	payload, err := encodePayload(r)
	if err != nil {
		return nil, err
	}
	hdr, err := encodeHeader(r.Op, HeaderLen+len(payload), r.OpensScope)
	if err != nil {
		return nil, err
	}
	out = append(out, hdr[:]...)
	out = append(out, payload...)
	for _, c := range r.Children {
		out, err = appendRecord(out, c)
		if err != nil {
			return nil, err
		}
	}
	if r.OpensScope {
		end, err := encodeHeader(OpEnd, HeaderLen, false)
		if err != nil {
			return nil, err
		}
		out = append(out, end[:]...)
	}
	return out, nil
}

func encodePayload(r *Record) ([]byte, error) {
	if o, ok := r.Body.(*Opaque); ok {
		return o.Data, nil
	}
	s, known := shapes[r.Op]
	if !known {
		// Checked by validate; kept for hand-called appendRecord.
		return nil, fmt.Errorf("unknown opcode %s needs an Opaque body, got %T", r.Op, r.Body)
	}
	return s.encode(r.Op, r.Body)
}

// validate walks the forest and collects every structural error
// before any byte is written, so a failed Encode names all the broken
// records at once.
func validate(forest []*Record) error {
	var result *multierror.Error
	var walk func(path string, r *Record)
	walk = func(path string, r *Record) {
		if r.Op == OpEnd {
			result = multierror.Append(result, fmt.Errorf(
				"%s: explicit END records are not representable, close scopes via OpensScope", path))
			return
		}
		if !r.Op.IsKnown() {
			if _, ok := r.Body.(*Opaque); !ok {
				result = multierror.Append(result, fmt.Errorf(
					"%s: unknown opcode %s needs an Opaque body, got %T", path, r.Op, r.Body))
			}
		}
		if len(r.Children) > 0 && !r.OpensScope {
			result = multierror.Append(result, fmt.Errorf(
				"%s: %s has %d children but does not open a scope", path, r.Op, len(r.Children)))
		}
		for i, c := range r.Children {
			walk(fmt.Sprintf("%s/%d", path, i), c)
		}
	}
	for i, r := range forest {
		walk(fmt.Sprintf("record %d", i), r)
	}
	return result.ErrorOrNil()
}
