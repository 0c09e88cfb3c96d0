// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

import (
	"fmt"
)

// Body holds the decoded fixed fields (and variable tail, when the
// shape has one) of a single record. Each opcode has its own body
// type carrying only its own fields; opcodes with no payload have a
// nil Body.
type Body interface {
	// Op returns the opcode this body belongs to.
	Op() Opcode
}

// Record is one node of the decoded opcode tree. Records are built
// either by Parse or by hand for encoding; once built they are value
// data owned by their parent's Children slice.
type Record struct {
	Op         Opcode
	OpensScope bool `json:",omitempty"`

	// Length is the total wire length of this record alone (header
	// included, children excluded). It is filled in by Parse; Encode
	// recomputes it from the body.
	Length uint8 `json:",omitempty"`

	Body     Body      `json:",omitempty"`
	Children []*Record `json:",omitempty"`

	buf []byte
}

// Buf returns the raw bytes of this record alone (no children), as
// decoded. It is nil for hand-built records.
func (r *Record) Buf() []byte {
	return r.buf
}

// Apply calls the visitor on the record.
func (r *Record) Apply(v Visitor) error {
	return v.Visit(r)
}

// ApplyChildren calls the visitor on each child of the record.
func (r *Record) ApplyChildren(v Visitor) error {
	for _, c := range r.Children {
		if err := c.Apply(v); err != nil {
			return err
		}
	}
	return nil
}

func (r *Record) String() string {
	if r.OpensScope {
		return fmt.Sprintf("%v {%d children}", r.Op, len(r.Children))
	}
	return r.Op.String()
}

// Forest is a parsed opcode stream with no container around it. It
// exists so a bare stream can be the root of a visitor walk.
type Forest struct {
	Records []*Record
}

// Apply calls the visitor on the forest.
func (f *Forest) Apply(v Visitor) error {
	return v.Visit(f)
}

// ApplyChildren calls the visitor on each top-level record.
func (f *Forest) ApplyChildren(v Visitor) error {
	for _, r := range f.Records {
		if err := r.Apply(v); err != nil {
			return err
		}
	}
	return nil
}

// Buf returns nil; a forest has no bytes of its own.
func (f *Forest) Buf() []byte {
	return nil
}

func (f *Forest) String() string {
	return fmt.Sprintf("stream {%d records}", len(f.Records))
}

// Node is one walkable element: a whole forms package or a single
// record.
type Node interface {
	// Apply a visitor to the node.
	Apply(v Visitor) error

	// Apply a visitor to all the direct children of the node
	// (excluding the node itself).
	ApplyChildren(v Visitor) error

	// Buf returns the node's raw bytes, children excluded.
	Buf() []byte
}

// Visitor represents an operation applied over an opcode tree. Visit
// decides per node whether to recurse via ApplyChildren or prune.
type Visitor interface {
	// Run wraps Visit and performs setup and teardown tasks.
	Run(Node) error

	// Visit applies the visitor to the node.
	Visit(Node) error
}
