// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visitors

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/linuxboot/ifrkit/pkg/hii"
	"github.com/linuxboot/ifrkit/pkg/ifr"
)

// Count counts records per opcode and packages per type.
type Count struct {
	// Optionally write result as JSON.
	W io.Writer `json:"-"`

	// Output
	OpcodeCount      map[string]int
	PackageTypeCount map[string]int
}

// Run wraps Visit and performs some setup and teardown tasks.
func (v *Count) Run(n ifr.Node) error {
	v.OpcodeCount = map[string]int{}
	v.PackageTypeCount = map[string]int{}

	if err := n.Apply(v); err != nil {
		return err
	}

	if v.W != nil {
		b, err := json.MarshalIndent(v, "", "\t")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(v.W, string(b))
		return err
	}
	return nil
}

// Visit applies the Count visitor to any node.
func (v *Count) Visit(n ifr.Node) error {
	incr := func(m map[string]int, key string) {
		m[key] = m[key] + 1
	}

	switch n := n.(type) {
	case *ifr.Record:
		incr(v.OpcodeCount, n.Op.String())
	case *hii.Package:
		incr(v.PackageTypeCount, n.Type.String())
	}
	return n.ApplyChildren(v)
}

func init() {
	RegisterCLI("count", "count records per opcode and packages per type", 0, func(args []string) (ifr.Visitor, error) {
		return &Count{
			W: os.Stdout,
		}, nil
	})
}
