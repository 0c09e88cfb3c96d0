// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visitors

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/linuxboot/ifrkit/pkg/ifr"
)

// JSON prints any node as JSON.
type JSON struct {
	W io.Writer
}

// Run wraps Visit and performs some setup and teardown tasks.
func (v *JSON) Run(n ifr.Node) error {
	if v.W == nil {
		v.W = os.Stdout
	}
	return n.Apply(v)
}

// Visit applies the JSON visitor to any node.
func (v *JSON) Visit(n ifr.Node) error {
	b, err := json.MarshalIndent(n, "", "\t")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(v.W, string(b))
	return err
}

func init() {
	RegisterCLI("json", "dump the tree as JSON", 0, func(args []string) (ifr.Visitor, error) {
		return &JSON{}, nil
	})
}
