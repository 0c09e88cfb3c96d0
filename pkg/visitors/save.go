// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visitors

import (
	"fmt"
	"os"

	"github.com/linuxboot/ifrkit/pkg/hii"
	"github.com/linuxboot/ifrkit/pkg/ifr"
)

// Save re-encodes the tree and writes it to a file.
type Save struct {
	FilePath string
}

// Run just applies the visitor.
func (v *Save) Run(n ifr.Node) error {
	return n.Apply(v)
}

// Visit re-encodes the node it is applied to and writes the bytes
// out. It never recurses: the encoder already covers the children.
func (v *Save) Visit(n ifr.Node) error {
	var (
		b   []byte
		err error
	)
	switch n := n.(type) {
	case *hii.PackageList:
		b, err = n.Encode()
	case *hii.Package:
		b, err = n.Encode()
	case *ifr.Forest:
		b, err = ifr.Encode(n.Records)
	case *ifr.Record:
		b, err = ifr.EncodeRecord(n)
	default:
		return fmt.Errorf("cannot save node of type %T", n)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(v.FilePath, b, 0666)
}

func init() {
	RegisterCLI("save", "re-encode the tree and write it to a file", 1, func(args []string) (ifr.Visitor, error) {
		return &Save{
			FilePath: args[0],
		}, nil
	})
}
