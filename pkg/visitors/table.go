// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visitors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/linuxboot/ifrkit/pkg/hii"
	"github.com/linuxboot/ifrkit/pkg/ifr"
)

// Table prints the tree as a compact table: one row per package and
// record, indented by scope depth.
type Table struct {
	W io.Writer

	w     table.Writer
	depth int
}

// Run wraps Visit and performs some setup and teardown tasks.
func (v *Table) Run(n ifr.Node) error {
	if v.W == nil {
		v.W = os.Stdout
	}
	v.w = table.NewWriter()
	v.w.SetOutputMirror(v.W)
	v.w.AppendHeader(table.Row{"Node", "Info", "Size"})
	if err := n.Apply(v); err != nil {
		return err
	}
	v.w.Render()
	return nil
}

// Visit applies the Table visitor to any node.
func (v *Table) Visit(n ifr.Node) error {
	pad := strings.Repeat("  ", v.depth)
	switch n := n.(type) {
	case *hii.PackageList:
		v.w.AppendRow(table.Row{pad + "PackageList", n.GUID.String(), len(n.Buf())})
	case *hii.Package:
		v.w.AppendRow(table.Row{pad + n.Type.String(), "", len(n.Buf())})
	case *ifr.Forest:
		v.w.AppendRow(table.Row{pad + "Stream", fmt.Sprintf("%d records", len(n.Records)), 0})
	case *ifr.Record:
		v.w.AppendRow(table.Row{pad + n.Op.String(), recordInfo(n), len(n.Buf())})
	default:
		v.w.AppendRow(table.Row{pad + fmt.Sprintf("%T", n), "", len(n.Buf())})
	}

	v2 := *v
	v2.depth++
	return n.ApplyChildren(&v2)
}

// recordInfo gives the one-line summary column for a record.
func recordInfo(r *ifr.Record) string {
	switch b := r.Body.(type) {
	case *ifr.FormSet:
		return fmt.Sprintf("guid %v title %d", b.GUID, b.Title)
	case *ifr.Form:
		return fmt.Sprintf("form %d title %d", b.FormID, b.Title)
	case *ifr.Varstore:
		return fmt.Sprintf("%q id %d size %d", b.Name, b.VarstoreID, b.Size)
	case *ifr.VarstoreEFI:
		return fmt.Sprintf("%q id %d size %d", b.Name, b.VarstoreID, b.Size)
	case *ifr.OneOfOption:
		return fmt.Sprintf("option %d value %v", b.Option, b.Value)
	case *ifr.Default:
		return fmt.Sprintf("store %d value %v", b.DefaultID, b.Value)
	case *ifr.Opaque:
		return fmt.Sprintf("%d opaque bytes", len(b.Data))
	case *ifr.GUIDExt:
		return fmt.Sprintf("guid %v", b.GUID)
	}
	if q, ok := questionOf(r.Body); ok {
		return fmt.Sprintf("question %d prompt %d", q.QuestionID, q.Statement.Prompt)
	}
	return ""
}

func init() {
	RegisterCLI("table", "print out important information in a pretty table", 0, func(args []string) (ifr.Visitor, error) {
		return &Table{}, nil
	})
}
