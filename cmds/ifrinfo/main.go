// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ifrinfo prints summary information about a forms blob.
//
// Synopsis:
//
//	ifrinfo [-j] FILE
//
// Description:
//
//	The input may be a bare opcode stream, an HII package list, or
//	either of the two wrapped in a supported compression scheme.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"

	"github.com/linuxboot/ifrkit/pkg/ifr"
	"github.com/linuxboot/ifrkit/pkg/ifrtool"
	"github.com/linuxboot/ifrkit/pkg/knownguids"
	"github.com/linuxboot/ifrkit/pkg/log"
	"github.com/linuxboot/ifrkit/pkg/visitors"
)

type options struct {
	JSON bool `short:"j" long:"json" description:"output as JSON"`

	Args struct {
		File string `positional-arg-name:"FILE"`
	} `positional-args:"true" required:"true"`
}

// info is the summary printed for one blob.
type info struct {
	File        string
	Size        string
	FormSets    []formSetInfo
	Forms       int
	Questions   int
	Varstores   []string
	OpcodeCount map[string]int
}

type formSetInfo struct {
	GUID  string
	Name  string `json:",omitempty"`
	Title ifr.StringID
}

func summarize(path string) (*info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := ifrtool.ParseBlob(data)
	if err != nil {
		return nil, err
	}

	count := &visitors.Count{}
	if err := count.Run(root); err != nil {
		return nil, err
	}

	in := &info{
		File:        path,
		Size:        humanize.Bytes(uint64(len(data))),
		OpcodeCount: count.OpcodeCount,
	}
	for name, n := range count.OpcodeCount {
		switch name {
		case "Form":
			in.Forms += n
		case "OneOf", "Checkbox", "Numeric", "Password", "String",
			"Date", "Time", "OrderedList", "Action", "Ref":
			in.Questions += n
		}
	}

	find := &visitors.Find{Predicate: func(r *ifr.Record) bool {
		switch r.Body.(type) {
		case *ifr.FormSet, *ifr.Varstore, *ifr.VarstoreEFI:
			return true
		}
		return false
	}}
	if err := find.Run(root); err != nil {
		return nil, err
	}
	for _, r := range find.Matches {
		switch b := r.Body.(type) {
		case *ifr.FormSet:
			in.FormSets = append(in.FormSets, formSetInfo{
				GUID:  b.GUID.String(),
				Name:  knownguids.GUIDs[b.GUID],
				Title: b.Title,
			})
		case *ifr.Varstore:
			in.Varstores = append(in.Varstores, b.Name)
		case *ifr.VarstoreEFI:
			in.Varstores = append(in.Varstores, b.Name)
		}
	}
	return in, nil
}

func (in *info) summary() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "File:      %s (%s)\n", in.File, in.Size)
	for _, fs := range in.FormSets {
		name := fs.Name
		if name == "" {
			name = "unknown formset"
		}
		fmt.Fprintf(b, "FormSet:   %s (%s), title string %d\n", fs.GUID, name, fs.Title)
	}
	fmt.Fprintf(b, "Forms:     %s\n", humanize.Comma(int64(in.Forms)))
	fmt.Fprintf(b, "Questions: %s\n", humanize.Comma(int64(in.Questions)))
	if len(in.Varstores) > 0 {
		fmt.Fprintf(b, "Varstores: %s\n", strings.Join(in.Varstores, ", "))
	}
	return b.String()
}

func main() {
	opts := options{}
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	in, err := summarize(opts.Args.File)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if opts.JSON {
		j, err := json.MarshalIndent(in, "", "    ")
		if err != nil {
			log.Fatalf("cannot marshal JSON: %v", err)
		}
		fmt.Println(string(j))
	} else {
		fmt.Print(in.summary())
	}
}
