// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The ifrtool command performs operations on a forms blob.
//
// Synopsis:
//
//	ifrtool [flags] FILE [COMMAND [ARGS]]...
//
// Examples:
//
//	# Dump everything to JSON:
//	ifrtool setup.bin json
//
//	# Dump opcodes and sizes to a compact table:
//	ifrtool setup.bin table
//
//	# Dump all one-of questions:
//	ifrtool setup.bin find OneOf
//
//	# Find the variable store backing the Setup form:
//	ifrtool setup.bin find-varstore '^Setup$'
//
//	# Re-encode the blob (must be byte-identical):
//	ifrtool setup.bin save setup2.bin
//
// The input may be a bare opcode stream, an HII package list, or
// either of the two wrapped in LZMA, LZ4, GZIP or ZLIB.
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/linuxboot/ifrkit/pkg/ifrtool"
	"github.com/linuxboot/ifrkit/pkg/log"
	"github.com/linuxboot/ifrkit/pkg/visitors"
)

var strict = flag.BoolP("strict", "s", false, "fail on broken forms packages instead of warning")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ifrtool [flags] FILE [COMMAND [ARGS]]...\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nOperations:\n%s", visitors.ListCLI())
	}
	flag.Parse()
	ifrtool.Strict = *strict

	if err := ifrtool.Run(flag.Args()...); err != nil {
		log.Fatalf("%v", err)
	}
}
