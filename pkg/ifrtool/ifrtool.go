// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ifrtool is where the implementation of the ifrtool command
// lives.
package ifrtool

import (
	"errors"
	"fmt"
	"os"

	"github.com/linuxboot/ifrkit/pkg/compression"
	"github.com/linuxboot/ifrkit/pkg/hii"
	"github.com/linuxboot/ifrkit/pkg/ifr"
	"github.com/linuxboot/ifrkit/pkg/log"
	"github.com/linuxboot/ifrkit/pkg/visitors"
)

// Strict makes broken forms packages inside an otherwise valid
// package list fatal instead of a warning.
var Strict bool

// Load reads and parses a forms blob. Compressed input is unwrapped
// first. A blob that carries a package list header is parsed as a
// package list, anything else as a bare opcode stream.
func Load(path string) (ifr.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBlob(data)
}

// ParseBlob parses an in-memory forms blob, unwrapping compression
// when present.
func ParseBlob(data []byte) (ifr.Node, error) {
	// Detection is a heuristic, so a failed decompression falls
	// through to parsing the bytes as they are.
	if c := compression.Detect(data); c != nil {
		if decoded, err := c.Decode(data); err == nil {
			data = decoded
		}
	}

	l, listErr := hii.ParsePackageList(data)
	if l != nil {
		if listErr != nil {
			// The container parsed; broken forms packages inside it
			// are worth a warning, not a refusal.
			if Strict {
				return nil, listErr
			}
			log.Warnf("%v", listErr)
		}
		return l, nil
	}

	forest, err := ifr.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("input is neither a package list (%v) nor an opcode stream: %w",
			listErr, err)
	}
	return &ifr.Forest{Records: forest}, nil
}

// Run runs the ifrtool command with the given arguments.
func Run(args ...string) error {
	if len(args) == 0 {
		return errors.New("at least one argument is required")
	}

	v, err := visitors.ParseCLI(args[1:])
	if err != nil {
		return err
	}

	root, err := Load(args[0])
	if err != nil {
		return err
	}

	// Execute the instructions from the command line.
	return visitors.ExecuteCLI(root, v)
}
