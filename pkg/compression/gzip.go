// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compression

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GZIP implements Compressor and uses a Go-based implementation.
type GZIP struct{}

// Name returns the type of compression employed.
func (c *GZIP) Name() string {
	return "GZIP"
}

// Decode decodes a byte slice of GZIP data.
func (c *GZIP) Decode(encodedData []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewBuffer(encodedData))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Encode encodes a byte slice with GZIP.
func (c *GZIP) Encode(decodedData []byte) ([]byte, error) {
	buf := bytes.Buffer{}
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(decodedData); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
