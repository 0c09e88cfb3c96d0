// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compression implements reading and writing of the
// compressed blobs forms data is commonly shipped in. Firmware tables
// rarely store opcode streams raw; the usual wrappers are LZMA (the
// UEFI favorite), LZ4, GZIP and ZLIB.
package compression

import (
	"bytes"

	"github.com/linuxboot/ifrkit/pkg/guid"
)

// Compressor defines a single compression scheme (such as LZMA).
type Compressor interface {
	// Name is typically the name of a class.
	Name() string

	// Decode and Encode obey "x == Decode(Encode(x))".
	Decode(encodedData []byte) ([]byte, error)
	Encode(decodedData []byte) ([]byte, error)
}

// Well-known GUIDs for GUIDed sections containing compressed data.
var (
	LZMAGUID    = *guid.MustParse("EE4E5898-3914-4259-9D6E-DC7BD79403CF")
	LZMAX86GUID = *guid.MustParse("D42AE6BD-1352-4BFB-909A-CA72A6EAE889")
)

// CompressorFromGUID returns a Compressor for the corresponding
// GUIDed section.
func CompressorFromGUID(g *guid.GUID) Compressor {
	switch *g {
	case LZMAGUID, LZMAX86GUID:
		return &LZMA{}
	}
	return nil
}

// Magic prefixes of the supported encodings. The LZMA one is a
// heuristic: raw LZMA has no magic, but the UEFI encoder always emits
// properties byte 0x5D followed by the dictionary size.
var (
	gzipMagic = []byte{0x1F, 0x8B}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// Detect guesses the compression scheme from the first bytes of data.
// It returns nil when data does not look compressed.
func Detect(data []byte) Compressor {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return &GZIP{}
	case bytes.HasPrefix(data, lz4Magic):
		return &LZ4{}
	case len(data) > 1 && data[0] == 0x78:
		return &ZLIB{}
	case len(data) > lzmaHeaderSize && data[0] == 0x5D:
		return &LZMA{}
	}
	return nil
}
