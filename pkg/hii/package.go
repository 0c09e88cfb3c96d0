// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hii parses HII package lists, the container format firmware
// publishes opcode streams in. Only forms packages get their contents
// decoded; every other package type is carried verbatim.
package hii

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/linuxboot/ifrkit/pkg/guid"
	"github.com/linuxboot/ifrkit/pkg/ifr"
)

// PackageType identifies the contents of one package.
type PackageType uint8

// Package types from the HII protocol.
const (
	TypeAll            PackageType = 0x00
	TypeGUID           PackageType = 0x01
	TypeForms          PackageType = 0x02
	TypeStrings        PackageType = 0x04
	TypeFonts          PackageType = 0x05
	TypeImages         PackageType = 0x06
	TypeSimpleFonts    PackageType = 0x07
	TypeDevicePaths    PackageType = 0x08
	TypeKeyboardLayout PackageType = 0x09
	TypeAnimations     PackageType = 0x0A
	TypeEnd            PackageType = 0xDF
	TypeSystemBegin    PackageType = 0xE0
	TypeSystemEnd      PackageType = 0xFF
)

var packageTypeNames = map[PackageType]string{
	TypeAll:            "ALL",
	TypeGUID:           "GUID",
	TypeForms:          "FORMS",
	TypeStrings:        "STRINGS",
	TypeFonts:          "FONTS",
	TypeImages:         "IMAGES",
	TypeSimpleFonts:    "SIMPLE_FONTS",
	TypeDevicePaths:    "DEVICE_PATHS",
	TypeKeyboardLayout: "KEYBOARD_LAYOUT",
	TypeAnimations:     "ANIMATIONS",
	TypeEnd:            "END",
}

func (t PackageType) String() string {
	if s, ok := packageTypeNames[t]; ok {
		return s
	}
	if t >= TypeSystemBegin {
		return fmt.Sprintf("SYSTEM_%#02x", uint8(t))
	}
	return fmt.Sprintf("UNKNOWN_%#02x", uint8(t))
}

// Sentinel errors for the container layer. Opcode-level errors come
// from package ifr.
var (
	ErrInvalidPackageList = errors.New("invalid package list header")
	ErrInvalidPackage     = errors.New("invalid package header")
)

const (
	// ListHeaderLen is the size of a package list header: a GUID
	// followed by the total list length.
	ListHeaderLen = guid.Size + 4

	// PackageHeaderLen is the size of a package header: a 24-bit
	// length (header included) packed with an 8-bit type.
	PackageHeaderLen = 4
)

// read3Size decodes a 24-bit little-endian length.
func read3Size(b []byte) uint32 {
	return uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
}

func write3Size(b []byte, size uint32) {
	b[0] = uint8(size)
	b[1] = uint8(size >> 8)
	b[2] = uint8(size >> 16)
}

// Package is one package of a list. Forms packages additionally carry
// their decoded opcode forest in Records; for every other type (and
// for forms packages that failed to decode) only the raw payload is
// kept.
type Package struct {
	Type    PackageType
	Records []*ifr.Record `json:",omitempty"`

	data []byte
	buf  []byte
}

// Data returns the package payload, header excluded.
func (p *Package) Data() []byte {
	return p.data
}

// Buf returns the raw bytes of the package, header included.
func (p *Package) Buf() []byte {
	return p.buf
}

// Apply calls the visitor on the package.
func (p *Package) Apply(v ifr.Visitor) error {
	return v.Visit(p)
}

// ApplyChildren calls the visitor on each top-level record of a forms
// package. Other package types have no children.
func (p *Package) ApplyChildren(v ifr.Visitor) error {
	for _, r := range p.Records {
		if err := r.Apply(v); err != nil {
			return err
		}
	}
	return nil
}

func (p *Package) String() string {
	if p.Type == TypeForms {
		return fmt.Sprintf("%v {%d records}", p.Type, len(p.Records))
	}
	return fmt.Sprintf("%v {%d bytes}", p.Type, len(p.data))
}

// Encode renders the package, recomputing the header. Forms packages
// with a decoded forest are re-encoded from it; everything else is
// emitted verbatim.
func (p *Package) Encode() ([]byte, error) {
	payload := p.data
	if p.Type == TypeForms && p.Records != nil {
		var err error
		payload, err = ifr.Encode(p.Records)
		if err != nil {
			return nil, err
		}
	}
	total := PackageHeaderLen + len(payload)
	if total > 0xFFFFFF {
		return nil, fmt.Errorf("%w: package is %d bytes, limit is %d",
			ErrInvalidPackage, total, 0xFFFFFF)
	}
	out := make([]byte, PackageHeaderLen, total)
	write3Size(out, uint32(total))
	out[3] = uint8(p.Type)
	return append(out, payload...), nil
}

// PackageList is a decoded package list.
type PackageList struct {
	GUID     guid.GUID
	Packages []*Package

	buf []byte
}

// Buf returns the raw bytes of the list header.
func (l *PackageList) Buf() []byte {
	return l.buf
}

// Apply calls the visitor on the list.
func (l *PackageList) Apply(v ifr.Visitor) error {
	return v.Visit(l)
}

// ApplyChildren calls the visitor on each package of the list.
func (l *PackageList) ApplyChildren(v ifr.Visitor) error {
	for _, p := range l.Packages {
		if err := p.Apply(v); err != nil {
			return err
		}
	}
	return nil
}

func (l *PackageList) String() string {
	return fmt.Sprintf("%v {%d packages}", l.GUID, len(l.Packages))
}

// ParsePackageList decodes a package list. The container structure is
// parsed strictly; opcode streams inside forms packages are parsed
// leniently: a forms package whose stream does not decode keeps its
// raw payload, and all such failures are aggregated into the returned
// error alongside the still-usable list.
func ParsePackageList(buf []byte) (*PackageList, error) {
	if len(buf) < ListHeaderLen {
		return nil, fmt.Errorf("%w: %d bytes, header alone is %d",
			ErrInvalidPackageList, len(buf), ListHeaderLen)
	}
	g, err := guid.FromBytes(buf)
	if err != nil {
		return nil, err
	}
	total := binary.LittleEndian.Uint32(buf[guid.Size:])
	if int(total) != len(buf) {
		return nil, fmt.Errorf("%w: header declares %d bytes, buffer holds %d",
			ErrInvalidPackageList, total, len(buf))
	}

	l := &PackageList{GUID: *g, buf: buf[:ListHeaderLen]}
	var formsErrs *multierror.Error
	for off := ListHeaderLen; off < len(buf); {
		if len(buf)-off < PackageHeaderLen {
			return nil, fmt.Errorf("%w: %d trailing bytes at offset %#x",
				ErrInvalidPackage, len(buf)-off, off)
		}
		plen := int(read3Size(buf[off:]))
		ptype := PackageType(buf[off+3])
		if plen < PackageHeaderLen || off+plen > len(buf) {
			return nil, fmt.Errorf("%w: at offset %#x: type %v declares %d bytes",
				ErrInvalidPackage, off, ptype, plen)
		}
		p := &Package{
			Type: ptype,
			buf:  buf[off : off+plen],
			data: buf[off+PackageHeaderLen : off+plen],
		}
		if ptype == TypeForms {
			recs, err := ifr.Parse(p.data)
			if err != nil {
				formsErrs = multierror.Append(formsErrs, fmt.Errorf(
					"forms package %d: %w", len(l.Packages), err))
			} else {
				p.Records = recs
			}
		}
		l.Packages = append(l.Packages, p)
		off += plen

		// An END package terminates the list even when the declared
		// list length reaches further.
		if ptype == TypeEnd && off < len(buf) {
			return nil, fmt.Errorf("%w: %d bytes after END package",
				ErrInvalidPackage, len(buf)-off)
		}
	}
	return l, formsErrs.ErrorOrNil()
}

// Encode renders the list, recomputing all lengths.
func (l *PackageList) Encode() ([]byte, error) {
	out := make([]byte, ListHeaderLen)
	copy(out, l.GUID[:])
	for _, p := range l.Packages {
		pb, err := p.Encode()
		if err != nil {
			return nil, err
		}
		out = append(out, pb...)
	}
	binary.LittleEndian.PutUint32(out[guid.Size:], uint32(len(out)))
	return out, nil
}

// FormsPackages returns the decoded forms packages of the list.
func (l *PackageList) FormsPackages() []*Package {
	var out []*Package
	for _, p := range l.Packages {
		if p.Type == TypeForms {
			out = append(out, p)
		}
	}
	return out
}
