// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifrtool_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/linuxboot/ifrkit/pkg/compression"
	"github.com/linuxboot/ifrkit/pkg/guid"
	"github.com/linuxboot/ifrkit/pkg/hii"
	"github.com/linuxboot/ifrkit/pkg/ifr"
	"github.com/linuxboot/ifrkit/pkg/ifrtool"
	"github.com/linuxboot/ifrkit/pkg/visitors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSetupBlob assembles a package list the way a setup driver
// would publish it: a formset holding stores, defaults, a form with
// several question kinds and conditional expressions.
func buildSetupBlob(t *testing.T) []byte {
	t.Helper()
	setupGUID := guid.MustParse("93039971-8545-4B04-B45E-32EB8326040E")

	small, err := ifr.NewNumericValue(ifr.TypeNumSize8, 1)
	require.NoError(t, err)
	big, err := ifr.NewNumericValue(ifr.TypeNumSize8, 2)
	require.NoError(t, err)

	question := func(qid ifr.QuestionID, offset uint16) ifr.QuestionHeader {
		return ifr.QuestionHeader{
			Statement:    ifr.StatementHeader{Prompt: 0x10, Help: 0x11},
			QuestionID:   qid,
			VarstoreID:   1,
			VarstoreInfo: offset,
		}
	}

	oneOf := &ifr.Record{
		Op:         ifr.OpOneOf,
		OpensScope: true,
		Body:       &ifr.OneOf{Question: question(1, 0), Flags: ifr.NumericSize1},
		Children: []*ifr.Record{
			{Op: ifr.OpOneOfOption, Body: &ifr.OneOfOption{Option: 0x20, Value: small}},
			{Op: ifr.OpOneOfOption, Body: &ifr.OneOfOption{Option: 0x21, Flags: 0x10, Value: big}},
			{Op: ifr.OpDefault, Body: &ifr.Default{DefaultID: 0, Value: small}},
		},
	}
	checkbox := &ifr.Record{
		Op:   ifr.OpCheckbox,
		Body: &ifr.Checkbox{Question: question(2, 1)},
	}
	// Hide the checkbox while question 1 holds value 2.
	suppress := &ifr.Record{
		Op:         ifr.OpSuppressIf,
		OpensScope: true,
		Children: []*ifr.Record{
			{Op: ifr.OpEqIDVal, Body: &ifr.EqIDVal{QuestionID: 1, Value: 2}},
			checkbox,
		},
	}
	form := &ifr.Record{
		Op:         ifr.OpForm,
		OpensScope: true,
		Body:       &ifr.Form{FormID: 1, Title: 0x12},
		Children: []*ifr.Record{
			{Op: ifr.OpSubtitle, Body: &ifr.Subtitle{Statement: ifr.StatementHeader{Prompt: 0x13}}},
			oneOf,
			suppress,
		},
	}
	formSet := &ifr.Record{
		Op:         ifr.OpFormSet,
		OpensScope: true,
		Body: &ifr.FormSet{
			GUID:      *setupGUID,
			Title:     0x14,
			Help:      0x15,
			Flags:     1,
			ClassGUID: []guid.GUID{*setupGUID},
		},
		Children: []*ifr.Record{
			{Op: ifr.OpDefaultStore, Body: &ifr.DefaultStore{DefaultName: 0x16, DefaultID: 0}},
			{Op: ifr.OpVarstore, Body: &ifr.Varstore{
				GUID: *setupGUID, VarstoreID: 1, Size: 2, Name: "Setup",
			}},
			form,
		},
	}

	stream, err := ifr.Encode([]*ifr.Record{formSet})
	require.NoError(t, err)

	pkg := make([]byte, hii.PackageHeaderLen+len(stream))
	pkg[0] = uint8(len(pkg))
	pkg[3] = uint8(hii.TypeForms)
	copy(pkg[hii.PackageHeaderLen:], stream)

	list := make([]byte, hii.ListHeaderLen)
	copy(list, setupGUID[:])
	list = append(list, pkg...)
	binary.LittleEndian.PutUint32(list[guid.Size:], uint32(len(list)))
	return list
}

// TestSaveRoundTrip runs the full pipeline: write blob, load, save,
// and compare byte for byte. It repeats with every compression
// wrapper the loader understands.
func TestSaveRoundTrip(t *testing.T) {
	blob := buildSetupBlob(t)

	wrappers := map[string]compression.Compressor{
		"raw":  nil,
		"lzma": &compression.LZMA{},
		"lz4":  &compression.LZ4{},
		"gzip": &compression.GZIP{},
		"zlib": &compression.ZLIB{},
	}
	for name, c := range wrappers {
		t.Run(name, func(t *testing.T) {
			in := blob
			if c != nil {
				var err error
				in, err = c.Encode(blob)
				require.NoError(t, err)
			}
			dir := t.TempDir()
			inPath := filepath.Join(dir, "setup.bin")
			outPath := filepath.Join(dir, "out.bin")
			require.NoError(t, os.WriteFile(inPath, in, 0666))

			require.NoError(t, ifrtool.Run(inPath, "save", outPath))

			out, err := os.ReadFile(outPath)
			require.NoError(t, err)
			assert.Equal(t, blob, out)
		})
	}
}

// TestVisitorPipeline chains several operations the way the command
// line does.
func TestVisitorPipeline(t *testing.T) {
	blob := buildSetupBlob(t)
	root, err := ifrtool.ParseBlob(blob)
	require.NoError(t, err)

	count := &visitors.Count{}
	require.NoError(t, count.Run(root))
	assert.Equal(t, 1, count.OpcodeCount["FormSet"])
	assert.Equal(t, 2, count.OpcodeCount["OneOfOption"])
	assert.Equal(t, 1, count.OpcodeCount["SuppressIf"])
	assert.Equal(t, 1, count.PackageTypeCount["FORMS"])

	pred, err := visitors.FindVarstorePred("^Setup$")
	require.NoError(t, err)
	find := &visitors.Find{Predicate: pred}
	require.NoError(t, find.Run(root))
	require.Len(t, find.Matches, 1)

	table := &visitors.Table{W: &bytes.Buffer{}}
	require.NoError(t, table.Run(root))

	j := &bytes.Buffer{}
	require.NoError(t, (&visitors.JSON{W: j}).Run(root))
	assert.Contains(t, j.String(), `"Setup"`)
}

// TestParsedTreeShape checks the decoded structure of the blob built
// by hand above, down through the conditional scope.
func TestParsedTreeShape(t *testing.T) {
	root, err := ifrtool.ParseBlob(buildSetupBlob(t))
	require.NoError(t, err)

	l, ok := root.(*hii.PackageList)
	require.True(t, ok)
	forms := l.FormsPackages()
	require.Len(t, forms, 1)
	require.Len(t, forms[0].Records, 1)

	fs := forms[0].Records[0]
	require.Len(t, fs.Children, 3)
	form := fs.Children[2]
	require.Len(t, form.Children, 3)

	suppress := form.Children[2]
	assert.Equal(t, ifr.OpSuppressIf, suppress.Op)
	require.Len(t, suppress.Children, 2)
	assert.Equal(t, ifr.OpEqIDVal, suppress.Children[0].Op)
	assert.Equal(t, ifr.OpCheckbox, suppress.Children[1].Op)
}
