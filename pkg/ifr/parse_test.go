// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

import (
	"testing"

	"github.com/linuxboot/ifrkit/pkg/guid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rec builds one wire record.
func rec(op Opcode, opensScope bool, payload ...byte) []byte {
	lenByte := uint8(HeaderLen + len(payload))
	if opensScope {
		lenByte |= scopeBit
	}
	return append([]byte{uint8(op), lenByte}, payload...)
}

func cat(chunks ...[]byte) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

var endRec = []byte{0x29, 0x02}

// formsetStream is a small but structurally complete formset: a
// varstore, a default store, and a form holding a subtitle and a
// one-of question with two options.
func formsetStream(t *testing.T) []byte {
	t.Helper()
	g := guid.MustParse(guid.Example)

	qh := []byte{
		0x01, 0x00, // prompt
		0x02, 0x00, // help
		0x0A, 0x00, // question id
		0x01, 0x00, // varstore id
		0x10, 0x00, // var offset
		0x10, // flags: reset required
	}
	oneOfPayload := append(append([]byte{}, qh...), 0x00) // flags: 1-byte size
	oneOfPayload = append(oneOfPayload, make([]byte, 24)...)

	return cat(
		rec(OpFormSet, true, cat(g[:], []byte{0x03, 0x00, 0x04, 0x00, 0x02})...),
		rec(OpVarstore, false, cat(g[:], []byte{0x01, 0x00, 0x40, 0x00}, []byte("Setup\x00"))...),
		rec(OpDefaultStore, false, 0x05, 0x00, 0x00, 0x00),
		rec(OpForm, true, 0x01, 0x00, 0x05, 0x00),
		rec(OpSubtitle, false, 0x06, 0x00, 0x00, 0x00, 0x00),
		rec(OpOneOf, true, oneOfPayload...),
		rec(OpOneOfOption, false, 0x07, 0x00, 0x00, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0),
		rec(OpOneOfOption, false, 0x08, 0x00, 0x10, 0x00, 0x01, 0, 0, 0, 0, 0, 0, 0),
		endRec, // one-of
		endRec, // form
		endRec, // formset
	)
}

func TestParseFormExample(t *testing.T) {
	buf := cat(rec(OpForm, true, 0x01, 0x00, 0x05, 0x00), endRec)
	forest, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, forest, 1)

	r := forest[0]
	assert.Equal(t, OpForm, r.Op)
	assert.True(t, r.OpensScope)
	assert.Equal(t, uint8(6), r.Length)
	assert.Empty(t, r.Children)

	form, ok := r.Body.(*Form)
	require.True(t, ok)
	assert.Equal(t, FormID(1), form.FormID)
	assert.Equal(t, StringID(5), form.Title)
}

func TestParseTree(t *testing.T) {
	forest, err := Parse(formsetStream(t))
	require.NoError(t, err)
	require.Len(t, forest, 1)

	fs := forest[0]
	assert.Equal(t, OpFormSet, fs.Op)
	require.Len(t, fs.Children, 3)

	vs, ok := fs.Children[0].Body.(*Varstore)
	require.True(t, ok)
	assert.Equal(t, "Setup", vs.Name)
	assert.Equal(t, VarstoreID(1), vs.VarstoreID)
	assert.Equal(t, uint16(0x40), vs.Size)

	ds, ok := fs.Children[1].Body.(*DefaultStore)
	require.True(t, ok)
	assert.Equal(t, StringID(5), ds.DefaultName)
	assert.Equal(t, DefaultID(0), ds.DefaultID)

	form := fs.Children[2]
	assert.Equal(t, OpForm, form.Op)
	require.Len(t, form.Children, 2)

	oneOf := form.Children[1]
	require.Len(t, oneOf.Children, 2)
	q, ok := oneOf.Body.(*OneOf)
	require.True(t, ok)
	assert.Equal(t, QuestionID(0x0A), q.Question.QuestionID)
	assert.Equal(t, uint16(0x10), q.Question.VarOffset())
	assert.True(t, q.Question.Flags&FlagResetRequired != 0)

	opt, ok := oneOf.Children[1].Body.(*OneOfOption)
	require.True(t, ok)
	assert.Equal(t, StringID(8), opt.Option)
	val, ok := opt.Value.Uint8()
	require.True(t, ok)
	assert.Equal(t, uint8(1), val)
}

func TestRoundTrip(t *testing.T) {
	buf := formsetStream(t)
	forest, err := Parse(buf)
	require.NoError(t, err)

	out, err := Encode(forest)
	require.NoError(t, err)
	assert.Equal(t, buf, out)
}

func TestRoundTripUnknownOpcode(t *testing.T) {
	// 0x7A is outside the catalog. It must survive untouched, scope
	// bit included.
	buf := cat(
		rec(Opcode(0x7A), true, 0xDE, 0xAD, 0xBE, 0xEF),
		rec(Opcode(0x7B), false),
		endRec,
	)
	forest, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, forest, 1)

	o, ok := forest[0].Body.(*Opaque)
	require.True(t, ok)
	assert.Equal(t, Opcode(0x7A), o.Opcode)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, o.Data)
	assert.False(t, forest[0].Op.IsKnown())

	out, err := Encode(forest)
	require.NoError(t, err)
	assert.Equal(t, buf, out)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want error
	}{
		{"record overruns buffer", []byte{0x01, 0x06, 0x01, 0x00}, ErrInvalidHeader},
		{"declared length zero", []byte{0x01, 0x00}, ErrInvalidHeader},
		{"payload wider than shape", rec(OpForm, true, 1, 0, 5, 0, 9), ErrLengthMismatch},
		{"payload narrower than shape", rec(OpForm, true, 1, 0), ErrLengthMismatch},
		{"end with payload", []byte{0x29, 0x03, 0x00}, ErrLengthMismatch},
		{"unterminated scope", rec(OpForm, true, 1, 0, 5, 0), ErrUnterminatedScope},
		{"stray end", cat(rec(OpSubtitle, false, 1, 0, 2, 0, 0), endRec), ErrUnbalancedEnd},
		{"end before anything", endRec, ErrUnbalancedEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.buf)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	var buf []byte
	for i := 0; i < 3; i++ {
		buf = append(buf, rec(OpForm, true, uint8(i+1), 0x00, 0x05, 0x00)...)
	}
	for i := 0; i < 3; i++ {
		buf = append(buf, endRec...)
	}

	p := &Parser{MaxDepth: 2}
	_, err := p.Parse(buf)
	assert.ErrorIs(t, err, ErrNestingTooDeep)

	p.MaxDepth = 3
	_, err = p.Parse(buf)
	assert.NoError(t, err)
}

func TestParseVarstoreNameErrors(t *testing.T) {
	g := guid.MustParse(guid.Example)
	fixed := cat(g[:], []byte{0x01, 0x00, 0x40, 0x00})

	_, err := Parse(rec(OpVarstore, false, fixed...))
	assert.ErrorIs(t, err, ErrTruncatedTail, "empty name")

	_, err = Parse(rec(OpVarstore, false, cat(fixed, []byte("Setup"))...))
	assert.ErrorIs(t, err, ErrTruncatedTail, "missing terminator")

	_, err = Parse(rec(OpVarstore, false, cat(fixed, []byte("Setup\x00X"))...))
	assert.ErrorIs(t, err, ErrTruncatedTail, "bytes after terminator")
}

func TestParseEqIDValList(t *testing.T) {
	buf := cat(
		rec(OpInconsistentIf, true, 0x20, 0x00),
		rec(OpEqIDValList, false, 0x0A, 0x00, 0x02, 0x00, 0x01, 0x00, 0x03, 0x00),
		endRec,
	)
	forest, err := Parse(buf)
	require.NoError(t, err)
	l, ok := forest[0].Children[0].Body.(*EqIDValList)
	require.True(t, ok)
	assert.Equal(t, QuestionID(0x0A), l.QuestionID)
	assert.Equal(t, []uint16{1, 3}, l.Values)

	// Declared count disagreeing with the tail is rejected.
	_, err = Parse(cat(
		rec(OpInconsistentIf, true, 0x20, 0x00),
		rec(OpEqIDValList, false, 0x0A, 0x00, 0x03, 0x00, 0x01, 0x00, 0x03, 0x00),
		endRec,
	))
	assert.ErrorIs(t, err, ErrTruncatedTail)
}

func TestParseKeepsRawBuf(t *testing.T) {
	buf := formsetStream(t)
	forest, err := Parse(buf)
	require.NoError(t, err)

	fs := forest[0]
	assert.Equal(t, buf[:23], fs.Buf())
	// Buf covers the record alone, not its children.
	assert.Equal(t, OpFormSet, Opcode(fs.Buf()[0]))
}

func TestEncodeValidation(t *testing.T) {
	t.Run("children without scope", func(t *testing.T) {
		r := &Record{
			Op:       OpForm,
			Body:     &Form{FormID: 1, Title: 5},
			Children: []*Record{{Op: OpTrue}},
		}
		_, err := Encode([]*Record{r})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not open a scope")
	})

	t.Run("explicit end record", func(t *testing.T) {
		_, err := Encode([]*Record{{Op: OpEnd}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not representable")
	})

	t.Run("unknown opcode without opaque body", func(t *testing.T) {
		_, err := Encode([]*Record{{Op: Opcode(0x7A)}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Opaque")
	})

	t.Run("all errors reported at once", func(t *testing.T) {
		_, err := Encode([]*Record{{Op: OpEnd}, {Op: Opcode(0x7A)}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not representable")
		assert.Contains(t, err.Error(), "Opaque")
	})
}

func TestEncodeHandBuiltTree(t *testing.T) {
	val, err := NewNumericValue(TypeNumSize16, 300)
	require.NoError(t, err)

	form := &Record{
		Op:         OpForm,
		OpensScope: true,
		Body:       &Form{FormID: 1, Title: 5},
		Children: []*Record{
			{Op: OpOneOfOption, Body: &OneOfOption{Option: 7, Value: val}},
		},
	}
	out, err := Encode([]*Record{form})
	require.NoError(t, err)

	// Hand-built trees must parse back to the same shape.
	back, err := Parse(out)
	require.NoError(t, err)
	require.Len(t, back, 1)
	require.Len(t, back[0].Children, 1)
	opt := back[0].Children[0].Body.(*OneOfOption)
	got, ok := opt.Value.Uint16()
	require.True(t, ok)
	assert.Equal(t, uint16(300), got)

	// And the computed length fields must be in place.
	assert.Equal(t, uint8(6), back[0].Length)
	assert.Equal(t, uint8(14), back[0].Children[0].Length)
}

func TestEncodeRecordTooLarge(t *testing.T) {
	_, err := Encode([]*Record{{
		Op:   OpGUID,
		Body: &GUIDExt{GUID: *guid.MustParse(guid.Example), Data: make([]byte, 120)},
	}})
	assert.ErrorIs(t, err, ErrRecordTooLarge)
}

func FuzzParse(f *testing.F) {
	f.Add([]byte{0x01, 0x86, 0x01, 0x00, 0x05, 0x00, 0x29, 0x02})
	f.Add([]byte{0x29, 0x02})
	f.Add([]byte{0xFF, 0x82})
	f.Fuzz(func(t *testing.T, buf []byte) {
		forest, err := Parse(buf)
		if err != nil {
			return
		}
		out, err := Encode(forest)
		if err != nil {
			t.Fatalf("decoded stream failed to encode: %v", err)
		}
		if !assert.ObjectsAreEqual(buf, out) && !(len(buf) == 0 && len(out) == 0) {
			t.Fatalf("round trip mismatch:\n in  %x\n out %x", buf, out)
		}
	})
}
