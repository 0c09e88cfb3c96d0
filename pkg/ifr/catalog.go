// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/linuxboot/ifrkit/pkg/guid"
)

// shape is one catalog entry: the decode/encode pair for an opcode's
// payload (everything after the 2-byte header). The catalog is built
// once at init and never mutated, so independent streams may be
// decoded concurrently.
type shape struct {
	decode func(h OpHeader, payload []byte) (Body, error)
	encode func(op Opcode, b Body) ([]byte, error)
}

// plainShape covers bodies made purely of fixed-width fields; the
// payload width is the binary size of the body struct and the record
// length must match it exactly.
func plainShape(newBody func() Body) shape {
	width := binary.Size(newBody())
	protoType := reflect.TypeOf(newBody())
	return shape{
		decode: func(h OpHeader, payload []byte) (Body, error) {
			if len(payload) != width {
				return nil, fmt.Errorf("%w: %s payload is %d bytes, shape wants %d",
					ErrLengthMismatch, h.Op, len(payload), width)
			}
			b := newBody()
			if err := binary.Read(bytes.NewReader(payload), binary.LittleEndian, b); err != nil {
				return nil, err
			}
			return b, nil
		},
		encode: func(op Opcode, b Body) ([]byte, error) {
			if reflect.TypeOf(b) != protoType {
				return nil, fmt.Errorf("opcode %s cannot encode body of type %T", op, b)
			}
			w := new(bytes.Buffer)
			if err := binary.Write(w, binary.LittleEndian, b); err != nil {
				return nil, err
			}
			return w.Bytes(), nil
		},
	}
}

// bodyless covers opcodes that are a bare header, mostly expression
// stack operations.
var bodyless = shape{
	decode: func(h OpHeader, payload []byte) (Body, error) {
		if len(payload) != 0 {
			return nil, fmt.Errorf("%w: %s carries no payload, got %d bytes",
				ErrLengthMismatch, h.Op, len(payload))
		}
		return nil, nil
	},
	encode: func(op Opcode, b Body) ([]byte, error) {
		if b != nil {
			return nil, fmt.Errorf("opcode %s carries no payload, got body of type %T", op, b)
		}
		return nil, nil
	},
}

func le16(b []byte) uint16     { return binary.LittleEndian.Uint16(b) }
func put16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }

// readASCIIName consumes an implied-count NUL-terminated name tail.
// The terminator must be the last declared byte; a name that does not
// fill the record would leave undeclared trailing bytes behind it.
func readASCIIName(op Opcode, tail []byte) (string, error) {
	if len(tail) == 0 {
		return "", fmt.Errorf("%w: %s name is empty", ErrTruncatedTail, op)
	}
	nul := bytes.IndexByte(tail, 0)
	if nul == -1 {
		return "", fmt.Errorf("%w: %s name is not NUL-terminated", ErrTruncatedTail, op)
	}
	if nul != len(tail)-1 {
		return "", fmt.Errorf("%w: %s has %d bytes after the name terminator",
			ErrTruncatedTail, op, len(tail)-1-nul)
	}
	return string(tail[:nul]), nil
}

var oneOfOptionShape = shape{
	// option(2) flags(1) type(1) value(8)
	decode: func(h OpHeader, payload []byte) (Body, error) {
		if len(payload) != 4+ValueRegionLen {
			return nil, fmt.Errorf("%w: %s payload is %d bytes, shape wants %d",
				ErrLengthMismatch, h.Op, len(payload), 4+ValueRegionLen)
		}
		v, err := decodeTypeValue(ValueType(payload[3]), payload[4:])
		if err != nil {
			return nil, err
		}
		return &OneOfOption{
			Option: StringID(le16(payload)),
			Flags:  payload[2],
			Value:  v,
		}, nil
	},
	encode: func(op Opcode, b Body) ([]byte, error) {
		o, ok := b.(*OneOfOption)
		if !ok {
			return nil, fmt.Errorf("opcode %s cannot encode body of type %T", op, b)
		}
		out := make([]byte, 4+ValueRegionLen)
		put16(out, uint16(o.Option))
		out[2] = o.Flags
		out[3] = uint8(o.Value.Type)
		region := o.Value.encode()
		copy(out[4:], region[:])
		return out, nil
	},
}

var defaultShape = shape{
	// default_id(2) type(1) value(8)
	decode: func(h OpHeader, payload []byte) (Body, error) {
		if len(payload) != 3+ValueRegionLen {
			return nil, fmt.Errorf("%w: %s payload is %d bytes, shape wants %d",
				ErrLengthMismatch, h.Op, len(payload), 3+ValueRegionLen)
		}
		v, err := decodeTypeValue(ValueType(payload[2]), payload[3:])
		if err != nil {
			return nil, err
		}
		return &Default{
			DefaultID: DefaultID(le16(payload)),
			Value:     v,
		}, nil
	},
	encode: func(op Opcode, b Body) ([]byte, error) {
		d, ok := b.(*Default)
		if !ok {
			return nil, fmt.Errorf("opcode %s cannot encode body of type %T", op, b)
		}
		out := make([]byte, 3+ValueRegionLen)
		put16(out, uint16(d.DefaultID))
		out[2] = uint8(d.Value.Type)
		region := d.Value.encode()
		copy(out[3:], region[:])
		return out, nil
	},
}

const questionHeaderLen = 11

func decodeQuestionHeader(payload []byte) QuestionHeader {
	return QuestionHeader{
		Statement: StatementHeader{
			Prompt: StringID(le16(payload[0:])),
			Help:   StringID(le16(payload[2:])),
		},
		QuestionID:   QuestionID(le16(payload[4:])),
		VarstoreID:   VarstoreID(le16(payload[6:])),
		VarstoreInfo: le16(payload[8:]),
		Flags:        QuestionFlags(payload[10]),
	}
}

func appendQuestionHeader(out []byte, q *QuestionHeader) []byte {
	var b [questionHeaderLen]byte
	put16(b[0:], uint16(q.Statement.Prompt))
	put16(b[2:], uint16(q.Statement.Help))
	put16(b[4:], uint16(q.QuestionID))
	put16(b[6:], uint16(q.VarstoreID))
	put16(b[8:], q.VarstoreInfo)
	b[10] = uint8(q.Flags)
	return append(out, b[:]...)
}

var actionShape = shape{
	// question(11) [question_config(2)]
	decode: func(h OpHeader, payload []byte) (Body, error) {
		a := &Action{}
		switch len(payload) {
		case questionHeaderLen:
		case questionHeaderLen + 2:
			cfg := StringID(le16(payload[questionHeaderLen:]))
			a.QuestionConfig = &cfg
		default:
			return nil, fmt.Errorf("%w: %s payload is %d bytes, shape wants %d or %d",
				ErrLengthMismatch, h.Op, len(payload), questionHeaderLen, questionHeaderLen+2)
		}
		a.Question = decodeQuestionHeader(payload)
		return a, nil
	},
	encode: func(op Opcode, b Body) ([]byte, error) {
		a, ok := b.(*Action)
		if !ok {
			return nil, fmt.Errorf("opcode %s cannot encode body of type %T", op, b)
		}
		out := appendQuestionHeader(nil, &a.Question)
		if a.QuestionConfig != nil {
			var cfg [2]byte
			put16(cfg[:], uint16(*a.QuestionConfig))
			out = append(out, cfg[:]...)
		}
		return out, nil
	},
}

var refShape = shape{
	// question(11) [form_id(2) [question_id(2) [formset_guid(16) [device_path(2)]]]]
	decode: func(h OpHeader, payload []byte) (Body, error) {
		switch len(payload) {
		case questionHeaderLen, questionHeaderLen + 2, questionHeaderLen + 4,
			questionHeaderLen + 20, questionHeaderLen + 22:
		default:
			return nil, fmt.Errorf("%w: %s payload is %d bytes, not a known Ref shape",
				ErrLengthMismatch, h.Op, len(payload))
		}
		r := &Ref{Question: decodeQuestionHeader(payload)}
		rest := payload[questionHeaderLen:]
		if len(rest) >= 2 {
			id := FormID(le16(rest))
			r.FormID = &id
			rest = rest[2:]
		}
		if len(rest) >= 2 {
			id := QuestionID(le16(rest))
			r.QuestionID = &id
			rest = rest[2:]
		}
		if len(rest) >= guid.Size {
			g, err := guid.FromBytes(rest)
			if err != nil {
				return nil, err
			}
			r.FormSetGUID = g
			rest = rest[guid.Size:]
		}
		if len(rest) >= 2 {
			id := StringID(le16(rest))
			r.DevicePath = &id
		}
		return r, nil
	},
	encode: func(op Opcode, b Body) ([]byte, error) {
		r, ok := b.(*Ref)
		if !ok {
			return nil, fmt.Errorf("opcode %s cannot encode body of type %T", op, b)
		}
		// The optional fields are positional; each one requires all
		// the fields before it.
		switch {
		case r.DevicePath != nil && r.FormSetGUID == nil,
			r.FormSetGUID != nil && r.QuestionID == nil,
			r.QuestionID != nil && r.FormID == nil:
			return nil, fmt.Errorf("%w: %s optional fields must be set front to back",
				ErrLengthMismatch, op)
		}
		out := appendQuestionHeader(nil, &r.Question)
		if r.FormID != nil {
			var f [2]byte
			put16(f[:], uint16(*r.FormID))
			out = append(out, f[:]...)
		}
		if r.QuestionID != nil {
			var q [2]byte
			put16(q[:], uint16(*r.QuestionID))
			out = append(out, q[:]...)
		}
		if r.FormSetGUID != nil {
			out = append(out, r.FormSetGUID[:]...)
		}
		if r.DevicePath != nil {
			var d [2]byte
			put16(d[:], uint16(*r.DevicePath))
			out = append(out, d[:]...)
		}
		return out, nil
	},
}

var questionRef3Shape = shape{
	// [device_path(2) [guid(16)]]
	decode: func(h OpHeader, payload []byte) (Body, error) {
		q := &QuestionRef3{}
		switch len(payload) {
		case 0:
		case 2, 2 + guid.Size:
			id := StringID(le16(payload))
			q.DevicePath = &id
			if len(payload) > 2 {
				g, err := guid.FromBytes(payload[2:])
				if err != nil {
					return nil, err
				}
				q.GUID = g
			}
		default:
			return nil, fmt.Errorf("%w: %s payload is %d bytes, not a known QuestionRef3 shape",
				ErrLengthMismatch, h.Op, len(payload))
		}
		return q, nil
	},
	encode: func(op Opcode, b Body) ([]byte, error) {
		q, ok := b.(*QuestionRef3)
		if !ok {
			return nil, fmt.Errorf("opcode %s cannot encode body of type %T", op, b)
		}
		if q.GUID != nil && q.DevicePath == nil {
			return nil, fmt.Errorf("%w: %s GUID requires DevicePath", ErrLengthMismatch, op)
		}
		var out []byte
		if q.DevicePath != nil {
			var d [2]byte
			put16(d[:], uint16(*q.DevicePath))
			out = append(out, d[:]...)
		}
		if q.GUID != nil {
			out = append(out, q.GUID[:]...)
		}
		return out, nil
	},
}

var formSetShape = shape{
	// guid(16) title(2) help(2) flags(1) class_guid(16)*
	decode: func(h OpHeader, payload []byte) (Body, error) {
		const fixed = guid.Size + 5
		if len(payload) < fixed {
			return nil, fmt.Errorf("%w: %s payload is %d bytes, shape wants at least %d",
				ErrLengthMismatch, h.Op, len(payload), fixed)
		}
		g, err := guid.FromBytes(payload)
		if err != nil {
			return nil, err
		}
		fs := &FormSet{
			GUID:  *g,
			Title: StringID(le16(payload[guid.Size:])),
			Help:  StringID(le16(payload[guid.Size+2:])),
			Flags: payload[guid.Size+4],
		}
		tail := payload[fixed:]
		if len(tail)%guid.Size != 0 {
			return nil, fmt.Errorf("%w: %s class GUID list is %d bytes, not a multiple of %d",
				ErrTruncatedTail, h.Op, len(tail), guid.Size)
		}
		for len(tail) > 0 {
			cg, err := guid.FromBytes(tail)
			if err != nil {
				return nil, err
			}
			fs.ClassGUID = append(fs.ClassGUID, *cg)
			tail = tail[guid.Size:]
		}
		return fs, nil
	},
	encode: func(op Opcode, b Body) ([]byte, error) {
		fs, ok := b.(*FormSet)
		if !ok {
			return nil, fmt.Errorf("opcode %s cannot encode body of type %T", op, b)
		}
		out := append([]byte(nil), fs.GUID[:]...)
		var f [5]byte
		put16(f[0:], uint16(fs.Title))
		put16(f[2:], uint16(fs.Help))
		f[4] = fs.Flags
		out = append(out, f[:]...)
		for i := range fs.ClassGUID {
			out = append(out, fs.ClassGUID[i][:]...)
		}
		return out, nil
	},
}

var eqIDValListShape = shape{
	// question_id(2) list_length(2) value(2)*
	decode: func(h OpHeader, payload []byte) (Body, error) {
		if len(payload) < 4 {
			return nil, fmt.Errorf("%w: %s payload is %d bytes, shape wants at least 4",
				ErrLengthMismatch, h.Op, len(payload))
		}
		count := int(le16(payload[2:]))
		if 4+2*count != len(payload) {
			return nil, fmt.Errorf("%w: %s declares %d list entries but carries %d tail bytes",
				ErrTruncatedTail, h.Op, count, len(payload)-4)
		}
		l := &EqIDValList{QuestionID: QuestionID(le16(payload))}
		for i := 0; i < count; i++ {
			l.Values = append(l.Values, le16(payload[4+2*i:]))
		}
		return l, nil
	},
	encode: func(op Opcode, b Body) ([]byte, error) {
		l, ok := b.(*EqIDValList)
		if !ok {
			return nil, fmt.Errorf("opcode %s cannot encode body of type %T", op, b)
		}
		out := make([]byte, 4+2*len(l.Values))
		put16(out, uint16(l.QuestionID))
		put16(out[2:], uint16(len(l.Values)))
		for i, v := range l.Values {
			put16(out[4+2*i:], v)
		}
		return out, nil
	},
}

var varstoreShape = shape{
	// guid(16) varstore_id(2) size(2) name[]
	decode: func(h OpHeader, payload []byte) (Body, error) {
		const fixed = guid.Size + 4
		if len(payload) < fixed {
			return nil, fmt.Errorf("%w: %s payload is %d bytes, shape wants at least %d",
				ErrLengthMismatch, h.Op, len(payload), fixed)
		}
		g, err := guid.FromBytes(payload)
		if err != nil {
			return nil, err
		}
		name, err := readASCIIName(h.Op, payload[fixed:])
		if err != nil {
			return nil, err
		}
		return &Varstore{
			GUID:       *g,
			VarstoreID: VarstoreID(le16(payload[guid.Size:])),
			Size:       le16(payload[guid.Size+2:]),
			Name:       name,
		}, nil
	},
	encode: func(op Opcode, b Body) ([]byte, error) {
		v, ok := b.(*Varstore)
		if !ok {
			return nil, fmt.Errorf("opcode %s cannot encode body of type %T", op, b)
		}
		out := append([]byte(nil), v.GUID[:]...)
		var f [4]byte
		put16(f[0:], uint16(v.VarstoreID))
		put16(f[2:], v.Size)
		out = append(out, f[:]...)
		out = append(out, v.Name...)
		return append(out, 0), nil
	},
}

var varstoreEFIShape = shape{
	// varstore_id(2) guid(16) attributes(4) size(2) name[]
	decode: func(h OpHeader, payload []byte) (Body, error) {
		const fixed = guid.Size + 8
		if len(payload) < fixed {
			return nil, fmt.Errorf("%w: %s payload is %d bytes, shape wants at least %d",
				ErrLengthMismatch, h.Op, len(payload), fixed)
		}
		g, err := guid.FromBytes(payload[2:])
		if err != nil {
			return nil, err
		}
		name, err := readASCIIName(h.Op, payload[fixed:])
		if err != nil {
			return nil, err
		}
		return &VarstoreEFI{
			VarstoreID: VarstoreID(le16(payload)),
			GUID:       *g,
			Attributes: binary.LittleEndian.Uint32(payload[2+guid.Size:]),
			Size:       le16(payload[6+guid.Size:]),
			Name:       name,
		}, nil
	},
	encode: func(op Opcode, b Body) ([]byte, error) {
		v, ok := b.(*VarstoreEFI)
		if !ok {
			return nil, fmt.Errorf("opcode %s cannot encode body of type %T", op, b)
		}
		out := make([]byte, 2, guid.Size+8+len(v.Name)+1)
		put16(out, uint16(v.VarstoreID))
		out = append(out, v.GUID[:]...)
		var f [6]byte
		binary.LittleEndian.PutUint32(f[0:], v.Attributes)
		put16(f[4:], v.Size)
		out = append(out, f[:]...)
		out = append(out, v.Name...)
		return append(out, 0), nil
	},
}

var formMapShape = shape{
	// form_id(2) { method_title(2) method_identifier(16) }*
	decode: func(h OpHeader, payload []byte) (Body, error) {
		const methodLen = 2 + guid.Size
		if len(payload) < 2 {
			return nil, fmt.Errorf("%w: %s payload is %d bytes, shape wants at least 2",
				ErrLengthMismatch, h.Op, len(payload))
		}
		tail := payload[2:]
		if len(tail)%methodLen != 0 {
			return nil, fmt.Errorf("%w: %s method list is %d bytes, not a multiple of %d",
				ErrTruncatedTail, h.Op, len(tail), methodLen)
		}
		fm := &FormMap{FormID: FormID(le16(payload))}
		for len(tail) > 0 {
			g, err := guid.FromBytes(tail[2:])
			if err != nil {
				return nil, err
			}
			fm.Methods = append(fm.Methods, FormMapMethod{
				MethodTitle:      StringID(le16(tail)),
				MethodIdentifier: *g,
			})
			tail = tail[methodLen:]
		}
		return fm, nil
	},
	encode: func(op Opcode, b Body) ([]byte, error) {
		fm, ok := b.(*FormMap)
		if !ok {
			return nil, fmt.Errorf("opcode %s cannot encode body of type %T", op, b)
		}
		out := make([]byte, 2)
		put16(out, uint16(fm.FormID))
		for i := range fm.Methods {
			var t [2]byte
			put16(t[:], uint16(fm.Methods[i].MethodTitle))
			out = append(out, t[:]...)
			out = append(out, fm.Methods[i].MethodIdentifier[:]...)
		}
		return out, nil
	},
}

var guidExtShape = shape{
	// guid(16) data[]
	decode: func(h OpHeader, payload []byte) (Body, error) {
		if len(payload) < guid.Size {
			return nil, fmt.Errorf("%w: %s payload is %d bytes, shape wants at least %d",
				ErrLengthMismatch, h.Op, len(payload), guid.Size)
		}
		g, err := guid.FromBytes(payload)
		if err != nil {
			return nil, err
		}
		e := &GUIDExt{GUID: *g}
		if rest := payload[guid.Size:]; len(rest) > 0 {
			e.Data = append([]byte(nil), rest...)
		}
		return e, nil
	},
	encode: func(op Opcode, b Body) ([]byte, error) {
		e, ok := b.(*GUIDExt)
		if !ok {
			return nil, fmt.Errorf("opcode %s cannot encode body of type %T", op, b)
		}
		return append(append([]byte(nil), e.GUID[:]...), e.Data...), nil
	},
}

// shapes is the opcode catalog. Opcodes absent from the map decode as
// Opaque records.
var shapes = map[Opcode]shape{
	OpForm:              plainShape(func() Body { return new(Form) }),
	OpSubtitle:          plainShape(func() Body { return new(Subtitle) }),
	OpText:              plainShape(func() Body { return new(Text) }),
	OpImage:             plainShape(func() Body { return new(Image) }),
	OpOneOf:             plainShape(func() Body { return new(OneOf) }),
	OpCheckbox:          plainShape(func() Body { return new(Checkbox) }),
	OpNumeric:           plainShape(func() Body { return new(Numeric) }),
	OpPassword:          plainShape(func() Body { return new(Password) }),
	OpOneOfOption:       oneOfOptionShape,
	OpSuppressIf:        bodyless,
	OpLocked:            bodyless,
	OpAction:            actionShape,
	OpResetButton:       plainShape(func() Body { return new(ResetButton) }),
	OpFormSet:           formSetShape,
	OpRef:               refShape,
	OpNoSubmitIf:        plainShape(func() Body { return new(NoSubmitIf) }),
	OpInconsistentIf:    plainShape(func() Body { return new(InconsistentIf) }),
	OpEqIDVal:           plainShape(func() Body { return new(EqIDVal) }),
	OpEqIDID:            plainShape(func() Body { return new(EqIDID) }),
	OpEqIDValList:       eqIDValListShape,
	OpAnd:               bodyless,
	OpOr:                bodyless,
	OpNot:               bodyless,
	OpRule:              plainShape(func() Body { return new(Rule) }),
	OpGrayOutIf:         bodyless,
	OpDate:              plainShape(func() Body { return new(Date) }),
	OpTime:              plainShape(func() Body { return new(Time) }),
	OpString:            plainShape(func() Body { return new(String) }),
	OpRefresh:           plainShape(func() Body { return new(Refresh) }),
	OpDisableIf:         bodyless,
	OpAnimation:         plainShape(func() Body { return new(Animation) }),
	OpToLower:           bodyless,
	OpToUpper:           bodyless,
	OpMap:               bodyless,
	OpOrderedList:       plainShape(func() Body { return new(OrderedList) }),
	OpVarstore:          varstoreShape,
	OpVarstoreNameValue: plainShape(func() Body { return new(VarstoreNameValue) }),
	OpVarstoreEFI:       varstoreEFIShape,
	OpVarstoreDevice:    plainShape(func() Body { return new(VarstoreDevice) }),
	OpVersion:           bodyless,
	OpEnd:               bodyless,
	OpMatch:             bodyless,
	OpGet:               plainShape(func() Body { return new(Get) }),
	OpSet:               plainShape(func() Body { return new(Set) }),
	OpRead:              bodyless,
	OpWrite:             bodyless,
	OpEqual:             bodyless,
	OpNotEqual:          bodyless,
	OpGreaterThan:       bodyless,
	OpGreaterEqual:      bodyless,
	OpLessThan:          bodyless,
	OpLessEqual:         bodyless,
	OpBitwiseAnd:        bodyless,
	OpBitwiseOr:         bodyless,
	OpBitwiseNot:        bodyless,
	OpShiftLeft:         bodyless,
	OpShiftRight:        bodyless,
	OpAdd:               bodyless,
	OpSubtract:          bodyless,
	OpMultiply:          bodyless,
	OpDivide:            bodyless,
	OpModulo:            bodyless,
	OpRuleRef:           plainShape(func() Body { return new(RuleRef) }),
	OpQuestionRef1:      plainShape(func() Body { return new(QuestionRef1) }),
	OpQuestionRef2:      bodyless,
	OpUint8:             plainShape(func() Body { return new(Uint8) }),
	OpUint16:            plainShape(func() Body { return new(Uint16) }),
	OpUint32:            plainShape(func() Body { return new(Uint32) }),
	OpUint64:            plainShape(func() Body { return new(Uint64) }),
	OpTrue:              bodyless,
	OpFalse:             bodyless,
	OpToUint:            bodyless,
	OpToString:          plainShape(func() Body { return new(ToString) }),
	OpToBoolean:         bodyless,
	OpMid:               bodyless,
	OpFind:              plainShape(func() Body { return new(Find) }),
	OpToken:             bodyless,
	OpStringRef1:        plainShape(func() Body { return new(StringRef1) }),
	OpStringRef2:        bodyless,
	OpConditional:       bodyless,
	OpQuestionRef3:      questionRef3Shape,
	OpZero:              bodyless,
	OpOne:               bodyless,
	OpOnes:              bodyless,
	OpUndefined:         bodyless,
	OpLength:            bodyless,
	OpDup:               bodyless,
	OpThis:              bodyless,
	OpSpan:              plainShape(func() Body { return new(Span) }),
	OpValue:             bodyless,
	OpDefault:           defaultShape,
	OpDefaultStore:      plainShape(func() Body { return new(DefaultStore) }),
	OpFormMap:           formMapShape,
	OpCatenate:          bodyless,
	OpGUID:              guidExtShape,
	OpSecurity:          plainShape(func() Body { return new(Security) }),
	OpModalTag:          bodyless,
	OpRefreshID:         plainShape(func() Body { return new(RefreshID) }),
	OpWarningIf:         plainShape(func() Body { return new(WarningIf) }),
	OpMatch2:            plainShape(func() Body { return new(Match2) }),
}
