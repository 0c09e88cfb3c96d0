// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

import (
	"encoding/binary"

	"github.com/linuxboot/ifrkit/pkg/guid"
)

// One body type per opcode, each carrying only its own fields. The
// layouts mirror the EFI_IFR_* structures; all multi-byte fields are
// little-endian and packed. Shapes made purely of fixed-width fields
// go through encoding/binary; shapes with a tagged value, a variable
// tail or a length-dependent variant have hand-written codecs in
// catalog.go.

// MinMaxStepData is the 24-byte min/max/step region of numeric and
// one-of questions. Its interpretation depends on the NumericSize
// bits of the question's flags, so it is kept raw with accessors per
// width.
type MinMaxStepData [24]byte

// Range8 reads the region as three uint8 fields.
func (d *MinMaxStepData) Range8() (min, max, step uint8) {
	return d[0], d[1], d[2]
}

// Range16 reads the region as three uint16 fields.
func (d *MinMaxStepData) Range16() (min, max, step uint16) {
	return binary.LittleEndian.Uint16(d[0:]),
		binary.LittleEndian.Uint16(d[2:]),
		binary.LittleEndian.Uint16(d[4:])
}

// Range32 reads the region as three uint32 fields.
func (d *MinMaxStepData) Range32() (min, max, step uint32) {
	return binary.LittleEndian.Uint32(d[0:]),
		binary.LittleEndian.Uint32(d[4:]),
		binary.LittleEndian.Uint32(d[8:])
}

// Range64 reads the region as three uint64 fields.
func (d *MinMaxStepData) Range64() (min, max, step uint64) {
	return binary.LittleEndian.Uint64(d[0:]),
		binary.LittleEndian.Uint64(d[8:]),
		binary.LittleEndian.Uint64(d[16:])
}

// MinMaxStep16 builds a region holding uint16 bounds.
func MinMaxStep16(min, max, step uint16) MinMaxStepData {
	var d MinMaxStepData
	binary.LittleEndian.PutUint16(d[0:], min)
	binary.LittleEndian.PutUint16(d[2:], max)
	binary.LittleEndian.PutUint16(d[4:], step)
	return d
}

// MinMaxStep64 builds a region holding uint64 bounds.
func MinMaxStep64(min, max, step uint64) MinMaxStepData {
	var d MinMaxStepData
	binary.LittleEndian.PutUint64(d[0:], min)
	binary.LittleEndian.PutUint64(d[8:], max)
	binary.LittleEndian.PutUint64(d[16:], step)
	return d
}

// Form starts a form scope. EFI_IFR_FORM.
type Form struct {
	FormID FormID
	Title  StringID
}

// Subtitle is a non-interactive caption. EFI_IFR_SUBTITLE.
type Subtitle struct {
	Statement StatementHeader
	Flags     uint8
}

// Text is a static two-column text statement. EFI_IFR_TEXT.
type Text struct {
	Statement StatementHeader
	TextTwo   StringID
}

// Image attaches an image to the enclosing statement. EFI_IFR_IMAGE.
type Image struct {
	ID ImageID
}

// OneOf is a single-choice question. EFI_IFR_ONE_OF.
type OneOf struct {
	Question QuestionHeader
	Flags    uint8
	Data     MinMaxStepData
}

// Checkbox is a boolean question. EFI_IFR_CHECKBOX.
type Checkbox struct {
	Question QuestionHeader
	Flags    uint8
}

// Numeric is a numeric question. EFI_IFR_NUMERIC.
type Numeric struct {
	Question QuestionHeader
	Flags    uint8
	Data     MinMaxStepData
}

// Password is a password question. EFI_IFR_PASSWORD.
type Password struct {
	Question QuestionHeader
	MinSize  uint16
	MaxSize  uint16
}

// OneOfOption is one selectable option of a one-of or ordered-list
// question. EFI_IFR_ONE_OF_OPTION.
type OneOfOption struct {
	Option StringID
	Flags  uint8
	Value  TypeValue
}

// Action is a question that triggers a callback. EFI_IFR_ACTION;
// QuestionConfig is absent in the short EFI_IFR_ACTION_1 form.
type Action struct {
	Question       QuestionHeader
	QuestionConfig *StringID `json:",omitempty"`
}

// ResetButton restores defaults from a default store.
// EFI_IFR_RESET_BUTTON.
type ResetButton struct {
	Statement StatementHeader
	DefaultID DefaultID
}

// FormSet is the root record of a form package. EFI_IFR_FORM_SET.
type FormSet struct {
	GUID      guid.GUID
	Title     StringID
	Help      StringID
	Flags     uint8
	ClassGUID []guid.GUID `json:",omitempty"`
}

// Ref is a cross-reference question. One opcode covers five wire
// shapes (EFI_IFR_REF..EFI_IFR_REF4 plus the bare EFI_IFR_REF5);
// later fields require all earlier ones.
type Ref struct {
	Question    QuestionHeader
	FormID      *FormID     `json:",omitempty"`
	QuestionID  *QuestionID `json:",omitempty"`
	FormSetGUID *guid.GUID  `json:",omitempty"`
	DevicePath  *StringID   `json:",omitempty"`
}

// NoSubmitIf guards form submission. EFI_IFR_NO_SUBMIT_IF.
type NoSubmitIf struct {
	Error StringID
}

// InconsistentIf flags inconsistent values. EFI_IFR_INCONSISTENT_IF.
type InconsistentIf struct {
	Error StringID
}

// EqIDVal compares a question's value against a constant.
// EFI_IFR_EQ_ID_VAL.
type EqIDVal struct {
	QuestionID QuestionID
	Value      uint16
}

// EqIDID compares two questions' values. EFI_IFR_EQ_ID_ID.
type EqIDID struct {
	QuestionID1 QuestionID
	QuestionID2 QuestionID
}

// EqIDValList tests a question's value against a list.
// EFI_IFR_EQ_ID_VAL_LIST; the list length is explicit on the wire.
type EqIDValList struct {
	QuestionID QuestionID
	Values     []uint16
}

// Rule opens a named expression scope. EFI_IFR_RULE.
type Rule struct {
	RuleID uint8
}

// Date is a date question. EFI_IFR_DATE.
type Date struct {
	Question QuestionHeader
	Flags    uint8
}

// Time is a time question. EFI_IFR_TIME.
type Time struct {
	Question QuestionHeader
	Flags    uint8
}

// String is a string question. EFI_IFR_STRING.
type String struct {
	Question QuestionHeader
	MinSize  uint8
	MaxSize  uint8
	Flags    uint8
}

// Refresh sets a periodic refresh interval. EFI_IFR_REFRESH.
type Refresh struct {
	RefreshInterval uint8
}

// Animation attaches an animation to the enclosing statement.
// EFI_IFR_ANIMATION.
type Animation struct {
	ID AnimationID
}

// OrderedList is a reorderable set question. EFI_IFR_ORDERED_LIST.
type OrderedList struct {
	Question      QuestionHeader
	MaxContainers uint8
	Flags         uint8
}

// Varstore declares a buffer variable store. EFI_IFR_VARSTORE; the
// name is a NUL-terminated ASCII tail.
type Varstore struct {
	GUID       guid.GUID
	VarstoreID VarstoreID
	Size       uint16
	Name       string
}

// VarstoreNameValue declares a name/value variable store.
// EFI_IFR_VARSTORE_NAME_VALUE.
type VarstoreNameValue struct {
	VarstoreID VarstoreID
	GUID       guid.GUID
}

// VarstoreEFI declares an EFI variable store. EFI_IFR_VARSTORE_EFI.
type VarstoreEFI struct {
	VarstoreID VarstoreID
	GUID       guid.GUID
	Attributes uint32
	Size       uint16
	Name       string
}

// VarstoreDevice scopes varstores to a device path.
// EFI_IFR_VARSTORE_DEVICE.
type VarstoreDevice struct {
	DevicePath StringID
}

// Get pushes a storage value. EFI_IFR_GET.
type Get struct {
	VarstoreID   VarstoreID
	VarstoreInfo uint16
	ValueType    ValueType
}

// Set pops a value into storage. EFI_IFR_SET.
type Set struct {
	VarstoreID   VarstoreID
	VarstoreInfo uint16
	ValueType    ValueType
}

// RuleRef evaluates a named rule. EFI_IFR_RULE_REF.
type RuleRef struct {
	RuleID uint8
}

// QuestionRef1 pushes another question's value. EFI_IFR_QUESTION_REF1.
type QuestionRef1 struct {
	QuestionID QuestionID
}

// QuestionRef3 pushes a question's value by runtime reference.
// EFI_IFR_QUESTION_REF3 and its _2/_3 extensions; GUID requires
// DevicePath.
type QuestionRef3 struct {
	DevicePath *StringID  `json:",omitempty"`
	GUID       *guid.GUID `json:",omitempty"`
}

// Uint8 pushes a constant. EFI_IFR_UINT8.
type Uint8 struct {
	Value uint8
}

// Uint16 pushes a constant. EFI_IFR_UINT16.
type Uint16 struct {
	Value uint16
}

// Uint32 pushes a constant. EFI_IFR_UINT32.
type Uint32 struct {
	Value uint32
}

// Uint64 pushes a constant. EFI_IFR_UINT64.
type Uint64 struct {
	Value uint64
}

// ToString converts the top of stack to a string. EFI_IFR_TO_STRING.
type ToString struct {
	Format uint8
}

// Find searches within a string. EFI_IFR_FIND.
type Find struct {
	Format uint8
}

// StringRef1 pushes a string constant. EFI_IFR_STRING_REF1.
type StringRef1 struct {
	StringID StringID
}

// Span finds a span of characters. EFI_IFR_SPAN.
type Span struct {
	Flags uint8
}

// Default supplies a question default. EFI_IFR_DEFAULT.
type Default struct {
	DefaultID DefaultID
	Value     TypeValue
}

// DefaultStore names a default store. EFI_IFR_DEFAULTSTORE.
type DefaultStore struct {
	DefaultName StringID
	DefaultID   DefaultID
}

// FormMapMethod is one entry of a form map. EFI_IFR_FORM_MAP_METHOD.
type FormMapMethod struct {
	MethodTitle      StringID
	MethodIdentifier guid.GUID
}

// FormMap is a standards-mapped form. EFI_IFR_FORM_MAP; the method
// list fills the rest of the record.
type FormMap struct {
	FormID  FormID
	Methods []FormMapMethod `json:",omitempty"`
}

// GUIDExt is a vendor extension record. EFI_IFR_GUID; everything
// after the GUID is vendor-defined and kept raw.
type GUIDExt struct {
	GUID guid.GUID
	Data []byte `json:",omitempty"`
}

// Security gates visibility on setup permissions. EFI_IFR_SECURITY.
type Security struct {
	Permissions guid.GUID
}

// RefreshID refreshes on a cross-formset event group.
// EFI_IFR_REFRESH_ID.
type RefreshID struct {
	EventGroupID guid.GUID
}

// WarningIf warns without blocking submission. EFI_IFR_WARNING_IF.
type WarningIf struct {
	Warning StringID
	Timeout uint8
}

// Match2 applies a regex syntax to pattern matching. EFI_IFR_MATCH2.
type Match2 struct {
	SyntaxType guid.GUID
}

// Opaque carries a record whose opcode is not in the catalog. The
// payload is kept raw so the record survives a round trip; opcodes
// added to the format after this implementation are data, not errors.
type Opaque struct {
	Opcode Opcode
	Data   []byte `json:",omitempty"`
}

// Op implementations tie each body to its opcode.

func (*Form) Op() Opcode              { return OpForm }
func (*Subtitle) Op() Opcode          { return OpSubtitle }
func (*Text) Op() Opcode              { return OpText }
func (*Image) Op() Opcode             { return OpImage }
func (*OneOf) Op() Opcode             { return OpOneOf }
func (*Checkbox) Op() Opcode          { return OpCheckbox }
func (*Numeric) Op() Opcode           { return OpNumeric }
func (*Password) Op() Opcode          { return OpPassword }
func (*OneOfOption) Op() Opcode       { return OpOneOfOption }
func (*Action) Op() Opcode            { return OpAction }
func (*ResetButton) Op() Opcode       { return OpResetButton }
func (*FormSet) Op() Opcode           { return OpFormSet }
func (*Ref) Op() Opcode               { return OpRef }
func (*NoSubmitIf) Op() Opcode        { return OpNoSubmitIf }
func (*InconsistentIf) Op() Opcode    { return OpInconsistentIf }
func (*EqIDVal) Op() Opcode           { return OpEqIDVal }
func (*EqIDID) Op() Opcode            { return OpEqIDID }
func (*EqIDValList) Op() Opcode       { return OpEqIDValList }
func (*Rule) Op() Opcode              { return OpRule }
func (*Date) Op() Opcode              { return OpDate }
func (*Time) Op() Opcode              { return OpTime }
func (*String) Op() Opcode            { return OpString }
func (*Refresh) Op() Opcode           { return OpRefresh }
func (*Animation) Op() Opcode         { return OpAnimation }
func (*OrderedList) Op() Opcode       { return OpOrderedList }
func (*Varstore) Op() Opcode          { return OpVarstore }
func (*VarstoreNameValue) Op() Opcode { return OpVarstoreNameValue }
func (*VarstoreEFI) Op() Opcode       { return OpVarstoreEFI }
func (*VarstoreDevice) Op() Opcode    { return OpVarstoreDevice }
func (*Get) Op() Opcode               { return OpGet }
func (*Set) Op() Opcode               { return OpSet }
func (*RuleRef) Op() Opcode           { return OpRuleRef }
func (*QuestionRef1) Op() Opcode      { return OpQuestionRef1 }
func (*QuestionRef3) Op() Opcode      { return OpQuestionRef3 }
func (*Uint8) Op() Opcode             { return OpUint8 }
func (*Uint16) Op() Opcode            { return OpUint16 }
func (*Uint32) Op() Opcode            { return OpUint32 }
func (*Uint64) Op() Opcode            { return OpUint64 }
func (*ToString) Op() Opcode          { return OpToString }
func (*Find) Op() Opcode              { return OpFind }
func (*StringRef1) Op() Opcode        { return OpStringRef1 }
func (*Span) Op() Opcode              { return OpSpan }
func (*Default) Op() Opcode           { return OpDefault }
func (*DefaultStore) Op() Opcode      { return OpDefaultStore }
func (*FormMap) Op() Opcode           { return OpFormMap }
func (*GUIDExt) Op() Opcode           { return OpGUID }
func (*Security) Op() Opcode          { return OpSecurity }
func (*RefreshID) Op() Opcode         { return OpRefreshID }
func (*WarningIf) Op() Opcode         { return OpWarningIf }
func (*Match2) Op() Opcode            { return OpMatch2 }

// Op returns the record's own opcode, whatever it is.
func (o *Opaque) Op() Opcode { return o.Opcode }
