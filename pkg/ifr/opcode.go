// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

import (
	"encoding/json"
	"fmt"
)

// Opcode identifies the shape of one IFR record. The values are the
// EFI_IFR_*_OP numbers from the UEFI specification and are part of the
// wire contract.
type Opcode uint8

// IFR opcodes.
const (
	OpForm              Opcode = 0x01
	OpSubtitle          Opcode = 0x02
	OpText              Opcode = 0x03
	OpImage             Opcode = 0x04
	OpOneOf             Opcode = 0x05
	OpCheckbox          Opcode = 0x06
	OpNumeric           Opcode = 0x07
	OpPassword          Opcode = 0x08
	OpOneOfOption       Opcode = 0x09
	OpSuppressIf        Opcode = 0x0A
	OpLocked            Opcode = 0x0B
	OpAction            Opcode = 0x0C
	OpResetButton       Opcode = 0x0D
	OpFormSet           Opcode = 0x0E
	OpRef               Opcode = 0x0F
	OpNoSubmitIf        Opcode = 0x10
	OpInconsistentIf    Opcode = 0x11
	OpEqIDVal           Opcode = 0x12
	OpEqIDID            Opcode = 0x13
	OpEqIDValList       Opcode = 0x14
	OpAnd               Opcode = 0x15
	OpOr                Opcode = 0x16
	OpNot               Opcode = 0x17
	OpRule              Opcode = 0x18
	OpGrayOutIf         Opcode = 0x19
	OpDate              Opcode = 0x1A
	OpTime              Opcode = 0x1B
	OpString            Opcode = 0x1C
	OpRefresh           Opcode = 0x1D
	OpDisableIf         Opcode = 0x1E
	OpAnimation         Opcode = 0x1F
	OpToLower           Opcode = 0x20
	OpToUpper           Opcode = 0x21
	OpMap               Opcode = 0x22
	OpOrderedList       Opcode = 0x23
	OpVarstore          Opcode = 0x24
	OpVarstoreNameValue Opcode = 0x25
	OpVarstoreEFI       Opcode = 0x26
	OpVarstoreDevice    Opcode = 0x27
	OpVersion           Opcode = 0x28
	OpEnd               Opcode = 0x29
	OpMatch             Opcode = 0x2A
	OpGet               Opcode = 0x2B
	OpSet               Opcode = 0x2C
	OpRead              Opcode = 0x2D
	OpWrite             Opcode = 0x2E
	OpEqual             Opcode = 0x2F
	OpNotEqual          Opcode = 0x30
	OpGreaterThan       Opcode = 0x31
	OpGreaterEqual      Opcode = 0x32
	OpLessThan          Opcode = 0x33
	OpLessEqual         Opcode = 0x34
	OpBitwiseAnd        Opcode = 0x35
	OpBitwiseOr         Opcode = 0x36
	OpBitwiseNot        Opcode = 0x37
	OpShiftLeft         Opcode = 0x38
	OpShiftRight        Opcode = 0x39
	OpAdd               Opcode = 0x3A
	OpSubtract          Opcode = 0x3B
	OpMultiply          Opcode = 0x3C
	OpDivide            Opcode = 0x3D
	OpModulo            Opcode = 0x3E
	OpRuleRef           Opcode = 0x3F
	OpQuestionRef1      Opcode = 0x40
	OpQuestionRef2      Opcode = 0x41
	OpUint8             Opcode = 0x42
	OpUint16            Opcode = 0x43
	OpUint32            Opcode = 0x44
	OpUint64            Opcode = 0x45
	OpTrue              Opcode = 0x46
	OpFalse             Opcode = 0x47
	OpToUint            Opcode = 0x48
	OpToString          Opcode = 0x49
	OpToBoolean         Opcode = 0x4A
	OpMid               Opcode = 0x4B
	OpFind              Opcode = 0x4C
	OpToken             Opcode = 0x4D
	OpStringRef1        Opcode = 0x4E
	OpStringRef2        Opcode = 0x4F
	OpConditional       Opcode = 0x50
	OpQuestionRef3      Opcode = 0x51
	OpZero              Opcode = 0x52
	OpOne               Opcode = 0x53
	OpOnes              Opcode = 0x54
	OpUndefined         Opcode = 0x55
	OpLength            Opcode = 0x56
	OpDup               Opcode = 0x57
	OpThis              Opcode = 0x58
	OpSpan              Opcode = 0x59
	OpValue             Opcode = 0x5A
	OpDefault           Opcode = 0x5B
	OpDefaultStore      Opcode = 0x5C
	OpFormMap           Opcode = 0x5D
	OpCatenate          Opcode = 0x5E
	OpGUID              Opcode = 0x5F
	OpSecurity          Opcode = 0x60
	OpModalTag          Opcode = 0x61
	OpRefreshID         Opcode = 0x62
	OpWarningIf         Opcode = 0x63
	OpMatch2            Opcode = 0x64
)

var opcodeNames = map[Opcode]string{
	OpForm:              "Form",
	OpSubtitle:          "Subtitle",
	OpText:              "Text",
	OpImage:             "Image",
	OpOneOf:             "OneOf",
	OpCheckbox:          "Checkbox",
	OpNumeric:           "Numeric",
	OpPassword:          "Password",
	OpOneOfOption:       "OneOfOption",
	OpSuppressIf:        "SuppressIf",
	OpLocked:            "Locked",
	OpAction:            "Action",
	OpResetButton:       "ResetButton",
	OpFormSet:           "FormSet",
	OpRef:               "Ref",
	OpNoSubmitIf:        "NoSubmitIf",
	OpInconsistentIf:    "InconsistentIf",
	OpEqIDVal:           "EqIdVal",
	OpEqIDID:            "EqIdId",
	OpEqIDValList:       "EqIdValList",
	OpAnd:               "And",
	OpOr:                "Or",
	OpNot:               "Not",
	OpRule:              "Rule",
	OpGrayOutIf:         "GrayOutIf",
	OpDate:              "Date",
	OpTime:              "Time",
	OpString:            "String",
	OpRefresh:           "Refresh",
	OpDisableIf:         "DisableIf",
	OpAnimation:         "Animation",
	OpToLower:           "ToLower",
	OpToUpper:           "ToUpper",
	OpMap:               "Map",
	OpOrderedList:       "OrderedList",
	OpVarstore:          "Varstore",
	OpVarstoreNameValue: "VarstoreNameValue",
	OpVarstoreEFI:       "VarstoreEfi",
	OpVarstoreDevice:    "VarstoreDevice",
	OpVersion:           "Version",
	OpEnd:               "End",
	OpMatch:             "Match",
	OpGet:               "Get",
	OpSet:               "Set",
	OpRead:              "Read",
	OpWrite:             "Write",
	OpEqual:             "Equal",
	OpNotEqual:          "NotEqual",
	OpGreaterThan:       "GreaterThan",
	OpGreaterEqual:      "GreaterEqual",
	OpLessThan:          "LessThan",
	OpLessEqual:         "LessEqual",
	OpBitwiseAnd:        "BitwiseAnd",
	OpBitwiseOr:         "BitwiseOr",
	OpBitwiseNot:        "BitwiseNot",
	OpShiftLeft:         "ShiftLeft",
	OpShiftRight:        "ShiftRight",
	OpAdd:               "Add",
	OpSubtract:          "Subtract",
	OpMultiply:          "Multiply",
	OpDivide:            "Divide",
	OpModulo:            "Modulo",
	OpRuleRef:           "RuleRef",
	OpQuestionRef1:      "QuestionRef1",
	OpQuestionRef2:      "QuestionRef2",
	OpUint8:             "Uint8",
	OpUint16:            "Uint16",
	OpUint32:            "Uint32",
	OpUint64:            "Uint64",
	OpTrue:              "True",
	OpFalse:             "False",
	OpToUint:            "ToUint",
	OpToString:          "ToString",
	OpToBoolean:         "ToBoolean",
	OpMid:               "Mid",
	OpFind:              "Find",
	OpToken:             "Token",
	OpStringRef1:        "StringRef1",
	OpStringRef2:        "StringRef2",
	OpConditional:       "Conditional",
	OpQuestionRef3:      "QuestionRef3",
	OpZero:              "Zero",
	OpOne:               "One",
	OpOnes:              "Ones",
	OpUndefined:         "Undefined",
	OpLength:            "Length",
	OpDup:               "Dup",
	OpThis:              "This",
	OpSpan:              "Span",
	OpValue:             "Value",
	OpDefault:           "Default",
	OpDefaultStore:      "DefaultStore",
	OpFormMap:           "FormMap",
	OpCatenate:          "Catenate",
	OpGUID:              "Guid",
	OpSecurity:          "Security",
	OpModalTag:          "ModalTag",
	OpRefreshID:         "RefreshId",
	OpWarningIf:         "WarningIf",
	OpMatch2:            "Match2",
}

func (o Opcode) String() string {
	if s, ok := opcodeNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Unknown(%#02x)", uint8(o))
}

// MarshalJSON renders the opcode by name.
func (o Opcode) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// IsKnown reports whether the opcode has a shape in the catalog.
// Unknown opcodes still decode, as opaque records.
func (o Opcode) IsKnown() bool {
	_, ok := opcodeNames[o]
	return ok
}
