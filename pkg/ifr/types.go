// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ifr

// The 16-bit handles below are unique within one package and opaque to
// this codec. Resolving them to live data (strings, storage, forms) is
// the job of the hosting HII database.

// QuestionID identifies a question within a form set.
type QuestionID uint16

// VarstoreID identifies a variable store within a form set.
type VarstoreID uint16

// FormID identifies a form within a form set.
type FormID uint16

// StringID identifies a string in the package list's string packages.
type StringID uint16

// DefaultID identifies a default store.
type DefaultID uint16

// AnimationID identifies an animation in an animation package.
type AnimationID uint16

// ImageID identifies an image in an image package.
type ImageID uint16

// HiiDate is the calendar value carried by a date question default.
type HiiDate struct {
	Year  uint16
	Month uint8
	Day   uint8
}

// HiiTime is the wall-clock value carried by a time question default.
type HiiTime struct {
	Hour   uint8
	Minute uint8
	Second uint8
}

// QuestionFlags holds the EFI_IFR_FLAG_* bits of a question header.
type QuestionFlags uint8

// Question flag bits.
const (
	FlagReadOnly          QuestionFlags = 1 << 0
	FlagCallback          QuestionFlags = 1 << 2
	FlagResetRequired     QuestionFlags = 1 << 4
	FlagRestStyle         QuestionFlags = 1 << 5
	FlagReconnectRequired QuestionFlags = 1 << 6
	FlagOptionsOnly       QuestionFlags = 1 << 7
)

// Checkbox flags.
const (
	CheckboxDefault    uint8 = 0x01
	CheckboxDefaultMfg uint8 = 0x02
)

// Date question flags.
const (
	DateYearSuppress  uint8 = 0x01
	DateMonthSuppress uint8 = 0x02
	DateDaySuppress   uint8 = 0x04
	DateStorageMask   uint8 = 0x30
	DateStorageNormal uint8 = 0x00
	DateStorageTime   uint8 = 0x10
	DateStorageWakeup uint8 = 0x20
)

// Find format flags.
const (
	FindCaseSensitive   uint8 = 0x00
	FindCaseInsensitive uint8 = 0x01
)

// Numeric and one-of flags. The low bits select the width of the
// min/max/step fields.
const (
	NumericSizeMask uint8 = 0x03
	NumericSize1    uint8 = 0x00
	NumericSize2    uint8 = 0x01
	NumericSize4    uint8 = 0x02
	NumericSize8    uint8 = 0x03
)

// StatementHeader is the 4-byte header shared by all statements.
type StatementHeader struct {
	Prompt StringID
	Help   StringID
}

// QuestionHeader is the 11-byte header shared by all questions. It is
// the single source of truth for that layout; every question shape
// embeds it.
type QuestionHeader struct {
	Statement    StatementHeader
	QuestionID   QuestionID
	VarstoreID   VarstoreID
	VarstoreInfo uint16
	Flags        QuestionFlags
}

// VarName views VarstoreInfo as a name string ID. Which view applies
// depends on the kind of store VarstoreID names, known only to the
// hosting runtime.
func (q *QuestionHeader) VarName() StringID {
	return StringID(q.VarstoreInfo)
}

// VarOffset views VarstoreInfo as a byte offset into a buffer store.
func (q *QuestionHeader) VarOffset() uint16 {
	return q.VarstoreInfo
}
