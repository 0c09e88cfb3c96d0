// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visitors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	l := sampleList(t)

	count := &Count{}
	require.NoError(t, count.Run(l))

	assert.Equal(t, 1, count.OpcodeCount["FormSet"])
	assert.Equal(t, 1, count.OpcodeCount["Form"])
	assert.Equal(t, 1, count.OpcodeCount["Varstore"])
	assert.Equal(t, 1, count.OpcodeCount["Checkbox"])
	assert.Equal(t, 1, count.PackageTypeCount["FORMS"])
	assert.Equal(t, 1, count.PackageTypeCount["END"])
}
