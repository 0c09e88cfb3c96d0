// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package knownguids

import (
	"testing"

	"github.com/linuxboot/ifrkit/pkg/guid"
	"github.com/stretchr/testify/assert"
)

func TestKnownGUIDs(t *testing.T) {
	name, ok := GUIDs[*guid.MustParse("93039971-8545-4B04-B45E-32EB8326040E")]
	assert.True(t, ok)
	assert.Equal(t, "EfiHiiPlatformSetupFormsetGuid", name)

	_, ok = GUIDs[*guid.MustParse(guid.Example)]
	assert.False(t, ok)
}

func TestNoDuplicateNames(t *testing.T) {
	seen := map[string]guid.GUID{}
	for g, name := range GUIDs {
		if prev, ok := seen[name]; ok {
			t.Errorf("name %q used by both %v and %v", name, prev, g)
		}
		seen[name] = g
	}
}
