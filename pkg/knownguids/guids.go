// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package knownguids maps the GUIDs that commonly show up in forms
// data to their English names.
package knownguids

import "github.com/linuxboot/ifrkit/pkg/guid"

// GUIDs is a mapping from a GUID to its name.
var GUIDs = map[guid.GUID]string{
	*guid.MustParse("00000000-0000-0000-0000-000000000000"): "Zero",

	// HII protocol and database GUIDs.
	*guid.MustParse("EF9FC172-A1B2-4693-B327-6D32FC416042"): "EfiHiiDatabaseProtocol",
	*guid.MustParse("0FD96974-23AA-4CDC-B9CB-98D17750322A"): "EfiHiiStringProtocol",
	*guid.MustParse("587E72D7-CC50-4F79-8209-CA291FC1A10F"): "EfiHiiConfigRoutingProtocol",
	*guid.MustParse("330D4706-F2A0-4E4F-A369-B66FA8D54385"): "EfiHiiConfigAccessProtocol",
	*guid.MustParse("31A6406A-6BDF-4E46-B2A2-EBAA89C40920"): "EfiHiiImageProtocol",
	*guid.MustParse("1A1241E6-8F19-41A9-BC0E-E8EF39E06546"): "EfiHiiImageExProtocol",

	// Formset class GUIDs.
	*guid.MustParse("3BD2F4EC-E524-46E4-A9D8-510117425562"): "EfiHiiStandardFormGuid",
	*guid.MustParse("93039971-8545-4B04-B45E-32EB8326040E"): "EfiHiiPlatformSetupFormsetGuid",
	*guid.MustParse("F22FC20C-8CF4-45EB-8E06-AD4E50B95DD3"): "EfiHiiDriverHealthFormsetGuid",
	*guid.MustParse("337F4407-5AEE-4B83-B2A7-4EADCA3088CD"): "EfiHiiUserCredentialFormsetGuid",
	*guid.MustParse("790217BD-BECF-485B-9170-5FF711318B27"): "EfiHiiRestStyleFormsetGuid",

	// Vendor extension GUIDs carried by EFI_IFR_GUID records.
	*guid.MustParse("0F0B1735-87A0-4193-B266-538C38AF48CE"): "EfiIfrTianoGuid",
	*guid.MustParse("31CA5D1A-D511-4931-B782-AE6B2B178CD7"): "EfiIfrFrameworkGuid",

	// GUIDed sections forms packages are commonly wrapped in.
	*guid.MustParse("EE4E5898-3914-4259-9D6E-DC7BD79403CF"): "LzmaCustomDecompress",
	*guid.MustParse("D42AE6BD-1352-4BFB-909A-CA72A6EAE889"): "LzmaF86CustomDecompress",
	*guid.MustParse("FC1BCDB0-7D31-49AA-936A-A4600D9DD083"): "Crc32GuidedSectionExtraction",
}
