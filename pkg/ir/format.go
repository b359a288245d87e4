// Copyright 2026 PINS Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ir represents P4 match and action field values in their
// human-readable form and converts them from and to the P4Runtime byte-string
// encoding.
package ir

import (
	"errors"
	"fmt"

	"github.com/pinsproto/pins/pkg/annotation"
	"github.com/pinsproto/pins/pkg/bytestring"
	"github.com/pinsproto/pins/pkg/status"
)

// Format discriminates between the textual forms a field value can take.
type Format uint8

const (
	// FormatHexString renders the value as 0x followed by lower case hex
	// digits. It is the default format.
	FormatHexString Format = iota
	// FormatMac renders the value as a colon separated MAC address.
	FormatMac
	// FormatIpv4 renders the value as a dotted decimal IPv4 address.
	FormatIpv4
	// FormatIpv6 renders the value as a colon separated IPv6 address.
	FormatIpv6
	// FormatString carries the raw bytes of a field declared as an SDN
	// string.
	FormatString
	// FormatDec renders the value as an unsigned decimal number. It is the
	// default format for single-bit fields.
	FormatDec
)

func (f Format) String() string {
	switch f {
	case FormatHexString:
		return "HEX_STRING"
	case FormatMac:
		return "MAC"
	case FormatIpv4:
		return "IPV4"
	case FormatIpv6:
		return "IPV6"
	case FormatString:
		return "STRING"
	case FormatDec:
		return "DEC"
	}
	return fmt.Sprintf("UNKNOWN (%d)", uint8(f))
}

// The bodies of @format annotations.
const (
	macAddressFormat  = "MAC_ADDRESS"
	ipv4AddressFormat = "IPV4_ADDRESS"
	ipv6AddressFormat = "IPV6_ADDRESS"
)

// GetFormat returns the format of a value, given the annotations on it, its
// bitwidth, and whether it is declared as an SDN string. At most one @format
// annotation is allowed, and none on SDN strings. The address formats are
// only valid at their wire bitwidth: MAC at 48, IPv4 at 32, IPv6 at 128.
// Absent any @format annotation the format is HEX_STRING, or DEC for
// single-bit values.
func GetFormat(annotations []string, bitwidth int, isSdnString bool) (Format, error) {
	bodies, err := annotation.GetAllBodies("format", annotations)
	if err != nil && !errors.Is(err, status.ErrNotFound) {
		return 0, err
	}
	if len(bodies) > 1 {
		return 0, status.InvalidArgument("found conflicting format annotations",
			"annotations", annotations)
	}
	if isSdnString {
		if len(bodies) != 0 {
			return 0, status.InvalidArgument("format annotation conflicts with sdn_string type",
				"format", bodies[0])
		}
		return FormatString, nil
	}
	if len(bodies) == 0 {
		if bitwidth > 1 {
			return FormatHexString, nil
		}
		return FormatDec, nil
	}

	var format Format
	var wantBitwidth int
	switch bodies[0] {
	case macAddressFormat:
		format, wantBitwidth = FormatMac, bytestring.MacBitwidth
	case ipv4AddressFormat:
		format, wantBitwidth = FormatIpv4, bytestring.Ipv4Bitwidth
	case ipv6AddressFormat:
		format, wantBitwidth = FormatIpv6, bytestring.Ipv6Bitwidth
	default:
		return 0, status.InvalidArgument("unknown format annotation",
			"format", bodies[0])
	}
	if bitwidth != wantBitwidth {
		return 0, status.InvalidArgument(
			fmt.Sprintf("only %d bit values can be formatted as %s", wantBitwidth, format),
			"bitwidth", bitwidth)
	}
	return format, nil
}
