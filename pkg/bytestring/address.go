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

package bytestring

import (
	"encoding/hex"
	"fmt"
	"net"
	"net/netip"

	"github.com/pinsproto/pins/pkg/status"
)

// ToMac converts a 6 byte string into the colon separated MAC representation,
// e.g. "01:23:45:67:89:ab".
func ToMac(b []byte) (string, error) {
	if len(b) != numBytesInMac {
		return "", status.InvalidArgument("unexpected byte length for MAC address",
			"expected bytes", numBytesInMac, "actual bytes", len(b))
	}
	return net.HardwareAddr(b).String(), nil
}

// FromMac converts a colon separated MAC representation into a 6 byte string.
// The input must be of the format xx:xx:xx:xx:xx:xx where x is a lower case
// hexadecimal character.
func FromMac(mac string) ([]byte, error) {
	if !isValidMac(mac) {
		return nil, status.InvalidArgument("cannot parse value as MAC address",
			"value", mac,
			"expected format", "xx:xx:xx:xx:xx:xx with lower case hexadecimal characters")
	}
	b := make([]byte, numBytesInMac)
	for i := 0; i < numBytesInMac; i++ {
		if _, err := hex.Decode(b[i:i+1], []byte(mac[3*i:3*i+2])); err != nil {
			return nil, status.InvalidArgument("cannot parse value as MAC address",
				"value", mac)
		}
	}
	return b, nil
}

// Each hex pair has exactly two lower case digits, pairs are separated by a
// single colon.
func isValidMac(mac string) bool {
	if len(mac) != 17 {
		return false
	}
	for i := 0; i < 17; i++ {
		if i%3 == 2 {
			if mac[i] != ':' {
				return false
			}
		} else if !isLowerHex(mac[i]) {
			return false
		}
	}
	return true
}

func isLowerHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f'
}

// ToIpv4 converts a 4 byte string into the dotted decimal IPv4
// representation, e.g. "10.0.0.1".
func ToIpv4(b []byte) (string, error) {
	if len(b) != numBytesInIpv4 {
		return "", status.InvalidArgument("unexpected byte length for IPv4 address",
			"expected bytes", numBytesInIpv4, "actual bytes", len(b))
	}
	return netip.AddrFrom4([4]byte(b)).String(), nil
}

// FromIpv4 converts a dotted decimal IPv4 representation into a 4 byte
// string. Octets must not carry leading zeros.
func FromIpv4(ipv4 string) ([]byte, error) {
	addr, err := netip.ParseAddr(ipv4)
	if err != nil || !addr.Is4() {
		return nil, status.InvalidArgument("cannot parse value as IPv4 address",
			"value", ipv4)
	}
	b := addr.As4()
	return b[:], nil
}

// ToIpv6 converts a 16 byte string into the colon separated IPv6
// representation, zero-compressed, e.g. "2001:db8::1".
func ToIpv6(b []byte) (string, error) {
	if len(b) != numBytesInIpv6 {
		return "", status.InvalidArgument("unexpected byte length for IPv6 address",
			"expected bytes", numBytesInIpv6, "actual bytes", len(b))
	}
	addr := netip.AddrFrom16([16]byte(b))
	// netip renders IPv4-mapped addresses with an embedded dotted quad,
	// which FromIpv6 does not accept. Render those as plain hex groups so
	// that every output parses back. The leading five groups are zero, so
	// the zero compression always sits in front.
	if addr.Is4In6() {
		return fmt.Sprintf("::ffff:%x:%x",
			uint16(b[12])<<8|uint16(b[13]),
			uint16(b[14])<<8|uint16(b[15])), nil
	}
	return addr.String(), nil
}

// FromIpv6 converts a colon separated IPv6 representation into a 16 byte
// string. The input must consist of lower case hexadecimal groups, with at
// most one zero compression and no embedded IPv4 syntax.
func FromIpv6(ipv6 string) ([]byte, error) {
	// netip accepts upper case digits, zones and embedded IPv4 notation; the
	// PI textual form does not.
	for i := 0; i < len(ipv6); i++ {
		if ipv6[i] != ':' && !isLowerHex(ipv6[i]) {
			return nil, status.InvalidArgument("cannot parse value as IPv6 address",
				"value", ipv6,
				"expected format", "lower case hexadecimal groups separated by colons")
		}
	}
	addr, err := netip.ParseAddr(ipv6)
	if err != nil {
		return nil, status.InvalidArgument("cannot parse value as IPv6 address",
			"value", ipv6)
	}
	b := addr.As16()
	return b[:], nil
}
