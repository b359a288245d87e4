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

package ir

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pinsproto/pins/pkg/bytestring"
	"github.com/pinsproto/pins/pkg/status"
)

// Value is the human-readable form of a match or action field value. It
// carries one textual variant per Format, e.g. "0xabc", "01:23:45:67:89:ab",
// "10.0.0.1", "2001:db8::1", raw bytes, or a decimal number.
//
// Value is immutable after construction and can be used as a map key.
type Value struct {
	format Format
	value  string
}

// Format returns the format of the variant the value carries.
func (v Value) Format() Format {
	return v.format
}

// String returns the textual payload of the value. For FormatString values
// this is the raw bytes, untransformed.
func (v Value) String() string {
	return v.value
}

// ValueFromFormatted returns the Value carrying the given text in the
// variant matching the format. The text is expected to be formatted
// correctly already; it is copied, not re-parsed.
func ValueFromFormatted(value string, format Format) (Value, error) {
	switch format {
	case FormatHexString, FormatMac, FormatIpv4, FormatIpv6, FormatString, FormatDec:
		return Value{format: format, value: value}, nil
	default:
		return Value{}, status.InvalidArgument("unexpected format",
			"format", format)
	}
}

// ValidateFormat checks that the value carries the variant matching the
// format and that its payload satisfies the format's grammar.
func ValidateFormat(v Value, format Format) error {
	if v.format != format {
		return status.InvalidArgument("value does not match the expected format",
			"expected format", format, "actual format", v.format)
	}
	switch format {
	case FormatMac:
		if _, err := bytestring.FromMac(v.value); err != nil {
			return err
		}
	case FormatIpv4:
		if _, err := bytestring.FromIpv4(v.value); err != nil {
			return err
		}
	case FormatIpv6:
		if _, err := bytestring.FromIpv6(v.value); err != nil {
			return err
		}
	case FormatHexString:
		if !isHexString(v.value) {
			return status.InvalidArgument("value is not a valid hex string",
				"value", v.value)
		}
	case FormatDec:
		if !isDecimal(v.value) {
			return status.InvalidArgument("value is not a valid decimal number",
				"value", v.value)
		}
	case FormatString:
		// Raw bytes, any payload is valid.
	default:
		return status.Internal("unexpected format", "format", format)
	}
	return nil
}

// FormatByteString converts a PI byte string into the Value rendering it in
// the given format. Except for FormatString the byte string is normalized to
// the bitwidth first. Hex strings render to exactly ceil(bitwidth/4) digits.
func FormatByteString(format Format, bitwidth int, b []byte) (Value, error) {
	if format == FormatString {
		return Value{format: FormatString, value: string(b)}, nil
	}
	normalized, err := bytestring.Normalize(b, bitwidth)
	if err != nil {
		return Value{}, err
	}
	switch format {
	case FormatMac:
		mac, err := bytestring.ToMac(normalized)
		if err != nil {
			return Value{}, err
		}
		return Value{format: FormatMac, value: mac}, nil
	case FormatIpv4:
		ipv4, err := bytestring.ToIpv4(normalized)
		if err != nil {
			return Value{}, err
		}
		return Value{format: FormatIpv4, value: ipv4}, nil
	case FormatIpv6:
		ipv6, err := bytestring.ToIpv6(normalized)
		if err != nil {
			return Value{}, err
		}
		return Value{format: FormatIpv6, value: ipv6}, nil
	case FormatHexString:
		digits := hex.EncodeToString(normalized)
		// The pad nibble of an odd-width value is zero after normalization.
		if want := (bitwidth + 3) / 4; len(digits) > want {
			digits = digits[len(digits)-want:]
		}
		return Value{format: FormatHexString, value: "0x" + digits}, nil
	case FormatDec:
		value, err := bytestring.ToUint(normalized, bitwidth)
		if err != nil {
			return Value{}, err
		}
		return Value{format: FormatDec, value: strconv.FormatUint(value, 10)}, nil
	default:
		return Value{}, status.Internal("unexpected format", "format", format)
	}
}

// ByteString converts the value into its canonical PI byte-string form.
// Returns an ErrInvalidArgument error if the payload violates the grammar of
// the value's format.
func (v Value) ByteString() ([]byte, error) {
	switch v.format {
	case FormatMac:
		return bytestring.FromMac(v.value)
	case FormatIpv4:
		return bytestring.FromIpv4(v.value)
	case FormatIpv6:
		return bytestring.FromIpv6(v.value)
	case FormatString:
		return []byte(v.value), nil
	case FormatHexString:
		if !isHexString(v.value) {
			return nil, status.InvalidArgument("value is not a valid hex string",
				"value", v.value)
		}
		digits := strings.TrimPrefix(v.value, "0x")
		if len(digits)%2 != 0 {
			digits = "0" + digits
		}
		b, err := hex.DecodeString(digits)
		if err != nil {
			return nil, status.InvalidArgument("value is not a valid hex string",
				"value", v.value)
		}
		return bytestring.Canonical(b), nil
	case FormatDec:
		value, err := strconv.ParseUint(v.value, 10, 64)
		if err != nil {
			return nil, status.InvalidArgument("value is not a valid decimal number",
				"value", v.value)
		}
		return bytestring.FromUint(value, 64)
	default:
		return nil, status.Internal("unexpected format", "format", v.format)
	}
}

// Hex strings are 0x followed by at least one lower case hex digit.
func isHexString(s string) bool {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok || len(digits) == 0 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !(digits[i] >= '0' && digits[i] <= '9' || digits[i] >= 'a' && digits[i] <= 'f') {
			return false
		}
	}
	return true
}

func isDecimal(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
