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

// Package bytestring converts between the P4Runtime byte-string encoding of
// match and action field values and typed representations.
//
// A PI byte string is interpreted as a big-endian unsigned value. The
// normalized form of a value with declared bitwidth b has exactly
// ceil(b/8) bytes, with the high 8*ceil(b/8)-b bits of the first byte zero.
// The canonical form carries no leading zero bytes beyond a single one for
// the value zero.
package bytestring

import (
	"encoding/binary"
	"math/bits"

	"github.com/pinsproto/pins/pkg/status"
)

const numBitsPerByte = 8

// Bitwidths of the address formats with a fixed wire size.
const (
	MacBitwidth  = 48
	Ipv4Bitwidth = 32
	Ipv6Bitwidth = 128
)

const (
	numBytesInMac  = MacBitwidth / numBitsPerByte
	numBytesInIpv4 = Ipv4Bitwidth / numBitsPerByte
	numBytesInIpv6 = Ipv6Bitwidth / numBitsPerByte
)

// Normalize returns the normalized form of b for the given bitwidth, a byte
// string of length ceil(bitwidth/8). Shorter inputs are left-padded with zero
// bytes, longer inputs must carry only zero bytes in excess of that length.
//
// Returns an ErrInvalidArgument error if the value does not fit in bitwidth
// bits.
func Normalize(b []byte, bitwidth int) ([]byte, error) {
	if bitwidth <= 0 {
		return nil, status.InvalidArgument("bitwidth must be positive",
			"bitwidth", bitwidth)
	}
	stripped := Canonical(b)
	if length := int(Bitwidth(stripped)); length > bitwidth {
		return nil, status.InvalidArgument("value exceeds bitwidth",
			"value bits", length, "bitwidth", bitwidth)
	}
	totalBytes := (bitwidth + numBitsPerByte - 1) / numBitsPerByte
	normalized := make([]byte, totalBytes)
	copy(normalized[totalBytes-len(stripped):], stripped)
	return normalized, nil
}

// Canonical strips the leading zero bytes of b, keeping at least one byte for
// non-empty inputs. The result aliases the input.
func Canonical(b []byte) []byte {
	i := 0
	for i < len(b)-1 && b[i] == 0 {
		i++
	}
	return b[i:]
}

// Bitwidth returns the number of bits used by the byte string interpreted as
// a big-endian unsigned value. Leading zero bits of the first byte are not
// counted. The empty byte string uses zero bits.
func Bitwidth(b []byte) uint32 {
	if len(b) == 0 {
		return 0
	}
	return uint32((len(b)-1)*numBitsPerByte + bits.Len8(b[0]))
}

// ToUint converts the byte string into an unsigned value of the given
// bitwidth.
//
// Returns an ErrInvalidArgument error if bitwidth exceeds 64 or the value
// does not fit in bitwidth bits.
func ToUint(b []byte, bitwidth int) (uint64, error) {
	if bitwidth > 64 {
		return 0, status.InvalidArgument("cannot convert value to uint",
			"bitwidth", bitwidth)
	}
	normalized, err := Normalize(b, bitwidth)
	if err != nil {
		return 0, err
	}
	var buf [8]byte
	copy(buf[8-len(normalized):], normalized)
	return binary.BigEndian.Uint64(buf[:]), nil
}

// FromUint converts the value into its canonical byte-string form, the
// minimum-length big-endian encoding. The value zero yields a single zero
// byte.
//
// Returns an ErrInvalidArgument error if bitwidth is outside 1..64 or the
// value does not fit in bitwidth bits.
func FromUint(value uint64, bitwidth int) ([]byte, error) {
	if bitwidth <= 0 || bitwidth > 64 {
		return nil, status.InvalidArgument("cannot convert uint to byte string",
			"bitwidth", bitwidth)
	}
	if used := bits.Len64(value); used > bitwidth {
		return nil, status.InvalidArgument("value exceeds bitwidth",
			"value", value, "value bits", used, "bitwidth", bitwidth)
	}
	numBytes := (bits.Len64(value) + numBitsPerByte - 1) / numBitsPerByte
	if numBytes == 0 {
		numBytes = 1
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], value)
	return buf[8-numBytes:], nil
}

// IsAllZeros reports whether the byte string consists of zero bytes only.
func IsAllZeros(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// Intersect returns the bytewise AND of two byte strings of equal length.
func Intersect(left, right []byte) ([]byte, error) {
	if len(left) != len(right) {
		return nil, status.InvalidArgument("cannot intersect byte strings of unequal length",
			"left bytes", len(left), "right bytes", len(right))
	}
	result := make([]byte, len(left))
	for i := range left {
		result[i] = left[i] & right[i]
	}
	return result, nil
}

// PrefixLenToMask returns the normalized byte string of the bitwidth-wide
// mask with the prefixLen highest bits set.
func PrefixLenToMask(prefixLen, bitwidth int) ([]byte, error) {
	if prefixLen < 0 || prefixLen > bitwidth {
		return nil, status.InvalidArgument("prefix length does not fit bitwidth",
			"prefix length", prefixLen, "bitwidth", bitwidth)
	}
	totalBytes := (bitwidth + numBitsPerByte - 1) / numBitsPerByte
	mask := make([]byte, totalBytes)
	pad := totalBytes*numBitsPerByte - bitwidth
	for i := 0; i < prefixLen; i++ {
		pos := pad + i
		mask[pos/numBitsPerByte] |= 1 << (numBitsPerByte - 1 - pos%numBitsPerByte)
	}
	return mask, nil
}
