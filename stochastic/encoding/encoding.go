// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package encoding renders emitted values as text or as fixed-width binary numbers.
package encoding

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

//go:generate mockgen -source encoding.go -destination encoding_mock.go -package encoding

// Encoder appends the encoding of a value to a byte slice.
type Encoder interface {
	Append(dst []byte, v float64) []byte
}

// Text renders values as fixed-point decimals, one per line. Infinities are
// written as inf and -inf.
type Text struct {
	Precision int // digits after the decimal point
}

func (t Text) Append(dst []byte, v float64) []byte {
	switch {
	case math.IsInf(v, 1):
		dst = append(dst, "inf"...)
	case math.IsInf(v, -1):
		dst = append(dst, "-inf"...)
	default:
		dst = strconv.AppendFloat(dst, v, 'f', t.Precision, 64)
	}
	return append(dst, '\n')
}

// Kind is the numeric representation of a binary format.
type Kind int

const (
	Float Kind = iota
	Unsigned
	Signed
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	}
	return "unknown"
}

// Format is a fixed-width binary encoding.
type Format struct {
	Name  string
	Width int                    // in bytes
	Kind  Kind                   // float, unsigned or signed integer
	Order binary.AppendByteOrder // nil for single bytes
}

// Formats lists all binary formats.
var Formats = []Format{
	{"f32be", 4, Float, binary.BigEndian},
	{"f32le", 4, Float, binary.LittleEndian},
	{"f64be", 8, Float, binary.BigEndian},
	{"f64le", 8, Float, binary.LittleEndian},
	{"u8", 1, Unsigned, nil},
	{"s8", 1, Signed, nil},
	{"u16be", 2, Unsigned, binary.BigEndian},
	{"u16le", 2, Unsigned, binary.LittleEndian},
	{"s16be", 2, Signed, binary.BigEndian},
	{"s16le", 2, Signed, binary.LittleEndian},
	{"u32be", 4, Unsigned, binary.BigEndian},
	{"u32le", 4, Unsigned, binary.LittleEndian},
	{"s32be", 4, Signed, binary.BigEndian},
	{"s32le", 4, Signed, binary.LittleEndian},
	{"u64be", 8, Unsigned, binary.BigEndian},
	{"u64le", 8, Unsigned, binary.LittleEndian},
	{"s64be", 8, Signed, binary.BigEndian},
	{"s64le", 8, Signed, binary.LittleEndian},
}

// ErrUnknownFormat is reported for binary format names not in Formats.
var ErrUnknownFormat = errors.New("unknown binary format")

// ParseFormat looks up a binary format by name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if f.Name == name {
			return f, nil
		}
	}
	return Format{}, errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// Endianness names the byte order of the format.
func (f Format) Endianness() string {
	switch f.Order {
	case binary.BigEndian:
		return "big"
	case binary.LittleEndian:
		return "little"
	}
	return "-"
}

// Append writes v in the format. Integer formats saturate at their range,
// truncate toward zero and map NaN to zero.
func (f Format) Append(dst []byte, v float64) []byte {
	switch f.Kind {
	case Float:
		if f.Width == 4 {
			return f.Order.AppendUint32(dst, math.Float32bits(float32(v)))
		}
		return f.Order.AppendUint64(dst, math.Float64bits(v))
	case Unsigned:
		switch f.Width {
		case 1:
			return append(dst, saturate[uint8](v, 0, math.MaxUint8))
		case 2:
			return f.Order.AppendUint16(dst, saturate[uint16](v, 0, math.MaxUint16))
		case 4:
			return f.Order.AppendUint32(dst, saturate[uint32](v, 0, math.MaxUint32))
		default:
			return f.Order.AppendUint64(dst, saturate[uint64](v, 0, math.MaxUint64))
		}
	default:
		switch f.Width {
		case 1:
			return append(dst, byte(saturate[int8](v, math.MinInt8, math.MaxInt8)))
		case 2:
			return f.Order.AppendUint16(dst, uint16(saturate[int16](v, math.MinInt16, math.MaxInt16)))
		case 4:
			return f.Order.AppendUint32(dst, uint32(saturate[int32](v, math.MinInt32, math.MaxInt32)))
		default:
			return f.Order.AppendUint64(dst, uint64(saturate[int64](v, math.MinInt64, math.MaxInt64)))
		}
	}
}

// saturate converts v to T, clamping to [lowest, highest].
// float64(highest) may round up past the range, hence the >= comparison.
func saturate[T constraints.Integer](v float64, lowest, highest T) T {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= float64(lowest):
		return lowest
	case v >= float64(highest):
		return highest
	}
	return T(v)
}
