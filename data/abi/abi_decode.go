// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package abi

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/holiman/uint256"

	"github.com/EastAgile/0l-txs/data/basics"
)

// maxSequenceLength bounds ULEB128 length prefixes, as the Move VM does.
const maxSequenceLength = math.MaxUint32

// maxUleb128Bytes is the longest encoding of a value up to maxSequenceLength.
const maxUleb128Bytes = 5

type decoder struct {
	buf []byte
	off int
}

func (d *decoder) fail(t TypeTag, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Type: t.String(), Offset: d.off, Reason: fmt.Sprintf(format, args...)}
}

func (d *decoder) read(t TypeTag, n int) ([]byte, error) {
	if n > len(d.buf)-d.off {
		return nil, d.fail(t, "need %d bytes, %d left", n, len(d.buf)-d.off)
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *decoder) readUleb128(t TypeTag) (uint64, error) {
	var res uint64
	for shift := uint(0); shift < 7*maxUleb128Bytes; shift += 7 {
		b, err := d.read(t, 1)
		if err != nil {
			return 0, err
		}
		digit := b[0]
		res |= uint64(digit&0x7f) << shift
		if digit&0x80 == 0 {
			if digit == 0 && shift > 0 {
				return 0, d.fail(t, "non-canonical ULEB128 length")
			}
			if res > maxSequenceLength {
				return 0, d.fail(t, "length %d too large", res)
			}
			return res, nil
		}
	}
	return 0, d.fail(t, "ULEB128 length too long")
}

func (d *decoder) readBytes(t TypeTag) ([]byte, error) {
	n, err := d.readUleb128(t)
	if err != nil {
		return nil, err
	}
	if n > uint64(len(d.buf)-d.off) {
		return nil, d.fail(t, "length %d exceeds the %d remaining bytes", n, len(d.buf)-d.off)
	}
	return d.read(t, int(n))
}

func (d *decoder) decode(t TypeTag) (Value, error) {
	switch {
	case t.kind == Bool:
		b, err := d.read(t, 1)
		if err != nil {
			return Value{}, err
		}
		switch b[0] {
		case 0:
			return MakeBool(false), nil
		case 1:
			return MakeBool(true), nil
		}
		return Value{}, d.fail(t, "invalid bool byte 0x%02x", b[0])
	case t.IsUint():
		size := int(t.BitSize() / 8)
		b, err := d.read(t, size)
		if err != nil {
			return Value{}, err
		}
		be := make([]byte, size)
		for i := range b {
			be[size-1-i] = b[i]
		}
		return MakeUint(new(uint256.Int).SetBytes(be), t.BitSize())
	case t.kind == Address, t.IsObject():
		b, err := d.read(t, basics.AddressLength)
		if err != nil {
			return Value{}, err
		}
		var addr basics.Address
		copy(addr[:], b)
		if t.IsObject() {
			return MakeObject(addr, t.Elem()), nil
		}
		return MakeAddress(addr), nil
	case t.IsBytes():
		b, err := d.readBytes(t)
		if err != nil {
			return Value{}, err
		}
		return MakeBytes(b), nil
	case t.IsString():
		start := d.off
		b, err := d.readBytes(t)
		if err != nil {
			return Value{}, err
		}
		if !utf8.Valid(b) {
			return Value{}, &DecodeError{Type: t.String(), Offset: start, Reason: "invalid UTF-8"}
		}
		return MakeString(string(b))
	case t.kind == Vector, t.IsOption():
		n, err := d.readUleb128(t)
		if err != nil {
			return Value{}, err
		}
		if t.IsOption() && n > 1 {
			return Value{}, d.fail(t, "option with %d elements", n)
		}
		// every element takes at least one byte
		if n > uint64(len(d.buf)-d.off) {
			return Value{}, d.fail(t, "%d elements exceed the %d remaining bytes", n, len(d.buf)-d.off)
		}
		elems := make([]Value, 0, n)
		for i := uint64(0); i < n; i++ {
			elem, err := d.decode(t.Elem())
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, elem)
		}
		if t.IsOption() {
			if n == 0 {
				return MakeOption(nil, t.Elem())
			}
			return MakeOption(&elems[0], t.Elem())
		}
		return MakeVector(elems, t.Elem())
	}
	return Value{}, d.fail(t, "type cannot be decoded")
}

// DecodeValue decodes a single BCS-encoded value of the given type. The whole input
// must be consumed.
func DecodeValue(valueBytes []byte, valueType TypeTag) (Value, error) {
	d := &decoder{buf: valueBytes}
	v, err := d.decode(valueType)
	if err != nil {
		return Value{}, err
	}
	if d.off != len(d.buf) {
		return Value{}, d.fail(valueType, "%d trailing bytes", len(d.buf)-d.off)
	}
	return v, nil
}

// DecodeValues decodes one BCS-encoded value per declared type, in order.
func DecodeValues(values [][]byte, types []TypeTag) ([]Value, error) {
	if len(values) != len(types) {
		return nil, lengthMismatch(0, len(types), len(values))
	}
	res := make([]Value, len(values))
	for i := range values {
		v, err := DecodeValue(values[i], types[i])
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// DecodeViewResult decodes the BCS `vector<vector<u8>>` a node returns for a view
// call, each inner vector holding one return value.
func DecodeViewResult(result []byte, types []TypeTag) ([]Value, error) {
	envelope := MakeVectorType(MakeVectorType(TypeTag{kind: U8}))
	d := &decoder{buf: result}
	n, err := d.readUleb128(envelope)
	if err != nil {
		return nil, err
	}
	values := make([][]byte, 0, len(types))
	for i := uint64(0); i < n; i++ {
		b, err := d.readBytes(envelope)
		if err != nil {
			return nil, err
		}
		values = append(values, b)
	}
	if d.off != len(d.buf) {
		return nil, d.fail(envelope, "%d trailing bytes", len(d.buf)-d.off)
	}
	return DecodeValues(values, types)
}
