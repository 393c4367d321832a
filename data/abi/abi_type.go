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
	"strconv"
	"strings"

	"github.com/EastAgile/0l-txs/data/basics"
)

/*
   Move type tags: bool | u8 | u16 | u32 | u64 | u128 | u256
                 | address | signer
                 | vector<T>
                 | <address>::<module>::<name>[<T1, ..., Tn>]

   Function declarations may also mention generic parameters (T0, T1, ...) and
   references (&T, &mut T); those are accepted only by ParseParamType.
*/

// Kind indicates the variant of a TypeTag. For serializable kinds the value equals the
// variant index used on the wire.
type Kind uint8

const (
	// Bool is the index (0) for `bool`.
	Bool Kind = iota
	// U8 is the index (1) for `u8`.
	U8
	// U64 is the index (2) for `u64`.
	U64
	// U128 is the index (3) for `u128`.
	U128
	// Address is the index (4) for `address`.
	Address
	// Signer is the index (5) for `signer`.
	Signer
	// Vector is the index (6) for `vector<T>`.
	Vector
	// Struct is the index (7) for struct types `0x1::module::Name<...>`.
	Struct
	// U16 is the index (8) for `u16`.
	U16
	// U32 is the index (9) for `u32`.
	U32
	// U256 is the index (10) for `u256`.
	U256
	// Generic is a placeholder `T<i>` for a generic parameter in a function declaration.
	// It never appears on the wire.
	Generic
)

// TypeTag is a parsed Move type.
type TypeTag struct {
	kind Kind

	// element type of a vector, or the type parameters of a struct
	childTypes []TypeTag

	// only set for Struct
	address basics.Address
	module  string
	name    string

	// only set for Generic
	index uint16
}

// Well-known framework structs with special literal handling.
const (
	stringModule = "string"
	stringName   = "String"
	optionModule = "option"
	optionName   = "Option"
	objectModule = "object"
	objectName   = "Object"
)

var primitiveTypes = map[string]Kind{
	"bool":    Bool,
	"u8":      U8,
	"u16":     U16,
	"u32":     U32,
	"u64":     U64,
	"u128":    U128,
	"u256":    U256,
	"address": Address,
	"signer":  Signer,
}

var uintBitSizes = map[Kind]uint16{
	U8:   8,
	U16:  16,
	U32:  32,
	U64:  64,
	U128: 128,
	U256: 256,
}

// MakeBoolType makes `bool` TypeTag.
func MakeBoolType() TypeTag {
	return TypeTag{kind: Bool}
}

// MakeUintType makes the unsigned integer TypeTag of the given bit width.
func MakeUintType(bitSize uint16) (TypeTag, error) {
	for kind, size := range uintBitSizes {
		if size == bitSize {
			return TypeTag{kind: kind}, nil
		}
	}
	return TypeTag{}, fmt.Errorf("unsupported unsigned integer width %d", bitSize)
}

func mustUintType(bitSize uint16) TypeTag {
	t, err := MakeUintType(bitSize)
	if err != nil {
		panic(err)
	}
	return t
}

// MakeAddressType makes `address` TypeTag.
func MakeAddressType() TypeTag {
	return TypeTag{kind: Address}
}

// MakeSignerType makes `signer` TypeTag.
func MakeSignerType() TypeTag {
	return TypeTag{kind: Signer}
}

// MakeVectorType makes `vector<elem>` TypeTag.
func MakeVectorType(elem TypeTag) TypeTag {
	return TypeTag{kind: Vector, childTypes: []TypeTag{elem}}
}

// MakeStructType makes a struct TypeTag. The module and struct names must be valid
// identifiers.
func MakeStructType(addr basics.Address, module, name string, typeParams ...TypeTag) (TypeTag, error) {
	if err := basics.ValidateIdentifier(module); err != nil {
		return TypeTag{}, fmt.Errorf("module name: %w", err)
	}
	if err := basics.ValidateIdentifier(name); err != nil {
		return TypeTag{}, fmt.Errorf("struct name: %w", err)
	}
	params := make([]TypeTag, len(typeParams))
	copy(params, typeParams)
	return TypeTag{kind: Struct, address: addr, module: module, name: name, childTypes: params}, nil
}

// MakeGenericType makes the placeholder for generic parameter i of a function.
func MakeGenericType(i uint16) TypeTag {
	return TypeTag{kind: Generic, index: i}
}

// MakeStringType makes `0x1::string::String`.
func MakeStringType() TypeTag {
	return TypeTag{kind: Struct, address: basics.CoreCodeAddress, module: stringModule, name: stringName}
}

// MakeOptionType makes `0x1::option::Option<elem>`.
func MakeOptionType(elem TypeTag) TypeTag {
	return TypeTag{kind: Struct, address: basics.CoreCodeAddress, module: optionModule, name: optionName, childTypes: []TypeTag{elem}}
}

// MakeObjectType makes `0x1::object::Object<elem>`.
func MakeObjectType(elem TypeTag) TypeTag {
	return TypeTag{kind: Struct, address: basics.CoreCodeAddress, module: objectModule, name: objectName, childTypes: []TypeTag{elem}}
}

// Kind returns the variant of the type.
func (t TypeTag) Kind() Kind {
	return t.kind
}

// Elem returns the element type of a vector, or the single type parameter of
// Option and Object.
func (t TypeTag) Elem() TypeTag {
	if len(t.childTypes) == 0 {
		return TypeTag{}
	}
	return t.childTypes[0]
}

// TypeParams returns the type parameters of a struct.
func (t TypeTag) TypeParams() []TypeTag {
	if t.kind != Struct {
		return nil
	}
	return t.childTypes
}

// StructAddress returns the publishing address of a struct type.
func (t TypeTag) StructAddress() basics.Address {
	return t.address
}

// Module returns the module name of a struct type.
func (t TypeTag) Module() string {
	return t.module
}

// Name returns the name of a struct type.
func (t TypeTag) Name() string {
	return t.name
}

// GenericIndex returns i for the placeholder T<i>.
func (t TypeTag) GenericIndex() uint16 {
	return t.index
}

// IsUint reports whether the type is one of the unsigned integer types.
func (t TypeTag) IsUint() bool {
	_, ok := uintBitSizes[t.kind]
	return ok
}

// BitSize returns the width of an unsigned integer type, 0 otherwise.
func (t TypeTag) BitSize() uint16 {
	return uintBitSizes[t.kind]
}

func (t TypeTag) isFramework(module, name string) bool {
	return t.kind == Struct && t.address == basics.CoreCodeAddress && t.module == module && t.name == name
}

// IsString reports whether the type is `0x1::string::String`.
func (t TypeTag) IsString() bool {
	return t.isFramework(stringModule, stringName) && len(t.childTypes) == 0
}

// IsOption reports whether the type is `0x1::option::Option<T>`.
func (t TypeTag) IsOption() bool {
	return t.isFramework(optionModule, optionName) && len(t.childTypes) == 1
}

// IsObject reports whether the type is `0x1::object::Object<T>`.
func (t TypeTag) IsObject() bool {
	return t.isFramework(objectModule, objectName) && len(t.childTypes) == 1
}

// IsBytes reports whether the type is `vector<u8>`.
func (t TypeTag) IsBytes() bool {
	return t.kind == Vector && t.Elem().kind == U8
}

// HasGenerics reports whether a Generic placeholder appears anywhere in the type.
func (t TypeTag) HasGenerics() bool {
	if t.kind == Generic {
		return true
	}
	for _, child := range t.childTypes {
		if child.HasGenerics() {
			return true
		}
	}
	return false
}

// String serializes the type in canonical form: no whitespace except a single space
// after each comma, and struct addresses in their short display form.
func (t TypeTag) String() string {
	switch t.kind {
	case Vector:
		return "vector<" + t.Elem().String() + ">"
	case Struct:
		var sb strings.Builder
		sb.WriteString(t.address.String())
		sb.WriteString("::")
		sb.WriteString(t.module)
		sb.WriteString("::")
		sb.WriteString(t.name)
		if len(t.childTypes) > 0 {
			sb.WriteString("<")
			for i, child := range t.childTypes {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(child.String())
			}
			sb.WriteString(">")
		}
		return sb.String()
	case Generic:
		return "T" + strconv.Itoa(int(t.index))
	}
	for name, kind := range primitiveTypes {
		if kind == t.kind {
			return name
		}
	}
	return "<unknown type>"
}

// Equal method decides the equality of two types.
func (t TypeTag) Equal(t0 TypeTag) bool {
	if t.kind != t0.kind || t.index != t0.index {
		return false
	}
	if t.address != t0.address || t.module != t0.module || t.name != t0.name {
		return false
	}
	if len(t.childTypes) != len(t0.childTypes) {
		return false
	}
	for i := range t.childTypes {
		if !t.childTypes[i].Equal(t0.childTypes[i]) {
			return false
		}
	}
	return true
}

// Substitute replaces every Generic placeholder T<i> with typeArgs[i].
func (t TypeTag) Substitute(typeArgs []TypeTag) (TypeTag, error) {
	if t.kind == Generic {
		if int(t.index) >= len(typeArgs) {
			return TypeTag{}, makeParseErrorf(t.String(), "generic parameter has no type argument (%d given)", len(typeArgs))
		}
		return typeArgs[t.index], nil
	}
	if len(t.childTypes) == 0 {
		return t, nil
	}
	res := t
	res.childTypes = make([]TypeTag, len(t.childTypes))
	for i, child := range t.childTypes {
		sub, err := child.Substitute(typeArgs)
		if err != nil {
			return TypeTag{}, err
		}
		res.childTypes[i] = sub
	}
	return res, nil
}

// ParseTypeTag parses a single concrete type string into a TypeTag.
func ParseTypeTag(str string) (TypeTag, error) {
	return parseTypeTag(str, false)
}

// ParseTypeTags parses a comma separated list of type strings. Commas nested inside
// angle brackets do not split. An empty string yields an empty list.
func ParseTypeTags(str string) ([]TypeTag, error) {
	pieces, err := splitTopLevel(str)
	if err != nil {
		return nil, makeParseErrorf(str, "%v", err)
	}
	res := make([]TypeTag, len(pieces))
	for i, piece := range pieces {
		res[i], err = parseTypeTag(piece, false)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// ParseParamType parses a parameter or return type as written in a module ABI.
// References (&T, &mut T) are stripped and generic placeholders T<i> are allowed.
func ParseParamType(str string) (TypeTag, error) {
	s := strings.TrimSpace(str)
	switch {
	case strings.HasPrefix(s, "&mut "):
		s = s[len("&mut "):]
	case strings.HasPrefix(s, "&"):
		s = s[1:]
	}
	return parseTypeTag(s, true)
}

func parseTypeTag(str string, allowGenerics bool) (TypeTag, error) {
	s := strings.TrimSpace(str)
	if s == "" {
		return TypeTag{}, makeParseErrorf(str, "empty type")
	}
	if kind, ok := primitiveTypes[s]; ok {
		return TypeTag{kind: kind}, nil
	}

	if strings.HasPrefix(s, "vector") {
		rest := strings.TrimSpace(s[len("vector"):])
		if !strings.HasPrefix(rest, "<") || !strings.HasSuffix(rest, ">") {
			return TypeTag{}, makeParseErrorf(str, "vector type must be written vector<T>")
		}
		inner, err := splitTopLevel(rest[1 : len(rest)-1])
		if err != nil {
			return TypeTag{}, makeParseErrorf(str, "%v", err)
		}
		if len(inner) != 1 {
			return TypeTag{}, makeParseErrorf(str, "vector takes exactly one type parameter, got %d", len(inner))
		}
		elem, err := parseTypeTag(inner[0], allowGenerics)
		if err != nil {
			return TypeTag{}, err
		}
		return MakeVectorType(elem), nil
	}

	if allowGenerics && len(s) > 1 && s[0] == 'T' {
		if i, err := strconv.ParseUint(s[1:], 10, 16); err == nil {
			return MakeGenericType(uint16(i)), nil
		}
	}

	if !strings.Contains(s, "::") {
		return TypeTag{}, makeParseErrorf(str, "unknown type")
	}
	return parseStructTag(str, s, allowGenerics)
}

func parseStructTag(orig string, s string, allowGenerics bool) (TypeTag, error) {
	head := s
	var params []TypeTag
	if lt := strings.IndexByte(s, '<'); lt >= 0 {
		if !strings.HasSuffix(s, ">") {
			return TypeTag{}, makeParseErrorf(orig, "unbalanced type parameter brackets")
		}
		head = s[:lt]
		inner := s[lt+1 : len(s)-1]
		pieces, err := splitTopLevel(inner)
		if err != nil {
			return TypeTag{}, makeParseErrorf(orig, "%v", err)
		}
		if len(pieces) == 0 {
			return TypeTag{}, makeParseErrorf(orig, "empty type parameter list")
		}
		params = make([]TypeTag, len(pieces))
		for i, piece := range pieces {
			params[i], err = parseTypeTag(piece, allowGenerics)
			if err != nil {
				return TypeTag{}, err
			}
		}
	} else if strings.ContainsAny(s, ">,") {
		return TypeTag{}, makeParseErrorf(orig, "unbalanced type parameter brackets")
	}

	segments := strings.Split(head, "::")
	if len(segments) != 3 {
		return TypeTag{}, makeParseErrorf(orig, "struct type must be <address>::<module>::<name>")
	}
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}
	addr, err := basics.ParseAddress(segments[0])
	if err != nil {
		return TypeTag{}, makeParseErrorf(orig, "%v", err)
	}
	t, err := MakeStructType(addr, segments[1], segments[2], params...)
	if err != nil {
		return TypeTag{}, makeParseErrorf(orig, "%v", err)
	}
	return t, nil
}
