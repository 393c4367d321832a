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

package protocol

import (
	"io"

	"github.com/algorand/go-codec/codec"
)

// JSONHandle is used to instantiate JSON encoders with our settings
// (canonical, indented)
var JSONHandle *codec.JsonHandle

// JSONLenientHandle decodes JSON produced by other software (node REST responses, module ABI
// documents), where unknown fields must be ignored rather than rejected.
var JSONLenientHandle *codec.JsonHandle

func init() {
	JSONHandle = new(codec.JsonHandle)
	JSONHandle.ErrorIfNoField = true
	JSONHandle.ErrorIfNoArrayExpand = true
	JSONHandle.Canonical = true
	JSONHandle.RecursiveEmptyCheck = true
	JSONHandle.Indent = 2
	JSONHandle.HTMLCharsAsIs = true

	JSONLenientHandle = new(codec.JsonHandle)
	JSONLenientHandle.ErrorIfNoField = false
	JSONLenientHandle.Canonical = JSONHandle.Canonical
	JSONLenientHandle.RecursiveEmptyCheck = JSONHandle.RecursiveEmptyCheck
	JSONLenientHandle.HTMLCharsAsIs = JSONHandle.HTMLCharsAsIs
}

// EncodeJSON returns a JSON-encoded byte buffer for a given object
func EncodeJSON(obj interface{}) []byte {
	var b []byte
	enc := codec.NewEncoderBytes(&b, JSONHandle)
	enc.MustEncode(obj)
	return b
}

// DecodeJSONLenient attempts to decode a JSON-encoded byte buffer into an
// object instance pointed to by objptr, ignoring fields it does not declare.
func DecodeJSONLenient(b []byte, objptr interface{}) error {
	dec := codec.NewDecoderBytes(b, JSONLenientHandle)
	return dec.Decode(objptr)
}

// NewJSONEncoder returns an encoder object writing bytes into [w].
func NewJSONEncoder(w io.Writer) *codec.Encoder {
	return codec.NewEncoder(w, JSONHandle)
}
