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
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"

	"github.com/EastAgile/0l-txs/data/basics"
)

// MarshalJSON renders the value for display: u8, u16 and u32 as JSON numbers, wider
// integers as decimal strings, addresses in canonical form, vector<u8> as 0x hex,
// strings as text, vectors and options as arrays.
func (v Value) MarshalJSON() ([]byte, error) {
	t := v.ABIType
	switch {
	case t.kind == Bool:
		b, err := v.GetBool()
		if err != nil {
			return nil, err
		}
		return json.Marshal(b)
	case t.IsUint():
		n, err := v.GetUint()
		if err != nil {
			return nil, err
		}
		if t.BitSize() <= 32 {
			return json.Marshal(n.Uint64())
		}
		return json.Marshal(n.Dec())
	case t.kind == Address, t.IsObject():
		addr, err := v.GetAddress()
		if err != nil {
			return nil, err
		}
		return json.Marshal(addr.String())
	case t.IsBytes():
		b, err := v.GetBytes()
		if err != nil {
			return nil, err
		}
		return json.Marshal("0x" + hex.EncodeToString(b))
	case t.IsString():
		s, err := v.GetString()
		if err != nil {
			return nil, err
		}
		return json.Marshal(s)
	case t.kind == Vector, t.IsOption():
		elems, err := v.GetElems()
		if err != nil {
			return nil, err
		}
		rawMsgSlice := make([]json.RawMessage, len(elems))
		for i := range elems {
			rawMsgSlice[i], err = elems[i].MarshalJSON()
			if err != nil {
				return nil, err
			}
		}
		return json.Marshal(rawMsgSlice)
	}
	return nil, fmt.Errorf("cannot render a value of type %s", t)
}

// String renders the value the way MarshalJSON does, without quoting top-level
// scalars.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s: %v>", v.ABIType, err)
	}
	var s string
	if json.Unmarshal(b, &s) == nil {
		return s
	}
	return string(b)
}

// UnmarshalFromJSON reads a value of type t from the JSON form a node uses in its
// view responses. Integers may be JSON numbers or decimal strings, byte vectors are
// 0x hex strings, options are {"vec": [..]} objects or plain arrays.
// Any failure is a *DecodeError.
func (t TypeTag) UnmarshalFromJSON(jsonEncoded []byte) (Value, error) {
	v, err := t.unmarshalJSON(jsonEncoded)
	if err != nil {
		var derr *DecodeError
		if errors.As(err, &derr) {
			return Value{}, err
		}
		return Value{}, &DecodeError{Type: t.String(), Offset: -1, Reason: err.Error()}
	}
	return v, nil
}

func (t TypeTag) unmarshalJSON(jsonEncoded []byte) (Value, error) {
	switch {
	case t.kind == Bool:
		var b bool
		if err := json.Unmarshal(jsonEncoded, &b); err != nil {
			return Value{}, fmt.Errorf("cannot cast JSON encoded (%s) to bool: %v", string(jsonEncoded), err)
		}
		return MakeBool(b), nil
	case t.IsUint():
		var num json.Number
		if err := json.Unmarshal(jsonEncoded, &num); err != nil {
			return Value{}, fmt.Errorf("cannot cast JSON encoded (%s) to %s: %v", string(jsonEncoded), t, err)
		}
		n, err := uint256.FromDecimal(num.String())
		if err != nil {
			return Value{}, fmt.Errorf("cannot cast JSON encoded (%s) to %s: %v", string(jsonEncoded), t, err)
		}
		return MakeUint(n, t.BitSize())
	case t.kind == Address, t.IsObject():
		var s string
		if err := json.Unmarshal(jsonEncoded, &s); err != nil {
			// objects are rendered as {"inner": "0x.."}
			var obj struct {
				Inner string `json:"inner"`
			}
			if objErr := json.Unmarshal(jsonEncoded, &obj); objErr != nil || obj.Inner == "" {
				return Value{}, fmt.Errorf("cannot cast JSON encoded (%s) to %s: %v", string(jsonEncoded), t, err)
			}
			s = obj.Inner
		}
		addr, err := basics.ParseAddress(s)
		if err != nil {
			return Value{}, err
		}
		if t.IsObject() {
			return MakeObject(addr, t.Elem()), nil
		}
		return MakeAddress(addr), nil
	case t.IsBytes():
		var s string
		if err := json.Unmarshal(jsonEncoded, &s); err != nil {
			return Value{}, fmt.Errorf("cannot cast JSON encoded (%s) to %s: %v", string(jsonEncoded), t, err)
		}
		b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return Value{}, fmt.Errorf("cannot cast JSON encoded (%s) to %s: %v", string(jsonEncoded), t, err)
		}
		return MakeBytes(b), nil
	case t.IsString():
		var s string
		if err := json.Unmarshal(jsonEncoded, &s); err != nil {
			return Value{}, fmt.Errorf("cannot cast JSON encoded (%s) to %s: %v", string(jsonEncoded), t, err)
		}
		return MakeString(s)
	case t.kind == Vector, t.IsOption():
		var elems []json.RawMessage
		if err := json.Unmarshal(jsonEncoded, &elems); err != nil {
			var opt struct {
				Vec []json.RawMessage `json:"vec"`
			}
			if !t.IsOption() || json.Unmarshal(jsonEncoded, &opt) != nil {
				return Value{}, fmt.Errorf("cannot cast JSON encoded (%s) to %s: %v", string(jsonEncoded), t, err)
			}
			elems = opt.Vec
		}
		values := make([]Value, len(elems))
		for i := range elems {
			v, err := t.Elem().UnmarshalFromJSON(elems[i])
			if err != nil {
				return Value{}, err
			}
			values[i] = v
		}
		if t.IsOption() {
			switch len(values) {
			case 0:
				return MakeOption(nil, t.Elem())
			case 1:
				return MakeOption(&values[0], t.Elem())
			}
			return Value{}, fmt.Errorf("option with %d elements", len(values))
		}
		return MakeVector(values, t.Elem())
	}
	return Value{}, fmt.Errorf("cannot read a value of type %s from JSON", t)
}

// DecodeViewJSON reads the JSON array a node returns for a view call.
func DecodeViewJSON(jsonEncoded []byte, types []TypeTag) ([]Value, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(jsonEncoded, &raw); err != nil {
		return nil, &DecodeError{Type: "view result", Offset: -1, Reason: fmt.Sprintf("not a JSON array: %v", err)}
	}
	if len(raw) != len(types) {
		return nil, lengthMismatch(-1, len(types), len(raw))
	}
	res := make([]Value, len(raw))
	for i := range raw {
		v, err := types[i].UnmarshalFromJSON(raw[i])
		if err != nil {
			return nil, fmt.Errorf("return value %d: %w", i, err)
		}
		res[i] = v
	}
	return res, nil
}
