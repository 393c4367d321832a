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

package codecs

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
)

// NewFormattedJSONEncoder returns a json encoder configured for
// pretty-printed output (human-readable)
func NewFormattedJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	enc.SetEscapeHTML(false)
	return enc
}

// LoadObjectFromFile implements the common pattern for loading an instance
// of an object from a json file. Fields the object does not declare are an error.
func LoadObjectFromFile(filename string, object interface{}) (err error) {
	f, err := os.Open(filename)
	if err != nil {
		return
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	err = dec.Decode(object)
	return
}

// SaveObjectToFile implements the common pattern for saving an object to a file as json
func SaveObjectToFile(filename string, object interface{}, prettyFormat bool) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	var enc *json.Encoder
	if prettyFormat {
		enc = NewFormattedJSONEncoder(f)
	} else {
		enc = json.NewEncoder(f)
	}
	return enc.Encode(object)
}

// SaveNonDefaultValuesToFile saves an object to a file as json, but only fields that are not
// currently set to be the default value.
// Optionally, you can specify an array of field names to always include.
func SaveNonDefaultValuesToFile(filename string, object, defaultObject interface{}, ignore []string, prettyFormat bool) error {
	objectValues, err := createValueMap(object)
	if err != nil {
		return err
	}
	defaultValues, err := createValueMap(defaultObject)
	if err != nil {
		return err
	}

	for name := range objectValues {
		if inStringArray(name, ignore) {
			continue
		}
		if isDefaultValue(name, objectValues, defaultValues) {
			delete(objectValues, name)
		}
	}
	return SaveObjectToFile(filename, objectValues, prettyFormat)
}

func inStringArray(item string, set []string) bool {
	for _, s := range set {
		if item == s {
			return true
		}
	}
	return false
}

// createValueMap maps each top-level field name to its json encoding.
func createValueMap(object interface{}) (map[string]json.RawMessage, error) {
	encoded, err := json.Marshal(object)
	if err != nil {
		return nil, err
	}
	valueMap := make(map[string]json.RawMessage)
	err = json.Unmarshal(encoded, &valueMap)
	return valueMap, err
}

func isDefaultValue(name string, values, defaults map[string]json.RawMessage) bool {
	val, hasVal := values[name]
	def, hasDef := defaults[name]
	if hasVal != hasDef {
		return false
	}
	return bytes.Equal(val, def)
}
