// Package normalizer turns upstream clinic API records, whose field names vary in
// casing and spelling, into the fixed internal model types.
package normalizer

import (
	"strings"

	"github.com/tidwall/gjson"
)

// canonical folds PatientID, patient_id, patient-id and patientId to "patientid".
func canonical(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer("_", "", "-", "").Replace(key)
}

// fields indexes obj by canonical key. When two keys fold to the same canonical
// name the one appearing first in the document wins.
type fields map[string]gjson.Result

func indexFields(obj gjson.Result) fields {
	index := fields{}
	obj.ForEach(func(key, value gjson.Result) bool {
		name := canonical(key.String())
		if _, seen := index[name]; !seen {
			index[name] = value
		}
		return true
	})
	return index
}

// lookup returns the first alias present with a non-null value, in alias order.
func (f fields) lookup(aliases ...string) gjson.Result {
	for _, alias := range aliases {
		value, ok := f[canonical(alias)]
		if ok && value.Exists() && value.Type != gjson.Null {
			return value
		}
	}
	return gjson.Result{}
}

func (f fields) str(aliases ...string) string {
	value := f.lookup(aliases...)
	if !value.Exists() || value.IsObject() || value.IsArray() {
		return ""
	}
	return strings.TrimSpace(value.String())
}

func (f fields) integer(aliases ...string) int64 {
	value := f.lookup(aliases...)
	if !value.Exists() {
		return 0
	}
	if value.Type == gjson.String {
		return gjson.Parse(strings.TrimSpace(value.Str)).Int()
	}
	return value.Int()
}

func (f fields) boolean(defaultValue bool, aliases ...string) bool {
	value := f.lookup(aliases...)
	if !value.Exists() {
		return defaultValue
	}
	if value.Type == gjson.String {
		switch strings.ToLower(strings.TrimSpace(value.Str)) {
		case "true", "1", "yes", "active":
			return true
		case "false", "0", "no", "inactive":
			return false
		}
		return defaultValue
	}
	return value.Bool()
}

// records extracts the list of objects from a bare array or from the first
// envelope key holding an array.
func records(raw []byte, envelopes ...string) []gjson.Result {
	root := gjson.ParseBytes(raw)
	var list gjson.Result
	switch {
	case root.IsArray():
		list = root
	case root.IsObject():
		list = indexFields(root).lookup(envelopes...)
	}
	if !list.IsArray() {
		return nil
	}
	var out []gjson.Result
	for _, item := range list.Array() {
		if item.IsObject() {
			out = append(out, item)
		}
	}
	return out
}

// object unwraps the first envelope key holding an object, else the root itself.
func object(raw []byte, envelopes ...string) gjson.Result {
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return gjson.Result{}
	}
	if inner := indexFields(root).lookup(envelopes...); inner.IsObject() {
		return inner
	}
	return root
}
