package nbfix

import "github.com/tidwall/gjson"

// IsValidWidgetState reports whether a metadata.widgets value has the
// structure renderers require: a JSON object with a top-level "state" key.
// The contents of "state" are not inspected; presence alone is sufficient.
// Null, arrays, strings, numbers, and objects without "state" (including
// an empty object) are all malformed.
func IsValidWidgetState(value gjson.Result) bool {
	if !value.IsObject() {
		return false
	}
	return value.Get("state").Exists()
}
