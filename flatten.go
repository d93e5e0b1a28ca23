package main

import "encoding/json"

// flattenRecord lifts the nested metricAttributes object into top-level
// attr_* fields. The pipeline sometimes delivers metricAttributes as a
// JSON-encoded string, so a string value gets one decode attempt first; if
// that fails the raw string is kept under its original key. A value that is
// neither a string nor an object (after decoding) is also left untouched.
func flattenRecord(record map[string]any) map[string]any {
	flattened := make(map[string]any, len(record))
	for k, v := range record {
		flattened[k] = v
	}

	attrs, ok := flattened["metricAttributes"]
	if !ok {
		return flattened
	}

	if s, isString := attrs.(string); isString {
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err == nil {
			attrs = decoded
		}
	}

	if m, isMap := attrs.(map[string]any); isMap {
		for key, value := range m {
			flattened["attr_"+key] = value
		}
		delete(flattened, "metricAttributes")
	}

	return flattened
}
