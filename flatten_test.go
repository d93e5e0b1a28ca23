package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenRecord(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  map[string]any
	}{
		{
			name:  "no metricAttributes is identity",
			input: map[string]any{"timestamp": float64(1), "metricName": "fps"},
			want:  map[string]any{"timestamp": float64(1), "metricName": "fps"},
		},
		{
			name: "object attributes become attr_ fields",
			input: map[string]any{
				"timestamp": float64(1),
				"metricAttributes": map[string]any{
					"device": "x",
					"count":  float64(3),
				},
			},
			want: map[string]any{
				"timestamp":   float64(1),
				"attr_device": "x",
				"attr_count":  float64(3),
			},
		},
		{
			name: "JSON-encoded string attributes behave like the object case",
			input: map[string]any{
				"sessionId":        "s1",
				"metricAttributes": `{"device":"x","connected":true}`,
			},
			want: map[string]any{
				"sessionId":      "s1",
				"attr_device":    "x",
				"attr_connected": true,
			},
		},
		{
			name: "invalid JSON string is kept verbatim",
			input: map[string]any{
				"sessionId":        "s1",
				"metricAttributes": "{not json",
			},
			want: map[string]any{
				"sessionId":        "s1",
				"metricAttributes": "{not json",
			},
		},
		{
			name: "string decoding to a non-object keeps the original string",
			input: map[string]any{
				"sessionId":        "s1",
				"metricAttributes": "[1,2,3]",
			},
			want: map[string]any{
				"sessionId":        "s1",
				"metricAttributes": "[1,2,3]",
			},
		},
		{
			name: "non-string non-object value is left untouched",
			input: map[string]any{
				"sessionId":        "s1",
				"metricAttributes": float64(42),
			},
			want: map[string]any{
				"sessionId":        "s1",
				"metricAttributes": float64(42),
			},
		},
		{
			name: "nested values inside attributes are not flattened further",
			input: map[string]any{
				"metricAttributes": map[string]any{
					"extra": map[string]any{"a": float64(1)},
				},
			},
			want: map[string]any{
				"attr_extra": map[string]any{"a": float64(1)},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := flattenRecord(tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFlattenRecord_DoesNotMutateInput(t *testing.T) {
	input := map[string]any{
		"timestamp":        float64(1),
		"metricAttributes": map[string]any{"device": "x"},
	}
	_ = flattenRecord(input)

	assert.Contains(t, input, "metricAttributes")
	assert.NotContains(t, input, "attr_device")
}
