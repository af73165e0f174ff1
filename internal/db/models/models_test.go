package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	value, err := StringList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(value.([]byte)))

	value, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(value.([]byte)))
}

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected StringList
	}{
		{
			name:     "JSON array bytes",
			input:    []byte(`["a","b"]`),
			expected: StringList{"a", "b"},
		},
		{
			name:     "JSON array string",
			input:    `["a"]`,
			expected: StringList{"a"},
		},
		{
			name:     "legacy bare JSON string",
			input:    `"/uploads/legacy.jpg"`,
			expected: StringList{"/uploads/legacy.jpg"},
		},
		{
			name:     "legacy raw text",
			input:    "/uploads/legacy.jpg",
			expected: StringList{"/uploads/legacy.jpg"},
		},
		{
			name:     "nil value",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list StringList
			require.NoError(t, list.Scan(tt.input))
			assert.Equal(t, tt.expected, list)
		})
	}
}

func TestStringListScanRejectsOddTypes(t *testing.T) {
	var list StringList
	assert.Error(t, list.Scan(42))
}
