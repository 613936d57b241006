//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit changes one field of a decoded request body.
type Edit func(body map[string]any)

func Set(key string, value any) Edit {
	return func(body map[string]any) { body[key] = value }
}

func Drop(key string) Edit {
	return func(body map[string]any) { delete(body, key) }
}

// Body turns a request DTO into a JSON object and applies edits, for
// requests the typed DTO cannot express such as missing or mistyped fields.
func Body(t *testing.T, dto any, edits ...Edit) map[string]any {
	t.Helper()
	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, edit := range edits {
		edit(body)
	}
	return body
}
