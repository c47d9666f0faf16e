package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	t.Run("overlay scalar wins", func(t *testing.T) {
		got := Merge(
			map[string]any{"theme": "light", "locale": "en"},
			map[string]any{"theme": "dark"},
		)
		assert.Equal(t, map[string]any{"theme": "dark", "locale": "en"}, got)
	})

	t.Run("nested maps merge recursively", func(t *testing.T) {
		got := Merge(
			map[string]any{"board": map[string]any{"grid": true, "snap": 8}},
			map[string]any{"board": map[string]any{"snap": 16}},
		)
		assert.Equal(t, map[string]any{
			"board": map[string]any{"grid": true, "snap": 16},
		}, got)
	})

	t.Run("overlay slice replaces base slice", func(t *testing.T) {
		got := Merge(
			map[string]any{"pinned": []any{"a", "b", "c"}},
			map[string]any{"pinned": []any{"z"}},
		)
		assert.Equal(t, map[string]any{"pinned": []any{"z"}}, got)
	})

	t.Run("map overlaying a scalar wins", func(t *testing.T) {
		got := Merge(
			map[string]any{"notify": "all"},
			map[string]any{"notify": map[string]any{"email": false}},
		)
		assert.Equal(t, map[string]any{"notify": map[string]any{"email": false}}, got)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		base := map[string]any{"board": map[string]any{"grid": true}}
		overlay := map[string]any{"board": map[string]any{"grid": false}}
		_ = Merge(base, overlay)
		assert.Equal(t, true, base["board"].(map[string]any)["grid"])
	})

	t.Run("nil sides", func(t *testing.T) {
		assert.Equal(t, map[string]any{"a": 1}, Merge(nil, map[string]any{"a": 1}))
		assert.Equal(t, map[string]any{"a": 1}, Merge(map[string]any{"a": 1}, nil))
	})
}
