package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeScalarsReplace(t *testing.T) {
	target := map[string]any{"a": 1, "b": "old"}
	source := map[string]any{"b": "new", "c": true}

	got := Merge(target, source)

	assert.Equal(t, 1, got["a"])
	assert.Equal(t, "new", got["b"])
	assert.Equal(t, true, got["c"])
}

func TestMergeNestedMapsRecurse(t *testing.T) {
	target := map[string]any{
		"skillMap": map[string]any{
			"thresholds": map[string]any{
				"averageBaseline": 60,
				"strong":          80,
			},
			"categories": []any{"a", "b"},
		},
	}
	source := map[string]any{
		"skillMap": map[string]any{
			"thresholds": map[string]any{
				"strong": 85,
			},
		},
	}

	got := Merge(target, source)

	thresholds := got["skillMap"].(map[string]any)["thresholds"].(map[string]any)
	assert.Equal(t, 85, thresholds["strong"], "overridden leaf takes the source value")
	assert.Equal(t, 60, thresholds["averageBaseline"], "untouched sibling survives a partial override")
	assert.Equal(t, []any{"a", "b"}, got["skillMap"].(map[string]any)["categories"])
}

func TestMergeArraysReplaceWholesale(t *testing.T) {
	target := map[string]any{"phases": []any{"one", "two", "three"}}
	source := map[string]any{"phases": []any{"replacement"}}

	got := Merge(target, source)

	assert.Equal(t, []any{"replacement"}, got["phases"])
}

func TestMergeEmptySourceIsNoOp(t *testing.T) {
	target := map[string]any{"a": 1, "nested": map[string]any{"b": 2}}

	got := Merge(target, map[string]any{})

	assert.Equal(t, target, got)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	target := map[string]any{"a": map[string]any{"x": 1}}
	source := map[string]any{"a": map[string]any{"y": 2}}

	_ = Merge(target, source)

	assert.Equal(t, map[string]any{"a": map[string]any{"x": 1}}, target)
	assert.Equal(t, map[string]any{"a": map[string]any{"y": 2}}, source)
}

func TestMergeTypeMismatchReplaces(t *testing.T) {
	target := map[string]any{"field": map[string]any{"nested": 1}}
	source := map[string]any{"field": "now a string"}

	got := Merge(target, source)

	assert.Equal(t, "now a string", got["field"])
}

func TestMergeIdempotent(t *testing.T) {
	source := map[string]any{
		"a": 1,
		"b": map[string]any{"c": []any{"x"}, "d": "v"},
	}

	once := Merge(map[string]any{}, source)
	twice := Merge(once, source)

	assert.Equal(t, once, twice)
}

func TestFoldPriorityOrder(t *testing.T) {
	role := map[string]any{"field": "role", "only": "role"}
	level := map[string]any{"field": "level"}
	userType := map[string]any{"field": "user"}
	companyType := map[string]any{"field": "company"}

	got := Fold(role, level, userType, companyType)

	assert.Equal(t, "company", got["field"], "later trees win")
	assert.Equal(t, "role", got["only"], "earlier contributions survive when unchallenged")
}

func TestFoldNilTreesSkipped(t *testing.T) {
	got := Fold(map[string]any{"a": 1}, nil, map[string]any{"b": 2})
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, got)
}

func TestClone(t *testing.T) {
	original := map[string]any{
		"nested": map[string]any{"value": 1},
		"list":   []any{map[string]any{"inner": "x"}},
	}

	clone := Clone(original)
	require.Equal(t, original, clone)

	clone["nested"].(map[string]any)["value"] = 99
	clone["list"].([]any)[0].(map[string]any)["inner"] = "mutated"

	assert.Equal(t, 1, original["nested"].(map[string]any)["value"])
	assert.Equal(t, "x", original["list"].([]any)[0].(map[string]any)["inner"])
}

func TestMergeResultAliasesSource(t *testing.T) {
	// Documents why the orchestrator clones before mutating: arrays are
	// replaced by reference, so their elements share memory with the source.
	source := map[string]any{"phases": []any{map[string]any{"v": 1}}}
	got := Merge(map[string]any{}, source)

	got["phases"].([]any)[0].(map[string]any)["v"] = 2
	assert.Equal(t, 2, source["phases"].([]any)[0].(map[string]any)["v"])
}
