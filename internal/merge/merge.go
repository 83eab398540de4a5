// Package merge implements the deep-merge engine used to fold persona
// templates into a single configuration tree.
package merge

// Merge combines source into a copy of target, key by key:
//
//   - arrays in source fully replace the target value, never concatenate
//   - nested objects merge recursively, treating an absent target branch as
//     empty, so nested leaves the source does not re-specify are preserved
//   - everything else (scalars, nil) replaces the target value outright
//
// Neither input is mutated. Merging an empty source is a no-op and merging the
// same source twice is idempotent.
func Merge(target, source map[string]any) map[string]any {
	result := make(map[string]any, len(target)+len(source))
	for k, v := range target {
		result[k] = v
	}

	for key, value := range source {
		switch src := value.(type) {
		case []any:
			result[key] = src
		case map[string]any:
			base, _ := result[key].(map[string]any)
			result[key] = Merge(base, src)
		default:
			result[key] = value
		}
	}

	return result
}

// Fold merges the given trees left to right into a fresh tree. Later operands
// may override any leaf set by earlier ones but cannot erase sibling leaves
// they do not mention.
func Fold(trees ...map[string]any) map[string]any {
	composed := map[string]any{}
	for _, t := range trees {
		composed = Merge(composed, t)
	}
	return composed
}

// Clone deep-copies a tree. Merge results share nested branches with their
// source operands, so stages that mutate the composed tree in place must work
// on a clone or they would corrupt the caller's retained templates.
func Clone(tree map[string]any) map[string]any {
	out := make(map[string]any, len(tree))
	for k, v := range tree {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return Clone(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
