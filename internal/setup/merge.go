package setup

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/jofu-tofu/portage/internal/output"
)

// DeepMerge folds src into dst and returns the result. Maps merge
// recursively, lists union (existing elements first, deep-equal duplicates
// skipped), and scalar conflicts keep the existing dst value. dst is never
// mutated.
func DeepMerge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}

	for k, sv := range src {
		dv, exists := out[k]
		if !exists {
			out[k] = sv
			continue
		}

		dMap, dOK := dv.(map[string]any)
		sMap, sOK := sv.(map[string]any)
		if dOK && sOK {
			out[k] = DeepMerge(dMap, sMap)
			continue
		}

		dList, dOK := dv.([]any)
		sList, sOK := sv.([]any)
		if dOK && sOK {
			out[k] = unionLists(dList, sList)
			continue
		}

		// Scalar or mismatched kinds: existing data wins.
	}
	return out
}

// unionLists appends elements of src not already deep-equal to an element
// of dst.
func unionLists(dst, src []any) []any {
	out := make([]any, len(dst), len(dst)+len(src))
	copy(out, dst)
	for _, sv := range src {
		found := false
		for _, dv := range out {
			if reflect.DeepEqual(dv, sv) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, sv)
		}
	}
	return out
}

// MergeSettingsFile folds incoming into the JSON settings file at path,
// creating the file when absent. Existing keys are never dropped.
func MergeSettingsFile(path string, incoming map[string]any) error {
	existing := map[string]any{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(data, &existing); jsonErr != nil {
			return output.NewEnvErrorWithCause("settings file is not valid JSON: "+path, jsonErr)
		}
	case !os.IsNotExist(err):
		return output.NewEnvErrorWithCause("failed to read settings file", err)
	}

	merged := DeepMerge(existing, incoming)

	encoded, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return output.NewFailureErrorWithCause("failed to encode settings", err)
	}
	encoded = append(encoded, '\n')

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return output.NewEnvErrorWithCause("failed to write settings file", err)
	}
	return nil
}
