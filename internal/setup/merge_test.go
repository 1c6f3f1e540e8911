package setup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDeepMerge(t *testing.T) {
	t.Run("adds new keys", func(t *testing.T) {
		dst := map[string]any{"a": "1"}
		src := map[string]any{"b": "2"}
		got := DeepMerge(dst, src)
		want := map[string]any{"a": "1", "b": "2"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("DeepMerge() = %v, want %v", got, want)
		}
	})

	t.Run("existing scalar wins on conflict", func(t *testing.T) {
		dst := map[string]any{"model": "existing"}
		src := map[string]any{"model": "incoming"}
		got := DeepMerge(dst, src)
		if got["model"] != "existing" {
			t.Errorf("got %v, want existing value preserved", got["model"])
		}
	})

	t.Run("merges nested maps recursively", func(t *testing.T) {
		dst := map[string]any{
			"permissions": map[string]any{"allow": []any{"Read"}},
		}
		src := map[string]any{
			"permissions": map[string]any{"deny": []any{"Bash"}},
		}
		got := DeepMerge(dst, src)
		perms, ok := got["permissions"].(map[string]any)
		if !ok {
			t.Fatalf("permissions is %T, want map", got["permissions"])
		}
		if _, ok := perms["allow"]; !ok {
			t.Error("existing allow key was dropped")
		}
		if _, ok := perms["deny"]; !ok {
			t.Error("incoming deny key was not added")
		}
	})

	t.Run("unions lists without duplicates", func(t *testing.T) {
		dst := map[string]any{"allow": []any{"Read", "Write"}}
		src := map[string]any{"allow": []any{"Write", "Bash"}}
		got := DeepMerge(dst, src)
		want := []any{"Read", "Write", "Bash"}
		if !reflect.DeepEqual(got["allow"], want) {
			t.Errorf("got %v, want %v", got["allow"], want)
		}
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		dst := map[string]any{"a": map[string]any{"x": "1"}}
		src := map[string]any{"a": map[string]any{"y": "2"}}
		DeepMerge(dst, src)
		inner := dst["a"].(map[string]any)
		if _, ok := inner["y"]; ok {
			t.Error("dst was mutated")
		}
	})
}

func TestMergeSettingsFile(t *testing.T) {
	t.Run("creates file when absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		if err := MergeSettingsFile(path, map[string]any{"key": "value"}); err != nil {
			t.Fatalf("MergeSettingsFile() error: %v", err)
		}
		got := readSettings(t, path)
		if got["key"] != "value" {
			t.Errorf("got %v, want value", got["key"])
		}
	})

	t.Run("preserves existing keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		writeSettings(t, path, map[string]any{"existing": "keep", "shared": "original"})

		err := MergeSettingsFile(path, map[string]any{"shared": "incoming", "added": "new"})
		if err != nil {
			t.Fatalf("MergeSettingsFile() error: %v", err)
		}

		got := readSettings(t, path)
		if got["existing"] != "keep" {
			t.Error("existing key was dropped")
		}
		if got["shared"] != "original" {
			t.Errorf("shared = %v, want original value kept", got["shared"])
		}
		if got["added"] != "new" {
			t.Error("incoming key was not added")
		}
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := MergeSettingsFile(path, map[string]any{"a": "1"}); err == nil {
			t.Error("expected error for invalid JSON, got nil")
		}
	})
}

func writeSettings(t *testing.T, path string, v map[string]any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func readSettings(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatal(err)
	}
	return v
}
