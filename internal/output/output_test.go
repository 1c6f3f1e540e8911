package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrinterSuccess(t *testing.T) {
	t.Run("json mode", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, true, false)

		if err := p.Success(map[string]any{"message": "done", "count": 2}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got map[string]any
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
		}
		if got["message"] != "done" {
			t.Errorf("message = %v", got["message"])
		}
	})

	t.Run("human mode with message", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, false, false)

		if err := p.Success(map[string]any{"message": "wrote file"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "wrote file") {
			t.Errorf("output = %q", buf.String())
		}
	})
}

func TestPrinterError(t *testing.T) {
	t.Run("json error carries code", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, true, false)

		p.Error(NewUsageError("unknown platform"))

		var got map[string]any
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if got["error"] != "unknown platform" {
			t.Errorf("error = %v", got["error"])
		}
		if got["code"] != float64(ExitUsage) {
			t.Errorf("code = %v, want %d", got["code"], ExitUsage)
		}
	})

	t.Run("human error goes to stderr writer", func(t *testing.T) {
		var out, errOut bytes.Buffer
		p := NewPrinter(&out, false, false).WithStderr(&errOut)

		p.Error(NewFailureError("boom"))

		if out.Len() != 0 {
			t.Errorf("stdout should be empty: %q", out.String())
		}
		if !strings.Contains(errOut.String(), "boom") {
			t.Errorf("stderr = %q", errOut.String())
		}
	})

	t.Run("untyped error treated as failure", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewPrinter(&buf, true, false)

		p.Error(errors.New("plain failure"))

		var got map[string]any
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if got["code"] != float64(ExitFailure) {
			t.Errorf("code = %v, want %d", got["code"], ExitFailure)
		}
	})
}

func TestPrinterKeyValueAndSection(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.Section("Warnings")
	p.KeyValue("Platform", "windsurf")

	out := buf.String()
	if !strings.Contains(out, "Warnings") {
		t.Errorf("section title missing: %q", out)
	}
	if !strings.Contains(out, "Platform: windsurf") {
		t.Errorf("key-value missing: %q", out)
	}
}

func TestPrinterStderrSuppressedInJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, true, false).WithStderr(&errOut)

	p.Stderr("hint: %s\n", "something")

	if errOut.Len() != 0 {
		t.Errorf("stderr hints must be suppressed in JSON mode: %q", errOut.String())
	}
}
