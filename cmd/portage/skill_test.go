// Package main provides the entry point for the portage CLI.
package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSkillCmd_DefaultMarkdown(t *testing.T) {
	cmd := newSkillCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	requiredSections := []string{
		"# Portage",
		"## Core Concepts",
		"## Workflow Patterns",
		"## Command Reference",
		"## Contract",
	}

	for _, section := range requiredSections {
		if !strings.Contains(output, section) {
			t.Errorf("expected output to contain %q", section)
		}
	}
}

func TestSkillCmd_JSONFormat(t *testing.T) {
	cmd := newSkillCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--format", "json"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result skillResult
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, buf.String())
	}

	if result.Concepts.Definition == "" {
		t.Error("expected concepts.definition to be non-empty")
	}
	if len(result.Workflow.Phases) == 0 {
		t.Error("expected workflow.phases to be non-empty")
	}
	if len(result.Commands) == 0 {
		t.Error("expected commands to be non-empty")
	}
	if len(result.Contract.ExitCodes) != 4 {
		t.Errorf("len(exit_codes) = %d, want 4", len(result.Contract.ExitCodes))
	}
}

func TestSkillCmd_InvalidFormat(t *testing.T) {
	cmd := newSkillCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--format", "xml"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for invalid format")
	}
}
