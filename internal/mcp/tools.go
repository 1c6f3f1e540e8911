package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jofu-tofu/portage/internal/catalog"
	"github.com/jofu-tofu/portage/internal/recognize"
	"github.com/jofu-tofu/portage/internal/transform"
)

// ConvertInput is the input for the convert tool.
type ConvertInput struct {
	Source    string   `json:"source"              jsonschema:"the platform-neutral template content to convert"`
	Platforms []string `json:"platforms,omitempty" jsonschema:"target platform identifiers; all platforms when empty"`
}

// PlatformResult is one platform's conversion output.
type PlatformResult struct {
	Platform string              `json:"platform" jsonschema:"the target platform identifier"`
	Content  string              `json:"content"  jsonschema:"the converted document"`
	Warnings []transform.Warning `json:"warnings" jsonschema:"conversion warnings in emission order"`
}

// ConvertOutput is the output for the convert tool.
type ConvertOutput struct {
	Results []PlatformResult `json:"results" jsonschema:"one result per requested platform"`
}

func handleConvert(registry *transform.Registry) mcp.ToolHandlerFor[ConvertInput, ConvertOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ConvertInput) (*mcp.CallToolResult, ConvertOutput, error) {
		if input.Source == "" {
			return nil, ConvertOutput{}, errors.New("source must not be empty")
		}

		platforms, err := resolvePlatforms(input.Platforms)
		if err != nil {
			return nil, ConvertOutput{}, err
		}

		analysis := recognize.Analyze(input.Source)

		results := make([]PlatformResult, 0, len(platforms))
		for _, p := range platforms {
			tr, err := registry.Get(p)
			if err != nil {
				return nil, ConvertOutput{}, err
			}
			res := tr.Transform(analysis, input.Source)
			results = append(results, PlatformResult{
				Platform: string(p),
				Content:  res.Content,
				Warnings: res.Warnings,
			})
		}

		return nil, ConvertOutput{Results: results}, nil
	}
}

// resolvePlatforms parses platform identifiers, defaulting to every
// supported platform when none were given.
func resolvePlatforms(names []string) ([]catalog.Platform, error) {
	if len(names) == 0 {
		return catalog.AllPlatforms(), nil
	}
	platforms := make([]catalog.Platform, 0, len(names))
	for _, name := range names {
		p, err := catalog.ParsePlatform(name)
		if err != nil {
			return nil, fmt.Errorf("invalid platform %q: %w", name, err)
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

// AnalyzeInput is the input for the analyze tool.
type AnalyzeInput struct {
	Source string `json:"source" jsonschema:"the template content to analyze"`
}

// AnalyzeOutput is the output for the analyze tool.
type AnalyzeOutput struct {
	Count      int                         `json:"count"      jsonschema:"number of constructs recognized"`
	Constructs []catalog.SemanticConstruct `json:"constructs" jsonschema:"recognized constructs in document order"`
}

func handleAnalyze(_ *transform.Registry) mcp.ToolHandlerFor[AnalyzeInput, AnalyzeOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, AnalyzeOutput, error) {
		if input.Source == "" {
			return nil, AnalyzeOutput{}, errors.New("source must not be empty")
		}
		analysis := recognize.Analyze(input.Source)
		return nil, AnalyzeOutput{Count: len(analysis), Constructs: analysis}, nil
	}
}

// PlatformsInput is the input for the platforms tool.
type PlatformsInput struct{}

// PlatformsOutput is the output for the platforms tool.
type PlatformsOutput struct {
	Platforms []string `json:"platforms" jsonschema:"supported platform identifiers"`
}

func handlePlatforms(registry *transform.Registry) mcp.ToolHandlerFor[PlatformsInput, PlatformsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ PlatformsInput) (*mcp.CallToolResult, PlatformsOutput, error) {
		ps := registry.Platforms()
		names := make([]string, len(ps))
		for i, p := range ps {
			names[i] = string(p)
		}
		return nil, PlatformsOutput{Platforms: names}, nil
	}
}
