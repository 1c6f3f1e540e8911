package transform

import (
	"fmt"
	"sort"

	"github.com/jofu-tofu/portage/internal/catalog"
)

// Registry maps platform identifiers to their transformers. Requesting an
// unregistered platform is a configuration error, the engine's only hard
// failure path.
type Registry struct {
	transformers map[catalog.Platform]Transformer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{transformers: make(map[catalog.Platform]Transformer)}
}

// DefaultRegistry returns a registry with every built-in platform registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewClaudeCodeTransformer())
	r.Register(NewWindsurfTransformer())
	r.Register(NewCopilotTransformer())
	return r
}

// Register adds a transformer, replacing any existing one for its platform.
// New platforms plug in here rather than by editing a dispatch switch.
func (r *Registry) Register(t Transformer) {
	r.transformers[t.Platform()] = t
}

// Get returns the transformer for a platform, or an error when none is
// registered. The error is a programming/configuration error and must not be
// swallowed.
func (r *Registry) Get(platform catalog.Platform) (Transformer, error) {
	t, ok := r.transformers[platform]
	if !ok {
		return nil, fmt.Errorf("no transformer registered for platform %q", platform)
	}
	return t, nil
}

// Platforms returns the registered platforms in catalog order, with any
// non-catalog registrations appended.
func (r *Registry) Platforms() []catalog.Platform {
	var out []catalog.Platform
	for _, p := range catalog.AllPlatforms() {
		if _, ok := r.transformers[p]; ok {
			out = append(out, p)
		}
	}
	var extras []catalog.Platform
	for p := range r.transformers {
		known := false
		for _, o := range out {
			if o == p {
				known = true
				break
			}
		}
		if !known {
			extras = append(extras, p)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	return append(out, extras...)
}
