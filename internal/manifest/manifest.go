// Package manifest loads the declarative routes file the CLI works from.
// The file lists resources and the options their resolvers are built with:
//
//	resources:
//	  - resource: photos
//	    prefix: /users/{user}
//	    base_url: https://api.example.com
//	    trailing_slash: true
//	    param: photo
package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	route "github.com/salvobee/laravel-resource-route"
)

// Definition describes one resource and its resolver options.
type Definition struct {
	Resource      string `yaml:"resource"`
	Prefix        string `yaml:"prefix"`
	Param         string `yaml:"param"`
	TrailingSlash bool   `yaml:"trailing_slash"`
	BaseURL       string `yaml:"base_url"`
}

// Manifest is a parsed routes file.
type Manifest struct {
	Resources []Definition `yaml:"resources"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse parses manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// Validate checks every definition and reports all problems at once:
// empty or duplicate resource names, unbalanced braces in prefix
// templates, and empty placeholder names.
func (m *Manifest) Validate() error {
	var problems []string
	seen := make(map[string]bool)

	for i, d := range m.Resources {
		if d.Resource == "" {
			problems = append(problems, fmt.Sprintf("resources[%d]: resource name is empty", i))
			continue
		}
		if seen[d.Resource] {
			problems = append(problems, fmt.Sprintf("resources[%d]: duplicate resource %q", i, d.Resource))
		}
		seen[d.Resource] = true
		problems = append(problems, checkPrefix(i, d)...)
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid manifest:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

// checkPrefix scans a prefix template for brace mistakes the resolver
// would otherwise silently treat as literal text.
func checkPrefix(i int, d Definition) []string {
	var problems []string
	tpl := d.Prefix
	for pos := 0; pos < len(tpl); pos++ {
		switch tpl[pos] {
		case '{':
			end := strings.IndexByte(tpl[pos:], '}')
			if end < 0 {
				return append(problems, fmt.Sprintf(
					"resources[%d] (%s): prefix %q has an unclosed '{'", i, d.Resource, tpl))
			}
			if end == 1 {
				problems = append(problems, fmt.Sprintf(
					"resources[%d] (%s): prefix %q has an empty placeholder", i, d.Resource, tpl))
			}
			pos += end
		case '}':
			return append(problems, fmt.Sprintf(
				"resources[%d] (%s): prefix %q has a '}' without a matching '{'", i, d.Resource, tpl))
		}
	}
	return problems
}

// Lookup finds the definition for a resource name.
func (m *Manifest) Lookup(resource string) (Definition, bool) {
	for _, d := range m.Resources {
		if d.Resource == resource {
			return d, true
		}
	}
	return Definition{}, false
}

// Resolver builds the RouteFunc a definition describes.
func (d Definition) Resolver() route.RouteFunc {
	var opts []route.Option
	if d.Prefix != "" {
		opts = append(opts, route.WithPrefix(d.Prefix))
	}
	if d.Param != "" {
		opts = append(opts, route.WithResourceParam(d.Param))
	}
	if d.TrailingSlash {
		opts = append(opts, route.WithTrailingSlash())
	}
	if d.BaseURL != "" {
		opts = append(opts, route.WithBaseURL(d.BaseURL))
	}
	return route.New(d.Resource, opts...)
}
