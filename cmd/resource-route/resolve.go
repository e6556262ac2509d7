package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	route "github.com/salvobee/laravel-resource-route"
	"github.com/salvobee/laravel-resource-route/internal/manifest"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <resource.action>",
		Short: "Resolve a route name into a URL",
		Long: `Resolve a route name like "photos.show" into a URL.

Resource options come either from a routes manifest (--config, looked up by
the resource segment of the name) or directly from flags.`,
		Args: cobra.ExactArgs(1),
		RunE: runResolve,
	}
	cmd.Flags().StringArrayP("param", "p", nil, "route parameter as key=value (repeatable; repeated keys form a list)")
	cmd.Flags().String("config", "", "routes manifest to take resource options from")
	cmd.Flags().String("prefix", "", "nested-path prefix template, e.g. /users/{user}")
	cmd.Flags().String("resource-param", "", "identifier parameter name override")
	cmd.Flags().String("base-url", "", "absolute base URL")
	cmd.Flags().Bool("trailing-slash", false, "append a trailing slash")
	cmd.Flags().Bool("method", false, "prepend the HTTP method to the output")
	return cmd
}

func newMethodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "method <action>",
		Short: "Print the canonical HTTP method for an action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			act, ok := route.ParseAction(args[0])
			if !ok {
				return fmt.Errorf("unrecognized action %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), act.Method())
			return nil
		},
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	name := args[0]
	resource, action, _ := strings.Cut(name, ".")

	resolver, err := resolverFor(cmd, resource)
	if err != nil {
		return err
	}

	kvs, _ := cmd.Flags().GetStringArray("param")
	params, err := parseParams(kvs)
	if err != nil {
		return err
	}

	url, err := resolver(name, params)
	if err != nil {
		return err
	}

	if withMethod, _ := cmd.Flags().GetBool("method"); withMethod {
		// A successful resolve guarantees the action parses.
		act, _ := route.ParseAction(action)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", act.Method(), url)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

// resolverFor builds the resolver for a resource, preferring the manifest
// when --config is set and falling back to per-flag options.
func resolverFor(cmd *cobra.Command, resource string) (route.RouteFunc, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		m, err := manifest.Load(path)
		if err != nil {
			return nil, err
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}
		d, ok := m.Lookup(resource)
		if !ok {
			return nil, fmt.Errorf("resource %q not defined in %s", resource, path)
		}
		return d.Resolver(), nil
	}

	var opts []route.Option
	if v, _ := cmd.Flags().GetString("prefix"); v != "" {
		opts = append(opts, route.WithPrefix(v))
	}
	if v, _ := cmd.Flags().GetString("resource-param"); v != "" {
		opts = append(opts, route.WithResourceParam(v))
	}
	if v, _ := cmd.Flags().GetString("base-url"); v != "" {
		opts = append(opts, route.WithBaseURL(v))
	}
	if v, _ := cmd.Flags().GetBool("trailing-slash"); v {
		opts = append(opts, route.WithTrailingSlash())
	}
	return route.New(resource, opts...), nil
}

// parseParams turns --param key=value flags into route params. Repeating a
// key collects its values into a list, which the resolver serializes as
// key[]= query pairs.
func parseParams(kvs []string) (route.Params, error) {
	params := route.Params{}
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --param %q: want key=value", kv)
		}
		switch existing := params[k].(type) {
		case nil:
			params[k] = v
		case string:
			params[k] = []string{existing, v}
		case []string:
			params[k] = append(existing, v)
		}
	}
	return params, nil
}
