// Package resourceroute resolves symbolic route names like "photos.show"
// into URLs, following the Laravel resource-controller convention for the
// seven standard actions (index, create, store, show, edit, update,
// destroy). It is a client-side helper: callers reference backend routes by
// name instead of hardcoding path strings, then perform the request
// themselves using the URL and the method from Action.Method.
//
// The package is a pure string builder. It never performs I/O, keeps no
// state between calls, and a RouteFunc may be shared freely across
// goroutines.
package resourceroute

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/salvobee/laravel-resource-route/internal/inflect"
	"github.com/salvobee/laravel-resource-route/internal/urlpath"
)

// Params carries the per-call parameters for a RouteFunc. Values may be
// scalars or slices of scalars. Parameters consumed by prefix placeholders
// or the resource identifier become path segments; everything left over
// becomes a query-string entry. nil values are treated as absent.
type Params map[string]any

// RouteFunc resolves a route name of the form "<resource>.<action>" into a
// URL string. Failures are programming or configuration errors
// (*InvalidResourceError, *InvalidActionError, *MissingPrefixParamError,
// *MissingIdentifierParamError), never transient conditions.
type RouteFunc func(name string, params Params) (string, error)

// New builds a RouteFunc bound to a resource name.
//
// The identifier parameter key for show, edit, update, and destroy defaults
// to the singular form of resource (photos → photo, categories → category);
// WithResourceParam replaces it with an exact name. A literal "id" key is
// accepted as a fallback either way, with the singular key taking priority
// when both are present.
//
// Construction never fails and the returned function captures its
// configuration immutably.
func New(resource string, opts ...Option) RouteFunc {
	cfg := config{resource: resource}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.param == "" {
		cfg.param = inflect.Singularize(resource)
	}
	return func(name string, params Params) (string, error) {
		return resolve(cfg, name, params)
	}
}

// resolve runs one name → URL resolution against an immutable config.
func resolve(cfg config, name string, params Params) (string, error) {
	res, action, _ := strings.Cut(name, ".")
	if res != cfg.resource {
		return "", &InvalidResourceError{Want: cfg.resource, Got: res}
	}
	act, ok := ParseAction(action)
	if !ok {
		return "", &InvalidActionError{Action: action}
	}

	// Keys consumed while building the path; excluded from the query string.
	used := make(map[string]bool)

	prefix, err := expandPrefix(cfg.prefix, params, used)
	if err != nil {
		return "", err
	}
	rel, err := relativeSegment(act, cfg.param, params, used)
	if err != nil {
		return "", err
	}

	u := urlpath.Join(cfg.baseURL, prefix, strings.Trim(cfg.resource, "/"), rel)
	if cfg.trailingSlash && !strings.HasSuffix(u, "/") {
		u += "/"
	}
	if qs := encodeQuery(params, used); qs != "" {
		u += "?" + qs
	}
	return u, nil
}

// expandPrefix substitutes {name} placeholders in the prefix template with
// URL-escaped values from params, recording each consumed key in used.
// A "{" without a closing "}" is kept as literal text.
func expandPrefix(template string, params Params, used map[string]bool) (string, error) {
	if template == "" {
		return "", nil
	}
	var b strings.Builder
	for {
		open := strings.IndexByte(template, '{')
		if open < 0 {
			b.WriteString(template)
			return b.String(), nil
		}
		end := strings.IndexByte(template[open:], '}')
		if end < 0 {
			b.WriteString(template)
			return b.String(), nil
		}
		b.WriteString(template[:open])
		key := template[open+1 : open+end]
		v, ok := lookup(params, key)
		if !ok {
			return "", &MissingPrefixParamError{Param: key}
		}
		b.WriteString(url.PathEscape(stringify(v)))
		used[key] = true
		template = template[open+end+1:]
	}
}

// relativeSegment builds the path piece after the resource root. Index and
// store address the collection, create is the literal form path, and the
// identifier-bound actions interpolate the instance identifier looked up
// under the configured key, falling back to "id".
func relativeSegment(act Action, param string, params Params, used map[string]bool) (string, error) {
	switch act {
	case ActionIndex, ActionStore:
		return "", nil
	case ActionCreate:
		return "create", nil
	}

	keys := []string{param, "id"}
	if param == "id" {
		keys = keys[:1]
	}
	for _, k := range keys {
		v, ok := lookup(params, k)
		if !ok {
			continue
		}
		used[k] = true
		id := url.PathEscape(stringify(v))
		if act == ActionEdit {
			return id + "/edit", nil
		}
		return id, nil
	}
	return "", &MissingIdentifierParamError{Action: act, Keys: keys}
}

// encodeQuery serializes every parameter not consumed during path
// construction. Slice values produce repeated key[]=item pairs in element
// order; keys are emitted in sorted order so output is deterministic.
func encodeQuery(params Params, used map[string]bool) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if used[k] || v == nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var pairs []string
	for _, k := range keys {
		pairs = appendQueryPairs(pairs, k, params[k])
	}
	return strings.Join(pairs, "&")
}

func appendQueryPairs(pairs []string, key string, v any) []string {
	ek := url.QueryEscape(key)

	// []byte reads as a scalar string, not a sequence of numbers.
	if b, ok := v.([]byte); ok {
		return append(pairs, ek+"="+url.QueryEscape(string(b)))
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			item := rv.Index(i).Interface()
			if item == nil {
				continue
			}
			pairs = append(pairs, ek+"[]="+url.QueryEscape(stringify(item)))
		}
		return pairs
	}
	return append(pairs, ek+"="+url.QueryEscape(stringify(v)))
}

// lookup reports whether params carries a non-nil value for key.
func lookup(params Params, key string) (any, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// stringify renders a scalar parameter value for URL use.
func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}
