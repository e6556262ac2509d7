package resourceroute

import (
	"fmt"
	"strings"
)

// InvalidResourceError reports a route name whose resource segment does not
// match the resource the resolver was built for. Matching is exact and
// case-sensitive.
type InvalidResourceError struct {
	Want string // resource the resolver was configured with
	Got  string // resource segment taken from the route name
}

func (e *InvalidResourceError) Error() string {
	return fmt.Sprintf("route resource %q does not match configured resource %q", e.Got, e.Want)
}

// InvalidActionError reports a route name whose action segment is not one
// of the seven recognized actions.
type InvalidActionError struct {
	Action string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("unrecognized route action %q", e.Action)
}

// MissingPrefixParamError reports a {placeholder} in the prefix template
// with no matching key in the call's params.
type MissingPrefixParamError struct {
	Param string
}

func (e *MissingPrefixParamError) Error() string {
	return fmt.Sprintf("prefix placeholder {%s} has no matching parameter", e.Param)
}

// MissingIdentifierParamError reports an identifier-bound action whose
// params carry none of the keys the identifier is looked up under.
type MissingIdentifierParamError struct {
	Action Action
	Keys   []string // keys tried, in lookup order
}

func (e *MissingIdentifierParamError) Error() string {
	quoted := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return fmt.Sprintf("action %q requires an identifier parameter: none of %s present",
		e.Action, strings.Join(quoted, ", "))
}
