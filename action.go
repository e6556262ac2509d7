package resourceroute

import "net/http"

// Action is one of the seven conventional resource-controller actions.
// The set is closed: routes outside it are rejected at resolution time.
type Action int

const (
	ActionIndex Action = iota
	ActionCreate
	ActionStore
	ActionShow
	ActionEdit
	ActionUpdate
	ActionDestroy
)

var actionsByName = map[string]Action{
	"index":   ActionIndex,
	"create":  ActionCreate,
	"store":   ActionStore,
	"show":    ActionShow,
	"edit":    ActionEdit,
	"update":  ActionUpdate,
	"destroy": ActionDestroy,
}

// Actions returns the seven actions in conventional order.
func Actions() []Action {
	return []Action{
		ActionIndex, ActionCreate, ActionStore, ActionShow,
		ActionEdit, ActionUpdate, ActionDestroy,
	}
}

// ParseAction maps an action name from a route string to its Action.
// The second return is false for anything outside the recognized set.
func ParseAction(name string) (Action, bool) {
	a, ok := actionsByName[name]
	return a, ok
}

func (a Action) String() string {
	switch a {
	case ActionIndex:
		return "index"
	case ActionCreate:
		return "create"
	case ActionStore:
		return "store"
	case ActionShow:
		return "show"
	case ActionEdit:
		return "edit"
	case ActionUpdate:
		return "update"
	case ActionDestroy:
		return "destroy"
	}
	return "unknown"
}

// Method returns the canonical HTTP method for the action. The backend
// convention accepts PUT or PATCH for update; this always answers PUT.
func (a Action) Method() string {
	switch a {
	case ActionStore:
		return http.MethodPost
	case ActionUpdate:
		return http.MethodPut
	case ActionDestroy:
		return http.MethodDelete
	case ActionIndex, ActionCreate, ActionShow, ActionEdit:
		return http.MethodGet
	}
	return http.MethodGet
}

// IdentifierBound reports whether the action addresses a single resource
// instance and therefore needs an identifier parameter in its path.
func (a Action) IdentifierBound() bool {
	switch a {
	case ActionShow, ActionEdit, ActionUpdate, ActionDestroy:
		return true
	}
	return false
}
