package router_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	route "github.com/salvobee/laravel-resource-route"
	"github.com/salvobee/laravel-resource-route/router"
)

// mountPhotos registers a full photo resource whose handlers echo the
// action name and the bound identifier.
func mountPhotos(t *testing.T) http.Handler {
	t.Helper()

	echo := func(action string) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			fmt.Fprintf(w, "%s:%s", action, req.PathValue("photo"))
		}
	}

	r := router.New()
	router.Mount(r, "photos", router.Resource{
		Index:   echo("index"),
		Create:  echo("create"),
		Store:   echo("store"),
		Show:    echo("show"),
		Edit:    echo("edit"),
		Update:  echo("update"),
		Destroy: echo("destroy"),
	})
	return r
}

func TestMount_Dispatch(t *testing.T) {
	srv := httptest.NewServer(mountPhotos(t))
	defer srv.Close()

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/photos", "index:"},
		{http.MethodGet, "/photos/create", "create:"},
		{http.MethodPost, "/photos", "store:"},
		{http.MethodGet, "/photos/42", "show:42"},
		{http.MethodGet, "/photos/42/edit", "edit:42"},
		{http.MethodPut, "/photos/42", "update:42"},
		{http.MethodDelete, "/photos/42", "destroy:42"},
	}
	for _, tt := range tests {
		req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
		if err != nil {
			t.Fatal(err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s %s: status %d", tt.method, tt.path, resp.StatusCode)
			continue
		}
		if got := string(body); got != tt.want {
			t.Errorf("%s %s: body %q, want %q", tt.method, tt.path, got, tt.want)
		}
	}
}

func TestMount_MatchesResolver(t *testing.T) {
	// URLs produced by the resolver must dispatch to the matching action.
	srv := httptest.NewServer(mountPhotos(t))
	defer srv.Close()

	photos := route.New("photos")

	for _, a := range route.Actions() {
		params := route.Params{}
		if a.IdentifierBound() {
			params["photo"] = 42
		}
		url, err := photos("photos."+a.String(), params)
		if err != nil {
			t.Fatalf("resolve photos.%s: %v", a, err)
		}

		req, err := http.NewRequest(a.Method(), srv.URL+url, nil)
		if err != nil {
			t.Fatal(err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		want := a.String() + ":"
		if a.IdentifierBound() {
			want += "42"
		}
		if got := string(body); got != want {
			t.Errorf("%s %s: body %q, want %q", a.Method(), url, got, want)
		}
	}
}

func TestMount_NilHandlersNotRegistered(t *testing.T) {
	r := router.New()
	router.Mount(r, "photos", router.Resource{
		Index: func(w http.ResponseWriter, req *http.Request) {},
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/photos/create")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Error("create route should not be registered")
	}

	resp, err = http.Get(srv.URL + "/photos")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("index route: status %d", resp.StatusCode)
	}
}
