package resourceroute

// Option configures a resolver created by New.
type Option func(*config)

// config is the immutable configuration a RouteFunc is closed over.
type config struct {
	resource      string
	prefix        string
	param         string
	trailingSlash bool
	baseURL       string
}

// WithPrefix prepends a path template before the resource root, expressing
// nesting. The template may contain {name} placeholders filled from each
// call's params, e.g. "/users/{user}".
func WithPrefix(template string) Option {
	return func(c *config) { c.prefix = template }
}

// WithResourceParam sets the identifier parameter name for identifier-bound
// actions, replacing the singular form derived from the resource name.
func WithResourceParam(name string) Option {
	return func(c *config) { c.param = name }
}

// WithTrailingSlash makes every resolved URL end in "/".
func WithTrailingSlash() Option {
	return func(c *config) { c.trailingSlash = true }
}

// WithBaseURL prepends an absolute base, e.g. "https://api.example.com".
// Without it, resolved URLs are relative paths rooted at "/".
func WithBaseURL(u string) Option {
	return func(c *config) { c.baseURL = u }
}
