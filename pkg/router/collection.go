package router

import (
	"log/slog"
	"sort"

	"github.com/argroute/argroute/pkg/pattern"
)

// EndpointCollection owns the full registered route set, kept sorted
// descending by (explicit order, then specificity) so matching always tries
// the most specific candidates first.
//
// Registration is expected to be single-threaded at startup, strictly before
// matching begins; the collection is treated as read-only afterwards.
type EndpointCollection struct {
	endpoints []*Endpoint
	logger    *slog.Logger
}

// CollectionOption configures an EndpointCollection.
type CollectionOption func(*EndpointCollection)

// WithLogger routes duplicate-pattern override warnings to the given logger.
// The collection owns no logging backend; slog.Default() is used when nothing
// is supplied.
func WithLogger(logger *slog.Logger) CollectionOption {
	return func(c *EndpointCollection) {
		c.logger = logger
	}
}

// NewEndpointCollection creates an empty collection.
func NewEndpointCollection(opts ...CollectionOption) *EndpointCollection {
	c := &EndpointCollection{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterOption configures one endpoint at registration time.
type RegisterOption func(*Endpoint)

// WithOrder sets the endpoint's explicit sort order. Higher orders sort
// earlier; specificity breaks ties.
func WithOrder(order int) RegisterOption {
	return func(e *Endpoint) {
		e.Order = order
	}
}

// WithDescription attaches renderer-facing text to the endpoint.
func WithDescription(description string) RegisterOption {
	return func(e *Endpoint) {
		e.Description = description
	}
}

// Register runs the lex, parse, validate, compile pipeline on the pattern and
// adds the resulting endpoint. Pattern errors block registration and come
// back aggregated as a *pattern.Diagnostics error; an empty pattern is a
// caller-contract violation reported as ErrEmptyPattern.
func (c *EndpointCollection) Register(text string, handler any, opts ...RegisterOption) (*Endpoint, error) {
	canonical, err := CanonicalizePattern(text)
	if err != nil {
		return nil, err
	}

	ast, diags := pattern.Check(text)
	if diags.HasErrors() {
		return nil, diags
	}

	e := &Endpoint{
		Pattern:   text,
		Route:     Compile(ast),
		Handler:   handler,
		canonical: canonical,
	}
	for _, opt := range opts {
		opt(e)
	}

	c.add(e)
	return e, nil
}

// add inserts the endpoint, replacing any earlier registration with the same
// canonical pattern. Overrides are intentional and permissive: patterns may
// be composed incrementally, so the replacement wins and a non-fatal warning
// goes to the diagnostics sink.
func (c *EndpointCollection) add(e *Endpoint) {
	for i, existing := range c.endpoints {
		if existing.canonical == e.canonical {
			c.logger.Warn("route pattern overridden",
				"pattern", e.Pattern,
				"previous", existing.Pattern)
			c.endpoints = append(c.endpoints[:i], c.endpoints[i+1:]...)
			break
		}
	}
	c.endpoints = append(c.endpoints, e)
	c.sort()
}

// sort orders endpoints descending by explicit order, then specificity.
// The stable sort keeps registration order for full ties.
func (c *EndpointCollection) sort() {
	sort.SliceStable(c.endpoints, func(i, j int) bool {
		a, b := c.endpoints[i], c.endpoints[j]
		if a.Order != b.Order {
			return a.Order > b.Order
		}
		return a.Route.Specificity > b.Route.Specificity
	})
}

// Len returns the number of registered endpoints.
func (c *EndpointCollection) Len() int {
	return len(c.endpoints)
}

// Snapshot returns the sorted endpoints as a copy. The slice is safe to hold
// across later registrations; the endpoints themselves are shared and
// immutable after registration.
func (c *EndpointCollection) Snapshot() []*Endpoint {
	return append([]*Endpoint(nil), c.endpoints...)
}
