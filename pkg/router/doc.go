// Package router compiles parsed route patterns into runtime matchers and
// resolves argument vectors against them.
//
// The router provides:
//   - Compilation of validated pattern ASTs into immutable CompiledRoutes
//   - Specificity scoring so literal routes always outrank generic ones
//   - A sorted endpoint collection with case-insensitive duplicate handling
//   - A resolver that walks candidates in priority order and extracts raw
//     string bindings
//
// # Usage
//
//	c := router.NewEndpointCollection()
//	c.Register("status", statusHandler)
//	c.Register("add {a:int} {b:int}", addHandler)
//	c.Register("echo {*text}", echoHandler)
//
//	r := router.NewResolver(c)
//	result, err := r.Resolve([]string{"add", "5", "3"})
//	if err != nil {
//	    // nil argv: an embedding bug, not bad user input
//	}
//	if result.Matched {
//	    // result.Get("a") == "5", result.Get("b") == "3"
//	    // result.Endpoint.Handler is whatever was registered
//	}
//
// Registration happens single-threaded at startup; after that the collection
// is read-only and any number of goroutines may resolve concurrently. The
// resolver performs no I/O and never blocks.
//
// Bindings are raw strings. Converting "5" into an int using the parameter's
// declared constraint name is the caller's job, as is invoking the handler.
package router
