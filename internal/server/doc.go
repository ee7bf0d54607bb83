// Package server provides HTTP routing and middleware for the local player page.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Middleware
//
// [Logging] records each request with its status and duration through a charmbracelet logger.
// [RateLimit] sheds load with a token bucket and answers 429 once the bucket is empty.
// [Recover] turns a handler panic into a 500.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
