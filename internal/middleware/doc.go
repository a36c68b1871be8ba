// Package middleware provides HTTP middleware shared by all routes.
// Currently this is request-ID propagation: inbound X-Request-Id headers are
// honored, otherwise a fresh UUID is minted, and the ID is stamped on the
// request context and the response.
package middleware
