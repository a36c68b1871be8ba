// Package worker implements the edge worker's HTTP request handler.
// Every inbound request, regardless of method or path, is answered with a
// JSON payload carrying a greeting, the service name, the request's absolute
// URL, and the current UTC timestamp.
package worker
