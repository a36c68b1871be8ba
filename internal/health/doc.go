// Package health serves the liveness endpoint. The worker has no external
// dependencies to probe, so a 200 here means the process is up and serving.
package health
