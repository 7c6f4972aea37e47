// Package http provides the outbound HTTP stack: a round-tripper chain that injects
// default headers and dumps traffic at debug level, and a Dispatcher that sends
// GET and POST requests with JSON bodies, retries, response caching, file downloads
// and GraphQL queries on top of it.
package http
