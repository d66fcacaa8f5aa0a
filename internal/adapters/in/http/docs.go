// Package http exposes the bakery services over REST. Each service gets its
// own server type with echo handlers that decode the request, delegate to a
// command or query handler and wrap the outcome in the shared response
// envelope.
package http
