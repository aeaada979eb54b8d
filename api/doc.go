// Package api exposes the routing engine over HTTP using gin. It is a
// thin transport layer: request/response shapes mirror routing.GridConfig
// and routing.RoutingResponse field-for-field, and the handlers do no
// domain logic beyond binding, dispatch, and status mapping.
//
// Routes:
//
//	POST /routing        submit a GridConfig, get back a RoutingResponse
//	POST /cables/length   stateless length-update acknowledgement
//
// Errors: a request with an unresolvable JSON shape is a 400. A
// routing.Engine error is a 500. There is no other server-side failure
// mode here — the "unknown machine"/"unreachable endpoint" conditions come
// back as a successful RoutingResponse (a warning for an unknown machine,
// a missing cable route for an unreachable one), not as HTTP errors, per
// routing's Outcome design.
package api
