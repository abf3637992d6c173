// Package pkgrouter is the HTTP edge of the service.
//
// It wraps httprouter with a middleware chain (panic recovery, correlation
// IDs, access logging) and turns handler results into JSON: payloads are
// encoded as they are, errors become {"error": ..., "success": false} with
// the status taken from pkgerror.
package pkgrouter
