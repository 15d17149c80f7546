// Package objres translates raw transport responses into the typed results returned to users of the library; it owns
// the response envelope and the header-derived result fields, whilst response bodies are parsed by a separate
// collaborator which fills in the payload fields after construction.
package objres

import (
	"io"
	"net/http"

	"github.com/tidalware/objstore/objval"
)

// Response is the contract the transport layer must satisfy; '*http.Response' is adapted trivially.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Header returns the response headers; lookup is case-insensitive.
	Header() http.Header

	// Body returns the response body; it may only be read once.
	Body() io.Reader
}

// HTTPResponse adapts a '*http.Response' to the 'Response' interface.
type HTTPResponse struct {
	Resp *http.Response
}

func (h HTTPResponse) StatusCode() int     { return h.Resp.StatusCode }
func (h HTTPResponse) Header() http.Header { return h.Resp.Header }
func (h HTTPResponse) Body() io.Reader     { return h.Resp.Body }

// Envelope captures the transport-level metadata common to every result; constructed once per response then
// immutable.
type Envelope struct {
	// Status is the HTTP status code of the response.
	Status int

	// Header contains the response headers.
	Header http.Header

	// RequestID is the tracking id assigned by the service, empty when absent; quote it when raising support
	// tickets.
	RequestID string
}

// NewEnvelope extracts the envelope from the given response; it never fails, a missing tracking header results in an
// empty 'RequestID'.
func NewEnvelope(resp Response) Envelope {
	return Envelope{
		Status:    resp.StatusCode(),
		Header:    resp.Header(),
		RequestID: resp.Header().Get(objval.HeaderRequestID),
	}
}
