package objres

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tidalware/objstore/objval"
)

// testResponse is an in-memory 'Response' used throughout the package tests.
type testResponse struct {
	status int
	header http.Header
	body   io.Reader
}

func (t *testResponse) StatusCode() int     { return t.status }
func (t *testResponse) Header() http.Header { return t.header }
func (t *testResponse) Body() io.Reader     { return t.body }

// newTestResponse returns an OK response with the given headers and body; a request id is generated unless the
// caller supplies one.
func newTestResponse(headers map[string]string, body string) *testResponse {
	header := make(http.Header)

	for name, value := range headers {
		header.Set(name, value)
	}

	if header.Get(objval.HeaderRequestID) == "" {
		header.Set(objval.HeaderRequestID, uuid.NewString())
	}

	return &testResponse{status: http.StatusOK, header: header, body: strings.NewReader(body)}
}

func TestNewEnvelope(t *testing.T) {
	resp := newTestResponse(map[string]string{objval.HeaderRequestID: "req-42"}, "")

	envelope := NewEnvelope(resp)
	require.Equal(t, http.StatusOK, envelope.Status)
	require.Equal(t, "req-42", envelope.RequestID)
	require.Equal(t, resp.header, envelope.Header)
}

func TestNewEnvelopeMissingRequestID(t *testing.T) {
	resp := &testResponse{status: http.StatusNoContent, header: make(http.Header)}

	envelope := NewEnvelope(resp)
	require.Equal(t, http.StatusNoContent, envelope.Status)
	require.Empty(t, envelope.RequestID)
}

func TestHTTPResponseAdapter(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusPartialContent,
		Header:     http.Header{"Content-Range": []string{"bytes 0-1/2"}},
		Body:       io.NopCloser(strings.NewReader("ab")),
	}

	adapted := HTTPResponse{Resp: resp}
	require.Equal(t, http.StatusPartialContent, adapted.StatusCode())
	require.Equal(t, "bytes 0-1/2", adapted.Header().Get(objval.HeaderContentRange))

	body, err := io.ReadAll(adapted.Body())
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), body)
}
