package objres

import (
	"github.com/tidalware/objstore/log"
	"github.com/tidalware/objstore/objread"
)

// GetObjectOptions encapsulates the options available when constructing a 'GetObjectResult'.
type GetObjectOptions struct {
	// Progress is invoked with the cumulative number of body bytes received; optional.
	Progress objread.ProgressFunc

	// Checksum enables computing a client-side CRC-64/NVME over the bytes read.
	Checksum bool

	// Crypto enables transparent decryption of objects stored with client-side encryption; optional.
	Crypto objread.CryptoProvider

	// Logger is the log.Logger to use for reporting information; optional.
	Logger log.Logger
}

// GetObjectResult is returned by 'GetObject'; it carries the same header-derived metadata as 'HeadObjectResult' plus
// the object body, exposed through the composed read pipeline.
type GetObjectResult struct {
	HeadObjectResult

	pipeline *objread.Pipeline
}

// NewGetObjectResult derives the metadata fields from the response headers and wraps the response body in the read
// pipeline; construction fails, before the body is touched, when the requested options are invalid for this response
// (see 'objread.NewPipeline').
func NewGetObjectResult(resp Response, opts GetObjectOptions) (*GetObjectResult, error) {
	head := NewHeadObjectResult(resp)

	length := int64(-1)
	if head.ContentLength != nil {
		length = *head.ContentLength
	}

	pipeline, err := objread.NewPipeline(objread.Options{
		Body:          resp.Body(),
		Header:        resp.Header(),
		RequestID:     head.RequestID,
		ContentLength: length,
		Progress:      opts.Progress,
		Checksum:      opts.Checksum,
		Crypto:        opts.Crypto,
		Logger:        opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &GetObjectResult{HeadObjectResult: *head, pipeline: pipeline}, nil
}

// Read reads from the composed pipeline, implementing 'io.Reader'; errors from the underlying transport propagate
// unchanged.
func (r *GetObjectResult) Read(p []byte) (int, error) {
	return r.pipeline.Read(p)
}

// ForEachLine runs the given function once for each line of the body; the body is consumed, a second call returns
// immediately.
func (r *GetObjectResult) ForEachLine(fn func(line []byte) error) error {
	return r.pipeline.ForEachLine(fn)
}

// ClientChecksum returns the CRC-64/NVME accumulated over the bytes read so far, <nil> unless checksum verification
// was enabled.
func (r *GetObjectResult) ClientChecksum() *uint64 {
	return r.pipeline.ClientChecksum()
}

// ServerChecksum returns the CRC-64/NVME of the stored object as reported by the service, <nil> when the response
// did not carry one.
func (r *GetObjectResult) ServerChecksum() *uint64 {
	return r.pipeline.ServerChecksum()
}
