// Package objread composes the read pipeline for an object body: the raw transport stream optionally wrapped by
// progress reporting, checksum accumulation and transparent decryption stages, in that fixed order.
package objread

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/tidalware/objstore/log"
	"github.com/tidalware/objstore/objerr"
	"github.com/tidalware/objstore/objval"
)

// Options encapsulates the options available when constructing a 'Pipeline'.
type Options struct {
	// Body is the raw transport stream; it remains owned by the transport, the pipeline only wraps it.
	//
	// NOTE: This attribute is required.
	Body io.Reader

	// Header contains the response headers the pipeline derives its configuration from.
	//
	// NOTE: This attribute is required.
	Header http.Header

	// RequestID is attached to inconsistency errors for support diagnosis.
	RequestID string

	// ContentLength is the expected number of body bytes, -1 when unknown; reported to the progress callback as the
	// total.
	ContentLength int64

	// Progress is invoked after every read with the cumulative number of raw bytes received; optional.
	Progress ProgressFunc

	// Checksum enables accumulating a CRC-64/NVME over the raw bytes read.
	Checksum bool

	// Crypto enables transparent decryption of objects stored with client-side encryption; optional. When the
	// response carries no encryption metadata at all the provider is ignored.
	Crypto CryptoProvider

	// Logger is the log.Logger to use for reporting information; optional.
	Logger log.Logger
}

// stage is a single capability of the pipeline; each stage wraps the stream composed so far behind the plain
// 'io.Reader' interface, transparent to both data and errors.
type stage struct {
	name string
	wrap func(reader io.Reader) (io.Reader, error)
}

// Pipeline wraps the body of a 'GetObject' response, layering the enabled stages over the raw stream. It is owned by
// a single request and is not safe for concurrent use.
type Pipeline struct {
	stream io.Reader

	checksum       *checksumReader
	serverChecksum *uint64

	logger log.WrappedLogger
}

// NewPipeline validates the requested options against the response metadata then assembles the enabled stages;
// construction fails fast, callers never observe a partially wrapped stream.
func NewPipeline(opts Options) (*Pipeline, error) {
	pipeline := &Pipeline{logger: log.NewWrappedLogger(opts.Logger)}

	// An encrypted object must be fetched whole, the cipher stream is seeded from the start of the object
	if opts.Header.Get(objval.HeaderMetaCryptoKey) != "" && opts.Header.Get(objval.HeaderContentRange) != "" {
		return nil, &objerr.UsageError{Reason: "encrypted objects can not be fetched using a byte-range request"}
	}

	if value := opts.Header.Get(objval.HeaderChecksumCRC64); value != "" {
		if parsed, err := strconv.ParseUint(value, 10, 64); err == nil {
			pipeline.serverChecksum = &parsed
		}
	}

	stages := make([]stage, 0, 3)

	if opts.Progress != nil {
		stages = append(stages, stage{
			name: "progress",
			wrap: func(reader io.Reader) (io.Reader, error) {
				return newProgressReader(reader, opts.Progress, opts.ContentLength), nil
			},
		})
	}

	if opts.Checksum {
		stages = append(stages, stage{
			name: "checksum",
			wrap: func(reader io.Reader) (io.Reader, error) {
				pipeline.checksum = newChecksumReader(reader)
				return pipeline.checksum, nil
			},
		})
	}

	decrypt, err := decryptStage(opts)
	if err != nil {
		return nil, err
	}

	if decrypt != nil {
		stages = append(stages, *decrypt)
	}

	stream, err := assemble(opts.Body, stages, &pipeline.logger)
	if err != nil {
		return nil, err
	}

	pipeline.stream = stream

	return pipeline, nil
}

// assemble layers the given stages over the raw stream in order, the last stage ending up innermost from the wire's
// point of view and outermost from the caller's.
func assemble(raw io.Reader, stages []stage, logger *log.WrappedLogger) (io.Reader, error) {
	composed := raw

	for _, stage := range stages {
		wrapped, err := stage.wrap(composed)
		if err != nil {
			return nil, fmt.Errorf("failed to enable %s stage: %w", stage.name, err)
		}

		logger.Debugf("(objread) Enabled %s stage", stage.name)

		composed = wrapped
	}

	return composed, nil
}

// decryptStage returns the decryption stage for the given options, <nil> when decryption is not requested or the
// object is not encrypted.
func decryptStage(opts Options) (*stage, error) {
	if opts.Crypto == nil {
		return nil, nil
	}

	key, err := opts.Crypto.DecryptMetadata(opts.Header, objval.HeaderMetaCryptoKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt key metadata: %w", err)
	}

	start, err := opts.Crypto.DecryptMetadata(opts.Header, objval.HeaderMetaCryptoStart)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt start metadata: %w", err)
	}

	algorithm := opts.Header.Get(objval.HeaderMetaCEKAlgorithm)

	present := 0

	for _, value := range []string{key, start, algorithm} {
		if value != "" {
			present++
		}
	}

	// A plain object fetched with a crypto provider supplied; nothing to decrypt
	if present == 0 {
		return nil, nil
	}

	if present < 3 {
		return nil, &objerr.InconsistencyError{
			Reason: fmt.Sprintf("all of the %q, %q and %q headers are required for decryption",
				objval.HeaderMetaCryptoKey, objval.HeaderMetaCryptoStart, objval.HeaderMetaCEKAlgorithm),
			RequestID: opts.RequestID,
		}
	}

	rawKey, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, &objerr.InconsistencyError{
			Reason:    fmt.Sprintf("the decrypted data key is not valid base64: %s", err),
			RequestID: opts.RequestID,
		}
	}

	offset, err := strconv.ParseUint(start, 10, 64)
	if err != nil {
		return nil, &objerr.InconsistencyError{
			Reason:    fmt.Sprintf("the decrypted start offset %q is not an integer", start),
			RequestID: opts.RequestID,
		}
	}

	wrap := func(reader io.Reader) (io.Reader, error) {
		return opts.Crypto.DecryptReader(reader, rawKey, offset)
	}

	return &stage{name: "decrypt", wrap: wrap}, nil
}

// Read reads from the outermost enabled stage (or the raw stream when none are), implementing 'io.Reader'; it blocks
// exactly as the underlying transport blocks and errors propagate unchanged.
func (p *Pipeline) Read(b []byte) (int, error) {
	return p.stream.Read(b)
}

// ForEachLine runs the given function once for each line read from the composed stream; a single pass which consumes
// the stream. Lines may be arbitrarily long, the only memory bound is the longest single line.
func (p *Pipeline) ForEachLine(fn func(line []byte) error) error {
	reader := bufio.NewReader(p.stream)

	for {
		line, err := reader.ReadBytes('\n')

		if len(line) > 0 {
			line = bytes.TrimSuffix(line, []byte("\n"))
			line = bytes.TrimSuffix(line, []byte("\r"))

			if err := fn(line); err != nil {
				return err
			}
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

// ClientChecksum returns the CRC-64/NVME accumulated over the bytes read so far, <nil> unless the checksum stage is
// enabled; it never reports a checksum which does not correspond to bytes read through the pipeline.
func (p *Pipeline) ClientChecksum() *uint64 {
	if p.checksum == nil {
		return nil
	}

	sum := p.checksum.Sum64()

	return &sum
}

// ServerChecksum returns the CRC-64/NVME of the stored object as reported by the service, <nil> when the response
// did not carry one; available before any bytes have been read.
func (p *Pipeline) ServerChecksum() *uint64 {
	return p.serverChecksum
}
