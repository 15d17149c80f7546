package objread

import "io"

// ProgressFunc is invoked after every read with the cumulative number of raw body bytes received, and the expected
// total (-1 when unknown). The counts reflect network bytes, not plaintext bytes, matching the content length of the
// response.
type ProgressFunc func(consumed, total int64)

// progressReader reports cumulative read progress; transparent to both data and errors.
type progressReader struct {
	reader io.Reader
	fn     ProgressFunc

	consumed int64
	total    int64
}

func newProgressReader(reader io.Reader, fn ProgressFunc, total int64) *progressReader {
	return &progressReader{reader: reader, fn: fn, total: total}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.reader.Read(b)

	if n > 0 {
		p.consumed += int64(n)
		p.fn(p.consumed, p.total)
	}

	return n, err
}
