package objread

import (
	"hash"
	"io"

	"github.com/minio/crc64nvme"
)

// checksumReader accumulates a CRC-64/NVME over the bytes read; transparent to both data and errors.
type checksumReader struct {
	reader io.Reader
	hash   hash.Hash64
}

func newChecksumReader(reader io.Reader) *checksumReader {
	return &checksumReader{reader: reader, hash: crc64nvme.New()}
}

func (c *checksumReader) Read(b []byte) (int, error) {
	n, err := c.reader.Read(b)

	if n > 0 {
		// Hash writes never fail
		_, _ = c.hash.Write(b[:n])
	}

	return n, err
}

// Sum64 returns the checksum of the bytes read so far.
func (c *checksumReader) Sum64() uint64 {
	return c.hash.Sum64()
}
