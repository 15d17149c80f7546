package objread

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"slices"
	"strconv"
	"testing"
	"testing/iotest"

	"github.com/minio/crc64nvme"
	"github.com/stretchr/testify/require"

	"github.com/tidalware/objstore/objerr"
	"github.com/tidalware/objstore/objval"
)

func testHeader(pairs map[string]string) http.Header {
	header := make(http.Header)

	for name, value := range pairs {
		header.Set(name, value)
	}

	return header
}

// encrypt runs the given plaintext through the AES-CTR transform; CTR mode is its own inverse so the same transform
// is used by the decryption stage.
func encrypt(t *testing.T, key, plaintext []byte, offset uint64) []byte {
	reader, err := AESCTRProvider{}.DecryptReader(bytes.NewReader(plaintext), key, offset)
	require.NoError(t, err)

	ciphertext, err := io.ReadAll(reader)
	require.NoError(t, err)

	return ciphertext
}

func TestNewPipelineNoStages(t *testing.T) {
	pipeline, err := NewPipeline(Options{
		Body:          bytes.NewReader([]byte("body")),
		Header:        testHeader(nil),
		ContentLength: 4,
	})
	require.NoError(t, err)

	data, err := io.ReadAll(pipeline)
	require.NoError(t, err)
	require.Equal(t, []byte("body"), data)

	require.Nil(t, pipeline.ClientChecksum())
	require.Nil(t, pipeline.ServerChecksum())
}

func TestNewPipelineServerChecksum(t *testing.T) {
	type test struct {
		name     string
		header   http.Header
		expected *uint64
	}

	checksum := uint64(1234567890)

	tests := []*test{
		{
			name:   "absent",
			header: testHeader(nil),
		},
		{
			name:   "malformed",
			header: testHeader(map[string]string{objval.HeaderChecksumCRC64: "not-a-number"}),
		},
		{
			name:     "present",
			header:   testHeader(map[string]string{objval.HeaderChecksumCRC64: "1234567890"}),
			expected: &checksum,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pipeline, err := NewPipeline(Options{Body: bytes.NewReader(nil), Header: test.header})
			require.NoError(t, err)

			// Available before any bytes have been read
			require.Equal(t, test.expected, pipeline.ServerChecksum())
		})
	}
}

func TestNewPipelineEncryptedRangeRead(t *testing.T) {
	header := testHeader(map[string]string{
		objval.HeaderMetaCryptoKey: "irrelevant",
		objval.HeaderContentRange:  "bytes 0-127/1024",
	})

	type test struct {
		name string
		opts Options
	}

	tests := []*test{
		{
			name: "WithoutProvider",
			opts: Options{Body: bytes.NewReader(nil), Header: header},
		},
		{
			name: "WithProvider",
			opts: Options{Body: bytes.NewReader(nil), Header: header, Crypto: AESCTRProvider{}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewPipeline(test.opts)
			require.True(t, objerr.IsUsageError(err))
		})
	}
}

func TestNewPipelineInconsistentEncryptionMetadata(t *testing.T) {
	key := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{42}, 16))

	type test struct {
		name   string
		header http.Header
	}

	tests := []*test{
		{
			name:   "KeyOnly",
			header: testHeader(map[string]string{objval.HeaderMetaCryptoKey: key}),
		},
		{
			name: "KeyAndStart",
			header: testHeader(map[string]string{
				objval.HeaderMetaCryptoKey:   key,
				objval.HeaderMetaCryptoStart: "0",
			}),
		},
		{
			name: "StartAndAlgorithm",
			header: testHeader(map[string]string{
				objval.HeaderMetaCryptoStart:  "0",
				objval.HeaderMetaCEKAlgorithm: "AES/CTR/NoPadding",
			}),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewPipeline(Options{
				Body:      bytes.NewReader(nil),
				Header:    test.header,
				RequestID: "req-1234",
				Crypto:    AESCTRProvider{},
			})

			require.True(t, objerr.IsInconsistencyError(err))

			var inconsistency *objerr.InconsistencyError

			require.ErrorAs(t, err, &inconsistency)
			require.Equal(t, "req-1234", inconsistency.RequestID)
		})
	}
}

func TestNewPipelineProviderIgnoredWithoutMetadata(t *testing.T) {
	pipeline, err := NewPipeline(Options{
		Body:   bytes.NewReader([]byte("plain")),
		Header: testHeader(nil),
		Crypto: AESCTRProvider{},
	})
	require.NoError(t, err)

	data, err := io.ReadAll(pipeline)
	require.NoError(t, err)
	require.Equal(t, []byte("plain"), data)
}

func TestPipelineChecksumAccessorLaw(t *testing.T) {
	body := make([]byte, 4096)

	_, err := rand.Read(body)
	require.NoError(t, err)

	t.Run("Disabled", func(t *testing.T) {
		pipeline, err := NewPipeline(Options{Body: bytes.NewReader(body), Header: testHeader(nil)})
		require.NoError(t, err)

		_, err = io.ReadAll(pipeline)
		require.NoError(t, err)

		require.Nil(t, pipeline.ClientChecksum())
	})

	t.Run("Enabled", func(t *testing.T) {
		pipeline, err := NewPipeline(Options{Body: bytes.NewReader(body), Header: testHeader(nil), Checksum: true})
		require.NoError(t, err)

		_, err = io.ReadAll(pipeline)
		require.NoError(t, err)

		require.NotNil(t, pipeline.ClientChecksum())
		require.Equal(t, crc64nvme.Checksum(body), *pipeline.ClientChecksum())
	})
}

func TestPipelineProgressAndChecksum(t *testing.T) {
	body := make([]byte, 10_000)

	_, err := rand.Read(body)
	require.NoError(t, err)

	var (
		calls    []int64
		consumed int64
	)

	pipeline, err := NewPipeline(Options{
		Body:          bytes.NewReader(body),
		Header:        testHeader(nil),
		ContentLength: int64(len(body)),
		Checksum:      true,
		Progress: func(c, total int64) {
			require.Equal(t, int64(len(body)), total)

			calls = append(calls, c)
			consumed = c
		},
	})
	require.NoError(t, err)

	// Arbitrary chunk sizes
	var data []byte

	for _, size := range []int{1, 7, 512, 13, 9_000, 4_096} {
		chunk := make([]byte, size)

		n, err := pipeline.Read(chunk)
		data = append(data, chunk[:n]...)

		if err == io.EOF {
			break
		}

		require.NoError(t, err)
	}

	rest, err := io.ReadAll(pipeline)
	require.NoError(t, err)

	data = append(data, rest...)

	require.Equal(t, body, data)
	require.Equal(t, int64(len(body)), consumed)
	require.True(t, slices.IsSorted(calls))
	require.Equal(t, crc64nvme.Checksum(body), *pipeline.ClientChecksum())
}

func TestPipelineDecryption(t *testing.T) {
	var (
		key       = bytes.Repeat([]byte{0xbe}, 16)
		plaintext = []byte("the quick brown fox jumps over the lazy dog")
	)

	ciphertext := encrypt(t, key, plaintext, 0)

	header := testHeader(map[string]string{
		objval.HeaderMetaCryptoKey:    base64.StdEncoding.EncodeToString(key),
		objval.HeaderMetaCryptoStart:  "0",
		objval.HeaderMetaCEKAlgorithm: "AES/CTR/NoPadding",
	})

	pipeline, err := NewPipeline(Options{
		Body:     bytes.NewReader(ciphertext),
		Header:   header,
		Checksum: true,
		Crypto:   AESCTRProvider{},
	})
	require.NoError(t, err)

	data, err := io.ReadAll(pipeline)
	require.NoError(t, err)
	require.Equal(t, plaintext, data)

	// The checksum stage runs before decryption, it must describe the stored (encrypted) bytes
	require.Equal(t, crc64nvme.Checksum(ciphertext), *pipeline.ClientChecksum())
}

func TestPipelineDecryptionNonZeroStart(t *testing.T) {
	var (
		key       = bytes.Repeat([]byte{0x7a}, 16)
		plaintext = make([]byte, 1024)
	)

	_, err := rand.Read(plaintext)
	require.NoError(t, err)

	// The service stores the whole cipher stream; a resumed read returns its tail and tells the client which
	// offset it starts at
	var (
		offset     = uint64(100)
		ciphertext = encrypt(t, key, plaintext, 0)[offset:]
	)

	header := testHeader(map[string]string{
		objval.HeaderMetaCryptoKey:    base64.StdEncoding.EncodeToString(key),
		objval.HeaderMetaCryptoStart:  strconv.FormatUint(offset, 10),
		objval.HeaderMetaCEKAlgorithm: "AES/CTR/NoPadding",
	})

	pipeline, err := NewPipeline(Options{
		Body:   bytes.NewReader(ciphertext),
		Header: header,
		Crypto: AESCTRProvider{},
	})
	require.NoError(t, err)

	data, err := io.ReadAll(pipeline)
	require.NoError(t, err)
	require.Equal(t, plaintext[offset:], data)
}

func TestPipelineForEachLine(t *testing.T) {
	pipeline, err := NewPipeline(Options{
		Body:   bytes.NewReader([]byte("alpha\nbravo\ncharlie")),
		Header: testHeader(nil),
	})
	require.NoError(t, err)

	var lines []string

	err = pipeline.ForEachLine(func(line []byte) error {
		lines = append(lines, string(line))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "bravo", "charlie"}, lines)

	// Single pass, the stream is exhausted
	err = pipeline.ForEachLine(func(_ []byte) error {
		t.Fatal("unexpected line after exhaustion")
		return nil
	})
	require.NoError(t, err)
}

func TestPipelineForEachLineLongLines(t *testing.T) {
	long := bytes.Repeat([]byte("x"), 70*1024)

	pipeline, err := NewPipeline(Options{
		Body:   io.MultiReader(bytes.NewReader(long), bytes.NewReader([]byte("\nshort"))),
		Header: testHeader(nil),
	})
	require.NoError(t, err)

	var lines []string

	err = pipeline.ForEachLine(func(line []byte) error {
		lines = append(lines, string(line))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{string(long), "short"}, lines)
}

func TestPipelineReadErrorsPropagate(t *testing.T) {
	pipeline, err := NewPipeline(Options{
		Body:     io.MultiReader(bytes.NewReader([]byte("partial")), iotest.ErrReader(errTransport)),
		Header:   testHeader(nil),
		Checksum: true,
		Progress: func(_, _ int64) {},
	})
	require.NoError(t, err)

	_, err = io.ReadAll(pipeline)
	require.ErrorIs(t, err, errTransport)
}

var errTransport = errors.New("connection reset")
