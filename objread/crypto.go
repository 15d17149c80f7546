package objread

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
)

// CryptoProvider supplies the decryption capability for objects stored with client-side encryption.
type CryptoProvider interface {
	// DecryptMetadata resolves the plaintext value of the named encryption metadata header; an absent header must
	// yield an empty string and no error.
	DecryptMetadata(header http.Header, name string) (string, error)

	// DecryptReader wraps the given reader with a streaming decryption transform using the given data key, starting
	// at the given byte offset of the cipher stream.
	DecryptReader(reader io.Reader, key []byte, offset uint64) (io.Reader, error)
}

// AESCTRProvider decrypts objects encrypted with AES in CTR mode, the counter seeded from the byte offset the
// returned data starts at.
type AESCTRProvider struct {
	// Unwrap decrypts the envelope-encrypted metadata values (the data key and start offset are stored wrapped by a
	// master key); if <nil> the values are used verbatim.
	Unwrap func(value string) (string, error)
}

// DecryptMetadata implements the 'CryptoProvider' interface.
func (p AESCTRProvider) DecryptMetadata(header http.Header, name string) (string, error) {
	value := header.Get(name)
	if value == "" || p.Unwrap == nil {
		return value, nil
	}

	unwrapped, err := p.Unwrap(value)
	if err != nil {
		return "", fmt.Errorf("failed to unwrap %q: %w", name, err)
	}

	return unwrapped, nil
}

// DecryptReader implements the 'CryptoProvider' interface; the CTR counter encodes the block the offset falls in,
// any keystream bytes within that block which precede the offset are discarded.
func (p AESCTRProvider) DecryptReader(reader io.Reader, key []byte, offset uint64) (io.Reader, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	binary.BigEndian.PutUint64(iv[8:], offset/aes.BlockSize)

	stream := cipher.NewCTR(block, iv)

	if skip := offset % aes.BlockSize; skip != 0 {
		discard := make([]byte, skip)
		stream.XORKeyStream(discard, discard)
	}

	return &cipher.StreamReader{S: stream, R: reader}, nil
}
