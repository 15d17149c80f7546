package objval

// The wire vocabulary shared by the response ('objres') and read-pipeline ('objread') packages; header lookup is
// case-insensitive so the casing here is cosmetic.
const (
	// HeaderRequestID is the request tracking id attached to every response; quote it when raising support tickets.
	HeaderRequestID = "X-Ocs-Request-Id"

	// HeaderObjectType marks how an object was created e.g. "Normal", "Multipart" or "Appendable".
	HeaderObjectType = "X-Ocs-Object-Type"

	// HeaderStorageClass is the storage class the object resides in.
	HeaderStorageClass = "X-Ocs-Storage-Class"

	// HeaderChecksumCRC64 is the CRC-64/NVME checksum of the stored object bytes, as computed by the service.
	HeaderChecksumCRC64 = "X-Ocs-Hash-Crc64nvme"

	// HeaderNextAppendPosition is the offset at which the next 'AppendObject' call must write.
	HeaderNextAppendPosition = "X-Ocs-Next-Append-Position"

	// HeaderVersionID is the version of the object the response describes, only present on versioned buckets.
	HeaderVersionID = "X-Ocs-Version-Id"

	// HeaderSymlinkTarget is the key a symlink object points at, percent-encoded.
	HeaderSymlinkTarget = "X-Ocs-Symlink-Target"

	// HeaderMetaCryptoKey is the envelope-encrypted data key for an object stored with client-side encryption.
	HeaderMetaCryptoKey = "X-Ocs-Meta-Crypto-Key"

	// HeaderMetaCryptoStart is the envelope-encrypted counter offset the cipher stream starts at.
	HeaderMetaCryptoStart = "X-Ocs-Meta-Crypto-Start"

	// HeaderMetaCEKAlgorithm identifies the content encryption algorithm e.g. "AES/CTR/NoPadding".
	HeaderMetaCEKAlgorithm = "X-Ocs-Meta-Cek-Alg"

	// HeaderContentRange is the standard partial-content indicator returned for byte-range requests.
	HeaderContentRange = "Content-Range"

	// HeaderETag is the standard HTTP entity tag, returned surrounded by double quotes.
	HeaderETag = "ETag"

	// HeaderContentType is the standard HTTP content type.
	HeaderContentType = "Content-Type"

	// HeaderContentLength is the standard HTTP content length.
	HeaderContentLength = "Content-Length"

	// HeaderLastModified is the standard HTTP last modified time.
	HeaderLastModified = "Last-Modified"
)
