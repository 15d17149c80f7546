package objres

import (
	"net/url"
	"time"

	"github.com/tidalware/objstore/objval"
)

// HeadObjectResult is returned by 'HeadObject'; every field is derived from the response headers at construction,
// optional fields are <nil> when the corresponding header is absent.
type HeadObjectResult struct {
	Envelope

	// ObjectType marks how the object was created.
	ObjectType objval.ObjectType

	// LastModified is the time the object was last updated (or created).
	LastModified *time.Time

	// ContentType is the MIME type of the object.
	ContentType string

	// ContentLength is the size of the (returned portion of the) object in bytes.
	ContentLength *int64

	// ETag is the HTTP entity tag for the object, without the surrounding quotes.
	ETag *string

	// VersionID is the version of the object the response describes, only present on versioned buckets.
	VersionID *string
}

// NewHeadObjectResult derives a result from the headers of the given response.
func NewHeadObjectResult(resp Response) *HeadObjectResult {
	header := resp.Header()

	return &HeadObjectResult{
		Envelope:      NewEnvelope(resp),
		ObjectType:    objval.ObjectType(header.Get(objval.HeaderObjectType)),
		LastModified:  LookupTime(header, objval.HeaderLastModified),
		ContentType:   header.Get(objval.HeaderContentType),
		ContentLength: LookupInt(header, objval.HeaderContentLength),
		ETag:          LookupETag(header),
		VersionID:     LookupString(header, objval.HeaderVersionID),
	}
}

// GetObjectMetaResult is returned by 'GetObjectMeta', a cheaper alternative to 'HeadObject' which only returns basic
// metadata.
type GetObjectMetaResult struct {
	Envelope

	// LastModified is the time the object was last updated (or created).
	LastModified *time.Time

	// ContentLength is the size of the object in bytes.
	ContentLength *int64

	// ETag is the HTTP entity tag for the object, without the surrounding quotes.
	ETag *string
}

// NewGetObjectMetaResult derives a result from the headers of the given response.
func NewGetObjectMetaResult(resp Response) *GetObjectMetaResult {
	header := resp.Header()

	return &GetObjectMetaResult{
		Envelope:      NewEnvelope(resp),
		LastModified:  LookupTime(header, objval.HeaderLastModified),
		ContentLength: LookupInt(header, objval.HeaderContentLength),
		ETag:          LookupETag(header),
	}
}

// GetSymlinkResult is returned by 'GetSymlink'.
type GetSymlinkResult struct {
	Envelope

	// TargetKey is the key the symlink points at.
	TargetKey string
}

// NewGetSymlinkResult derives a result from the headers of the given response; the target key header is
// percent-encoded on the wire, a value which fails to decode is kept verbatim.
func NewGetSymlinkResult(resp Response) *GetSymlinkResult {
	target := resp.Header().Get(objval.HeaderSymlinkTarget)

	if unescaped, err := url.QueryUnescape(target); err == nil {
		target = unescaped
	}

	return &GetSymlinkResult{Envelope: NewEnvelope(resp), TargetKey: target}
}

// PutObjectResult is returned by 'PutObject'.
type PutObjectResult struct {
	Envelope

	// ETag is the HTTP entity tag for the created object, without the surrounding quotes.
	ETag *string

	// Checksum is the CRC-64/NVME of the stored object, as computed by the service.
	Checksum *uint64

	// VersionID is the version created by the write, only present on versioned buckets.
	VersionID *string
}

// NewPutObjectResult derives a result from the headers of the given response.
func NewPutObjectResult(resp Response) *PutObjectResult {
	return &PutObjectResult{
		Envelope:  NewEnvelope(resp),
		ETag:      LookupETag(resp.Header()),
		Checksum:  LookupUint(resp.Header(), objval.HeaderChecksumCRC64),
		VersionID: LookupString(resp.Header(), objval.HeaderVersionID),
	}
}

// AppendObjectResult is returned by 'AppendObject'.
type AppendObjectResult struct {
	Envelope

	// ETag is the HTTP entity tag for the object, without the surrounding quotes.
	ETag *string

	// Checksum is the CRC-64/NVME of the whole object after the append, as computed by the service.
	Checksum *uint64

	// NextPosition is the offset at which the next append must write.
	NextPosition *int64
}

// NewAppendObjectResult derives a result from the headers of the given response.
func NewAppendObjectResult(resp Response) *AppendObjectResult {
	return &AppendObjectResult{
		Envelope:     NewEnvelope(resp),
		ETag:         LookupETag(resp.Header()),
		Checksum:     LookupUint(resp.Header(), objval.HeaderChecksumCRC64),
		NextPosition: LookupInt(resp.Header(), objval.HeaderNextAppendPosition),
	}
}

// DeleteObjectsResult is returned by 'DeleteObjects'; the deleted keys are filled in by the body parser.
type DeleteObjectsResult struct {
	Envelope

	// DeletedKeys are the keys which were deleted.
	DeletedKeys []string
}

// NewDeleteObjectsResult constructs a result with an empty key list.
func NewDeleteObjectsResult(resp Response) *DeleteObjectsResult {
	return &DeleteObjectsResult{Envelope: NewEnvelope(resp)}
}

// GetObjectACLResult is returned by 'GetObjectACL'; the ACL is filled in by the body parser.
type GetObjectACLResult struct {
	Envelope

	// ACL is the access control level applied to the object.
	ACL objval.ACL
}

// NewGetObjectACLResult constructs a result with an empty ACL.
func NewGetObjectACLResult(resp Response) *GetObjectACLResult {
	return &GetObjectACLResult{Envelope: NewEnvelope(resp)}
}

// ListObjectsResult is returned by 'ListObjects'; all fields are filled in by the body parser.
type ListObjectsResult struct {
	Envelope

	// IsTruncated - if set to true then more objects remain, pass 'NextMarker' to the next call.
	IsTruncated bool

	// NextMarker is the pagination marker for the next call.
	NextMarker string

	// Objects are the listed objects.
	Objects []objval.ObjectInfo

	// Prefixes are the listed common prefixes.
	Prefixes []string
}

// NewListObjectsResult constructs a result with empty listings.
func NewListObjectsResult(resp Response) *ListObjectsResult {
	return &ListObjectsResult{Envelope: NewEnvelope(resp)}
}
