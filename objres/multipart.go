package objres

import (
	"github.com/tidalware/objstore/objval"
)

// InitiateMultipartUploadResult is returned by 'InitiateMultipartUpload'; the upload id is filled in by the body
// parser.
type InitiateMultipartUploadResult struct {
	Envelope

	// UploadID is the id assigned to the new upload.
	UploadID string
}

// NewInitiateMultipartUploadResult constructs a result with an empty upload id.
func NewInitiateMultipartUploadResult(resp Response) *InitiateMultipartUploadResult {
	return &InitiateMultipartUploadResult{Envelope: NewEnvelope(resp)}
}

// ListMultipartUploadsResult is returned by 'ListMultipartUploads'; all fields are filled in by the body parser.
type ListMultipartUploadsResult struct {
	Envelope

	// IsTruncated - if set to true then more uploads remain, pass the markers to the next call.
	IsTruncated bool

	// NextKeyMarker is the key pagination marker for the next call.
	NextKeyMarker string

	// NextUploadIDMarker is the upload id pagination marker for the next call.
	NextUploadIDMarker string

	// Uploads are the listed in-progress uploads.
	Uploads []objval.UploadInfo

	// Prefixes are the listed common prefixes.
	Prefixes []string
}

// NewListMultipartUploadsResult constructs a result with empty listings.
func NewListMultipartUploadsResult(resp Response) *ListMultipartUploadsResult {
	return &ListMultipartUploadsResult{Envelope: NewEnvelope(resp)}
}

// ListPartsResult is returned by 'ListParts'; all fields are filled in by the body parser.
type ListPartsResult struct {
	Envelope

	// IsTruncated - if set to true then more parts remain, pass 'NextMarker' to the next call.
	IsTruncated bool

	// NextMarker is the pagination marker for the next call.
	NextMarker string

	// Parts are the listed parts.
	Parts []objval.Part
}

// NewListPartsResult constructs a result with an empty listing.
func NewListPartsResult(resp Response) *ListPartsResult {
	return &ListPartsResult{Envelope: NewEnvelope(resp)}
}
