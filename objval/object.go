// Package objval exposes the value objects embedded in the typed results returned by the 'objres' package; each is a
// plain struct whose zero value is the documented default, fields are populated by the response body parser.
package objval

import (
	"time"
)

// ObjectType marks how an object was created.
type ObjectType string

const (
	ObjectTypeNormal     ObjectType = "Normal"
	ObjectTypeMultipart  ObjectType = "Multipart"
	ObjectTypeAppendable ObjectType = "Appendable"
)

// ObjectInfo is a single entry in an object listing; it may also represent a common prefix, in which case only 'Key'
// will be populated.
type ObjectInfo struct {
	// Key is the identifier for the object; a unique path.
	Key string

	// ETag is the HTTP entity tag for the object.
	ETag *string

	// Size is the size or content length of the object in bytes.
	Size *int64

	// LastModified is the time the object was last updated (or created).
	LastModified *time.Time

	// Type marks how the object was created.
	Type ObjectType

	// StorageClass is the storage class the object resides in.
	StorageClass StorageClass
}

// IsPrefix returns a boolean indicating whether this entry is a common prefix rather than an object.
func (o *ObjectInfo) IsPrefix() bool {
	return o.LastModified == nil
}

// Part represents a single part of a multipart upload; used both when listing parts, and as input when completing an
// upload.
type Part struct {
	// Number uniquely identifies the part within the upload and determines its position in the completed object.
	Number int

	// ETag is the entity tag returned when the part was uploaded.
	ETag string

	// Size is the size of the part in bytes; only populated when listing parts.
	Size *int64

	// LastModified is the time the part was last written; only populated when listing parts.
	LastModified *time.Time
}

// UploadInfo is a single entry in a multipart upload listing; it may also represent a common prefix, in which case
// only 'Key' will be populated.
type UploadInfo struct {
	// Key is the key the upload will be completed as.
	Key string

	// UploadID is the id assigned when the upload was initiated.
	UploadID string

	// Initiated is the time the upload was initiated.
	Initiated *time.Time
}

// IsPrefix returns a boolean indicating whether this entry is a common prefix rather than an upload.
func (u *UploadInfo) IsPrefix() bool {
	return u.UploadID == ""
}
