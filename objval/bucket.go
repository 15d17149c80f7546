package objval

import "time"

// Owner identifies the account a bucket belongs to.
type Owner struct {
	// ID is the unique id of the owning account.
	ID string

	// DisplayName is the human readable name of the owning account.
	DisplayName string
}

// BucketInfo represents the full metadata of a bucket.
type BucketInfo struct {
	// Name of the bucket.
	Name string

	// Owner of the bucket.
	Owner Owner

	// Location is the region/data center the bucket resides in.
	Location string

	// StorageClass is the default storage class for objects in the bucket.
	StorageClass StorageClass

	// IntranetEndpoint is the endpoint used when accessing the bucket from within the same region.
	IntranetEndpoint string

	// ExtranetEndpoint is the endpoint used when accessing the bucket over the public internet.
	ExtranetEndpoint string

	// Created is the time the bucket was created.
	Created *time.Time

	// ACL is the access control level applied to the bucket.
	ACL ACL
}

// SimpleBucketInfo is a single entry in a bucket listing.
type SimpleBucketInfo struct {
	// Name of the bucket.
	Name string

	// Location is the region/data center the bucket resides in.
	Location string

	// Created is the time the bucket was created.
	Created *time.Time
}

// BucketStat represents the usage statistics of a bucket.
type BucketStat struct {
	// StorageSize is the total number of bytes stored in the bucket.
	StorageSize int64

	// ObjectCount is the number of objects in the bucket.
	ObjectCount int64

	// MultipartUploadCount is the number of multipart uploads which have been initiated but not yet completed or
	// aborted.
	MultipartUploadCount int64
}

// BucketLogging represents the access logging configuration of a bucket.
type BucketLogging struct {
	// TargetBucket is the bucket access logs are written to.
	TargetBucket string

	// TargetPrefix is prepended to the name of every log file produced.
	TargetPrefix string
}

// BucketWebsite represents the static website hosting configuration of a bucket.
type BucketWebsite struct {
	// IndexFile is the object served when a directory is requested.
	IndexFile string

	// ErrorFile is the object served when the requested object does not exist.
	ErrorFile string
}

// BucketReferer represents the hotlink protection configuration of a bucket.
type BucketReferer struct {
	// AllowEmpty - if set to true then requests without a 'Referer' header are allowed.
	AllowEmpty bool

	// Referers is the list of allowed 'Referer' values.
	Referers []string
}
