package objres

import (
	"github.com/tidalware/objstore/objval"
)

// The bucket configuration results below pair the envelope with a payload value object; construction only
// establishes the documented defaults, the payload is filled in by the body parser afterwards.

// ListBucketsResult is returned by 'ListBuckets'.
type ListBucketsResult struct {
	Envelope

	// IsTruncated - if set to true then more buckets remain, pass 'NextMarker' to the next call.
	IsTruncated bool

	// NextMarker is the pagination marker for the next call.
	NextMarker string

	// Buckets are the listed buckets.
	Buckets []objval.SimpleBucketInfo
}

// NewListBucketsResult constructs a result with an empty listing.
func NewListBucketsResult(resp Response) *ListBucketsResult {
	return &ListBucketsResult{Envelope: NewEnvelope(resp)}
}

// GetBucketACLResult is returned by 'GetBucketACL'.
type GetBucketACLResult struct {
	Envelope

	// ACL is the access control level applied to the bucket.
	ACL objval.ACL
}

// NewGetBucketACLResult constructs a result with an empty ACL.
func NewGetBucketACLResult(resp Response) *GetBucketACLResult {
	return &GetBucketACLResult{Envelope: NewEnvelope(resp)}
}

// GetBucketLocationResult is returned by 'GetBucketLocation'.
type GetBucketLocationResult struct {
	Envelope

	// Location is the region/data center the bucket resides in.
	Location string
}

// NewGetBucketLocationResult constructs a result with an empty location.
func NewGetBucketLocationResult(resp Response) *GetBucketLocationResult {
	return &GetBucketLocationResult{Envelope: NewEnvelope(resp)}
}

// GetBucketLoggingResult is returned by 'GetBucketLogging'.
type GetBucketLoggingResult struct {
	Envelope

	// Logging is the access logging configuration of the bucket.
	Logging objval.BucketLogging
}

// NewGetBucketLoggingResult constructs a result with a zeroed logging configuration.
func NewGetBucketLoggingResult(resp Response) *GetBucketLoggingResult {
	return &GetBucketLoggingResult{Envelope: NewEnvelope(resp)}
}

// GetBucketStatResult is returned by 'GetBucketStat'.
type GetBucketStatResult struct {
	Envelope

	// Stat is the usage statistics of the bucket.
	Stat objval.BucketStat
}

// NewGetBucketStatResult constructs a result with zeroed statistics.
func NewGetBucketStatResult(resp Response) *GetBucketStatResult {
	return &GetBucketStatResult{Envelope: NewEnvelope(resp)}
}

// GetBucketInfoResult is returned by 'GetBucketInfo'.
type GetBucketInfoResult struct {
	Envelope

	// Info is the full metadata of the bucket.
	Info objval.BucketInfo
}

// NewGetBucketInfoResult constructs a result with zeroed metadata.
func NewGetBucketInfoResult(resp Response) *GetBucketInfoResult {
	return &GetBucketInfoResult{Envelope: NewEnvelope(resp)}
}

// GetBucketRefererResult is returned by 'GetBucketReferer'.
type GetBucketRefererResult struct {
	Envelope

	// Referer is the hotlink protection configuration of the bucket.
	Referer objval.BucketReferer
}

// NewGetBucketRefererResult constructs a result with a zeroed referer configuration.
func NewGetBucketRefererResult(resp Response) *GetBucketRefererResult {
	return &GetBucketRefererResult{Envelope: NewEnvelope(resp)}
}

// GetBucketWebsiteResult is returned by 'GetBucketWebsite'.
type GetBucketWebsiteResult struct {
	Envelope

	// Website is the static website hosting configuration of the bucket.
	Website objval.BucketWebsite
}

// NewGetBucketWebsiteResult constructs a result with a zeroed website configuration.
func NewGetBucketWebsiteResult(resp Response) *GetBucketWebsiteResult {
	return &GetBucketWebsiteResult{Envelope: NewEnvelope(resp)}
}

// GetBucketLifecycleResult is returned by 'GetBucketLifecycle'.
type GetBucketLifecycleResult struct {
	Envelope

	// Rules are the lifecycle rules configured for the bucket.
	Rules []objval.LifecycleRule
}

// NewGetBucketLifecycleResult constructs a result with an empty rule list.
func NewGetBucketLifecycleResult(resp Response) *GetBucketLifecycleResult {
	return &GetBucketLifecycleResult{Envelope: NewEnvelope(resp)}
}

// GetBucketCORSResult is returned by 'GetBucketCORS'.
type GetBucketCORSResult struct {
	Envelope

	// Rules are the cross-origin resource sharing rules configured for the bucket.
	Rules []objval.CORSRule
}

// NewGetBucketCORSResult constructs a result with an empty rule list.
func NewGetBucketCORSResult(resp Response) *GetBucketCORSResult {
	return &GetBucketCORSResult{Envelope: NewEnvelope(resp)}
}
