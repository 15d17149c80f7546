package objres

import (
	"github.com/tidalware/objstore/objval"
)

// CreateLiveChannelResult is returned by 'CreateLiveChannel'; the channel configuration (including the play/publish
// URLs) is filled in by the body parser.
type CreateLiveChannelResult struct {
	Envelope

	// Channel is the configuration of the created channel.
	Channel objval.LiveChannel
}

// NewCreateLiveChannelResult constructs a result with a zeroed channel configuration.
func NewCreateLiveChannelResult(resp Response) *CreateLiveChannelResult {
	return &CreateLiveChannelResult{Envelope: NewEnvelope(resp)}
}

// GetLiveChannelResult is returned by 'GetLiveChannel'.
type GetLiveChannelResult struct {
	Envelope

	// Channel is the configuration of the channel.
	Channel objval.LiveChannel
}

// NewGetLiveChannelResult constructs a result with a zeroed channel configuration.
func NewGetLiveChannelResult(resp Response) *GetLiveChannelResult {
	return &GetLiveChannelResult{Envelope: NewEnvelope(resp)}
}

// ListLiveChannelsResult is returned by 'ListLiveChannels'; all fields are filled in by the body parser.
type ListLiveChannelsResult struct {
	Envelope

	// Prefix the listing was filtered by.
	Prefix string

	// Marker the listing started at.
	Marker string

	// MaxKeys is the maximum number of channels returned per call.
	MaxKeys int

	// IsTruncated - if set to true then more channels remain, pass 'NextMarker' to the next call.
	IsTruncated bool

	// NextMarker is the pagination marker for the next call.
	NextMarker string

	// Channels are the listed channels.
	Channels []objval.LiveChannel
}

// NewListLiveChannelsResult constructs a result with an empty listing.
func NewListLiveChannelsResult(resp Response) *ListLiveChannelsResult {
	return &ListLiveChannelsResult{Envelope: NewEnvelope(resp)}
}

// GetLiveChannelStatResult is returned by 'GetLiveChannelStat'.
type GetLiveChannelStatResult struct {
	Envelope

	// Stat describes the current state of the channel.
	Stat objval.LiveChannelStat
}

// NewGetLiveChannelStatResult constructs a result with a zeroed stat.
func NewGetLiveChannelStatResult(resp Response) *GetLiveChannelStatResult {
	return &GetLiveChannelStatResult{Envelope: NewEnvelope(resp)}
}

// GetLiveChannelHistoryResult is returned by 'GetLiveChannelHistory'.
type GetLiveChannelHistoryResult struct {
	Envelope

	// Records are the most recent streaming sessions of the channel.
	Records []objval.LiveRecord
}

// NewGetLiveChannelHistoryResult constructs a result with an empty record list.
func NewGetLiveChannelHistoryResult(resp Response) *GetLiveChannelHistoryResult {
	return &GetLiveChannelHistoryResult{Envelope: NewEnvelope(resp)}
}
