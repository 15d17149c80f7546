package objval

import "time"

// LiveChannelStatusEnabled/LiveChannelStatusDisabled are the valid values for 'LiveChannel.Status'.
const (
	LiveChannelStatusEnabled  = "enabled"
	LiveChannelStatusDisabled = "disabled"
)

// LiveChannelTarget describes the playlist generated for a live channel.
type LiveChannelTarget struct {
	// Type is the delivery protocol; only "HLS" is currently supported by the service.
	Type string

	// FragDuration is the expected duration of each media fragment in seconds.
	FragDuration int

	// FragCount is the number of fragments retained in the playlist.
	FragCount int

	// PlaylistName is the name of the generated playlist object.
	PlaylistName string
}

// LiveChannel represents the configuration of a live channel.
type LiveChannel struct {
	// Name of the channel.
	Name string

	// Status is either 'LiveChannelStatusEnabled' or 'LiveChannelStatusDisabled'.
	Status string

	// Description of the channel, at most 128 bytes.
	Description string

	// Target describes the generated playlist.
	Target LiveChannelTarget

	// LastModified is the time the channel configuration was last changed; only populated when listing channels.
	LastModified *time.Time

	// PlayURL is the URL used to watch the stream.
	PlayURL string

	// PublishURL is the URL the stream is pushed to.
	PublishURL string
}

// LiveChannelVideoStat describes the video track of an active stream.
type LiveChannelVideoStat struct {
	// Width of the video in pixels.
	Width int

	// Height of the video in pixels.
	Height int

	// FrameRate of the video.
	FrameRate int

	// Codec the video is encoded with.
	Codec string

	// Bandwidth of the video in bits per second.
	Bandwidth int
}

// LiveChannelAudioStat describes the audio track of an active stream.
type LiveChannelAudioStat struct {
	// Codec the audio is encoded with.
	Codec string

	// SampleRate of the audio.
	SampleRate int

	// Bandwidth of the audio in bits per second.
	Bandwidth int
}

// LiveChannelStat describes the current state of a live channel.
type LiveChannelStat struct {
	// Status of the stream e.g. "Live" or "Idle".
	Status string

	// RemoteAddr is the address of the client pushing the stream.
	RemoteAddr string

	// ConnectedTime is the time the current stream started.
	ConnectedTime *time.Time

	// Video describes the video track; only populated whilst a stream is live.
	Video *LiveChannelVideoStat

	// Audio describes the audio track; only populated whilst a stream is live.
	Audio *LiveChannelAudioStat
}

// LiveRecord is a single entry in a live channel's streaming history.
type LiveRecord struct {
	// StartTime is the time the stream started.
	StartTime *time.Time

	// EndTime is the time the stream ended.
	EndTime *time.Time

	// RemoteAddr is the address of the client which pushed the stream.
	RemoteAddr string
}
