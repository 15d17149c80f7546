package objres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tidalware/objstore/objval"
)

func TestNewHeadObjectResult(t *testing.T) {
	resp := newTestResponse(map[string]string{
		objval.HeaderObjectType:    "Appendable",
		objval.HeaderLastModified:  "Tue, 10 Nov 2009 23:00:00 GMT",
		objval.HeaderContentType:   "application/octet-stream",
		objval.HeaderContentLength: "1024",
		objval.HeaderETag:          `"abc123"`,
		objval.HeaderVersionID:     "v000001",
	}, "")

	result := NewHeadObjectResult(resp)
	require.Equal(t, objval.ObjectTypeAppendable, result.ObjectType)
	require.Equal(t, time.Date(2009, time.November, 10, 23, 0, 0, 0, time.UTC), *result.LastModified)
	require.Equal(t, "application/octet-stream", result.ContentType)
	require.Equal(t, int64(1024), *result.ContentLength)
	require.Equal(t, "abc123", *result.ETag)
	require.Equal(t, "v000001", *result.VersionID)
	require.NotEmpty(t, result.RequestID)
}

func TestNewHeadObjectResultAbsentHeaders(t *testing.T) {
	result := NewHeadObjectResult(newTestResponse(nil, ""))
	require.Empty(t, result.ObjectType)
	require.Nil(t, result.LastModified)
	require.Empty(t, result.ContentType)
	require.Nil(t, result.ContentLength)
	require.Nil(t, result.ETag)
	require.Nil(t, result.VersionID)
}

func TestNewGetObjectMetaResult(t *testing.T) {
	resp := newTestResponse(map[string]string{
		objval.HeaderLastModified:  "Tue, 10 Nov 2009 23:00:00 GMT",
		objval.HeaderContentLength: "7",
		objval.HeaderETag:          `"feed"`,
	}, "")

	result := NewGetObjectMetaResult(resp)
	require.Equal(t, int64(7), *result.ContentLength)
	require.Equal(t, "feed", *result.ETag)
	require.NotNil(t, result.LastModified)
}

func TestNewGetSymlinkResult(t *testing.T) {
	type test struct {
		name     string
		target   string
		expected string
	}

	tests := []*test{
		{
			name:     "Plain",
			target:   "backup/latest",
			expected: "backup/latest",
		},
		{
			name:     "Escaped",
			target:   "backup%2Fdaily%202009",
			expected: "backup/daily 2009",
		},
		{
			name:     "InvalidEscapeKeptVerbatim",
			target:   "backup%zz",
			expected: "backup%zz",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resp := newTestResponse(map[string]string{objval.HeaderSymlinkTarget: test.target}, "")

			require.Equal(t, test.expected, NewGetSymlinkResult(resp).TargetKey)
		})
	}
}

func TestNewPutObjectResult(t *testing.T) {
	resp := newTestResponse(map[string]string{
		objval.HeaderETag:          `"abc123"`,
		objval.HeaderChecksumCRC64: "9876543210",
		objval.HeaderVersionID:     "v000002",
	}, "")

	result := NewPutObjectResult(resp)
	require.Equal(t, "abc123", *result.ETag)
	require.Equal(t, uint64(9876543210), *result.Checksum)
	require.Equal(t, "v000002", *result.VersionID)
}

func TestNewAppendObjectResult(t *testing.T) {
	resp := newTestResponse(map[string]string{
		objval.HeaderETag:               `"abc123"`,
		objval.HeaderChecksumCRC64:      "9876543210",
		objval.HeaderNextAppendPosition: "2048",
	}, "")

	result := NewAppendObjectResult(resp)
	require.Equal(t, "abc123", *result.ETag)
	require.Equal(t, uint64(9876543210), *result.Checksum)
	require.Equal(t, int64(2048), *result.NextPosition)
}

func TestNewListObjectsResultDefaults(t *testing.T) {
	result := NewListObjectsResult(newTestResponse(nil, "<ignored/>"))
	require.False(t, result.IsTruncated)
	require.Empty(t, result.NextMarker)
	require.Empty(t, result.Objects)
	require.Empty(t, result.Prefixes)
}

func TestNewDeleteObjectsResultDefaults(t *testing.T) {
	require.Empty(t, NewDeleteObjectsResult(newTestResponse(nil, "")).DeletedKeys)
}

func TestNewGetObjectACLResultDefaults(t *testing.T) {
	require.Empty(t, NewGetObjectACLResult(newTestResponse(nil, "")).ACL)
}
