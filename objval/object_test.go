package objval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestObjectInfoIsPrefix(t *testing.T) {
	now := time.Now()

	require.True(t, (&ObjectInfo{Key: "photos/"}).IsPrefix())
	require.False(t, (&ObjectInfo{Key: "photos/cat.png", LastModified: &now}).IsPrefix())
}

func TestUploadInfoIsPrefix(t *testing.T) {
	require.True(t, (&UploadInfo{Key: "backups/"}).IsPrefix())
	require.False(t, (&UploadInfo{Key: "backups/full.tar", UploadID: "upload-1"}).IsPrefix())
}
