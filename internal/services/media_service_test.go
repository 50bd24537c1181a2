package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	name := ObjectName("The Shining Trailer.MP4")

	assert.True(t, strings.HasPrefix(name, "media/the-shining-trailer_"), name)
	assert.True(t, strings.HasSuffix(name, ".MP4"), name)
	assert.NotEqual(t, name, ObjectName("The Shining Trailer.MP4"))

	assert.True(t, strings.HasPrefix(ObjectName("../../etc/passwd"), "media/passwd_"))
}

func TestMediaObjectPath(t *testing.T) {
	s := &MediaService{bucket: "filmworks", publicURL: "http://localhost:9000"}

	tests := []struct {
		in   string
		want string
	}{
		{"media/a_1234.mp4", "media/a_1234.mp4"},
		{"http://localhost:9000/filmworks/media/a_1234.mp4", "media/a_1234.mp4"},
		{"http://localhost:9000/filmworks/media/a_1234.mp4?X-Amz-Signature=abc", "media/a_1234.mp4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.objectPath(tt.in), tt.in)
	}

	assert.Equal(t, "http://localhost:9000/filmworks/media/a_1234.mp4", s.objectURL("media/a_1234.mp4"))
}
