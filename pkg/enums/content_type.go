package enums

import "fmt"

// ContentType classifies a content item members submit against.
type ContentType string

const (
	ContentTypeTask     ContentType = "task"
	ContentTypeQuiz     ContentType = "quiz"
	ContentTypePlaylist ContentType = "playlist"
)

var validContentTypes = []ContentType{
	ContentTypeTask,
	ContentTypeQuiz,
	ContentTypePlaylist,
}

// String implements fmt.Stringer.
func (c ContentType) String() string {
	return string(c)
}

// IsValid reports whether the value matches a known ContentType.
func (c ContentType) IsValid() bool {
	for _, candidate := range validContentTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseContentType converts raw input into a ContentType.
func ParseContentType(value string) (ContentType, error) {
	for _, candidate := range validContentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid content type %q", value)
}
