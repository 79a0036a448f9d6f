package domain

import (
	"fmt"
	"strings"
)

const (
	// VideoKind is the resource kind the search endpoint reports for uploads.
	VideoKind = "youtube#video"

	videoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

type VideoRecord struct {
	Title       string
	Description string
	VideoURL    string
}

func VideoURL(videoID string) string {
	return fmt.Sprintf(videoURLTemplate, videoID)
}

// UnescapeDescriptions decodes "&amp;" in every description, in place.
// Other entities (&lt;, &quot;, numeric references) are left untouched.
func UnescapeDescriptions(videos []VideoRecord) []VideoRecord {
	for i := range videos {
		videos[i].Description = strings.ReplaceAll(videos[i].Description, "&amp;", "&")
	}

	return videos
}
