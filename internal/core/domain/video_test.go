package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideoURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", VideoURL("dQw4w9WgXcQ"))
}

func TestUnescapeDescriptions(t *testing.T) {
	videos := []VideoRecord{
		{Title: "A &amp; B", Description: "Rock &amp; Roll", VideoURL: "u1"},
		{Title: "second", Description: "&amp;&amp; &lt;tag&gt; &quot;q&quot; &#39;", VideoURL: "u2"},
		{Title: "third", Description: "", VideoURL: "u3"},
	}

	got := UnescapeDescriptions(videos)

	assert.Len(t, got, 3)
	assert.Equal(t, "Rock & Roll", got[0].Description)
	assert.Equal(t, "&& &lt;tag&gt; &quot;q&quot; &#39;", got[1].Description)
	assert.Equal(t, "", got[2].Description)

	// titles and URLs are not touched
	assert.Equal(t, "A &amp; B", got[0].Title)
	assert.Equal(t, []string{"u1", "u2", "u3"}, []string{got[0].VideoURL, got[1].VideoURL, got[2].VideoURL})

	// mutated in place
	assert.Equal(t, "Rock & Roll", videos[0].Description)
}

func TestUnescapeDescriptionsEmpty(t *testing.T) {
	assert.Empty(t, UnescapeDescriptions(nil))
}

func TestSearchOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    SearchOptions
		want    int
		wantErr bool
	}{
		{"default", SearchOptions{}, DefaultMaxResults, false},
		{"explicit", SearchOptions{MaxResults: 25}, 25, false},
		{"upper bound", SearchOptions{MaxResults: MaxSearchResults}, MaxSearchResults, false},
		{"negative", SearchOptions{MaxResults: -1}, -1, true},
		{"too large", SearchOptions{MaxResults: 51}, 51, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts.WithDefaults()
			assert.Equal(t, tt.want, opts.MaxResults)

			err := opts.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidMaxResults))
				return
			}
			assert.NoError(t, err)
		})
	}
}
