package search

import (
	"testing"

	"github.com/llehouerou/vidlib/internal/catalog"
)

var videos = []catalog.Video{
	{ID: "funny_dogs_video_id", Title: "Funny Dogs", Tags: []string{"#dog", "#animal"}},
	{ID: "amazing_cats_video_id", Title: "Amazing Cats", Tags: []string{"#cat", "#animal"}},
	{ID: "another_cat_video_id", Title: "Another Cat Video", Tags: []string{"#cat", "#animal"}},
	{ID: "life_at_google_video_id", Title: "Life at Google", Tags: []string{"#google", "#career"}},
	{ID: "nothing_video_id", Title: "Video about nothing"},
}

func ids(vs []catalog.Video) []string {
	result := make([]string, len(vs))
	for i, v := range vs {
		result[i] = v.ID
	}
	return result
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearcher_Titles(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"case-insensitive substring", "CAT", []string{"amazing_cats_video_id", "another_cat_video_id"}},
		{"sorted by title", "video", []string{"another_cat_video_id", "nothing_video_id"}},
		{"no match", "blah", []string{}},
		{"empty term", "  ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Searcher{}.Titles(videos, tt.term))
			if !equal(got, tt.want) {
				t.Errorf("Titles(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestSearcher_Tag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want []string
	}{
		{"exact tag", "#cat", []string{"amazing_cats_video_id", "another_cat_video_id"}},
		{"case-insensitive", "#ANIMAL", []string{"amazing_cats_video_id", "another_cat_video_id", "funny_dogs_video_id"}},
		{"missing hash", "cat", []string{}},
		{"partial tag", "#ca", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Searcher{}.Tag(videos, tt.tag))
			if !equal(got, tt.want) {
				t.Errorf("Tag(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestSearcher_MaxResults(t *testing.T) {
	got := ids(Searcher{MaxResults: 1}.Tag(videos, "#animal"))

	if !equal(got, []string{"amazing_cats_video_id"}) {
		t.Errorf("Tag with MaxResults=1 = %v, want [amazing_cats_video_id]", got)
	}
}

func TestSearcher_DoesNotReorderInput(t *testing.T) {
	input := append([]catalog.Video(nil), videos...)

	Searcher{}.Tag(input, "#animal")

	if input[0].ID != "funny_dogs_video_id" {
		t.Error("search should not reorder the caller's slice")
	}
}
