// Package search finds catalog videos by title substring or by tag.
package search

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/llehouerou/vidlib/internal/catalog"
)

// Searcher filters a set of videos. MaxResults caps the result count
// after sorting; zero means unlimited.
type Searcher struct {
	MaxResults int
}

// Titles returns videos whose title contains term, ignoring case,
// sorted by title.
func (s Searcher) Titles(videos []catalog.Video, term string) []catalog.Video {
	needle := normalize(term)
	if needle == "" {
		return nil
	}
	return s.finish(lo.Filter(videos, func(v catalog.Video, _ int) bool {
		return strings.Contains(normalize(v.Title), needle)
	}))
}

// Tag returns videos carrying tag exactly (ignoring case), sorted by title.
// Tags keep their leading '#', so "cat" does not match "#cat".
func (s Searcher) Tag(videos []catalog.Video, tag string) []catalog.Video {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil
	}
	return s.finish(lo.Filter(videos, func(v catalog.Video, _ int) bool {
		return v.HasTag(tag)
	}))
}

func (s Searcher) finish(matches []catalog.Video) []catalog.Video {
	SortByTitle(matches)
	if s.MaxResults > 0 && len(matches) > s.MaxResults {
		matches = matches[:s.MaxResults]
	}
	return matches
}

// SortByTitle sorts videos by title, then ID.
func SortByTitle(videos []catalog.Video) {
	slices.SortFunc(videos, func(a, b catalog.Video) int {
		if c := strings.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

// normalize lowercases for matching.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
