// Checks a catalog file and prints a summary of its videos and tags.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/vidlib/internal/catalog"
	"github.com/llehouerou/vidlib/internal/logging"
	"github.com/llehouerou/vidlib/internal/search"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: catalogcheck <videos.txt>")
		os.Exit(2)
	}
	logger := logging.New(os.Stderr, "info")
	if err := check(os.Args[1], os.Stdout, logger); err != nil {
		logger.Error("invalid catalog", "error", err)
		os.Exit(1)
	}
}

func check(path string, w io.Writer, logger *slog.Logger) error {
	logger.Info("loading catalog", "path", path)
	lib, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}
	summarize(w, lib.All())
	return nil
}

// summarize prints the videos sorted by title, then per-tag counts.
func summarize(w io.Writer, videos []catalog.Video) {
	search.SortByTitle(videos)

	tagCounts := make(map[string]int)
	untagged := 0
	for _, v := range videos {
		if len(v.Tags) == 0 {
			untagged++
		}
		for _, t := range v.Tags {
			tagCounts[t]++
		}
	}

	for _, v := range videos {
		fmt.Fprintln(w, catalog.Format(v))
	}

	tags := slices.Sorted(maps.Keys(tagCounts))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s videos, %s distinct tags, %s untagged\n",
		humanize.Comma(int64(len(videos))),
		humanize.Comma(int64(len(tags))),
		humanize.Comma(int64(untagged)))
	for _, t := range tags {
		fmt.Fprintf(w, "  %-20s %s\n", t, humanize.Comma(int64(tagCounts[t])))
	}
}
