package catalog

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

//go:embed videos.txt
var defaultVideos string

const fieldSeparator = "|"

// Default returns the built-in catalog.
func Default() *Library {
	l, err := Parse(strings.NewReader(defaultVideos))
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded videos are invalid: %v", err))
	}
	return l
}

// LoadFile reads a catalog file.
func LoadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse reads one video per line in the form
//
//	Title | video_id | #tag1 , #tag2
//
// Blank lines are skipped. The tag field is optional.
func Parse(r io.Reader) (*Library, error) {
	l, _ := New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := l.add(v); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

func parseLine(line string) (Video, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < 2 || len(fields) > 3 {
		return Video{}, fmt.Errorf("expected 2 or 3 %q separated fields, got %d", fieldSeparator, len(fields))
	}

	v := Video{
		Title: strings.TrimSpace(fields[0]),
		ID:    strings.TrimSpace(fields[1]),
	}
	if len(fields) == 3 {
		tags := lo.Map(strings.Split(fields[2], ","), func(t string, _ int) string {
			return strings.TrimSpace(t)
		})
		v.Tags = lo.Compact(tags)
	}
	return v, nil
}
