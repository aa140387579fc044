package markdown

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/saneatsu/saneatsu.me-sub001/pkg/filesystem"
	"github.com/saneatsu/saneatsu.me-sub001/pkg/text"
)

// File is a Markdown file with an optional YAML front matter.
type File struct {
	AbsolutePath string
	Content      []byte
	ModTime      time.Time
	FrontMatter  FrontMatter
	Body         Document
	BodyLine     int // 1-based
}

func (m File) String() string {
	return fmt.Sprintf("Markdown file %q", m.AbsolutePath)
}

// ParseFile parses a Markdown file.
func ParseFile(path string) (*File, error) {
	lstat, err := filesystem.Lstat(path)
	if err != nil {
		return nil, err
	}

	contentAsBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	file := ParseContent(contentAsBytes)
	file.AbsolutePath = path
	file.ModTime = lstat.ModTime()
	return file, nil
}

// ParseContent splits a raw Markdown content between its front matter and its body.
func ParseContent(contentAsBytes []byte) *File {
	var rawFrontMatter bytes.Buffer
	var rawBody bytes.Buffer
	frontMatterStarted := false
	frontMatterEnded := false
	bodyStarted := false
	bodyLine := 0
	for i, line := range strings.Split(strings.TrimSuffix(string(contentAsBytes), "\n"), "\n") {
		if strings.TrimRight(line, " \t") == "---" && !bodyStarted && !frontMatterEnded {
			if !frontMatterStarted {
				frontMatterStarted = true
			} else {
				frontMatterEnded = true
			}
			continue
		}

		if frontMatterStarted && !frontMatterEnded {
			rawFrontMatter.WriteString(line)
			rawFrontMatter.WriteString("\n")
			continue
		}

		if !text.IsBlank(line) && !bodyStarted {
			bodyStarted = true
			bodyLine = i + 1
		}
		if bodyStarted {
			rawBody.WriteString(line)
			rawBody.WriteString("\n")
		}
	}

	return &File{
		Content:     contentAsBytes,
		FrontMatter: FrontMatter(rawFrontMatter.String()),
		Body:        Document(rawBody.String()),
		BodyLine:    bodyLine,
	}
}
