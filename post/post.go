// Package post inspects the final Markdown post with goldmark.
package post

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Image is an embedded Markdown image.
type Image struct {
	Alt string
	URL string
}

// Summary describes the structure of a post.
type Summary struct {
	Title    string
	Headings int
	Images   []Image
	Tags     []string
	Words    int
}

var (
	hashtagRe = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	tagLineRe = regexp.MustCompile(`(?i)^\**tags\**\s*:\**\s*(.+)$`)
)

// Analyze parses markdown and reports its title (first heading), heading
// count, embedded images, trailing tags and word count.
func Analyze(markdown string) Summary {
	src := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var (
		s        Summary
		lastPara string
	)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			s.Headings++
			if s.Title == "" {
				s.Title = strings.TrimSpace(plainText(node, src))
			}
		case *ast.Image:
			s.Images = append(s.Images, Image{
				Alt: plainText(node, src),
				URL: string(node.Destination),
			})
		case *ast.Paragraph:
			lastPara = plainText(node, src)
		case *ast.Text:
			s.Words += len(strings.Fields(string(node.Segment.Value(src))))
		}

		return ast.WalkContinue, nil
	})

	s.Tags = parseTags(lastPara)

	return s
}

// ToHTML renders markdown with goldmark's default CommonMark renderer.
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// plainText concatenates the text segments below n.
func plainText(n ast.Node, src []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})

	return b.String()
}

// parseTags reads tags from the closing paragraph, either as hashtags or as a
// "Tags: a, b" line.
func parseTags(para string) []string {
	para = strings.TrimSpace(para)
	if para == "" {
		return nil
	}

	if m := tagLineRe.FindStringSubmatch(para); m != nil {
		var tags []string
		for _, t := range strings.Split(m[1], ",") {
			if t = strings.Trim(strings.TrimSpace(t), "#*"); t != "" {
				tags = append(tags, t)
			}
		}
		return tags
	}

	var tags []string
	for _, h := range hashtagRe.FindAllString(para, -1) {
		tags = append(tags, strings.TrimPrefix(h, "#"))
	}
	return tags
}
