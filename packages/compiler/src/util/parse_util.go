package util

import "fmt"

// ParseSourceFile is a named source file with its full content.
type ParseSourceFile struct {
	Content string
	URL     string
}

// NewParseSourceFile creates a new ParseSourceFile
func NewParseSourceFile(content, url string) *ParseSourceFile {
	return &ParseSourceFile{
		Content: content,
		URL:     url,
	}
}

// ParseLocation represents a location in the source file
type ParseLocation struct {
	File   *ParseSourceFile
	Offset int
	Line   int
	Col    int
}

// NewParseLocation creates a new ParseLocation
func NewParseLocation(file *ParseSourceFile, offset, line, col int) *ParseLocation {
	return &ParseLocation{
		File:   file,
		Offset: offset,
		Line:   line,
		Col:    col,
	}
}

// String returns a string representation of the location
func (p *ParseLocation) String() string {
	if p.File != nil && p.Offset >= 0 {
		return fmt.Sprintf("%s@%d:%d", p.File.URL, p.Line, p.Col)
	}
	if p.File != nil {
		return p.File.URL
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// ParseSourceSpan is a span of the source between two locations
type ParseSourceSpan struct {
	Start     *ParseLocation
	End       *ParseLocation
	FullStart *ParseLocation
	Details   *string
}

// NewParseSourceSpan creates a new ParseSourceSpan
func NewParseSourceSpan(start, end *ParseLocation) *ParseSourceSpan {
	return &ParseSourceSpan{
		Start:     start,
		End:       end,
		FullStart: start,
	}
}

// String returns a string representation of the span's start location
func (p *ParseSourceSpan) String() string {
	if p == nil || p.Start == nil {
		return "<unknown>"
	}
	return p.Start.String()
}

// Text returns the source text covered by the span
func (p *ParseSourceSpan) Text() string {
	if p.Start == nil || p.End == nil || p.Start.File == nil {
		return ""
	}
	return p.Start.File.Content[p.Start.Offset:p.End.Offset]
}
