// Package tokeniser scans a format string into a sequence of segments: literal
// text runs, escaped angle brackets, and opening/closing style tags. It knows
// nothing about what a tag body means; resolution happens a layer up.
package tokeniser

import (
	"fmt"
	"strings"
)

// SegmentType discriminates the kinds of segment a Scanner yields.
type SegmentType uint8

const (
	// SegText is a run of literal characters containing no angle brackets.
	SegText SegmentType = iota
	// SegEscaped is a doubled "<<" or ">>", collapsed to one literal bracket.
	SegEscaped
	// SegOpen is an opening tag; Body holds the raw text between the brackets.
	SegOpen
	// SegClose is a closing tag; Body holds the text after the slash and may
	// be empty, which is the close-last shorthand.
	SegClose
)

// Span locates a segment in the input as a half open byte range.
type Span struct {
	Start, End int
}

func (s Span) String() string { return fmt.Sprintf("offset %d", s.Start) }

// Segment is one piece of the input in source order.
type Segment struct {
	Type SegmentType
	Body string // literal text, escaped bracket, or raw tag body
	Src  string // raw source text, brackets included for tags
	Span Span
}

// UnterminatedTagError reports a "<" with no matching ">" before the end of
// the input.
type UnterminatedTagError struct {
	Pos int
}

func (e *UnterminatedTagError) Error() string {
	return fmt.Sprintf("unterminated tag: '<' at offset %d has no matching '>'", e.Pos)
}

// AmbiguousBracketError reports a bare angle bracket that is neither doubled
// nor part of a tag. Every bracket must be explained one way or the other.
type AmbiguousBracketError struct {
	Pos     int
	Bracket byte
}

func (e *AmbiguousBracketError) Error() string {
	return fmt.Sprintf("ambiguous %q at offset %d: double it for a literal bracket", string(e.Bracket), e.Pos)
}

// Scanner yields the segments of a format string one at a time, in the manner
// of bufio.Scanner. The sequence is finite and can be restarted with Reset.
type Scanner struct {
	in  string
	pos int
	seg Segment
	err error
}

// NewScanner returns a Scanner over in.
func NewScanner(in string) *Scanner { return &Scanner{in: in} }

// Reset rewinds the scanner to the start of the input.
func (s *Scanner) Reset() {
	s.pos = 0
	s.seg = Segment{}
	s.err = nil
}

// Segment returns the segment produced by the last successful call to Scan.
func (s *Scanner) Segment() Segment { return s.seg }

// Err returns the error that stopped the scan, if any.
func (s *Scanner) Err() error { return s.err }

// Scan advances to the next segment. It returns false at the end of the input
// or on a lexical error; the two are told apart with Err.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.pos >= len(s.in) {
		return false
	}

	switch s.in[s.pos] {
	case '<':
		if s.pos+1 < len(s.in) && s.in[s.pos+1] == '<' {
			s.emit(SegEscaped, "<", s.pos, s.pos+2)
			return true
		}

		return s.scanTag()
	case '>':
		if s.pos+1 < len(s.in) && s.in[s.pos+1] == '>' {
			s.emit(SegEscaped, ">", s.pos, s.pos+2)
			return true
		}

		s.err = &AmbiguousBracketError{Pos: s.pos, Bracket: '>'}

		return false
	default:
		return s.scanText()
	}
}

// scanText consumes a literal run up to the next angle bracket.
func (s *Scanner) scanText() bool {
	end := s.pos + strings.IndexAny(s.in[s.pos:], "<>")
	if end < s.pos {
		end = len(s.in)
	}

	s.emit(SegText, s.in[s.pos:end], s.pos, end)

	return true
}

// scanTag consumes a "<...>" tag starting at s.pos.
func (s *Scanner) scanTag() bool {
	end := strings.IndexByte(s.in[s.pos+1:], '>')
	if end < 0 {
		s.err = &UnterminatedTagError{Pos: s.pos}
		return false
	}

	end += s.pos + 1 // index of '>'
	src := s.in[s.pos : end+1]
	body := s.in[s.pos+1 : end]

	if rest, ok := strings.CutPrefix(strings.TrimSpace(body), "/"); ok {
		s.emitTag(SegClose, rest, src, end+1)
	} else {
		s.emitTag(SegOpen, body, src, end+1)
	}

	return true
}

func (s *Scanner) emit(typ SegmentType, body string, start, end int) {
	s.seg = Segment{Type: typ, Body: body, Src: s.in[start:end], Span: Span{Start: start, End: end}}
	s.pos = end
}

func (s *Scanner) emitTag(typ SegmentType, body, src string, end int) {
	s.seg = Segment{Type: typ, Body: body, Src: src, Span: Span{Start: s.pos, End: end}}
	s.pos = end
}
