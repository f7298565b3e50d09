package styler

import (
	"fmt"

	"awesome-dragon.science/go/tagstyle/pkg/tokeniser"
)

// TagError wraps a resolution failure with the tag it occurred in. Unwrap
// exposes the underlying cause, typically a style.UnknownAttributeError or
// style.InvalidColourError.
type TagError struct {
	Src  string
	Span tokeniser.Span
	Err  error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("bad tag %s at %s: %s", e.Src, e.Span, e.Err)
}

func (e *TagError) Unwrap() error { return e.Err }

// UnmatchedCloseError reports a closing tag with no open tag left to close.
type UnmatchedCloseError struct {
	Src  string
	Span tokeniser.Span
}

func (e *UnmatchedCloseError) Error() string {
	return fmt.Sprintf("close tag %s at %s has no matching open tag", e.Src, e.Span)
}

// MismatchedCloseError reports an explicit closing tag whose attributes do not
// match the tag it would close.
type MismatchedCloseError struct {
	Expected string // source of the open tag on top of the stack
	Found    string // source of the offending close tag
	Span     tokeniser.Span
}

func (e *MismatchedCloseError) Error() string {
	return fmt.Sprintf("close tag %s at %s does not match open tag %s", e.Found, e.Span, e.Expected)
}

// MaxDepthError reports tag nesting beyond the configured limit.
type MaxDepthError struct {
	Max  int
	Span tokeniser.Span
}

func (e *MaxDepthError) Error() string {
	return fmt.Sprintf("tag at %s exceeds the maximum nesting depth of %d", e.Span, e.Max)
}
