package styler

import (
	"strings"

	"awesome-dragon.science/go/tagstyle/pkg/render"
	"awesome-dragon.science/go/tagstyle/pkg/style"
	"awesome-dragon.science/go/tagstyle/pkg/tokeniser"
)

// DefaultMaxDepth bounds tag nesting when Options.MaxDepth is left zero. Deep
// enough for any sane input, small enough to stop adversarial nesting.
const DefaultMaxDepth = 64

// Backend selects how transitions become bytes.
type Backend int

const (
	// BackendANSI emits fixed ANSI escape codes.
	BackendANSI Backend = iota
	// BackendTerminfo emits sequences from the system capability database.
	BackendTerminfo
)

// Options configures a Styler.
type Options struct {
	// Backend selects the renderer; ignored when Renderer is set.
	Backend Backend
	// MaxDepth bounds tag nesting; zero means DefaultMaxDepth.
	MaxDepth int
	// Strip discards all styling and keeps only the literal text. Tags are
	// still fully validated.
	Strip bool
	// Renderer overrides the Backend choice with a custom renderer.
	Renderer render.Renderer
}

// Styler transforms tagged format strings. It holds no per-call state and a
// single Styler may be used from multiple goroutines.
type Styler struct {
	renderer render.Renderer
	maxDepth int
	strip    bool
}

// New builds a Styler from opts. BackendTerminfo needs the capability entry
// for $TERM; the error is surfaced here rather than on first use.
func New(opts Options) (*Styler, error) {
	s := &Styler{
		renderer: opts.Renderer,
		maxDepth: opts.MaxDepth,
		strip:    opts.Strip,
	}

	if s.maxDepth <= 0 {
		s.maxDepth = DefaultMaxDepth
	}

	if s.renderer == nil {
		switch opts.Backend {
		case BackendTerminfo:
			src, err := render.SystemSource()
			if err != nil {
				return nil, err
			}

			s.renderer = render.NewTerminfo(src)
		default:
			s.renderer = render.ANSI{}
		}
	}

	return s, nil
}

// Format transforms in, replacing its tags with the minimal control sequences
// realising them. Any malformed, unknown or mismatched tag fails the whole
// input; there is no partial output on error. The output always ends with the
// terminal back in its pristine state, whether or not the input balanced its
// tags.
func (s *Styler) Format(in string) (string, error) {
	return s.transform(in, s.strip)
}

// Strip removes every tag from in, keeping only literal text. Validation is
// identical to Format.
func (s *Styler) Strip(in string) (string, error) {
	return s.transform(in, true)
}

func (s *Styler) transform(in string, strip bool) (string, error) {
	var (
		out strings.Builder
		sc  = tokeniser.NewScanner(in)
		ctx = newContext(s.maxDepth)
	)

	for sc.Scan() {
		seg := sc.Segment()

		switch seg.Type {
		case tokeniser.SegText, tokeniser.SegEscaped:
			if !strip {
				s.emit(&out, ctx.flush())
			}

			out.WriteString(seg.Body)
		case tokeniser.SegOpen:
			attrs, err := style.ResolveList(seg.Body)
			if err != nil {
				return "", &TagError{Src: seg.Src, Span: seg.Span, Err: err}
			}

			if err := ctx.open(attrs, seg.Src, seg.Span); err != nil {
				return "", err
			}
		case tokeniser.SegClose:
			var attrs []style.Attribute

			if strings.TrimSpace(seg.Body) != "" {
				var err error
				if attrs, err = style.ResolveList(seg.Body); err != nil {
					return "", &TagError{Src: seg.Src, Span: seg.Span, Err: err}
				}
			}

			if err := ctx.close(attrs, seg.Src, seg.Span); err != nil {
				return "", err
			}
		}
	}

	if err := sc.Err(); err != nil {
		return "", err
	}

	ctx.closeAll()

	if !strip {
		s.emit(&out, ctx.flush())
	}

	return out.String(), nil
}

func (s *Styler) emit(out *strings.Builder, t style.Transition) {
	if t.Empty() {
		return
	}

	out.WriteString(s.renderer.Render(t))
}

// Format styles in with the default ANSI backend.
func Format(in string) (string, error) {
	s, _ := New(Options{}) // ANSI backend cannot fail
	return s.Format(in)
}

// Strip removes all tags from in, validating them along the way.
func Strip(in string) (string, error) {
	s, _ := New(Options{})
	return s.Strip(in)
}
