package render

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/base" // builtin capability database

	"awesome-dragon.science/go/tagstyle/pkg/style"
)

// Capability names queried from a Source. These are the standard terminfo
// names; a Source is free to serve them however it likes.
const (
	capReset       = "sgr0"
	capBold        = "bold"
	capDim         = "dim"
	capUnderline   = "smul"
	capNoUnderline = "rmul"
	capItalic      = "sitm"
	capNoItalic    = "ritm"
	capBlink       = "blink"
	capReverse     = "rev"
	capSetFg       = "setaf"
	capSetBg       = "setab"
)

type capEntry struct {
	seq string
	ok  bool
}

// Terminfo renders transitions using sequences from a capability Source.
//
// Every resolved sequence is cached for the lifetime of the renderer, so the
// Source sees at most one lookup per distinct attribute or capability name.
// The cache is the only shared state and is safe for concurrent use.
//
// Degradations inherent to this backend, silent by contract: strike and
// conceal are not representable and are dropped; so are RGB colours. Most
// attributes cannot be cleared independently either, so clearing anything
// without a dedicated exit capability reverts to a full reset followed by
// re-application of whatever is still active.
type Terminfo struct {
	src Source

	mu    sync.RWMutex
	caps  map[string]capEntry
	attrs map[style.Attribute]capEntry
}

// NewTerminfo returns a Terminfo renderer drawing sequences from src.
func NewTerminfo(src Source) *Terminfo {
	return &Terminfo{
		src:   src,
		caps:  make(map[string]capEntry),
		attrs: make(map[style.Attribute]capEntry),
	}
}

// Render implements Renderer.
func (t *Terminfo) Render(tr style.Transition) string {
	var (
		b     strings.Builder
		exits []string
		reset bool
	)

	for _, cat := range tr.Clear {
		switch cat {
		case style.CatUnderline:
			if seq, ok := t.capability(capNoUnderline); ok {
				exits = append(exits, seq)
				continue
			}

			reset = true
		case style.CatItalic:
			if seq, ok := t.capability(capNoItalic); ok {
				exits = append(exits, seq)
				continue
			}

			reset = true
		case style.CatStrike, style.CatConceal:
			// Never emitted in this mode, so nothing to undo.
		default:
			reset = true
		}
	}

	if reset {
		// Reduced optimality, not a correctness issue: wipe everything and
		// rebuild the state that should survive.
		if seq, ok := t.capability(capReset); ok {
			b.WriteString(seq)
		}

		for _, attr := range tr.After.Attributes() {
			if seq, ok := t.attribute(attr); ok {
				b.WriteString(seq)
			}
		}

		return b.String()
	}

	for _, seq := range exits {
		b.WriteString(seq)
	}

	for _, attr := range tr.Apply {
		if seq, ok := t.attribute(attr); ok {
			b.WriteString(seq)
		}
	}

	return b.String()
}

// capability resolves a parameterless capability by name, consulting the
// cache first.
func (t *Terminfo) capability(name string) (string, bool) {
	t.mu.RLock()
	entry, cached := t.caps[name]
	t.mu.RUnlock()

	if cached {
		return entry.seq, entry.ok
	}

	seq, ok := t.src.Lookup(name)

	t.mu.Lock()
	t.caps[name] = capEntry{seq: seq, ok: ok}
	t.mu.Unlock()

	return seq, ok
}

// attribute resolves the sequence that applies attr, consulting the cache
// first. Unsupported attributes resolve to false and stay that way.
func (t *Terminfo) attribute(attr style.Attribute) (string, bool) {
	t.mu.RLock()
	entry, cached := t.attrs[attr]
	t.mu.RUnlock()

	if cached {
		return entry.seq, entry.ok
	}

	seq, ok := t.lookupAttribute(attr)

	t.mu.Lock()
	t.attrs[attr] = capEntry{seq: seq, ok: ok}
	t.mu.Unlock()

	return seq, ok
}

func (t *Terminfo) lookupAttribute(attr style.Attribute) (string, bool) {
	switch attr.Cat {
	case style.CatForeground:
		return t.lookupColour(capSetFg, attr.Colour)
	case style.CatBackground:
		return t.lookupColour(capSetBg, attr.Colour)
	case style.CatBold:
		return t.src.Lookup(capBold)
	case style.CatDim:
		return t.src.Lookup(capDim)
	case style.CatUnderline:
		return t.src.Lookup(capUnderline)
	case style.CatItalic:
		return t.src.Lookup(capItalic)
	case style.CatBlink:
		return t.src.Lookup(capBlink)
	case style.CatReverse:
		return t.src.Lookup(capReverse)
	}

	// Strike and conceal have no terminfo representation.
	return "", false
}

func (t *Terminfo) lookupColour(capname string, c style.Colour) (string, bool) {
	switch c.Type {
	case style.ColourNamed:
		idx := int(c.Base)
		if c.Bright {
			idx += 8
		}

		return t.src.Lookup(capname, idx)
	case style.ColourPalette:
		return t.src.Lookup(capname, int(c.Index))
	}

	// True colour is not addressable through the capability database.
	return "", false
}

// tcellSource adapts the tcell terminfo database to the Source interface.
type tcellSource struct {
	ti *terminfo.Terminfo
}

// SystemSource loads the capability entry for the terminal named by $TERM
// from the tcell terminfo database.
func SystemSource() (Source, error) {
	term := os.Getenv("TERM")

	ti, err := terminfo.LookupTerminfo(term)
	if err != nil {
		return nil, fmt.Errorf("no terminfo entry for %q: %w", term, err)
	}

	return &tcellSource{ti: ti}, nil
}

func (s *tcellSource) Lookup(name string, params ...int) (string, bool) {
	switch name {
	case capReset:
		return nonEmpty(s.ti.AttrOff)
	case capBold:
		return nonEmpty(s.ti.Bold)
	case capDim:
		return nonEmpty(s.ti.Dim)
	case capUnderline:
		return nonEmpty(s.ti.Underline)
	case capItalic:
		return nonEmpty(s.ti.Italic)
	case capBlink:
		return nonEmpty(s.ti.Blink)
	case capReverse:
		return nonEmpty(s.ti.Reverse)
	case capSetFg:
		if s.ti.SetFg == "" || len(params) != 1 || params[0] >= s.ti.Colors {
			return "", false
		}

		return s.ti.TParm(s.ti.SetFg, params[0]), true
	case capSetBg:
		if s.ti.SetBg == "" || len(params) != 1 || params[0] >= s.ti.Colors {
			return "", false
		}

		return s.ti.TParm(s.ti.SetBg, params[0]), true
	}

	// tcell carries no exit capabilities for single attributes; the renderer
	// falls back to reset-and-reapply.
	return "", false
}

func nonEmpty(seq string) (string, bool) { return seq, seq != "" }
