// Package style defines the attribute model used by the styling engine: the closed
// set of text styles and colour slots, the active style set, and the diff between
// two such sets. It also resolves tag attribute names (with all their aliases and
// shortcuts) to attributes.
package style

import "fmt"

// Category identifies one independent styling slot. At most one attribute per
// category can be active at any time; setting a new one supersedes the old.
// The zero-based values double as the canonical emission order.
type Category uint8

const (
	CatForeground Category = iota
	CatBackground
	CatBold
	CatDim
	CatUnderline
	CatItalic
	CatBlink
	CatStrike
	CatReverse
	CatConceal

	NumCategories = int(iota)
)

func (c Category) String() string {
	switch c {
	case CatForeground:
		return "foreground"
	case CatBackground:
		return "background"
	case CatBold:
		return "bold"
	case CatDim:
		return "dim"
	case CatUnderline:
		return "underline"
	case CatItalic:
		return "italic"
	case CatBlink:
		return "blink"
	case CatStrike:
		return "strike"
	case CatReverse:
		return "reverse"
	case CatConceal:
		return "conceal"
	}

	return fmt.Sprintf("category(%d)", uint8(c))
}

// BaseColour is one of the eight 4 bit terminal hues, ordered as in the ANSI
// SGR sequences.
type BaseColour uint8

const (
	Black BaseColour = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

func (b BaseColour) String() string {
	switch b {
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	}

	return fmt.Sprintf("colour(%d)", uint8(b))
}

// ColourType discriminates the three colour encodings a colour slot accepts.
type ColourType uint8

const (
	// ColourNamed is a 4 bit base colour, possibly in its bright variant.
	ColourNamed ColourType = iota
	// ColourPalette is an index into the 256 colour palette.
	ColourPalette
	// ColourRGB is an explicit 24 bit triple.
	ColourRGB
)

// Colour is the value carried by a foreground or background attribute.
// It is comparable; equality is structural.
type Colour struct {
	Type    ColourType
	Base    BaseColour // ColourNamed only
	Bright  bool       // ColourNamed only
	Index   uint8      // ColourPalette only
	R, G, B uint8      // ColourRGB only
}

// Named returns a 4 bit named colour.
func Named(base BaseColour, bright bool) Colour {
	return Colour{Type: ColourNamed, Base: base, Bright: bright}
}

// Palette returns a 256 colour palette colour.
func Palette(index uint8) Colour { return Colour{Type: ColourPalette, Index: index} }

// RGB returns a 24 bit colour.
func RGB(r, g, b uint8) Colour { return Colour{Type: ColourRGB, R: r, G: g, B: b} }

func (c Colour) String() string {
	switch c.Type {
	case ColourNamed:
		if c.Bright {
			return "bright-" + c.Base.String()
		}

		return c.Base.String()
	case ColourPalette:
		return fmt.Sprintf("pal(%d)", c.Index)
	case ColourRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}

	return "?"
}

// Attribute is one atomic style unit: a text style, identified by its category
// alone, or a colour slot with its colour value. Attributes are immutable and
// comparable, which lets renderers key caches on them directly.
type Attribute struct {
	Cat    Category
	Colour Colour // meaningful for CatForeground and CatBackground only
}

// TextStyle returns the attribute for a payload-free style category.
func TextStyle(cat Category) Attribute { return Attribute{Cat: cat} }

// Foreground returns a foreground colour attribute.
func Foreground(c Colour) Attribute { return Attribute{Cat: CatForeground, Colour: c} }

// Background returns a background colour attribute.
func Background(c Colour) Attribute { return Attribute{Cat: CatBackground, Colour: c} }

func (a Attribute) String() string {
	switch a.Cat {
	case CatForeground:
		return a.Colour.String()
	case CatBackground:
		return "bg:" + a.Colour.String()
	default:
		return a.Cat.String()
	}
}
