package render

import (
	"strconv"
	"strings"

	"awesome-dragon.science/go/tagstyle/pkg/style"
)

// SGR parameter values, as in ECMA-48.
const (
	sgrBold      = 1
	sgrDim       = 2
	sgrItalic    = 3
	sgrUnderline = 4
	sgrBlink     = 5
	sgrReverse   = 7
	sgrConceal   = 8
	sgrStrike    = 9

	sgrNoBold      = 22 // also the only way to drop dim
	sgrNoItalic    = 23
	sgrNoUnderline = 24
	sgrNoBlink     = 25
	sgrNoReverse   = 27
	sgrNoConceal   = 28
	sgrNoStrike    = 29

	sgrFgBase       = 30
	sgrFgExtended   = 38
	sgrFgDefault    = 39
	sgrBgBase       = 40
	sgrBgExtended   = 48
	sgrBgDefault    = 49
	sgrFgBrightBase = 90
	sgrBgBrightBase = 100
)

var clearCodes = map[style.Category]int{
	style.CatForeground: sgrFgDefault,
	style.CatBackground: sgrBgDefault,
	style.CatBold:       sgrNoBold,
	style.CatDim:        sgrNoBold,
	style.CatUnderline:  sgrNoUnderline,
	style.CatItalic:     sgrNoItalic,
	style.CatBlink:      sgrNoBlink,
	style.CatStrike:     sgrNoStrike,
	style.CatReverse:    sgrNoReverse,
	style.CatConceal:    sgrNoConceal,
}

var setCodes = map[style.Category]int{
	style.CatBold:      sgrBold,
	style.CatDim:       sgrDim,
	style.CatUnderline: sgrUnderline,
	style.CatItalic:    sgrItalic,
	style.CatBlink:     sgrBlink,
	style.CatStrike:    sgrStrike,
	style.CatReverse:   sgrReverse,
	style.CatConceal:   sgrConceal,
}

// ANSI is the fixed escape code renderer. It is a pure function of the
// transition: no I/O, no shared state, identical output on every terminal.
type ANSI struct{}

// Render implements Renderer. Clears come before applies; within each group
// the canonical category order of the transition is kept.
func (ANSI) Render(t style.Transition) string {
	var b strings.Builder

	for _, cat := range t.Clear {
		writeSGR(&b, clearCodes[cat])
	}

	for _, attr := range t.Apply {
		switch attr.Cat {
		case style.CatForeground:
			writeColour(&b, attr.Colour, sgrFgBase, sgrFgBrightBase, sgrFgExtended)
		case style.CatBackground:
			writeColour(&b, attr.Colour, sgrBgBase, sgrBgBrightBase, sgrBgExtended)
		default:
			writeSGR(&b, setCodes[attr.Cat])
		}
	}

	return b.String()
}

func writeColour(b *strings.Builder, c style.Colour, base, brightBase, extended int) {
	switch c.Type {
	case style.ColourNamed:
		if c.Bright {
			writeSGR(b, brightBase+int(c.Base))
		} else {
			writeSGR(b, base+int(c.Base))
		}
	case style.ColourPalette:
		writeSGR(b, extended, 5, int(c.Index))
	case style.ColourRGB:
		writeSGR(b, extended, 2, int(c.R), int(c.G), int(c.B))
	}
}

func writeSGR(b *strings.Builder, params ...int) {
	b.WriteString("\x1b[")

	for i, p := range params {
		if i > 0 {
			b.WriteByte(';')
		}

		b.WriteString(strconv.Itoa(p))
	}

	b.WriteByte('m')
}
