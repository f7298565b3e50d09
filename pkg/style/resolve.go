package style

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownAttributeError is returned when a tag attribute token does not name
// any known style, colour, alias or shortcut.
type UnknownAttributeError struct {
	Token string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute %q", e.Token)
}

// InvalidColourError is returned when a token is recognised as a parametrised
// colour form but its value is malformed or out of range.
type InvalidColourError struct {
	Token  string
	Reason string
}

func (e *InvalidColourError) Error() string {
	return fmt.Sprintf("invalid colour value %q: %s", e.Token, e.Reason)
}

// styleWords maps every text style name and alias to its category. Built once;
// keeps the resolver a pure lookup rather than scattered conditionals.
var styleWords = map[string]Category{
	"s": CatBold, "strong": CatBold, "bold": CatBold, "em": CatBold,
	"dim": CatDim,
	"u":   CatUnderline, "underline": CatUnderline,
	"i": CatItalic, "italic": CatItalic, "italics": CatItalic,
	"blink":   CatBlink,
	"strike":  CatStrike,
	"reverse": CatReverse, "rev": CatReverse,
	"conceal": CatConceal, "hide": CatConceal,
}

// baseColours maps the lowercase long and single letter colour names to their
// base hue. "k" is reserved for black so that "b" can mean blue.
var baseColours = map[string]BaseColour{
	"k": Black, "black": Black,
	"r": Red, "red": Red,
	"g": Green, "green": Green,
	"y": Yellow, "yellow": Yellow,
	"b": Blue, "blue": Blue,
	"m": Magenta, "magenta": Magenta,
	"c": Cyan, "cyan": Cyan,
	"w": White, "white": White,
}

// ResolveList resolves a whole tag body: a comma separated list of attribute
// tokens, with optional whitespace around tokens and commas. Any token failing
// to resolve fails the whole list; an empty body is never a valid attribute
// list.
func ResolveList(body string) ([]Attribute, error) {
	parts := splitBody(body)
	attrs := make([]Attribute, 0, len(parts))

	for _, part := range parts {
		attr, err := Resolve(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}

		attrs = append(attrs, attr)
	}

	return attrs, nil
}

// Resolve resolves a single attribute token. Resolution order: text styles and
// aliases, fg:/bg: specifiers, lowercase named colours, bare palette indices,
// palette functions, rgb()/#hex forms, uppercase (background) named colours.
func Resolve(token string) (Attribute, error) { //nolint:gocyclo // ordered lookup chain
	if cat, ok := styleWords[token]; ok {
		return TextStyle(cat), nil
	}

	if colon := strings.IndexByte(token, ':'); colon >= 0 && !strings.ContainsAny(token[:colon], "()") {
		return resolveSpecified(token, token[:colon], token[colon+1:])
	}

	if c, ok := namedColour(token); ok {
		return Foreground(c), nil
	}

	if isDigits(token) {
		idx, err := paletteIndex(token, token)
		if err != nil {
			return Attribute{}, err
		}

		return Foreground(Palette(idx)), nil
	}

	if inner, ok := functionBody(token, "palette", "pal", "p"); ok {
		idx, err := paletteIndex(token, strings.TrimSpace(inner))
		if err != nil {
			return Attribute{}, err
		}

		return Foreground(Palette(idx)), nil
	}

	if inner, ok := functionBody(token, "PALETTE", "PAL", "P"); ok {
		idx, err := paletteIndex(token, strings.TrimSpace(inner))
		if err != nil {
			return Attribute{}, err
		}

		return Background(Palette(idx)), nil
	}

	if inner, ok := functionBody(token, "rgb"); ok {
		c, err := rgbColour(token, inner)
		if err != nil {
			return Attribute{}, err
		}

		return Foreground(c), nil
	}

	if inner, ok := functionBody(token, "RGB"); ok {
		c, err := rgbColour(token, inner)
		if err != nil {
			return Attribute{}, err
		}

		return Background(c), nil
	}

	if strings.HasPrefix(token, "#") {
		c, err := hexColour(token)
		if err != nil {
			return Attribute{}, err
		}

		return Foreground(c), nil
	}

	if c, ok := upperNamedColour(token); ok {
		return Background(c), nil
	}

	return Attribute{}, &UnknownAttributeError{Token: token}
}

// resolveSpecified resolves a token carrying an explicit "fg:" or "bg:"
// specifier. Only the lowercase colour forms are accepted after a specifier.
func resolveSpecified(token, spec, rest string) (Attribute, error) {
	var cat Category

	switch strings.TrimSpace(spec) {
	case "fg", "f":
		cat = CatForeground
	case "bg", "b":
		cat = CatBackground
	default:
		return Attribute{}, &UnknownAttributeError{Token: token}
	}

	rest = strings.TrimSpace(rest)

	if c, ok := namedColour(rest); ok {
		return Attribute{Cat: cat, Colour: c}, nil
	}

	if isDigits(rest) {
		idx, err := paletteIndex(token, rest)
		if err != nil {
			return Attribute{}, err
		}

		return Attribute{Cat: cat, Colour: Palette(idx)}, nil
	}

	if inner, ok := functionBody(rest, "palette", "pal", "p"); ok {
		idx, err := paletteIndex(token, strings.TrimSpace(inner))
		if err != nil {
			return Attribute{}, err
		}

		return Attribute{Cat: cat, Colour: Palette(idx)}, nil
	}

	if inner, ok := functionBody(rest, "rgb"); ok {
		c, err := rgbColour(token, inner)
		if err != nil {
			return Attribute{}, err
		}

		return Attribute{Cat: cat, Colour: c}, nil
	}

	if strings.HasPrefix(rest, "#") {
		c, err := hexColour(rest)
		if err != nil {
			return Attribute{}, err
		}

		return Attribute{Cat: cat, Colour: c}, nil
	}

	return Attribute{}, &UnknownAttributeError{Token: token}
}

// namedColour matches the lowercase named colour forms: "red", "r", with
// brightness given either by a "bright-" prefix or a trailing "!", but not
// both at once.
func namedColour(token string) (Colour, bool) {
	if name, ok := strings.CutPrefix(token, "bright-"); ok {
		if base, ok := baseColours[name]; ok {
			return Named(base, true), true
		}

		return Colour{}, false
	}

	name, bright := strings.CutSuffix(token, "!")
	if base, ok := baseColours[name]; ok {
		return Named(base, bright), true
	}

	return Colour{}, false
}

// upperNamedColour matches the uppercase variants, which select the background
// slot: "RED", "R", "BRIGHT-RED", "R!".
func upperNamedColour(token string) (Colour, bool) {
	for _, r := range token {
		if r >= 'a' && r <= 'z' {
			return Colour{}, false
		}
	}

	return namedColour(strings.ToLower(token))
}

// functionBody matches tokens of the form name(body) for any of the given
// names and returns the raw body.
func functionBody(token string, names ...string) (string, bool) {
	for _, name := range names {
		rest, ok := strings.CutPrefix(token, name+"(")
		if !ok {
			continue
		}

		body, ok := strings.CutSuffix(rest, ")")
		if !ok {
			continue
		}

		return body, true
	}

	return "", false
}

func paletteIndex(token, digits string) (uint8, error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > 255 {
		return 0, &InvalidColourError{Token: token, Reason: "palette index must be between 0 and 255"}
	}

	return uint8(n), nil
}

func rgbColour(token, body string) (Colour, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Colour{}, &InvalidColourError{
			Token:  token,
			Reason: "expects 3 numbers between 0 and 255, separated by commas",
		}
	}

	var vals [3]uint8

	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return Colour{}, &InvalidColourError{
				Token:  token,
				Reason: "rgb components must be numbers between 0 and 255",
			}
		}

		vals[i] = uint8(n)
	}

	return RGB(vals[0], vals[1], vals[2]), nil
}

func hexColour(token string) (Colour, error) {
	digits := token[1:]
	if len(digits) != 6 {
		return Colour{}, &InvalidColourError{Token: token, Reason: "expects exactly six hex digits"}
	}

	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Colour{}, &InvalidColourError{Token: token, Reason: "bad hexadecimal colour code"}
	}

	return RGB(uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// splitBody splits a tag body on commas, ignoring commas nested inside
// parentheses so that rgb(1,2,3) survives as one token.
func splitBody(body string) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, body[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, body[start:])
}
