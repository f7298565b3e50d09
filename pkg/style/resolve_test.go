package style

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) { //nolint:funlen // contains test data
	tests := []struct {
		name  string
		token string
		want  Attribute
	}{
		{name: "bold", token: "bold", want: TextStyle(CatBold)},
		{name: "bold short", token: "s", want: TextStyle(CatBold)},
		{name: "bold alias strong", token: "strong", want: TextStyle(CatBold)},
		{name: "bold alias em", token: "em", want: TextStyle(CatBold)},
		{name: "dim", token: "dim", want: TextStyle(CatDim)},
		{name: "underline short", token: "u", want: TextStyle(CatUnderline)},
		{name: "italic plural", token: "italics", want: TextStyle(CatItalic)},
		{name: "reverse alias", token: "rev", want: TextStyle(CatReverse)},
		{name: "conceal alias", token: "hide", want: TextStyle(CatConceal)},
		{name: "strike", token: "strike", want: TextStyle(CatStrike)},

		{name: "named foreground", token: "red", want: Foreground(Named(Red, false))},
		{name: "single letter", token: "b", want: Foreground(Named(Blue, false))},
		{name: "k is black", token: "k", want: Foreground(Named(Black, false))},
		{name: "bang bright", token: "y!", want: Foreground(Named(Yellow, true))},
		{name: "bright prefix", token: "bright-red", want: Foreground(Named(Red, true))},
		{name: "uppercase background", token: "BLUE", want: Background(Named(Blue, false))},
		{name: "uppercase letter", token: "K", want: Background(Named(Black, false))},
		{name: "uppercase bang", token: "R!", want: Background(Named(Red, true))},
		{name: "uppercase bright prefix", token: "BRIGHT-CYAN", want: Background(Named(Cyan, true))},

		{name: "bare palette", token: "48", want: Foreground(Palette(48))},
		{name: "palette top bound", token: "255", want: Foreground(Palette(255))},
		{name: "palette fn", token: "pal(7)", want: Foreground(Palette(7))},
		{name: "palette fn short", token: "p(7)", want: Foreground(Palette(7))},
		{name: "palette fn long", token: "palette(7)", want: Foreground(Palette(7))},
		{name: "palette fn background", token: "PAL(7)", want: Background(Palette(7))},

		{name: "rgb foreground", token: "rgb(1,2,3)", want: Foreground(RGB(1, 2, 3))},
		{name: "rgb background", token: "RGB(1,2,3)", want: Background(RGB(1, 2, 3))},
		{name: "rgb spaced", token: "rgb( 1 , 2 , 3 )", want: Foreground(RGB(1, 2, 3))},
		{name: "hex", token: "#102030", want: Foreground(RGB(0x10, 0x20, 0x30))},

		{name: "fg specifier", token: "fg:blue", want: Foreground(Named(Blue, false))},
		{name: "bg specifier", token: "bg:blue", want: Background(Named(Blue, false))},
		{name: "short bg specifier", token: "b:red", want: Background(Named(Red, false))},
		{name: "short fg specifier", token: "f:48", want: Foreground(Palette(48))},
		{name: "bg palette", token: "bg:48", want: Background(Palette(48))},
		{name: "bg rgb", token: "bg:rgb(1,2,3)", want: Background(RGB(1, 2, 3))},
		{name: "bg hex", token: "bg:#102030", want: Background(RGB(0x10, 0x20, 0x30))},
		{name: "bg bright", token: "bg:green!", want: Background(Named(Green, true))},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.token)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %s", tt.token, err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	tokens := []string{
		"", "not-a-colour", "BOLD", "Red", "bg:BLUE", "xy:blue",
		"bright-red!", "reddish", "rgb[1,2,3]", "f",
	}

	for _, token := range tokens {
		token := token
		t.Run(token, func(t *testing.T) {
			_, err := Resolve(token)

			var want *UnknownAttributeError
			if !errors.As(err, &want) {
				t.Errorf("Resolve(%q) = %v, want UnknownAttributeError", token, err)
			}
		})
	}
}

func TestResolveInvalidColour(t *testing.T) {
	tokens := []string{
		"256", "999", "pal(300)", "PAL(999)", "bg:256",
		"rgb(1,2)", "rgb(1,2,3,4)", "rgb(1,2,300)", "rgb(1,2,x)",
		"#10203", "#1020304", "#gggggg",
	}

	for _, token := range tokens {
		token := token
		t.Run(token, func(t *testing.T) {
			_, err := Resolve(token)

			var want *InvalidColourError
			if !errors.As(err, &want) {
				t.Errorf("Resolve(%q) = %v, want InvalidColourError", token, err)
			}
		})
	}
}

func TestResolveList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []Attribute
	}{
		{
			name: "single",
			body: "green",
			want: []Attribute{Foreground(Named(Green, false))},
		},
		{
			name: "spaced pair",
			body: " s , y! ",
			want: []Attribute{TextStyle(CatBold), Foreground(Named(Yellow, true))},
		},
		{
			name: "rgb keeps its commas",
			body: "bold,rgb(1,2,3)",
			want: []Attribute{TextStyle(CatBold), Foreground(RGB(1, 2, 3))},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveList(tt.body)
			if err != nil {
				t.Fatalf("ResolveList(%q) failed: %s", tt.body, err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveList(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}

func TestResolveListErrors(t *testing.T) {
	for _, body := range []string{"", "  ", "s,,y", "green,notacolour"} {
		body := body
		t.Run(body, func(t *testing.T) {
			if _, err := ResolveList(body); err == nil {
				t.Errorf("ResolveList(%q) succeeded, want error", body)
			}
		})
	}
}
