package tokeniser

import (
	"errors"
	"reflect"
	"testing"
)

func collect(t *testing.T, in string) []Segment {
	t.Helper()

	var out []Segment

	sc := NewScanner(in)
	for sc.Scan() {
		out = append(out, sc.Segment())
	}

	if err := sc.Err(); err != nil {
		t.Fatalf("Scan() failed: %s", err)
	}

	return out
}

func TestScanner(t *testing.T) { //nolint:funlen // contains test data
	tests := []struct {
		name string
		in   string
		want []Segment
	}{
		{
			name: "plain text",
			in:   "this is a test",
			want: []Segment{
				{Type: SegText, Body: "this is a test", Src: "this is a test", Span: Span{0, 14}},
			},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "open and shorthand close",
			in:   "<bold>x</>",
			want: []Segment{
				{Type: SegOpen, Body: "bold", Src: "<bold>", Span: Span{0, 6}},
				{Type: SegText, Body: "x", Src: "x", Span: Span{6, 7}},
				{Type: SegClose, Body: "", Src: "</>", Span: Span{7, 10}},
			},
		},
		{
			name: "explicit close",
			in:   "<green>x</green>",
			want: []Segment{
				{Type: SegOpen, Body: "green", Src: "<green>", Span: Span{0, 7}},
				{Type: SegText, Body: "x", Src: "x", Span: Span{7, 8}},
				{Type: SegClose, Body: "green", Src: "</green>", Span: Span{8, 16}},
			},
		},
		{
			name: "spaced shorthand close",
			in:   "</ >",
			want: []Segment{
				{Type: SegClose, Body: "", Src: "</ >", Span: Span{0, 4}},
			},
		},
		{
			name: "escaped brackets",
			in:   "a << b >> c",
			want: []Segment{
				{Type: SegText, Body: "a ", Src: "a ", Span: Span{0, 2}},
				{Type: SegEscaped, Body: "<", Src: "<<", Span: Span{2, 4}},
				{Type: SegText, Body: " b ", Src: " b ", Span: Span{4, 7}},
				{Type: SegEscaped, Body: ">", Src: ">>", Span: Span{7, 9}},
				{Type: SegText, Body: " c", Src: " c", Span: Span{9, 11}},
			},
		},
		{
			name: "multiple attributes keep raw body",
			in:   "<s, y!>",
			want: []Segment{
				{Type: SegOpen, Body: "s, y!", Src: "<s, y!>", Span: Span{0, 7}},
			},
		},
		{
			name: "empty tag body",
			in:   "<>",
			want: []Segment{
				{Type: SegOpen, Body: "", Src: "<>", Span: Span{0, 2}},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := collect(t, tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestScannerErrors(t *testing.T) {
	t.Run("unterminated tag", func(t *testing.T) {
		sc := NewScanner("abc <red")
		for sc.Scan() {
		}

		var want *UnterminatedTagError
		if !errors.As(sc.Err(), &want) {
			t.Fatalf("Err() = %v, want UnterminatedTagError", sc.Err())
		}

		if want.Pos != 4 {
			t.Errorf("Pos = %d, want 4", want.Pos)
		}
	})

	t.Run("bare close bracket", func(t *testing.T) {
		sc := NewScanner("a > b")
		for sc.Scan() {
		}

		var want *AmbiguousBracketError
		if !errors.As(sc.Err(), &want) {
			t.Fatalf("Err() = %v, want AmbiguousBracketError", sc.Err())
		}

		if want.Pos != 2 {
			t.Errorf("Pos = %d, want 2", want.Pos)
		}
	})

	t.Run("trailing close bracket", func(t *testing.T) {
		sc := NewScanner("ab>")
		for sc.Scan() {
		}

		var want *AmbiguousBracketError
		if !errors.As(sc.Err(), &want) {
			t.Fatalf("Err() = %v, want AmbiguousBracketError", sc.Err())
		}
	})
}

func TestScannerReset(t *testing.T) {
	sc := NewScanner("<bold>x</>")

	first := make([]Segment, 0, 3)
	for sc.Scan() {
		first = append(first, sc.Segment())
	}

	sc.Reset()

	second := make([]Segment, 0, 3)
	for sc.Scan() {
		second = append(second, sc.Segment())
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("rescan after Reset() = %#v, want %#v", second, first)
	}
}
