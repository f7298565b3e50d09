// Package styler transforms format strings containing HTML-like styling tags
// into terminal output carrying the minimal control sequences realising them.
//
// Tags open with <body> and close with </body> or the shorthand </>, which
// closes the most recently opened tag. A body is a comma separated list of
// attributes:
//
//	styles    s strong bold em dim u underline i italic italics blink
//	          strike reverse rev conceal hide
//	colours   black red green yellow blue magenta cyan white, or their
//	          first letters (k for black); trailing ! or a bright- prefix
//	          selects the bright variant; uppercase selects the background
//	palette   a bare 0-255 index, pal(n), or PAL(n) for the background
//	rgb       rgb(r,g,b), #RRGGBB, or RGB(r,g,b) for the background
//	explicit  fg: or bg: before any lowercase colour form
//
// Literal angle brackets are written doubled: << and >>.
//
// Nesting is arbitrary; closing a tag restores whatever each of its
// categories held before, and anything still open at the end of the input is
// closed implicitly. Adjacent tags are diffed as one unit, so redundant
// sequences are never emitted: entering bold twice produces one bold
// sequence, and leaving it produces exactly one reset.
//
// Malformed input - an unterminated or unknown tag, a bare angle bracket, a
// close that matches nothing - fails the whole transformation. Styling tags
// are structural markup; rendering a malformed fragment would hide the
// author's mistake.
package styler
