package metal

import (
	"fmt"
	"strings"
)

// FormatLayout returns the metal formatted according to a layout.
// The layout is copied to the output with the following placeholders
// replaced:
//
//	| Placeholder | Example (37.5 scrap) | Description                  |
//	| ----------- | -------------------- | ---------------------------- |
//	| %w          | 75                   | Value in weapons             |
//	| %s          | 37.5                 | Value in scrap               |
//	| %c          | 12.49                | Value in reclaimed           |
//	| %r          | 4.16                 | Value in refined             |
//	| %W          | 1                    | Weapon count of [Breakdown]  |
//	| %S          | 1                    | Scrap count of [Breakdown]   |
//	| %C          | 0                    | Reclaimed count of Breakdown |
//	| %R          | 4                    | Refined count of Breakdown   |
//	| %%          | %                    | Percent sign                 |
//
// Breakdown counts carry the sign of the metal.
// Unknown placeholders are copied verbatim and a trailing '%' is
// written as is.
func (m Metal) FormatLayout(layout string) string {
	var views [4]string
	for i, d := range [...]Denomination{Weapon, Scrap, Reclaimed, Refined} {
		views[i] = m.View(d).String()
	}
	b := m.Breakdown()
	counts := [4]Number{b.Weapon, b.Scrap, b.Reclaimed, b.Refined}
	if b.Neg {
		for i := range counts {
			counts[i] = counts[i].Neg()
		}
	}

	var out strings.Builder
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' {
			out.WriteByte(c)
			continue
		}
		if i+1 == len(layout) {
			out.WriteByte('%')
			break
		}
		i++
		switch layout[i] {
		case 'w':
			out.WriteString(views[0])
		case 's':
			out.WriteString(views[1])
		case 'c':
			out.WriteString(views[2])
		case 'r':
			out.WriteString(views[3])
		case 'W':
			out.WriteString(counts[0].String())
		case 'S':
			out.WriteString(counts[1].String())
		case 'C':
			out.WriteString(counts[2].String())
		case 'R':
			out.WriteString(counts[3].String())
		case '%':
			out.WriteByte('%')
		default:
			out.WriteByte('%')
			out.WriteByte(layout[i])
		}
	}
	return out.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example      | Description          |
//	| ------ | ------------ | -------------------- |
//	| %s, %v | 4.16 ref     | Metal                |
//	| %q     | "4.16 ref"   | Quoted metal         |
//	| %f     | 4.16         | Value in refined     |
//	| %d     | 75           | Value in weapons     |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Metal) Format(state fmt.State, verb rune) {
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		writePadded(state, verb, m.String(), "")
	case 'f', 'F':
		writePadded(state, verb, m.View(Refined).String(), "")
	case 'd', 'D':
		writePadded(state, verb, m.View(Weapon).String(), "")
	default:
		writePadded(state, verb, m.String(), "metal.Metal")
	}
}

// writePadded writes text honoring the width, the '-' flag and the quoting
// verbs. If typ is not empty, the text is reported as a bad verb for typ.
func writePadded(state fmt.State, verb rune, text, typ string) {
	textlen := len(text)

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + textlen + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for range tspaces {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	for range tquote {
		buf[pos] = '"'
		pos--
	}

	// Text
	for i := range textlen {
		buf[pos] = text[textlen-i-1]
		pos--
	}

	// Opening quote
	for range lquote {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for range lspaces {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	if typ == "" {
		state.Write(buf)
		return
	}
	state.Write([]byte("%!"))
	state.Write([]byte(string(verb)))
	state.Write([]byte("(" + typ + "="))
	state.Write(buf)
	state.Write([]byte(")"))
}
