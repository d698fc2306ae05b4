package format

import (
	"fmt"
	"strings"
)

// BoolStyle selects the words a flag is rendered with.
type BoolStyle int

const (
	ConfirmedStyle BoolStyle = iota // Confirmed / NOT Confirmed
	YesNoStyle                      // Yes / No
)

func (s BoolStyle) Label(b bool) string {
	switch s {
	case YesNoStyle:
		if b {
			return "Yes"
		}
		return "No"
	default:
		if b {
			return "Confirmed"
		}
		return "NOT Confirmed"
	}
}

// Left pads s on the right to width runes.
func Left(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// Right pads s on the left to width runes.
func Right(s string, width int) string {
	return fmt.Sprintf("%*s", width, s)
}

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column is one fixed-width column of a text table.
type Column struct {
	Title string
	Width int
	Align Align
}

// Row pads values into columns separated by one space; trailing padding is dropped.
func Row(columns []Column, values []string) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		var v string
		if i < len(values) {
			v = values[i]
		}
		if c.Align == AlignRight {
			parts[i] = Right(v, c.Width)
		} else {
			parts[i] = Left(v, c.Width)
		}
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}

// Header renders the column titles with the columns' alignment.
func Header(columns []Column) string {
	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.Title
	}
	return Row(columns, titles)
}

// Width is the full line width of a row using every column.
func Width(columns []Column) int {
	w := 0
	for _, c := range columns {
		w += c.Width
	}
	if len(columns) > 1 {
		w += len(columns) - 1
	}
	return w
}
