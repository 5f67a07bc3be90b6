// Package ui renders the roster client's terminal output.
package ui

import (
	"fmt"
	"io"
	"strings"
)

type UI struct {
	writer   io.Writer
	useColor bool
}

func NewUI(w io.Writer, useColor bool) *UI {
	return &UI{writer: w, useColor: useColor}
}

// Writer returns the underlying output.
func (u *UI) Writer() io.Writer {
	return u.writer
}

func (u *UI) UseColor() bool {
	return u.useColor
}

func (u *UI) colorize(message string, color Color) string {
	if !u.useColor || color == ColorDefault {
		return message
	}
	return fmt.Sprintf("%s%s%s", color, message, ColorDefault)
}

func (u *UI) Print(message string) {
	fmt.Fprint(u.writer, message)
}

func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.writer, format, args...)
}

func (u *UI) Println(message string) {
	fmt.Fprintln(u.writer, message)
}

func (u *UI) PrintColored(message string, color Color) {
	fmt.Fprint(u.writer, u.colorize(message, color))
}

func (u *UI) PrintlnColored(message string, color Color) {
	fmt.Fprintln(u.writer, u.colorize(message, color))
}

func (u *UI) Error(message string) {
	u.Println(u.colorize("!", ColorRed) + " " + u.colorize(message, ColorLightOrange))
}

func (u *UI) Success(message string) {
	u.PrintlnColored(message, ColorLightGreen)
}

func (u *UI) Warning(message string) {
	u.Println(u.colorize("?", ColorLightRed) + " " + u.colorize(message, ColorLightYellow))
}

func (u *UI) Info(message string) {
	u.PrintlnColored(message, ColorGray)
}

// PromptString builds the REPL prompt. editing names the adventurer under
// edit and is empty in create mode.
func (u *UI) PromptString(editing string) string {
	var promptBuilder strings.Builder
	promptBuilder.WriteString(u.colorize("guild", ColorLightBlue))
	if editing != "" {
		promptBuilder.WriteString(u.colorize(" @ ", ColorWhite))
		promptBuilder.WriteString(u.colorize(editing, ColorLightPurple))
	}
	promptBuilder.WriteString(u.colorize(" > ", ColorGreen))
	return promptBuilder.String()
}

// PrintMultiColoredLine prints line, switching colour at every {{key}}
// marker found in colorMap. Unknown markers fall back to the default colour.
func (u *UI) PrintMultiColoredLine(line string, colorMap map[string]Color) {
	for len(line) > 0 {
		startIndex := strings.Index(line, "{{")
		if startIndex == -1 {
			u.Print(line)
			break
		}

		endIndex := strings.Index(line[startIndex:], "}}")
		if endIndex == -1 {
			u.Print(line)
			break
		}
		endIndex += startIndex

		if startIndex > 0 {
			u.Print(line[:startIndex])
		}

		color, exists := colorMap[line[startIndex:endIndex+2]]
		if !exists {
			color = ColorDefault
		}

		rest := line[endIndex+2:]
		nextStartIndex := strings.Index(rest, "{{")
		if nextStartIndex == -1 {
			u.PrintColored(rest, color)
			break
		}
		u.PrintColored(rest[:nextStartIndex], color)
		line = rest[nextStartIndex:]
	}
	u.Println("")
}

// visibleLength counts printable runes, skipping ANSI escape sequences.
func visibleLength(s string) int {
	visible := 0
	inEscapeSeq := false
	for _, r := range s {
		if inEscapeSeq {
			if r == 'm' {
				inEscapeSeq = false
			}
		} else if r == '\x1b' {
			inEscapeSeq = true
		} else {
			visible++
		}
	}
	return visible
}

// PrintTable prints rows as left-aligned columns; the first column is
// painted in lead.
func (u *UI) PrintTable(rows [][]string, lead Color) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := visibleLength(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i == len(row)-1 {
				line.WriteString(cell)
				break
			}
			padded := cell + strings.Repeat(" ", widths[i]-visibleLength(cell)+2)
			if i == 0 {
				padded = u.colorize(padded, lead)
			}
			line.WriteString(padded)
		}
		u.Println(strings.TrimRight(line.String(), " "))
	}
}
