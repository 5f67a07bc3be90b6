package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorize_RespectsUseColor(t *testing.T) {
	plain := NewUI(&bytes.Buffer{}, false)
	assert.Equal(t, "hi", plain.colorize("hi", ColorRed))

	colored := NewUI(&bytes.Buffer{}, true)
	assert.Equal(t, string(ColorRed)+"hi"+string(ColorDefault), colored.colorize("hi", ColorRed))
	assert.Equal(t, "hi", colored.colorize("hi", ColorDefault))
}

func TestPromptString(t *testing.T) {
	u := NewUI(&bytes.Buffer{}, false)
	assert.Equal(t, "guild > ", u.PromptString(""))
	assert.Equal(t, "guild @ Lyra > ", u.PromptString("Lyra"))

	colored := NewUI(&bytes.Buffer{}, true)
	assert.Equal(t, len("guild @ Lyra > "), visibleLength(colored.PromptString("Lyra")))
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	u := NewUI(&buf, false)

	u.Success("ok")
	u.Warning("careful")
	u.Error("broken")
	u.Info("fyi")

	assert.Equal(t, "ok\n? careful\n! broken\nfyi\n", buf.String())
}

func TestPrintMultiColoredLine(t *testing.T) {
	var buf bytes.Buffer
	u := NewUI(&buf, true)

	u.PrintMultiColoredLine("a {{x}}b{{y}}c {{zz}}d", map[string]Color{"{{x}}": ColorRed, "{{y}}": ColorGreen})

	want := "a " + string(ColorRed) + "b" + string(ColorDefault) +
		string(ColorGreen) + "c " + string(ColorDefault) + "d\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintTable_AlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	u := NewUI(&buf, false)

	u.PrintTable([][]string{
		{"list", "Show the roster"},
		{"delete", "Remove one"},
	}, ColorGreen)

	assert.Equal(t, "list    Show the roster\ndelete  Remove one\n", buf.String())
}
