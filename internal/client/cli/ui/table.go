package ui

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders decoded HPACK header fields (or any other name/value-shaped
// rows) as an aligned, styled table for hpackdump's default output mode.
type Table struct {
	headers      []string
	rows         [][]string
	title        string
	maxCellWidth int // 0 means unbounded; set via WithMaxCellWidth
}

// NewTable creates a new table
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    [][]string{},
	}
}

// WithTitle sets the table title
func (t *Table) WithTitle(title string) *Table {
	t.title = title
	return t
}

// WithMaxCellWidth makes AddRow truncate each cell past n runes with an
// ellipsis, so a block containing an oversized cookie or token value
// doesn't blow out the terminal width. Rows added before the call are left
// as they are. n <= 0 disables truncation.
func (t *Table) WithMaxCellWidth(n int) *Table {
	t.maxCellWidth = n
	return t
}

// AddRow adds a row to the table
func (t *Table) AddRow(row []string) *Table {
	if t.maxCellWidth > 0 {
		truncated := make([]string, len(row))
		for i, cell := range row {
			truncated[i] = truncate(cell, t.maxCellWidth)
		}
		row = truncated
	}
	t.rows = append(t.rows, row)
	return t
}

func truncate(s string, maxWidth int) string {
	r := []rune(s)
	if len(r) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	return string(r[:maxWidth-1]) + "…"
}

// Render lays the table out with lipgloss-styled headers and a muted
// separator row, column widths sized to the widest cell in each column.
func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	// Calculate column widths
	colWidths := make([]int, len(t.headers))
	for i, header := range t.headers {
		colWidths[i] = lipgloss.Width(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(colWidths) {
				width := lipgloss.Width(cell)
				if width > colWidths[i] {
					colWidths[i] = width
				}
			}
		}
	}

	var output strings.Builder

	// Title
	if t.title != "" {
		output.WriteString("\n")
		output.WriteString(titleStyle.Render(t.title))
		output.WriteString("\n\n")
	}

	// Header
	headerParts := make([]string, len(t.headers))
	for i, header := range t.headers {
		styled := tableHeaderStyle.Render(header)
		headerParts[i] = padRight(styled, colWidths[i])
	}
	output.WriteString(strings.Join(headerParts, "  "))
	output.WriteString("\n")

	// Separator line
	separatorChar := "─"
	if runtime.GOOS == "windows" {
		separatorChar = "-"
	}
	separatorParts := make([]string, len(t.headers))
	for i := range t.headers {
		separatorParts[i] = mutedStyle.Render(strings.Repeat(separatorChar, colWidths[i]))
	}
	output.WriteString(strings.Join(separatorParts, "  "))
	output.WriteString("\n")

	// Rows
	for _, row := range t.rows {
		rowParts := make([]string, len(t.headers))
		for i, cell := range row {
			if i < len(colWidths) {
				rowParts[i] = padRight(cell, colWidths[i])
			}
		}
		output.WriteString(strings.Join(rowParts, "  "))
		output.WriteString("\n")
	}

	output.WriteString("\n")
	return output.String()
}

// padRight pads
func padRight(text string, targetWidth int) string {
	visibleWidth := lipgloss.Width(text)
	if visibleWidth >= targetWidth {
		return text
	}
	padding := strings.Repeat(" ", targetWidth-visibleWidth)
	return text + padding
}

// Print prints the table
func (t *Table) Print() {
	fmt.Print(t.Render())
}
