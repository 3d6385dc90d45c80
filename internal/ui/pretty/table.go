package pretty

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Table formatting constants.
const (
	tablePadding     = 2
	heavySeparator   = "="
	defaultTermWidth = 100
	minTextWidth     = 10
	ellipsis         = "…"
)

// LineRow describes one line of a buffer.
type LineRow struct {
	Line  int
	Start int
	End   int
	Text  string
}

// Width returns the display width of the row's text in terminal cells.
func (r LineRow) Width() int {
	return uniseg.StringWidth(r.Text)
}

// LineTableFormatter formats line rows as a styled table.
type LineTableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewLineTableFormatter creates a new line table formatter.
func NewLineTableFormatter(styles *Styles, termWidth int) *LineTableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &LineTableFormatter{styles: styles, termWidth: termWidth}
}

type lineColumnWidths struct {
	line  int
	start int
	end   int
	width int
	text  int
}

// FormatTable formats rows as a table with LINE, START, END, WIDTH and TEXT
// columns. Lines are numbered from 1.
func (t *LineTableFormatter) FormatTable(rows []LineRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.columnWidths(rows)

	var builder strings.Builder
	header := fmt.Sprintf("%*s  %*s  %*s  %*s  %s",
		widths.line, "LINE",
		widths.start, "START",
		widths.end, "END",
		widths.width, "WIDTH",
		"TEXT")
	builder.WriteString(t.styles.TableHeader.Render(header))
	builder.WriteString("\n")
	builder.WriteString(t.separator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.styles.LineNumber.Render(fmt.Sprintf("%*d", widths.line, row.Line+1)))
		builder.WriteString("  ")
		builder.WriteString(t.styles.Offset.Render(fmt.Sprintf("%*d", widths.start, row.Start)))
		builder.WriteString("  ")
		builder.WriteString(t.styles.Offset.Render(fmt.Sprintf("%*d", widths.end, row.End)))
		builder.WriteString("  ")
		builder.WriteString(t.styles.Width.Render(fmt.Sprintf("%*d", widths.width, row.Width())))
		builder.WriteString("  ")
		builder.WriteString(truncate(row.Text, widths.text))
		builder.WriteString("\n")
	}

	builder.WriteString(t.separator(widths))
	builder.WriteString("\n")
	builder.WriteString(t.styles.Dim.Render(fmt.Sprintf("%d lines", len(rows))))
	builder.WriteString("\n")

	return builder.String()
}

func (t *LineTableFormatter) columnWidths(rows []LineRow) lineColumnWidths {
	widths := lineColumnWidths{
		line:  len("LINE"),
		start: len("START"),
		end:   len("END"),
		width: len("WIDTH"),
	}

	for _, row := range rows {
		widths.line = max(widths.line, len(fmt.Sprint(row.Line+1)))
		widths.start = max(widths.start, len(fmt.Sprint(row.Start)))
		widths.end = max(widths.end, len(fmt.Sprint(row.End)))
		widths.width = max(widths.width, len(fmt.Sprint(row.Width())))
	}

	used := widths.line + widths.start + widths.end + widths.width + tablePadding*4
	widths.text = max(minTextWidth, t.termWidth-used)
	return widths
}

func (t *LineTableFormatter) separator(widths lineColumnWidths) string {
	total := widths.line + widths.start + widths.end + widths.width + widths.text + tablePadding*4
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, min(total, t.termWidth)))
}

// truncate shortens s to at most width cells, measuring grapheme clusters so
// wide and combining characters are never split.
func truncate(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var builder strings.Builder
	used := 0
	limit := width - uniseg.StringWidth(ellipsis)
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > limit {
			break
		}
		builder.WriteString(g.Str())
		used += w
	}
	builder.WriteString(ellipsis)
	return builder.String()
}
