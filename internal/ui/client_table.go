package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/aidanlsb/clientbook/internal/model"
)

// column describes one column of the client table.
type column struct {
	ratio    float64 // share of the flexible width; 0 means fixed
	minWidth int
	maxWidth int // 0 = no limit
	align    lipgloss.Position
	style    lipgloss.Style
}

const (
	columnPadding = 2
	leftMargin    = 2
)

var clientColumns = []column{
	{minWidth: 5, maxWidth: 6, align: lipgloss.Right, style: Muted},                             // index
	{ratio: 0.25, minWidth: 12, maxWidth: 40, align: lipgloss.Left, style: lipgloss.NewStyle()}, // name
	{minWidth: 12, align: lipgloss.Left, style: lipgloss.NewStyle()},                            // phone
	{ratio: 0.30, minWidth: 16, maxWidth: 48, align: lipgloss.Left, style: lipgloss.NewStyle()}, // email
	{ratio: 0.45, minWidth: 16, align: lipgloss.Left, style: Muted},                             // address
}

// ClientTable renders a numbered client list sized to the display width.
// Cells that do not fit are truncated with an ellipsis.
func ClientTable(display *DisplayContext, clients []model.Numbered) string {
	if len(clients) == 0 {
		return ""
	}

	widths := columnWidths(display.TermWidth)
	rows := make([][]string, len(clients))
	for i, nc := range clients {
		cells := []string{
			strconv.Itoa(nc.Num) + ".",
			nc.Client.Name.String(),
			nc.Client.Phone.String(),
			nc.Client.Email.String(),
			nc.Client.Address.String(),
		}
		for j := range cells {
			cells[j] = ansi.Truncate(cells[j], widths[j], "…")
		}
		rows[i] = cells
	}

	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderRow(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			def := clientColumns[col]
			style := def.style
			if col == 1 {
				style = Accent
			}
			style = style.Width(widths[col]).Align(def.align)
			if col < len(clientColumns)-1 {
				style = style.PaddingRight(columnPadding)
			}
			return style
		}).
		Rows(rows...)

	return lipgloss.NewStyle().MarginLeft(leftMargin).Render(tbl.Render())
}

// columnWidths gives fixed columns their minimum and shares what is left
// of termWidth among the flexible ones by ratio, within their bounds.
func columnWidths(termWidth int) []int {
	widths := make([]int, len(clientColumns))

	var totalRatio float64
	fixed := 0
	for i, col := range clientColumns {
		if col.ratio == 0 {
			widths[i] = col.minWidth
			fixed += widths[i]
			continue
		}
		totalRatio += col.ratio
	}

	available := termWidth - fixed - (len(clientColumns)-1)*columnPadding - leftMargin
	if available < 0 {
		available = 0
	}

	for i, col := range clientColumns {
		if col.ratio == 0 {
			continue
		}
		w := int(float64(available) * col.ratio / totalRatio)
		if w < col.minWidth {
			w = col.minWidth
		}
		if col.maxWidth > 0 && w > col.maxWidth {
			w = col.maxWidth
		}
		widths[i] = w
	}
	return widths
}
