package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/booklist/internal/books"
)

const emptyMessage = "No books found."

// renderBooks renders the result view: list pane on the left, detail pane on
// the right, or the empty state.
func (m Model) renderBooks() string {
	styles := m.theme.Styles()
	contentHeight := max(m.height-chromeHeight, 3)

	if len(m.snapshot.Books) == 0 {
		msg := emptyMessage
		if m.snapshot.Loading {
			msg = m.spinner.View() + " Searching..."
		}
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render(msg))
	}

	listWidth, detailWidth := m.paneWidths()

	title := fmt.Sprintf("Books (%d)", len(m.snapshot.Books))
	list := m.renderTitledBox(title, m.renderBookList(listWidth-2, contentHeight-2), listWidth, contentHeight, true)

	var detail string
	if book, ok := m.selectedBook(); ok {
		detail = m.renderDetail(book, detailWidth-4)
	}
	detailPane := m.renderTitledBox("Details", detail, detailWidth, contentHeight, false)

	return lipgloss.JoinHorizontal(lipgloss.Top, list, detailPane)
}

// paneWidths splits the terminal width between the list and detail panes.
func (m Model) paneWidths() (list, detail int) {
	if m.width >= LayoutExtraWideWidth {
		list = m.width * 35 / 100
	} else {
		list = m.width * 45 / 100
	}
	list = max(list, min(LayoutMinListWidth, m.width))
	return list, m.width - list
}

// listRows is the number of book rows visible in the list pane.
func (m Model) listRows() int {
	return max(m.height-chromeHeight-2, 1)
}

// renderBookList renders the visible window of rows, keeping the selection
// in view.
func (m Model) renderBookList(width, rows int) string {
	items := m.snapshot.Books
	if rows <= 0 || width <= 0 {
		return ""
	}
	start := 0
	if m.selected >= rows {
		start = m.selected - rows + 1
	}
	end := min(start+rows, len(items))

	paneBg := m.theme.FocusBg
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lineBg := paneBg
		if i == m.selected {
			lineBg = m.theme.SelectionBg
		}
		lines = append(lines, NewBgStyle(lineBg).FillLine(m.formatBookRow(items[i], width, lineBg, i == m.selected), width))
	}
	return strings.Join(lines, "\n")
}

// formatBookRow formats "Title · Author" to fit width.
func (m Model) formatBookRow(book books.Book, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	titleStyle, authorStyle := styles.Text, styles.MutedText
	if selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		titleStyle, authorStyle = sel.Bold(true), sel
	}

	author := truncate(book.Author, max(width/3, 8))
	titleWidth := width - len([]rune(author)) - 4 // " · " plus a leading space
	if titleWidth < 8 {
		return bg.Space() + bg.Render(truncate(book.Title, width-1), titleStyle)
	}
	return bg.Space() + bg.Render(truncate(book.Title, titleWidth), titleStyle) +
		bg.Render(" · ", styles.FaintText) + bg.Render(author, authorStyle)
}

// renderDetail renders the selected book's fields.
func (m Model) renderDetail(book books.Book, width int) string {
	styles := m.theme.Styles()
	width = max(width, 10)

	var b strings.Builder
	for _, line := range wrap(book.Title, width) {
		b.WriteString(styles.Text.Bold(true).Render(line))
		b.WriteString("\n")
	}
	authorStyle := styles.AccentText
	if book.Author == books.NoAuthor {
		authorStyle = styles.FaintText
	}
	b.WriteString(authorStyle.Render(truncate("by "+book.Author, width)))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(styles.MutedText.Render(label))
		b.WriteString("\n")
		b.WriteString(styles.InfoText.Render(truncateMiddle(value, width)))
		b.WriteString("\n\n")
	}
	field("Buy", book.PurchaseURL)
	field("Cover", book.CoverURL)

	b.WriteString(styles.FaintText.Render("enter open · y copy link"))
	return b.String()
}

// renderTitledBox renders content in a box with the title embedded in the top
// border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor, bgColor := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColor, bgColor = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	top := bg.Render("┌"+strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad)+"┐", borderStyle)
	bottom := bg.Render("└"+strings.Repeat("─", innerWidth)+"┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColor))
	contentLines := strings.Split(content, "\n")
	side := bg.Render("│", borderStyle)

	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < height-2; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, side+contentStyle.Render(line)+side)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}
