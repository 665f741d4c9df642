package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// openSearch focuses the search input, prefilled with the current query.
func (m *Model) openSearch() tea.Cmd {
	m.searching = true
	m.notice = ""
	m.searchInput.SetValue(m.snapshot.Query)
	m.searchInput.CursorEnd()
	return m.searchInput.Focus()
}

// handleSearchKey routes keys to the search input until it is submitted or
// cancelled.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.searching = false
		m.searchInput.Blur()
		return m, m.startSearch(m.searchInput.Value())
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// startSearch supersedes any pending search and runs term in the background.
// The loader's Begin hook marks the store as loading before the command runs.
func (m *Model) startSearch(term string) tea.Cmd {
	if m.loader == nil {
		return nil
	}
	term = strings.TrimSpace(term)
	task := m.loader.Next(m.ctx, term)
	m.log.Debug().Str("term", term).Uint64("generation", task.Generation()).Msg("search submitted")

	m.currentView = ViewBooks
	if m.store != nil {
		m.applySnapshot(m.store.Snapshot())
	}
	return tea.Batch(searchCmd(task), m.spinner.Tick)
}

// renderSearchBar renders the input in place of the command bar.
func (m Model) renderSearchBar() string {
	bg := NewBgStyle(m.theme.Surface)
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	hint := bg.Render("enter", styles.AccentText) + bg.Sep(":") + bg.Render("Search", styles.MutedText) +
		bg.Spaces(2) +
		bg.Render("esc", styles.AccentText) + bg.Sep(":") + bg.Render("Cancel", styles.MutedText)

	return styles.Header.Width(m.width).Render(m.searchInput.View() + bg.Spaces(2) + hint)
}
