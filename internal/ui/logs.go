package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/booklist/internal/logtail"
)

// logLinesMsg carries a fresh tail of the log file.
type logLinesMsg struct {
	lines []string
	err   error
}

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logLinesMsg{}
		}
		lines, err := logtail.Read(path, LogTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(max(m.width-2, 1), max(m.height-chromeHeight-2, 1))
}

// updateLogViewport resizes the viewport and refreshes its content. The view
// stays pinned to the bottom unless the user scrolled up.
func (m *Model) updateLogViewport() {
	if m.logViewport.Width == 0 {
		m.initLogViewport()
	}
	pinned := m.logViewport.AtBottom() || m.logViewport.TotalLineCount() == 0
	m.logViewport.Width = max(m.width-2, 1)
	m.logViewport.Height = max(m.height-chromeHeight-2, 1)
	m.logViewport.SetContent(m.renderLogContent())
	if pinned {
		m.logViewport.GotoBottom()
	}
}

// renderLogContent decodes zerolog lines and colors their level.
func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	if m.logErr != nil {
		return styles.DangerText.Render("read log: " + m.logErr.Error())
	}
	if len(m.logLines) == 0 {
		return styles.MutedText.Render("No log entries yet")
	}

	width := max(m.logViewport.Width-1, 10)
	out := make([]string, 0, len(m.logLines))
	for _, raw := range m.logLines {
		entry, ok := logtail.Decode(raw)
		if !ok {
			out = append(out, styles.Text.Render(truncate(raw, width)))
			continue
		}
		line := truncate(entry.String(), width)
		if entry.Level != "" {
			if idx := strings.Index(line, entry.Level); idx >= 0 {
				line = styles.FaintText.Render(line[:idx]) +
					styles.LevelStyle(entry.Level).Render(entry.Level) +
					styles.Text.Render(line[idx+len(entry.Level):])
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// renderLogs renders the log view.
func (m Model) renderLogs() string {
	contentHeight := max(m.height-chromeHeight, 3)
	title := "Log"
	if m.logPath != "" {
		title += " · " + truncateMiddle(m.logPath, max(m.width/2, 10))
	}
	box := m.renderTitledBox(title, m.logViewport.View(), m.width, contentHeight, true)
	return lipgloss.NewStyle().MaxHeight(contentHeight).Render(box)
}

// handleLogsKey scrolls the log viewport.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.PageUp()
	}
	return m, nil
}
