package ui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/five82/booklist/internal/books"
)

// renderHeader renders the status line: logo, query, result count, spinner,
// last update and the most recent error or notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	snap := m.snapshot

	parts := []string{bg.Render("booklist", styles.Logo)}

	query := snap.Query
	if query == "" {
		query = "(all)"
	} else {
		query = `"` + truncate(query, ternaryInt(compact, 20, 40)) + `"`
	}
	parts = append(parts,
		bg.Render("Query:", styles.MutedText)+bg.Space()+bg.Render(query, styles.Text))

	countStyle := styles.Text
	if len(snap.Books) == 0 {
		countStyle = styles.FaintText
	}
	parts = append(parts,
		bg.Render("Results:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(snap.Books)), countStyle))

	if snap.Loading {
		parts = append(parts,
			bg.Sep(m.spinner.View())+bg.Space()+bg.Render("Searching...", styles.WarningText))
	} else if ts := formatTimestamp(snap.LastUpdated, time.Now()); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	if snap.LastError != nil && !snap.Loading {
		errText := truncate(snap.LastError.Error(), ternaryInt(compact, 40, 80))
		parts = append(parts,
			bg.Render(classifySearchError(snap.LastError), styles.DangerText)+bg.Space()+
				bg.Render(errText, styles.DangerText))
	}

	if m.notice != "" {
		parts = append(parts, bg.Render(truncate(m.notice, 60), styles.InfoText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the key hints for the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd
	switch m.currentView {
	case ViewLogs:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
			{"l", "Results"},
			{"/", "Search"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"j/k", "Navigate"},
			{"enter", "Open"},
			{"y", "Copy link"},
			{"l", "Logs"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// formatTimestamp formats the last update time with a relative indicator.
func formatTimestamp(ts, now time.Time) string {
	if ts.IsZero() {
		return ""
	}
	out := ts.Format("15:04:05")
	switch since := now.Sub(ts); {
	case since < time.Minute:
		out += " (now)"
	case since < time.Hour:
		out += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	case since < 24*time.Hour:
		out += fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	}
	return out
}

// classifySearchError returns a short label for the header.
func classifySearchError(err error) string {
	if err == nil {
		return ""
	}
	var statusErr *books.StatusError
	var netErr net.Error
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("HTTP %d", statusErr.Code)
	case errors.Is(err, books.ErrMalformedResponse), errors.Is(err, books.ErrEmptyBody):
		return "BAD RESPONSE"
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "TIMEOUT"
	case strings.Contains(err.Error(), "connection refused"):
		return "OFFLINE"
	case strings.Contains(err.Error(), "no such host"):
		return "HOST NOT FOUND"
	default:
		return "ERROR"
	}
}

func ternaryInt(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}
