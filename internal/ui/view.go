package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/MrSnakeDoc/restdemo/internal/session"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("restdemo")

	var health string
	switch {
	case !m.sess.Probed():
		health = m.styles.Pending.Render("○ checking backend")
	case m.sess.Healthy():
		health = m.styles.Healthy.Render("● backend healthy")
	default:
		health = m.styles.Unhealthy.Render("● backend unreachable")
	}

	parts := []string{title, health}
	if m.backendURL != "" {
		parts = append(parts, m.styles.Muted.Render(m.backendURL))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderBody() string {
	st := m.sess.State()

	switch st.Phase() {
	case session.Initial:
		if m.sess.Probed() && !m.sess.Healthy() {
			return m.styles.Muted.Render("Backend is not available. Press r to check again.")
		}
		return m.styles.Muted.Render("Press f to fetch data from the backend.")

	case session.Loading:
		return m.spinner.View() + " Loading..."

	case session.Success:
		rec, _ := st.Record()
		rows := []string{
			m.row("ID", rec.ID),
			m.row("Name", rec.Name),
			m.row("Description", rec.Description),
		}
		card := m.cardStyle(m.styles.Card).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
		fetched := m.styles.Muted.Render("fetched " + humanize.RelTime(st.At(), m.now(), "ago", "from now"))
		return lipgloss.JoinVertical(lipgloss.Left, card, fetched)

	case session.Error:
		msg, _ := st.Message()
		return m.cardStyle(m.styles.ErrorCard).Render("Error: " + msg)

	default:
		panic(fmt.Sprintf("ui: unhandled phase %v", st.Phase()))
	}
}

func (m Model) renderHelp() string {
	fetch := m.styles.Key.Render("f") + " fetch"
	if !m.sess.CanFetch() {
		fetch = m.styles.KeyOff.Render("f fetch")
	}
	return strings.Join([]string{
		fetch,
		m.styles.Key.Render("r") + " recheck",
		m.styles.Key.Render("q") + " quit",
	}, m.styles.Muted.Render(" • "))
}

func (m Model) row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Label.Render(label), m.styles.Value.Render(value))
}

func (m Model) cardStyle(base lipgloss.Style) lipgloss.Style {
	if m.width > 4 {
		return base.MaxWidth(m.width)
	}
	return base
}
