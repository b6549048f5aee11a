package dashboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"riskdash/cmd/riskdash/ui"
)

const minColumnWidth = 30

// View renders the dashboard: header, the three field groups side by
// side, the predict button, and the status area for the current cycle.
func (m Model) View() string {
	s := m.styles

	header := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Credit Risk Segmentation Dashboard"),
		s.Caption.Render("Terminal frontend for the risk segmentation prediction API."),
	)

	colWidth := minColumnWidth
	if m.width > 0 {
		if w := (m.width - 12) / 3; w > colWidth {
			colWidth = w
		}
	}

	groups := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderGroup("Personal & Financial", colWidth, focusAge, focusCreditAmount, focusDuration),
		" ",
		m.renderGroup("Employment & Housing", colWidth, focusSex, focusJob, focusHousing),
		" ",
		m.renderGroup("Account Status", colWidth, focusSavingAccounts, focusCheckingAccount, focusPurpose),
	)

	button := s.Button.Render("Predict Risk Segment")
	if m.form.OnButton() {
		button = s.ButtonFocused.Render("Predict Risk Segment")
	}

	divWidth := 3*colWidth + 8
	sections := []string{
		header,
		"",
		groups,
		s.RenderDivider(divWidth),
		button,
		"",
		m.renderStatus(colWidth),
		"",
		s.Muted.Render("tab/↑/↓: move · ←/→: change option · enter: predict · esc: quit"),
	}

	return s.Content.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderStatus renders the in-flight spinner, the result card, or the
// error banner, depending on where the current cycle ended.
func (m Model) renderStatus(colWidth int) string {
	s := m.styles
	switch m.state {
	case stateSubmitting:
		return m.spinner.View() + s.Body.Render(" Analyzing data via the prediction pipeline...")
	case stateRendered:
		if m.result == nil {
			return ""
		}
		card := ui.RenderResultCard(s, m.result, 2*colWidth)
		note := s.Success.Render("Prediction complete! Result received from the prediction API.")
		return lipgloss.JoinVertical(lipgloss.Left, card, "", note)
	case stateErrorShown:
		if m.lastErr == nil {
			return ""
		}
		return ui.RenderError(s, m.lastErr)
	default:
		return s.Muted.Render("Fill in the applicant details and press Predict.")
	}
}

// renderGroup renders one titled column of fields.
func (m Model) renderGroup(title string, width int, fields ...int) string {
	s := m.styles

	rows := []string{s.GroupTitle.Render(title), ""}
	for _, idx := range fields {
		rows = append(rows, m.renderField(idx)...)
	}

	return s.GroupBox.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderField renders the label and value lines for one field.
func (m Model) renderField(idx int) []string {
	s := m.styles
	focused := m.form.focus == idx

	if nf := m.form.numericAt(idx); nf != nil {
		label := s.FieldLabel.Render(nf.label)
		if focused {
			label = s.FieldFocused.Render(nf.label)
		}
		return []string{label, nf.input.View(), ""}
	}

	sf := m.form.selectAt(idx)
	if sf == nil {
		return nil
	}

	label := s.FieldLabel.Render(sf.label)
	value := s.FieldValue.Render(sf.Selected())
	if focused {
		label = s.FieldFocused.Render(sf.label)
		value = fmt.Sprintf("%s %s %s",
			s.OptionArrow.Render("◀"),
			s.FieldValue.Render(sf.Selected()),
			s.OptionArrow.Render("▶"))
	}
	return []string{label, value, ""}
}
