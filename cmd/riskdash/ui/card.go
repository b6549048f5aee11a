package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"riskdash/internal/prediction"
)

// RenderResultCard renders the risk card for a prediction result: the
// segment label in the segment's color, framed by a border of the same
// color, with the predicted segment name underneath.
func RenderResultCard(s Styles, result *prediction.Result, width int) string {
	seg := result.Segment()
	color := RiskColor(seg, s.Theme)

	if width < 30 {
		width = 30
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(color).
		Padding(1, 2).
		Width(width).
		Align(lipgloss.Center)

	label := s.CardLabel.Foreground(color).Render(seg.Label())
	segment := s.CardSegment.Render(fmt.Sprintf("Predicted Segment: %s", result.RiskSegmentName))

	return card.Render(lipgloss.JoinVertical(lipgloss.Center, label, "", segment))
}

// RenderError renders the error banner plus the guidance hint for a
// failed prediction call. The hint names the endpoint on connection
// failures so the user knows what to start.
func RenderError(s Styles, err error) string {
	banner, hint := describeError(err)
	out := s.Error.Render(banner)
	if hint != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, s.Warning.Render(hint))
	}
	return out
}

// describeError maps the client error taxonomy to a user-facing banner
// and an optional hint line.
func describeError(err error) (banner, hint string) {
	var apiErr *prediction.APIError
	var connErr *prediction.ConnectionError

	switch {
	case errors.As(err, &apiErr):
		banner = fmt.Sprintf("API Error (%d): %s", apiErr.StatusCode, apiErr.Detail)
		hint = "Ensure the prediction API server is running in a separate terminal."
	case errors.As(err, &connErr):
		banner = "Connection Error: Could not connect to the Prediction API."
		hint = fmt.Sprintf("Please ensure the prediction API server is running at %s.", connErr.Endpoint)
	default:
		banner = fmt.Sprintf("An unexpected error occurred: %v", err)
	}
	return banner, hint
}
