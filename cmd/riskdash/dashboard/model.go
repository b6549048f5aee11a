// Package dashboard implements the interactive risk segmentation
// dashboard: a grouped applicant form, a single predict action, and the
// result card or error banner for the most recent attempt.
package dashboard

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"riskdash/cmd/riskdash/ui"
	"riskdash/internal/applicant"
	"riskdash/internal/prediction"
)

// Predictor is the outbound call the dashboard makes. Satisfied by
// *prediction.Client; tests substitute their own.
type Predictor interface {
	Predict(ctx context.Context, in applicant.Input) (*prediction.Result, error)
	Endpoint() string
}

// interactionState tracks one submission cycle. Every cycle is
// terminal: the next trigger restarts from idle, carrying over nothing
// but the field values.
type interactionState int

const (
	stateIdle interactionState = iota
	stateSubmitting
	stateRendered
	stateErrorShown
)

type (
	predictionMsg    struct{ result *prediction.Result }
	predictionErrMsg struct{ err error }
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	form    *Form
	spinner spinner.Model
	styles  ui.Styles

	client Predictor
	logger *zap.Logger

	state   interactionState
	result  *prediction.Result
	lastErr error

	width  int
	height int
}

// New creates the dashboard model.
func New(client Predictor, styles ui.Styles, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.Spinner),
	)
	return Model{
		form:    NewForm(),
		spinner: sp,
		styles:  styles,
		client:  client,
		logger:  logger,
		state:   stateIdle,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

		// The call is blocking from the user's point of view: while a
		// request is in flight only quit keys are honored.
		if m.state == stateSubmitting {
			return m, nil
		}

		switch msg.String() {
		case "tab", "down":
			return m, m.form.FocusNext()
		case "shift+tab", "up":
			return m, m.form.FocusPrev()
		case "enter":
			if m.form.OnButton() {
				return m.submit()
			}
			return m, m.form.FocusNext()
		}

		return m, m.form.UpdateFocused(msg)

	case spinner.TickMsg:
		if m.state == stateSubmitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case predictionMsg:
		m.state = stateRendered
		m.result = msg.result
		m.lastErr = nil
		m.logger.Info("prediction received",
			zap.Int("segment_id", msg.result.RiskSegmentID),
			zap.String("segment", msg.result.Segment().String()),
			zap.String("segment_name", msg.result.RiskSegmentName))
		return m, nil

	case predictionErrMsg:
		m.state = stateErrorShown
		m.result = nil
		m.lastErr = msg.err
		m.logger.Warn("prediction failed", zap.Error(msg.err))
		return m, nil
	}

	return m, nil
}

// submit builds a fresh payload from the current field values and
// starts the single prediction attempt. The previous result is
// discarded before the request goes out.
func (m Model) submit() (tea.Model, tea.Cmd) {
	in := m.form.Input()

	m.state = stateSubmitting
	m.result = nil
	m.lastErr = nil

	m.logger.Info("submitting prediction request",
		zap.Int("age", in.Age),
		zap.Int("duration", in.Duration),
		zap.Int("credit_amount", in.CreditAmount),
		zap.String("endpoint", m.client.Endpoint()))

	return m, tea.Batch(m.spinner.Tick, m.predict(in))
}

// predict performs the outbound call off the update loop. Exactly one
// attempt; the classification of the failure is the client's job.
func (m Model) predict(in applicant.Input) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.Predict(context.Background(), in)
		if err != nil {
			return predictionErrMsg{err: err}
		}
		return predictionMsg{result: result}
	}
}

// Run starts the dashboard program and blocks until quit.
func Run(client Predictor, styles ui.Styles, logger *zap.Logger) error {
	p := tea.NewProgram(New(client, styles, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
