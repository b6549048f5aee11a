package dashboard

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"riskdash/internal/applicant"
)

// numericField is a bounded integer input. The widget accepts digits
// only and clamps to its bounds whenever it loses focus or its value is
// read, so the payload can never carry an out-of-range number.
type numericField struct {
	label  string
	input  textinput.Model
	bounds applicant.Bounds
}

func newNumericField(label string, bounds applicant.Bounds) numericField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 9
	ti.Width = 10
	ti.SetValue(strconv.Itoa(bounds.Default))
	ti.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return errNotANumber
			}
		}
		return nil
	}
	return numericField{label: label, input: ti, bounds: bounds}
}

type notANumberError struct{}

func (notANumberError) Error() string { return "digits only" }

var errNotANumber = notANumberError{}

// Value parses the current text and clamps it into bounds. An empty or
// unparsable widget falls back to the field default.
func (f *numericField) Value() int {
	v, err := strconv.Atoi(f.input.Value())
	if err != nil {
		return f.bounds.Default
	}
	return f.bounds.Clamp(v)
}

// clamp rewrites the widget text to the clamped value.
func (f *numericField) clamp() {
	f.input.SetValue(strconv.Itoa(f.Value()))
}

func (f *numericField) focus() tea.Cmd { return f.input.Focus() }

func (f *numericField) blur() {
	f.input.Blur()
	f.clamp()
}

// selectField cycles through a fixed option set. For the job field the
// displayed labels differ from the integer codes carried on the wire;
// for the string-valued fields labels and values coincide.
type selectField struct {
	label   string
	options []string
	codes   []int // nil unless the field carries integer codes
	index   int
}

func newSelectField(label string, options []string, defaultIndex int) selectField {
	return selectField{label: label, options: options, index: defaultIndex}
}

func newJobField() selectField {
	labels := make([]string, len(applicant.JobOptions))
	codes := make([]int, len(applicant.JobOptions))
	for i, j := range applicant.JobOptions {
		labels[i] = j.Label
		codes[i] = j.Code
	}
	return selectField{
		label:   "Job Classification",
		options: labels,
		codes:   codes,
		index:   applicant.DefaultJobIndex,
	}
}

func (f *selectField) next() { f.index = (f.index + 1) % len(f.options) }

func (f *selectField) prev() {
	f.index = (f.index - 1 + len(f.options)) % len(f.options)
}

// Selected returns the displayed option label.
func (f *selectField) Selected() string { return f.options[f.index] }

// Code returns the wire value for code-carrying fields.
func (f *selectField) Code() int {
	if f.codes == nil {
		return f.index
	}
	return f.codes[f.index]
}

// Focus indices for the nine fields plus the predict button.
const (
	focusAge = iota
	focusCreditAmount
	focusDuration
	focusSex
	focusJob
	focusHousing
	focusSavingAccounts
	focusCheckingAccount
	focusPurpose
	focusButton
	focusCount
)

// Form holds the nine input widgets and the focus cursor. It owns the
// current field values for the lifetime of one interaction cycle.
type Form struct {
	age          numericField
	creditAmount numericField
	duration     numericField

	sex             selectField
	job             selectField
	housing         selectField
	savingAccounts  selectField
	checkingAccount selectField
	purpose         selectField

	focus int
}

// NewForm builds the form with schema defaults pre-populated.
func NewForm() *Form {
	f := &Form{
		age:          newNumericField("Age (Years)", applicant.AgeBounds),
		creditAmount: newNumericField("Credit Amount (DM)", applicant.CreditAmountBounds),
		duration:     newNumericField("Loan Duration (Months)", applicant.DurationBounds),

		sex:             newSelectField("Sex", applicant.SexOptions, applicant.DefaultSexIndex),
		job:             newJobField(),
		housing:         newSelectField("Housing Status", applicant.HousingOptions, applicant.DefaultHousingIndex),
		savingAccounts:  newSelectField("Saving Accounts", applicant.SavingAccountsOptions, applicant.DefaultSavingAccountsIndex),
		checkingAccount: newSelectField("Checking Account", applicant.CheckingAccountOptions, applicant.DefaultCheckingAccountIndex),
		purpose:         newSelectField("Purpose of Loan", applicant.PurposeOptions, applicant.DefaultPurposeIndex),
	}
	f.age.focus()
	return f
}

// numericAt returns the numeric field at a focus index, or nil.
func (f *Form) numericAt(idx int) *numericField {
	switch idx {
	case focusAge:
		return &f.age
	case focusCreditAmount:
		return &f.creditAmount
	case focusDuration:
		return &f.duration
	}
	return nil
}

// selectAt returns the select field at a focus index, or nil.
func (f *Form) selectAt(idx int) *selectField {
	switch idx {
	case focusSex:
		return &f.sex
	case focusJob:
		return &f.job
	case focusHousing:
		return &f.housing
	case focusSavingAccounts:
		return &f.savingAccounts
	case focusCheckingAccount:
		return &f.checkingAccount
	case focusPurpose:
		return &f.purpose
	}
	return nil
}

// OnButton reports whether the predict button is focused.
func (f *Form) OnButton() bool { return f.focus == focusButton }

// FocusNext advances focus, clamping the field being left.
func (f *Form) FocusNext() tea.Cmd { return f.moveFocus(1) }

// FocusPrev moves focus backwards.
func (f *Form) FocusPrev() tea.Cmd { return f.moveFocus(-1) }

func (f *Form) moveFocus(delta int) tea.Cmd {
	if nf := f.numericAt(f.focus); nf != nil {
		nf.blur()
	}
	f.focus = (f.focus + delta + focusCount) % focusCount
	if nf := f.numericAt(f.focus); nf != nil {
		return nf.focus()
	}
	return nil
}

// UpdateFocused routes a key to the focused widget: text editing for
// numeric fields, option cycling for selects. Navigation and submission
// keys are handled by the model, not here.
func (f *Form) UpdateFocused(msg tea.KeyMsg) tea.Cmd {
	if nf := f.numericAt(f.focus); nf != nil {
		var cmd tea.Cmd
		nf.input, cmd = nf.input.Update(msg)
		return cmd
	}
	if sf := f.selectAt(f.focus); sf != nil {
		switch msg.String() {
		case "left", "h":
			sf.prev()
		case "right", "l", " ":
			sf.next()
		}
	}
	return nil
}

// Input assembles the current field values into the request payload.
// Called fresh on every submission: two submissions with unchanged
// fields produce two identical, independent payloads.
func (f *Form) Input() applicant.Input {
	return applicant.Input{
		Age:             f.age.Value(),
		Duration:        f.duration.Value(),
		CreditAmount:    f.creditAmount.Value(),
		Job:             f.job.Code(),
		Sex:             f.sex.Selected(),
		Housing:         f.housing.Selected(),
		SavingAccounts:  f.savingAccounts.Selected(),
		CheckingAccount: f.checkingAccount.Selected(),
		Purpose:         f.purpose.Selected(),
	}
}
