// Package applicant defines the loan-applicant input schema: the nine
// attributes sent to the prediction service, their bounds, option sets,
// and defaults. The JSON field names are part of the wire contract with
// the prediction API and must not change.
package applicant

import "fmt"

// Bounds describes the valid range for a numeric field.
// Max == 0 means the field has no upper bound.
type Bounds struct {
	Min     int
	Max     int
	Default int
}

// Clamp forces v into the declared range.
func (b Bounds) Clamp(v int) int {
	if v < b.Min {
		return b.Min
	}
	if b.Max > 0 && v > b.Max {
		return b.Max
	}
	return v
}

// Contains reports whether v is within the declared range.
func (b Bounds) Contains(v int) bool {
	if v < b.Min {
		return false
	}
	if b.Max > 0 && v > b.Max {
		return false
	}
	return true
}

// Numeric field bounds from the German Credit Data schema.
var (
	AgeBounds          = Bounds{Min: 18, Max: 100, Default: 35}
	DurationBounds     = Bounds{Min: 6, Max: 72, Default: 24}
	CreditAmountBounds = Bounds{Min: 500, Default: 6500}
)

// JobClass is a job classification: an integer code carried on the wire
// paired with the label shown to the user.
type JobClass struct {
	Code  int
	Label string
}

// JobOptions is the fixed ordered set of job classifications.
var JobOptions = []JobClass{
	{Code: 0, Label: "Unskilled-Non-Resident"},
	{Code: 1, Label: "Unskilled-Resident"},
	{Code: 2, Label: "Skilled"},
	{Code: 3, Label: "Highly Skilled"},
}

// JobLabel returns the display label for a job code, or "" if the code
// is not part of the schema.
func JobLabel(code int) string {
	for _, j := range JobOptions {
		if j.Code == code {
			return j.Label
		}
	}
	return ""
}

// Enumerated field option sets. Order matters: the widgets present the
// options in this order, and the default is identified by index.
var (
	SexOptions             = []string{"male", "female"}
	HousingOptions         = []string{"rent", "own", "free"}
	SavingAccountsOptions  = []string{"little", "moderate", "quite rich", "rich"}
	CheckingAccountOptions = []string{"little", "moderate", "rich", "no checking"}
	PurposeOptions         = []string{
		"car", "furniture/equipment", "radio/TV", "domestic appliances",
		"repairs", "education", "business", "vacation/others",
	}
)

// Default indices into the option sets above.
const (
	DefaultSexIndex             = 0
	DefaultJobIndex             = 0
	DefaultHousingIndex         = 1
	DefaultSavingAccountsIndex  = 0
	DefaultCheckingAccountIndex = 1
	DefaultPurposeIndex         = 0
)

// Input is one applicant's attributes. Serialized as-is it forms the
// request payload; the JSON keys match the Pydantic schema on the
// prediction service exactly.
type Input struct {
	Age             int    `json:"Age"`
	Duration        int    `json:"Duration"`
	CreditAmount    int    `json:"Credit_amount"`
	Job             int    `json:"Job"`
	Sex             string `json:"Sex"`
	Housing         string `json:"Housing"`
	SavingAccounts  string `json:"Saving_accounts"`
	CheckingAccount string `json:"Checking_account"`
	Purpose         string `json:"Purpose"`
}

// Default returns an Input pre-populated with the schema defaults.
func Default() Input {
	return Input{
		Age:             AgeBounds.Default,
		Duration:        DurationBounds.Default,
		CreditAmount:    CreditAmountBounds.Default,
		Job:             JobOptions[DefaultJobIndex].Code,
		Sex:             SexOptions[DefaultSexIndex],
		Housing:         HousingOptions[DefaultHousingIndex],
		SavingAccounts:  SavingAccountsOptions[DefaultSavingAccountsIndex],
		CheckingAccount: CheckingAccountOptions[DefaultCheckingAccountIndex],
		Purpose:         PurposeOptions[DefaultPurposeIndex],
	}
}

// Validate checks every field against its declared bounds and option
// set. The form widgets enforce these constraints themselves; Validate
// guards inputs arriving from other surfaces (flags, tests).
func (in Input) Validate() error {
	if !AgeBounds.Contains(in.Age) {
		return fmt.Errorf("age %d outside [%d,%d]", in.Age, AgeBounds.Min, AgeBounds.Max)
	}
	if !DurationBounds.Contains(in.Duration) {
		return fmt.Errorf("duration %d outside [%d,%d]", in.Duration, DurationBounds.Min, DurationBounds.Max)
	}
	if !CreditAmountBounds.Contains(in.CreditAmount) {
		return fmt.Errorf("credit amount %d below minimum %d", in.CreditAmount, CreditAmountBounds.Min)
	}
	if JobLabel(in.Job) == "" {
		return fmt.Errorf("unknown job code %d", in.Job)
	}
	if !isOption(in.Sex, SexOptions) {
		return fmt.Errorf("invalid sex %q", in.Sex)
	}
	if !isOption(in.Housing, HousingOptions) {
		return fmt.Errorf("invalid housing %q", in.Housing)
	}
	if !isOption(in.SavingAccounts, SavingAccountsOptions) {
		return fmt.Errorf("invalid saving accounts %q", in.SavingAccounts)
	}
	if !isOption(in.CheckingAccount, CheckingAccountOptions) {
		return fmt.Errorf("invalid checking account %q", in.CheckingAccount)
	}
	if !isOption(in.Purpose, PurposeOptions) {
		return fmt.Errorf("invalid purpose %q", in.Purpose)
	}
	return nil
}

func isOption(v string, options []string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}
