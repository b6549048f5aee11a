package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"riskdash/cmd/riskdash/ui"
	"riskdash/internal/applicant"
	"riskdash/internal/prediction"
)

var predictInput applicant.Input

// predictCmd performs one prediction from flags and prints the result
// card, for scripting and for checking the service without the TUI.
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Run a single prediction from flags",
	Long: `Sends one applicant to the prediction service and prints the risk card.

Example:
  riskdash predict --age 42 --credit-amount 12000 --purpose business`,
	RunE: runPredict,
}

func init() {
	def := applicant.Default()
	predictCmd.Flags().IntVar(&predictInput.Age, "age", def.Age, "applicant age in years")
	predictCmd.Flags().IntVar(&predictInput.Duration, "duration", def.Duration, "loan duration in months")
	predictCmd.Flags().IntVar(&predictInput.CreditAmount, "credit-amount", def.CreditAmount, "credit amount in DM")
	predictCmd.Flags().IntVar(&predictInput.Job, "job", def.Job, "job classification code (0-3)")
	predictCmd.Flags().StringVar(&predictInput.Sex, "sex", def.Sex, "sex (male, female)")
	predictCmd.Flags().StringVar(&predictInput.Housing, "housing", def.Housing, "housing status (rent, own, free)")
	predictCmd.Flags().StringVar(&predictInput.SavingAccounts, "saving-accounts", def.SavingAccounts, "saving accounts level")
	predictCmd.Flags().StringVar(&predictInput.CheckingAccount, "checking-account", def.CheckingAccount, "checking account level")
	predictCmd.Flags().StringVar(&predictInput.Purpose, "purpose", def.Purpose, "loan purpose")
}

func runPredict(cmd *cobra.Command, args []string) error {
	if err := predictInput.Validate(); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	timeout, err := cfg.APITimeout()
	if err != nil {
		return err
	}
	client := prediction.NewClient(cfg.API.BaseURL, timeout)
	styles := ui.NewStyles(ui.ResolveTheme(cfg.UI.Theme))

	logger.Info("sending prediction request",
		zap.String("endpoint", client.Endpoint()),
		zap.Int("age", predictInput.Age))

	result, err := client.Predict(cmd.Context(), predictInput)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.RenderError(styles, err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderResultCard(styles, result, 50))
	return nil
}
