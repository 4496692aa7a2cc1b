package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/amandalowe/creditcoach/internal/cli/formatter"
	"github.com/amandalowe/creditcoach/internal/domain"
	"github.com/amandalowe/creditcoach/internal/profileio"
)

func newProfileCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Create and inspect your credit profile",
	}

	var outPath string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Build a profile interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.IsInteractive != nil && !a.IsInteractive() {
				return fmt.Errorf("profile init needs an interactive terminal; write the JSON file by hand instead")
			}

			path := outPath
			if path == "" {
				path = a.Config.ProfilePath
			}

			profile, err := runProfileWizard()
			if err != nil {
				return err
			}
			if err := profileio.Save(path, profile); err != nil {
				return fmt.Errorf("writing profile: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "profile written to", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&outPath, "out", "", "Where to write the profile (defaults to the configured path)")

	var showPath string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := showPath
			if path == "" {
				path = a.Config.ProfilePath
			}
			profile, err := profileio.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Profile"))
			fmt.Fprintf(out, "readiness score %s  %s\n",
				formatter.Bold(strconv.FormatFloat(profile.Scorecard.Score, 'f', -1, 64)),
				formatter.TierStyle(profile.Scorecard.Tier).Render("tier "+string(profile.Scorecard.Tier)))
			fmt.Fprintf(out, "credit score %d · utilization %.0f%% · %d derogatory · %d tradelines\n",
				profile.Scorecard.CreditScore,
				profile.Scorecard.Utilization*100,
				profile.Scorecard.DerogatoryCount,
				profile.Scorecard.TradelineCount)
			if profile.Tradelines == nil {
				fmt.Fprintln(out, formatter.Dim("no tradeline data"))
			}
			return nil
		},
	}
	showCmd.Flags().StringVar(&showPath, "profile", "", "Profile JSON file (defaults to the configured path)")

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

// runProfileWizard collects the scorecard and tradeline facts through
// a huh form and assembles a domain profile.
func runProfileWizard() (*domain.Profile, error) {
	var (
		scoreStr       string
		creditScoreStr string
		utilizationStr string
		debtStr        string
		limitStr       string
		derogStr       string
		tradelineStr   string

		hasTradelines bool
		isRenter      bool
		hasMortgage   bool
		hasAutoLoan   bool
		hasStudent    bool

		transunionStr string
		equifaxStr    string
		experianStr   string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Readiness score (0-100)").
				Validate(validateFloatRange(0, 100)).
				Value(&scoreStr),
			huh.NewInput().
				Title("Credit score (e.g. 640)").
				Validate(validateFloatRange(0, 900)).
				Value(&creditScoreStr),
			huh.NewInput().
				Title("Overall utilization percent (e.g. 45)").
				Validate(validateFloatRange(0, 200)).
				Value(&utilizationStr),
			huh.NewInput().
				Title("Total revolving debt in dollars").
				Validate(validateOptionalFloat).
				Value(&debtStr),
			huh.NewInput().
				Title("Total credit limit in dollars").
				Validate(validateOptionalFloat).
				Value(&limitStr),
			huh.NewInput().
				Title("Derogatory marks on your report").
				Validate(validateOptionalFloat).
				Value(&derogStr),
			huh.NewInput().
				Title("Open tradelines (accounts)").
				Validate(validateOptionalFloat).
				Value(&tradelineStr),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add tradeline details?").
				Description("Renter status, mortgage, auto and student loans unlock tailored modules.").
				Value(&hasTradelines),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Do you rent your home?").Value(&isRenter),
			huh.NewConfirm().Title("Mortgage on your report?").Value(&hasMortgage),
			huh.NewConfirm().Title("Auto loan on your report?").Value(&hasAutoLoan),
			huh.NewConfirm().Title("Student loans on your report?").Value(&hasStudent),
		).WithHideFunc(func() bool { return !hasTradelines }),
		huh.NewGroup(
			huh.NewInput().
				Title("TransUnion score (blank if unknown)").
				Validate(validateOptionalFloat).
				Value(&transunionStr),
			huh.NewInput().
				Title("Equifax score (blank if unknown)").
				Validate(validateOptionalFloat).
				Value(&equifaxStr),
			huh.NewInput().
				Title("Experian score (blank if unknown)").
				Validate(validateOptionalFloat).
				Value(&experianStr),
		),
	).WithTheme(coachHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}

	score := parseFloatOrZero(scoreStr)
	profile := &domain.Profile{
		Scorecard: domain.Scorecard{
			Score:            score,
			Tier:             domain.TierForScore(score),
			CreditScore:      int(parseFloatOrZero(creditScoreStr)),
			Utilization:      parseFloatOrZero(utilizationStr) / 100,
			TotalDebt:        parseFloatOrZero(debtStr),
			TotalCreditLimit: parseFloatOrZero(limitStr),
			DerogatoryCount:  int(parseFloatOrZero(derogStr)),
			TradelineCount:   int(parseFloatOrZero(tradelineStr)),
		},
	}

	if hasTradelines {
		profile.Tradelines = &domain.TradelineProfile{
			IsRenter:         isRenter,
			HasMortgage:      hasMortgage,
			HasAutoLoan:      hasAutoLoan,
			HasStudentLoan:   hasStudent,
			RevolvingBalance: profile.Scorecard.TotalDebt,
			RevolvingLimit:   profile.Scorecard.TotalCreditLimit,
		}
	}

	bureaus := map[string]string{
		domain.BureauTransUnion: transunionStr,
		domain.BureauEquifax:    equifaxStr,
		domain.BureauExperian:   experianStr,
	}
	for bureau, raw := range bureaus {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if profile.BureauScores == nil {
			profile.BureauScores = make(map[string]*int, 3)
		}
		v := int(parseFloatOrZero(raw))
		profile.BureauScores[bureau] = &v
	}

	return profile, nil
}

func validateFloatRange(min, max float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %.0f and %.0f", min, max)
		}
		return nil
	}
}

func validateOptionalFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number or leave blank")
	}
	return nil
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
