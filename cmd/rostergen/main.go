package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arnavshah/roster-api-go/pkg/calendar"
	"github.com/arnavshah/roster-api-go/pkg/config"
	"github.com/arnavshah/roster-api-go/pkg/logger"
	"github.com/arnavshah/roster-api-go/pkg/models"
	"github.com/arnavshah/roster-api-go/pkg/service"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		year, month int
		seed        int64
		strict      bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "rostergen <request.json>",
		Short: "Generate a monthly roster from a JSON request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.InitCLI(cfg, cmd.ErrOrStderr(), verbose)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read request: %w", err)
			}
			var input models.RosterInput
			if err := json.Unmarshal(data, &input); err != nil {
				return fmt.Errorf("parse request: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("year") {
				input.Year = year
			}
			if flags.Changed("month") {
				input.Month = month
			}
			if flags.Changed("seed") {
				input.Seed = &seed
			}
			if flags.Changed("strict") {
				input.StrictOffDays = &strict
			}

			svc := service.NewRosterService(cfg.WeekdayNames, cfg.StrictOffDays, logger.Log)
			resp, err := svc.Generate(input)
			if err != nil {
				return err
			}

			render(cmd.OutOrStdout(), resp, calendar.New(cfg.WeekdayNames))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "target year (defaults to next month)")
	cmd.Flags().IntVar(&month, "month", 0, "target month 1-12 (defaults to next month)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible rosters")
	cmd.Flags().BoolVar(&strict, "strict", false, "never schedule explicit off days while balancing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log run details")
	return cmd
}
