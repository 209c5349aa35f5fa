package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/infra/confload"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/infra/joyroster"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/usecase"
)

func validateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "validate <entry-list.csv> <config.{yaml,json}>",
		Short: "Check that an entry list and config fit together (no output files)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			uc := usecase.NewValidateInputs(confload.NewLoader(), joyroster.NewParser())
			report, err := uc.Execute(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("Entries: %d (%d rental cards)\n", report.Entries, report.RentalCards)

			if len(report.SplitClasses) > 0 {
				originals := make([]string, 0, len(report.SplitClasses))
				for name := range report.SplitClasses {
					originals = append(originals, name)
				}
				sort.Strings(originals)
				for _, name := range originals {
					fmt.Printf("Split: %s -> %v\n", name, report.SplitClasses[name])
				}
			}

			ok := true
			for _, name := range report.UnassignedClasses {
				ok = false
				fmt.Printf("Unassigned class: %s (%d entries, no lane schedules it)\n", name, report.ClassCounts[name])
			}
			for _, name := range report.EmptyLaneClasses {
				ok = false
				fmt.Printf("Empty lane class: %s (configured but no entries)\n", name)
			}

			if !ok {
				return fmt.Errorf("entry list and config do not fully match")
			}
			fmt.Println("OK")
			return nil
		},
	}
	return c
}
