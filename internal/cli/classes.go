package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/infra/joyroster"
)

func classesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "classes <entry-list.csv>",
		Short: "List the classes in an entry list with competitor counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			entries, err := joyroster.NewParser().ParseRoster(args[0])
			if err != nil {
				return err
			}

			names, byClass := domain.GroupByClass(entries)
			sort.Strings(names)

			for _, name := range names {
				classEntries := byClass[name]
				rentals := 0
				for _, e := range classEntries {
					if e.IsRental {
						rentals++
					}
				}
				line := fmt.Sprintf("%-12s %4d", name, len(classEntries))
				if rentals > 0 {
					line += fmt.Sprintf("  (%d rental)", rentals)
				}
				fmt.Println(line)
			}
			fmt.Printf("%-12s %4d\n", "total", len(entries))
			return nil
		},
	}
	return c
}
