package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/infra/confload"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/infra/joaranking"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/infra/joyroster"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/infra/logger"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/infra/mulkaout"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/usecase"
)

func generateCmd(debug *bool) *cobra.Command {
	var outputDir string
	var seed int64
	var noRanking bool

	c := &cobra.Command{
		Use:   "generate <entry-list.csv> <config.{yaml,json}>",
		Short: "Generate Mulka startlist files from a JOY entry list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryList, configPath := args[0], args[1]

			cleanup, err := logger.Setup(logger.Config{Dir: outputDir, Debug: *debug})
			if err == nil && cleanup != nil {
				defer func() { _ = cleanup() }()
			}
			log := logger.L()

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			uc := usecase.NewGenerateStartlists(
				confload.NewLoader(),
				joyroster.NewParser(joyroster.WithLogger(log)),
				joaranking.New(joaranking.WithLogger(log)),
				mulkaout.New(mulkaout.WithLogger(log)),
				usecase.WithGenerateLogger(log),
			)

			summary, err := uc.Execute(cmd.Context(), usecase.GenerateParams{
				EntryListPath: entryList,
				ConfigPath:    configPath,
				OutputDir:     outputDir,
				Seed:          seed,
				NoRanking:     noRanking,
			})
			if err != nil {
				log.Error().Err(err).Msg("generation failed")
				return err
			}

			printSummary(os.Stdout, summary)
			return nil
		},
	}

	c.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Base output directory; the config's output folder is created inside it")
	c.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible startlists (default: current time)")
	c.Flags().BoolVar(&noRanking, "no-ranking", false, "Skip the JOA ranking lookup; split distribution becomes random")
	return c
}
