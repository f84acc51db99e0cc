package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/limaJavier/sqsgen/internal/config"
	"github.com/limaJavier/sqsgen/internal/sqs"
)

func newComputeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compute <settings-file>",
		Short: "Print derived quantities of a settings file without searching",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			settings, err := config.SettingsFromYaml(args[0])
			if err != nil {
				return err
			}
			iterationSettings, _, err := settings.IterationSettings()
			if err != nil {
				return err
			}
			if err := iterationSettings.Validate(); err != nil {
				return err
			}

			packIndices, packed := sqs.Pack(iterationSettings.Configuration)
			histogram := sqs.Histogram(packed, len(packIndices))
			total := sqs.TotalPermutations(histogram)
			rank := sqs.Rank(packed, len(packIndices))
			rank.Add(rank, big.NewInt(1))

			fmt.Printf("sites: %d\n", len(packed))
			fmt.Printf("species: %d\n", len(packIndices))
			fmt.Printf("histogram: %v\n", histogram)
			fmt.Printf("total permutations: %v\n", total)
			fmt.Printf("input configuration rank: %v\n", rank)
			fmt.Printf("pairs: %d\n", len(iterationSettings.PairList))
			return nil
		},
	}
}
