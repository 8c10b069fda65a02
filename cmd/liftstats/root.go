package main

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "liftstats",
	Short: "Workout log analytics from the command line",
	Long: `Liftstats reads a workout log CSV export and computes training
analytics from it: 1RM estimates, progression timelines, training age,
trends, personal records and muscle group volume.

QUICK START:

  $ liftstats report --csv data/workouts.csv
  $ liftstats report --csv data/workouts.csv --months 3
  $ liftstats report --csv data/workouts.csv --exercise "Bench Press (Barbell)"

Everything runs locally on the CSV file, no server or network needed.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// optional .env, mainly for local overrides of data paths
		if err := godotenv.Load(); err != nil {
			log.Tracef("no .env file loaded: %s", err)
		}
	},
}
