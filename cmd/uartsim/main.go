// The uartsim command simulates asynchronous serial links at the tick
// level.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "uartsim",
	Short: "uartsim simulates asynchronous serial links at the tick " +
		"level.",
	Long: `uartsim simulates asynchronous serial links at the tick level. ` +
		`It models UART transceivers as tick-driven state machines wired ` +
		`together by signal nets, records line transitions and frames ` +
		`into SQLite databases, and can expose a running simulation ` +
		`through a monitoring server.`,
	PersistentPreRun: func(*cobra.Command, []string) {
		// A .env file can carry defaults such as UARTSIM_BAUD.
		_ = godotenv.Load()
	},
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
