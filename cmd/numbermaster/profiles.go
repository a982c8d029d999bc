package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-master/internal/config"
	"github.com/vovakirdan/number-master/internal/core"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List difficulty profiles",
	Long: `Shows the range, guess budget and time limit of every difficulty.

Profiles are read from --profiles, then ~/.numbermaster/profiles.yaml, then
./configs/profiles.yaml, falling back to the built-in table.`,
	Args: cobra.NoArgs,
	Run:  runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) {
	profiles, err := config.LoadProfiles(flagProfiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profiles: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty profiles:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-10s  %-10s  %-7s  %s\n", "Difficulty", "Range", "Guesses", "Time")
	fmt.Printf("  %-10s  %-10s  %-7s  %s\n", "----------", "-----", "-------", "----")

	for _, d := range config.Difficulties {
		p := profiles.Get(d)
		fmt.Printf("  %-10s  %-10s  %-7d  %s\n",
			d, fmt.Sprintf("%d-%d", p.Min, p.Max), p.MaxGuesses, core.FormatClock(p.TimeLimitSeconds))
	}

	fmt.Println()
	fmt.Println("Run 'numbermaster play --difficulty <name>' to play one.")
}
