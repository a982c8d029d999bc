// numbermaster is a terminal number guessing game.
//
// Usage:
//
//	numbermaster                      - Play (same as "play")
//	numbermaster play                 - Play a round in the terminal
//	numbermaster profiles             - List difficulty profiles
//	numbermaster prefs                - Show saved preferences
//	numbermaster prefs set <k> <v>    - Change a preference
//	numbermaster prefs reset          - Restore default preferences
//
// Global flags:
//
//	--db <path>        - Preferences database (default: ~/.numbermaster/prefs.db)
//	--profiles <path>  - Custom difficulty profiles YAML
//	--seed <value>     - RNG seed for reproducible targets
//	--log-level <lvl>  - debug, info, warn, error
//	--log-file <path>  - Log destination in full-screen mode
//
// Flag defaults come from NUMBERMASTER_* environment variables, which may
// also be set in a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-master/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagProfiles string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	bindGlobalFlags(env)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numbermaster",
	Short: "Number Master - The ultimate number guessing challenge",
	Long: `Number Master picks a secret number and you find it within a limited
number of guesses and a countdown. Every miss tells you how close you are
and which way to go.

Available commands:
  play      - Play (default when no command is given)
  profiles  - Show difficulty profiles
  prefs     - Show or change saved preferences

Examples:
  numbermaster
  numbermaster play --difficulty hard
  numbermaster play --plain
  numbermaster prefs set sound off
  numbermaster profiles --profiles ./configs/profiles.yaml`,
	Run: runPlay,
}

// bindGlobalFlags registers persistent flags with defaults taken from env.
func bindGlobalFlags(env config.Env) {
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", env.DBPath, "Path to preferences database")
	pf.StringVar(&flagProfiles, "profiles", env.ProfilesPath, "Path to custom difficulty profiles YAML")
	pf.StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", env.LogFile, "Log file used while the full-screen UI runs")
}

func init() {
	// The bare command plays too
	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(prefsCmd)
}
