package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-master/internal/config"
	"github.com/vovakirdan/number-master/internal/prefs"
	"github.com/vovakirdan/number-master/internal/storage"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show saved preferences",
	Long: `Display the preferences stored in the database.

Examples:
  numbermaster prefs
  numbermaster prefs set difficulty hard
  numbermaster prefs set sound off
  numbermaster prefs reset`,
	Args: cobra.NoArgs,
	Run:  runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:       "set <difficulty|sound|dark> <value>",
	Short:     "Change one preference",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"difficulty", "sound", "dark"},
	Run:       runPrefsSet,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences",
	Args:  cobra.NoArgs,
	Run:   runPrefsReset,
}

func init() {
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsResetCmd)
}

// openPrefsStore opens the database or exits. Unlike play, editing
// preferences without persistence is pointless.
func openPrefsStore() (*prefs.Store, *storage.Store) {
	db, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preferences database: %v\n", err)
		os.Exit(1)
	}
	return prefs.NewStore(db), db
}

func runPrefsShow(cmd *cobra.Command, args []string) {
	store, db := openPrefsStore()
	defer db.Close()

	settings, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (showing defaults)\n", err)
	}
	printSettings(settings)

	updated, ok, err := lastUpdated(db)
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	case ok:
		fmt.Printf("  %-10s  %s\n", "updated", updated.Local().Format("2006-01-02 15:04"))
	default:
		fmt.Printf("  %-10s  %s\n", "updated", "never (defaults)")
	}
}

// lastUpdated reports when the preferences record was last written.
func lastUpdated(db *storage.Store) (time.Time, bool, error) {
	entries, err := db.Entries()
	if err != nil {
		return time.Time{}, false, err
	}
	for _, e := range entries {
		if e.Key == prefs.Key {
			return e.UpdatedAt, true, nil
		}
	}
	return time.Time{}, false, nil
}

func runPrefsSet(cmd *cobra.Command, args []string) {
	store, db := openPrefsStore()

	settings, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (starting from defaults)\n", err)
	}

	settings, err = settings.Set(args[0], args[1])
	if err != nil {
		db.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := store.Save(settings); err != nil {
		db.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	printSettings(settings)
}

func runPrefsReset(cmd *cobra.Command, args []string) {
	store, db := openPrefsStore()

	if err := store.Reset(); err != nil {
		db.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	fmt.Println("Preferences reset to defaults.")
	fmt.Println()
	printSettings(prefs.Default())
}

func printSettings(s prefs.Settings) {
	profiles, err := config.LoadProfiles(flagProfiles)
	if err != nil {
		profiles = config.DefaultProfiles()
	}

	fmt.Printf("  %-10s  %s\n", "difficulty", profiles.Get(s.Difficulty).Describe(s.Difficulty))
	fmt.Printf("  %-10s  %s\n", "sound", prefs.OnOff(s.SoundEnabled))
	fmt.Printf("  %-10s  %s\n", "dark", prefs.OnOff(s.DarkMode))
}
