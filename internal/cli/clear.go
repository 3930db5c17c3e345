package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all activities and launch points",
	Long: `Clear all activities and reset launch points to the defaults.

Exported files are unaffected.`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().Bool("force", false, "Do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	if !force && !confirm("Are you sure you want to clear all timeline data?") {
		fmt.Println("Aborted.")
		return nil
	}

	trk, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Println("🧹 Clearing timeline data...")
	if err := trk.Clear(); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	fmt.Println("Timeline data cleared.")

	return nil
}
