package cli

import (
	"fmt"
	"os"

	"github.com/existflow/timeline/internal/snapshot"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import timeline data from an export file",
	Long: `Import a previously exported JSON document, replacing all current
activities and launch points. The current state is left untouched when the
document cannot be parsed.

Examples:
  timeline import timeline-data-2024-01-01.json
  timeline import --passphrase hunter2 timeline-data-2024-01-01.json.enc`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importPassphrase string

func init() {
	importCmd.Flags().StringVarP(&importPassphrase, "passphrase", "p", "", "Passphrase for sealed exports")
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	trk, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	if snapshot.IsSealed(data) && importPassphrase == "" {
		return fmt.Errorf("this export is sealed; pass --passphrase to import it")
	}

	if appCfg.ConfirmDelete {
		prompt := fmt.Sprintf("Importing replaces %d activities and %d launch points. Continue?",
			len(trk.Activities()), len(trk.LaunchPoints()))
		if !confirm(prompt) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := trk.Import(data, importPassphrase); err != nil {
		return err
	}

	fmt.Printf("✓ Imported %d activities, %d launch points\n",
		len(trk.Activities()), len(trk.LaunchPoints()))
	return nil
}
