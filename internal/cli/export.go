package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all timeline data to a JSON file",
	Long: `Export activities and launch points as a JSON document named
timeline-data-YYYY-MM-DD.json.

Examples:
  timeline export
  timeline export --out ~/backups
  timeline export --stdout > snapshot.json
  timeline export --passphrase hunter2`,
	RunE: runExport,
}

var (
	exportOut        string
	exportStdout     bool
	exportPassphrase string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Directory to write the export file into")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write the document to stdout instead of a file")
	exportCmd.Flags().StringVarP(&exportPassphrase, "passphrase", "p", "", "Seal the export with a passphrase")
}

func runExport(cmd *cobra.Command, args []string) error {
	trk, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	name, data, err := trk.ExportData(exportPassphrase)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	if exportStdout {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}

	path := filepath.Join(exportOut, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Printf("✓ Exported %d activities, %d launch points to %s\n",
		len(trk.Activities()), len(trk.LaunchPoints()), path)
	return nil
}
