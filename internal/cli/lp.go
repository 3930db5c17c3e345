package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var lpCmd = &cobra.Command{
	Use:   "lp",
	Short: "Manage launch points",
	Long: `Manage launch points, the icon+label tags describing how an
activity began.

Examples:
  timeline lp ls
  timeline lp add 🧭 "Deep work"
  timeline lp rm 3`,
	RunE: runLpList,
}

var lpLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List launch points",
	RunE:    runLpList,
}

var lpAddCmd = &cobra.Command{
	Use:   "add [icon] [label]",
	Short: "Add a launch point",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runLpAdd,
}

var lpRmCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"delete"},
	Short:   "Delete a launch point",
	Args:    cobra.ExactArgs(1),
	RunE:    runLpRm,
}

func init() {
	lpCmd.AddCommand(lpLsCmd)
	lpCmd.AddCommand(lpAddCmd)
	lpCmd.AddCommand(lpRmCmd)
}

func runLpList(cmd *cobra.Command, args []string) error {
	trk, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Println()
	for _, lp := range trk.LaunchPoints() {
		fmt.Printf("  %-15d %s  %s\n", lp.ID, lp.Icon, lp.Label)
	}
	fmt.Println()
	return nil
}

func runLpAdd(cmd *cobra.Command, args []string) error {
	trk, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	icon := args[0]
	label := args[1]
	for _, arg := range args[2:] {
		label += " " + arg
	}

	lp, err := trk.CreateLaunchPoint(icon, label)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Added launch point %s %s (id %d)\n", lp.Icon, lp.Label, lp.ID)
	return nil
}

func runLpRm(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid launch point id: %s", args[0])
	}

	trk, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	if appCfg.ConfirmDelete {
		if !confirm(fmt.Sprintf("About to delete launch point %d. Are you sure?", id)) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := trk.DeleteLaunchPoint(id); err != nil {
		return err
	}

	fmt.Printf("🗑️  Deleted launch point %d\n", id)
	return nil
}
