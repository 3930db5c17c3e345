package cli

import (
	"fmt"
	"time"

	"github.com/existflow/timeline/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new activity",
	Long: `Log a new activity on the timeline.

At least two of --start, --end and --duration are required; the third is
derived from the other two.

Examples:
  timeline add --start 09:00 --duration 30 --comment "standup"
  timeline add --start 09:00 --end 10:30 --launch-point 4
  timeline add --end 17:00 --duration 90 --date 2024-01-01 --color "#FF6B6B"`,
	RunE: runAdd,
}

var (
	addDate        string
	addStart       string
	addEnd         string
	addDuration    int
	addColor       string
	addComment     string
	addLaunchPoint int64
)

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "D", "", "Calendar date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVarP(&addStart, "start", "s", "", "Start time (HH:MM)")
	addCmd.Flags().StringVarP(&addEnd, "end", "e", "", "End time (HH:MM)")
	addCmd.Flags().IntVarP(&addDuration, "duration", "d", 0, "Duration in minutes")
	addCmd.Flags().StringVar(&addColor, "color", "", "Display color (default from config)")
	addCmd.Flags().StringVarP(&addComment, "comment", "c", "", "Free-text comment")
	addCmd.Flags().Int64VarP(&addLaunchPoint, "launch-point", "l", 0, "Launch point id")
}

func runAdd(cmd *cobra.Command, args []string) error {
	trk, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	date := addDate
	if date == "" {
		date = time.Now().Format(model.DateLayout)
	}

	color := addColor
	if color == "" {
		color = appCfg.DefaultColor
	}

	draft := model.Draft{
		StartClock: addStart,
		EndClock:   addEnd,
		Date:       date,
		Color:      color,
		Comment:    addComment,
	}
	if cmd.Flags().Changed("duration") {
		d := addDuration
		draft.Duration = &d
	}
	if cmd.Flags().Changed("launch-point") {
		for _, lp := range trk.LaunchPoints() {
			if lp.ID == addLaunchPoint {
				point := lp
				draft.LaunchPoint = &point
				break
			}
		}
		if draft.LaunchPoint == nil {
			return fmt.Errorf("launch point not found: %d", addLaunchPoint)
		}
	}

	a, err := trk.AddActivity(draft)
	if err != nil {
		return err
	}

	icon := ""
	if a.LaunchPoint != nil {
		icon = a.LaunchPoint.Icon + " "
	}
	fmt.Printf("✓ Logged %s%s (%dmin) on %s", icon, a.ClockRange(), a.Duration, a.Date)
	if a.Comment != "" {
		fmt.Printf(": %q", a.Comment)
	}
	fmt.Println()
	return nil
}
