package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/existflow/timeline/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List activities",
	Long: `List activities for one or more days, most recent day last.

Examples:
  timeline list
  timeline list --date 2024-01-01
  timeline list --days 3`,
	RunE: runList,
}

var (
	listDate string
	listDays int
)

func init() {
	listCmd.Flags().StringVarP(&listDate, "date", "D", "", "Calendar date (YYYY-MM-DD, default today)")
	listCmd.Flags().IntVarP(&listDays, "days", "n", 1, "Number of days to show, ending on --date")
}

func runList(cmd *cobra.Command, args []string) error {
	trk, st, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	last := time.Now()
	if listDate != "" {
		if last, err = time.ParseInLocation(model.DateLayout, listDate, time.Local); err != nil {
			return fmt.Errorf("invalid date: %s", listDate)
		}
	}

	days := listDays
	if days < 1 {
		days = 1
	}

	empty := true
	for offset := days - 1; offset >= 0; offset-- {
		date := last.AddDate(0, 0, -offset).Format(model.DateLayout)
		activities := trk.ActivitiesOn(date)
		if len(activities) == 0 {
			continue
		}
		empty = false

		fmt.Printf("\n📅 %s (%d activities)\n", date, len(activities))
		fmt.Println(strings.Repeat("─", 60))
		for _, a := range activities {
			printActivity(a)
		}
	}

	if empty {
		fmt.Println("No activities found. Log one with: timeline add --start 09:00 --duration 30")
		return nil
	}
	fmt.Println()
	return nil
}

func printActivity(a model.Activity) {
	icon := "  "
	if a.LaunchPoint != nil {
		icon = a.LaunchPoint.Icon
	}

	comment := a.Comment
	if len(comment) > 40 {
		comment = comment[:37] + "..."
	}

	fmt.Printf("  %s  %-13s  %4dmin  %s\n", icon, a.ClockRange(), a.Duration, comment)
}
