package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/asifrahman/gradus/internal/calendar"
	"github.com/asifrahman/gradus/internal/cli/formatter"
	"github.com/asifrahman/gradus/internal/scheduler"
)

func newPlanCmd(app *App) *cobra.Command {
	var days int
	var icsPath, xlsxPath string
	var links, cached bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a study plan around your free time",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var plan scheduler.Plan
			if cached {
				last, err := app.Planner.LastPlan(ctx, app.UserID)
				if err != nil {
					return err
				}
				if last == nil {
					return fmt.Errorf("no cached plan yet; run gradus plan first")
				}
				plan = *last
			} else {
				built, err := app.Planner.BuildPlan(ctx, app.UserID, time.Now(), days)
				if err != nil {
					return err
				}
				plan = built
			}

			fmt.Printf("%s\n", formatter.FormatPlan(plan))
			if len(plan.Sessions) == 0 {
				return nil
			}

			if icsPath != "" {
				ics := calendar.ToICS(plan.Sessions)
				if err := os.WriteFile(icsPath, []byte(ics), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", icsPath, err)
				}
				fmt.Printf("Wrote %d sessions to %s\n", len(plan.Sessions), icsPath)
			}

			if xlsxPath != "" {
				buf, _, err := calendar.ToXLSX(plan)
				if err != nil {
					return fmt.Errorf("building workbook: %w", err)
				}
				if err := os.WriteFile(xlsxPath, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", xlsxPath, err)
				}
				fmt.Printf("Wrote %d sessions to %s\n", len(plan.Sessions), xlsxPath)
			}

			if links {
				urls := make([]string, 0, len(plan.Sessions))
				for _, s := range plan.Sessions {
					urls = append(urls, calendar.GoogleCalendarURL(s))
				}
				fmt.Printf("%s\n", formatter.FormatSessionLinks(plan.Sessions, urls))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", scheduler.DefaultHorizonDays, "Planning horizon in days")
	cmd.Flags().StringVar(&icsPath, "ics", "", "Export the plan to an iCalendar file")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Export the plan to an Excel workbook")
	cmd.Flags().BoolVar(&links, "links", false, "Print a Google Calendar link per session")
	cmd.Flags().BoolVar(&cached, "cached", false, "Show the last generated plan instead of rebuilding")

	return cmd
}
