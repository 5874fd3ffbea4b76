package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/asifrahman/gradus/internal/cli/formatter"
)

func newRoutineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage the weekly class routine",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add DAY START END COURSE",
			Short: "Add a class to the routine",
			Long:  "Add a class, e.g.\n  gradus routine add mon 10:00 11:20 CSE110",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := app.Prefs.AddRoutineEntry(context.Background(), app.UserID, args[0], args[1], args[2], args[3])
				if err != nil {
					return err
				}
				fmt.Printf("Added %s on %s %s-%s\n", e.Course, e.Day, e.Start, e.End)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Show the class routine",
			RunE: func(cmd *cobra.Command, args []string) error {
				prefs, err := app.Prefs.Get(context.Background(), app.UserID)
				if err != nil {
					return err
				}
				if len(prefs.Routine) == 0 {
					fmt.Println("No routine entries yet.")
					return nil
				}
				fmt.Printf("%s\n", formatter.FormatRoutine(prefs.Routine))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm ID",
			Short: "Remove a routine entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				prefs, err := app.Prefs.Get(ctx, app.UserID)
				if err != nil {
					return err
				}
				ids := make([]string, 0, len(prefs.Routine))
				for _, e := range prefs.Routine {
					ids = append(ids, e.ID)
				}
				id, err := resolveID("routine entry", args[0], ids)
				if err != nil {
					return err
				}
				if err := app.Prefs.RemoveRoutineEntry(ctx, app.UserID, id); err != nil {
					return err
				}
				fmt.Println("Removed.")
				return nil
			},
		},
	)

	return cmd
}

func newWindowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Manage preferred study windows",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add DAYS START END",
			Short: "Add a preferred study window",
			Long:  "Add a window for a day or day range, e.g.\n  gradus window add Mon-Fri 18:00 22:00",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := app.Prefs.AddStudyWindow(context.Background(), app.UserID, args[0], args[1], args[2])
				if err != nil {
					return err
				}
				fmt.Printf("Added window %s %s-%s\n", w.DaySelector, w.Start, w.End)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Show preferred study windows",
			RunE: func(cmd *cobra.Command, args []string) error {
				prefs, err := app.Prefs.Get(context.Background(), app.UserID)
				if err != nil {
					return err
				}
				if len(prefs.StudyWindows) == 0 {
					fmt.Println("No study windows yet.")
					return nil
				}
				fmt.Printf("%s\n", formatter.FormatStudyWindows(prefs.StudyWindows))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm ID",
			Short: "Remove a study window",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				prefs, err := app.Prefs.Get(ctx, app.UserID)
				if err != nil {
					return err
				}
				ids := make([]string, 0, len(prefs.StudyWindows))
				for _, w := range prefs.StudyWindows {
					ids = append(ids, w.ID)
				}
				id, err := resolveID("study window", args[0], ids)
				if err != nil {
					return err
				}
				if err := app.Prefs.RemoveStudyWindow(ctx, app.UserID, id); err != nil {
					return err
				}
				fmt.Println("Removed.")
				return nil
			},
		},
	)

	return cmd
}

func newDifficultyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "difficulty",
		Short: "Rate course difficulty for the planner",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set COURSE TIER",
			Short: "Set a course's difficulty (easy, medium, hard)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Prefs.SetDifficulty(context.Background(), app.UserID, args[0], args[1]); err != nil {
					return err
				}
				fmt.Printf("Set %s difficulty to %s\n", args[0], args[1])
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Show course difficulty ratings",
			RunE: func(cmd *cobra.Command, args []string) error {
				prefs, err := app.Prefs.Get(context.Background(), app.UserID)
				if err != nil {
					return err
				}
				if len(prefs.Difficulty) == 0 {
					fmt.Println("No difficulty ratings yet.")
					return nil
				}
				fmt.Printf("%s\n", formatter.FormatDifficulty(prefs.Difficulty))
				return nil
			},
		},
	)

	return cmd
}

// deadlineTimeLayouts are accepted forms for the DUE argument, tried in
// order. Times without a zone are taken as local time.
var deadlineTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDeadlineTime(s string) (time.Time, error) {
	for _, layout := range deadlineTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid due time %q (want e.g. 2025-06-12T10:00)", s)
}

func newDeadlineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadline",
		Short: "Manage upcoming deadlines",
	}

	var title string
	add := &cobra.Command{
		Use:   "add KIND COURSE DUE",
		Short: "Add a deadline (assignment, quiz, viva, exam)",
		Long:  "Add a deadline, e.g.\n  gradus deadline add quiz CSE110 2025-06-12T10:00",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueAt, err := parseDeadlineTime(args[2])
			if err != nil {
				return err
			}
			d, err := app.Prefs.AddDeadline(context.Background(), app.UserID, args[0], args[1], title, dueAt)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s for %s due %s\n", d.Kind, d.Course, d.DueAt.Format("Mon Jan 2 15:04"))
			return nil
		},
	}
	add.Flags().StringVar(&title, "title", "", "Deadline title")

	cmd.AddCommand(
		add,
		&cobra.Command{
			Use:   "list",
			Short: "List deadlines",
			RunE: func(cmd *cobra.Command, args []string) error {
				deadlines, err := app.Prefs.ListDeadlines(context.Background(), app.UserID)
				if err != nil {
					return err
				}
				if len(deadlines) == 0 {
					fmt.Println("No deadlines recorded.")
					return nil
				}
				fmt.Printf("%s\n", formatter.FormatDeadlines(deadlines))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm ID",
			Short: "Remove a deadline",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				deadlines, err := app.Prefs.ListDeadlines(ctx, app.UserID)
				if err != nil {
					return err
				}
				ids := make([]string, 0, len(deadlines))
				for _, d := range deadlines {
					ids = append(ids, d.ID)
				}
				id, err := resolveID("deadline", args[0], ids)
				if err != nil {
					return err
				}
				if err := app.Prefs.RemoveDeadline(ctx, app.UserID, id); err != nil {
					return err
				}
				fmt.Println("Removed.")
				return nil
			},
		},
	)

	return cmd
}

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show and tune planner preferences",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show planner preferences",
			RunE: func(cmd *cobra.Command, args []string) error {
				prefs, err := app.Prefs.Get(context.Background(), app.UserID)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatPreferences(prefs))
				return nil
			},
		},
		&cobra.Command{
			Use:   "tz ZONE",
			Short: "Set the timezone used for plan display",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Prefs.SetTimezone(context.Background(), app.UserID, args[0]); err != nil {
					return err
				}
				fmt.Printf("Timezone set to %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "hours HOURS",
			Short: "Set the max study hours per day",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				hours, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("invalid hours %q: %w", args[0], err)
				}
				if err := app.Prefs.SetMaxDailyHours(context.Background(), app.UserID, hours); err != nil {
					return err
				}
				fmt.Printf("Max daily study hours set to %.1f\n", hours)
				return nil
			},
		},
	)

	return cmd
}
