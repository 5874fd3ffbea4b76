package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/asifrahman/gradus/internal/cli/formatter"
	"github.com/asifrahman/gradus/internal/service"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage course enrollments",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var title string
	var retake bool

	cmd := &cobra.Command{
		Use:   "add SEMESTER CODE CREDITS GRADE",
		Short: "Enroll a course in a semester",
		Long: "Enroll a course with its credits and letter grade, e.g.\n" +
			"  gradus course add \"Spring 2025\" CSE110 3 A-\n" +
			"A course already graded in an earlier semester needs --retake\n" +
			"(or an interactive confirmation) before it is recorded again.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			credits, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid credits %q: %w", args[2], err)
			}

			in := service.CourseInput{
				Semester: args[0],
				Code:     args[1],
				Title:    title,
				Credits:  credits,
				Letter:   args[3],
				IsRetake: retake,
			}

			ctx := context.Background()
			e, err := app.Courses.Create(ctx, app.UserID, in)

			var confirm *service.RetakeConfirmationError
			if errors.As(err, &confirm) {
				ok, cerr := confirmRetake(app, confirm.Code)
				if cerr != nil {
					return cerr
				}
				if !ok {
					fmt.Println("Not recorded.")
					return nil
				}
				in.IsRetake = true
				e, err = app.Courses.Create(ctx, app.UserID, in)
			}
			if err != nil {
				return err
			}

			if e.IsRetake {
				fmt.Printf("Recorded %s (%s) as a retake\n", e.Code, e.Letter)
			} else {
				fmt.Printf("Recorded %s (%s)\n", e.Code, e.Letter)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Course title")
	cmd.Flags().BoolVar(&retake, "retake", false, "Confirm this is a retake of an earlier attempt")

	return cmd
}

// confirmRetake asks interactively whether an earlier attempt should be
// superseded. Non-interactive callers must pass --retake instead.
func confirmRetake(app *App, code string) (bool, error) {
	if app.IsInteractive == nil || !app.IsInteractive() {
		return false, fmt.Errorf("%s was attempted in an earlier semester; re-run with --retake to confirm", code)
	}

	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s was attempted in an earlier semester. Record as a retake?", code)).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(gradusHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func newCourseListCmd(app *App) *cobra.Command {
	var semester string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses with retake annotations",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Courses.List(context.Background(), app.UserID, semester)
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				fmt.Println("No courses found.")
				return nil
			}

			title := "Courses"
			if semester != "" {
				title = "Courses in " + semester
			}
			fmt.Printf("%s\n", formatter.FormatCourseList(title, courses))
			return nil
		},
	}

	cmd.Flags().StringVar(&semester, "semester", "", "Limit to one semester (name or ID)")

	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a course enrollment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			courses, err := app.Courses.List(ctx, app.UserID, "")
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(courses))
			for _, c := range courses {
				ids = append(ids, c.Enrollment.ID)
			}
			id, err := resolveID("course", args[0], ids)
			if err != nil {
				return err
			}

			if err := app.Courses.Delete(ctx, app.UserID, id); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}
