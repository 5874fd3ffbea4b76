package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asifrahman/gradus/internal/cli/formatter"
)

func newGPACmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "gpa SEMESTER",
		Short: "Show the GPA of one semester",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gpa, err := app.Compute.SemesterGPA(context.Background(), app.UserID, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s GPA: %s\n", args[0], formatter.GPAValue(gpa))
			return nil
		},
	}
}

func newCGPACmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cgpa",
		Short: "Show the cumulative retake-aware CGPA",
		RunE: func(cmd *cobra.Command, args []string) error {
			cgpa, err := app.Compute.CGPA(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Printf("CGPA: %s\n", formatter.GPAValue(cgpa))
			return nil
		},
	}
}

func newTrendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Show GPA and running CGPA per semester",
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := app.Compute.Trend(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			if len(points) == 0 {
				fmt.Println("No semesters yet.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatTrend(points))
			return nil
		},
	}
}
