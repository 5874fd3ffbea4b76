package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asifrahman/gradus/internal/cli/formatter"
)

func newSemesterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semester",
		Short: "Manage semesters",
	}

	cmd.AddCommand(
		newSemesterAddCmd(app),
		newSemesterListCmd(app),
		newSemesterRemoveCmd(app),
	)

	return cmd
}

func newSemesterAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Create a new semester",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			s, err := app.Semesters.Create(context.Background(), app.UserID, name)
			if err != nil {
				return err
			}
			fmt.Printf("Created semester %s\n", s.Name)
			return nil
		},
	}
}

func newSemesterListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List semesters with their GPA",
		RunE: func(cmd *cobra.Command, args []string) error {
			semesters, err := app.Semesters.List(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			if len(semesters) == 0 {
				fmt.Println("No semesters yet. Create one with: gradus semester add \"Spring 2025\"")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatSemesterList(semesters))
			return nil
		},
	}
}

func newSemesterRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a semester and all its courses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if err := app.Semesters.Delete(context.Background(), app.UserID, name); err != nil {
				return err
			}
			fmt.Printf("Deleted semester %s\n", name)
			return nil
		},
	}
}
