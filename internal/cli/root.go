package cli

import (
	"github.com/spf13/cobra"

	"github.com/asifrahman/gradus/internal/assistant"
	"github.com/asifrahman/gradus/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Semesters service.SemesterService
	Courses   service.EnrollmentService
	Compute   service.ComputeService
	Prefs     service.PreferencesService
	Planner   service.PlannerService
	Chat      *assistant.Engine

	// UserID scopes every operation to one student.
	UserID string

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "gradus" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gradus",
		Short: "Semester grade tracker and study planner",
	}

	root.AddCommand(
		newSemesterCmd(app),
		newCourseCmd(app),
		newGPACmd(app),
		newCGPACmd(app),
		newTrendCmd(app),
		newRoutineCmd(app),
		newWindowCmd(app),
		newDifficultyCmd(app),
		newDeadlineCmd(app),
		newPrefsCmd(app),
		newPlanCmd(app),
		newChatCmd(app),
	)

	return root
}
