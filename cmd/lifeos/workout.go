// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Supports log, list, delete, and summary subcommands backed by the tool registry.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/tools"
	"github.com/spf13/cobra"
)

var (
	workoutDate     string
	workoutSession  string
	workoutDuration int
	workoutSets     int
	workoutReps     int
	workoutWeight   float64
	workoutDistance float64
	workoutFrom     string
	workoutTo       string
	workoutJSON     bool
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Track workout sessions and the exercises inside them.

A session is identified by its date and name. Logging an exercise with a
date and session name that already exist adds it to that session; otherwise
a new session is created. The session name defaults to "Daily Workout".

WORKFLOW:

  1. Log exercises:     lifeos workout log "Bench Press" Strength --sets 3 --reps 8 --weight 80
  2. Review sessions:   lifeos workout list
  3. Check totals:      lifeos workout summary

COMMANDS:

  log       Log an exercise into a session
  list      List sessions with their exercises
  delete    Delete a single exercise by its full ID
  summary   Total duration and distance`,
}

var workoutLogCmd = &cobra.Command{
	Use:     "log <exercise> <category>",
	Aliases: []string{"add"},
	Short:   "Log an exercise",
	Long: `Log an exercise. The date defaults to today. Metrics are optional;
only the ones you pass are recorded.

Examples:
  lifeos workout log Running Cardio --distance 5 --duration 30 --session "Morning Run"
  lifeos workout log Squat Strength --sets 5 --reps 5 --weight 100 --session "Leg Day"
  lifeos workout log Yoga Mobility --duration 45 --date 2024-06-01`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := tools.LogExerciseArgs{
			ExerciseName: args[0],
			Category:     args[1],
			WorkoutDate:  defaultDate(workoutDate),
			SessionName:  &workoutSession,
		}

		flags := cmd.Flags()
		if flags.Changed("duration") {
			in.DurationMinutes = &workoutDuration
		}
		if flags.Changed("sets") {
			in.Sets = &workoutSets
		}
		if flags.Changed("reps") {
			in.Reps = &workoutReps
		}
		if flags.Changed("weight") {
			in.WeightKg = &workoutWeight
		}
		if flags.Changed("distance") {
			in.DistanceKm = &workoutDistance
		}

		res, err := callTool(cmd, tools.ToolLogExercise, in)
		if err != nil {
			return err
		}

		success(cmd, "%s", res.Text())
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workout sessions",
	Long: `List workout sessions in a date range with their exercises.

Sessions whose exercises were all deleted are still shown, with no exercises.

EXAMPLES:

  lifeos workout list                              # This month
  lifeos workout list --from 2024-06-01 --to 2024-06-30
  lifeos workout list --json                       # Raw tool output`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := monthRange(workoutFrom, workoutTo)
		res, err := callTool(cmd, tools.ToolGetWorkouts, tools.RangeArgs{StartDate: from, EndDate: to})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if workoutJSON {
			fmt.Fprintln(out, res.Text())
			return nil
		}

		var sessions []tools.SessionRecord
		if err := decodeValue(res, &sessions); err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		bold := color.New(color.Bold)
		for _, s := range sessions {
			fmt.Fprintf(out, "%s %s %s\n", s.Date, bold.Sprint(s.SessionName), faint.Sprint(s.SessionID))
			if len(s.Exercises) == 0 {
				fmt.Fprintln(out, faint.Sprint("  (no exercises)"))
				continue
			}
			for _, ex := range s.Exercises {
				fmt.Fprintf(out, "  %s %s %s %s\n",
					faint.Sprint(ex.ExerciseID),
					padRight(ex.Name, 16),
					padRight(ex.Category, 10),
					describeExercise(ex))
			}
		}

		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <exercise-id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an exercise",
	Long: `Delete a single exercise by its full UUID, as shown by 'lifeos workout list'.

The session it belonged to is kept, even if it has no exercises left.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := callTool(cmd, tools.ToolDeleteExercise, tools.DeleteExerciseArgs{ExerciseID: args[0]})
		if err != nil {
			return err
		}

		removed(cmd, "%s", res.Text())
		return nil
	},
}

var workoutSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Total duration and distance",
	Long: `Show total exercise duration and distance in a date range.

EXAMPLES:

  lifeos workout summary                           # This month
  lifeos workout summary --from 2024-06-01 --to 2024-06-07`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := monthRange(workoutFrom, workoutTo)
		res, err := callTool(cmd, tools.ToolWorkoutSummary, tools.RangeArgs{StartDate: from, EndDate: to})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if workoutJSON {
			fmt.Fprintln(out, res.Text())
			return nil
		}

		var summary tools.WorkoutSummary
		if err := decodeValue(res, &summary); err != nil {
			return err
		}

		fmt.Fprintf(out, "Workouts %s to %s\n", from, to)
		fmt.Fprintf(out, "  Duration  %g min\n", summary.TotalDurationMinutes)
		fmt.Fprintf(out, "  Distance  %.2f km\n", summary.TotalDistanceKm)

		return nil
	},
}

// describeExercise renders the metrics that were recorded for ex.
func describeExercise(ex tools.ExerciseRecord) string {
	var parts []string
	if ex.Duration != nil {
		parts = append(parts, fmt.Sprintf("%d min", *ex.Duration))
	}
	switch {
	case ex.Sets != nil && ex.Reps != nil:
		parts = append(parts, fmt.Sprintf("%dx%d", *ex.Sets, *ex.Reps))
	case ex.Sets != nil:
		parts = append(parts, fmt.Sprintf("%d sets", *ex.Sets))
	case ex.Reps != nil:
		parts = append(parts, fmt.Sprintf("%d reps", *ex.Reps))
	}
	if ex.WeightKg != nil {
		parts = append(parts, fmt.Sprintf("%.1f kg", *ex.WeightKg))
	}
	if ex.DistanceKm != nil {
		parts = append(parts, fmt.Sprintf("%.2f km", *ex.DistanceKm))
	}
	return strings.Join(parts, ", ")
}

func init() {
	workoutLogCmd.Flags().StringVar(&workoutDate, "date", "", "workout date YYYY-MM-DD (default: today)")
	workoutLogCmd.Flags().StringVarP(&workoutSession, "session", "s", "", `session name (default "Daily Workout")`)
	workoutLogCmd.Flags().IntVar(&workoutDuration, "duration", 0, "duration in minutes")
	workoutLogCmd.Flags().IntVar(&workoutSets, "sets", 0, "number of sets")
	workoutLogCmd.Flags().IntVar(&workoutReps, "reps", 0, "repetitions per set")
	workoutLogCmd.Flags().Float64Var(&workoutWeight, "weight", 0, "load in kilograms")
	workoutLogCmd.Flags().Float64Var(&workoutDistance, "distance", 0, "distance in kilometres")

	for _, c := range []*cobra.Command{workoutListCmd, workoutSummaryCmd} {
		c.Flags().StringVar(&workoutFrom, "from", "", "start date YYYY-MM-DD (default: first of this month)")
		c.Flags().StringVar(&workoutTo, "to", "", "end date YYYY-MM-DD (default: today)")
		c.Flags().BoolVar(&workoutJSON, "json", false, "print the raw tool result as JSON")
	}

	workoutCmd.AddCommand(workoutLogCmd, workoutListCmd, workoutDeleteCmd, workoutSummaryCmd)
	rootCmd.AddCommand(workoutCmd)
}
