// Package printers renders planner output for the terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/application"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/timeutil"
)

// PrettyPrint writes colored tables to Out.
type PrettyPrint struct {
	Out io.Writer
}

// New returns a printer targeting the color-aware stdout.
func New() *PrettyPrint {
	return &PrettyPrint{Out: color.Output}
}

func (pp *PrettyPrint) title(text string) {
	t := color.New(color.Bold, color.Underline)
	fmt.Fprintln(pp.Out, t.Sprint(text))
}

// Day renders a date's schedule as a time-ordered table.
func (pp *PrettyPrint) Day(dateKey string, activities []schedule.Activity) {
	pp.title("Schedule for " + dateKey)
	if len(activities) == 0 {
		faint := color.New(color.Faint, color.Italic)
		fmt.Fprintln(pp.Out, faint.Sprint(" none"))
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("TIME", "ACTIVITY", "CATEGORY", "CONSTRAINT")
	for _, a := range activities {
		span := fmt.Sprintf("%s-%s", timeutil.ToTimeString(a.Start), timeutil.ToTimeString(a.End))
		tbl.AddRow(span, a.Name, string(a.Category), constraintLabel(a.Constraint))
	}
	fmt.Fprintln(pp.Out, tbl)
}

// Report renders the logged-time summary grouped by category and by day.
func (pp *PrettyPrint) Report(summary application.ReportSummary) {
	pp.title(fmt.Sprintf("Logged time %s to %s", summary.FromKey, summary.ToKey))
	if len(summary.Categories) == 0 {
		faint := color.New(color.Faint, color.Italic)
		fmt.Fprintln(pp.Out, faint.Sprint(" nothing logged"))
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("CATEGORY", "HOURS", "ENTRIES")
	for _, cat := range summary.Categories {
		tbl.AddRow(string(cat.Category), fmt.Sprintf("%.2f", cat.LoggedHours), fmt.Sprintf("%d", cat.Entries))
	}
	fmt.Fprintln(pp.Out, tbl)

	days := uitable.New()
	days.Separator = "  "
	days.AddRow("DATE", "MINUTES", "ENTRIES")
	for _, day := range summary.Days {
		days.AddRow(day.DateKey, fmt.Sprintf("%d", day.LoggedMinutes), fmt.Sprintf("%d", day.Entries))
	}
	fmt.Fprintln(pp.Out, days)
}

// Matrix renders the Eisenhower quadrants with their tasks.
func (pp *PrettyPrint) Matrix(matrix application.Matrix) {
	quadrants := []struct {
		key   application.Quadrant
		label string
	}{
		{application.QuadrantDoFirst, "Do first"},
		{application.QuadrantSchedule, "Schedule"},
		{application.QuadrantDelegate, "Delegate"},
		{application.QuadrantEliminate, "Eliminate"},
	}

	faint := color.New(color.Faint, color.Italic)
	for _, q := range quadrants {
		pp.title(q.label)
		tasks := matrix[q.key]
		if len(tasks) == 0 {
			fmt.Fprintln(pp.Out, faint.Sprint(" none"))
			continue
		}
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, task := range tasks {
			tbl.AddRow(taskMark(task), task.Title, progressLabel(task))
		}
		fmt.Fprintln(pp.Out, tbl)
	}
}

// Tasks renders one task with its subtasks.
func (pp *PrettyPrint) Task(task application.Task) {
	pp.title(task.Title)
	if task.Notes != "" {
		fmt.Fprintln(pp.Out, task.Notes)
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, st := range task.Subtasks {
		mark := " "
		if st.Done {
			mark = "x"
		}
		tbl.AddRow(fmt.Sprintf("[%s]", mark), st.Title)
	}
	fmt.Fprintln(pp.Out, tbl)
}

// Message prints a one-line confirmation.
func (pp *PrettyPrint) Message(text string) {
	fmt.Fprintln(pp.Out, text)
}

func constraintLabel(constraint schedule.Constraint) string {
	label := string(constraint)
	if constraint == schedule.ConstraintHard {
		return color.New(color.FgHiRed).Sprint(label)
	}
	return label
}

func taskMark(task application.Task) string {
	if task.Done {
		return color.New(color.Faint).Sprint("[x]")
	}
	return "[ ]"
}

func progressLabel(task application.Task) string {
	if len(task.Subtasks) == 0 {
		return ""
	}
	done := 0
	for _, st := range task.Subtasks {
		if st.Done {
			done++
		}
	}
	bar := strings.Repeat("#", done) + strings.Repeat("-", len(task.Subtasks)-done)
	return fmt.Sprintf("%s %d/%d", bar, done, len(task.Subtasks))
}
