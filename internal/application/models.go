package application

import (
	"time"

	"github.com/amanpv-mtu/myScheduleApp-sub000/internal/schedule"
)

// GenerateDayParams wraps the inputs for one schedule generation call.
type GenerateDayParams struct {
	Date time.Time
	// TemplateKey, when non-empty, forces the template collection.
	TemplateKey schedule.TemplateKey
	// ConsiderFasting lets a marked fasting date swap in the fasting
	// template.
	ConsiderFasting bool
}

// EditAction names a scripted edit operation.
type EditAction string

const (
	EditActionModify EditAction = "modify"
	EditActionShift  EditAction = "shift"
	EditActionAdd    EditAction = "add"
	EditActionDelete EditAction = "delete"
)

// EditCommand is the structured form of a schedule edit. It arrives from an
// external interpretation step, so every field is re-validated before use.
type EditCommand struct {
	Action     EditAction
	TargetDate string // "YYYY-MM-DD"

	// ActivityName selects the target by case-insensitive substring for
	// modify and delete, and names the new block for add.
	ActivityName string

	// NewStart and NewEnd are "HH:MM" clock strings; for modify either
	// may be empty to keep the current value.
	NewStart string
	NewEnd   string

	// DurationDeltaMinutes extends (or shrinks) the target's end when no
	// explicit times are given.
	DurationDeltaMinutes int

	// ShiftMinutes moves the selected blocks forward (positive) or back.
	ShiftMinutes int

	// CategoryFilter narrows a shift to one category. Empty means all.
	CategoryFilter schedule.Category

	// Category and Constraint apply to add; defaults are personal and
	// adjustable.
	Category   schedule.Category
	Constraint schedule.Constraint
}

// EditResult reports a successfully applied edit.
type EditResult struct {
	// Schedule is the day's list after the edit, already persisted.
	Schedule []schedule.Activity
	// Message is a human-readable summary of what changed.
	Message string
}

// LogEntry records the actual time spent on a scheduled block.
type LogEntry struct {
	ID              string
	DateKey         string
	ActivityID      string
	ActualStart     int // minute of day
	ActualEnd       int // minute of day; before ActualStart spans midnight
	LinkedTaskID    *string
	LinkedSubtaskID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Quadrant is an Eisenhower matrix cell.
type Quadrant string

const (
	// QuadrantDoFirst holds urgent and important tasks.
	QuadrantDoFirst Quadrant = "do_first"
	// QuadrantSchedule holds important but not urgent tasks.
	QuadrantSchedule Quadrant = "schedule"
	// QuadrantDelegate holds urgent but not important tasks.
	QuadrantDelegate Quadrant = "delegate"
	// QuadrantEliminate holds tasks that are neither.
	QuadrantEliminate Quadrant = "eliminate"
)

// Subtask is a single step within a task.
type Subtask struct {
	ID    string
	Title string
	Done  bool
}

// Task is a tracked piece of work classified on the Eisenhower matrix.
type Task struct {
	ID        string
	Title     string
	Notes     string
	Urgent    bool
	Important bool
	Done      bool
	Subtasks  []Subtask
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Quadrant classifies the task by its urgency and importance flags.
func (t Task) Quadrant() Quadrant {
	switch {
	case t.Urgent && t.Important:
		return QuadrantDoFirst
	case t.Important:
		return QuadrantSchedule
	case t.Urgent:
		return QuadrantDelegate
	default:
		return QuadrantEliminate
	}
}

// Progress returns the completed fraction of the task's subtasks in [0, 1].
// A task without subtasks reports 1 when done and 0 otherwise.
func (t Task) Progress() float64 {
	if len(t.Subtasks) == 0 {
		if t.Done {
			return 1
		}
		return 0
	}
	done := 0
	for _, st := range t.Subtasks {
		if st.Done {
			done++
		}
	}
	return float64(done) / float64(len(t.Subtasks))
}

// TaskInput captures caller provided task fields.
type TaskInput struct {
	Title     string
	Notes     string
	Urgent    bool
	Important bool
}

// TemplateActivityInput captures caller provided template activity fields
// with clock strings still unparsed.
type TemplateActivityInput struct {
	Name       string
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Category   schedule.Category
	Constraint schedule.Constraint
	Recurrence schedule.Recurrence
}

// CategoryReport aggregates logged time for one category.
type CategoryReport struct {
	Category      schedule.Category
	LoggedMinutes int
	LoggedHours   float64
	Entries       int
}

// DayReport aggregates logged time for one date.
type DayReport struct {
	DateKey       string
	LoggedMinutes int
	Entries       int
}

// ReportSummary is the aggregation returned for a date range.
type ReportSummary struct {
	FromKey    string
	ToKey      string
	Categories []CategoryReport
	Days       []DayReport
}
