package workday

import (
	"time"

	"github.com/clovisdasilvaneto/clockin/internal/clockin"
)

const dateLayout = "2006-01-02"

// Aggregate folds a date-ascending, time-ascending punch sequence into one
// WorkDay per distinct calendar date, in first-occurrence order. The input
// must already be sorted; the algorithm does not sort and unordered input
// produces incorrect grouping rather than an error.
func Aggregate(rows []clockin.Clockin) []WorkDay {
	workdays := make([]WorkDay, 0)
	var current *WorkDay

	for _, row := range rows {
		date := row.Date.Format(dateLayout)

		if current == nil || current.Date != date {
			workdays = append(workdays, WorkDay{
				Date:          date,
				ClockinValues: []string{},
			})
			current = &workdays[len(workdays)-1]
		}

		current.ClockinValues = append(current.ClockinValues, row.DateTime.Format(time.RFC3339))
	}

	return workdays
}

// AggregateForEmployee applies the same cursor walk restricted to one
// employee: a new WorkDay opens only when the date boundary holds AND the
// row belongs to the target employee, and a value is appended only when
// the row belongs, without re-checking the boundary at append time.
//
// Rows of other employees never open, close, or advance the cursor. The
// exact boundary/membership rule is pinned by a regression test; do not
// rewrite it as filter-then-group without product sign-off.
func AggregateForEmployee(rows []clockin.Clockin, emp EmployeeSummary) []WorkDay {
	workdays := make([]WorkDay, 0)
	var current *WorkDay

	for _, row := range rows {
		date := row.Date.Format(dateLayout)
		belongs := row.EmployeeID.String() == emp.ID

		if (current == nil || current.Date != date) && belongs {
			e := emp
			workdays = append(workdays, WorkDay{
				Date:          date,
				Employee:      &e,
				ClockinValues: []string{},
			})
			current = &workdays[len(workdays)-1]
		}

		if belongs {
			current.ClockinValues = append(current.ClockinValues, row.DateTime.Format(time.RFC3339))
		}
	}

	return workdays
}
