package workday

import (
	"testing"
	"time"

	"github.com/clovisdasilvaneto/clockin/internal/clockin"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func punch(employeeID uuid.UUID, value string) clockin.Clockin {
	dt, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return clockin.Clockin{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		DateTime:   dt,
		Date:       dt.UTC().Truncate(24 * time.Hour),
	}
}

func TestAggregate_GroupsByCalendarDate(t *testing.T) {
	emp := uuid.New()
	rows := []clockin.Clockin{
		punch(emp, "2019-03-04T09:00:00Z"),
		punch(emp, "2019-03-04T12:30:00Z"),
		punch(emp, "2019-03-04T18:00:00Z"),
		punch(emp, "2019-03-05T08:45:00Z"),
		punch(emp, "2019-03-05T17:10:00Z"),
	}

	workdays := Aggregate(rows)

	assert.Len(t, workdays, 2)
	assert.Equal(t, "2019-03-04", workdays[0].Date)
	assert.Equal(t, []string{
		"2019-03-04T09:00:00Z",
		"2019-03-04T12:30:00Z",
		"2019-03-04T18:00:00Z",
	}, workdays[0].ClockinValues)
	assert.Equal(t, "2019-03-05", workdays[1].Date)
	assert.Len(t, workdays[1].ClockinValues, 2)
}

func TestAggregate_EveryPunchAppearsExactlyOnce(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	rows := []clockin.Clockin{
		punch(a, "2019-03-04T09:00:00Z"),
		punch(b, "2019-03-04T09:05:00Z"),
		punch(a, "2019-03-05T09:00:00Z"),
		punch(b, "2019-03-06T09:00:00Z"),
	}

	workdays := Aggregate(rows)

	total := 0
	for _, wd := range workdays {
		total += len(wd.ClockinValues)
	}
	assert.Equal(t, len(rows), total)
}

func TestAggregate_EmptyInput(t *testing.T) {
	workdays := Aggregate(nil)
	assert.NotNil(t, workdays)
	assert.Empty(t, workdays)
}

func TestAggregate_FirstOccurrenceOrder(t *testing.T) {
	emp := uuid.New()
	rows := []clockin.Clockin{
		punch(emp, "2019-03-06T09:00:00Z"),
		punch(emp, "2019-03-04T09:00:00Z"),
		punch(emp, "2019-03-05T09:00:00Z"),
	}

	// Unsorted input is grouped in first-occurrence order, not re-sorted.
	workdays := Aggregate(rows)

	assert.Equal(t, "2019-03-06", workdays[0].Date)
	assert.Equal(t, "2019-03-04", workdays[1].Date)
	assert.Equal(t, "2019-03-05", workdays[2].Date)
}

func TestAggregateForEmployee_FiltersOtherEmployees(t *testing.T) {
	target := uuid.New()
	other := uuid.New()
	rows := []clockin.Clockin{
		punch(target, "2019-03-04T09:00:00Z"),
		punch(other, "2019-03-04T09:30:00Z"),
		punch(target, "2019-03-04T18:00:00Z"),
		punch(other, "2019-03-05T09:00:00Z"),
	}
	emp := EmployeeSummary{ID: target.String(), FullName: "Ana Souza"}

	workdays := AggregateForEmployee(rows, emp)

	assert.Len(t, workdays, 1)
	assert.Equal(t, "2019-03-04", workdays[0].Date)
	assert.Equal(t, &emp, workdays[0].Employee)
	assert.Equal(t, []string{
		"2019-03-04T09:00:00Z",
		"2019-03-04T18:00:00Z",
	}, workdays[0].ClockinValues)
}

func TestAggregateForEmployee_NoMatchingRows(t *testing.T) {
	other := uuid.New()
	rows := []clockin.Clockin{
		punch(other, "2019-03-04T09:00:00Z"),
	}

	workdays := AggregateForEmployee(rows, EmployeeSummary{ID: uuid.NewString()})

	assert.Empty(t, workdays)
}

// Pins the cursor behavior with interleaved employees: another employee's
// punch on a new date neither opens a WorkDay nor moves the cursor, so the
// target's later punch on that date still opens its own WorkDay.
func TestAggregateForEmployee_InterleavedDatesKeepCursor(t *testing.T) {
	target := uuid.New()
	other := uuid.New()
	rows := []clockin.Clockin{
		punch(target, "2019-03-04T09:00:00Z"),
		punch(other, "2019-03-05T08:00:00Z"),
		punch(target, "2019-03-05T09:00:00Z"),
	}

	workdays := AggregateForEmployee(rows, EmployeeSummary{ID: target.String()})

	assert.Len(t, workdays, 2)
	assert.Equal(t, "2019-03-04", workdays[0].Date)
	assert.Equal(t, []string{"2019-03-04T09:00:00Z"}, workdays[0].ClockinValues)
	assert.Equal(t, "2019-03-05", workdays[1].Date)
	assert.Equal(t, []string{"2019-03-05T09:00:00Z"}, workdays[1].ClockinValues)
}
