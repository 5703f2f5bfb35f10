package workday

// EmployeeSummary identifies the employee a filtered aggregation was
// scoped to.
type EmployeeSummary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name,omitempty"`
}

// WorkDay is a read-time aggregate: every punch value sharing one calendar
// date, in input order. It is never persisted.
type WorkDay struct {
	Date          string           `json:"date"`
	Employee      *EmployeeSummary `json:"employee,omitempty"`
	ClockinValues []string         `json:"clockin_values"`
}
