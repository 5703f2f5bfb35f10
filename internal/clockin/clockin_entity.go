package clockin

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Clockin struct {
	ID         uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;index;uniqueIndex:ux_clockins_employee_date_time"`
	DateTime   time.Time    `gorm:"column:date_time;type:timestamptz;not null;uniqueIndex:ux_clockins_employee_date_time"`
	Date       time.Time    `gorm:"column:date;type:date;not null;index"`
	CreatedAt  time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time    `gorm:"column:updated_at;autoUpdateTime"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Clockin) TableName() string {
	return "clockins"
}

// BeforeSave keeps the derived calendar date in step with the punch
// timestamp, so date grouping never disagrees with date_time.
func (c *Clockin) BeforeSave(tx *gorm.DB) error {
	c.Date = c.DateTime.UTC().Truncate(24 * time.Hour)
	return nil
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
