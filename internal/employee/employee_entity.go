package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName       string         `gorm:"column:full_name;type:varchar(255);not null"`
	Email          string         `gorm:"column:email;type:text;uniqueIndex"`
	RegistryNumber string         `gorm:"column:registry_number;type:varchar(30);uniqueIndex"`
	Hidden         bool           `gorm:"column:hidden;default:false"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}
