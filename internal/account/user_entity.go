package account

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Login       string         `gorm:"column:login;type:varchar(100);not null;uniqueIndex"`
	Email       string         `gorm:"column:email;type:text;uniqueIndex"`
	Password    string         `gorm:"column:password;type:text;not null"`
	FirstName   string         `gorm:"column:first_name;type:varchar(100)"`
	LastName    string         `gorm:"column:last_name;type:varchar(100)"`
	Activated   bool           `gorm:"column:activated;default:false"`
	LangKey     string         `gorm:"column:lang_key;type:varchar(10);default:en"`
	Authorities []Authority    `gorm:"many2many:user_authorities;joinForeignKey:UserID;joinReferences:AuthorityName"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}

type Authority struct {
	Name string `gorm:"column:name;type:varchar(50);primaryKey"`
}

func (Authority) TableName() string {
	return "authorities"
}

// SocialConnection links a local login to an identity asserted by an
// external provider.
type SocialConnection struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserLogin      string    `gorm:"column:user_login;type:varchar(100);not null;index;uniqueIndex:ux_social_conn"`
	ProviderID     string    `gorm:"column:provider_id;type:varchar(50);not null;uniqueIndex:ux_social_conn"`
	ProviderUserID string    `gorm:"column:provider_user_id;type:varchar(255);not null;uniqueIndex:ux_social_conn"`
	DisplayName    string    `gorm:"column:display_name;type:varchar(255)"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (SocialConnection) TableName() string {
	return "social_connections"
}
