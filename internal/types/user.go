package types

import (
	"time"
)

// Role codes stored on the user row. The label form ("Conductor"/"Player")
// exists only at the transfer boundary, never in storage.
const (
	RoleConductor = 1
	RolePlayer    = 2
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	Email     string    `gorm:"not null;column:email" json:"email"`
	Role      int       `gorm:"not null;column:role" json:"role"`
	Image     string    `gorm:"column:image" json:"image"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (User) TableName() string {
	return "user"
}
