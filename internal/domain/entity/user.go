package entity

import "time"

// Role names carried in the JWT role claim.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User represents a back-office account. Dentist mutations require RoleAdmin;
// every other gated operation only needs an authenticated user.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeRole maps arbitrary input to a known role, defaulting to USER.
func NormalizeRole(role string) string {
	switch role {
	case RoleAdmin, "admin", "Admin":
		return RoleAdmin
	default:
		return RoleUser
	}
}
