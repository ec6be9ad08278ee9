package models

import "time"

// UserRole is the staff role a user signs in with
type UserRole string

const (
	RoleServiceManager UserRole = "Service Manager"
	RoleTechnician     UserRole = "Technician"
	RoleHospitalStaff  UserRole = "Hospital Staff"
)

// Permission names checked by the API
const (
	PermViewDashboard           = "view:dashboard"
	PermViewEquipment           = "view:equipment"
	PermAddEquipment            = "add:equipment"
	PermEditEquipment           = "edit:equipment"
	PermAddStaff                = "add:staff"
	PermAcknowledgeNotification = "acknowledge:notification"
)

// RolePermissions maps each role to the permissions it is granted
var RolePermissions = map[UserRole][]string{
	RoleServiceManager: {PermViewDashboard, PermViewEquipment, PermAddEquipment, PermEditEquipment, PermAddStaff, PermAcknowledgeNotification},
	RoleTechnician:     {PermViewDashboard, PermViewEquipment, PermEditEquipment, PermAcknowledgeNotification},
	RoleHospitalStaff:  {PermViewDashboard, PermViewEquipment},
}

// User represents the users table
type User struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Phone        string    `gorm:"size:50" json:"phone,omitempty"`
	EmployeeID   string    `gorm:"size:50" json:"employee_id,omitempty"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	Role         UserRole  `gorm:"size:50;not null" json:"role"`
	Permissions  []string  `gorm:"serializer:json;type:text" json:"permissions"`
	AvatarURL    string    `gorm:"size:255" json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// HasPermission reports whether the user was granted permission
func (u *User) HasPermission(permission string) bool {
	if u == nil {
		return false
	}
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// RefreshToken represents the refresh_tokens table
// Tokens are stored by hash only
type RefreshToken struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"user_id"`
	TokenHash string    `gorm:"size:64;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
