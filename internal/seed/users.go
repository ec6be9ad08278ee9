package seed

import (
	"time"

	"biomed-maintenance-tracker/internal/models"
)

// Users returns the demo staff directory. Every account shares passwordHash.
func Users(passwordHash string, now time.Time) []models.User {
	user := func(id, name, email string, role models.UserRole) models.User {
		return models.User{
			ID:           id,
			Name:         name,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         role,
			Permissions:  append([]string(nil), models.RolePermissions[role]...),
			AvatarURL:    "https://i.pravatar.cc/150?u=" + email,
			CreatedAt:    now,
		}
	}

	return []models.User{
		user("user-1", "Dr. Evelyn Reed", "admin@MEDiRAT.com", models.RoleServiceManager),
		user("user-2", "John Doe", "tech@MEDiRAT.com", models.RoleTechnician),
		user("user-3", "Jane Smith", "staff@MEDiRAT.com", models.RoleHospitalStaff),
	}
}
