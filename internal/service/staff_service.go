package service

import (
	"fmt"
	"strings"

	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/internal/store"
	"biomed-maintenance-tracker/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StaffWriter persists new accounts. repository.UserRepository implements it.
type StaffWriter interface {
	CreateUser(user *models.User) error
}

type StaffService struct {
	users  *store.UserDirectory
	writer StaffWriter
	hash   func(password string) (string, error)
	audit  AuditLogger
	log    *zap.Logger
	clock  engine.Clock
}

func NewStaffService(
	users *store.UserDirectory,
	writer StaffWriter,
	hash func(password string) (string, error),
	audit AuditLogger,
	log *zap.Logger,
	clock engine.Clock,
) *StaffService {
	return &StaffService{
		users:  users,
		writer: writer,
		hash:   hash,
		audit:  audit,
		log:    log.Named("staff"),
		clock:  clock,
	}
}

// AddStaffInput is a new Technician or Hospital Staff account
type AddStaffInput struct {
	Name       string          `json:"name" binding:"required"`
	Email      string          `json:"email" binding:"required,email"`
	Phone      string          `json:"phone"`
	EmployeeID string          `json:"employee_id"`
	Role       models.UserRole `json:"role" binding:"required"`
	Password   string          `json:"password" binding:"required,min=8"`
}

// AddStaff creates an account with the permissions of its role. Service
// Managers cannot be created this way.
func (s *StaffService) AddStaff(actorID string, in AddStaffInput) (*models.User, error) {
	if in.Role != models.RoleTechnician && in.Role != models.RoleHospitalStaff {
		return nil, apperrors.ErrInvalidStaffRole
	}

	passwordHash, err := s.hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	email := strings.TrimSpace(in.Email)
	user := models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        in.Phone,
		EmployeeID:   in.EmployeeID,
		PasswordHash: passwordHash,
		Role:         in.Role,
		Permissions:  append([]string(nil), models.RolePermissions[in.Role]...),
		AvatarURL:    "https://i.pravatar.cc/150?u=" + email,
		CreatedAt:    s.clock(),
	}

	var persist func(models.User) error
	if s.writer != nil {
		persist = func(u models.User) error {
			if err := s.writer.CreateUser(&u); err != nil {
				return fmt.Errorf("failed to save user: %w", err)
			}
			return nil
		}
	}

	if err := s.users.CreateUser(user, persist); err != nil {
		return nil, err
	}

	s.log.Info("staff added", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	audit(s.audit, s.log, actorID, "staff_added", fmt.Sprintf("Added %s as %s", user.Email, user.Role))

	return &user, nil
}
