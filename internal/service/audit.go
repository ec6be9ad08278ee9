package service

import (
	"go.uber.org/zap"
)

// AuditLogger records staff actions. repository.AuditRepository writes them to
// the database; LogAuditor writes them to the application log.
type AuditLogger interface {
	CreateAuditLog(userID *string, action string, details string) error
}

// LogAuditor is the AuditLogger used when there is no database
type LogAuditor struct {
	log *zap.Logger
}

func NewLogAuditor(log *zap.Logger) *LogAuditor {
	return &LogAuditor{log: log.Named("audit")}
}

func (a *LogAuditor) CreateAuditLog(userID *string, action string, details string) error {
	user := ""
	if userID != nil {
		user = *userID
	}
	a.log.Info(action, zap.String("user_id", user), zap.String("details", details))
	return nil
}

// audit records an action; failures are logged and never fail the request
func audit(a AuditLogger, log *zap.Logger, userID, action, details string) {
	if a == nil {
		return
	}
	var id *string
	if userID != "" {
		id = &userID
	}
	if err := a.CreateAuditLog(id, action, details); err != nil {
		log.Warn("failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}
