package domain

import "time"

// Audit event actions recorded by the auth layer.
const (
	AuditRegister    = "register"
	AuditLogin       = "login"
	AuditLoginFailed = "login_failed"
	AuditUserDeleted = "user_deleted"
)

// AuthEvent is a security audit record. Events are persisted asynchronously
// and ordered per subject.
type AuthEvent struct {
	Subject string    `json:"subject"`
	Action  string    `json:"action"`
	At      time.Time `json:"at"`
	Detail  string    `json:"detail,omitempty"`
}
