package ports

import (
	"context"

	"github.com/bnema/nickserv-gender/internal/domain"
)

type AuditCategory string

const (
	AuditSet      AuditCategory = "set"
	AuditRegister AuditCategory = "register"
	AuditLogin    AuditCategory = "login"
)

type AuditLog interface {
	LogCommand(ctx context.Context, source domain.Source, category AuditCategory, message string)
}
