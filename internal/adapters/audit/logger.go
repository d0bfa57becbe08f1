// Package audit records command audit entries as structured log records.
package audit

import (
	"context"
	"strings"

	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/logging"
	"github.com/bnema/nickserv-gender/internal/ports"
	"github.com/google/uuid"
)

var formatting = strings.NewReplacer("\x02", "", "\x1f", "", "\x16", "", "\x0f", "")

type Logger struct {
	logger logging.Logger
	newID  func() string
}

var _ ports.AuditLog = (*Logger)(nil)

func New(logger logging.Logger) *Logger {
	return &Logger{
		logger: logger.With("log", "audit"),
		newID:  uuid.NewString,
	}
}

func (l *Logger) LogCommand(ctx context.Context, source domain.Source, category ports.AuditCategory, message string) {
	args := []any{
		"event_id", l.newID(),
		"category", string(category),
		"account", source.AccountName,
	}
	if source.Session != nil {
		args = append(args, "nick", source.Session.Nick, "uid", string(source.Session.UID))
	}
	args = append(args, "message", formatting.Replace(message))

	l.logger.Info(ctx, "command", args...)
}
