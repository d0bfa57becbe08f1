package ports

import (
	"context"
	"fmt"

	"github.com/bnema/nickserv-gender/internal/domain"
)

type AccessLevel int

const (
	AccessAnyone AccessLevel = iota
	AccessAuthenticated
)

type CommandRequest struct {
	Source domain.Source
	Params []string
}

// Replier sends command results back to the invoking user.
type Replier interface {
	Success(ctx context.Context, format string, args ...any)
	Fail(ctx context.Context, fault domain.Fault, format string, args ...any)
}

// CommandHandler reports user-facing outcomes through reply. A returned error is fatal to the host.
type CommandHandler func(ctx context.Context, req CommandRequest, reply Replier) error

type Command struct {
	Name        string
	Description string
	Access      AccessLevel
	// MaxParams bounds how the host splits arguments; the last param keeps the remainder.
	MaxParams int
	HelpPath  string
	Handler   CommandHandler
}

type InfoRequest struct {
	Viewer domain.Source
	Target domain.Account
	Lines  []string
}

func (r *InfoRequest) Appendf(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

type UserInfoHook func(ctx context.Context, req *InfoRequest) error

type UserIdentifyHook func(ctx context.Context, session *domain.Session) error

// Host is the command dispatch and session layer a services module plugs into.
type Host interface {
	BindCommand(service string, cmd Command) error
	UnbindCommand(service string, name string)

	AddUserInfoHook(owner string, hook UserInfoHook)
	AddUserIdentifyHook(owner string, hook UserIdentifyHook)
	RemoveHooks(owner string)

	RequestDependency(module string) error

	Sessions(ctx context.Context) ([]domain.Session, error)
	Kill(ctx context.Context, uid domain.SessionUID, reason string) error
}
