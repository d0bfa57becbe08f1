package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/ports"
)

const (
	NickServService = "nickserv"
	NickServModule  = "nickserv/main"

	registeredTimeLayout = "Jan 02 15:04:05 2006"
)

// bindNickServ installs the built-in commands other nickserv modules depend on.
func (b *Bus) bindNickServ() {
	b.provided[NickServModule] = true
	b.services[NickServService] = map[string]ports.Command{
		"INFO": {
			Name:        "INFO",
			Description: "Displays information on registrations.",
			Access:      ports.AccessAnyone,
			MaxParams:   1,
			HelpPath:    "nickserv/info",
			Handler:     b.handleInfo,
		},
		"REGISTER": {
			Name:        "REGISTER",
			Description: "Registers an account.",
			Access:      ports.AccessAnyone,
			MaxParams:   1,
			HelpPath:    "nickserv/register",
			Handler:     b.handleRegister,
		},
	}
}

func (b *Bus) handleInfo(ctx context.Context, req ports.CommandRequest, reply ports.Replier) error {
	if len(req.Params) == 0 {
		reply.Fail(ctx, domain.FaultNeedMoreParams, "Insufficient parameters for \x02INFO\x02.")
		return nil
	}

	target := req.Params[0]
	account, err := b.accounts.GetByID(ctx, domain.NewAccountID(target))
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		reply.Fail(ctx, domain.FaultNoSuchTarget, "\x02%s\x02 is not registered.", target)
		return nil
	case err != nil:
		return fmt.Errorf("get account by id: %w", err)
	}

	info := &ports.InfoRequest{Viewer: req.Source, Target: account}
	for _, h := range b.infoHooksSnapshot() {
		if err := h.hook(ctx, info); err != nil {
			return fmt.Errorf("info hook %s: %w", h.owner, err)
		}
	}

	reply.Success(ctx, "Information on \x02%s\x02 (account \x02%s\x02):", account.Name, account.ID)
	if !account.RegisteredAt.IsZero() {
		reply.Success(ctx, "Registered : %s", account.RegisteredAt.UTC().Format(registeredTimeLayout))
	}
	for _, line := range info.Lines {
		reply.Success(ctx, "%s", line)
	}
	reply.Success(ctx, "\x02*** End of Info ***\x02")

	return nil
}

// handleRegister creates an account named after the param or the session nick and
// logs the session into it.
func (b *Bus) handleRegister(ctx context.Context, req ports.CommandRequest, reply ports.Replier) error {
	source := req.Source
	if source.Authenticated() {
		reply.Fail(ctx, domain.FaultNoChange, "You are already logged in as \x02%s\x02.", source.AccountName)
		return nil
	}
	if b.registrar == nil {
		reply.Fail(ctx, domain.FaultNoPrivs, "Registration is disabled.")
		return nil
	}

	name := ""
	if len(req.Params) > 0 {
		name = req.Params[0]
	} else if source.Session != nil {
		name = source.Session.Nick
	}

	account, err := b.registrar.Register(ctx, name)
	switch {
	case errors.Is(err, domain.ErrAccountExists):
		reply.Fail(ctx, domain.FaultNoChange, "\x02%s\x02 is already registered.", name)
		return nil
	case errors.Is(err, domain.ErrInvalidAccount):
		reply.Fail(ctx, domain.FaultBadParams, "\x02%s\x02 is not a valid account name.", name)
		return nil
	case err != nil:
		return err
	}

	b.audit.LogCommand(ctx, domain.Source{AccountID: account.ID, AccountName: account.Name, Session: source.Session}, ports.AuditRegister, "REGISTER: "+account.Name)
	reply.Success(ctx, "\x02%s\x02 is now registered.", account.Name)

	if source.Session == nil {
		return nil
	}
	if err := b.identify(ctx, source.Session.UID, account.ID); err != nil {
		return err
	}
	reply.Success(ctx, "You are now logged in as \x02%s\x02.", account.Name)

	return nil
}
