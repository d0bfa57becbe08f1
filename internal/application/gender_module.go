package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/logging"
	"github.com/bnema/nickserv-gender/internal/ports"
)

// GenderModule lets account owners set, clear and display a gender shown in INFO and
// propagated to their live sessions as user metadata.
type GenderModule struct {
	host   ports.Host
	store  *GenderStore
	sync   *Synchronizer
	banned domain.BannedWords
	audit  ports.AuditLog
	logger logging.Logger
}

func NewGenderModule(host ports.Host, store *GenderStore, sync *Synchronizer, banned domain.BannedWords, audit ports.AuditLog, logger logging.Logger) *GenderModule {
	if logger == nil {
		logger = logging.Discard()
	}

	return &GenderModule{
		host:   host,
		store:  store,
		sync:   sync,
		banned: banned,
		audit:  audit,
		logger: logger.With("module", GenderModuleName),
	}
}

func (m *GenderModule) Name() string {
	return GenderModuleName
}

// Start registers the hooks and the GENDER command, then re-announces stored genders to
// every identified session so network state survives a services restart.
func (m *GenderModule) Start(ctx context.Context) error {
	m.host.AddUserInfoHook(GenderModuleName, m.UserInfo)
	m.host.AddUserIdentifyHook(GenderModuleName, m.UserIdentify)

	if err := m.host.RequestDependency(NickServMainModule); err != nil {
		m.host.RemoveHooks(GenderModuleName)
		return fmt.Errorf("request dependency %s: %w", NickServMainModule, err)
	}

	if err := m.host.BindCommand(NickServService, m.command()); err != nil {
		m.host.RemoveHooks(GenderModuleName)
		return fmt.Errorf("bind %s command: %w", GenderCommandName, err)
	}

	if err := m.resync(ctx); err != nil {
		m.host.UnbindCommand(NickServService, GenderCommandName)
		m.host.RemoveHooks(GenderModuleName)
		return err
	}

	m.logger.Info(ctx, "module loaded")
	return nil
}

// Stop unregisters everything Start registered. Stored genders are left untouched.
func (m *GenderModule) Stop(ctx context.Context) error {
	m.host.RemoveHooks(GenderModuleName)
	m.host.UnbindCommand(NickServService, GenderCommandName)

	m.logger.Info(ctx, "module unloaded")
	return nil
}

func (m *GenderModule) resync(ctx context.Context) error {
	sessions, err := m.host.Sessions(ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	announced := 0
	for _, session := range sessions {
		if !session.Identified() {
			continue
		}

		gender, ok, err := m.store.Get(ctx, session.AccountID)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				m.logger.Warn(ctx, "session bound to unknown account", "uid", session.UID, "account", session.AccountID)
				continue
			}
			return fmt.Errorf("resync session %s: %w", session.UID, err)
		}
		if !ok {
			continue
		}

		m.sync.Announce(ctx, session.UID, gender)
		announced++
	}

	m.logger.Debug(ctx, "resynced sessions", "sessions", len(sessions), "announced", announced)
	return nil
}

// HandleGender implements GENDER [text]. Without text the stored gender is cleared.
func (m *GenderModule) HandleGender(ctx context.Context, req ports.CommandRequest, reply ports.Replier) error {
	source := req.Source
	if !source.Authenticated() {
		reply.Fail(ctx, domain.FaultNoPrivs, "You are not logged in.")
		return nil
	}

	gender := ""
	if len(req.Params) > 0 {
		gender = strings.TrimSpace(req.Params[0])
	}
	if gender == "" {
		return m.clearGender(ctx, source, reply)
	}

	if word, banned := m.banned.Violation(gender); banned {
		reply.Fail(ctx, domain.FaultBadParams, "The word '%s' is on the banned words list for %s.", word, GenderCommandName)
		m.audit.LogCommand(ctx, source, ports.AuditSet, fmt.Sprintf("GENDER: banned word %q in %q", word, gender))
		m.killForBannedWord(ctx, source)
		return nil
	}

	if err := m.store.Set(ctx, source.AccountID, gender); err != nil {
		return err
	}
	m.audit.LogCommand(ctx, source, ports.AuditSet, "GENDER: "+gender)

	if source.Session != nil {
		m.sync.Announce(ctx, source.Session.UID, gender)
	}

	reply.Success(ctx, "Your gender is now set to \x02%s\x02.", gender)
	return nil
}

func (m *GenderModule) clearGender(ctx context.Context, source domain.Source, reply ports.Replier) error {
	cleared, err := m.store.Clear(ctx, source.AccountID)
	if err != nil {
		return err
	}
	if !cleared {
		reply.Fail(ctx, domain.FaultNoChange, "Your gender was already cleared.")
		return nil
	}

	m.audit.LogCommand(ctx, source, ports.AuditSet, "GENDER:REMOVE")

	if source.Session != nil {
		m.sync.Announce(ctx, source.Session.UID, "")
	}

	reply.Success(ctx, "Your gender has been cleared.")
	return nil
}

// killForBannedWord disconnects the invoking session. Trying a banned word is treated as abuse.
func (m *GenderModule) killForBannedWord(ctx context.Context, source domain.Source) {
	if source.Session == nil {
		m.logger.Info(ctx, "banned gender from sessionless source", "account", source.AccountID)
		return
	}

	if err := m.host.Kill(ctx, source.Session.UID, bannedWordKillReason); err != nil {
		m.logger.Warn(ctx, "kill session", "uid", source.Session.UID, "error", err)
	}
}

// UserInfo adds the gender line to INFO output for the target account.
func (m *GenderModule) UserInfo(ctx context.Context, req *ports.InfoRequest) error {
	if req == nil {
		return nil
	}

	gender, ok, err := m.store.Get(ctx, req.Target.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil
		}
		return err
	}
	if ok {
		req.Appendf("\x02%s\x02 identifies as: %s", req.Target.Name, gender)
	}

	return nil
}

// UserIdentify announces the stored gender to a session that just logged in.
func (m *GenderModule) UserIdentify(ctx context.Context, session *domain.Session) error {
	if session == nil || !session.Identified() {
		return nil
	}

	gender, ok, err := m.store.Get(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil
		}
		return err
	}
	if ok {
		m.sync.Announce(ctx, session.UID, gender)
	}

	return nil
}
