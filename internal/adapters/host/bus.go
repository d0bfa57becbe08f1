// Package host is an in-process services host: it owns live sessions, dispatches service
// commands and hooks, and loads modules against a single uplink.
package host

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/logging"
	"github.com/bnema/nickserv-gender/internal/ports"
)

// Uplink carries the lines the host itself originates.
type Uplink interface {
	Kill(ctx context.Context, target domain.SessionUID, reason string) error
	Notice(ctx context.Context, from string, target domain.SessionUID, text string) error
}

type Registrar interface {
	Register(ctx context.Context, name string) (domain.Account, error)
}

type Module interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type infoHook struct {
	owner string
	hook  ports.UserInfoHook
}

type identifyHook struct {
	owner string
	hook  ports.UserIdentifyHook
}

type Config struct {
	// ServicesUID is the source of NOTICE replies.
	ServicesUID string
}

// Bus serialises every callback it delivers: module code never runs concurrently with itself.
type Bus struct {
	// dispatchMu is held for the duration of one delivered event.
	dispatchMu sync.Mutex
	// mu guards the registries below; it is never held while calling into a module.
	mu sync.Mutex

	uplink    Uplink
	accounts  ports.AccountRepository
	registrar Registrar
	audit     ports.AuditLog
	logger    logging.Logger
	cfg       Config

	services      map[string]map[string]ports.Command
	infoHooks     []infoHook
	identifyHooks []identifyHook
	sessions      map[domain.SessionUID]*domain.Session
	order         []domain.SessionUID
	provided      map[string]bool
	modules       map[string]Module
}

var _ ports.Host = (*Bus)(nil)

func NewBus(uplink Uplink, accounts ports.AccountRepository, registrar Registrar, audit ports.AuditLog, logger logging.Logger, cfg Config) *Bus {
	if logger == nil {
		logger = logging.Discard()
	}

	b := &Bus{
		uplink:    uplink,
		accounts:  accounts,
		registrar: registrar,
		audit:     audit,
		logger:    logger.With("component", "host"),
		cfg:       cfg,
		services:  map[string]map[string]ports.Command{},
		sessions:  map[domain.SessionUID]*domain.Session{},
		provided:  map[string]bool{},
		modules:   map[string]Module{},
	}
	b.bindNickServ()

	return b
}

func (b *Bus) BindCommand(service string, cmd ports.Command) error {
	name := strings.ToUpper(cmd.Name)
	if name == "" || cmd.Handler == nil {
		return errors.New("command needs a name and a handler")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	service = strings.ToLower(service)
	commands, ok := b.services[service]
	if !ok {
		commands = map[string]ports.Command{}
		b.services[service] = commands
	}
	if _, exists := commands[name]; exists {
		return fmt.Errorf("command %s already bound on %s", name, service)
	}

	cmd.Name = name
	commands[name] = cmd
	return nil
}

func (b *Bus) UnbindCommand(service string, name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.services[strings.ToLower(service)], strings.ToUpper(name))
}

func (b *Bus) AddUserInfoHook(owner string, hook ports.UserInfoHook) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.infoHooks = append(b.infoHooks, infoHook{owner: owner, hook: hook})
}

func (b *Bus) AddUserIdentifyHook(owner string, hook ports.UserIdentifyHook) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.identifyHooks = append(b.identifyHooks, identifyHook{owner: owner, hook: hook})
}

func (b *Bus) RemoveHooks(owner string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	info := b.infoHooks[:0]
	for _, h := range b.infoHooks {
		if h.owner != owner {
			info = append(info, h)
		}
	}
	b.infoHooks = info

	identify := b.identifyHooks[:0]
	for _, h := range b.identifyHooks {
		if h.owner != owner {
			identify = append(identify, h)
		}
	}
	b.identifyHooks = identify
}

func (b *Bus) RequestDependency(module string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.provided[module] {
		return nil
	}
	if _, ok := b.modules[module]; ok {
		return nil
	}

	return fmt.Errorf("module %s is not loaded", module)
}

// Sessions returns a snapshot of live sessions in connection order.
func (b *Bus) Sessions(ctx context.Context) ([]domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sessions := make([]domain.Session, 0, len(b.order))
	for _, uid := range b.order {
		sessions = append(sessions, *b.sessions[uid])
	}

	return sessions, nil
}

func (b *Bus) Kill(ctx context.Context, uid domain.SessionUID, reason string) error {
	if !b.removeSession(uid) {
		return fmt.Errorf("kill %s: %w", uid, domain.ErrSessionNotFound)
	}

	b.logger.Info(ctx, "killed session", "uid", uid, "reason", reason)
	if err := b.uplink.Kill(ctx, uid, reason); err != nil {
		return fmt.Errorf("kill %s: %w", uid, err)
	}

	return nil
}

// Load starts m and makes it available as a dependency.
func (b *Bus) Load(ctx context.Context, m Module) error {
	b.dispatchMu.Lock()
	defer b.dispatchMu.Unlock()

	b.mu.Lock()
	_, loaded := b.modules[m.Name()]
	b.mu.Unlock()
	if loaded {
		return fmt.Errorf("module %s is already loaded", m.Name())
	}

	if err := m.Start(ctx); err != nil {
		return fmt.Errorf("load %s: %w", m.Name(), err)
	}

	b.mu.Lock()
	b.modules[m.Name()] = m
	b.mu.Unlock()

	return nil
}

func (b *Bus) Unload(ctx context.Context, name string) error {
	b.dispatchMu.Lock()
	defer b.dispatchMu.Unlock()

	b.mu.Lock()
	m, loaded := b.modules[name]
	delete(b.modules, name)
	b.mu.Unlock()
	if !loaded {
		return fmt.Errorf("module %s is not loaded", name)
	}

	if err := m.Stop(ctx); err != nil {
		return fmt.Errorf("unload %s: %w", name, err)
	}

	return nil
}

func (b *Bus) Connect(ctx context.Context, uid domain.SessionUID, nick string) error {
	if uid == "" || nick == "" {
		return errors.New("connect needs a uid and a nick")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.sessions[uid]; exists {
		return fmt.Errorf("session %s already connected", uid)
	}
	b.sessions[uid] = &domain.Session{UID: uid, Nick: nick}
	b.order = append(b.order, uid)

	b.logger.Debug(ctx, "session connected", "uid", uid, "nick", nick)
	return nil
}

func (b *Bus) Quit(ctx context.Context, uid domain.SessionUID) error {
	if !b.removeSession(uid) {
		return fmt.Errorf("quit %s: %w", uid, domain.ErrSessionNotFound)
	}

	b.logger.Debug(ctx, "session quit", "uid", uid)
	return nil
}

// Identify binds a session to an account and runs the identify hooks.
func (b *Bus) Identify(ctx context.Context, uid domain.SessionUID, id domain.AccountID) error {
	b.dispatchMu.Lock()
	defer b.dispatchMu.Unlock()

	return b.identify(ctx, uid, id)
}

func (b *Bus) identify(ctx context.Context, uid domain.SessionUID, id domain.AccountID) error {
	account, err := b.accounts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("identify %s as %s: %w", uid, id, err)
	}

	b.mu.Lock()
	session, ok := b.sessions[uid]
	if ok {
		session.AccountID = account.ID
	}
	var snapshot domain.Session
	if ok {
		snapshot = *session
	}
	hooks := append([]identifyHook(nil), b.identifyHooks...)
	b.mu.Unlock()

	if !ok {
		return fmt.Errorf("identify %s: %w", uid, domain.ErrSessionNotFound)
	}

	b.audit.LogCommand(ctx, domain.Source{AccountID: account.ID, AccountName: account.Name, Session: &snapshot}, ports.AuditLogin, "IDENTIFY")

	for _, h := range hooks {
		s := snapshot
		if err := h.hook(ctx, &s); err != nil {
			return fmt.Errorf("identify hook %s: %w", h.owner, err)
		}
	}

	return nil
}

// Dispatch runs a command line sent by a live session to service.
func (b *Bus) Dispatch(ctx context.Context, uid domain.SessionUID, service, line string) error {
	b.dispatchMu.Lock()
	defer b.dispatchMu.Unlock()

	source, err := b.sourceFor(ctx, uid)
	if err != nil {
		return err
	}

	return b.invoke(ctx, source, service, line, noticeReplier{bus: b, uid: uid})
}

// Invoke runs a command line for source and reports through reply; source may have no session.
func (b *Bus) Invoke(ctx context.Context, source domain.Source, service, line string, reply ports.Replier) error {
	b.dispatchMu.Lock()
	defer b.dispatchMu.Unlock()

	return b.invoke(ctx, source, service, line, reply)
}

func (b *Bus) invoke(ctx context.Context, source domain.Source, service, line string, reply ports.Replier) error {
	name, rest := splitCommand(line)
	if name == "" {
		return nil
	}

	b.mu.Lock()
	cmd, ok := b.services[strings.ToLower(service)][name]
	b.mu.Unlock()

	if !ok {
		reply.Fail(ctx, domain.FaultUnknownCommand, "Invalid command. Use \x02/msg %s HELP\x02 for a command listing.", service)
		return nil
	}
	if cmd.Access == ports.AccessAuthenticated && !source.Authenticated() {
		reply.Fail(ctx, domain.FaultNoPrivs, "You are not logged in.")
		return nil
	}

	req := ports.CommandRequest{Source: source, Params: splitParams(rest, cmd.MaxParams)}
	if err := cmd.Handler(ctx, req, reply); err != nil {
		return fmt.Errorf("%s %s: %w", service, name, err)
	}

	return nil
}

func (b *Bus) sourceFor(ctx context.Context, uid domain.SessionUID) (domain.Source, error) {
	b.mu.Lock()
	session, ok := b.sessions[uid]
	var snapshot domain.Session
	if ok {
		snapshot = *session
	}
	b.mu.Unlock()

	if !ok {
		return domain.Source{}, fmt.Errorf("dispatch from %s: %w", uid, domain.ErrSessionNotFound)
	}

	source := domain.Source{Session: &snapshot}
	if !snapshot.Identified() {
		return source, nil
	}

	account, err := b.accounts.GetByID(ctx, snapshot.AccountID)
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		b.logger.Warn(ctx, "session logged into dropped account", "uid", uid, "account", snapshot.AccountID)
		return source, nil
	case err != nil:
		return domain.Source{}, fmt.Errorf("resolve account for %s: %w", uid, err)
	}

	source.AccountID = account.ID
	source.AccountName = account.Name
	return source, nil
}

func (b *Bus) infoHooksSnapshot() []infoHook {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]infoHook(nil), b.infoHooks...)
}

func (b *Bus) removeSession(uid domain.SessionUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.sessions[uid]; !ok {
		return false
	}
	delete(b.sessions, uid)
	for i, id := range b.order {
		if id == uid {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}

	return true
}

func (b *Bus) notice(ctx context.Context, uid domain.SessionUID, text string) {
	b.mu.Lock()
	_, ok := b.sessions[uid]
	b.mu.Unlock()

	if !ok {
		b.logger.Debug(ctx, "dropping notice to departed session", "uid", uid)
		return
	}
	if err := b.uplink.Notice(ctx, b.cfg.ServicesUID, uid, text); err != nil {
		b.logger.Warn(ctx, "send notice", "uid", uid, "error", err)
	}
}

// Commands lists the names bound on service.
func (b *Bus) Commands(service string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	names := make([]string, 0, len(b.services[strings.ToLower(service)]))
	for name := range b.services[strings.ToLower(service)] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type noticeReplier struct {
	bus *Bus
	uid domain.SessionUID
}

func (r noticeReplier) Success(ctx context.Context, format string, args ...any) {
	r.bus.notice(ctx, r.uid, fmt.Sprintf(format, args...))
}

func (r noticeReplier) Fail(ctx context.Context, fault domain.Fault, format string, args ...any) {
	r.bus.logger.Debug(ctx, "command failed", "uid", r.uid, "fault", fault)
	r.bus.notice(ctx, r.uid, fmt.Sprintf(format, args...))
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}

	name, rest, _ := strings.Cut(line, " ")
	return strings.ToUpper(name), rest
}

// splitParams splits text on spaces; with max > 0 the last param keeps the remainder.
func splitParams(text string, max int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if max <= 0 {
		return strings.Fields(text)
	}

	params := make([]string, 0, max)
	for len(params) < max-1 {
		head, tail, found := strings.Cut(text, " ")
		params = append(params, head)
		if !found {
			return params
		}
		text = strings.TrimLeft(tail, " ")
		if text == "" {
			return params
		}
	}

	return append(params, text)
}
