package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	tomlrepo "github.com/bnema/nickserv-gender/internal/adapters/repo/toml"
	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/ports"
	"github.com/bnema/nickserv-gender/internal/ports/mocks"
)

type replyRecord struct {
	fault domain.Fault
	text  string
}

type recordingReplier struct {
	replies []replyRecord
}

func (r *recordingReplier) Success(_ context.Context, format string, args ...any) {
	r.replies = append(r.replies, replyRecord{text: fmt.Sprintf(format, args...)})
}

func (r *recordingReplier) Fail(_ context.Context, fault domain.Fault, format string, args ...any) {
	r.replies = append(r.replies, replyRecord{fault: fault, text: fmt.Sprintf(format, args...)})
}

type genderFixture struct {
	host      *mocks.MockHost
	transport *mocks.MockMetadataTransport
	audit     *mocks.MockAuditLog
	repo      *tomlrepo.Repository
	module    *GenderModule
}

func newGenderFixture(t *testing.T, dialect ports.Dialect, accounts ...domain.Account) *genderFixture {
	t.Helper()

	f := &genderFixture{
		host:      mocks.NewMockHost(t),
		transport: mocks.NewMockMetadataTransport(t),
		audit:     mocks.NewMockAuditLog(t),
		repo:      newTomlRepo(t),
	}
	for _, account := range accounts {
		require.NoError(t, f.repo.Save(context.Background(), account))
	}
	f.transport.EXPECT().Dialect().Return(dialect).Maybe()

	f.module = NewGenderModule(
		f.host,
		NewGenderStore(f.repo),
		NewSynchronizer(f.transport, nil),
		domain.NewBannedWords(domain.DefaultBannedWords...),
		f.audit,
		nil,
	)

	return f
}

func (f *genderFixture) gender(t *testing.T, id domain.AccountID) string {
	t.Helper()

	account, err := f.repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return account.Gender
}

func sessionSource(id domain.AccountID, uid domain.SessionUID) domain.Source {
	return domain.Source{
		AccountID:   id,
		AccountName: string(id),
		Session:     &domain.Session{UID: uid, Nick: string(id), AccountID: id},
	}
}

// auditMentions matches an audit message that quotes every part.
func auditMentions(parts ...string) interface{} {
	return mock.MatchedBy(func(message string) bool {
		for _, part := range parts {
			if !strings.Contains(message, fmt.Sprintf("%q", part)) {
				return false
			}
		}
		return true
	})
}

func genderRequest(source domain.Source, params ...string) ports.CommandRequest {
	return ports.CommandRequest{Source: source, Params: params}
}

func TestGenderModuleSetAnnouncesAndConfirms(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd, domain.Account{ID: "alice", Name: "alice"})
	source := sessionSource("alice", "42XAAAAAB")
	reply := &recordingReplier{}

	f.audit.EXPECT().LogCommand(mockAnyContext(), source, ports.AuditSet, "GENDER: nonbinary").Once()
	f.transport.EXPECT().SendMetadata(mockAnyContext(), domain.SessionUID("42XAAAAAB"), "gender", "nonbinary").Return(nil).Once()

	require.NoError(t, f.module.HandleGender(context.Background(), genderRequest(source, "nonbinary"), reply))

	assert.Equal(t, "nonbinary", f.gender(t, "alice"))
	assert.Equal(t, []replyRecord{{text: "Your gender is now set to \x02nonbinary\x02."}}, reply.replies)
}

func TestGenderModuleSetKeepsInnerSpaces(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd, domain.Account{ID: "alice", Name: "alice"})
	source := sessionSource("alice", "42XAAAAAB")

	f.audit.EXPECT().LogCommand(mockAnyContext(), source, ports.AuditSet, "GENDER: two spirit").Once()
	f.transport.EXPECT().SendMetadata(mockAnyContext(), domain.SessionUID("42XAAAAAB"), "gender", "two spirit").Return(nil).Once()

	require.NoError(t, f.module.HandleGender(context.Background(), genderRequest(source, "  two spirit "), &recordingReplier{}))
	assert.Equal(t, "two spirit", f.gender(t, "alice"))
}

func TestGenderModuleBannedWordKillsAndKeepsValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		word  string
	}{
		{name: "first banned word wins", input: "apache attack helicopter", word: "apache"},
		{name: "case insensitive", input: "ATTACK", word: "attack"},
		{name: "substring", input: "helicopterish", word: "helicopter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGenderFixture(t, ports.DialectInspIRCd, domain.Account{ID: "alice", Name: "alice", Gender: "agender"})
			source := sessionSource("alice", "42XAAAAAB")
			reply := &recordingReplier{}

			f.audit.EXPECT().LogCommand(mockAnyContext(), source, ports.AuditSet, auditMentions(tt.input, tt.word)).Once()
			f.host.EXPECT().Kill(mockAnyContext(), domain.SessionUID("42XAAAAAB"), bannedWordKillReason).
				Run(func(context.Context, domain.SessionUID, string) {
					assert.Len(t, reply.replies, 1, "refusal must be sent before the kill")
				}).
				Return(nil).Once()

			require.NoError(t, f.module.HandleGender(context.Background(), genderRequest(source, tt.input), reply))

			assert.Equal(t, "agender", f.gender(t, "alice"))
			assert.Equal(t, []replyRecord{{
				fault: domain.FaultBadParams,
				text:  fmt.Sprintf("The word '%s' is on the banned words list for GENDER.", tt.word),
			}}, reply.replies)
		})
	}
}

func TestGenderModuleBannedWordKillFailureIsNotFatal(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd, domain.Account{ID: "alice", Name: "alice"})
	source := sessionSource("alice", "42XAAAAAB")

	f.audit.EXPECT().LogCommand(mockAnyContext(), source, ports.AuditSet, auditMentions("apache")).Once()
	f.host.EXPECT().Kill(mockAnyContext(), domain.SessionUID("42XAAAAAB"), bannedWordKillReason).Return(domain.ErrSessionNotFound).Once()

	require.NoError(t, f.module.HandleGender(context.Background(), genderRequest(source, "apache"), &recordingReplier{}))
	assert.Empty(t, f.gender(t, "alice"))
}

func TestGenderModuleBannedWordWithoutSessionSkipsKill(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd, domain.Account{ID: "alice", Name: "alice"})
	source := domain.Source{AccountID: "alice", AccountName: "alice"}
	reply := &recordingReplier{}

	f.audit.EXPECT().LogCommand(mockAnyContext(), source, ports.AuditSet, auditMentions("non helicopter", "helicopter")).Once()

	require.NoError(t, f.module.HandleGender(context.Background(), genderRequest(source, "non helicopter"), reply))
	require.Len(t, reply.replies, 1)
	assert.Equal(t, domain.FaultBadParams, reply.replies[0].fault)
}

func TestGenderModuleClear(t *testing.T) {
	for _, params := range [][]string{nil, {"   "}} {
		t.Run(fmt.Sprintf("%q", params), func(t *testing.T) {
			f := newGenderFixture(t, ports.DialectInspIRCd, domain.Account{ID: "alice", Name: "alice", Gender: "nonbinary"})
			source := sessionSource("alice", "42XAAAAAB")
			reply := &recordingReplier{}

			f.audit.EXPECT().LogCommand(mockAnyContext(), source, ports.AuditSet, "GENDER:REMOVE").Once()
			f.transport.EXPECT().SendMetadata(mockAnyContext(), domain.SessionUID("42XAAAAAB"), "gender", "").Return(nil).Once()

			require.NoError(t, f.module.HandleGender(context.Background(), genderRequest(source, params...), reply))

			assert.Empty(t, f.gender(t, "alice"))
			assert.Equal(t, []replyRecord{{text: "Your gender has been cleared."}}, reply.replies)
		})
	}
}

func TestGenderModuleClearWhenAlreadyCleared(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd, domain.Account{ID: "alice", Name: "alice"})
	reply := &recordingReplier{}

	require.NoError(t, f.module.HandleGender(context.Background(), genderRequest(sessionSource("alice", "42XAAAAAB")), reply))

	assert.Equal(t, []replyRecord{{fault: domain.FaultNoChange, text: "Your gender was already cleared."}}, reply.replies)
}

func TestGenderModuleRequiresLogin(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd)
	reply := &recordingReplier{}
	source := domain.Source{Session: &domain.Session{UID: "42XAAAAAB", Nick: "anon"}}

	require.NoError(t, f.module.HandleGender(context.Background(), genderRequest(source, "nonbinary"), reply))
	assert.Equal(t, []replyRecord{{fault: domain.FaultNoPrivs, text: "You are not logged in."}}, reply.replies)
}

func TestGenderModuleSessionlessSetDoesNotAnnounce(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd, domain.Account{ID: "alice", Name: "alice"})
	source := domain.Source{AccountID: "alice", AccountName: "alice"}

	f.audit.EXPECT().LogCommand(mockAnyContext(), source, ports.AuditSet, "GENDER: femme").Once()

	require.NoError(t, f.module.HandleGender(context.Background(), genderRequest(source, "femme"), &recordingReplier{}))
	assert.Equal(t, "femme", f.gender(t, "alice"))
}

func TestGenderModuleUnsupportedDialectStillStores(t *testing.T) {
	f := newGenderFixture(t, ports.DialectUnreal, domain.Account{ID: "alice", Name: "alice"})
	source := sessionSource("alice", "42XAAAAAB")
	reply := &recordingReplier{}

	f.audit.EXPECT().LogCommand(mockAnyContext(), source, ports.AuditSet, "GENDER: nonbinary").Once()

	require.NoError(t, f.module.HandleGender(context.Background(), genderRequest(source, "nonbinary"), reply))
	assert.Equal(t, "nonbinary", f.gender(t, "alice"))
	assert.Len(t, reply.replies, 1)
}

func TestGenderModuleStorageFaultIsReturned(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	transport := mocks.NewMockMetadataTransport(t)
	module := NewGenderModule(mocks.NewMockHost(t), NewGenderStore(repo), NewSynchronizer(transport, nil), domain.NewBannedWords(domain.DefaultBannedWords...), mocks.NewMockAuditLog(t), nil)
	boom := errors.New("disk full")
	reply := &recordingReplier{}

	repo.EXPECT().GetByID(mockAnyContext(), domain.AccountID("alice")).Return(domain.Account{ID: "alice"}, nil)
	repo.EXPECT().Save(mockAnyContext(), domain.Account{ID: "alice", Gender: "nonbinary"}).Return(boom)

	err := module.HandleGender(context.Background(), genderRequest(sessionSource("alice", "42XAAAAAB"), "nonbinary"), reply)
	require.ErrorIs(t, err, boom)
	assert.Empty(t, reply.replies)
}

func TestGenderModuleUserInfo(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd,
		domain.Account{ID: "alice", Name: "Alice", Gender: "nonbinary"},
		domain.Account{ID: "bob", Name: "bob"},
	)
	ctx := context.Background()

	withGender := &ports.InfoRequest{Target: domain.Account{ID: "alice", Name: "Alice"}}
	require.NoError(t, f.module.UserInfo(ctx, withGender))
	assert.Equal(t, []string{"\x02Alice\x02 identifies as: nonbinary"}, withGender.Lines)

	without := &ports.InfoRequest{Target: domain.Account{ID: "bob", Name: "bob"}}
	require.NoError(t, f.module.UserInfo(ctx, without))
	assert.Empty(t, without.Lines)

	unknown := &ports.InfoRequest{Target: domain.Account{ID: "ghost", Name: "ghost"}}
	require.NoError(t, f.module.UserInfo(ctx, unknown))
	assert.Empty(t, unknown.Lines)

	require.NoError(t, f.module.UserInfo(ctx, nil))
}

func TestGenderModuleUserIdentify(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd,
		domain.Account{ID: "alice", Name: "alice", Gender: "nonbinary"},
		domain.Account{ID: "bob", Name: "bob"},
	)
	ctx := context.Background()

	f.transport.EXPECT().SendMetadata(mockAnyContext(), domain.SessionUID("42XAAAAAB"), "gender", "nonbinary").Return(nil).Once()

	require.NoError(t, f.module.UserIdentify(ctx, &domain.Session{UID: "42XAAAAAB", AccountID: "alice"}))
	require.NoError(t, f.module.UserIdentify(ctx, &domain.Session{UID: "42XAAAAAC", AccountID: "bob"}))
	require.NoError(t, f.module.UserIdentify(ctx, &domain.Session{UID: "42XAAAAAD"}))
	require.NoError(t, f.module.UserIdentify(ctx, &domain.Session{UID: "42XAAAAAE", AccountID: "ghost"}))
	require.NoError(t, f.module.UserIdentify(ctx, nil))
}

func TestGenderModuleStartRegistersAndResyncs(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd,
		domain.Account{ID: "alice", Name: "alice", Gender: "nonbinary"},
		domain.Account{ID: "bob", Name: "bob"},
		domain.Account{ID: "carol", Name: "carol", Gender: "woman"},
	)

	f.host.EXPECT().AddUserInfoHook(GenderModuleName, mock.Anything).Once()
	f.host.EXPECT().AddUserIdentifyHook(GenderModuleName, mock.Anything).Once()
	f.host.EXPECT().RequestDependency(NickServMainModule).Return(nil).Once()
	f.host.EXPECT().BindCommand(NickServService, mock.MatchedBy(func(cmd ports.Command) bool {
		return cmd.Name == GenderCommandName && cmd.MaxParams == 1 && cmd.Access == ports.AccessAuthenticated && cmd.Handler != nil
	})).Return(nil).Once()
	f.host.EXPECT().Sessions(mockAnyContext()).Return([]domain.Session{
		{UID: "42XAAAAAB", Nick: "alice", AccountID: "alice"},
		{UID: "42XAAAAAC", Nick: "bob", AccountID: "bob"},
		{UID: "42XAAAAAD", Nick: "carol"},
		{UID: "42XAAAAAE", Nick: "ghost", AccountID: "ghost"},
		{UID: "42XAAAAAF", Nick: "alice2", AccountID: "alice"},
	}, nil).Once()
	f.transport.EXPECT().SendMetadata(mockAnyContext(), domain.SessionUID("42XAAAAAB"), "gender", "nonbinary").Return(nil).Once()
	f.transport.EXPECT().SendMetadata(mockAnyContext(), domain.SessionUID("42XAAAAAF"), "gender", "nonbinary").Return(nil).Once()

	require.NoError(t, f.module.Start(context.Background()))
}

func TestGenderModuleStartWithoutDependencyRollsBack(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd)

	f.host.EXPECT().AddUserInfoHook(GenderModuleName, mock.Anything).Once()
	f.host.EXPECT().AddUserIdentifyHook(GenderModuleName, mock.Anything).Once()
	f.host.EXPECT().RequestDependency(NickServMainModule).Return(errors.New("module nickserv/main is not loaded")).Once()
	f.host.EXPECT().RemoveHooks(GenderModuleName).Once()

	err := f.module.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), NickServMainModule)
}

func TestGenderModuleStartBindFailureRollsBack(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd)

	f.host.EXPECT().AddUserInfoHook(GenderModuleName, mock.Anything).Once()
	f.host.EXPECT().AddUserIdentifyHook(GenderModuleName, mock.Anything).Once()
	f.host.EXPECT().RequestDependency(NickServMainModule).Return(nil).Once()
	f.host.EXPECT().BindCommand(NickServService, mock.Anything).Return(errors.New("command GENDER already bound on nickserv")).Once()
	f.host.EXPECT().RemoveHooks(GenderModuleName).Once()

	require.Error(t, f.module.Start(context.Background()))
}

func TestGenderModuleStartResyncFailureRollsBack(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd)

	f.host.EXPECT().AddUserInfoHook(GenderModuleName, mock.Anything).Once()
	f.host.EXPECT().AddUserIdentifyHook(GenderModuleName, mock.Anything).Once()
	f.host.EXPECT().RequestDependency(NickServMainModule).Return(nil).Once()
	f.host.EXPECT().BindCommand(NickServService, mock.Anything).Return(nil).Once()
	f.host.EXPECT().Sessions(mockAnyContext()).Return(nil, errors.New("session table unavailable")).Once()
	f.host.EXPECT().UnbindCommand(NickServService, GenderCommandName).Once()
	f.host.EXPECT().RemoveHooks(GenderModuleName).Once()

	err := f.module.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session table unavailable")
}

func TestGenderModuleStartStorageFaultDuringResyncRollsBack(t *testing.T) {
	host := mocks.NewMockHost(t)
	repo := mocks.NewMockAccountRepository(t)
	transport := mocks.NewMockMetadataTransport(t)
	module := NewGenderModule(host, NewGenderStore(repo), NewSynchronizer(transport, nil), domain.NewBannedWords(domain.DefaultBannedWords...), mocks.NewMockAuditLog(t), nil)
	boom := errors.New("storage down")

	host.EXPECT().AddUserInfoHook(GenderModuleName, mock.Anything).Once()
	host.EXPECT().AddUserIdentifyHook(GenderModuleName, mock.Anything).Once()
	host.EXPECT().RequestDependency(NickServMainModule).Return(nil).Once()
	host.EXPECT().BindCommand(NickServService, mock.Anything).Return(nil).Once()
	host.EXPECT().Sessions(mockAnyContext()).Return([]domain.Session{{UID: "42XAAAAAB", Nick: "alice", AccountID: "alice"}}, nil).Once()
	repo.EXPECT().GetByID(mockAnyContext(), domain.AccountID("alice")).Return(domain.Account{}, boom).Once()
	host.EXPECT().UnbindCommand(NickServService, GenderCommandName).Once()
	host.EXPECT().RemoveHooks(GenderModuleName).Once()

	require.ErrorIs(t, module.Start(context.Background()), boom)
}

func TestGenderModuleStop(t *testing.T) {
	f := newGenderFixture(t, ports.DialectInspIRCd, domain.Account{ID: "alice", Name: "alice", Gender: "nonbinary"})

	f.host.EXPECT().RemoveHooks(GenderModuleName).Once()
	f.host.EXPECT().UnbindCommand(NickServService, GenderCommandName).Once()

	require.NoError(t, f.module.Stop(context.Background()))
	assert.Equal(t, "nonbinary", f.gender(t, "alice"))
}
