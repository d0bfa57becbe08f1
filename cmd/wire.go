package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/bnema/nickserv-gender/internal/adapters/audit"
	"github.com/bnema/nickserv-gender/internal/adapters/host"
	"github.com/bnema/nickserv-gender/internal/adapters/link"
	accountsrender "github.com/bnema/nickserv-gender/internal/adapters/render/accounts"
	sqlitestore "github.com/bnema/nickserv-gender/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/nickserv-gender/internal/adapters/repo/toml"
	"github.com/bnema/nickserv-gender/internal/application"
	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/logging"
	"github.com/bnema/nickserv-gender/internal/ports"
)

type app struct {
	cfg              *viper.Viper
	logger           logging.Logger
	repo             ports.AccountRepository
	closeRepo        func() error
	accounts         *application.AccountService
	banned           domain.BannedWords
	audit            ports.AuditLog
	accountsRenderer func([]application.AccountSummary, accountsrender.RenderOptions) (string, error)
}

// runtime is one host with the gender module, talking to a single uplink.
type runtime struct {
	link   *link.Link
	bus    *host.Bus
	module *application.GenderModule
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewTextLogger(os.Stderr, cfg.GetString(logLevelKey))
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, closeRepo, err := wireRepository(cfg)
	if err != nil {
		return nil, err
	}

	banned := domain.NewBannedWords(cfg.GetStringSlice(bannedWordsKey)...)
	if banned.Len() == 0 {
		logger.Warn(context.Background(), "banned words list is empty")
	}

	return &app{
		cfg:              cfg,
		logger:           logger,
		repo:             repo,
		closeRepo:        closeRepo,
		accounts:         application.NewAccountService(repo, ports.SystemClock{}),
		banned:           banned,
		audit:            audit.New(logger),
		accountsRenderer: accountsrender.Render,
	}, nil
}

func wireRepository(cfg *viper.Viper) (ports.AccountRepository, func() error, error) {
	switch driver := cfg.GetString(storeDriverKey); driver {
	case storeDriverTOML:
		repo, err := tomlrepo.NewRepository(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("wire account repository: %w", err)
		}
		return repo, func() error { return nil }, nil
	case storeDriverSQLite:
		path := cfg.GetString(sqlitePathKey)
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, nil, fmt.Errorf("create sqlite directory: %w", err)
		}
		store, err := sqlitestore.Open(context.Background(), path)
		if err != nil {
			return nil, nil, fmt.Errorf("wire sqlite store: %w", err)
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown %s %q", storeDriverKey, driver)
	}
}

func (a *app) newRuntime(uplink io.Writer) (*runtime, error) {
	dialect := ports.Dialect(a.cfg.GetString(linkProtocolKey))
	l, err := link.New(uplink, a.cfg.GetString(linkSIDKey), dialect)
	if err != nil {
		return nil, fmt.Errorf("wire link: %w", err)
	}

	bus := host.NewBus(l, a.repo, a.accounts, a.audit, a.logger, host.Config{ServicesUID: servicesUID(a.cfg)})
	module := application.NewGenderModule(
		bus,
		application.NewGenderStore(a.repo),
		application.NewSynchronizer(l, a.logger),
		a.banned,
		a.audit,
		a.logger,
	)

	return &runtime{link: l, bus: bus, module: module}, nil
}

// newOfflineRuntime loads the module against a discarded uplink for one-shot commands.
func (a *app) newOfflineRuntime(ctx context.Context) (*runtime, error) {
	rt, err := a.newRuntime(io.Discard)
	if err != nil {
		return nil, err
	}
	if err := rt.bus.Load(ctx, rt.module); err != nil {
		return nil, err
	}

	return rt, nil
}

func (a *app) sourceFor(ctx context.Context, accountID string) (domain.Source, error) {
	account, err := a.accounts.Get(ctx, domain.NewAccountID(accountID))
	if err != nil {
		return domain.Source{}, err
	}

	return domain.Source{AccountID: account.ID, AccountName: account.Name}, nil
}

func (a *app) close() error {
	if a.closeRepo == nil {
		return nil
	}

	return a.closeRepo()
}
