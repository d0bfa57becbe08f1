package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/bnema/nickserv-gender/internal/domain"
	"github.com/bnema/nickserv-gender/internal/ports"
)

const (
	configDirName  = ".nsgender"
	configFileName = "config"
	envPrefix      = "NSGENDER"

	storeDriverKey     = "store.driver"
	sqlitePathKey      = "store.sqlite_path"
	linkSIDKey         = "link.sid"
	linkProtocolKey    = "link.protocol"
	linkServicesUIDKey = "link.services_uid"
	bannedWordsKey     = "policy.banned_words"
	logLevelKey        = "log.level"

	storeDriverTOML   = "toml"
	storeDriverSQLite = "sqlite"
)

// loadConfig reads ~/.nsgender/config.toml when present; NSGENDER_* variables override it.
func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	cfg := viper.New()
	cfg.SetConfigName(configFileName)
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(configDir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(storeDriverKey, storeDriverTOML)
	cfg.SetDefault(sqlitePathKey, filepath.Join(configDir, "accounts.db"))
	cfg.SetDefault(linkSIDKey, "42X")
	cfg.SetDefault(linkProtocolKey, string(ports.DialectInspIRCd))
	cfg.SetDefault(linkServicesUIDKey, "")
	cfg.SetDefault(bannedWordsKey, domain.DefaultBannedWords)
	cfg.SetDefault(logLevelKey, "info")

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return cfg, nil
}

func servicesUID(cfg *viper.Viper) string {
	if uid := strings.TrimSpace(cfg.GetString(linkServicesUIDKey)); uid != "" {
		return uid
	}

	return cfg.GetString(linkSIDKey) + "AAAAAA"
}
