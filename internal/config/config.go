package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Fake struct {
		Addr string
	}
	Database struct {
		Path string
	}
	Generator struct {
		Seed uint64
	}
	Log struct {
		Level string
	}
	Storage struct {
		Bucket    string
		KeyPrefix string
		Region    string
		Endpoint  string
	}
	AWS struct {
		Profile string
	}
}

// Load reads configuration from environment variables, an optional .env file and an
// optional config file found in configPaths (the working directory when none are given).
func Load(configPaths ...string) (Config, error) {
	// a missing .env is fine; existing environment variables win
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FAKEUSER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:5000")
	v.SetDefault("fake.addr", "0.0.0.0:5001")
	v.SetDefault("database.path", "data/users.db")
	v.SetDefault("generator.seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.keyprefix", "user-snapshots")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("aws.profile", "")

	v.SetConfigName("config")
	if len(configPaths) == 0 {
		configPaths = []string{"."}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// SnapshotsEnabled reports whether an object storage bucket is configured.
func (c Config) SnapshotsEnabled() bool {
	return strings.TrimSpace(c.Storage.Bucket) != ""
}
