package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL     = "https://roadapi.mybuho.de"
	DefaultSitePort   = 3000
	DefaultLedgerPort = 5000
)

// Config configures the roadmap site.
type Config struct {
	Port            int
	APIURL          string
	FallbackAPIURL  string
	RefreshInterval time.Duration
	HTTPTimeout     time.Duration
	VoteRate        float64
	VoteBurst       int
	TrustProxy      bool
}

// LedgerConfig configures the payments and voting ledger.
type LedgerConfig struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Whitelist    []string
}

// LoadDotEnv loads a .env file into the environment if present. Variables
// already set win.
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load env file", "path", path, "error", err)
	}
}

// ParseFlags parses site flags, falling back to environment variables
// and then to defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var refresh, timeout string

	fs := flag.NewFlagSet("zap-roadmap", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.APIURL, "api", "", "Ledger API base URL")
	fs.StringVar(&cfg.FallbackAPIURL, "fallback-api", "", "Fallback ledger API base URL for payments")
	fs.StringVar(&refresh, "refresh", "", "Donation refresh interval (e.g. 10m)")
	fs.StringVar(&timeout, "timeout", "", "Ledger request timeout (e.g. 10s)")
	fs.Float64Var(&cfg.VoteRate, "vote-rate", 0, "Votes per second allowed per client IP")
	fs.IntVar(&cfg.VoteBurst, "vote-burst", 0, "Vote burst allowed per client IP")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", false, "Take client IPs from X-Forwarded-For/X-Real-IP (only behind a proxy)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	port, err := intOrEnv(cfg.Port, "PORT", DefaultSitePort)
	if err != nil {
		return Config{}, err
	}
	cfg.Port = port

	cfg.APIURL = stringOrEnv(cfg.APIURL, "ROADMAP_API_URL", DefaultAPIURL)
	cfg.FallbackAPIURL = stringOrEnv(cfg.FallbackAPIURL, "ROADMAP_FALLBACK_API_URL", "")

	if cfg.RefreshInterval, err = durationOrEnv(refresh, "REFRESH_INTERVAL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.HTTPTimeout, err = durationOrEnv(timeout, "HTTP_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	if cfg.VoteRate == 0 {
		if s := os.Getenv("VOTE_RATE"); s != "" {
			cfg.VoteRate, err = strconv.ParseFloat(s, 64)
			if err != nil {
				return Config{}, errors.New("invalid VOTE_RATE env variable")
			}
		} else {
			cfg.VoteRate = 1
		}
	}
	if cfg.VoteBurst, err = intOrEnv(cfg.VoteBurst, "VOTE_BURST", 5); err != nil {
		return Config{}, err
	}

	if !cfg.TrustProxy {
		if s := os.Getenv("TRUST_PROXY"); s != "" {
			cfg.TrustProxy, err = strconv.ParseBool(s)
			if err != nil {
				return Config{}, errors.New("invalid TRUST_PROXY env variable")
			}
		}
	}

	if cfg.RefreshInterval < time.Second {
		return Config{}, errors.New("refresh interval must be at least 1s")
	}
	if cfg.VoteRate <= 0 || cfg.VoteBurst <= 0 {
		return Config{}, errors.New("vote rate and burst must be positive")
	}

	return cfg, nil
}

// ParseLedgerFlags parses ledger flags with the same precedence as
// ParseFlags.
func ParseLedgerFlags(args []string) (LedgerConfig, error) {
	var cfg LedgerConfig
	var whitelist string

	fs := flag.NewFlagSet("ledger", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&whitelist, "whitelist", "", "Comma separated client IPs allowed to call the ledger")

	if err := fs.Parse(args); err != nil {
		return LedgerConfig{}, err
	}

	port, err := intOrEnv(cfg.Port, "PORT", DefaultLedgerPort)
	if err != nil {
		return LedgerConfig{}, err
	}
	cfg.Port = port

	cfg.DatabaseType = stringOrEnv(cfg.DatabaseType, "DATABASE_TYPE", "sqlite")
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return LedgerConfig{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	cfg.DatabaseURL = stringOrEnv(cfg.DatabaseURL, "DATABASE_URL", "")
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return LedgerConfig{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:ledger.db"
	}

	whitelist = stringOrEnv(whitelist, "WHITELIST", "")
	for _, ip := range strings.Split(whitelist, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			cfg.Whitelist = append(cfg.Whitelist, ip)
		}
	}

	return cfg, nil
}

func stringOrEnv(v, env, def string) string {
	if v != "" {
		return v
	}
	if e := os.Getenv(env); e != "" {
		return e
	}
	return def
}

func intOrEnv(v int, env string, def int) (int, error) {
	if v != 0 {
		return v, nil
	}
	s := os.Getenv(env)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", env)
	}
	return n, nil
}

func durationOrEnv(v, env string, def time.Duration) (time.Duration, error) {
	if v == "" {
		v = os.Getenv(env)
	}
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q for %s", v, env)
	}
	return d, nil
}
