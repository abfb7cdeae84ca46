package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the application.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Solana     SolanaConfig     `yaml:"solana"`
	Explorer   ExplorerConfig   `yaml:"explorer"`
	Portfolio  PortfolioConfig  `yaml:"portfolio"`
	Market     MarketConfig     `yaml:"market"`
	Validators ValidatorsConfig `yaml:"validators"`
	Advisory   AdvisoryConfig   `yaml:"advisory"`
	Chat       ChatConfig       `yaml:"chat"`
	Report     ReportConfig     `yaml:"report"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
	File  string `yaml:"file"`
}

// SolanaConfig holds the chain RPC configuration.
type SolanaConfig struct {
	RPCEndpoints          []string `yaml:"rpcEndpoints"`
	TokenProgramID        string   `yaml:"tokenProgramID"`
	RequestTimeoutSeconds int      `yaml:"requestTimeoutSeconds"`
	TokensFile            string   `yaml:"tokensFile"`
}

// ExplorerConfig holds the fallback explorer configuration.
type ExplorerConfig struct {
	BaseURL               string `yaml:"baseURL"`
	RequestTimeoutSeconds int    `yaml:"requestTimeoutSeconds"`
}

// PortfolioConfig holds the portfolio analytics provider configuration.
type PortfolioConfig struct {
	BaseURL               string `yaml:"baseURL"`
	APIKey                string `yaml:"apiKey"`
	Currency              string `yaml:"currency"`
	RequestTimeoutSeconds int    `yaml:"requestTimeoutSeconds"`
}

// MarketConfig holds the market data provider configuration.
type MarketConfig struct {
	BaseURL               string `yaml:"baseURL"`
	CoinID                string `yaml:"coinID"`
	VsCurrency            string `yaml:"vsCurrency"`
	SeriesDays            int    `yaml:"seriesDays"`
	RequestTimeoutSeconds int    `yaml:"requestTimeoutSeconds"`
}

// ValidatorsConfig holds the validator directory configuration. Fetching is
// optional; the built-in list serves when it is disabled or failing.
type ValidatorsConfig struct {
	FetchEnabled          bool   `yaml:"fetchEnabled"`
	BaseURL               string `yaml:"baseURL"`
	RequestTimeoutSeconds int    `yaml:"requestTimeoutSeconds"`
	CacheTTLMinutes       int    `yaml:"cacheTTLMinutes"`
	CacheCleanupMinutes   int    `yaml:"cacheCleanupMinutes"`
}

// AdvisoryConfig holds the optional remote advisory source configuration.
type AdvisoryConfig struct {
	Enabled               bool   `yaml:"enabled"`
	BaseURL               string `yaml:"baseURL"`
	APIKey                string `yaml:"apiKey"`
	RequestTimeoutSeconds int    `yaml:"requestTimeoutSeconds"`
}

// ChatConfig holds the chat webhook limiter configuration.
type ChatConfig struct {
	RateLimit  float64 `yaml:"rateLimit"` // messages per second per sender
	BurstLimit int     `yaml:"burstLimit"`
}

// ReportConfig holds report rendering limits.
type ReportConfig struct {
	MaxHoldings int `yaml:"maxHoldings"`
}

// LoadConfig loads configuration from a YAML file, fills defaults and
// applies environment overrides for secrets.
func LoadConfig(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 120
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if len(cfg.Solana.RPCEndpoints) == 0 {
		cfg.Solana.RPCEndpoints = []string{
			"https://api.mainnet-beta.solana.com",
			"https://solana-api.projectserum.com",
			"https://rpc.ankr.com/solana",
		}
		logrus.Infof("Solana RPC endpoints not set, defaulting to %d public endpoints", len(cfg.Solana.RPCEndpoints))
	}
	if cfg.Solana.TokenProgramID == "" {
		cfg.Solana.TokenProgramID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	}
	if cfg.Solana.RequestTimeoutSeconds <= 0 {
		cfg.Solana.RequestTimeoutSeconds = 30
	}

	if cfg.Explorer.BaseURL == "" {
		cfg.Explorer.BaseURL = "https://api.solscan.io"
		logrus.Infof("Explorer.BaseURL not set, defaulting to %s", cfg.Explorer.BaseURL)
	}
	if cfg.Explorer.RequestTimeoutSeconds <= 0 {
		cfg.Explorer.RequestTimeoutSeconds = 30
	}

	if cfg.Portfolio.BaseURL == "" {
		cfg.Portfolio.BaseURL = "https://api.zerion.io"
		logrus.Infof("Portfolio.BaseURL not set, defaulting to %s", cfg.Portfolio.BaseURL)
	}
	if cfg.Portfolio.Currency == "" {
		cfg.Portfolio.Currency = "usd"
	}
	if cfg.Portfolio.RequestTimeoutSeconds <= 0 {
		cfg.Portfolio.RequestTimeoutSeconds = 30
	}

	if cfg.Market.BaseURL == "" {
		cfg.Market.BaseURL = "https://api.coingecko.com/api/v3"
		logrus.Infof("Market.BaseURL not set, defaulting to %s", cfg.Market.BaseURL)
	}
	if cfg.Market.CoinID == "" {
		cfg.Market.CoinID = "solana"
	}
	if cfg.Market.VsCurrency == "" {
		cfg.Market.VsCurrency = "usd"
	}
	if cfg.Market.SeriesDays <= 0 {
		cfg.Market.SeriesDays = 7
	}
	if cfg.Market.RequestTimeoutSeconds <= 0 {
		cfg.Market.RequestTimeoutSeconds = 30
	}

	if cfg.Validators.BaseURL == "" {
		cfg.Validators.BaseURL = "https://api.solanabeach.io"
	}
	if cfg.Validators.RequestTimeoutSeconds <= 0 {
		cfg.Validators.RequestTimeoutSeconds = 10
	}
	if cfg.Validators.CacheTTLMinutes <= 0 {
		cfg.Validators.CacheTTLMinutes = 30
	}
	if cfg.Validators.CacheCleanupMinutes <= 0 {
		cfg.Validators.CacheCleanupMinutes = 10
	}

	if cfg.Advisory.RequestTimeoutSeconds <= 0 {
		cfg.Advisory.RequestTimeoutSeconds = 15
	}

	if cfg.Chat.RateLimit <= 0 {
		cfg.Chat.RateLimit = 1
	}
	if cfg.Chat.BurstLimit <= 0 {
		cfg.Chat.BurstLimit = 5
	}

	if cfg.Report.MaxHoldings <= 0 {
		cfg.Report.MaxHoldings = 15
	}
}

func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv("PORTFOLIO_API_KEY"); key != "" {
		cfg.Portfolio.APIKey = key
		logrus.Info("Portfolio API key taken from PORTFOLIO_API_KEY")
	}
	if key := os.Getenv("ADVISORY_API_KEY"); key != "" {
		cfg.Advisory.APIKey = key
		logrus.Info("Advisory API key taken from ADVISORY_API_KEY")
	}
}
