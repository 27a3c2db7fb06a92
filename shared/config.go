package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                      // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                     // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "dev/secrets.dev.jsonc" // Path to secrets.json in development environment
)

type Config struct {
	Secrets     Secrets        `json:"-"`
	LogFile     string         `json:"log_file"`
	LogLevel    string         `json:"log_level"`
	ServicePort uint           `json:"service_port"`
	DbFile      string         `json:"db_file"`
	Mastodon    MastodonConfig `json:"mastodon"`
	Twitter     TwitterConfig  `json:"twitter"`
}

type MastodonConfig struct {
	Protocol   string `json:"protocol"` // "https" everywhere except against a local test instance
	ApiBase    string `json:"api_base"` // When set, all calls go here instead of the account's instance
	TimeoutSec int    `json:"timeout_sec"`
}

type TwitterConfig struct {
	ApiBase    string `json:"api_base"` // https://api.twitter.com/1.1
	TimeoutSec int    `json:"timeout_sec"`
}

type Secrets struct {
	TwitterConsumerKey    string   `json:"twitter_consumer_key"`
	TwitterConsumerSecret string   `json:"twitter_consumer_secret"`
	ApiKeys               []string `json:"api_keys"`
	MetricsAuth           string   `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	return &config
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
