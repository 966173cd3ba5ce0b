package programs

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config selects the program deployments the bindings target, and how
// account data is trusted.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	VaultProgramAddress     string `mapstructure:"vault_program_address"`
	RestakingProgramAddress string `mapstructure:"restaking_program_address"`

	// VerifyAccountDiscriminators rejects account data whose leading
	// discriminator doesn't match the expected account type. When disabled,
	// account data is decoded as whatever type the caller asks for.
	VerifyAccountDiscriminators bool `mapstructure:"verify_account_discriminators"`
}

var defaultConfig = Config{
	LogLevel:  "info",
	LogFormat: "text",

	VaultProgramAddress:     "Vau1t6sLNxnzB7ZDsef8TLbPLfyZMYXH8WTNqUdm9g8",
	RestakingProgramAddress: "RestkWeAVL8fRGgzhfeoqFhsqKRchg6aa1XrcH96z4Q",

	VerifyAccountDiscriminators: false,
}

var envBindings = map[string]string{
	"log_level":  "LOG_LEVEL",
	"log_format": "LOG_FORMAT",

	"vault_program_address":     "VAULT_PROGRAM_ADDRESS",
	"restaking_program_address": "RESTAKING_PROGRAM_ADDRESS",

	"verify_account_discriminators": "VERIFY_ACCOUNT_DISCRIMINATORS",
}

func init() {
	bindEnv(viper.GetViper())
}

func bindEnv(v *viper.Viper) {
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
}

// DefaultConfig returns the configuration targeting the canonical
// deployments.
func DefaultConfig() *Config {
	config := defaultConfig
	return &config
}

// NewViper returns a viper instance with the environment bindings for Config.
func NewViper() *viper.Viper {
	v := viper.New()
	bindEnv(v)
	return v
}

// LoadConfig reads Config from v, falling back to defaults for unset keys.
// A nil v uses the global viper instance.
func LoadConfig(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.GetViper()
	}

	config := defaultConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if len(config.VaultProgramAddress) == 0 {
		return nil, errors.New("vault program address is required")
	}
	if len(config.RestakingProgramAddress) == 0 {
		return nil, errors.New("restaking program address is required")
	}

	return &config, nil
}

// ConfigureLogger applies the configured level and format to the standard
// logger.
func ConfigureLogger(config *Config) {
	switch strings.ToLower(config.LogFormat) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(strings.ToLower(config.LogLevel))
	if err != nil {
		logrus.StandardLogger().WithField("log_level", config.LogLevel).Warn("unknown log level, ignoring")
	} else {
		logrus.SetLevel(level)
	}
}
