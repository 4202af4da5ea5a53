package config

type Config struct {
	Data       DataConfig     `mapstructure:"data"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type DataConfig struct {
	// Path of the ledger data file. Empty means the default location
	// under the user config dir.
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	// Currency is a display symbol only; amounts carry no currency
	// semantics.
	Currency string `mapstructure:"currency"`
}

func NewDefault() *Config {
	return &Config{
		Data:     DataConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: "$"},
	}
}
