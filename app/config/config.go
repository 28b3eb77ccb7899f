package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefix cho biến môi trường, ví dụ SHIPFORM_GEO_SHAPE
const EnvPrefix = "SHIPFORM"

// AppCfg cấu hình ứng dụng
type AppCfg struct {
	Env  string `mapstructure:"env" yaml:"env" json:"env"`
	Port string `mapstructure:"port" yaml:"port" json:"port"`
}

// GeoCfg cấu hình dataset hành chính
type GeoCfg struct {
	Shape         string `mapstructure:"shape" yaml:"shape" json:"shape"`                            // nested | flat
	NestedPath    string `mapstructure:"nested_path" yaml:"nested_path" json:"nested_path"`          // dataset dạng cây
	ProvincesPath string `mapstructure:"provinces_path" yaml:"provinces_path" json:"provinces_path"` // dataset phẳng: tỉnh
	WardsPath     string `mapstructure:"wards_path" yaml:"wards_path" json:"wards_path"`             // dataset phẳng: phường
	MatchPolicy   string `mapstructure:"match_policy" yaml:"match_policy" json:"match_policy"`       // code_or_path | code_only
}

// FormCfg cấu hình validation của form
type FormCfg struct {
	ValidateOn       string `mapstructure:"validate_on" yaml:"validate_on" json:"validate_on"`                   // submit | change
	DOBFormat        string `mapstructure:"dob_format" yaml:"dob_format" json:"dob_format"`                      // auto | iso | dmy
	ProvinceRequired string `mapstructure:"province_required" yaml:"province_required" json:"province_required"` // auto | true | false
}

// SessionsCfg cấu hình phiên form trong bộ nhớ
type SessionsCfg struct {
	Max int `mapstructure:"max" yaml:"max" json:"max"`
}

// Config cấu hình toàn bộ service
type Config struct {
	App      AppCfg      `mapstructure:"app" yaml:"app" json:"app"`
	Geo      GeoCfg      `mapstructure:"geo" yaml:"geo" json:"geo"`
	Form     FormCfg     `mapstructure:"form" yaml:"form" json:"form"`
	Sessions SessionsCfg `mapstructure:"sessions" yaml:"sessions" json:"sessions"`
}

// SetDefaults đặt giá trị mặc định
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("geo.shape", "nested")
	v.SetDefault("geo.nested_path", "data/nested/provinces.json")
	v.SetDefault("geo.provinces_path", "data/flat/provinces.json")
	v.SetDefault("geo.wards_path", "data/flat/wards.json")
	v.SetDefault("geo.match_policy", "code_or_path")
	v.SetDefault("form.validate_on", "submit")
	v.SetDefault("form.dob_format", "auto")
	v.SetDefault("form.province_required", "auto")
	v.SetDefault("sessions.max", 10000)
}

// Load đọc cấu hình từ file (nếu có) và biến môi trường.
// path rỗng thì tìm config/app.yaml hoặc ./app.yaml; thiếu file không phải lỗi.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("app")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("lỗi đọc file cấu hình: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("lỗi unmarshal cấu hình: %w", err)
	}
	return &c, nil
}

// IsProduction môi trường production
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
