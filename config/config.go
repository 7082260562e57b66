// Ininicializing common application configuration
package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	App    AppConfig    `mapstructure:"app"`
	Vision VisionConfig `mapstructure:"vision"`
}

type ServerConfig struct {
	AppVersion   string `json:"appVersion"`
	Host         string `json:"host" validate:"required"`
	Port         string `json:"port" validate:"required"`
	Timeout      time.Duration
	Idle_timeout time.Duration
	Env          string `json:"environment"`
	Mode         string `mapstructure:"mode"`
}

type AppConfig struct {
	AssetsDir      string   `mapstructure:"assets_dir"`
	FontCandidates []string `mapstructure:"font_candidates"`
	JPEGQuality    int      `mapstructure:"jpeg_quality"`
}

type VisionConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	APIKey  string `mapstructure:"api_key"`
}

func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadInConfig()

	if err != nil {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode config into struct, %v", err)
		return nil, err
	}

	// secrets come from the environment, not from yaml
	if c.Vision.APIKey == "" {
		c.Vision.APIKey = GetEnv("OPENAI_API_KEY", "")
	}

	if c.App.AssetsDir == "" {
		c.App.AssetsDir = "./static/filters"
	}
	if c.App.JPEGQuality == 0 {
		c.App.JPEGQuality = 92
	}
	if len(c.App.FontCandidates) == 0 {
		c.App.FontCandidates = []string{"Impact.ttf", "impact.ttf", "Arial.ttf", "arial.ttf"}
	}

	return &c, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
