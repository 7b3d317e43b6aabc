package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env string `mapstructure:"env"`
	} `mapstructure:"app"`
	Storage struct {
		// Driver selects the record store backend: memory, file, redis or postgres.
		Driver   string `mapstructure:"driver"`
		FilePath string `mapstructure:"file_path"`
	} `mapstructure:"storage"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Extraction struct {
		Delay   time.Duration `mapstructure:"delay"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"extraction"`
}

func Load() (cfg Config, err error) {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, using environment only")
	}

	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, reading environment only: %v", err)
	}

	v.SetDefault("app.env", "development")
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.file_path", "roster_portfolios.json")
	v.SetDefault("extraction.delay", time.Second)
	v.SetDefault("extraction.timeout", 30*time.Second)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("storage.driver", "STORAGE_DRIVER")
	v.BindEnv("storage.file_path", "STORAGE_FILE_PATH")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("extraction.delay", "EXTRACTION_DELAY")
	v.BindEnv("extraction.timeout", "EXTRACTION_TIMEOUT")

	err = v.Unmarshal(&cfg)
	return
}
