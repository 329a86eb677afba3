package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB     DBConfig
	Server ServerConfig
	App    AppConfig
	Logger LoggerConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AppConfig struct {
	QuestionsPerPage int
}

type LoggerConfig struct {
	Env   string
	Level string
}

// DSN builds a Postgres connection string for the pgx stdlib driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("app.questions_per_page", 10)
	viper.SetDefault("logger.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		App: AppConfig{
			QuestionsPerPage: viper.GetInt("app.questions_per_page"),
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
	}

	// Environment variables win over the config file.
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.DB.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if perPage := os.Getenv("QUESTIONS_PER_PAGE"); perPage != "" {
		if n, err := strconv.Atoi(perPage); err == nil {
			config.App.QuestionsPerPage = n
		}
	}

	return config, nil
}
