package config

import (
	"fmt"
	"time"
)

type Config struct {
	Env              string                  `env:"ENV,default=local"`
	Logger           LoggerConfig            `env:",prefix=LOGGER_"`
	Observability    ObservabilityHTTPConfig `env:",prefix=OBSERVABILITY_"`
	ShutdownDuration time.Duration           `env:"SHUTDOWN_DURATION,default=30s"`
	DB               SQLiteConfig            `env:",prefix=DB_"`
	Telegram         TelegramConfig          `env:",prefix=TELEGRAM_"`
	RecipeAPI        RecipeAPIConfig         `env:",prefix=RECIPE_API_"`
	Spoonacular      SpoonacularConfig       `env:",prefix=SPOONACULAR_"`
	Sessions         SessionsConfig          `env:",prefix=SESSIONS_"`
	APIServer        APIServerConfig         `env:",prefix=API_"`
}

type TelegramConfig struct {
	BotToken string        `env:"BOT_TOKEN"`
	Timeout  time.Duration `env:"TIMEOUT,default=30s"`
}

// RecipeAPIConfig - клиент CRUD-сервиса рецептов
type RecipeAPIConfig struct {
	BaseURL string        `env:"BASE_URL,default=http://127.0.0.1:8080"`
	Timeout time.Duration `env:"TIMEOUT,default=10s"`
}

// SpoonacularConfig - внешний сервис поиска ингредиентов
type SpoonacularConfig struct {
	SearchURL string        `env:"SEARCH_URL,default=https://api.spoonacular.com/food/ingredients/search"`
	ImageURL  string        `env:"IMAGE_URL,default=https://img.spoonacular.com"`
	APIKey    string        `env:"API_KEY"`
	ImageSize int           `env:"IMAGE_SIZE,default=500"`
	Timeout   time.Duration `env:"TIMEOUT,default=10s"`
	RateLimit struct {
		Burst int     `env:"BURST,default=1"`
		RPS   float64 `env:"RPS,default=5.0"`
	} `env:",prefix=RATE_LIMIT_"`
}

// SessionsConfig - время жизни незавершённых операций в чатах
type SessionsConfig struct {
	TTL       time.Duration `env:"TTL,default=30m"`
	SweepSpec string        `env:"SWEEP_SPEC,default=* * * * *"`
}

type APIServerConfig struct {
	Host         string        `env:"HOST,default=127.0.0.1"`
	Port         uint16        `env:"PORT,default=8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT,default=1m"`
}

func (a APIServerConfig) ADDR() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

type LoggerConfig struct {
	Level string `env:"LEVEL,default=debug"`
}

type ObservabilityHTTPConfig struct {
	Host         string        `env:"HOST,default=127.0.0.1"`
	Port         uint16        `env:"PORT,default=8383"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT,default=1m"`
}

func (a ObservabilityHTTPConfig) ADDR() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

type SQLiteConfig struct {
	// cache=shared обязателен для базы в памяти: без него каждое
	// соединение пула получает свою пустую базу
	Path         string `env:"PATH,default=file::memory:?cache=shared"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS,default=25"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS,default=5"`
	MaxLifetime  string `env:"MAX_LIFETIME,default=5m"`
}
