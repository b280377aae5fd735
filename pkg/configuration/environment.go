package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/atendezap/atendezap/pkg/logging"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

type DatabaseOptions struct {
	Opts     string `env:"-"`
	Name     string `env:"DB_NAME" envDefault:"atendezap"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
}

func (d *DatabaseOptions) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Name, d.Password,
	)
}

type GroqOptions struct {
	APIKey  string `env:"GROQ_API_KEY"`
	BaseURL string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	// Comma-separated model lists, one env var per tier, tried in tier order.
	TierPrimary   string `env:"GROQ_MODELS_PRIMARY" envDefault:"llama-3.3-70b-versatile"`
	TierSecondary string `env:"GROQ_MODELS_SECONDARY" envDefault:"llama-3.1-8b-instant,gemma2-9b-it"`
	TierFallback  string `env:"GROQ_MODELS_FALLBACK" envDefault:"mixtral-8x7b-32768"`
	MaxTokens     int    `env:"GROQ_MAX_TOKENS" envDefault:"1024"`
}

type OpenRouterOptions struct {
	APIKey    string `env:"OPENROUTER_API_KEY"`
	BaseURL   string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	Models    string `env:"OPENROUTER_MODELS" envDefault:"meta-llama/llama-3.3-70b-instruct:free,google/gemini-2.0-flash-exp:free"`
	Referer   string `env:"OPENROUTER_REFERER" envDefault:"https://atendezap.com.br"`
	Title     string `env:"OPENROUTER_TITLE" envDefault:"AtendeZap"`
	MaxTokens int    `env:"OPENROUTER_MAX_TOKENS" envDefault:"2048"`
}

type AIOptions struct {
	Temperature    float64       `env:"AI_TEMPERATURE" envDefault:"0.7"`
	AttemptTimeout time.Duration `env:"AI_ATTEMPT_TIMEOUT" envDefault:"30s"`

	ReplyCacheEnabled bool          `env:"AI_REPLY_CACHE_ENABLED" envDefault:"false"`
	ReplyCachePrefix  string        `env:"AI_REPLY_CACHE_PREFIX" envDefault:"assistant:replies"`
	ReplyCacheTTL     time.Duration `env:"AI_REPLY_CACHE_TTL" envDefault:"15m"`
}

// Validate checks the AI configuration for errors.
func (a *AIOptions) Validate() error {
	if a.Temperature < 0 || a.Temperature > 2 {
		return fmt.Errorf("AI_TEMPERATURE must be within [0, 2], got %g", a.Temperature)
	}
	if a.AttemptTimeout <= 0 {
		return fmt.Errorf("AI_ATTEMPT_TIMEOUT must be positive, got %s", a.AttemptTimeout)
	}
	return nil
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"false"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

type Configuration struct {
	Database   DatabaseOptions
	Groq       GroqOptions
	OpenRouter OpenRouterOptions
	AI         AIOptions
	Prometheus PrometheusOptions

	RedisURL         string        `env:"REDIS_URL" envDefault:"localhost:6379"`
	ServerPort       int           `env:"PORT" envDefault:"3200"`
	GoAppEnvironment string        `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress    string        `env:"-"`
	Domain           string        `env:"DOMAIN" envDefault:"localhost"`
	Origin           string        `env:"ORIGIN" envDefault:"http://localhost:3200"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"error"`
	LogPath          string        `env:"LOG_PATH" envDefault:"./logs/app.log"`
	PageSize         int           `env:"PAGE_SIZE" envDefault:"25"`
	MaxPageSize      int           `env:"MAX_PAGE_SIZE" envDefault:"100"`

	// The server looks for this header in the request, if it's not present, it will generate a random uuidv4
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	// The server looks for this header in the request, if it's not present, it will use request.RemoteAddr
	RealIPHeader string `env:"REAL_IP_HEADER" envDefault:"X-Real-IP"`
	// Tenant resolution header carrying the matricula identifier.
	TenantHeader string `env:"TENANT_HEADER" envDefault:"X-Matricula"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func (c *Configuration) Scheme() string {
	if c.GoAppEnvironment == Production { // assume 'https' on production mode
		return "https"
	}
	return "http"
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}

	if err := c.AI.Validate(); err != nil {
		return fmt.Errorf("ai configuration error: %w", err)
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger

	c.Database.Opts = c.Database.ConnectionString()
	if c.GoAppEnvironment == Production {
		c.SocketAddress = fmt.Sprintf(":%d", c.ServerPort)
	} else {
		c.SocketAddress = fmt.Sprintf("localhost:%d", c.ServerPort)
	}

	// Update Domain and Origin dynamically if they weren't explicitly set via
	// environment variables so logs show the correct port when PORT is set.
	if os.Getenv("DOMAIN") == "" {
		c.Domain = "localhost"
	}
	if os.Getenv("ORIGIN") == "" {
		if c.GoAppEnvironment == "development" {
			c.Origin = fmt.Sprintf("%s://%s:%d", c.Scheme(), c.Domain, c.ServerPort)
		} else {
			c.Origin = fmt.Sprintf("%s://%s", c.Scheme(), c.Domain)
		}
	}

	return nil
}

// GroqTiers returns the configured Groq model lists in priority order,
// skipping empty tiers.
func (c *Configuration) GroqTiers() [][]string {
	tiers := make([][]string, 0, 3)
	for _, raw := range []string{c.Groq.TierPrimary, c.Groq.TierSecondary, c.Groq.TierFallback} {
		models := SplitModelList(raw)
		if len(models) > 0 {
			tiers = append(tiers, models)
		}
	}
	return tiers
}

// OpenRouterModels returns the configured OpenRouter model list.
func (c *Configuration) OpenRouterModels() []string {
	return SplitModelList(c.OpenRouter.Models)
}

func SplitModelList(raw string) []string {
	parts := strings.Split(raw, ",")
	models := make([]string, 0, len(parts))
	for _, part := range parts {
		if m := strings.TrimSpace(part); m != "" {
			models = append(models, m)
		}
	}
	return models
}

// Unload handles a graceful shutdown.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}
