package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const VERSION = "1.4"

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Mongo       MongoConfig
	Security    SecurityConfig
	Tracing     TracingConfig
	SMTP        SMTPConfig
	Voice       VoiceConfig
	Media       MediaConfig
	Storefront  StorefrontConfig
	Forms       FormsConfig
	APIEndpoint string
	RootEmail   string
	RootPass    string
	Environment string
	LogLevel    string
	Timezone    string
	Version     string
}

type ServerConfig struct {
	Port int
	Host string
	SSL  SSLConfig

	// CORSAllowOrigin is echoed in Access-Control-Allow-Origin
	CORSAllowOrigin string
}

type SSLConfig struct {
	Enabled  bool
	CertFile string
	KeyFile  string
}

type DatabaseConfig struct {
	// URL, when set, takes precedence over the discrete fields below
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type MongoConfig struct {
	URI      string
	Database string
}

type SecurityConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type TracingConfig struct {
	Enabled             bool
	ServiceName         string
	SamplingProbability float64

	// "jaeger", "zipkin", "stackdriver", "datadog", "xray", "none"
	TraceExporter  string
	JaegerEndpoint string
	ZipkinEndpoint string

	// comma separated: "prometheus", "stackdriver", "datadog", "none"
	MetricsExporter string
	PrometheusPort  int

	StackdriverProjectID string
	DatadogAgentAddress  string
	DatadogAPIKey        string
	XRayRegion           string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// VoiceConfig holds credentials of the call provider (Twilio-compatible REST API)
type VoiceConfig struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	FromNumber string
	TwimlURL   string
}

// MediaConfig points at an S3-compatible bucket fronted by a CDN
type MediaConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PublicURL string
}

type StorefrontConfig struct {
	ShopifyDomain      string
	ShopifyAccessToken string
	WooBaseURL         string
	WooConsumerKey     string
	WooConsumerSecret  string
}

type FormsConfig struct {
	BaseURL       string
	APIKey        string
	APISecret     string
	WebhookSecret string
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("CORS_ALLOW_ORIGIN", "*")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "salesdesk")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "salesdesk")
	v.SetDefault("JWT_TTL", "12h")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("VERSION", VERSION)

	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "SalesDesk")

	v.SetDefault("VOICE_BASE_URL", "https://api.twilio.com")
	v.SetDefault("MEDIA_REGION", "us-east-1")

	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "salesdesk-api")
	v.SetDefault("TRACING_SAMPLING_PROBABILITY", 0.1)
	v.SetDefault("TRACING_TRACE_EXPORTER", "none")
	v.SetDefault("TRACING_JAEGER_ENDPOINT", "http://localhost:14268/api/traces")
	v.SetDefault("TRACING_ZIPKIN_ENDPOINT", "http://localhost:9411/api/v2/spans")
	v.SetDefault("TRACING_METRICS_EXPORTER", "none")
	v.SetDefault("TRACING_PROMETHEUS_PORT", 9464)
	v.SetDefault("TRACING_DATADOG_AGENT_ADDRESS", "localhost:8126")

	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	jwtSecret := v.GetString("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if len(jwtSecret) < 16 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}

	tokenTTL, err := time.ParseDuration(v.GetString("JWT_TTL"))
	if err != nil {
		return nil, fmt.Errorf("error parsing JWT_TTL: %w", err)
	}

	timezone := v.GetString("TIMEZONE")
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", timezone, err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
			SSL: SSLConfig{
				Enabled:  v.GetBool("SSL_ENABLED"),
				CertFile: v.GetString("SSL_CERT_FILE"),
				KeyFile:  v.GetString("SSL_KEY_FILE"),
			},
			CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGIN"),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Mongo: MongoConfig{
			URI:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DB"),
		},
		Security: SecurityConfig{
			JWTSecret: jwtSecret,
			TokenTTL:  tokenTTL,
		},
		SMTP: SMTPConfig{
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			Username:  v.GetString("SMTP_USERNAME"),
			Password:  v.GetString("SMTP_PASSWORD"),
			FromEmail: v.GetString("SMTP_FROM_EMAIL"),
			FromName:  v.GetString("SMTP_FROM_NAME"),
		},
		Voice: VoiceConfig{
			BaseURL:    v.GetString("VOICE_BASE_URL"),
			AccountSID: v.GetString("VOICE_ACCOUNT_SID"),
			AuthToken:  v.GetString("VOICE_AUTH_TOKEN"),
			FromNumber: v.GetString("VOICE_FROM_NUMBER"),
			TwimlURL:   v.GetString("VOICE_TWIML_URL"),
		},
		Media: MediaConfig{
			Bucket:    v.GetString("MEDIA_BUCKET"),
			Region:    v.GetString("MEDIA_REGION"),
			Endpoint:  v.GetString("MEDIA_ENDPOINT"),
			AccessKey: v.GetString("MEDIA_ACCESS_KEY"),
			SecretKey: v.GetString("MEDIA_SECRET_KEY"),
			PublicURL: v.GetString("MEDIA_PUBLIC_URL"),
		},
		Storefront: StorefrontConfig{
			ShopifyDomain:      v.GetString("SHOPIFY_DOMAIN"),
			ShopifyAccessToken: v.GetString("SHOPIFY_ACCESS_TOKEN"),
			WooBaseURL:         v.GetString("WOO_BASE_URL"),
			WooConsumerKey:     v.GetString("WOO_CONSUMER_KEY"),
			WooConsumerSecret:  v.GetString("WOO_CONSUMER_SECRET"),
		},
		Forms: FormsConfig{
			BaseURL:       v.GetString("FORMS_BASE_URL"),
			APIKey:        v.GetString("FORMS_API_KEY"),
			APISecret:     v.GetString("FORMS_API_SECRET"),
			WebhookSecret: v.GetString("FORMS_WEBHOOK_SECRET"),
		},
		Tracing: TracingConfig{
			Enabled:             v.GetBool("TRACING_ENABLED"),
			ServiceName:         v.GetString("TRACING_SERVICE_NAME"),
			SamplingProbability: v.GetFloat64("TRACING_SAMPLING_PROBABILITY"),
			TraceExporter:       v.GetString("TRACING_TRACE_EXPORTER"),
			JaegerEndpoint:      v.GetString("TRACING_JAEGER_ENDPOINT"),
			ZipkinEndpoint:      v.GetString("TRACING_ZIPKIN_ENDPOINT"),
			MetricsExporter:     v.GetString("TRACING_METRICS_EXPORTER"),
			PrometheusPort:      v.GetInt("TRACING_PROMETHEUS_PORT"),

			StackdriverProjectID: v.GetString("TRACING_STACKDRIVER_PROJECT_ID"),
			DatadogAgentAddress:  v.GetString("TRACING_DATADOG_AGENT_ADDRESS"),
			DatadogAPIKey:        v.GetString("TRACING_DATADOG_API_KEY"),
			XRayRegion:           v.GetString("TRACING_XRAY_REGION"),
		},
		APIEndpoint: v.GetString("API_ENDPOINT"),
		RootEmail:   v.GetString("ROOT_EMAIL"),
		RootPass:    v.GetString("ROOT_PASSWORD"),
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Timezone:    timezone,
		Version:     v.GetString("VERSION"),
	}

	return config, nil
}

// Location returns the configured timezone, UTC when it cannot be loaded
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// MediaEnabled reports whether media uploads have a bucket to write to
func (c *Config) MediaEnabled() bool {
	return c.Media.Bucket != ""
}
