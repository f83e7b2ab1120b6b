package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Auth     AuthConfig
	Stripe   StripeConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	CORS     CORSConfig
	LogLevel string
	Logstash string
}

type ServerConfig struct {
	Host string // Адрес хоста (по умолчанию 0.0.0.0)
	Port string // Порт сервера (по умолчанию 3001)
}

type MongoDBConfig struct {
	URI      string // URI подключения к MongoDB
	Database string // Имя базы данных
}

// AuthConfig - настройки проверки bearer токенов.
// firebase: ID токены Firebase Auth, jwt: HS256 токены с общим секретом
type AuthConfig struct {
	Provider  string
	JWTSecret string
	Firebase  FirebaseCredentials
}

// FirebaseCredentials - поля service account, каждое из своей переменной окружения
type FirebaseCredentials struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
	UniverseDomain          string `json:"universe_domain"`
}

type StripeConfig struct {
	SecretKey string
	Currency  string
}

// RedisConfig - кеш списка наименований товаров, отключен при пустом Addr
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// KafkaConfig - события маркетплейса, отключены при пустом списке брокеров
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type CORSConfig struct {
	AllowOrigins []string
}

func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("ITEM_NAMES_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid ITEM_NAMES_CACHE_TTL value: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("PORT", "3001"),
		},
		MongoDB: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "bazarDb"),
		},
		Auth: AuthConfig{
			Provider:  strings.ToLower(getEnv("AUTH_PROVIDER", AuthProviderFirebase)),
			JWTSecret: os.Getenv("JWT_SECRET"),
			Firebase: FirebaseCredentials{
				Type:                    os.Getenv("FIREBASE_type"),
				ProjectID:               os.Getenv("FIREBASE_project_id"),
				PrivateKeyID:            os.Getenv("FIREBASE_private_key_id"),
				PrivateKey:              strings.ReplaceAll(os.Getenv("FIREBASE_private_key"), `\n`, "\n"),
				ClientEmail:             os.Getenv("FIREBASE_client_email"),
				ClientID:                os.Getenv("FIREBASE_client_id"),
				AuthURI:                 os.Getenv("FIREBASE_auth_uri"),
				TokenURI:                os.Getenv("FIREBASE_token_uri"),
				AuthProviderX509CertURL: os.Getenv("FIREBASE_auth_provider_x509_cert_url"),
				ClientX509CertURL:       os.Getenv("FIREBASE_client_x509_cert_url"),
				UniverseDomain:          os.Getenv("FIREBASE_universe_domain"),
			},
		},
		Stripe: StripeConfig{
			SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
			Currency:  strings.ToLower(getEnv("STRIPE_CURRENCY", "usd")),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
			TTL:      ttl,
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   getEnv("KAFKA_TOPIC", "marketplace_events"),
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Logstash: os.Getenv("LOGSTASH_ADDR"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет, что для выбранного провайдера аутентификации заданы учетные данные
func (c *Config) Validate() error {
	switch c.Auth.Provider {
	case AuthProviderFirebase:
		if c.Auth.Firebase.ProjectID == "" || c.Auth.Firebase.PrivateKey == "" || c.Auth.Firebase.ClientEmail == "" {
			return errors.New("FIREBASE_project_id, FIREBASE_private_key and FIREBASE_client_email are required when AUTH_PROVIDER=firebase")
		}
	case AuthProviderJWT:
		if c.Auth.JWTSecret == "" {
			return errors.New("JWT_SECRET is required when AUTH_PROVIDER=jwt")
		}
	default:
		return fmt.Errorf("unsupported AUTH_PROVIDER %q", c.Auth.Provider)
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI is required")
	}

	return nil
}

// CredentialsJSON собирает service account JSON для Firebase Admin SDK
func (f FirebaseCredentials) CredentialsJSON() ([]byte, error) {
	return json.Marshal(f)
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
