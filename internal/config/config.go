package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Meli      Meli      `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	OrderSync OrderSync `mapstructure:",squash"`
	SecretKey string    `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN         string `mapstructure:"database_dsn"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

// Meli agrupa as credenciais da aplicação registrada no Mercado Libre
type Meli struct {
	APIURL       string `mapstructure:"meli_api_url"`
	AuthURL      string `mapstructure:"meli_auth_url"`
	ClientID     string `mapstructure:"meli_client_id"`
	ClientSecret string `mapstructure:"meli_client_secret"`
	RedirectURI  string `mapstructure:"meli_redirect_uri"`
	SellerID     string `mapstructure:"meli_seller_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	AdminEmail        string        `mapstructure:"auth_admin_email"`
	AdminPasswordHash string        `mapstructure:"auth_admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

type OrderSync struct {
	CronSchedule string `mapstructure:"order_sync_cron"`
	Limit        int    `mapstructure:"order_sync_limit"`
	Enabled      bool   `mapstructure:"order_sync_enabled"`
}

// HasOAuthCredentials indica se o fluxo OAuth pode ser executado
func (m Meli) HasOAuthCredentials() bool {
	return m.ClientID != "" && m.ClientSecret != "" && m.RedirectURI != ""
}

// SellerIDValue converte o seller configurado. Retorna 0 quando ausente ou inválido.
func (m Meli) SellerIDValue() int64 {
	if m.SellerID == "" {
		return 0
	}

	id, err := strconv.ParseInt(m.SellerID, 10, 64)
	if err != nil {
		logrus.WithField("seller_id", m.SellerID).Warn("MELI_SELLER_ID inválido, ignorando")
		return 0
	}

	return id
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/meli_sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", false)

	viper.SetDefault("MELI_API_URL", "https://api.mercadolibre.com")
	viper.SetDefault("MELI_AUTH_URL", "https://auth.mercadolibre.com.ar")
	viper.SetDefault("MELI_CLIENT_ID", "")
	viper.SetDefault("MELI_CLIENT_SECRET", "")
	viper.SetDefault("MELI_REDIRECT_URI", "")
	viper.SetDefault("MELI_SELLER_ID", "")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "") // vazio desabilita a autenticação
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("ORDER_SYNC_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("ORDER_SYNC_LIMIT", 20)
	viper.SetDefault("ORDER_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Auth.Secret == "" {
		config.Auth.Secret = config.SecretKey
	}

	if config.Database.DSN == "" {
		config.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			config.Database.Driver,
			config.Database.User,
			config.Database.Password,
			config.Database.URL,
		)
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
