package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	VietQR    VietQRConfig
	Bank      BankDefaultsConfig
	Shop      ShopConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// StorageConfig selects where the local key-value documents live.
// Driver is "file" (a single JSON file under Path) or "postgres".
type StorageConfig struct {
	Driver              string
	Path                string
	KVFile              string
	QRCacheFile         string
	DefaultProductImage string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type VietQRConfig struct {
	ImageBaseURL  string
	BanksURL      string
	Template      string
	Timeout       time.Duration
	FetchPerSec   float64
	PaymentPrefix string
}

// BankDefaultsConfig is the single fallback account used when settings are unset.
type BankDefaultsConfig struct {
	BankCode      string
	AccountNumber string
	AccountName   string
}

type ShopConfig struct {
	Name     string
	Address  string
	Phone    string
	Timezone string
}

type PrinterConfig struct {
	Type      string
	USBPath   string
	Address   string
	CharWidth int
}

// CORSConfig lists what browser clients may call. Lists are comma separated
// in the environment; an origin of "*" allows any origin without credentials.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           time.Duration
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Warnf(".env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "booth-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("STORAGE_PATH", "./storage")
	viper.SetDefault("STORAGE_KV_FILE", "store.json")
	viper.SetDefault("QR_CACHE_FILE", "Cache.json")
	viper.SetDefault("DEFAULT_PRODUCT_IMAGE", "assets/images/default-product.png")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "booth_pos")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Ho_Chi_Minh")
	viper.SetDefault("VIETQR_IMAGE_BASE_URL", "https://img.vietqr.io/image")
	viper.SetDefault("VIETQR_BANKS_URL", "https://api.vietqr.io/v2/banks")
	viper.SetDefault("VIETQR_TEMPLATE", "compact2")
	viper.SetDefault("VIETQR_TIMEOUT_SECONDS", 15)
	viper.SetDefault("VIETQR_FETCH_PER_SECOND", 5)
	viper.SetDefault("VIETQR_PAYMENT_PREFIX", "Thanh toan")
	viper.SetDefault("BANK_DEFAULT_CODE", "CAKE")
	viper.SetDefault("BANK_DEFAULT_ACCOUNT_NUMBER", "0862435375")
	viper.SetDefault("BANK_DEFAULT_ACCOUNT_NAME", "NGUYEN THANH NAM")
	viper.SetDefault("SHOP_NAME", "BOOTH CIRCLE K")
	viper.SetDefault("SHOP_ADDRESS", "160 Bui Thi Xuan, Q.1, Tp.HCM, Viet Nam")
	viper.SetDefault("SHOP_PHONE", "+84 (28) 3620 9017")
	viper.SetDefault("SHOP_TIMEZONE", "Asia/Ho_Chi_Minh")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_CHAR_WIDTH", 32)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8081,http://localhost:19006")
	viper.SetDefault("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS")
	viper.SetDefault("CORS_ALLOWED_HEADERS", "Accept,Content-Type,Origin,X-Request-ID")
	viper.SetDefault("CORS_ALLOW_CREDENTIALS", false)
	viper.SetDefault("CORS_MAX_AGE_HOURS", 12)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_FILE", "")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Storage: StorageConfig{
			Driver:              viper.GetString("STORAGE_DRIVER"),
			Path:                viper.GetString("STORAGE_PATH"),
			KVFile:              viper.GetString("STORAGE_KV_FILE"),
			QRCacheFile:         viper.GetString("QR_CACHE_FILE"),
			DefaultProductImage: viper.GetString("DEFAULT_PRODUCT_IMAGE"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		VietQR: VietQRConfig{
			ImageBaseURL:  viper.GetString("VIETQR_IMAGE_BASE_URL"),
			BanksURL:      viper.GetString("VIETQR_BANKS_URL"),
			Template:      viper.GetString("VIETQR_TEMPLATE"),
			Timeout:       time.Duration(viper.GetInt("VIETQR_TIMEOUT_SECONDS")) * time.Second,
			FetchPerSec:   viper.GetFloat64("VIETQR_FETCH_PER_SECOND"),
			PaymentPrefix: viper.GetString("VIETQR_PAYMENT_PREFIX"),
		},
		Bank: BankDefaultsConfig{
			BankCode:      viper.GetString("BANK_DEFAULT_CODE"),
			AccountNumber: viper.GetString("BANK_DEFAULT_ACCOUNT_NUMBER"),
			AccountName:   viper.GetString("BANK_DEFAULT_ACCOUNT_NAME"),
		},
		Shop: ShopConfig{
			Name:     viper.GetString("SHOP_NAME"),
			Address:  viper.GetString("SHOP_ADDRESS"),
			Phone:    viper.GetString("SHOP_PHONE"),
			Timezone: viper.GetString("SHOP_TIMEZONE"),
		},
		Printer: PrinterConfig{
			Type:      viper.GetString("PRINTER_TYPE"),
			USBPath:   viper.GetString("PRINTER_USB_PATH"),
			Address:   viper.GetString("PRINTER_ADDRESS"),
			CharWidth: viper.GetInt("PRINTER_CHAR_WIDTH"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
			AllowedMethods:   splitList(viper.GetString("CORS_ALLOWED_METHODS")),
			AllowedHeaders:   splitList(viper.GetString("CORS_ALLOWED_HEADERS")),
			AllowCredentials: viper.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           time.Duration(viper.GetInt("CORS_MAX_AGE_HOURS")) * time.Hour,
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
			File:   viper.GetString("LOG_FILE"),
		},
	}
}

// splitList splits a comma separated value, dropping blanks
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}

// KVFilePath returns the full path of the file-backed key-value store.
func (c *StorageConfig) KVFilePath() string {
	return filepath.Join(c.Path, c.KVFile)
}

// QRCachePath returns the full path of the QR cache document.
func (c *StorageConfig) QRCachePath() string {
	return filepath.Join(c.Path, c.QRCacheFile)
}

// Location resolves the shop timezone, falling back to UTC+7.
func (c *ShopConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}
