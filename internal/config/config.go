package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddr     string `env:"RUN_ADDRESS"`
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Загрузка картинок
	UploadDir   string `env:"UPLOAD_DIR"`
	MaxUploadMB int    `env:"MAX_UPLOAD_MB"`

	// Seed-учётка создаётся при пустой таблице users только если
	// обе переменные заданы; дефолтов нет намеренно.
	AdminLogin    string `env:"ADMIN_LOGIN"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "адрес и порт сервера")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")
	flag.StringVar(&cfg.UploadDir, "upload-dir", cfg.UploadDir, "каталог для загружаемых картинок")
	flag.IntVar(&cfg.MaxUploadMB, "max-upload-mb", cfg.MaxUploadMB, "лимит размера загрузки, МБ")
	flag.StringVar(&cfg.AdminLogin, "admin-login", cfg.AdminLogin, "логин seed-учётки (пустой = не создавать)")
	flag.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "пароль seed-учётки")
	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "events.db"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "static/uploads"
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 10
	}
	// RunAddr должен быть в виде "address:port" (без схемы и пути)
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.RunAddr) {
		cfg.RunAddr = "localhost:4200"
	}

	return cfg
}
