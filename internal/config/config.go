package config

import (
	"errors"
	"io/fs"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port         string
	DBDSN        string
	MediaDir     string
	LogFile      string
	TemplatesDir string
	StaticDir    string
	BodyLimitMB  int
	CookieSecure bool

	AdminUser     string
	AdminPassword string

	// NotifyURL receives enquiry notifications as JSON. Empty sends them through the mailer in process.
	NotifyURL     string
	NotifyTimeout time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailTo       string
}

func defaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db_dsn", "omoro.db") // sqlite file in project root
	v.SetDefault("media_dir", "./web/media")
	v.SetDefault("log_file", "./omoro.log")
	v.SetDefault("templates_dir", "./web/templates")
	v.SetDefault("static_dir", "./web/static")
	v.SetDefault("body_limit_mb", 16)
	v.SetDefault("cookie_secure", false)
	v.SetDefault("admin_user", "admin")
	v.SetDefault("admin_password", "admin123")
	v.SetDefault("notify_url", "")
	v.SetDefault("notify_timeout", "10s")
	v.SetDefault("smtp_host", "")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("smtp_user", "")
	v.SetDefault("smtp_password", "")
	v.SetDefault("mail_from", "")
	v.SetDefault("mail_to", "")
}

// Load reads .env (if any), then an optional omoro.yaml, then the environment.
// file overrides the config file location; empty means search the working directory.
func Load(file ...string) Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[config] no .env loaded: %v", err)
	}

	v := viper.New()
	defaults(v)
	if len(file) > 0 && file[0] != "" {
		v.SetConfigFile(file[0])
	} else {
		v.SetConfigName("omoro")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			log.Printf("[config] ignoring config file: %v", err)
		}
	}
	v.AutomaticEnv()

	cfg := Config{
		Port:          v.GetString("port"),
		DBDSN:         v.GetString("db_dsn"),
		MediaDir:      v.GetString("media_dir"),
		LogFile:       v.GetString("log_file"),
		TemplatesDir:  v.GetString("templates_dir"),
		StaticDir:     v.GetString("static_dir"),
		BodyLimitMB:   v.GetInt("body_limit_mb"),
		CookieSecure:  v.GetBool("cookie_secure"),
		AdminUser:     v.GetString("admin_user"),
		AdminPassword: v.GetString("admin_password"),
		NotifyURL:     v.GetString("notify_url"),
		NotifyTimeout: v.GetDuration("notify_timeout"),
		SMTPHost:      v.GetString("smtp_host"),
		SMTPPort:      v.GetInt("smtp_port"),
		SMTPUser:      v.GetString("smtp_user"),
		SMTPPassword:  v.GetString("smtp_password"),
		MailFrom:      v.GetString("mail_from"),
		MailTo:        v.GetString("mail_to"),
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = 10 * time.Second
	}
	if cfg.BodyLimitMB <= 0 {
		cfg.BodyLimitMB = 16
	}

	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s SMTP_HOST=%q NOTIFY_URL=%s",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile, cfg.SMTPHost, cfg.NotifyURL)
	return cfg
}
