package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（5000）

	MongoURI string // MongoDB接続URI
	MongoDB  string // DB名

	JWTSecret string // JWT署名シークレット

	GoEnv        string // dev/prod
	FEURL        string // フロントURL（CORSで使う）
	CookieSecure bool   // Secure cookieを使うか（devはfalse可）
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		MongoURI: os.Getenv("MONGODB_URI"),
		MongoDB:  os.Getenv("MONGODB_DB"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		GoEnv:        os.Getenv("GO_ENV"),
		FEURL:        os.Getenv("FE_URL"),
		CookieSecure: envBool("COOKIE_SECURE", true),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.MongoDB == "" {
		return Config{}, fmt.Errorf("MONGODB_DB is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.FEURL == "" {
		return Config{}, fmt.Errorf("FE_URL is required")
	}

	return cfg, nil
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
