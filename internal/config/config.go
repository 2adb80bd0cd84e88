package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig
	Camera CameraConfig
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string // リッスンするホスト
	Port int    // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout  time.Duration // 読み込みタイムアウト
	WriteTimeout time.Duration // 書き込みタイムアウト
}

// CameraConfig はカメラ関連のデフォルト設定
type CameraConfig struct {
	Facing    string  // 起動時のカメラの向き (front / back)
	Width     int     // 希望するフレーム幅
	Height    int     // 希望するフレーム高さ
	Platform  string  // プラットフォーム系統 (webkit / generic)
	ImageType string  // キャプチャのデフォルト形式 (png / jpg)
	Quality   float64 // jpgのデフォルトquality [0,1]

	// DevDiagnostics は交渉時の非致命的な警告をログへ出力する
	// 本番では無効（警告は破棄される）
	DevDiagnostics bool
}

// Load は設定を読み込む
// 環境変数が設定されていない項目はデフォルト値を使用する
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsIntOrDefault("PORT", 8080),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Camera: CameraConfig{
			Facing:         getEnvOrDefault("CAMERA_FACING", "back"),
			Width:          getEnvAsIntOrDefault("CAMERA_WIDTH", 1280),
			Height:         getEnvAsIntOrDefault("CAMERA_HEIGHT", 720),
			Platform:       getEnvOrDefault("CAMERA_PLATFORM", "generic"),
			ImageType:      getEnvOrDefault("CAPTURE_IMAGE_TYPE", "png"),
			Quality:        getEnvAsFloatOrDefault("CAPTURE_QUALITY", 0.92),
			DevDiagnostics: getEnvOrDefault("DEV_DIAGNOSTICS", "") != "",
		},
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	if c.Camera.Facing != "front" && c.Camera.Facing != "back" {
		return fmt.Errorf("無効なカメラの向き: %s", c.Camera.Facing)
	}

	if c.Camera.Platform != "webkit" && c.Camera.Platform != "generic" {
		return fmt.Errorf("無効なプラットフォーム系統: %s", c.Camera.Platform)
	}

	if c.Camera.ImageType != "png" && c.Camera.ImageType != "jpg" {
		return fmt.Errorf("無効な画像形式: %s", c.Camera.ImageType)
	}

	if c.Camera.Quality < 0 || c.Camera.Quality > 1 {
		return fmt.Errorf("無効なquality: %g", c.Camera.Quality)
	}

	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		return fmt.Errorf("無効なフレームサイズ: %dx%d", c.Camera.Width, c.Camera.Height)
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault は環境変数を浮動小数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
