package config

import (
	"os"
	"testing"
	"time"
)

// TestConfigLoad は設定の読み込みをテストする
func TestConfigLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg == nil {
		t.Fatal("設定がnilです")
	}

	// サーバー設定の検証
	if cfg.Server.Host == "" {
		t.Error("サーバーホストが設定されていません")
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		t.Errorf("無効なポート番号: %d", cfg.Server.Port)
	}

	// カメラ設定のデフォルト値の検証
	if cfg.Camera.Facing != "front" && cfg.Camera.Facing != "back" {
		t.Errorf("無効なカメラの向き: %s", cfg.Camera.Facing)
	}
	if cfg.Camera.Width <= 0 || cfg.Camera.Height <= 0 {
		t.Errorf("無効なフレームサイズ: %dx%d", cfg.Camera.Width, cfg.Camera.Height)
	}
	if cfg.Camera.Quality < 0 || cfg.Camera.Quality > 1 {
		t.Errorf("無効なquality: %g", cfg.Camera.Quality)
	}
}

// TestConfigValidation は設定の検証をテストする
func TestConfigValidation(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{
				Host:         "127.0.0.1",
				Port:         8080,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 30 * time.Second,
			},
			Camera: CameraConfig{
				Facing:    "back",
				Width:     1280,
				Height:    720,
				Platform:  "generic",
				ImageType: "png",
				Quality:   0.92,
			},
		}
	}

	testCases := []struct {
		name      string
		mutate    func(*Config)
		expectErr bool
	}{
		{"有効な設定", func(*Config) {}, false},
		{"無効なポート", func(c *Config) { c.Server.Port = 0 }, true},
		{"無効な向き", func(c *Config) { c.Camera.Facing = "up" }, true},
		{"無効なプラットフォーム", func(c *Config) { c.Camera.Platform = "gecko" }, true},
		{"無効な画像形式", func(c *Config) { c.Camera.ImageType = "gif" }, true},
		{"無効なquality", func(c *Config) { c.Camera.Quality = 1.5 }, true},
		{"無効なフレームサイズ", func(c *Config) { c.Camera.Width = 0 }, true},
		{"webkit系統", func(c *Config) { c.Camera.Platform = "webkit" }, false},
		{"jpg形式", func(c *Config) { c.Camera.ImageType = "jpg" }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.expectErr && err == nil {
				t.Error("エラーが期待されましたが発生しませんでした")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("予期しないエラー: %v", err)
			}
		})
	}
}

// TestConfigEnvOverride は環境変数による設定の上書きをテストする
func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("CAMERA_FACING", "front")
	t.Setenv("CAPTURE_IMAGE_TYPE", "jpg")
	t.Setenv("CAPTURE_QUALITY", "0.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg.Camera.Facing != "front" {
		t.Errorf("Expected facing front, got %s", cfg.Camera.Facing)
	}
	if cfg.Camera.ImageType != "jpg" {
		t.Errorf("Expected jpg, got %s", cfg.Camera.ImageType)
	}
	if cfg.Camera.Quality != 0.5 {
		t.Errorf("Expected quality 0.5, got %g", cfg.Camera.Quality)
	}
}

// TestServerAddress はリッスンアドレスの生成をテストする
func TestServerAddress(t *testing.T) {
	// 環境変数の影響を避ける
	os.Unsetenv("SERVER_HOST")
	os.Unsetenv("PORT")

	cfg := &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 9000},
	}
	if got := cfg.ServerAddress(); got != "127.0.0.1:9000" {
		t.Errorf("Expected 127.0.0.1:9000, got %s", got)
	}
}
