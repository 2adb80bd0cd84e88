// Package main はSetsunaサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"setsuna/internal/camera"
	"setsuna/internal/config"
	"setsuna/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		host   = flag.String("host", "", "サーバーのホスト (デフォルト: 0.0.0.0)")
		port   = flag.Int("port", 0, "サーバーのポート (デフォルト: 8080)")
		facing = flag.String("facing", "", "起動時のカメラの向き (front / back)")
		help   = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("Setsuna")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *facing != "" {
		cfg.Camera.Facing = *facing
		if err := cfg.Validate(); err != nil {
			log.Fatalf("無効なオプション: %v", err)
		}
	}

	// カメラマネージャーを構築する
	acquirer := camera.NewSyntheticAcquirer(cfg.Camera.Width, cfg.Camera.Height)
	builder := camera.NewConstraintBuilder(
		camera.PlatformFamily(cfg.Camera.Platform),
		camera.StaticConstraintSupport{
			"facingMode": true,
			"width":      true,
			"height":     true,
		},
	)

	var sink camera.DiagnosticSink = camera.NopSink{}
	if cfg.Camera.DevDiagnostics {
		handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})
		sink = camera.NewLogSink(slog.New(handler))
	}

	manager := camera.NewManager(acquirer, builder, camera.NewNegotiator(nil, sink), camera.NewPipeline(nil))

	// コンテキストを作成
	ctx := context.Background()

	// 初期ストリームを開く
	if err := manager.Open(ctx, camera.Facing(cfg.Camera.Facing), nil, nil); err != nil {
		log.Fatalf("ストリームのオープンに失敗しました: %v", err)
	}
	defer manager.Close()

	// サーバーを起動
	log.Printf("Setsuna サーバーを起動します: %s", cfg.ServerAddress())
	srv := server.New(cfg, manager)
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
