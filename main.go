package main

import (
	"context"
	"log"

	"setsuna/internal/camera"
	"setsuna/internal/config"
	"setsuna/internal/server"
)

func main() {
	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// カメラマネージャーを作成
	manager := newManager(cfg)

	// コンテキストを作成
	ctx := context.Background()

	// 初期ストリームを開く
	if err := manager.Open(ctx, camera.Facing(cfg.Camera.Facing), nil, nil); err != nil {
		log.Fatalf("ストリームのオープンに失敗しました: %v", err)
	}
	defer manager.Close()

	// サーバーを作成して起動
	srv := server.New(cfg, manager)
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}

// newManager は設定からカメラマネージャーを構築する
func newManager(cfg *config.Config) *camera.Manager {
	// 合成ストリーム供給源（実デバイスの取得サービスに差し替え可能）
	acquirer := camera.NewSyntheticAcquirer(cfg.Camera.Width, cfg.Camera.Height)

	builder := camera.NewConstraintBuilder(
		camera.PlatformFamily(cfg.Camera.Platform),
		camera.StaticConstraintSupport{
			"facingMode": true,
			"width":      true,
			"height":     true,
		},
	)

	// 開発時のみ交渉の診断を出力する
	var sink camera.DiagnosticSink = camera.NopSink{}
	if cfg.Camera.DevDiagnostics {
		sink = camera.NewLogSink(newLogger())
	}

	negotiator := camera.NewNegotiator(nil, sink)
	pipeline := camera.NewPipeline(nil)

	return camera.NewManager(acquirer, builder, negotiator, pipeline)
}
