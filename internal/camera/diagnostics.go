package camera

import "log/slog"

// DiagnosticSink は交渉中の非致命的な警告を受け取る注入依存
// 本番ビルドではNopSink、開発時はLogSinkを使用する
type DiagnosticSink interface {
	// UnsupportedSetting はデバイスがサポートしない設定が破棄されたことを通知する
	UnsupportedSetting(cap CapabilityName, requested string, translated any, facing Facing)
}

// NopSink は何もしないDiagnosticSink（デフォルト）
type NopSink struct{}

// UnsupportedSetting は何もしない
func (NopSink) UnsupportedSetting(CapabilityName, string, any, Facing) {}

// LogSink はslogへ警告を出力するDiagnosticSink
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink は新しいLogSinkを作成する
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// UnsupportedSetting は破棄された設定を警告ログに出力する
func (s *LogSink) UnsupportedSetting(cap CapabilityName, requested string, translated any, facing Facing) {
	s.logger.Warn("デバイスがサポートしない設定を破棄しました",
		slog.String("capability", string(cap)),
		slog.String("requested", requested),
		slog.Any("translated", translated),
		slog.String("facing", string(facing)),
	)
}

// RecordingSink はテスト用に通知を記録するDiagnosticSink
type RecordingSink struct {
	Notices []DiagnosticNotice
}

// DiagnosticNotice は記録された1件の警告
type DiagnosticNotice struct {
	Capability CapabilityName
	Requested  string
	Translated any
	Facing     Facing
}

// UnsupportedSetting は通知を記録する
func (s *RecordingSink) UnsupportedSetting(cap CapabilityName, requested string, translated any, facing Facing) {
	s.Notices = append(s.Notices, DiagnosticNotice{
		Capability: cap,
		Requested:  requested,
		Translated: translated,
		Facing:     facing,
	})
}
