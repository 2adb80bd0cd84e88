// Package camera キャプチャデバイスの制約交渉と静止画キャプチャを担う
//
// # 責務
// - 希望する向き・解像度からのストリーム取得要求の構築
// - デバイスのCapabilityと正規化設定からのネイティブ制約の交渉・適用
// - ライブフレームからの静止画生成（拡縮・反転・エンコード）
// - ストリームの同一デバイス判定と破棄
//
// # 使い分け
// このパッケージは以下の場合に使用する：
// - デバイス固有のCapability範囲を意識せずに正規化値([0,1])で設定したい
// - サポートされない設定を落とさずベストエフォートで適用したい
// - ライブストリームからPNG/JPEGの静止画を取得したい
//
// # 仕様
// - Constraint Builder: プラットフォーム系統に応じたfacingMode制約の構築
// - Negotiator: トラックごとの並行な制約適用（ロールバックなし）
// - Capture Pipeline: 同期的な静止画生成とdata URIエンコード
// - Stream Lifecycle: 冪等な破棄と同一デバイス判定
// - ストリーム取得・モード変換・描画サーフェス・診断は注入依存
//
// # 前提要件
//   - ストリーム取得はStreamAcquirer実装が担う（このパッケージは
//     取得の失敗をリトライしない）
//   - トラックのApplyConstraintsは1回のadvanced更新として原子的に
//     適用されること
package camera
