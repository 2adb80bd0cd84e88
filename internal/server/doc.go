// Package server は、HTTP APIの提供を管理します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// キャプチャ・設定・向き切り替えのリクエスト処理を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - OpenAPIスキーマから生成されたルーティングへのハンドラ登録
//   - キャプチャ結果・エラーのレスポンス変換
//   - グレースフルシャットダウン
//
// 仕様:
//   - ルーティングはgin-gonic/ginを使用
//   - エンドポイントの型はapi/openapi.yamlからoapi-codegenで生成
//   - エラー分類（致命的/回復可能/伝播）をHTTPステータスへ対応付ける
package server
