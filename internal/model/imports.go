// internal/model/imports.go
package model

// RowIssue は long-form CSV の行単位の警告です。
// インポート全体を中断せず、行番号とメッセージの組で呼び出し元に返します。
type RowIssue struct {
	Row     int    `json:"row"` // ヘッダを1行目とした実ファイル上の行番号
	Message string `json:"message"`
}

// ImportSummary はインポート成功時のレスポンスDTO
type ImportSummary struct {
	Imported int        `json:"imported"`         // マージ対象になったレコード数
	Schema   string     `json:"schema"`           // 検出されたスキーマ名
	Issues   []RowIssue `json:"issues,omitempty"` // long-form バリデータの警告 (部分的成功)
}
