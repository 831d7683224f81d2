// internal/importer/rows.go

// Package importer はCSVインポートの生データを候補レコード列へ変換します。
// 3つの入力スキーマ (long-form / 柔軟ヘッダ / ヘッダなし) を
// この優先順で自動判別します。純粋関数のみで、永続化は行いません。
package importer

import (
	"encoding/csv"
	"io"

	"jpn_vocab_keep/internal/vocab"
)

// RawTable はCSVを一度だけ読み込んだ結果です。
// ヘッダ付きビューと位置ビューの両方を同じ行データから導出します。
type RawTable struct {
	Headers []string   // 先頭行を正規化したもの (ダイアクリティカル除去 + 小文字化)
	Rows    [][]string // 先頭行を含む全行
}

// DecodeRows は encoding/csv で全行を読み込みます。
// 列数は行ごとに異なってよい。デコードエラーはそのまま呼び出し元へ返します。
func DecodeRows(r io.Reader) (*RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	table := &RawTable{Rows: dropEmptyRows(rows)}
	if len(table.Rows) > 0 {
		table.Headers = make([]string, len(table.Rows[0]))
		for i, h := range table.Rows[0] {
			table.Headers[i] = vocab.NormalizeHeader(h)
		}
	}
	return table, nil
}

// HeaderRows は先頭行をヘッダとみなしたマップビューを返します。
// キーは正規化済みヘッダ名。ヘッダより列が多い分は無視します。
func (t *RawTable) HeaderRows() []map[string]string {
	if len(t.Rows) < 2 {
		return nil
	}
	out := make([]map[string]string, 0, len(t.Rows)-1)
	for _, row := range t.Rows[1:] {
		m := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if h == "" {
				continue
			}
			if i < len(row) {
				m[h] = row[i]
			}
		}
		out = append(out, m)
	}
	return out
}

// HasHeaders は headers が指定キーをすべて含むかを返します。
func (t *RawTable) HasHeaders(keys ...string) bool {
	set := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		set[h] = true
	}
	for _, k := range keys {
		if !set[k] {
			return false
		}
	}
	return true
}

func dropEmptyRows(rows [][]string) [][]string {
	out := rows[:0]
	for _, row := range rows {
		empty := true
		for _, cell := range row {
			if cell != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out
}
