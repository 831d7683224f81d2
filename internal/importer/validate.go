// internal/importer/validate.go
package importer

import (
	"fmt"
	"strings"

	"jpn_vocab_keep/internal/model"
)

// long-form で行ごとに必須の列
var longFormRowRequired = []string{"word_id", "kanji", "sense_index", "meaning_vi"}

// ValidateLongForm は long-form スキーマの行単位バリデータです。
// 必須列の欠落と、JP/VI 例文数の不一致を (行番号, メッセージ) で集めます。
// これらは特定行に関する警告であってインポート全体を中断しません。
// 行番号はヘッダを1行目とした実ファイル上の番号です。
func ValidateLongForm(rows []map[string]string) []model.RowIssue {
	var issues []model.RowIssue

	for i, row := range rows {
		rowNum := i + 2 // ヘッダ行の次から

		for _, col := range longFormRowRequired {
			if strings.TrimSpace(row[col]) == "" {
				issues = append(issues, model.RowIssue{
					Row:     rowNum,
					Message: fmt.Sprintf("Thiếu cột %s", col),
				})
			}
		}

		jpCount := len(splitList(row["examples_jp"]))
		viCount := len(splitList(row["examples_vi"]))
		if jpCount > 0 && viCount > 0 && jpCount != viCount {
			issues = append(issues, model.RowIssue{
				Row:     rowNum,
				Message: fmt.Sprintf("Số câu JP (%d) != VI (%d)", jpCount, viCount),
			})
		}
	}
	return issues
}
