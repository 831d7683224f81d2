// internal/importer/parser_test.go
package importer

import (
	"strings"
	"testing"

	"jpn_vocab_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeCSV(t *testing.T, csvText string) *RawTable {
	t.Helper()
	table, err := DecodeRows(strings.NewReader(csvText))
	require.NoError(t, err)
	return table
}

func TestParse_LongForm(t *testing.T) {
	t.Run("正常系: word_idで行を畳み込みsense_index昇順で確定", func(t *testing.T) {
		csvText := "word_id,kanji,hiragana,sense_index,meaning_vi,sino_vietnamese,examples_jp,examples_vi,rui\n" +
			"nen001,年,とし,2,tuổi,NIÊN,年を取る,lớn tuổi,\n" +
			"nen001,年,とし,1,năm,NIÊN,今年||来年,năm nay||sang năm,歳::tuổi\n" +
			"ima001,今,いま,1,bây giờ,KIM,,,\n"

		result, err := Parse(decodeCSV(t, csvText))

		require.NoError(t, err)
		assert.Equal(t, SchemaLongForm, result.Schema)
		require.Len(t, result.Records, 2)

		rec := result.Records[0]
		assert.Equal(t, "nen001", rec.ID)
		assert.Equal(t, "年", rec.Kanji)
		assert.Equal(t, "とし", rec.Reading)
		assert.Equal(t, "NIÊN", rec.SinoVietnamese)
		require.Len(t, rec.Senses, 2)
		assert.Equal(t, 1, rec.Senses[0].Index)
		assert.Equal(t, "năm", rec.Senses[0].Meaning)
		assert.Equal(t, 2, rec.Senses[1].Index)
		assert.Equal(t, "tuổi", rec.Senses[1].Meaning)

		// 先頭Senseの意味がフラットなフィールドに反映される
		assert.Equal(t, "năm", rec.PrimaryMeaning)

		// "||" で区切った例文は位置で対になる
		require.Len(t, rec.Senses[0].Examples, 2)
		assert.Equal(t, model.Pair{JP: "今年", VI: "năm nay"}, rec.Senses[0].Examples[0])
		assert.Equal(t, model.Pair{JP: "来年", VI: "sang năm"}, rec.Senses[0].Examples[1])

		// "原文::訳" のコロケーション
		require.Len(t, rec.Senses[0].Collocations.Rui, 1)
		assert.Equal(t, model.Pair{JP: "歳", VI: "tuổi"}, rec.Senses[0].Collocations.Rui[0])

		assert.Equal(t, "ima001", result.Records[1].ID)
	})

	t.Run("正常系: 不正な行だけ捨ててレコードは残す", func(t *testing.T) {
		csvText := "word_id,kanji,hiragana,sense_index,meaning_vi\n" +
			"nen001,年,とし,1,năm\n" +
			"nen001,年,とし,2,\n" + // 意味が空 → この行だけ捨てる
			",今,いま,1,bây giờ\n" + // word_idなし → 捨てる
			"hon001,,,1,sách\n" // 漢字も読みも空 → 捨てる

		result, err := Parse(decodeCSV(t, csvText))

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "nen001", result.Records[0].ID)
		require.Len(t, result.Records[0].Senses, 1)
	})

	t.Run("正常系: sense_indexが数値でない場合は行順で補番", func(t *testing.T) {
		csvText := "word_id,kanji,hiragana,sense_index,meaning_vi\n" +
			"nen001,年,とし,x,năm\n" +
			"nen001,年,とし,,tuổi\n"

		result, err := Parse(decodeCSV(t, csvText))

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		require.Len(t, result.Records[0].Senses, 2)
		assert.Equal(t, 1, result.Records[0].Senses[0].Index)
		assert.Equal(t, 2, result.Records[0].Senses[1].Index)
	})
}

func TestParse_Flexible(t *testing.T) {
	t.Run("正常系: エイリアスヘッダとJSONセル", func(t *testing.T) {
		csvText := `Chữ Kanji,Phiên âm,Nghĩa,Âm Hán Việt,meanings,examples
年,とし,năm,NIÊN,"[""năm"",""tuổi""]","[{""jp"":""今年"",""vi"":""năm nay""}]"
`
		result, err := Parse(decodeCSV(t, csvText))

		require.NoError(t, err)
		assert.Equal(t, SchemaFlexible, result.Schema)
		require.Len(t, result.Records, 1)

		rec := result.Records[0]
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, "年", rec.Kanji)
		assert.Equal(t, "とし", rec.Reading)
		assert.Equal(t, "năm", rec.PrimaryMeaning)
		assert.Equal(t, "NIÊN", rec.SinoVietnamese)
		assert.Equal(t, []string{"năm", "tuổi"}, rec.AdditionalMeanings)
		require.Len(t, rec.Examples, 1)
		assert.Equal(t, model.Pair{JP: "今年", VI: "năm nay"}, rec.Examples[0])

		// 単一意味スキーマでも index 1 の Sense が合成される
		require.Len(t, rec.Senses, 1)
		assert.Equal(t, 1, rec.Senses[0].Index)
		assert.Equal(t, "năm", rec.Senses[0].Meaning)
	})

	t.Run("正常系: 壊れたJSONセルは黙って無視", func(t *testing.T) {
		csvText := "kanji,hiragana,nghia,meanings\n" +
			"年,とし,năm,{not json}\n"

		result, err := Parse(decodeCSV(t, csvText))

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Empty(t, result.Records[0].AdditionalMeanings)
		assert.Equal(t, "năm", result.Records[0].PrimaryMeaning)
	})

	t.Run("正常系: 旧v1形式の例文列をフォールバックで使う", func(t *testing.T) {
		csvText := "kanji,hiragana,nghia,Câu mẫu,Ý nghĩa câu mẫu\n" +
			"年,とし,năm,今年は2025年です,Năm nay là năm 2025\n"

		result, err := Parse(decodeCSV(t, csvText))

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		require.Len(t, result.Records[0].Examples, 1)
		assert.Equal(t, "今年は2025年です", result.Records[0].Examples[0].JP)
		assert.Equal(t, "Năm nay là năm 2025", result.Records[0].Examples[0].VI)
	})

	t.Run("正常系: 読みか意味が欠けた行は落とす", func(t *testing.T) {
		csvText := "kanji,hiragana,nghia\n" +
			"年,とし,năm\n" +
			"今,,bây giờ\n" +
			"本,ほん,\n"

		result, err := Parse(decodeCSV(t, csvText))

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "年", result.Records[0].Kanji)
	})
}

func TestParse_Headless(t *testing.T) {
	t.Run("正常系: 6列の位置指定で読む", func(t *testing.T) {
		csvText := "年,とし,năm; tuổi,NIÊN,今年は2025年です,Năm nay là năm 2025\n" +
			"今,いま,bây giờ,KIM,,\n"

		result, err := Parse(decodeCSV(t, csvText))

		require.NoError(t, err)
		assert.Equal(t, SchemaHeadless, result.Schema)
		require.Len(t, result.Records, 2)

		rec := result.Records[0]
		assert.Equal(t, "年", rec.Kanji)
		assert.Equal(t, "とし", rec.Reading)
		assert.Equal(t, "năm; tuổi", rec.PrimaryMeaning)
		assert.Equal(t, "NIÊN", rec.SinoVietnamese)
		require.Len(t, rec.Examples, 1)
		assert.Equal(t, model.Pair{JP: "今年は2025年です", VI: "Năm nay là năm 2025"}, rec.Examples[0])

		assert.Empty(t, result.Records[1].Examples)
	})

	t.Run("正常系: 列数が少ない行も読める", func(t *testing.T) {
		csvText := "年,とし,năm\n"

		result, err := Parse(decodeCSV(t, csvText))

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Empty(t, result.Records[0].SinoVietnamese)
	})

	t.Run("正常系: 漢字列が空なら読みを漢字として扱う", func(t *testing.T) {
		csvText := ",ありがとう,cảm ơn\n"

		result, err := Parse(decodeCSV(t, csvText))

		require.NoError(t, err)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "ありがとう", result.Records[0].Kanji)
		assert.Equal(t, "ありがとう", result.Records[0].Reading)
	})
}

func TestParse_SchemaPriority(t *testing.T) {
	t.Run("正常系: long-formの必須ヘッダがあればlong-formを優先", func(t *testing.T) {
		csvText := "word_id,kanji,hiragana,sense_index,meaning_vi,nghia\n" +
			"nen001,年,とし,1,năm,nghĩa khác\n"

		result, err := Parse(decodeCSV(t, csvText))

		require.NoError(t, err)
		assert.Equal(t, SchemaLongForm, result.Schema)
	})

	t.Run("正常系: ヘッダ行が解釈不能なら全行をヘッダなしで読む", func(t *testing.T) {
		// 1行目もデータとして読まれる
		csvText := "年,とし,năm\n今,いま,bây giờ\n"

		result, err := Parse(decodeCSV(t, csvText))

		require.NoError(t, err)
		assert.Equal(t, SchemaHeadless, result.Schema)
		assert.Len(t, result.Records, 2)
	})
}

func TestParse_NoValidRecords(t *testing.T) {
	t.Run("異常系: 有効レコードゼロは検出ヘッダ付きのエラー", func(t *testing.T) {
		csvText := "foo,bar\n,\n"

		result, err := Parse(decodeCSV(t, csvText))

		assert.Nil(t, result)
		var noRecords *NoValidRecordsError
		require.ErrorAs(t, err, &noRecords)
		assert.Equal(t, []string{"foo", "bar"}, noRecords.Headers)
		assert.Contains(t, noRecords.Error(), "foo, bar")
	})

	t.Run("異常系: 空テーブル", func(t *testing.T) {
		result, err := Parse(decodeCSV(t, ""))

		assert.Nil(t, result)
		var noRecords *NoValidRecordsError
		require.ErrorAs(t, err, &noRecords)
		assert.Empty(t, noRecords.Headers)
	})
}

func TestDecodeRows(t *testing.T) {
	t.Run("正常系: BOM付きヘッダの正規化と空行の除去", func(t *testing.T) {
		csvText := "\uFEFFWord_ID,Kanji\n" +
			"nen001,年\n" +
			",\n" +
			"ima001,今\n"

		table := decodeCSV(t, csvText)

		assert.Equal(t, []string{"word_id", "kanji"}, table.Headers)
		assert.Len(t, table.Rows, 3) // 空行は落ちる
	})

	t.Run("正常系: 行ごとに列数が違ってもよい", func(t *testing.T) {
		table := decodeCSV(t, "a,b,c\n1,2\n")
		require.Len(t, table.Rows, 2)
		assert.Len(t, table.Rows[1], 2)
	})

	t.Run("異常系: 引用符が壊れたCSVはエラー", func(t *testing.T) {
		_, err := DecodeRows(strings.NewReader("a,\"b\nnot closed"))
		assert.Error(t, err)
	})
}

func TestValidateLongForm(t *testing.T) {
	t.Run("正常系: 必須列欠落と例文数不一致を行番号付きで報告", func(t *testing.T) {
		table := decodeCSV(t, "word_id,kanji,sense_index,meaning_vi,examples_jp,examples_vi\n"+
			"nen001,年,1,năm,今年||来年,năm nay\n"+ // JP2件 vs VI1件
			",今,1,bây giờ,,\n") // word_id欠落

		issues := ValidateLongForm(table.HeaderRows())

		require.Len(t, issues, 2)
		assert.Equal(t, 2, issues[0].Row)
		assert.Equal(t, "Số câu JP (2) != VI (1)", issues[0].Message)
		assert.Equal(t, 3, issues[1].Row)
		assert.Equal(t, "Thiếu cột word_id", issues[1].Message)
	})

	t.Run("正常系: 問題がなければ空", func(t *testing.T) {
		table := decodeCSV(t, "word_id,kanji,sense_index,meaning_vi\n"+
			"nen001,年,1,năm\n")

		assert.Empty(t, ValidateLongForm(table.HeaderRows()))
	})
}
