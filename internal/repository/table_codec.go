package repository

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go_5_vocab_flash/internal/model"
)

// DecodeTable はシートの値 (1行目がヘッダー) をレコードに変換します。
// 足りないセルは空文字、未知の列は Entry.Extra に入る (キーは columnKeys)。
// 2つ目の戻り値は読み込んだヘッダー (書き戻し時の列順に使う)。
// ヘッダーより長い行があれば、ヘッダーを空セルで延ばす。
func DecodeTable(values [][]interface{}) ([]model.Entry, []string) {
	if len(values) == 0 {
		return []model.Entry{}, nil
	}

	width := 0
	for _, row := range values {
		if len(row) > width {
			width = len(row)
		}
	}
	header := make([]string, width)
	for i, h := range values[0] {
		header[i] = model.Normalize(h)
	}
	keys := columnKeys(header)

	entries := make([]model.Entry, 0, len(values)-1)
	for _, row := range values[1:] {
		var e model.Entry
		for i, key := range keys {
			v := ""
			if i < len(row) {
				v = model.Normalize(row[i])
			}
			e.Set(key, v)
		}
		entries = append(entries, e)
	}
	return entries, header
}

// EncodeTable はレコードをヘッダー付きの表に変換します。
// header が空なら既知の列をすべて書く (初回書き込み)。
// header があればその順序と表記を維持し、値のある列だけを後ろに足す。
func EncodeTable(entries []model.Entry, header []string) [][]interface{} {
	keys, names := columnLayout(entries, header)

	values := make([][]interface{}, 0, len(entries)+1)
	head := make([]interface{}, len(names))
	for i, n := range names {
		head[i] = n
	}
	values = append(values, head)

	for _, e := range entries {
		row := make([]interface{}, len(keys))
		for i, key := range keys {
			row[i] = e.Get(key)
		}
		values = append(values, row)
	}
	return values
}

// ColumnsFor は書き込み時のヘッダー (列名の並び) を決めます。
func ColumnsFor(entries []model.Entry, header []string) []string {
	_, names := columnLayout(entries, header)
	return names
}

// columnLayout は列ごとの Entry 上のキーと、ヘッダーに書く列名を返します。
func columnLayout(entries []model.Entry, header []string) (keys, names []string) {
	seen := make(map[string]bool)

	if len(header) == 0 {
		for _, c := range model.Columns {
			seen[c] = true
			keys = append(keys, c)
			names = append(names, c)
		}
	} else {
		keys = columnKeys(header)
		for i, h := range header {
			seen[keys[i]] = true
			names = append(names, h)
		}
		// 既存ヘッダーにない既知の列は値があるときだけ追加する
		for _, c := range model.Columns {
			if seen[c] {
				continue
			}
			for _, e := range entries {
				if e.Get(c) != "" {
					seen[c] = true
					keys = append(keys, c)
					names = append(names, c)
					break
				}
			}
		}
	}

	// ヘッダーにない追加列 (API やストア間コピー経由)
	var rest []string
	for _, e := range entries {
		for k := range e.Extra {
			if !seen[k] {
				seen[k] = true
				rest = append(rest, k)
			}
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		keys = append(keys, k)
		names = append(names, headerName(k))
	}
	return keys, names
}

// columnKeys はヘッダーの各列を Entry 上のキーに対応させます。
// 既知の列は列名、それ以外はヘッダーの表記。空のヘッダーは "#<列番号>"、
// 2回目以降に出てくる同じ名前は "<名前>#<列番号>" にして列ごとに別の値を持つ。
func columnKeys(header []string) []string {
	keys := make([]string, len(header))
	used := make(map[string]bool, len(header))
	for i, h := range header {
		key := canonicalColumn(h)
		if key == "" || used[key] {
			key = fmt.Sprintf("%s#%d", key, i+1)
		}
		used[key] = true
		keys[i] = key
	}
	return keys
}

// headerName は columnKeys が付けた列番号を外して列名に戻します。
func headerName(key string) string {
	i := strings.LastIndex(key, "#")
	if i < 0 {
		return key
	}
	if n, err := strconv.Atoi(key[i+1:]); err != nil || n <= 0 {
		return key
	}
	return key[:i]
}

// canonicalColumn は既知の列名を大文字小文字・前後空白を無視して揃えます。
func canonicalColumn(h string) string {
	t := strings.TrimSpace(h)
	lower := strings.ToLower(t)
	for _, c := range model.Columns {
		if lower == c {
			return c
		}
	}
	return t
}
