package model

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Normalize は生成結果やシートのセル値を表示用の文字列に変換します。
//   - スライス/配列: 各要素を正規化して ", " で連結
//   - nil, NaN, nilポインタ: ""
//   - それ以外: 文字列表現
func Normalize(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		return strings.Join(t, ", ")
	case float64:
		if math.IsNaN(t) {
			return ""
		}
		return fmt.Sprint(t)
	case float32:
		if math.IsNaN(float64(t)) {
			return ""
		}
		return fmt.Sprint(t)
	case []byte:
		return string(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
		return Normalize(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return ""
		}
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, Normalize(rv.Index(i).Interface()))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}
