// Package form encodes nested values as application/x-www-form-urlencoded
// with PHP-style bracket keys (a[b][0]=c), the format the STS API expects.
package form

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Serialize encodes value under key. An empty key means value is the top
// level: its members (or indexes) become the keys.
//
// Map members holding an empty value (nil, false, zero, "") are omitted;
// slice elements never are. Map keys are emitted in sorted order.
func Serialize(value any, key string) string {
	return serialize(normalize(value), key)
}

func serialize(value any, key string) string {
	switch v := value.(type) {
	case []any:
		parts := make([]string, 0, len(v))
		for i, el := range v {
			k := strconv.Itoa(i)
			if key != "" {
				k = key + "[" + k + "]"
			}
			parts = append(parts, serialize(el, k))
		}
		return join(parts)
	case map[string]any:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, name := range names {
			if isEmpty(v[name]) {
				continue
			}
			k := name
			if key != "" {
				k = key + "[" + name + "]"
			}
			parts = append(parts, serialize(v[name], k))
		}
		return join(parts)
	case nil:
		return ""
	default:
		return key + "=" + EncodeURIComponent(scalar(v))
	}
}

// join drops empty fragments so that empty containers leave no stray '&'.
func join(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "&")
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case float64:
		return x == 0
	case int64:
		return x == 0
	case uint64:
		return x == 0
	}
	return false
}

func scalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	}
	return fmt.Sprint(v)
}

// normalize rewrites arbitrary Go values into nil, string, bool, float64,
// int64, uint64, []any and map[string]any. Structs go through encoding/json
// so their json tags name the keys.
func normalize(value any) any {
	switch v := value.(type) {
	case nil, string, bool, float64, int64, uint64:
		return v
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		f, _ := v.Float64()
		return f
	case json.RawMessage:
		var decoded any
		if err := json.Unmarshal(v, &decoded); err != nil {
			return string(v)
		}
		return normalize(decoded)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = normalize(iter.Value().Interface())
		}
		return out
	case reflect.Struct:
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		var decoded any
		if err := json.Unmarshal(b, &decoded); err != nil {
			return string(b)
		}
		return normalize(decoded)
	}
	return fmt.Sprint(value)
}

// EncodeURIComponent escapes s the way ECMAScript encodeURIComponent does:
// everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded as UTF-8.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
