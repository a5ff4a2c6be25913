package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
)

// HashCall computes SHA-256(sorted_json(params) + api + version + method).
// The audit trail stores this instead of the parameters, which routinely
// carry subscriber addresses.
func HashCall(params json.RawMessage, api, version, method string) string {
	h := sha256.New()
	h.Write(sortedJSON(params))
	h.Write([]byte(api))
	h.Write([]byte(version))
	h.Write([]byte(method))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// sortedJSON recursively sorts JSON object keys.
func sortedJSON(data json.RawMessage) []byte {
	if len(data) == 0 {
		return []byte("null")
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		var arr []json.RawMessage
		if err := json.Unmarshal(data, &arr); err == nil {
			out := []byte("[")
			for i, el := range arr {
				if i > 0 {
					out = append(out, ',')
				}
				out = append(out, sortedJSON(el)...)
			}
			return append(out, ']')
		}
		var v interface{}
		if err2 := json.Unmarshal(data, &v); err2 != nil {
			return data
		}
		b, _ := json.Marshal(v)
		return b
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := []byte("{")
	for i, k := range keys {
		if i > 0 {
			result = append(result, ',')
		}
		kb, _ := json.Marshal(k)
		result = append(result, kb...)
		result = append(result, ':')
		result = append(result, sortedJSON(obj[k])...)
	}
	result = append(result, '}')
	return result
}
