package badge

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Params is the opaque key-value configuration a definition passes to its
// evaluator, decoded from the definition's params JSON.
type Params map[string]any

// ParseParams decodes a definition's params JSON. Malformed or blank input
// yields an empty bag, never an error: a broken configuration reads as "no
// extra parameters" so one definition cannot fail the whole event.
func ParseParams(raw string) Params {
	if strings.TrimSpace(raw) == "" {
		return Params{}
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return Params{}
	}
	return Params(out)
}

// String returns the value for key when it is a JSON string, else "".
func (p Params) String(key string) string {
	if p == nil {
		return ""
	}
	s, _ := p[key].(string)
	return s
}

// Bool returns true only when the value for key is JSON true.
func (p Params) Bool(key string) bool {
	if p == nil {
		return false
	}
	b, _ := p[key].(bool)
	return b
}

// Strings returns the value for key as a string slice when it is a JSON
// array, stringifying each element. Nil when absent or not an array.
func (p Params) Strings(key string) []string {
	if p == nil {
		return nil
	}
	list, ok := p[key].([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, stringify(v))
	}
	return out
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// json numbers decode as float64; keep integral values compact.
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
