package format

import (
	"encoding/json"
	"io"
	"strings"

	"olympos.io/encoding/edn"
)

// WriteEDN writes v as EDN. Values go through JSON first so struct json tags
// decide field names; object keys become keywords.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	dec := json.NewDecoder(strings.NewReader(string(b)))
	dec.UseNumber()
	if err := dec.Decode(&x); err != nil {
		return err
	}

	var out []byte
	if pretty {
		out, err = edn.MarshalIndent(keywordize(x), "", "  ")
	} else {
		out, err = edn.Marshal(keywordize(x))
	}
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func keywordize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[edn.Keyword]any, len(t))
		for k, val := range t {
			m[edn.Keyword(ednKeyword(k))] = keywordize(val)
		}
		return m
	case []any:
		xs := make([]any, len(t))
		for i, it := range t {
			xs[i] = keywordize(it)
		}
		return xs
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	default:
		return v
	}
}

func ednKeyword(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "-")
}
