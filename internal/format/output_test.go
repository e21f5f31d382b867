package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"olympos.io/encoding/edn"
)

type sample struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Index    int    `json:"index"`
}

func TestWriteJSON_DoesNotEscapeCardText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample{Question: "a < b & c", Answer: "yes", Index: 1}, "json", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	want := `{"question":"a < b & c","answer":"yes","index":1}`
	if got != want {
		t.Fatalf("unexpected json:\n got: %s\nwant: %s", got, want)
	}
}

func TestWriteJSON_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": []int{1}}, "", true); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"data\"") {
		t.Fatalf("expected indented output; got %q", buf.String())
	}
	var v map[string]any
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
}

func TestWriteEDN_KeywordsAndIntegers(t *testing.T) {
	var buf bytes.Buffer
	payload := map[string]any{"data": map[string]any{"cards": []sample{{Question: "q", Answer: "a", Index: 2}}}}
	if err := Write(&buf, payload, "edn", false); err != nil {
		t.Fatalf("write: %v", err)
	}

	var v any
	if err := edn.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Fatalf("output is not edn: %v\n%s", err, buf.String())
	}
	got, ok := v.(map[any]any)
	if !ok {
		t.Fatalf("expected top-level map; got %#v", v)
	}
	data, ok := got[edn.Keyword("data")].(map[any]any)
	if !ok {
		t.Fatalf("expected :data map; got %#v", got)
	}
	cards, ok := data[edn.Keyword("cards")].([]any)
	if !ok || len(cards) != 1 {
		t.Fatalf("expected one card; got %#v", data)
	}
	card := cards[0].(map[any]any)
	if card[edn.Keyword("question")] != "q" {
		t.Fatalf("unexpected question: %#v", card)
	}
	if card[edn.Keyword("index")] != int64(2) {
		t.Fatalf("expected integer index; got %#v", card[edn.Keyword("index")])
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, 1, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
