package transcriber

import (
	"testing"
)

func TestParseWhisperJSON(t *testing.T) {
	data := []byte(`{
		"result": {"language": "en"},
		"transcription": [
			{"offsets": {"from": 0, "to": 500}, "text": " Hello"},
			{"offsets": {"from": 600, "to": 1000}, "text": " world"},
			{"offsets": {"from": 1000, "to": 1000}, "text": "  "},
			{"offsets": {"from": 3000, "to": 3400}, "text": " today"}
		]
	}`)

	words, err := parseWhisperJSON(data)
	if err != nil {
		t.Fatalf("parseWhisperJSON() error = %v", err)
	}

	if len(words) != 3 {
		t.Fatalf("parsed %d words, want 3 (whitespace segment dropped)", len(words))
	}

	if words[0].Text != "Hello" || words[0].Start != 0 || words[0].End != 0.5 {
		t.Errorf("words[0] = %+v, want Hello [0, 0.5]", words[0])
	}
	if words[1].Text != "world" || words[1].Start != 0.6 || words[1].End != 1.0 {
		t.Errorf("words[1] = %+v, want world [0.6, 1.0]", words[1])
	}
	if words[2].Text != "today" || words[2].Start != 3.0 || words[2].End != 3.4 {
		t.Errorf("words[2] = %+v, want today [3.0, 3.4]", words[2])
	}

	// Starts must come out non-decreasing; the pipeline never re-sorts.
	for i := 1; i < len(words); i++ {
		if words[i].Start < words[i-1].Start {
			t.Errorf("starts decreased at %d: %v < %v", i, words[i].Start, words[i-1].Start)
		}
	}
}

func TestParseWhisperJSONInvalid(t *testing.T) {
	if _, err := parseWhisperJSON([]byte("not json")); err == nil {
		t.Error("parseWhisperJSON() should fail on malformed output")
	}
}

func TestParseWhisperJSONEmpty(t *testing.T) {
	words, err := parseWhisperJSON([]byte(`{"transcription": []}`))
	if err != nil {
		t.Fatalf("parseWhisperJSON() error = %v", err)
	}
	if len(words) != 0 {
		t.Errorf("parsed %d words from empty transcription, want 0", len(words))
	}
}
