package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

func TestBanner(t *testing.T) {
	const want = "== == == == == == == == == == foobar == == == == == == == == == =="
	if got := Banner("foobar"); got != want {
		t.Errorf("Banner = %q, want %q", got, want)
	}
}

func TestWriteText(t *testing.T) {
	r := NewReport()
	r.Add("fizzbuzz", "1\n", 0)
	r.Add("foobar", "barfoo", 0)
	r.Add("empty", "", 0)

	want := Banner("fizzbuzz") + "\n1\n" +
		Banner("foobar") + "\nbarfoo\n" +
		Banner("empty") + "\n"

	if got := WriteText(r); got != want {
		t.Errorf("WriteText = %q, want %q", got, want)
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"\n", 1},
		{"a", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
	}
	for _, tt := range tests {
		if got := CountLines(tt.in); got != tt.want {
			t.Errorf("CountLines(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	r := NewReport()
	r.Add("foobar", "bar", 2*time.Second)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	res, ok := decoded.Result("foobar")
	if !ok || res.Output != "bar" || res.Lines != 1 {
		t.Errorf("decoded result = %+v, %v", res, ok)
	}
}
