package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Service: "tracks", Writer: &buf})

	Get().Debug().Str("k", "v").Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a JSON log line, got %q: %v", buf.String(), err)
	}
	if line["service"] != "tracks" || line["k"] != "v" || line["message"] != "hello" {
		t.Fatalf("unexpected log line %v", line)
	}
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).With().Str("req_id", "abc").Logger()
	ctx := WithContext(context.Background(), l)

	C(ctx).Info().Msg("scoped")
	if !bytes.Contains(buf.Bytes(), []byte(`"req_id":"abc"`)) {
		t.Fatalf("expected request id in %q", buf.String())
	}

	if C(context.Background()) == nil {
		t.Fatal("expected root logger fallback")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
