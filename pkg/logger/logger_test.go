package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelance-directory/api/internal/pkg/requestid"
)

func TestInit_JSONWithService(t *testing.T) {
	t.Cleanup(Reset)
	var buf bytes.Buffer

	log := Init(Options{Level: "debug", Service: "freelance-directory", Output: &buf})
	log.Info().Str("user_id", "u1").Msg("user registered")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["service"] != "freelance-directory" || entry["user_id"] != "u1" || entry["message"] != "user registered" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestInit_OnlyFirstCallWins(t *testing.T) {
	t.Cleanup(Reset)
	var first, second bytes.Buffer

	Init(Options{Output: &first})
	Init(Options{Output: &second})
	l := Get()
	l.Warn().Msg("hello")

	if first.Len() == 0 || second.Len() != 0 {
		t.Fatalf("expected output only on the first writer")
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Get()
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestWithRequest(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	taggedLog := WithRequest(requestid.With(context.Background(), "req-1"), base)
	taggedLog.Info().Msg("tagged")
	untaggedLog := WithRequest(context.Background(), base)
	untaggedLog.Info().Msg("untagged")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected two entries, got %d", len(lines))
	}

	var tagged, untagged map[string]any
	if err := json.Unmarshal(lines[0], &tagged); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if err := json.Unmarshal(lines[1], &untagged); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if tagged["request_id"] != "req-1" {
		t.Fatalf("expected request_id, got %v", tagged)
	}
	if _, ok := untagged["request_id"]; ok {
		t.Fatalf("unexpected request_id: %v", untagged)
	}
}
