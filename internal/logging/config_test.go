package logging

import (
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"off":     zerolog.Disabled,
		"trace":   zerolog.TraceLevel,
	}
	for raw, want := range cases {
		got, ok := parseLevel(raw)
		if !ok || got != want {
			t.Fatalf("parseLevel(%q): got=%v ok=%v want=%v", raw, got, ok, want)
		}
	}
	if _, ok := parseLevel("verbose"); ok {
		t.Fatalf("expected unknown level to be rejected")
	}
	if _, ok := parseLevel(""); ok {
		t.Fatalf("expected empty level to be ignored")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "true")
	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)
	if cfg.Level != zerolog.ErrorLevel || cfg.Timestamp || !cfg.NoColor {
		t.Fatalf("unexpected config after overrides: %+v", cfg)
	}
}

func TestDefaultProfiles(t *testing.T) {
	rt := defaultConfig(ProfileRuntime)
	if rt.Level != zerolog.InfoLevel || !rt.Timestamp {
		t.Fatalf("runtime profile: %+v", rt)
	}
	tp := defaultConfig(ProfileTest)
	if tp.Level != zerolog.DebugLevel || tp.Timestamp {
		t.Fatalf("test profile: %+v", tp)
	}
}

func TestTestProfileSilentUntilLevelSet(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	quiet := defaultConfig(ProfileTest)
	applyEnvOverrides(&quiet)
	if quiet.Out != io.Discard {
		t.Fatalf("test profile should discard output, got %T", quiet.Out)
	}

	t.Setenv(EnvLogLevel, "info")
	loud := defaultConfig(ProfileTest)
	applyEnvOverrides(&loud)
	if loud.Out != os.Stderr || loud.Level != zerolog.InfoLevel {
		t.Fatalf("level override should print to stderr: %+v", loud)
	}

	rt := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&rt)
	if rt.Out != os.Stderr {
		t.Fatalf("runtime profile writes to stderr, got %T", rt.Out)
	}
}
