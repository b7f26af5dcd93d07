package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit(t *testing.T) {
	Init(false)
	if Log.GetLevel() != zerolog.Disabled {
		t.Errorf("Init(false) should produce nop logger (Disabled level), got %v", Log.GetLevel())
	}

	Init(true)
	if Log.GetLevel() != zerolog.DebugLevel {
		t.Errorf("Init(true) should log at debug level, got %v", Log.GetLevel())
	}
	Init(false)
}

func TestLoggingConfigDefaults(t *testing.T) {
	cfg := &LoggingConfig{}
	if cfg.IsFileEnabled() {
		t.Error("IsFileEnabled should default to false when nil")
	}

	var nilCfg *LoggingConfig
	if nilCfg.IsFileEnabled() {
		t.Error("IsFileEnabled on a nil config should be false")
	}

	trueVal := true
	cfg.FileEnabled = &trueVal
	if !cfg.IsFileEnabled() {
		t.Error("IsFileEnabled should return true when explicitly set")
	}

	cfg = &LoggingConfig{}
	if cfg.GetMaxSizeMB() != 10 {
		t.Errorf("GetMaxSizeMB should default to 10, got %d", cfg.GetMaxSizeMB())
	}
	if cfg.GetMaxAgeDays() != 7 {
		t.Errorf("GetMaxAgeDays should default to 7, got %d", cfg.GetMaxAgeDays())
	}
	if cfg.GetMaxBackups() != 3 {
		t.Errorf("GetMaxBackups should default to 3, got %d", cfg.GetMaxBackups())
	}

	cfg = &LoggingConfig{MaxSizeMB: 20, MaxAgeDays: 14, MaxBackups: 5}
	if cfg.GetMaxSizeMB() != 20 || cfg.GetMaxAgeDays() != 14 || cfg.GetMaxBackups() != 5 {
		t.Errorf("custom values not returned: %+v", cfg)
	}
}

func TestInitWithFile(t *testing.T) {
	tmpDir := t.TempDir()
	enabled := true
	cfg := &LoggingConfig{FileEnabled: &enabled, MaxSizeMB: 1, MaxAgeDays: 1, MaxBackups: 1}

	if err := InitWithFile(false, tmpDir, cfg); err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}
	t.Cleanup(func() { CloseFileWriter(); Init(false) })

	expectedPath := filepath.Join(tmpDir, LogFileName)
	if got := GetLogFilePath(); got != expectedPath {
		t.Errorf("GetLogFilePath = %q, want %q", got, expectedPath)
	}

	Debug().Msg("debug entry")
	Warn().Str("source", "rust").Msg("warn entry")

	content, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if strings.Contains(string(content), "debug entry") {
		t.Error("debug entries should not reach the file without --debug")
	}
	if !strings.Contains(string(content), "warn entry") {
		t.Errorf("log file should contain warn entry, got %q", content)
	}
}

func TestInitWithFile_Disabled(t *testing.T) {
	tmpDir := t.TempDir()
	if err := InitWithFile(false, tmpDir, &LoggingConfig{}); err != nil {
		t.Fatalf("InitWithFile failed: %v", err)
	}
	if GetLogFilePath() != "" {
		t.Error("file logging should be off")
	}
	if _, err := os.Stat(filepath.Join(tmpDir, LogFileName)); !os.IsNotExist(err) {
		t.Errorf("log file should not be created, stat err = %v", err)
	}
}

func TestCloseFileWriter(t *testing.T) {
	if err := CloseFileWriter(); err != nil {
		t.Errorf("CloseFileWriter with no writer should succeed, got %v", err)
	}
}

func TestSetCommand(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)
	t.Cleanup(func() { SetCommand(""); Init(false) })

	SetCommand("vars")
	Info().Msg("hello")
	if !strings.Contains(buf.String(), `"cmd":"vars"`) {
		t.Errorf("entry should carry the command, got %q", buf.String())
	}

	buf.Reset()
	SetCommand("")
	Info().Msg("hello")
	if strings.Contains(buf.String(), `"cmd"`) {
		t.Errorf("cleared command should not be attached, got %q", buf.String())
	}
}
