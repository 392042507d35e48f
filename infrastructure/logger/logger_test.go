package logger

import (
	"bytes"
	"strings"
	"testing"
)

type bufferWriteCloser struct {
	bytes.Buffer
}

func (*bufferWriteCloser) Close() error {
	return nil
}

func TestLoggerFiltering(t *testing.T) {
	backend := NewBackendWithFlags(0)
	buffer := &bufferWriteCloser{}
	if err := backend.AddLogWriter(buffer, LevelInfo); err != nil {
		t.Fatalf("TestLoggerFiltering: unexpected error: %+v", err)
	}

	log := backend.Logger("TEST")
	log.SetLevel(LevelInfo)
	if err := backend.Run(); err != nil {
		t.Fatalf("TestLoggerFiltering: unexpected error: %+v", err)
	}

	log.Infof("included message %d", 42)
	log.Debugf("excluded message")
	backend.Close()

	output := buffer.String()
	if !strings.Contains(output, "included message 42") {
		t.Errorf("TestLoggerFiltering: info message missing from output %q", output)
	}
	if !strings.Contains(output, "[INF] TEST") {
		t.Errorf("TestLoggerFiltering: header missing from output %q", output)
	}
	if strings.Contains(output, "excluded message") {
		t.Errorf("TestLoggerFiltering: debug message leaked into output %q", output)
	}
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		ok       bool
	}{
		{"trace", LevelTrace, true},
		{"DEBUG", LevelDebug, true},
		{"wrn", LevelWarn, true},
		{"off", LevelOff, true},
		{"nonsense", LevelInfo, false},
	}

	for i, test := range tests {
		level, ok := LevelFromString(test.input)
		if level != test.expected || ok != test.ok {
			t.Errorf("TestLevelFromString #%d failed: got (%s, %t) want (%s, %t)",
				i, level, ok, test.expected, test.ok)
		}
	}
}

func TestRegisterSubSystemReturnsSameLogger(t *testing.T) {
	first := RegisterSubSystem("RGTS")
	second := RegisterSubSystem("RGTS")
	if first != second {
		t.Errorf("TestRegisterSubSystemReturnsSameLogger: got distinct loggers for one tag")
	}
}
