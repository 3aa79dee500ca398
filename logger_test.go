package filterer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l, ok := Logger().(*logrus.Logger)
	if !ok {
		t.Fatalf("default logger is %T", Logger())
	}
	if l.IsLevelEnabled(logrus.ErrorLevel) {
		t.Error("default logger should not be enabled for errors")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := logrus.New()
	custom.SetOutput(&buf)
	custom.SetLevel(logrus.DebugLevel)
	SetLogger(custom)

	if Logger() != custom {
		t.Fatal("Logger() did not return the logger set via SetLogger")
	}
	Logger().WithField("key", "value").Debug("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", buf.String())
	}

	SetLogger(nil)
	if l, ok := Logger().(*logrus.Logger); !ok || l.IsLevelEnabled(logrus.ErrorLevel) {
		t.Error("SetLogger(nil) did not restore silent logger")
	}
}
