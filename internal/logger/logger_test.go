package logger

import "testing"

func TestDefaultIsUsable(t *testing.T) {
	// The package-level logger must be safe before Init is called.
	if Log == nil || Sugar == nil {
		t.Fatal("default logger is nil")
	}
	Sugar.Infow("noop", "key", "value")
}

func TestInit(t *testing.T) {
	Init()
	if Log == nil || Sugar == nil {
		t.Fatal("Init left logger nil")
	}
	Sync()
}
