package state

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"thesisdoc/common"
	"thesisdoc/config"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Variant != common.VariantFull {
		t.Errorf("default variant = %v, want %v", env.Variant, common.VariantFull)
	}
}

func TestEnvFromContext_PanicsWithoutEnv(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for context without environment")
		}
	}()
	EnvFromContext(context.Background())
}

func TestUptime(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))
	time.Sleep(5 * time.Millisecond)
	if env.Uptime() < 5*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 5ms", env.Uptime())
	}
}

func TestRedirectAndRestoreStdLog(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	// no logger - both calls are no-ops
	env.RedirectStdLog()
	env.RestoreStdLog()

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t)
	env.RedirectStdLog()
	if env.restoreStdLog == nil {
		t.Fatal("RedirectStdLog() did not install restore function")
	}
	env.RestoreStdLog()
}
