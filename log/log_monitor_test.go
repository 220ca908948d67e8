package log_test

import (
	"testing"
	"time"

	"github.com/Cipheritall/crypto-primitives-sub001/log"
	"github.com/stretchr/testify/require"
)

// TestLogMonitorPanicOnError tests that the PanicOnErrorHook correctly panics when log.Error is called
func TestLogMonitorPanicOnError(t *testing.T) {
	// Test that the hook panics on Error level logs
	t.Run("panic on log.Error", func(t *testing.T) {
		log.Error("this should not panic before installing hook")

		ch := make(chan string, 1)
		previousLogger := log.EnablePanicOnErrorWithHandler(t.Name(), 100*time.Millisecond, func(msg string) {
			ch <- msg
		})
		defer log.RestoreLogger(previousLogger)

		log.Error("test error message")

		select {
		case got := <-ch:
			require.Regexp(t, `ERROR found in logs during test TestLogMonitorPanicOnError/panic_on_log\.Error: test error message`, got)
		case <-time.After(500 * time.Millisecond):
			t.Fatal("expected delayed panic handler to fire")
		}
	})

	// Test that the hook panics on Errorw level logs
	t.Run("panic on log.Errorw", func(t *testing.T) {
		ch := make(chan string, 1)
		previousLogger := log.EnablePanicOnErrorWithHandler(t.Name(), 100*time.Millisecond, func(msg string) {
			ch <- msg
		})
		defer log.RestoreLogger(previousLogger)

		log.Errorw(nil, "test errorw message")

		select {
		case got := <-ch:
			require.Regexp(t, `ERROR found in logs during test TestLogMonitorPanicOnError/panic_on_log\.Errorw: test errorw message`, got)
		case <-time.After(500 * time.Millisecond):
			t.Fatal("expected delayed panic handler to fire")
		}
	})

	// Test that the hook does NOT panic on lower level logs
	t.Run("no panic on log.Warn", func(t *testing.T) {
		ch := make(chan string, 1)
		previousLogger := log.EnablePanicOnErrorWithHandler(t.Name(), 100*time.Millisecond, func(msg string) {
			ch <- msg
		})
		defer log.RestoreLogger(previousLogger)

		log.Warn("test warning message")
		log.Info("test info message")
		log.Debug("test debug message")

		select {
		case got := <-ch:
			t.Fatalf("unexpected panic handler call: %s", got)
		case <-time.After(200 * time.Millisecond):
		}
	})

	// Test that logger is properly restored
	t.Run("logger restoration", func(t *testing.T) {
		ch := make(chan string, 1)
		previousLogger := log.EnablePanicOnErrorWithHandler(t.Name(), 100*time.Millisecond, func(msg string) {
			ch <- msg
		})
		log.RestoreLogger(previousLogger)

		log.Error("this should not panic after restoration")

		select {
		case got := <-ch:
			t.Fatalf("unexpected panic handler call after restoration: %s", got)
		case <-time.After(200 * time.Millisecond):
		}
	})
}
