// Reelmatch - Hybrid Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TestGenerateRequestID(t *testing.T) {
	id1 := GenerateRequestID()
	id2 := GenerateRequestID()

	if id1 == id2 {
		t.Error("expected unique request IDs")
	}
	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("GenerateRequestID() = %q, not a UUID: %v", id1, err)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()

	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext() = %q, want %q", got, "req-123")
	}
}

func TestContextWithNewRequestID(t *testing.T) {
	ctx := ContextWithNewRequestID(context.Background())
	if RequestIDFromContext(ctx) == "" {
		t.Error("expected request ID in context")
	}
}

func TestContextWithLogger(t *testing.T) {
	var buf bytes.Buffer
	custom := zerolog.New(&buf).With().Str("custom", "yes").Logger()

	ctx := ContextWithLogger(context.Background(), custom)
	logger := LoggerFromContext(ctx)
	logger.Info().Msg("from context")

	if !strings.Contains(buf.String(), `"custom":"yes"`) {
		t.Errorf("expected stored logger to be used: %s", buf.String())
	}
}

func TestContextLogger(t *testing.T) {
	if _, ok := ContextLogger(context.Background()); ok {
		t.Error("ContextLogger(empty) ok = true, want false")
	}

	ctx := ContextWithLogger(context.Background(), zerolog.Nop())
	if _, ok := ContextLogger(ctx); !ok {
		t.Error("ContextLogger() ok = false, want true")
	}
}

func TestLoggerFromContext_FallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	logger := LoggerFromContext(context.Background())
	logger.Info().Msg("global")

	if !strings.Contains(buf.String(), "global") {
		t.Errorf("expected global logger output: %s", buf.String())
	}
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	ctx := ContextWithRequestID(context.Background(), "req-456")
	Ctx(ctx).Info().Msg("context test")

	if !strings.Contains(buf.String(), `"request_id":"req-456"`) {
		t.Errorf("expected request_id in output: %s", buf.String())
	}
}

func TestCtx_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	Ctx(context.Background()).Info().Msg("plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id in output: %s", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	logger := WithComponent("recommend")
	logger.Info().Msg("started")

	if !strings.Contains(buf.String(), `"component":"recommend"`) {
		t.Errorf("expected component in output: %s", buf.String())
	}
}
