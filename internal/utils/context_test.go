// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceIDContext(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc")

	got, ok := GetTraceIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc", got)
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	got, ok := GetTraceIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	_, ok := GetTraceIDFromContext(ctx)
	assert.False(t, ok)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}
