// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interceptor

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-intercept/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetDefault(t *testing.T) {
	t.Helper()
	Reset()
	t.Cleanup(Reset)
}

func TestCreate_IsIdempotent(t *testing.T) {
	resetDefault(t)

	first := Create(WithRequestInterceptors(appendHeader("From", "A")))
	second := Create(
		WithRequestInterceptors(appendHeader("From", "B"), appendHeader("From", "B")),
		WithResponseInterceptors(appendResponseHeader("From", "B")),
	)

	assert.Same(t, first, second)
	assert.Equal(t, 1, second.Len(KindRequest, ScopeGlobal))
	assert.Zero(t, second.Len(KindResponse, ScopeGlobal))

	got, err := ReduceRequestInterceptors(models.NewRequest(context.Background(), http.MethodGet, "/"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, got.Headers.Values("From"))
}

func TestInstance_LazilyCreatesEmptyRegistry(t *testing.T) {
	resetDefault(t)
	require.False(t, HasInstance())

	reg := Instance()

	assert.True(t, HasInstance())
	assert.Same(t, reg, Instance())
	assert.Same(t, reg, Create(WithRequestInterceptors(appendHeader("X", "1"))))
	for _, scope := range Scopes() {
		assert.Zero(t, reg.Len(KindRequest, scope))
		assert.Zero(t, reg.Len(KindResponse, scope))
	}
}

func TestHasInstance_AfterCreate(t *testing.T) {
	resetDefault(t)
	require.False(t, HasInstance())

	Create()

	assert.True(t, HasInstance())
}

func TestReset_NextCreateBuildsFreshRegistry(t *testing.T) {
	resetDefault(t)

	old := Create(WithRequestInterceptors(appendHeader("X", "old")))
	Reset()
	require.False(t, HasInstance())

	fresh := Create(WithRequestInterceptors(appendHeader("X", "new")))

	assert.NotSame(t, old, fresh)
	got, err := ReduceRequestInterceptors(models.NewRequest(context.Background(), http.MethodGet, "/"))
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got.Headers.Values("X"))
}

func TestReduceResponseInterceptors_UsesDefaultRegistry(t *testing.T) {
	resetDefault(t)

	Instance().AddPostResponseInterceptor(appendResponseHeader("Seen", "post"))

	got, err := ReduceResponseInterceptors(newResponse(http.MethodPost))
	require.NoError(t, err)
	assert.Equal(t, "post", got.Headers.Get("Seen"))
}
