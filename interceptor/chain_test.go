// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package interceptor

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-intercept/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendHeader(key, value string) RequestInterceptor {
	return func(req *models.Request) (*models.Request, error) {
		req.Headers.Add(key, value)
		return req, nil
	}
}

func TestExecute_EmptyChainReturnsInput(t *testing.T) {
	req := models.NewRequest(context.Background(), http.MethodGet, "/users")

	got, err := Execute(req, []RequestInterceptor{})
	require.NoError(t, err)
	assert.Same(t, req, got)

	got, err = Execute(req, []RequestInterceptor(nil))
	require.NoError(t, err)
	assert.Same(t, req, got)
}

func TestExecute_PreservesOrder(t *testing.T) {
	chain := []func(string) (string, error){
		func(s string) (string, error) { return s + "1", nil },
		func(s string) (string, error) { return s + "2", nil },
		func(s string) (string, error) { return s + "3", nil },
	}

	got, err := Execute("x", chain)
	require.NoError(t, err)
	assert.Equal(t, "x123", got)
}

func TestExecute_FeedsEachResultToNext(t *testing.T) {
	replacement := models.NewRequest(context.Background(), http.MethodPost, "/other")
	var seen *models.Request

	chain := []RequestInterceptor{
		func(*models.Request) (*models.Request, error) { return replacement, nil },
		func(req *models.Request) (*models.Request, error) {
			seen = req
			return req, nil
		},
	}

	got, err := Execute(models.NewRequest(context.Background(), http.MethodGet, "/"), chain)
	require.NoError(t, err)
	assert.Same(t, replacement, seen)
	assert.Same(t, replacement, got)
}

func TestExecute_ErrorStopsChain(t *testing.T) {
	boom := errors.New("boom")
	calls := make([]int, 0, 3)

	chain := []RequestInterceptor{
		func(req *models.Request) (*models.Request, error) {
			calls = append(calls, 1)
			return req, nil
		},
		func(req *models.Request) (*models.Request, error) {
			calls = append(calls, 2)
			return nil, boom
		},
		func(req *models.Request) (*models.Request, error) {
			calls = append(calls, 3)
			return req, nil
		},
	}

	got, err := Execute(models.NewRequest(context.Background(), http.MethodGet, "/"), chain)

	require.Error(t, err)
	assert.Equal(t, boom, err)
	assert.Nil(t, got)
	assert.Equal(t, []int{1, 2}, calls)
}

func TestScopeForMethod(t *testing.T) {
	tests := []struct {
		method string
		scope  Scope
		ok     bool
	}{
		{http.MethodGet, ScopeGet, true},
		{http.MethodPost, ScopePost, true},
		{http.MethodPut, ScopePut, true},
		{http.MethodDelete, ScopeDelete, true},
		{http.MethodOptions, ScopeOptions, true},
		{http.MethodTrace, ScopeTrace, true},
		{"get", "", false},
		{"Post", "", false},
		{http.MethodPatch, "", false},
		{http.MethodHead, "", false},
		{"", "", false},
		{"GLOBAL", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			scope, ok := ScopeForMethod(tt.method)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.scope, scope)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "request", KindRequest.String())
	assert.Equal(t, "response", KindResponse.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
