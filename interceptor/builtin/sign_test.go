// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builtin

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest_KnownVector(t *testing.T) {
	// RFC 4231 test case 2.
	got := Digest([]byte("what do ya want for nothing?"), []byte("Jefe"))
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}

func TestSign(t *testing.T) {
	key := "k"
	tests := []struct {
		name    string
		body    any
		payload string
	}{
		{name: "string body", body: "hello", payload: "hello"},
		{name: "bytes body", body: []byte("raw"), payload: "raw"},
		{name: "struct body", body: map[string]int{"a": 1}, payload: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(http.MethodPost)
			req.Body = tt.body

			out, err := Sign(key)(req)
			require.NoError(t, err)
			assert.Equal(t, Digest([]byte(tt.payload), []byte(key)), out.Header(HeaderSignature))
		})
	}
}

func TestSign_NoBodyOrKey(t *testing.T) {
	out, err := Sign("k")(newRequest(http.MethodGet))
	require.NoError(t, err)
	assert.Empty(t, out.Header(HeaderSignature))

	req := newRequest(http.MethodPost)
	req.Body = "hello"
	out, err = Sign("")(req)
	require.NoError(t, err)
	assert.Empty(t, out.Header(HeaderSignature))
}

func TestSign_UnencodableBody(t *testing.T) {
	req := newRequest(http.MethodPost)
	req.Body = make(chan int)

	out, err := Sign("k")(req)
	require.Error(t, err)
	assert.Nil(t, out)
}
