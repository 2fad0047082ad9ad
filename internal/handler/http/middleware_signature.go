// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/hmac"
	"io"
	"net/http"

	"github.com/MKhiriev/go-intercept/interceptor/builtin"
	"github.com/MKhiriev/go-intercept/internal/logger"
	"github.com/MKhiriev/go-intercept/internal/utils"
)

// checkSignature verifies the HashSHA256 header against the HMAC-SHA256 of
// the raw body. Requests without a body pass unchecked.
func (h *Handler) checkSignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := readBody(w, r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkSignature").Msg("failed to read request body")
			writeBodyError(w, err)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		got := r.Header.Get(builtin.HeaderSignature)
		if got == "" {
			log.Warn().Str("func", "*Handler.checkSignature").Msg("signature header missing")
			utils.WriteError(w, ErrMissingSignature.Error(), http.StatusBadRequest)
			return
		}

		want := builtin.Digest(body, h.hashKey)
		if !hmac.Equal([]byte(got), []byte(want)) {
			log.Warn().Str("func", "*Handler.checkSignature").
				Str("hash from request", got).
				Str("hashed body", want).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrSignatureMismatch.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
