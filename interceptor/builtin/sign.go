// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builtin

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/models"
)

// HeaderSignature carries the hex HMAC-SHA256 of the request payload.
const HeaderSignature = "HashSHA256"

// Sign computes an HMAC-SHA256 over the request body with key and puts the
// hex digest in the HashSHA256 header. []byte and string bodies are signed
// verbatim; other bodies are signed over their JSON encoding, which is what
// the transport sends. Requests without a body and an empty key are left
// untouched.
func Sign(key string) interceptor.RequestInterceptor {
	if key == "" {
		return passRequest
	}
	secret := []byte(key)

	return func(req *models.Request) (*models.Request, error) {
		if req == nil {
			return nil, nil
		}
		payload, err := payloadBytes(req.Body)
		if err != nil {
			return nil, fmt.Errorf("sign request body: %w", err)
		}
		if payload == nil {
			return req, nil
		}
		req.SetHeader(HeaderSignature, Digest(payload, secret))
		return req, nil
	}
}

// Digest returns the hex HMAC-SHA256 of payload under key.
func Digest(payload, key []byte) string {
	h := hmac.New(sha256.New, key)
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

func payloadBytes(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return json.Marshal(b)
	}
}
