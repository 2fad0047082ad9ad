// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builtin

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-intercept/interceptor"
	"github.com/MKhiriev/go-intercept/models"
	"github.com/golang-jwt/jwt/v5"
)

// now is swapped in tests.
var now = time.Now

// BearerToken sets "Authorization: Bearer <token>" on requests that carry no
// Authorization header yet. An empty token yields a pass-through interceptor.
//
// Tokens shaped like a JWT are decoded without signature verification and
// the request fails with [ErrTokenExpired] once the exp claim has passed, so
// a stale credential never reaches the wire. Opaque tokens are attached
// as-is.
func BearerToken(token string) interceptor.RequestInterceptor {
	token = strings.TrimSpace(token)
	if token == "" {
		return passRequest
	}
	isJWT := strings.Count(token, ".") == 2

	return func(req *models.Request) (*models.Request, error) {
		if req == nil {
			return nil, nil
		}
		if req.Header("Authorization") != "" {
			return req, nil
		}
		if isJWT {
			if err := checkExpiry(token); err != nil {
				return nil, err
			}
		}
		req.SetHeader("Authorization", "Bearer "+token)
		return req, nil
	}
}

func checkExpiry(token string) error {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if exp != nil && !now().Before(exp.Time) {
		return ErrTokenExpired
	}
	return nil
}
