// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package journal

import (
	"time"

	"github.com/MKhiriev/go-intercept/models"
)

// Entry is one recorded exchange.
type Entry struct {
	ID        string        `json:"id"`
	Method    string        `json:"method"`
	URL       string        `json:"url"`
	Status    int           `json:"status"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewEntry describes resp as an Entry stamped with id and at.
func NewEntry(id string, resp *models.Response, at time.Time) Entry {
	e := Entry{
		ID:        id,
		Method:    resp.Method(),
		Status:    resp.Status,
		Duration:  resp.Duration,
		CreatedAt: at.UTC(),
	}
	if resp.Request != nil {
		e.URL = resp.Request.URL
	}
	if resp.Err != nil {
		e.Error = resp.Err.Error()
	}
	return e
}
