// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-intercept/models"
)

// Invocation is one request described on the command line.
type Invocation struct {
	Method       string
	URL          string
	Body         string
	Headers      http.Header
	ResponseType models.ResponseType
	Verbose      bool
}

// headerList collects repeated -H flags.
type headerList []string

func (h *headerList) String() string { return strings.Join(*h, ", ") }

func (h *headerList) Set(v string) error {
	*h = append(*h, v)
	return nil
}

// InvocationFlags holds the raw request flags until [InvocationFlags.Invocation]
// validates them.
type InvocationFlags struct {
	method       string
	url          string
	body         string
	headers      headerList
	responseType string
	verbose      bool
}

// RegisterInvocationFlags defines the request flags on fs. They are parsed
// together with the configuration flags by config.GetClientConfig.
func RegisterInvocationFlags(fs *flag.FlagSet) *InvocationFlags {
	f := new(InvocationFlags)
	fs.StringVar(&f.method, "X", http.MethodGet, "HTTP method")
	fs.StringVar(&f.url, "url", "", "request url, absolute or relative to -base-url")
	fs.StringVar(&f.body, "d", "", "request body")
	fs.Var(&f.headers, "H", "request header `Name: value`, may be repeated")
	fs.StringVar(&f.responseType, "type", string(models.ResponseTypeText), "response type: json, text or bytes")
	fs.BoolVar(&f.verbose, "v", false, "print response headers")
	return f
}

// Invocation validates the parsed flags. A bare positional argument is used
// as the url when -url is empty.
func (f *InvocationFlags) Invocation(args []string) (Invocation, error) {
	inv := Invocation{
		Method:  strings.ToUpper(strings.TrimSpace(f.method)),
		URL:     strings.TrimSpace(f.url),
		Body:    f.body,
		Headers: make(http.Header),
		Verbose: f.verbose,
	}
	if inv.URL == "" && len(args) > 0 {
		inv.URL = args[0]
	}
	if inv.URL == "" {
		return Invocation{}, ErrNoURL
	}
	if inv.Method == "" {
		inv.Method = http.MethodGet
	}

	switch rt := models.ResponseType(strings.ToLower(f.responseType)); rt {
	case models.ResponseTypeJSON, models.ResponseTypeText, models.ResponseTypeBytes:
		inv.ResponseType = rt
	default:
		return Invocation{}, fmt.Errorf("%w: %q", ErrResponseType, f.responseType)
	}

	for _, raw := range f.headers {
		name, value, ok := strings.Cut(raw, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return Invocation{}, fmt.Errorf("%w: %q", ErrBadHeader, raw)
		}
		inv.Headers.Add(name, strings.TrimSpace(value))
	}

	if inv.Body != "" && inv.Headers.Get("Content-Type") == "" && json.Valid([]byte(inv.Body)) {
		inv.Headers.Set("Content-Type", "application/json")
	}
	return inv, nil
}
