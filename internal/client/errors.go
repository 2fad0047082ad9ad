// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoTransport  = errors.New("no transport provided")
	ErrNoURL        = errors.New("no request url provided")
	ErrBadHeader    = errors.New("header must look like `Name: value`")
	ErrResponseType = errors.New("unknown response type")
)
