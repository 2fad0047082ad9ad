// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-intercept/internal/logger"
	"github.com/MKhiriev/go-intercept/internal/utils"
	"github.com/MKhiriev/go-intercept/models"
	"github.com/go-chi/chi/v5"
)

const maxEchoBody = 1 << 20

// readBody reads at most maxEchoBody bytes of the request body. Larger
// bodies fail with *http.MaxBytesError instead of being cut short.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxEchoBody))
}

func writeBodyError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		utils.WriteError(w, fmt.Sprintf("body exceeds %d bytes", maxErr.Limit), http.StatusRequestEntityTooLarge)
		return
	}
	utils.WriteError(w, "cannot read body", http.StatusBadRequest)
}

func (h *Handler) echo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := readBody(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.echo").Msg("failed to read request body")
		writeBodyError(w, err)
		return
	}

	reply := models.EchoReply{
		Method:  r.Method,
		Path:    r.URL.Path,
		Headers: r.Header,
		Body:    string(body),
	}
	if q := r.URL.Query(); len(q) > 0 {
		reply.Query = q
	}
	reply.TraceID, _ = utils.GetTraceIDFromContext(r.Context())

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	if _, err = utils.WriteJSON(w, reply, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.echo").Msg("failed to write reply")
	}
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil || code < http.StatusOK || code > 599 {
		utils.WriteError(w, ErrInvalidStatusCode.Error(), http.StatusBadRequest)
		return
	}

	if code == http.StatusNoContent || code == http.StatusNotModified || r.Method == http.MethodHead {
		w.WriteHeader(code)
		return
	}
	reply := map[string]any{"status": code, "message": http.StatusText(code)}
	if _, err = utils.WriteJSON(w, reply, code); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.status").Msg("failed to write reply")
	}
}
