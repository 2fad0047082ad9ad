// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-intercept/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

func statusStyle(resp *models.Response) lipgloss.Style {
	switch {
	case resp.Status == 0 || resp.Status >= http.StatusInternalServerError:
		return errorStyle
	case resp.Status >= http.StatusBadRequest:
		return warnStyle
	default:
		return okStyle
	}
}

func statusText(resp *models.Response) string {
	if resp.Status == 0 {
		if resp.Err != nil {
			return "ERROR " + resp.Err.Error()
		}
		return "ERROR"
	}
	return fmt.Sprintf("%d %s", resp.Status, http.StatusText(resp.Status))
}

// renderResponse writes a status line, optionally the response headers, and
// the body decoded according to the request's response type.
func renderResponse(w io.Writer, resp *models.Response, verbose bool) error {
	url := ""
	if resp.Request != nil {
		url = resp.Request.URL
	}

	line := fmt.Sprintf("%s %s %s %s",
		resp.Method(),
		url,
		statusStyle(resp).Render(statusText(resp)),
		helpStyle.Render(resp.Duration.String()),
	)
	if _, err := fmt.Fprintln(w, strings.TrimSpace(line)); err != nil {
		return err
	}

	if verbose {
		keys := make([]string, 0, len(resp.Headers))
		for k := range resp.Headers {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			for _, v := range resp.Headers[k] {
				if _, err := fmt.Fprintf(w, "%s %s\n", helpStyle.Render(k+":"), v); err != nil {
					return err
				}
			}
		}
	}

	body, err := formatBody(resp)
	if err != nil || len(body) == 0 {
		return err
	}
	if _, err = w.Write(body); err != nil {
		return err
	}
	if body[len(body)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

func formatBody(resp *models.Response) ([]byte, error) {
	switch v := resp.Value.(type) {
	case nil:
		return resp.Body, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return json.MarshalIndent(v, "", "  ")
	}
}
