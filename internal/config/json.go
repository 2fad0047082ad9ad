// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations accept strings like "30s" or integer nanoseconds.
type StructuredJSONConfig struct {
	Client struct {
		BaseURL     string   `json:"base_url"`
		Timeout     Duration `json:"timeout"`
		UserAgent   string   `json:"user_agent"`
		BearerToken string   `json:"bearer_token"`
		HashKey     string   `json:"hash_key"`
		RateLimit   float64  `json:"rate_limit"`
		RateBurst   int      `json:"rate_burst"`
	} `json:"client,omitempty"`

	Journal struct {
		Driver string `json:"driver"`
		DSN    string `json:"dsn"`
	} `json:"journal,omitempty"`

	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		HashKey        string   `json:"hash_key"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Client: Client{
			BaseURL:     jsonCfg.Client.BaseURL,
			Timeout:     time.Duration(jsonCfg.Client.Timeout),
			UserAgent:   jsonCfg.Client.UserAgent,
			BearerToken: jsonCfg.Client.BearerToken,
			HashKey:     jsonCfg.Client.HashKey,
			RateLimit:   jsonCfg.Client.RateLimit,
			RateBurst:   jsonCfg.Client.RateBurst,
		},
		Journal: Journal{
			Driver: jsonCfg.Journal.Driver,
			DSN:    jsonCfg.Journal.DSN,
		},
		Server: Server{
			Address:        jsonCfg.Server.Address,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			HashKey:        jsonCfg.Server.HashKey,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
