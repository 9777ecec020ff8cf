// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] in the layout accepted by
// JSON and YAML config files.
type StructuredFileConfig struct {
	App struct {
		Version          string `json:"version" yaml:"version"`
		Base             string `json:"base" yaml:"base"`
		LogLevel         string `json:"log_level" yaml:"log_level"`
		LowercaseHeaders bool   `json:"lowercase_headers" yaml:"lowercase_headers"`
		TokenSignKey     string `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer      string `json:"token_issuer" yaml:"token_issuer"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	CORS struct {
		Enabled       bool     `json:"enabled" yaml:"enabled"`
		Origin        string   `json:"origin" yaml:"origin"`
		Methods       string   `json:"methods" yaml:"methods"`
		Headers       string   `json:"headers" yaml:"headers"`
		ExposeHeaders string   `json:"expose_headers" yaml:"expose_headers"`
		MaxAge        Duration `json:"max_age" yaml:"max_age"`
		Credentials   bool     `json:"credentials" yaml:"credentials"`
	} `json:"cors,omitempty" yaml:"cors,omitempty"`

	Auth struct {
		Schemes []string `json:"schemes" yaml:"schemes"`
	} `json:"auth,omitempty" yaml:"auth,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Version:          fileCfg.App.Version,
			Base:             fileCfg.App.Base,
			LogLevel:         fileCfg.App.LogLevel,
			LowercaseHeaders: fileCfg.App.LowercaseHeaders,
			TokenSignKey:     fileCfg.App.TokenSignKey,
			TokenIssuer:      fileCfg.App.TokenIssuer,
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Server.RequestTimeout),
		},
		CORS: CORS{
			Enabled:       fileCfg.CORS.Enabled,
			Origin:        fileCfg.CORS.Origin,
			Methods:       fileCfg.CORS.Methods,
			Headers:       fileCfg.CORS.Headers,
			ExposeHeaders: fileCfg.CORS.ExposeHeaders,
			MaxAge:        time.Duration(fileCfg.CORS.MaxAge),
			Credentials:   fileCfg.CORS.Credentials,
		},
		Auth: Auth{
			Schemes: fileCfg.Auth.Schemes,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds, in JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
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
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
