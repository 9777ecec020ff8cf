// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. Returns nil if the configuration is valid, or an error wrapping
// one of the ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Base != "" && !strings.HasPrefix(cfg.App.Base, "/") {
		return fmt.Errorf("%w: base %q must start with '/'", ErrInvalidAppConfigs, cfg.App.Base)
	}
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Server.HTTPAddress != "" {
		if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
		}
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.CORS.MaxAge < 0 {
		return fmt.Errorf("%w: negative max age", ErrInvalidCORSConfigs)
	}

	for _, s := range cfg.Auth.Schemes {
		if !httpguts.ValidHeaderFieldName(strings.TrimSpace(s)) {
			return fmt.Errorf("%w: scheme %q", ErrInvalidAuthConfigs, s)
		}
	}

	return nil
}
