// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a partial config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json or yaml file path with configs
//	-base path prefix of every route
//	-log-level zerolog level name
//	-lowercase-headers emit lower-cased header names
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-auth-schemes comma-separated custom Authorization schemes
//	-cors enable automatic preflight responses
//	-cors-origin allowed origin for preflight responses
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var base string
	var logLevel string
	var lowercaseHeaders bool
	var tokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration
	var authSchemes string
	var corsEnabled bool
	var corsOrigin string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "Config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "Config file path (alias)")
	fs.StringVar(&base, "base", "", "Route base path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&lowercaseHeaders, "lowercase-headers", false, "Lower-case response header names")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&authSchemes, "auth-schemes", "", "Custom Authorization schemes, comma-separated")
	fs.BoolVar(&corsEnabled, "cors", false, "Answer OPTIONS preflight requests")
	fs.StringVar(&corsOrigin, "cors-origin", "", "Preflight Access-Control-Allow-Origin")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Base:             base,
			LogLevel:         logLevel,
			LowercaseHeaders: lowercaseHeaders,
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		CORS: CORS{
			Enabled: corsEnabled,
			Origin:  corsOrigin,
		},
		Auth: Auth{
			Schemes: splitList(authSchemes),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
