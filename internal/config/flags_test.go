// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		host        string
		port        int
	}{
		{name: "localhost", input: "localhost:8080", host: "localhost", port: 8080},
		{name: "ipv4", input: "0.0.0.0:9000", host: "0.0.0.0", port: 9000},
		{name: "all interfaces", input: ":8080", host: "", port: 8080},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.host, a.Host)
			assert.Equal(t, tt.port, a.Port)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:9999",
		"-driver", "postgres",
		"-d", "postgres://localhost/tasks",
		"-config", "/etc/tasks.json",
		"-password-hash-cost", "6",
		"-default-per-page", "5",
		"-max-per-page", "25",
		"-request-timeout", "3s",
		"-shutdown-timeout", "1m",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/tasks", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/tasks.json", cfg.JSONFilePath)
	assert.Equal(t, 6, cfg.App.PasswordHashCost)
	assert.Equal(t, 5, cfg.App.DefaultPerPage)
	assert.Equal(t, 25, cfg.App.MaxPerPage)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Server.ShutdownTimeout)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "cfg.json"})

	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nowhere"})
	require.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-token-sign-key", "x"})
	require.Error(t, err)
}
