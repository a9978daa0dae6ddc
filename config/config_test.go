/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/ctorcb/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()
	assert.Equal(t, config.DefaultLogLevel, got.LogLevel)
	assert.Equal(t, config.DefaultLogFormat, got.LogFormat)
	assert.Equal(t, 4, config.DefaultMaxCallbacks)
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	assert.Equal(t, config.DefaultConfig(), config.NewConfig())
}

func TestWithLogLevel(t *testing.T) {
	c := config.NewConfig(config.WithLogLevel("debug"))
	assert.Equal(t, "debug", c.LogLevel)

	c = config.NewConfig(config.WithLogLevel("debug"), config.WithLogLevel(""))
	assert.Equal(t, config.DefaultLogLevel, c.LogLevel)
}

func TestWithLogFormat(t *testing.T) {
	c := config.NewConfig(config.WithLogFormat(config.FormatConsole))
	assert.Equal(t, config.FormatConsole, c.LogFormat)

	c = config.NewConfig(config.WithLogFormat(""))
	assert.Equal(t, config.DefaultLogFormat, c.LogFormat)
}

func TestLevel(t *testing.T) {
	lvl, err := config.NewConfig(config.WithLogLevel("warn")).Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)

	lvl, err = config.DefaultConfig().Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, lvl)

	_, err = config.NewConfig(config.WithLogLevel("loud")).Level()
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)
}

func TestValidate(t *testing.T) {
	require.NoError(t, config.DefaultConfig().Validate())
	err := config.NewConfig(config.WithLogFormat("xml")).Validate()
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)
}

func TestParse_FromEnv(t *testing.T) {
	t.Setenv("CTORCB_LOG_LEVEL", "debug")
	t.Setenv("CTORCB_LOG_FORMAT", "console")

	cfg, err := config.Parse()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.FormatConsole, cfg.LogFormat)
}

func TestParse_Defaults(t *testing.T) {
	// Setenv registers the restore; Unsetenv clears for this test.
	t.Setenv("CTORCB_LOG_LEVEL", "")
	t.Setenv("CTORCB_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("CTORCB_LOG_LEVEL"))
	require.NoError(t, os.Unsetenv("CTORCB_LOG_FORMAT"))

	cfg, err := config.Parse()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	t.Setenv("CTORCB_LOG_LEVEL", "loud")
	t.Setenv("CTORCB_LOG_FORMAT", "json")

	cfg, err := config.Parse()
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestParse_KeepsValidFields(t *testing.T) {
	t.Setenv("CTORCB_LOG_LEVEL", "debug")
	t.Setenv("CTORCB_LOG_FORMAT", "xml")

	cfg, err := config.Parse()
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.DefaultLogFormat, cfg.LogFormat)
	require.NoError(t, cfg.Validate())
}

func TestParse_BothInvalid(t *testing.T) {
	t.Setenv("CTORCB_LOG_LEVEL", "loud")
	t.Setenv("CTORCB_LOG_FORMAT", "xml")

	cfg, err := config.Parse()
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := config.NewLogger(config.NewConfig(config.WithLogLevel("info")), &buf)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), `"component":"ctorcb"`)
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := config.NewLogger(config.NewConfig(
		config.WithLogLevel("info"),
		config.WithLogFormat(config.FormatConsole),
	), &buf)
	require.NoError(t, err)

	log.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := config.NewLogger(config.NewConfig(config.WithLogFormat("xml")), &bytes.Buffer{})
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)
}
