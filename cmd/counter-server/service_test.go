package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/we"
)

func TestCounterServer(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(func() { log.StandardLogger().ReplaceHooks(make(log.LevelHooks)) })

	server := httptest.NewServer(live())
	defer server.Close()

	t.Run("increments through the wired handler", func(t *testing.T) {
		body, err := json.Marshal(we.RemoteCommand{
			CommandName: counter.IncrementCommand,
			Payload:     we.Data{Encoding: "application/json", Data: []byte(`{}`)},
		})
		require.NoError(t, err)

		response, err := http.Post(server.URL+"/counter/server-1", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusOK, response.StatusCode)

		var resource map[string]any
		require.NoError(t, json.NewDecoder(response.Body).Decode(&resource))
		assert.Equal(t, 1.0, resource["count"])
	})

	t.Run("logs each request", func(t *testing.T) {
		hook.Reset()

		response, err := http.Get(server.URL + "/counter/server-2")
		require.NoError(t, err)
		response.Body.Close()

		assert.Equal(t, http.StatusNotFound, response.StatusCode)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "/counter/server-2", entry.Data["uri"])
		assert.Equal(t, http.MethodGet, entry.Data["method"])
		assert.Equal(t, http.StatusNotFound, entry.Data["status"])
	})
}

func TestConfigureLogging(t *testing.T) {
	var out bytes.Buffer

	assert.NoError(t, configureLogging(&out, "debug", "console"))
	assert.Error(t, configureLogging(&out, "loud", "json"))
	assert.Error(t, configureLogging(&out, "info", "xml"))
	assert.NoError(t, configureLogging(&out, "info", "json"))
}

func TestInstallTelemetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	shutdown, err := installTelemetry(ctx, Config{Telemetry: "none"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(ctx))

	_, err = installTelemetry(ctx, Config{Telemetry: "zipkin"})
	assert.Error(t, err)

	_, err = installTelemetry(ctx, Config{Telemetry: "honeycomb"})
	assert.Error(t, err)
}
