package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDefault(t *testing.T) {
	c, err := GetConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, Default, *c)
	assert.Equal(t, "127.0.0.1:9660", c.Address())
}

func TestGetConfigOverrides(t *testing.T) {
	c, err := GetConfig([]byte(`{"log-level":"debug","http-port":8080,"max-call-data-size":1024}`))
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, uint16(8080), c.HTTPPort)
	assert.Equal(t, 1024, c.MaxCallDataSize)
	assert.Equal(t, Default.HTTPHost, c.HTTPHost)
	assert.Equal(t, 30*time.Second, c.ReadHeaderTimeout)
}

func TestGetConfigInvalid(t *testing.T) {
	_, err := GetConfig([]byte(`{"log-level":"loud"}`))
	assert.Error(t, err)

	_, err = GetConfig([]byte(`{"max-call-data-size":0}`))
	assert.Error(t, err)

	_, err = GetConfig([]byte(`{`))
	assert.Error(t, err)
}
