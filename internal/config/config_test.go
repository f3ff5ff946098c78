package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "fleet_50_entries.xlsx", cfg.Data.FleetPath)
	assert.Equal(t, "Trip_Closure_Sheet_Oct2024_Mar2025.xlsx", cfg.Data.ClosurePath)
	assert.Equal(t, 7860, cfg.Server.Port)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.InDelta(t, 1.0, cfg.Auth.LoginRate, 0.001)
	assert.Equal(t, 5, cfg.Auth.LoginBurst)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "fleetsight.db", cfg.Store.Path)
	assert.Equal(t, "AI_Report_Summary.txt", cfg.Report.OutputPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
data:
  fleet_path: /data/trips.xlsx
  closure_path: /data/closures.xlsx
  sheet_name: Trips
server:
  port: 9000
auth:
  jwt_secret: test-secret
store:
  driver: postgres
  database_url: postgres://localhost/fleetsight
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/trips.xlsx", cfg.Data.FleetPath)
	assert.Equal(t, "/data/closures.xlsx", cfg.Data.ClosurePath)
	assert.Equal(t, "Trips", cfg.Data.SheetName)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/fleetsight", cfg.Store.DatabaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("FLEETSIGHT_SERVER_PORT", "8181")
	t.Setenv("FLEETSIGHT_AUTH_JWT_SECRET", "env-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{"json format", LogConfig{Level: "info", Format: "json"}, false},
		{"console format", LogConfig{Level: "debug", Format: "console"}, false},
		{"bad level", LogConfig{Level: "shouting", Format: "json"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, zap.L())
		})
	}
}
