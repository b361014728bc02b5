package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB_NAME", "")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("WHATSAPP_TOKEN", "")
	t.Setenv("GOOGLE_SHEET_REPORT_ID", "")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "mongodb://127.0.0.1:27017/bakery", cfg.MongoDB.URI)
	assert.Equal(t, "bakery", cfg.MongoDB.DBName)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "123", cfg.Admin.Password)
	assert.Equal(t, "0 20 * * 0", cfg.Reporting.CronSchedule)
	assert.False(t, cfg.WhatsApp.Enabled())
	assert.False(t, cfg.Sheets.Enabled())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB_NAME", "toratita")
	t.Setenv("WHATSAPP_TOKEN", "token")
	t.Setenv("WHATSAPP_PHONE_NUMBER_ID", "12345")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoDB.URI)
	assert.Equal(t, "toratita", cfg.MongoDB.DBName)
	assert.True(t, cfg.WhatsApp.Enabled())
}

func TestValidateRejectsEmptyCron(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: "5000"},
		MongoDB: MongoDBConfig{URI: "mongodb://127.0.0.1:27017", DBName: "bakery"},
		Admin:   AdminConfig{Username: "admin", Password: "123"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REPORT_CRON_SCHEDULE")
}

func TestSheetsEnabledNeedsCredentialsAndSpreadsheet(t *testing.T) {
	assert.False(t, SheetsConfig{SpreadsheetID: "sheet"}.Enabled())
	assert.False(t, SheetsConfig{CredentialsPath: "creds.json"}.Enabled())
	assert.True(t, SheetsConfig{SpreadsheetID: "sheet", CredentialsPath: "creds.json"}.Enabled())
}
