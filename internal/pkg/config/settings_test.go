//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings LoggerSettings
		wantErr  bool
	}{
		{
			name:     "valid console logger",
			settings: LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole},
			wantErr:  false,
		},
		{
			name: "valid file logger",
			settings: LoggerSettings{
				LogLevel: LogLevelDebug, LogType: LogTypeFile,
				FilePath: "/var/log/tonban/api.log", MaxSize: 10, MaxBackups: 3, MaxAge: 28,
			},
			wantErr: false,
		},
		{
			name:     "unknown log level",
			settings: LoggerSettings{LogLevel: "trace", LogType: LogTypeConsole},
			wantErr:  true,
		},
		{
			name:     "unknown log type",
			settings: LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"},
			wantErr:  true,
		},
		{
			name: "file logger without path",
			settings: LoggerSettings{
				LogLevel: LogLevelInfo, LogType: LogTypeFile,
				MaxSize: 10, MaxBackups: 3, MaxAge: 28,
			},
			wantErr: true,
		},
		{
			name: "file logger max size out of range",
			settings: LoggerSettings{
				LogLevel: LogLevelInfo, LogType: LogTypeFile,
				FilePath: "/var/log/tonban/api.log", MaxSize: 500, MaxBackups: 3, MaxAge: 28,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDatabaseSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings DatabaseSettings
		wantErr  bool
	}{
		{
			name:     "sqlite without dsn",
			settings: DatabaseSettings{Type: SqliteDbType, Name: "tonban"},
			wantErr:  false,
		},
		{
			name:     "sqlite with file dsn",
			settings: DatabaseSettings{Type: SqliteDbType, DSN: "/data/tonban.db", Name: "tonban"},
			wantErr:  false,
		},
		{
			name: "postgres with dsn",
			settings: DatabaseSettings{
				Type: PostgresDbType,
				DSN:  "host=localhost user=postgres password=postgres port=5432 sslmode=disable",
				Name: "tonban",
			},
			wantErr: false,
		},
		{
			name:     "postgres without dsn",
			settings: DatabaseSettings{Type: PostgresDbType, Name: "tonban"},
			wantErr:  true,
		},
		{
			name:     "unsupported type",
			settings: DatabaseSettings{Type: "mysql", Name: "tonban"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServerSettings_Validate(t *testing.T) {
	settings := ServerSettings{Port: DefaultPort, ReadHeaderTimeoutSec: 10, ShutdownTimeoutSec: 15}
	assert.NoError(t, settings.Validate())
	assert.Equal(t, ":10010", settings.Addr())

	settings = ServerSettings{Port: 0}
	assert.Error(t, settings.Validate())

	settings = ServerSettings{Port: 70000}
	assert.Error(t, settings.Validate())
}

func TestImportSettings_Validate(t *testing.T) {
	settings := ImportSettings{Workers: 4, BatchSize: 500}
	assert.NoError(t, settings.Validate())

	settings = ImportSettings{Workers: 0, BatchSize: 500}
	assert.Error(t, settings.Validate())

	settings = ImportSettings{Workers: 4, BatchSize: 20000}
	assert.Error(t, settings.Validate())
}
