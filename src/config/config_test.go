package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	RegisterCustomValidators()

	tests := []struct {
		name          string
		config        Config
		expectedError bool
		errorContains string
	}{
		{
			name: "valid config",
			config: Config{
				Port:     "8080",
				DBHost:   "localhost",
				DBPort:   "5432",
				DBName:   "testdb",
				DBUser:   "testuser",
				DBPass:   "testpass",
				DBType:   "postgres",
				Mode:     "dev",
				Timezone: "UTC",
			},
			expectedError: false,
		},
		{
			name: "missing required port",
			config: Config{
				DBHost:   "localhost",
				DBPort:   "5432",
				DBName:   "testdb",
				DBUser:   "testuser",
				DBPass:   "testpass",
				DBType:   "postgres",
				Mode:     "dev",
				Timezone: "UTC",
			},
			expectedError: true,
			errorContains: "Port is required",
		},
		{
			name: "invalid port number",
			config: Config{
				Port:     "99999",
				DBHost:   "localhost",
				DBPort:   "5432",
				DBName:   "testdb",
				DBUser:   "testuser",
				DBPass:   "testpass",
				DBType:   "postgres",
				Mode:     "dev",
				Timezone: "UTC",
			},
			expectedError: true,
			errorContains: "Port must be a valid port number",
		},
		{
			name: "invalid database type",
			config: Config{
				Port:     "8080",
				DBHost:   "localhost",
				DBPort:   "5432",
				DBName:   "testdb",
				DBUser:   "testuser",
				DBPass:   "testpass",
				DBType:   "invalid-db",
				Mode:     "dev",
				Timezone: "UTC",
			},
			expectedError: true,
			errorContains: "DBType must be one of: postgres, postgresql, mysql, sqlite, mongo, mongodb",
		},
		{
			name: "invalid mode",
			config: Config{
				Port:     "8080",
				DBHost:   "localhost",
				DBPort:   "5432",
				DBName:   "testdb",
				DBUser:   "testuser",
				DBPass:   "testpass",
				DBType:   "postgres",
				Mode:     "invalid",
				Timezone: "UTC",
			},
			expectedError: true,
			errorContains: "Mode must be one of: dev prod test",
		},
		{
			name: "invalid loki url",
			config: Config{
				Port:     "8080",
				DBHost:   "localhost",
				DBPort:   "5432",
				DBName:   "testdb",
				DBUser:   "testuser",
				DBPass:   "testpass",
				DBType:   "postgres",
				Mode:     "dev",
				LokiURL:  "not-a-url",
				Timezone: "UTC",
			},
			expectedError: true,
			errorContains: "LokiURL must be a valid URL",
		},
		{
			name: "valid SQLite config",
			config: Config{
				Port:     "8080",
				DBName:   "test.db",
				DBType:   "sqlite",
				Mode:     "dev",
				Timezone: "UTC",
			},
			expectedError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCustomRules(t *testing.T) {
	tests := []struct {
		name          string
		config        Config
		expectedError bool
		errorContains string
	}{
		{
			name: "postgres missing host",
			config: Config{
				DBType: "postgres",
				DBPort: "5432",
				DBUser: "u",
				DBPass: "p",
			},
			expectedError: true,
			errorContains: "DB_HOST is required",
		},
		{
			name: "postgres non-numeric port",
			config: Config{
				DBType: "postgres",
				DBHost: "localhost",
				DBPort: "not-a-number",
				DBUser: "u",
				DBPass: "p",
			},
			expectedError: true,
			errorContains: "DB_PORT must be a valid number",
		},
		{
			name: "sqlite missing db name",
			config: Config{
				DBType: "sqlite",
			},
			expectedError: true,
			errorContains: "DB_NAME (database file path) is required",
		},
		{
			name: "sqlite with db name is valid",
			config: Config{
				DBType: "sqlite",
				DBName: "test.db",
				Port:   "8080",
			},
			expectedError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCustomRules(&tt.config)
			if tt.expectedError {
				assert.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	config := Config{}
	applyDefaults(&config)

	assert.Equal(t, "dev", config.Mode)
	assert.Equal(t, "UTC", config.Timezone)
	assert.Equal(t, "8034", config.Port)
}

func TestCustomValidators(t *testing.T) {
	RegisterCustomValidators()

	t.Run("validatePort", func(t *testing.T) {
		tests := []struct {
			port  string
			valid bool
		}{
			{"8080", true},
			{"80", true},
			{"443", true},
			{"1", true},
			{"65535", true},
			{"0", false},
			{"65536", false},
			{"abc", false},
			{"", false},
		}

		for _, tt := range tests {
			config := Config{
				Port:     tt.port,
				DBName:   "test",
				DBType:   "sqlite",
				Mode:     "dev",
				Timezone: "UTC",
			}
			err := validate.Struct(config)
			if tt.valid {
				assert.NoError(t, err, "Port %s should be valid", tt.port)
			} else {
				assert.Error(t, err, "Port %s should be invalid", tt.port)
			}
		}
	})

	t.Run("validateDBType", func(t *testing.T) {
		tests := []struct {
			dbType string
			valid  bool
		}{
			{"postgres", true},
			{"postgresql", true},
			{"mysql", true},
			{"sqlite", true},
			{"mongo", true},
			{"mongodb", true},
			{"invalid", false},
			{"", false},
		}

		for _, tt := range tests {
			config := Config{
				Port:     "8080",
				DBName:   "test",
				DBType:   tt.dbType,
				Mode:     "dev",
				Timezone: "UTC",
			}
			err := validate.Struct(config)
			if tt.valid {
				assert.NoError(t, err, "DBType %s should be valid", tt.dbType)
			} else {
				assert.Error(t, err, "DBType %s should be invalid", tt.dbType)
			}
		}
	})
}

func TestLoadConfigWithValidation(t *testing.T) {
	tempDir := t.TempDir()

	envContent := `SERVER_PORT=8080
DB_HOST=localhost
DB_PORT=5432
DB_NAME=testdb
DB_USER=testuser
DB_PASS=testpass
DB_TYPE=postgres
MODE=dev
TZ=UTC`

	envFile := tempDir + "/.env"
	err := os.WriteFile(envFile, []byte(envContent), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(tempDir)
	assert.NoError(t, err)
	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, "postgres", config.DBType)

	invalidEnvContent := `SERVER_PORT=invalid-port
DB_TYPE=invalid-db`

	err = os.WriteFile(envFile, []byte(invalidEnvContent), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(tempDir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
