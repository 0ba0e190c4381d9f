package config_test

import (
	"testing"
	"time"

	"storefront/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, config.DriverSQLite, cfg.DatabaseDriver)
	assert.True(t, cfg.DatabaseAutoMigrate)
	assert.False(t, cfg.DatabaseSeed)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.True(t, cfg.IsDevelopment())
}

func TestFromViper_Overrides(t *testing.T) {
	v := newViper()
	v.Set("DATABASE_DRIVER", "POSTGRES")
	v.Set("DATABASE_DSN", "host=db user=app dbname=storefront sslmode=disable")
	v.Set("JWT_TTL", "90m")
	v.Set("APP_ENV", "production")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, config.DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.False(t, cfg.IsDevelopment())
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  interface{}
		want string
	}{
		{"unknown driver", "DATABASE_DRIVER", "mongo", "unsupported DATABASE_DRIVER"},
		{"missing dsn", "DATABASE_DSN", "", "DATABASE_DSN is required"},
		{"missing secret", "JWT_SECRET", "", "JWT_SECRET is required"},
		{"bcrypt cost", "BCRYPT_COST", 2, "BCRYPT_COST"},
		{"ttl", "JWT_TTL", "-1h", "JWT_TTL must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.val)
			_, err := config.FromViper(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFromViper_MemoryDriverNeedsNoDSN(t *testing.T) {
	v := newViper()
	v.Set("DATABASE_DRIVER", config.DriverMemory)
	v.Set("DATABASE_DSN", "")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, cfg.DatabaseDriver)
}
