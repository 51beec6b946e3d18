package postgre

import (
	"testing"

	"users-srv/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.PostgresConfig
		wantMode string
	}{
		{
			name: "plain",
			cfg: config.PostgresConfig{
				Host: "db", Port: 5432, User: "users", Password: "secret", DBName: "users", SSLMode: "require",
			},
			wantMode: "require",
		},
		{
			name: "password with space and quotes",
			cfg: config.PostgresConfig{
				Host: "db", Port: 6543, User: "app user", Password: `p a'ss"w=rd@/?`, DBName: "users",
			},
			wantMode: "disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := DSN(tt.cfg)

			pc, err := pgconn.ParseConfig(dsn)
			require.NoError(t, err)
			assert.Equal(t, tt.cfg.Host, pc.Host)
			assert.Equal(t, uint16(tt.cfg.Port), pc.Port)
			assert.Equal(t, tt.cfg.User, pc.User)
			assert.Equal(t, tt.cfg.Password, pc.Password)
			assert.Equal(t, tt.cfg.DBName, pc.Database)

			kv, err := pq.ParseURL(dsn)
			require.NoError(t, err)
			assert.Contains(t, kv, "sslmode="+tt.wantMode)
		})
	}
}

func TestDriverName(t *testing.T) {
	for in, want := range map[string]string{"": DriverPQ, DriverPQ: DriverPQ, DriverPGX: DriverPGX} {
		got, err := driverName(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := driverName("mysql")
	assert.Error(t, err)
}
