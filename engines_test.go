package kaiwa_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kaiwa "github.com/kaiwadb/kaiwa-go"
)

func TestEngineWireFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		engine   kaiwa.Engine
		expected string
	}{
		{"mongo default version", kaiwa.Mongo{}, `{"type":"mongo","version":8}`},
		{"mongo explicit version", kaiwa.Mongo{Version: 7}, `{"type":"mongo","version":7}`},
		{"postgres", kaiwa.PostgreSQL{Version: 16}, `{"type":"postgres","version":16}`},
		{"mysql", kaiwa.MySQL{Version: 8}, `{"type":"mysql","version":8}`},
		{"mssql", kaiwa.MSSQL{Version: 2022}, `{"type":"mssql","version":2022}`},
		{"oracle", kaiwa.Oracle{Version: 23}, `{"type":"oracle","version":23}`},
		{"sqlite", kaiwa.SQLite{Version: 3}, `{"type":"sqlite","version":3}`},
		{"mariadb", kaiwa.MariaDB{Version: 11}, `{"type":"mariadb","version":11}`},
		{"clickhouse", kaiwa.ClickHouse{}, `{"type":"clickhouse"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.engine)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestEngineTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mongo", kaiwa.Mongo{}.EngineType())
	assert.Equal(t, "postgres", kaiwa.PostgreSQL{}.EngineType())
	assert.Equal(t, "mysql", kaiwa.MySQL{}.EngineType())
	assert.Equal(t, "mssql", kaiwa.MSSQL{}.EngineType())
	assert.Equal(t, "oracle", kaiwa.Oracle{}.EngineType())
	assert.Equal(t, "sqlite", kaiwa.SQLite{}.EngineType())
	assert.Equal(t, "mariadb", kaiwa.MariaDB{}.EngineType())
	assert.Equal(t, "clickhouse", kaiwa.ClickHouse{}.EngineType())
}
