package kaiwa

import "encoding/json"

// Engine identifies the database engine a derived schema targets. The set
// is closed; the type tags are part of the wire contract.
type Engine interface {
	json.Marshaler

	// EngineType returns the engine's wire tag.
	EngineType() string
}

// Engine descriptors.
type (
	// Mongo targets MongoDB. A zero Version means the default, 8.
	Mongo struct{ Version int }

	// PostgreSQL targets PostgreSQL.
	PostgreSQL struct{ Version int }

	// MySQL targets MySQL.
	MySQL struct{ Version int }

	// MSSQL targets Microsoft SQL Server.
	MSSQL struct{ Version int }

	// Oracle targets Oracle Database.
	Oracle struct{ Version int }

	// SQLite targets SQLite.
	SQLite struct{ Version int }

	// MariaDB targets MariaDB.
	MariaDB struct{ Version int }

	// ClickHouse targets ClickHouse. It carries no version.
	ClickHouse struct{}
)

const defaultMongoVersion = 8

func (Mongo) EngineType() string      { return "mongo" }
func (PostgreSQL) EngineType() string { return "postgres" }
func (MySQL) EngineType() string      { return "mysql" }
func (MSSQL) EngineType() string      { return "mssql" }
func (Oracle) EngineType() string     { return "oracle" }
func (SQLite) EngineType() string     { return "sqlite" }
func (MariaDB) EngineType() string    { return "mariadb" }
func (ClickHouse) EngineType() string { return "clickhouse" }

type engineWire struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
}

// MarshalJSON serializes the engine with its wire tag, substituting the
// default version when unset.
func (e Mongo) MarshalJSON() ([]byte, error) {
	version := e.Version
	if version == 0 {
		version = defaultMongoVersion
	}

	return json.Marshal(engineWire{e.EngineType(), version})
}

func (e PostgreSQL) MarshalJSON() ([]byte, error) {
	return json.Marshal(engineWire{e.EngineType(), e.Version})
}

func (e MySQL) MarshalJSON() ([]byte, error) {
	return json.Marshal(engineWire{e.EngineType(), e.Version})
}

func (e MSSQL) MarshalJSON() ([]byte, error) {
	return json.Marshal(engineWire{e.EngineType(), e.Version})
}

func (e Oracle) MarshalJSON() ([]byte, error) {
	return json.Marshal(engineWire{e.EngineType(), e.Version})
}

func (e SQLite) MarshalJSON() ([]byte, error) {
	return json.Marshal(engineWire{e.EngineType(), e.Version})
}

func (e MariaDB) MarshalJSON() ([]byte, error) {
	return json.Marshal(engineWire{e.EngineType(), e.Version})
}

// MarshalJSON serializes the engine with only its wire tag.
func (e ClickHouse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{e.EngineType()})
}
