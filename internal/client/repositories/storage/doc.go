// Package storage is the panel's persistent key-value store: string keys
// (emails) mapped to caller-serialized string values.
//
// Two implementations are provided. SQLiteStore keeps values in a local
// SQLite file and survives restarts; MemoryStore lives for the process and
// backs tests.
package storage
