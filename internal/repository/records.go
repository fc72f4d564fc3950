package repository

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Record value accessors tolerant of missing or null properties, so rows
// written by older imports still scan cleanly.

func recordString(rec *neo4j.Record, key string) string {
	if v, ok := rec.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func recordInt(rec *neo4j.Record, key string) int {
	if v, ok := rec.Get(key); ok {
		if n, ok := v.(int64); ok {
			return int(n)
		}
	}
	return 0
}

func recordInt64(rec *neo4j.Record, key string) int64 {
	if v, ok := rec.Get(key); ok {
		if n, ok := v.(int64); ok {
			return n
		}
	}
	return 0
}

func recordBool(rec *neo4j.Record, key string) bool {
	if v, ok := rec.Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func recordTime(rec *neo4j.Record, key string) time.Time {
	if v, ok := rec.Get(key); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}
