// Package testdb opens throwaway in-memory databases mirroring the
// production schema for repository tests.
package testdb

import (
	"fmt"
	"io"
	"log"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// schema mirrors the goose migrations, translated to sqlite types.
const schema = `
CREATE TABLE member (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	member_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'Member',
	level INTEGER NOT NULL DEFAULT 0,
	major TEXT,
	birthday DATE,
	last_active DATETIME,
	profile_picture TEXT,
	status TEXT NOT NULL DEFAULT 'active'
);

CREATE TABLE team (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	team_name TEXT NOT NULL,
	description TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE member_teams (
	member_id INTEGER NOT NULL REFERENCES member(id) ON DELETE CASCADE,
	team_id INTEGER NOT NULL REFERENCES team(id) ON DELETE CASCADE,
	PRIMARY KEY (member_id, team_id)
);

CREATE TABLE event (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_name TEXT NOT NULL,
	event_type TEXT NOT NULL,
	event_date DATETIME NOT NULL,
	location TEXT,
	description TEXT
);

CREATE TABLE members_events (
	member_id INTEGER NOT NULL REFERENCES member(id) ON DELETE CASCADE,
	event_id INTEGER NOT NULL REFERENCES event(id) ON DELETE CASCADE,
	PRIMARY KEY (member_id, event_id)
);

CREATE TABLE content (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	content_type TEXT NOT NULL,
	description TEXT,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE report (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	content_id INTEGER NOT NULL REFERENCES content(id) ON DELETE CASCADE,
	submitted_by INTEGER NOT NULL REFERENCES member(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	submission_date DATETIME,
	file_path TEXT,
	action TEXT NOT NULL DEFAULT 'none'
);
`

// Open returns a fresh in-memory database with the full schema applied and
// foreign keys enforced.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	silent := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 silent,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := conn.Exec(schema).Error; err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return conn
}
