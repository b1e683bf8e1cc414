package store

// Schema is applied on every Open; all statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS galaxies (
	id      TEXT PRIMARY KEY,
	seq     INTEGER NOT NULL,
	ra      REAL NOT NULL DEFAULT 0,
	dec     REAL NOT NULL DEFAULT 0,
	reff    REAL NOT NULL DEFAULT 0,
	q       REAL NOT NULL DEFAULT 0,
	pa      REAL NOT NULL DEFAULT 0,
	nucleus INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_galaxies_seq ON galaxies(seq);

CREATE TABLE IF NOT EXISTS classifications (
	id              TEXT PRIMARY KEY,
	username        TEXT NOT NULL,
	galaxy_id       TEXT NOT NULL,
	lsb_class       INTEGER NOT NULL,
	morphology      INTEGER NOT NULL,
	awesome_flag    INTEGER NOT NULL DEFAULT 0,
	valid_redshift  INTEGER NOT NULL DEFAULT 0,
	visible_nucleus INTEGER NOT NULL DEFAULT 0,
	failed_fitting  INTEGER NOT NULL DEFAULT 0,
	comments        TEXT NOT NULL DEFAULT '',
	time_spent_ms   INTEGER NOT NULL DEFAULT 0,
	created_at      INTEGER NOT NULL,
	updated_at      INTEGER NOT NULL,
	UNIQUE(username, galaxy_id)
);
CREATE INDEX IF NOT EXISTS idx_classifications_galaxy ON classifications(galaxy_id);

CREATE TABLE IF NOT EXISTS skipped (
	username   TEXT NOT NULL,
	galaxy_id  TEXT NOT NULL,
	comments   TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	PRIMARY KEY(username, galaxy_id)
);
`
