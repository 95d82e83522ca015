package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
    id                   TEXT PRIMARY KEY,
    day                  TEXT NOT NULL,
    seq                  INTEGER NOT NULL,
    name                 TEXT NOT NULL,
    portion_grams        REAL NOT NULL,
    calories             REAL NOT NULL,
    protein              REAL NOT NULL,
    carbs                REAL NOT NULL,
    fat                  REAL NOT NULL,
    created_at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_day_seq ON entries(day, seq);
`
