package history

const schema = `
-- One row per resolved quiz question.
CREATE TABLE IF NOT EXISTS review_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    word TEXT NOT NULL,
    language TEXT NOT NULL,
    outcome TEXT NOT NULL,
    asked_at DATETIME NOT NULL
);

-- One row per completed quiz session.
CREATE TABLE IF NOT EXISTS sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    language TEXT NOT NULL,
    mode TEXT NOT NULL,
    direction TEXT NOT NULL,
    correct INTEGER NOT NULL,
    incorrect INTEGER NOT NULL,
    skipped INTEGER NOT NULL,
    unfamiliar INTEGER NOT NULL,
    started_at DATETIME NOT NULL,
    finished_at DATETIME NOT NULL
);
`
