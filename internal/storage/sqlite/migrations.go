package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Amounts are stored as TEXT (decimal strings) so money survives round-trips
// without float drift.
const schema = `
CREATE TABLE IF NOT EXISTS pools (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    total_amount TEXT NOT NULL,
    creator_id TEXT NOT NULL,
    creator_included INTEGER NOT NULL,
    amount_owed TEXT NOT NULL,
    status TEXT NOT NULL,
    chat_id TEXT NOT NULL,
    group_chat INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS pool_participants (
    pool_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    PRIMARY KEY (pool_id, user_id),
    FOREIGN KEY (pool_id) REFERENCES pools(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_pools_creator_id ON pools(creator_id);
CREATE INDEX IF NOT EXISTS idx_pools_updated_at ON pools(updated_at);
CREATE INDEX IF NOT EXISTS idx_pool_participants_user_id ON pool_participants(user_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
