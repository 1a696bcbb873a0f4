package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Migration bookkeeping.
const (
	queryCreateMigrationsTable = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	queryMigrationApplied = `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`

	queryRecordMigration = `INSERT INTO schema_migrations (version) VALUES ($1)`
)

// Profile queries.
const (
	queryUpsertProfile = `
		INSERT INTO profiles (user_id, username, display_name)
		VALUES (@user_id, NULLIF(@username, ''), NULLIF(@display_name, ''))
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			display_name = EXCLUDED.display_name
		RETURNING created_at`

	queryGetProfile = `
		SELECT user_id, COALESCE(username, ''), COALESCE(display_name, ''), created_at
		FROM profiles
		WHERE user_id = $1`
)

// Collection queries.
const (
	queryInsertCollection = `
		INSERT INTO collections (name, user_id)
		VALUES (@name, @user_id)
		RETURNING id::text, imported_at, created_at`

	queryListCollections = `
		SELECT c.id::text, c.name, c.user_id, c.imported_at, c.created_at,
			(SELECT COUNT(*) FROM cards k WHERE k.collection_id = c.id)
		FROM collections c
		WHERE c.user_id = $1
		ORDER BY c.imported_at DESC, c.created_at DESC`

	queryGetCollection = `
		SELECT c.id::text, c.name, c.user_id, c.imported_at, c.created_at,
			(SELECT COUNT(*) FROM cards k WHERE k.collection_id = c.id)
		FROM collections c
		WHERE c.id = $1`

	queryDeleteCollection = `DELETE FROM collections WHERE id = $1`
)

// Card queries.
const (
	queryInsertCard = `
		INSERT INTO cards (collection_id, card_name, quantity, set_name, collector_number)
		VALUES (@collection_id, @card_name, @quantity, NULLIF(@set_name, ''), NULLIF(@collector_number, ''))`

	queryListCards = `
		SELECT id::text, collection_id::text, card_name, quantity,
			COALESCE(set_name, ''), COALESCE(collector_number, '')
		FROM cards
		WHERE collection_id = $1
			AND ($2 = '' OR card_name ILIKE $2 ESCAPE '\')
		ORDER BY card_name ASC, id ASC`

	querySearchCards = `
		SELECT k.card_name, COALESCE(k.set_name, ''), k.quantity,
			c.id::text, COALESCE(c.name, ''), c.user_id, COALESCE(p.username, '')
		FROM cards k
		JOIN collections c ON c.id = k.collection_id
		LEFT JOIN profiles p ON p.user_id = c.user_id
		WHERE k.card_name ILIKE $1 ESCAPE '\'
		ORDER BY lower(k.card_name) ASC, c.name ASC
		LIMIT $2`
)
