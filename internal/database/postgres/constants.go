package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeForeignKeyViolation is the PostgreSQL error code for foreign key violations
	PgErrorCodeForeignKeyViolation = "23503"
)

// Advisory lock keying
const (
	// LockNamespaceWorkQueue prefixes the advisory lock key of a character's work queue
	LockNamespaceWorkQueue = "work_queue"

	// HashSeparator joins the namespace and the key before hashing
	HashSeparator = ":"

	// HashMaskPositiveInt64 keeps advisory lock keys positive
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// Character queries
const (
	characterColumns = `character_id, name, level, exp_current, hp_current, hp_max,
		stamina_current, stamina_max, attack, defense, cash, bank,
		duels_won, duels_lost, pos_x, pos_y, equipment, created_at, updated_at`

	SQLInsertCharacter = `
		INSERT INTO characters (character_id, name, name_folded, level, exp_current, hp_current, hp_max,
			stamina_current, stamina_max, attack, defense, cash, bank,
			duels_won, duels_lost, pos_x, pos_y, equipment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	SQLSelectCharacterByID = `SELECT ` + characterColumns + ` FROM characters WHERE character_id = $1`

	SQLSelectCharacterByIDForUpdate = SQLSelectCharacterByID + ` FOR UPDATE`

	SQLSelectCharacterByName = `SELECT ` + characterColumns + ` FROM characters WHERE name = $1`

	SQLSelectCharactersByFoldedName = `SELECT ` + characterColumns + `
		FROM characters WHERE name_folded = $1 ORDER BY created_at`

	SQLListCharacters = `SELECT ` + characterColumns + `
		FROM characters ORDER BY level DESC, exp_current DESC, name LIMIT $1 OFFSET $2`

	SQLUpdateCharacter = `
		UPDATE characters SET
			level = $2, exp_current = $3, hp_current = $4, hp_max = $5,
			stamina_current = $6, stamina_max = $7, attack = $8, defense = $9,
			cash = $10, bank = $11, duels_won = $12, duels_lost = $13,
			pos_x = $14, pos_y = $15, equipment = $16, updated_at = $17
		WHERE character_id = $1`

	SQLDeleteCharacter = `DELETE FROM characters WHERE character_id = $1`

	SQLIncrementDuelCounters = `
		UPDATE characters SET duels_won = duels_won + $2, duels_lost = duels_lost + $3, updated_at = NOW()
		WHERE character_id = $1`
)

// Work queries
const (
	workColumns = `work_id, character_id, kind, work_type, target, opponent,
		travel_duration_ms, job_duration_ms, travel_end_time, job_end_time,
		stamina_cost, is_in_progress, created_at`

	SQLInsertWork = `
		INSERT INTO works (` + workColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	SQLSelectWorkByID = `SELECT ` + workColumns + ` FROM works WHERE work_id = $1`

	SQLListWorks = `SELECT ` + workColumns + `
		FROM works WHERE character_id = $1 ORDER BY created_at, work_id`

	SQLUpdateWork = `
		UPDATE works SET
			work_type = $2, travel_duration_ms = $3, job_duration_ms = $4,
			travel_end_time = $5, job_end_time = $6, stamina_cost = $7, is_in_progress = $8
		WHERE work_id = $1`

	SQLDeleteWork = `DELETE FROM works WHERE work_id = $1 AND character_id = $2`

	SQLAdvisoryLock = `SELECT pg_advisory_xact_lock($1)`
)

// Report queries
const (
	reportColumns = `report_id, character_id, report_type, subject, content, is_read, stats, created_at`

	SQLInsertReport = `
		INSERT INTO reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	SQLSelectReportByID = `SELECT ` + reportColumns + ` FROM reports WHERE report_id = $1`

	SQLListReports = `SELECT ` + reportColumns + `
		FROM reports
		WHERE character_id = $1 AND ($2::boolean = FALSE OR is_read = FALSE)
		ORDER BY created_at DESC, report_id
		LIMIT $3 OFFSET $4`

	SQLMarkReportRead = `UPDATE reports SET is_read = TRUE WHERE report_id = $1`

	SQLMarkAllReportsRead = `UPDATE reports SET is_read = TRUE WHERE character_id = $1 AND is_read = FALSE`

	SQLCountUnreadReports = `SELECT COUNT(*) FROM reports WHERE character_id = $1 AND is_read = FALSE`

	SQLDeleteReport = `DELETE FROM reports WHERE report_id = $1`
)

// Error Messages
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToAcquireLock      = "failed to acquire work queue lock"
)
