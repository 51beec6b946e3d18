package postgres

const userColumns = `id, email, name, surname, password, propic_url, created_at`

const (
	selectUserByIDQuery    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	selectUserByEmailQuery = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	insertUserQuery = `INSERT INTO users (id, name, surname, email, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	updatePropicQuery = `UPDATE users SET propic_url = $2 WHERE id = $1 RETURNING ` + userColumns

	insertFCMTokenQuery = `INSERT INTO fcm_tokens (token, user_id) VALUES ($1, $2)`

	// created_at is rendered by the database so every client sees the same format.
	selectNotificationsQuery = `SELECT id, to_user, data,
		to_char(created_at, 'dd-mm-yyyy HH24:MI:SS (utc)') AS created_at
		FROM notifications
		WHERE to_user = $1
		ORDER BY notifications.created_at DESC`
)
