package userRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			username,
			password
		) VALUES (
			:id,
			:username,
			:password
		)
	`

	queryGetUserByID = `
		SELECT id, username, password
		FROM users
		WHERE id = :id
	`

	queryGetUserByUsername = `
		SELECT id, username, password
		FROM users
		WHERE username = :username
	`
)
