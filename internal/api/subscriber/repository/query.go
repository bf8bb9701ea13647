package subscriberRepository

const (
	queryCreateSubscriber = `
		INSERT INTO subscribers (
			id,
			email,
			subscribed_at
		) VALUES (
			:id,
			:email,
			:subscribed_at
		)
	`

	queryGetSubscriberByID = `
		SELECT id, email, subscribed_at
		FROM subscribers
		WHERE id = :id
	`

	queryGetSubscriberByEmail = `
		SELECT id, email, subscribed_at
		FROM subscribers
		WHERE email = :email
	`

	queryGetAllSubscribers = `
		SELECT id, email, subscribed_at
		FROM subscribers
		ORDER BY subscribed_at DESC, id ASC
	`

	queryDeleteSubscriber = `
		DELETE FROM subscribers
		WHERE id = :id
	`
)
