package contactRepository

const (
	queryCreateSubmission = `
		INSERT INTO contact_submissions (
			id,
			name,
			phone,
			email,
			subject,
			message,
			submitted_at,
			"read"
		) VALUES (
			:id,
			:name,
			:phone,
			:email,
			:subject,
			:message,
			:submitted_at,
			:read
		)
	`

	queryGetSubmissionByID = `
		SELECT
			id,
			name,
			phone,
			email,
			subject,
			message,
			submitted_at,
			"read"
		FROM contact_submissions
		WHERE id = :id
	`

	queryGetAllSubmissions = `
		SELECT
			id,
			name,
			phone,
			email,
			subject,
			message,
			submitted_at,
			"read"
		FROM contact_submissions
		ORDER BY submitted_at DESC, id ASC
	`

	queryMarkSubmissionRead = `
		UPDATE contact_submissions
		SET "read" = :read
		WHERE id = :id
	`

	queryDeleteSubmission = `
		DELETE FROM contact_submissions
		WHERE id = :id
	`
)
