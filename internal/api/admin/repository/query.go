package adminRepository

const (
	queryGetSetting = `
		SELECT
			id,
			setting_key,
			setting_value,
			created_at,
			updated_at
		FROM admin_settings
		WHERE setting_key = :setting_key
	`

	queryUpsertSetting = `
		INSERT INTO admin_settings (
			id,
			setting_key,
			setting_value,
			created_at,
			updated_at
		) VALUES (
			:id,
			:setting_key,
			:setting_value,
			:created_at,
			:updated_at
		)
		ON CONFLICT (setting_key) DO UPDATE
		SET id = excluded.id,
			setting_value = excluded.setting_value,
			updated_at = excluded.updated_at
	`

	queryCreateSettingIfAbsent = `
		INSERT INTO admin_settings (
			id,
			setting_key,
			setting_value,
			created_at,
			updated_at
		) VALUES (
			:id,
			:setting_key,
			:setting_value,
			:created_at,
			:updated_at
		)
		ON CONFLICT (setting_key) DO NOTHING
	`

	queryDeleteSetting = `
		DELETE FROM admin_settings
		WHERE setting_key = :setting_key
	`
)
