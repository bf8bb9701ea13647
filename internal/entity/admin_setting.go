package entity

import "time"

// SettingAdminPIN holds the bcrypt hash of the global admin PIN. Its row
// existing is what "PIN configured" means.
const SettingAdminPIN = "admin_pin"

type AdminSetting struct {
	ID           string    `db:"id"`
	SettingKey   string    `db:"setting_key"`
	SettingValue string    `db:"setting_value"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
