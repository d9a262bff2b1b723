package models

import (
	"gorm.io/datatypes"
)

// Assistant is the row model for the assistants table.
// uuid is generated by the store (gen_random_uuid()).
type Assistant struct {
	UUID         string                      `gorm:"column:uuid;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string                      `gorm:"column:name;type:text;not null"`
	SystemPrompt string                      `gorm:"column:system_prompt;type:text"`
	VoiceID      *string                     `gorm:"column:voice_id;type:text"`
	EnabledTools datatypes.JSONSlice[string] `gorm:"column:enabled_tools;type:jsonb;default:'[]'"`
}

// TableName specifies the table name
func (Assistant) TableName() string {
	return "assistants"
}
