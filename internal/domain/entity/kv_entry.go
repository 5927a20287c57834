package entity

import "time"

// KVEntry is one row of the key-value table used by the postgres storage driver
type KVEntry struct {
	Key       string    `gorm:"size:255;primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the KVEntry model
func (KVEntry) TableName() string {
	return "kv_entries"
}
