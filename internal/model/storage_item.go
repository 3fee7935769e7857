package model

import "time"

// StorageItem is one key of the local store. Value holds the JSON document
// stored under Key, the way browser local storage holds one string per key.
type StorageItem struct {
	Key       string    `gorm:"column:item_key;primaryKey;size:255" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StorageItem) TableName() string {
	return "storage_items"
}
