package model

import (
	"time"
)

// CartSnapshotModel is the persistence model for one cart slot.
type CartSnapshotModel struct {
	Key       string    `gorm:"column:slot_key;type:varchar(128);primaryKey"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CartSnapshotModel) TableName() string {
	return "cart_snapshots"
}
