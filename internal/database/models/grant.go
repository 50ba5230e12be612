package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartitionGrant records a principal's access to a partition. Pattern is the
// principal identity, or "*" for all principals. The three booleans follow
// the sync service's permission wire format.
type PartitionGrant struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Partition string    `json:"partition" gorm:"size:200;not null;uniqueIndex:idx_grant_partition_pattern"`
	Pattern   string    `json:"pattern" gorm:"size:64;not null;uniqueIndex:idx_grant_partition_pattern"`
	MayRead   bool      `json:"may_read" gorm:"not null;default:false"`
	MayWrite  bool      `json:"may_write" gorm:"not null;default:false"`
	MayManage bool      `json:"may_manage" gorm:"not null;default:false"`
}

// TableName returns the table name for PartitionGrant
func (PartitionGrant) TableName() string {
	return "partition_grants"
}

// BeforeCreate allocates the id if the caller did not.
func (g *PartitionGrant) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// Level collapses the permission booleans into a GrantLevel.
func (g *PartitionGrant) Level() GrantLevel {
	switch {
	case g.MayWrite:
		return GrantWrite
	case g.MayRead:
		return GrantRead
	}
	return GrantNone
}

// SetLevel expands a GrantLevel into the permission booleans. Manage is
// never granted this way; it stays with the server administrator.
func (g *PartitionGrant) SetLevel(level GrantLevel) {
	g.MayRead = level >= GrantRead
	g.MayWrite = level >= GrantWrite
}
