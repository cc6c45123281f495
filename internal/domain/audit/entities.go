package audit

import (
	"encoding/json"
	"time"
)

type Action string

const (
	ActionCreatePending Action = "create_pending"
	ActionApprove       Action = "approve"
	ActionReject        Action = "reject"
	ActionVoid          Action = "void"
	ActionAssign        Action = "assign"
	ActionUpdate        Action = "update"
	ActionDelete        Action = "delete"
)

// Log is an append-only record; rows are never updated or deleted.
type Log struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID     uint64 `gorm:"index:idx_audit_user" json:"user_id"`
	EntityType string `gorm:"size:50;index:idx_audit_entity" json:"entity_type"`
	EntityID   string `gorm:"size:32;index:idx_audit_entity" json:"entity_id"`
	Action     Action `gorm:"size:30" json:"action"`
	BeforeJSON string `gorm:"type:text" json:"before_json"`
	AfterJSON  string `gorm:"type:text" json:"after_json"`
	Source     string `gorm:"size:30" json:"source"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Log) TableName() string { return "audit_logs" }

// Entry is what callers hand to the sink; Before/After are marshalled
// to JSON on write.
type Entry struct {
	UserID     uint64
	EntityType string
	EntityID   string
	Action     Action
	Before     any
	After      any
	Source     string
}

func (e Entry) ToLog() Log {
	l := Log{
		UserID:     e.UserID,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Action:     e.Action,
		Source:     e.Source,
	}
	if e.Before != nil {
		if b, err := json.Marshal(e.Before); err == nil {
			l.BeforeJSON = string(b)
		}
	}
	if e.After != nil {
		if b, err := json.Marshal(e.After); err == nil {
			l.AfterJSON = string(b)
		}
	}
	return l
}
