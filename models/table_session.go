package models

import "time"

// TableSession is one occupancy period of a physical table. ClosedAt is nil
// while the session is open; at most one open session may exist per table.
type TableSession struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	TableID  uint       `gorm:"not null;index" json:"table_id"`
	OpenedAt time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt *time.Time `json:"closed_at"`
}

// IsClosed reports whether the session has been closed.
func (s *TableSession) IsClosed() bool {
	return s.ClosedAt != nil
}
