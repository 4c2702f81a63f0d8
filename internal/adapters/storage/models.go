package storage

import "time"

// TaskModel is a cached catalog task
type TaskModel struct {
	Billable    bool
	CachedAt    time.Time
	ClientName  string
	Name        string
	Position    int    `gorm:"index"`
	ProjectCode string `gorm:"index"`
	ProjectID   string `gorm:"primaryKey"`
	ProjectName string
	TaskID      string `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string { return "tasks" }
