package storage

import (
	"time"

	"tally/internal/domain"
)

// taskModelToDomain converts a TaskModel (GORM) to domain.Task
func taskModelToDomain(m TaskModel) domain.Task {
	return domain.Task{
		Billable:    m.Billable,
		ClientName:  m.ClientName,
		Name:        m.Name,
		ProjectCode: m.ProjectCode,
		ProjectID:   m.ProjectID,
		ProjectName: m.ProjectName,
		TaskID:      m.TaskID,
	}
}

// domainToTaskModel converts a domain.Task to TaskModel (GORM), keeping catalog order in Position
func domainToTaskModel(t domain.Task, position int, cachedAt time.Time) TaskModel {
	return TaskModel{
		Billable:    t.Billable,
		CachedAt:    cachedAt,
		ClientName:  t.ClientName,
		Name:        t.Name,
		Position:    position,
		ProjectCode: t.ProjectCode,
		ProjectID:   t.ProjectID,
		ProjectName: t.ProjectName,
		TaskID:      t.TaskID,
	}
}
