package enum

import (
	"database/sql/driver"
	"fmt"
)

// ProjectStatus represents where a project is in its lifecycle
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

func (s ProjectStatus) String() string {
	return string(s)
}

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// ParseProjectStatus validates a raw status value
func ParseProjectStatus(raw string) (ProjectStatus, error) {
	s := ProjectStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid project status %q", raw)
	}
	return s, nil
}

func (s ProjectStatus) Value() (driver.Value, error) {
	return stringValue(string(s))
}

func (s *ProjectStatus) Scan(value interface{}) error {
	v, err := scanString(value)
	if err != nil {
		return err
	}
	if v == "" {
		v = string(ProjectStatusPlanning)
	}
	*s = ProjectStatus(v)
	return nil
}
