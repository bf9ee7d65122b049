package interfaces

import "time"

const (
	EventCourseCreated = "course_created"
	EventCourseUpdated = "course_updated"
	EventCourseDeleted = "course_deleted"
)

// CatalogEvent is pushed to websocket subscribers whenever the catalog
// changes through the admin API.
type CatalogEvent struct {
	Type      string    `json:"type"`
	CourseID  uint      `json:"course_id"`
	Timestamp time.Time `json:"timestamp"`
}

// CatalogNotifier receives catalog change events. The websocket hub
// implements it; services depend on the interface to avoid importing the
// hub directly.
type CatalogNotifier interface {
	NotifyCatalogChange(event CatalogEvent)
}
