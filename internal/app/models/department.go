package models

// Department defines the department model based on the 'departments' table
type Department struct {
	ID       int64      `json:"id" db:"id"`
	Name     string     `json:"name" db:"name" binding:"required" example:"Internal Medicine"`
	Subjects []*Subject `json:"subjects,omitempty"` // Relation, no db tag
}
