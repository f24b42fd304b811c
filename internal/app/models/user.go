package models

import (
	"time"
)

// Role defines the user role stored in the 'users' table
type Role string

const (
	RoleStudent    Role = "student"
	RoleDoctor     Role = "doctor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Valid reports whether the role is one of the known role values.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleDoctor, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID           int64      `json:"id" db:"id" example:"1"`                                                  // Unique identifier for the user
	Username     string     `json:"username" db:"username" example:"jdoe"`                                   // Unique login name
	Password     string     `json:"-" db:"password"`                                                         // Hashed password (excluded from JSON)
	Role         Role       `json:"role" db:"role" example:"student"`                                        // One of student, doctor, admin, superadmin
	AcademicYear *int       `json:"academicYear,omitempty" db:"academic_year" example:"3"`                   // Academic year 1-5, students only (nullable)
	DepartmentID *int64     `json:"departmentId,omitempty" db:"department_id"`                               // Department reference (nullable)
	Phone        *string    `json:"phone,omitempty" db:"phone" example:"+963911111111"`                      // Phone number (nullable)
	IsActive     bool       `json:"isActive" db:"is_active" example:"true"`                                  // Whether the account is active
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" example:"2025-04-20T18:00:00Z"` // Timestamp of the last login (nullable)
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
	Department   *Department `json:"department,omitempty"` // Relation, no db tag
}
