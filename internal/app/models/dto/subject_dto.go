package dto

import (
	"github.com/rawad/acadex/internal/app/models"
)

// CreateSubjectRequest is the payload for subject creation
type CreateSubjectRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100" example:"Pharmacology"`
	AcademicYear int    `json:"academicYear" binding:"required,min=1,max=5" example:"2"`
	DepartmentID int64  `json:"departmentId" binding:"required,min=1"`
	DoctorID     *int64 `json:"doctorId,omitempty"` // optional; subject may start unassigned
}

// UpdateSubjectRequest is the payload for subject updates. RemoveDoctor
// unassigns the subject's doctor; DoctorID reassigns it. Setting both is
// rejected at validation.
type UpdateSubjectRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	AcademicYear *int    `json:"academicYear,omitempty" binding:"omitempty,min=1,max=5"`
	DepartmentID *int64  `json:"departmentId,omitempty" binding:"omitempty,min=1"`
	DoctorID     *int64  `json:"doctorId,omitempty"`
	RemoveDoctor bool    `json:"removeDoctor,omitempty"`
}

// StudentSubjectsResponse lists the subjects visible to a student,
// scoped by the student's academic year and department.
type StudentSubjectsResponse struct {
	AcademicYear int               `json:"academicYear"`
	DepartmentID int64             `json:"departmentId"`
	Subjects     []*models.Subject `json:"subjects"`
}
