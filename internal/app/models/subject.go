package models

// Subject defines the subject model based on the 'subjects' table.
// DoctorID is nullable: a subject may be temporarily unassigned.
type Subject struct {
	ID           int64       `json:"id" db:"id"`
	Name         string      `json:"name" db:"name" example:"Pharmacology"`
	AcademicYear int         `json:"academicYear" db:"academic_year" example:"2"` // 1-5
	DepartmentID int64       `json:"departmentId" db:"department_id"`
	DoctorID     *int64      `json:"doctorId,omitempty" db:"doctor_id"`
	Department   *Department `json:"department,omitempty"` // Relation, no db tag
	Doctor       *User       `json:"doctor,omitempty"`     // Relation, no db tag
}
