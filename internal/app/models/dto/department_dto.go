package dto

// CreateDepartmentRequest is the payload for department creation
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100" example:"Internal Medicine"`
}

// UpdateDepartmentRequest is the payload for renaming a department
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}
