package dto

// RegisterRequest is the payload for student self-registration
type RegisterRequest struct {
	Username     string  `json:"username" binding:"required,min=3,max=50" example:"jdoe"`
	Password     string  `json:"password" binding:"required,min=6" example:"s3cret!"`
	AcademicYear *int    `json:"academicYear,omitempty" binding:"omitempty,min=1,max=5" example:"2"`
	Phone        *string `json:"phone,omitempty" example:"+963911111111"`
	DepartmentID *int64  `json:"departmentId,omitempty" example:"1"`
}

// CreateAccountRequest is the payload for privileged account creation
// (superadmin creating admins, admin creating doctors)
type CreateAccountRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" binding:"required,min=6"`
	Phone    *string `json:"phone,omitempty"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed token and the authenticated user summary
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresIn   int          `json:"expiresIn"` // seconds
	User        UserResponse `json:"user"`
}

// UserResponse is the public view of a user account
type UserResponse struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Role         string  `json:"role"`
	AcademicYear *int    `json:"academicYear,omitempty"`
	DepartmentID *int64  `json:"departmentId,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}
