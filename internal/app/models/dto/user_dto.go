package dto

// UpdateDoctorRequest is the payload for updating a doctor account
type UpdateDoctorRequest struct {
	Username *string `json:"username,omitempty" binding:"omitempty,min=3,max=50"`
	Phone    *string `json:"phone,omitempty"`
}
