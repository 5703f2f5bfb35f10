package employee

type CreateEmployeeRequest struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	RegistryNumber string `json:"registry_number"`
	Hidden         bool   `json:"hidden"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email,omitempty"`
	RegistryNumber string `json:"registry_number,omitempty"`
	Hidden         bool   `json:"hidden"`
	CreatedAt      string `json:"created_at,omitempty"`
}
