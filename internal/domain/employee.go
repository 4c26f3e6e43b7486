package domain

// Employee models a person listed in the directory.
type Employee struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Age          int    `json:"age"`
	Position     string `json:"position"`
	DepartmentID int64  `json:"department_id"`
}
