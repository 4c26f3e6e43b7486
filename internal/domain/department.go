package domain

// Department represents an organizational unit employees belong to.
// Departments are created by seeding only and never change afterwards.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
