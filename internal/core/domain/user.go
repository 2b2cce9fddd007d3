package domain

// Company is the employer block attached to a directory user.
type Company struct {
	Name string `json:"name"`
}

// User is a directory entry served by the backend and consumed by the
// users client. It is unrelated to the session Actor.
type User struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone,omitempty"`
	Website string  `json:"website,omitempty"`
	Company Company `json:"company"`
}
