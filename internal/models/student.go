package models

// Student represents a registered student stored in the students table.
// Rows are created once at registration and never updated or deleted.
type Student struct {
	StudentID    int64  `db:"student_id" json:"student_id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	Phone        string `db:"phone" json:"phone,omitempty"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// Identity is the authenticated caller context produced by a successful
// login. It is passed explicitly into every operation that requires
// authorization; no service holds ambient session state.
type Identity struct {
	StudentID int64  `json:"student_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// StudentInfo describes a student in API responses.
type StudentInfo struct {
	StudentID int64  `json:"student_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}
