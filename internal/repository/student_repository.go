package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
)

// StudentRepository manages persistence for student accounts.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student and assigns the generated identifier.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = `INSERT INTO students (name, email, phone, password_hash)
        VALUES ($1, $2, $3, $4) RETURNING student_id`
	if err := r.db.QueryRowxContext(ctx, query, student.Name, student.Email, student.Phone, student.PasswordHash).Scan(&student.StudentID); err != nil {
		if IsUniqueViolation(err) {
			return appErrors.Wrap(err, appErrors.ErrDuplicateEmail.Code, appErrors.ErrDuplicateEmail.Status, appErrors.ErrDuplicateEmail.Message)
		}
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// FindByEmail returns a student by exact email match.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	const query = `SELECT student_id, name, email, phone, password_hash FROM students WHERE email = $1 LIMIT 1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student by email: %w", err)
	}
	return &student, nil
}

// FindByID returns a student by identifier.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	const query = `SELECT student_id, name, email, phone, password_hash FROM students WHERE student_id = $1 LIMIT 1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find student by id: %w", err)
	}
	return &student, nil
}

// ExistsByEmail checks whether a student with the given email already exists.
// The match is case-sensitive against the stored value.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT 1 FROM students WHERE email = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check email: %w", err)
	}
	return true, nil
}
