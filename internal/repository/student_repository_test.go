package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestStudentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("INSERT INTO students").
		WithArgs("Alice", "alice@campus.edu", "555-0001", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"student_id"}).AddRow(7))

	student := &models.Student{Name: "Alice", Email: "alice@campus.edu", Phone: "555-0001", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), student))
	assert.Equal(t, int64(7), student.StudentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateUniqueViolation(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("INSERT INTO students").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "students_email_key"})

	err := repo.Create(context.Background(), &models.Student{Name: "Bob", Email: "alice@campus.edu", PasswordHash: "hash"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.Equal(t, appErrors.ErrDuplicateEmail.Code, appErrors.FromError(err).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"student_id", "name", "email", "phone", "password_hash"}).
		AddRow(1, "Alice", "alice@campus.edu", "", "hash")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT student_id, name, email, phone, password_hash FROM students WHERE email = $1 LIMIT 1")).
		WithArgs("alice@campus.edu").
		WillReturnRows(rows)

	student, err := repo.FindByEmail(context.Background(), "alice@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, int64(1), student.StudentID)
	assert.Equal(t, "Alice", student.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByEmailNoRows(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT student_id, name, email").
		WithArgs("ghost@campus.edu").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@campus.edu")
	assert.Equal(t, sql.ErrNoRows, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryExistsByEmail(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM students WHERE email = $1 LIMIT 1")).
		WithArgs("alice@campus.edu").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "alice@campus.edu")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM students WHERE email = $1 LIMIT 1")).
		WithArgs("Alice@campus.edu").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.ExistsByEmail(context.Background(), "Alice@campus.edu")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
