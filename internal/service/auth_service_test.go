package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/campus-hub-api/internal/models"
	appErrors "github.com/campushub/campus-hub-api/pkg/errors"
)

type mockStudentRepo struct {
	students  map[string]*models.Student
	nextID    int64
	createErr error
	existsErr error
	findErr   error
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*models.Student), nextID: 1}
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.students[student.Email]; ok {
		return appErrors.Clone(appErrors.ErrDuplicateEmail, "")
	}
	student.StudentID = m.nextID
	m.nextID++
	stored := *student
	m.students[student.Email] = &stored
	return nil
}

func (m *mockStudentRepo) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	student, ok := m.students[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return student, nil
}

func (m *mockStudentRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.students[email]
	return ok, nil
}

func newAuthService(repo *mockStudentRepo) *AuthService {
	return NewAuthService(repo, validator.New(), zap.NewNop(), AuthConfig{
		AccessTokenSecret: "secret",
		AccessTokenExpiry: time.Hour,
		Issuer:            "campus-hub-test",
	})
}

func TestAuthServiceRegisterThenLogin(t *testing.T) {
	repo := newMockStudentRepo()
	svc := newAuthService(repo)

	info, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@campus.edu",
		Phone:    "555-0001",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.StudentID)

	stored := repo.students["alice@campus.edu"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@campus.edu", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, int64(1), res.Student.StudentID)
	assert.Equal(t, "Alice", res.Student.Name)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	repo := newMockStudentRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "Alice", Email: "alice@campus.edu", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), models.RegisterRequest{Name: "Impostor", Email: "alice@campus.edu", Password: "other-pass"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicateEmail.Code, appErrors.FromError(err).Code)
	assert.Len(t, repo.students, 1)
}

func TestAuthServiceRegisterLostUniqueRace(t *testing.T) {
	// The pre-check passes but the insert loses the race on the unique
	// constraint; the caller must still see DuplicateEmail.
	repo := newMockStudentRepo()
	repo.createErr = appErrors.Clone(appErrors.ErrDuplicateEmail, "")
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "Bob", Email: "bob@campus.edu", Password: "hunter22"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicateEmail.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceRegisterValidation(t *testing.T) {
	svc := newAuthService(newMockStudentRepo())

	cases := []models.RegisterRequest{
		{Email: "alice@campus.edu", Password: "hunter22"},
		{Name: "Alice", Password: "hunter22"},
		{Name: "Alice", Email: "not-an-email", Password: "hunter22"},
		{Name: "Alice", Email: "alice@campus.edu"},
	}
	for _, req := range cases {
		_, err := svc.Register(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	repo := newMockStudentRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "Alice", Email: "alice@campus.edu", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "alice@campus.edu", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(newMockStudentRepo())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@campus.edu", Password: "whatever"})
	require.Error(t, err)
	// Same failure as a wrong password: no hint about which part was wrong.
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateToken(t *testing.T) {
	repo := newMockStudentRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Name: "Alice", Email: "alice@campus.edu", Password: "hunter22"})
	require.NoError(t, err)
	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@campus.edu", Password: "hunter22"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	identity := claims.Identity()
	assert.Equal(t, int64(1), identity.StudentID)
	assert.Equal(t, "alice@campus.edu", identity.Email)

	_, err = svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
