package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"notekeep/internal/domain/entity"
	"notekeep/internal/service/auth"
)

type stubUserRepo struct {
	byEmail map[string]*entity.User
	err     error
}

func newUserStub() *stubUserRepo {
	return &stubUserRepo{byEmail: map[string]*entity.User{}}
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.byEmail[email], s.err
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, s.err
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	if s.err != nil {
		return s.err
	}
	s.byEmail[u.Email] = u
	return nil
}

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newSvc(repo *stubUserRepo) *auth.Service {
	return auth.NewService(repo, testSecret, time.Hour)
}

func TestSignUp_success(t *testing.T) {
	repo := newUserStub()
	svc := newSvc(repo)

	user, token, err := svc.SignUp(context.Background(), " Alice@Example.com ", "Alice", "hunter22")
	if err != nil {
		t.Fatalf("SignUp err=%v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
		t.Fatal("password stored without hashing")
	}
	if token == "" {
		t.Fatal("no token issued")
	}

	// issued token resolves back to the user
	sub, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken err=%v", err)
	}
	if sub != user.ID {
		t.Fatalf("sub = %q, want %q", sub, user.ID)
	}
}

func TestSignUp_validation(t *testing.T) {
	svc := newSvc(newUserStub())

	_, _, err := svc.SignUp(context.Background(), "bad-email", "", "short")
	var verrs entity.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("want ValidationErrors, got %v", err)
	}
	fields := verrs.Fields()
	for _, f := range []string{"email", "password", "name"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("missing validation for %q: %#v", f, fields)
		}
	}
}

func TestSignUp_duplicateEmail(t *testing.T) {
	repo := newUserStub()
	svc := newSvc(repo)

	if _, _, err := svc.SignUp(context.Background(), "a@example.com", "A", "secret1"); err != nil {
		t.Fatalf("first SignUp err=%v", err)
	}
	_, _, err := svc.SignUp(context.Background(), "a@example.com", "A2", "secret2")
	if !errors.Is(err, auth.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestLogIn(t *testing.T) {
	repo := newUserStub()
	svc := newSvc(repo)
	if _, _, err := svc.SignUp(context.Background(), "a@example.com", "A", "secret1"); err != nil {
		t.Fatalf("SignUp err=%v", err)
	}

	if _, token, err := svc.LogIn(context.Background(), "a@example.com", "secret1"); err != nil || token == "" {
		t.Fatalf("LogIn err=%v token=%q", err, token)
	}

	// wrong password and unknown email fail identically
	_, _, errWrongPw := svc.LogIn(context.Background(), "a@example.com", "nope")
	_, _, errUnknown := svc.LogIn(context.Background(), "ghost@example.com", "secret1")
	if !errors.Is(errWrongPw, auth.ErrInvalidCredentials) || !errors.Is(errUnknown, auth.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for both, got %v / %v", errWrongPw, errUnknown)
	}
	if errWrongPw.Error() != errUnknown.Error() {
		t.Fatal("login error messages differ between unknown email and wrong password")
	}
}

func TestVerifyToken_rejectsGarbageAndWrongKey(t *testing.T) {
	svc := newSvc(newUserStub())

	if _, err := svc.VerifyToken("not-a-token"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}

	other := auth.NewService(newUserStub(), []byte("another-secret-another-secret-32"), time.Hour)
	repo := newUserStub()
	issuing := newSvc(repo)
	_, token, err := issuing.SignUp(context.Background(), "a@example.com", "A", "secret1")
	if err != nil {
		t.Fatalf("SignUp err=%v", err)
	}
	if _, err := other.VerifyToken(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("token accepted with wrong secret: %v", err)
	}
}

func TestVerifyToken_expired(t *testing.T) {
	repo := newUserStub()
	svc := auth.NewService(repo, testSecret, -time.Minute)
	_, token, err := svc.SignUp(context.Background(), "a@example.com", "A", "secret1")
	if err != nil {
		t.Fatalf("SignUp err=%v", err)
	}
	if _, err := svc.VerifyToken(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expired token accepted: %v", err)
	}
}
