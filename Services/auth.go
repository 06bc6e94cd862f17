package Services

import (
	"golang.org/x/crypto/bcrypt"

	"AzizPoultry/Models"
)

// AuthService checks credentials against stored bcrypt hashes. Token
// issuance lives in the controller layer; this service only answers
// whether a login may proceed.
type AuthService struct {
	Users *UserService
	Audit *AuditService
}

func NewAuthService(users *UserService, audit *AuditService) *AuthService {
	return &AuthService{Users: users, Audit: audit}
}

// ValidateCredentials returns the user when the email/password pair is
// valid and the account is active. Unknown email and wrong password are
// deliberately indistinguishable to the caller.
func (s *AuthService) ValidateCredentials(email, password string) (Models.User, error) {
	user, err := s.Users.GetByEmail(email)
	if err != nil {
		return Models.User{}, &UnauthorizedError{Reason: "Invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Models.User{}, &UnauthorizedError{Reason: "Invalid credentials"}
	}

	if user.Status != Models.StatusActive {
		return Models.User{}, &UnauthorizedError{Reason: "User is inactive"}
	}

	return user, nil
}

// Login validates credentials, stamps last_login and writes a LOGIN audit
// entry.
func (s *AuthService) Login(email, password string, actor *Actor) (Models.User, error) {
	user, err := s.ValidateCredentials(email, password)
	if err != nil {
		return Models.User{}, err
	}

	if err := s.Users.UpdateLastLogin(user.ID); err != nil {
		return Models.User{}, err
	}

	loginActor := &Actor{UserID: &user.ID, Email: user.Email}
	if actor != nil {
		loginActor.IPAddress = actor.IPAddress
		loginActor.UserAgent = actor.UserAgent
	}
	s.Audit.Record(loginActor, Models.ActionLogin, "users", user.ID, nil, nil)

	return user, nil
}
