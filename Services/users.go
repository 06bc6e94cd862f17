package Services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"AzizPoultry/Models"
)

type UserService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewUserService(db *gorm.DB, audit *AuditService) *UserService {
	return &UserService{DB: db, Audit: audit}
}

type CreateUserInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin manager staff"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateUserInput struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin manager staff"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (s *UserService) Create(input CreateUserInput, actor *Actor) (Models.User, error) {
	email := strings.ToLower(input.Email)

	var existing Models.User
	if err := s.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return Models.User{}, conflict("user", "email", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return Models.User{}, err
	}

	user := Models.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Status:       input.Status,
		JoinDate:     time.Now().Format("2006-01-02"),
	}
	if user.Role == "" {
		user.Role = Models.RoleManager
	}
	if user.Status == "" {
		user.Status = Models.StatusActive
	}

	if err := s.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return Models.User{}, conflict("user", "email", email)
		}
		return Models.User{}, err
	}

	s.Audit.Record(actor, Models.ActionCreate, "users", user.ID, nil, sanitizeUser(user))
	return user, nil
}

func (s *UserService) Get(id uint) (Models.User, error) {
	var user Models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return Models.User{}, notFound("user", id)
	}
	return user, nil
}

// GetByEmail looks a user up by its lowercased email.
func (s *UserService) GetByEmail(email string) (Models.User, error) {
	var user Models.User
	err := s.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		return Models.User{}, &NotFoundError{Entity: "user", Key: email}
	}
	return user, nil
}

func (s *UserService) List() ([]Models.User, error) {
	var users []Models.User
	err := s.DB.Order("name ASC").Find(&users).Error
	return users, err
}

func (s *UserService) Update(id uint, input UpdateUserInput, actor *Actor) (Models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return Models.User{}, err
	}
	before := user

	if input.Email != nil {
		email := strings.ToLower(*input.Email)
		if email != user.Email {
			var existing Models.User
			if err := s.DB.Where("email = ? AND id <> ?", email, id).First(&existing).Error; err == nil {
				return Models.User{}, conflict("user", "email", email)
			}
			user.Email = email
		}
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return Models.User{}, err
		}
		user.PasswordHash = string(hash)
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	user.UpdatedAt = time.Now()

	if err := s.DB.Save(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return Models.User{}, conflict("user", "email", user.Email)
		}
		return Models.User{}, err
	}

	s.Audit.Record(actor, Models.ActionUpdate, "users", user.ID, sanitizeUser(before), sanitizeUser(user))
	return user, nil
}

func (s *UserService) Delete(id uint, actor *Actor) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&user).Error; err != nil {
		return err
	}

	s.Audit.Record(actor, Models.ActionDelete, "users", user.ID, sanitizeUser(user), nil)
	return nil
}

func (s *UserService) Activate(id uint, actor *Actor) (Models.User, error) {
	status := Models.StatusActive
	return s.Update(id, UpdateUserInput{Status: &status}, actor)
}

func (s *UserService) Deactivate(id uint, actor *Actor) (Models.User, error) {
	status := Models.StatusInactive
	return s.Update(id, UpdateUserInput{Status: &status}, actor)
}

func (s *UserService) UpdateLastLogin(id uint) error {
	now := time.Now()
	return s.DB.Model(&Models.User{}).Where("id = ?", id).Update("last_login", now).Error
}

type UserStatistics struct {
	TotalUsers    int64 `json:"total_users"`
	ActiveUsers   int64 `json:"active_users"`
	InactiveUsers int64 `json:"inactive_users"`
	AdminUsers    int64 `json:"admin_users"`
	ManagerUsers  int64 `json:"manager_users"`
	StaffUsers    int64 `json:"staff_users"`
}

func (s *UserService) Statistics() (UserStatistics, error) {
	var stats UserStatistics
	users := s.DB.Model(&Models.User{})

	if err := users.Count(&stats.TotalUsers).Error; err != nil {
		return stats, err
	}
	s.DB.Model(&Models.User{}).Where("status = ?", Models.StatusActive).Count(&stats.ActiveUsers)
	s.DB.Model(&Models.User{}).Where("status = ?", Models.StatusInactive).Count(&stats.InactiveUsers)
	s.DB.Model(&Models.User{}).Where("role = ?", Models.RoleAdmin).Count(&stats.AdminUsers)
	s.DB.Model(&Models.User{}).Where("role = ?", Models.RoleManager).Count(&stats.ManagerUsers)
	s.DB.Model(&Models.User{}).Where("role = ?", Models.RoleStaff).Count(&stats.StaffUsers)

	return stats, nil
}

// sanitizeUser strips the password hash before the record goes into an
// audit snapshot.
func sanitizeUser(user Models.User) Models.User {
	user.PasswordHash = ""
	return user
}
