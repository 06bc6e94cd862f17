package Services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"AzizPoultry/Models"
)

type RetailerService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewRetailerService(db *gorm.DB, audit *AuditService) *RetailerService {
	return &RetailerService{DB: db, Audit: audit}
}

type CreateRetailerInput struct {
	Name      string `json:"name" validate:"required,max=150"`
	OwnerName string `json:"owner_name" validate:"max=150"`
	Phone     string `json:"phone" validate:"max=50"`
	Email     string `json:"email" validate:"omitempty,email"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateRetailerInput struct {
	Name      *string `json:"name" validate:"omitempty,max=150"`
	OwnerName *string `json:"owner_name" validate:"omitempty,max=150"`
	Phone     *string `json:"phone" validate:"omitempty,max=50"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Address   *string `json:"address"`
	Notes     *string `json:"notes"`
	Status    *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type RetailerFilter struct {
	Name   string
	Status string
}

func (s *RetailerService) Create(input CreateRetailerInput, actor *Actor) (Models.Retailer, error) {
	retailer := Models.Retailer{
		Name:      input.Name,
		OwnerName: input.OwnerName,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		Notes:     input.Notes,
		Status:    input.Status,
	}
	if retailer.Status == "" {
		retailer.Status = Models.StatusActive
	}

	if err := s.DB.Create(&retailer).Error; err != nil {
		return Models.Retailer{}, err
	}

	s.Audit.Record(actor, Models.ActionCreate, "retailers", retailer.ID, nil, retailer)
	return retailer, nil
}

func (s *RetailerService) Get(id uint) (Models.Retailer, error) {
	var retailer Models.Retailer
	if err := s.DB.First(&retailer, id).Error; err != nil {
		return Models.Retailer{}, notFound("retailer", id)
	}
	return retailer, nil
}

func (s *RetailerService) List(filter RetailerFilter) ([]Models.Retailer, error) {
	query := s.DB.Model(&Models.Retailer{})
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var retailers []Models.Retailer
	err := query.Order("name ASC").Find(&retailers).Error
	return retailers, err
}

func (s *RetailerService) Update(id uint, input UpdateRetailerInput, actor *Actor) (Models.Retailer, error) {
	retailer, err := s.Get(id)
	if err != nil {
		return Models.Retailer{}, err
	}
	before := retailer

	if input.Name != nil {
		retailer.Name = *input.Name
	}
	if input.OwnerName != nil {
		retailer.OwnerName = *input.OwnerName
	}
	if input.Phone != nil {
		retailer.Phone = *input.Phone
	}
	if input.Email != nil {
		retailer.Email = *input.Email
	}
	if input.Address != nil {
		retailer.Address = *input.Address
	}
	if input.Notes != nil {
		retailer.Notes = *input.Notes
	}
	if input.Status != nil {
		retailer.Status = *input.Status
	}
	retailer.UpdatedAt = time.Now()

	if err := s.DB.Save(&retailer).Error; err != nil {
		return Models.Retailer{}, err
	}

	s.Audit.Record(actor, Models.ActionUpdate, "retailers", retailer.ID, before, retailer)
	return retailer, nil
}

// Delete removes the retailer unconditionally. Sales that reference it keep
// their retailer_id; the reference simply resolves to null from then on.
func (s *RetailerService) Delete(id uint, actor *Actor) error {
	retailer, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&retailer).Error; err != nil {
		return err
	}

	s.Audit.Record(actor, Models.ActionDelete, "retailers", retailer.ID, retailer, nil)
	return nil
}
