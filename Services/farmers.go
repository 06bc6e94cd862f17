package Services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"AzizPoultry/Models"
)

type FarmerService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewFarmerService(db *gorm.DB, audit *AuditService) *FarmerService {
	return &FarmerService{DB: db, Audit: audit}
}

type CreateFarmerInput struct {
	Name    string `json:"name" validate:"required,max=150"`
	Phone   string `json:"phone" validate:"max=50"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateFarmerInput applies only the fields that are present; nil pointers
// leave the stored value untouched.
type UpdateFarmerInput struct {
	Name    *string `json:"name" validate:"omitempty,max=150"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
	Status  *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type FarmerFilter struct {
	Name   string // case-insensitive substring
	Status string
}

func (s *FarmerService) Create(input CreateFarmerInput, actor *Actor) (Models.Farmer, error) {
	farmer := Models.Farmer{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		Notes:   input.Notes,
		Status:  input.Status,
	}
	if farmer.Status == "" {
		farmer.Status = Models.StatusActive
	}

	if err := s.DB.Create(&farmer).Error; err != nil {
		return Models.Farmer{}, err
	}

	s.Audit.Record(actor, Models.ActionCreate, "farmers", farmer.ID, nil, farmer)
	return farmer, nil
}

func (s *FarmerService) Get(id uint) (Models.Farmer, error) {
	var farmer Models.Farmer
	if err := s.DB.First(&farmer, id).Error; err != nil {
		return Models.Farmer{}, notFound("farmer", id)
	}
	return farmer, nil
}

func (s *FarmerService) List(filter FarmerFilter) ([]Models.Farmer, error) {
	query := s.DB.Model(&Models.Farmer{})
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var farmers []Models.Farmer
	err := query.Order("created_at DESC").Find(&farmers).Error
	return farmers, err
}

func (s *FarmerService) Update(id uint, input UpdateFarmerInput, actor *Actor) (Models.Farmer, error) {
	farmer, err := s.Get(id)
	if err != nil {
		return Models.Farmer{}, err
	}
	before := farmer

	if input.Name != nil {
		farmer.Name = *input.Name
	}
	if input.Phone != nil {
		farmer.Phone = *input.Phone
	}
	if input.Email != nil {
		farmer.Email = *input.Email
	}
	if input.Address != nil {
		farmer.Address = *input.Address
	}
	if input.Notes != nil {
		farmer.Notes = *input.Notes
	}
	if input.Status != nil {
		farmer.Status = *input.Status
	}
	farmer.UpdatedAt = time.Now()

	if err := s.DB.Save(&farmer).Error; err != nil {
		return Models.Farmer{}, err
	}

	s.Audit.Record(actor, Models.ActionUpdate, "farmers", farmer.ID, before, farmer)
	return farmer, nil
}

func (s *FarmerService) Delete(id uint, actor *Actor) error {
	farmer, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&farmer).Error; err != nil {
		return err
	}

	s.Audit.Record(actor, Models.ActionDelete, "farmers", farmer.ID, farmer, nil)
	return nil
}
