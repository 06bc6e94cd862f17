package Services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"AzizPoultry/Models"
)

type VehicleService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewVehicleService(db *gorm.DB, audit *AuditService) *VehicleService {
	return &VehicleService{DB: db, Audit: audit}
}

type CreateVehicleInput struct {
	VehicleNumber      string           `json:"vehicle_number" validate:"required,max=50"`
	VehicleType        string           `json:"vehicle_type" validate:"max=50"`
	DriverName         string           `json:"driver_name" validate:"max=150"`
	Phone              string           `json:"phone" validate:"max=50"`
	OwnerName          string           `json:"owner_name" validate:"max=150"`
	Address            string           `json:"address"`
	TotalCapacity      *int             `json:"total_capacity"`
	PetrolTankCapacity *decimal.Decimal `json:"petrol_tank_capacity"`
	Mileage            *decimal.Decimal `json:"mileage"`
	JoinDate           string           `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
	Status             string           `json:"status" validate:"omitempty,oneof=active inactive"`
	Note               string           `json:"note"`
}

type UpdateVehicleInput struct {
	VehicleNumber      *string          `json:"vehicle_number" validate:"omitempty,max=50"`
	VehicleType        *string          `json:"vehicle_type" validate:"omitempty,max=50"`
	DriverName         *string          `json:"driver_name" validate:"omitempty,max=150"`
	Phone              *string          `json:"phone" validate:"omitempty,max=50"`
	OwnerName          *string          `json:"owner_name" validate:"omitempty,max=150"`
	Address            *string          `json:"address"`
	TotalCapacity      *int             `json:"total_capacity"`
	PetrolTankCapacity *decimal.Decimal `json:"petrol_tank_capacity"`
	Mileage            *decimal.Decimal `json:"mileage"`
	JoinDate           *string          `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
	Status             *string          `json:"status" validate:"omitempty,oneof=active inactive"`
	Note               *string          `json:"note"`
}

type VehicleFilter struct {
	DriverName string
	Status     string
}

func (s *VehicleService) Create(input CreateVehicleInput, actor *Actor) (Models.Vehicle, error) {
	var existing Models.Vehicle
	if err := s.DB.Where("vehicle_number = ?", input.VehicleNumber).First(&existing).Error; err == nil {
		return Models.Vehicle{}, conflict("vehicle", "number", input.VehicleNumber)
	}

	vehicle := Models.Vehicle{
		VehicleNumber:      input.VehicleNumber,
		VehicleType:        input.VehicleType,
		DriverName:         input.DriverName,
		Phone:              input.Phone,
		OwnerName:          input.OwnerName,
		Address:            input.Address,
		TotalCapacity:      input.TotalCapacity,
		PetrolTankCapacity: input.PetrolTankCapacity,
		Mileage:            input.Mileage,
		JoinDate:           input.JoinDate,
		Status:             input.Status,
		Note:               input.Note,
	}
	if vehicle.Status == "" {
		vehicle.Status = Models.StatusActive
	}
	if vehicle.JoinDate == "" {
		vehicle.JoinDate = time.Now().Format("2006-01-02")
	}

	if err := s.DB.Create(&vehicle).Error; err != nil {
		if isUniqueViolation(err) {
			return Models.Vehicle{}, conflict("vehicle", "number", input.VehicleNumber)
		}
		return Models.Vehicle{}, err
	}

	s.Audit.Record(actor, Models.ActionCreate, "vehicles", vehicle.ID, nil, vehicle)
	return vehicle, nil
}

func (s *VehicleService) Get(id uint) (Models.Vehicle, error) {
	var vehicle Models.Vehicle
	if err := s.DB.First(&vehicle, id).Error; err != nil {
		return Models.Vehicle{}, notFound("vehicle", id)
	}
	return vehicle, nil
}

func (s *VehicleService) List(filter VehicleFilter) ([]Models.Vehicle, error) {
	query := s.DB.Model(&Models.Vehicle{})
	if filter.DriverName != "" {
		query = query.Where("LOWER(driver_name) LIKE ?", "%"+strings.ToLower(filter.DriverName)+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var vehicles []Models.Vehicle
	err := query.Order("driver_name ASC").Find(&vehicles).Error
	return vehicles, err
}

func (s *VehicleService) Update(id uint, input UpdateVehicleInput, actor *Actor) (Models.Vehicle, error) {
	vehicle, err := s.Get(id)
	if err != nil {
		return Models.Vehicle{}, err
	}
	before := vehicle

	if input.VehicleNumber != nil && *input.VehicleNumber != vehicle.VehicleNumber {
		var existing Models.Vehicle
		if err := s.DB.Where("vehicle_number = ? AND id <> ?", *input.VehicleNumber, id).First(&existing).Error; err == nil {
			return Models.Vehicle{}, conflict("vehicle", "number", *input.VehicleNumber)
		}
		vehicle.VehicleNumber = *input.VehicleNumber
	}
	if input.VehicleType != nil {
		vehicle.VehicleType = *input.VehicleType
	}
	if input.DriverName != nil {
		vehicle.DriverName = *input.DriverName
	}
	if input.Phone != nil {
		vehicle.Phone = *input.Phone
	}
	if input.OwnerName != nil {
		vehicle.OwnerName = *input.OwnerName
	}
	if input.Address != nil {
		vehicle.Address = *input.Address
	}
	if input.TotalCapacity != nil {
		vehicle.TotalCapacity = input.TotalCapacity
	}
	if input.PetrolTankCapacity != nil {
		vehicle.PetrolTankCapacity = input.PetrolTankCapacity
	}
	if input.Mileage != nil {
		vehicle.Mileage = input.Mileage
	}
	if input.JoinDate != nil {
		vehicle.JoinDate = *input.JoinDate
	}
	if input.Status != nil {
		vehicle.Status = *input.Status
	}
	if input.Note != nil {
		vehicle.Note = *input.Note
	}
	vehicle.UpdatedAt = time.Now()

	if err := s.DB.Save(&vehicle).Error; err != nil {
		if isUniqueViolation(err) {
			return Models.Vehicle{}, conflict("vehicle", "number", vehicle.VehicleNumber)
		}
		return Models.Vehicle{}, err
	}

	s.Audit.Record(actor, Models.ActionUpdate, "vehicles", vehicle.ID, before, vehicle)
	return vehicle, nil
}

func (s *VehicleService) Delete(id uint, actor *Actor) error {
	vehicle, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&vehicle).Error; err != nil {
		return err
	}

	s.Audit.Record(actor, Models.ActionDelete, "vehicles", vehicle.ID, vehicle, nil)
	return nil
}
