package Services

import (
	"time"

	"gorm.io/gorm"

	"AzizPoultry/Models"
)

type SettingService struct {
	DB    *gorm.DB
	Audit *AuditService
}

func NewSettingService(db *gorm.DB, audit *AuditService) *SettingService {
	return &SettingService{DB: db, Audit: audit}
}

type CreateSettingInput struct {
	Key         string `json:"key" validate:"required,max=100"`
	Value       string `json:"value"`
	Category    string `json:"category" validate:"max=50"`
	Description string `json:"description"`
}

type UpdateSettingInput struct {
	Value       *string `json:"value"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	Description *string `json:"description"`
}

func (s *SettingService) List() ([]Models.Setting, error) {
	var settings []Models.Setting
	err := s.DB.Order("category ASC, key ASC").Find(&settings).Error
	return settings, err
}

func (s *SettingService) ByCategory(category string) ([]Models.Setting, error) {
	var settings []Models.Setting
	err := s.DB.Where("category = ?", category).Order("key ASC").Find(&settings).Error
	return settings, err
}

// Get retrieves a setting by its business key, not the surrogate id.
func (s *SettingService) Get(key string) (Models.Setting, error) {
	var setting Models.Setting
	if err := s.DB.Where("key = ?", key).First(&setting).Error; err != nil {
		return Models.Setting{}, &NotFoundError{Entity: "setting", Key: key}
	}
	return setting, nil
}

func (s *SettingService) Create(input CreateSettingInput, actor *Actor) (Models.Setting, error) {
	if _, err := s.Get(input.Key); err == nil {
		return Models.Setting{}, conflict("setting", "key", input.Key)
	}

	setting := Models.Setting{
		Key:         input.Key,
		Value:       input.Value,
		Category:    input.Category,
		Description: input.Description,
	}
	if err := s.DB.Create(&setting).Error; err != nil {
		if isUniqueViolation(err) {
			return Models.Setting{}, conflict("setting", "key", input.Key)
		}
		return Models.Setting{}, err
	}

	s.Audit.Record(actor, Models.ActionCreate, "settings", setting.ID, nil, setting)
	return setting, nil
}

func (s *SettingService) Update(key string, input UpdateSettingInput, actor *Actor) (Models.Setting, error) {
	setting, err := s.Get(key)
	if err != nil {
		return Models.Setting{}, err
	}
	before := setting

	if input.Value != nil {
		setting.Value = *input.Value
	}
	if input.Category != nil {
		setting.Category = *input.Category
	}
	if input.Description != nil {
		setting.Description = *input.Description
	}
	setting.UpdatedAt = time.Now()

	if err := s.DB.Save(&setting).Error; err != nil {
		return Models.Setting{}, err
	}

	s.Audit.Record(actor, Models.ActionUpdate, "settings", setting.ID, before, setting)
	return setting, nil
}

// UpsertByKey creates the setting when the key is new, otherwise updates
// the stored row in place. Exactly one row per key either way, including
// under concurrent upserts: a create that loses the race to the unique
// index falls back to updating the row the other writer left.
func (s *SettingService) UpsertByKey(key, value, category, description string, actor *Actor) (Models.Setting, error) {
	if _, err := s.Get(key); err != nil {
		created, err := s.Create(CreateSettingInput{
			Key:         key,
			Value:       value,
			Category:    category,
			Description: description,
		}, actor)
		if err == nil {
			return created, nil
		}
		if !IsConflict(err) {
			return Models.Setting{}, err
		}
	}

	input := UpdateSettingInput{Value: &value}
	if category != "" {
		input.Category = &category
	}
	if description != "" {
		input.Description = &description
	}
	return s.Update(key, input, actor)
}

func (s *SettingService) Delete(key string, actor *Actor) error {
	setting, err := s.Get(key)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(&setting).Error; err != nil {
		return err
	}

	s.Audit.Record(actor, Models.ActionDelete, "settings", setting.ID, setting, nil)
	return nil
}

// AppSettings is the convenience bag of well-known keys the frontend
// reads at startup.
type AppSettings struct {
	Currency       string `json:"currency"`
	Theme          string `json:"theme"`
	CompanyName    string `json:"company_name"`
	CompanyEmail   string `json:"company_email"`
	CompanyPhone   string `json:"company_phone"`
	CompanyAddress string `json:"company_address"`
}

func (s *SettingService) GetAppSettings() (AppSettings, error) {
	settings, err := s.List()
	if err != nil {
		return AppSettings{}, err
	}

	values := make(map[string]string, len(settings))
	for _, setting := range settings {
		values[setting.Key] = setting.Value
	}

	app := AppSettings{
		Currency:       values["currency"],
		Theme:          values["theme"],
		CompanyName:    values["company_name"],
		CompanyEmail:   values["company_email"],
		CompanyPhone:   values["company_phone"],
		CompanyAddress: values["company_address"],
	}
	if app.Currency == "" {
		app.Currency = "INR"
	}
	if app.Theme == "" {
		app.Theme = "light"
	}
	if app.CompanyName == "" {
		app.CompanyName = "Aziz Poultry"
	}
	return app, nil
}

type UpdateAppSettingsInput struct {
	Currency       *string `json:"currency"`
	Theme          *string `json:"theme"`
	CompanyName    *string `json:"company_name"`
	CompanyEmail   *string `json:"company_email"`
	CompanyPhone   *string `json:"company_phone"`
	CompanyAddress *string `json:"company_address"`
}

func (s *SettingService) UpdateAppSettings(input UpdateAppSettingsInput, actor *Actor) error {
	upserts := []struct {
		key         string
		value       *string
		description string
	}{
		{"currency", input.Currency, "System currency"},
		{"theme", input.Theme, "UI theme"},
		{"company_name", input.CompanyName, "Company name"},
		{"company_email", input.CompanyEmail, "Company email"},
		{"company_phone", input.CompanyPhone, "Company phone"},
		{"company_address", input.CompanyAddress, "Company address"},
	}

	for _, u := range upserts {
		if u.value == nil {
			continue
		}
		if _, err := s.UpsertByKey(u.key, *u.value, "general", u.description, actor); err != nil {
			return err
		}
	}
	return nil
}
