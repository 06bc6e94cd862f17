package Services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"AzizPoultry/Models"
)

// Actor identifies who performed a mutation, for the audit trail.
// A nil *Actor means the mutation ran without request context (seeding,
// scripts) and is logged without user attribution.
type Actor struct {
	UserID    *uint
	Email     string
	IPAddress string
	UserAgent string
}

// AuditService appends to and queries the audit trail. The entity services
// hold one as their audit hook, so every create/update/delete is mirrored
// through the same code path instead of ad hoc calls per service.
type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

// Append inserts a log entry. Action and Entity are required; everything
// else is optional. Entries are never updated or deleted.
func (s *AuditService) Append(entry Models.AuditLog) (Models.AuditLog, error) {
	if entry.Action == "" || entry.Entity == "" {
		return Models.AuditLog{}, fmt.Errorf("audit entry requires action and entity")
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return Models.AuditLog{}, err
	}
	return entry, nil
}

// Record is the best-effort hook the entity services call after each
// mutation. A failed audit write is logged, it never fails the mutation
// that triggered it.
func (s *AuditService) Record(actor *Actor, action, entity string, entityID uint, oldValue, newValue interface{}) {
	if s == nil {
		return
	}

	entry := Models.AuditLog{
		Action:    action,
		Entity:    entity,
		EntityID:  fmt.Sprint(entityID),
		OldValues: toJSON(oldValue),
		NewValues: toJSON(newValue),
	}
	if actor != nil {
		entry.UserID = actor.UserID
		entry.UserEmail = actor.Email
		entry.IPAddress = actor.IPAddress
		entry.UserAgent = actor.UserAgent
	}

	if err := s.DB.Create(&entry).Error; err != nil {
		log.Println("Failed to write audit log:", err)
	}
}

func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

type AuditFilter struct {
	StartDate string // YYYY-MM-DD, inclusive
	EndDate   string // YYYY-MM-DD, inclusive
	UserID    *uint
	Action    string
	Entity    string
	Limit     int
}

// Query returns log entries matching all provided filters, newest first.
func (s *AuditService) Query(filter AuditFilter) ([]Models.AuditLog, error) {
	query := s.DB.Model(&Models.AuditLog{})
	query = applyCreatedAtRange(query, filter.StartDate, filter.EndDate)

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.Entity != "" {
		query = query.Where("entity = ?", filter.Entity)
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var logs []Models.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ByEntity returns the history of a single record, newest first.
func (s *AuditService) ByEntity(entity, entityID string) ([]Models.AuditLog, error) {
	var logs []Models.AuditLog
	err := s.DB.Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("created_at DESC").Find(&logs).Error
	return logs, err
}

func (s *AuditService) ByUser(userID uint, limit int) ([]Models.AuditLog, error) {
	query := s.DB.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var logs []Models.AuditLog
	err := query.Find(&logs).Error
	return logs, err
}

func (s *AuditService) Recent(limit int) ([]Models.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []Models.AuditLog
	err := s.DB.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

type UserActivity struct {
	UserID    uint   `json:"user_id"`
	UserEmail string `json:"user_email"`
	Count     int    `json:"count"`
}

type AuditStatistics struct {
	TotalLogs int            `json:"total_logs"`
	ByAction  map[string]int `json:"by_action"`
	ByEntity  map[string]int `json:"by_entity"`
	ByUser    []UserActivity `json:"by_user"`
}

// Statistics aggregates the filtered set by scanning it; no counters are
// maintained incrementally.
func (s *AuditService) Statistics(startDate, endDate string) (AuditStatistics, error) {
	query := s.DB.Model(&Models.AuditLog{})
	query = applyCreatedAtRange(query, startDate, endDate)

	var logs []Models.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		return AuditStatistics{}, err
	}

	stats := AuditStatistics{
		TotalLogs: len(logs),
		ByAction:  make(map[string]int),
		ByEntity:  make(map[string]int),
	}

	userCounts := make(map[uint]*UserActivity)
	for _, entry := range logs {
		stats.ByAction[entry.Action]++
		stats.ByEntity[entry.Entity]++
		if entry.UserID != nil {
			activity, ok := userCounts[*entry.UserID]
			if !ok {
				activity = &UserActivity{UserID: *entry.UserID, UserEmail: entry.UserEmail}
				userCounts[*entry.UserID] = activity
			}
			activity.Count++
		}
	}

	for _, activity := range userCounts {
		stats.ByUser = append(stats.ByUser, *activity)
	}

	return stats, nil
}

// applyCreatedAtRange filters a timestamp column by an inclusive
// YYYY-MM-DD date range.
func applyCreatedAtRange(query *gorm.DB, startDate, endDate string) *gorm.DB {
	if startDate != "" {
		if start, err := time.Parse("2006-01-02", startDate); err == nil {
			query = query.Where("created_at >= ?", start)
		}
	}
	if endDate != "" {
		if end, err := time.Parse("2006-01-02", endDate); err == nil {
			query = query.Where("created_at < ?", end.AddDate(0, 0, 1))
		}
	}
	return query
}
