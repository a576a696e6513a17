package service

import (
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records who changed what. Failures are logged and swallowed:
// an audit miss must never fail the business operation it describes.
type AuditService interface {
	LogCreate(db *gorm.DB, userID *uint, action string, entityName string, entityID string, newValue interface{})
	LogUpdate(db *gorm.DB, userID *uint, action string, entityName string, entityID string, oldValue, newValue interface{})
	LogDelete(db *gorm.DB, userID *uint, action string, entityName string, entityID string, oldValue interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(db *gorm.DB, userID *uint, action string, entityName string, entityID string, newValue interface{}) {
	s.write(db, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

func (s *auditService) LogUpdate(db *gorm.DB, userID *uint, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	s.write(db, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) LogDelete(db *gorm.DB, userID *uint, action string, entityName string, entityID string, oldValue interface{}) {
	s.write(db, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

func (s *auditService) write(db *gorm.DB, userID *uint, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log for %s: %+v", action, err)
	}
}
