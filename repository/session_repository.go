package repository

import (
	"time"

	"github.com/RodriLang/food-ordering-API-sub001/entity"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// ---------------- Sessions ----------------

func (r *SessionRepository) Create(tx *gorm.DB, s *entity.TableSession) error {
	return tx.Create(s).Error
}

func (r *SessionRepository) FindByPublicID(publicID string) (*entity.TableSession, error) {
	var s entity.TableSession
	if err := r.DB.Where("public_id = ?", publicID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) FindByID(id uint) (*entity.TableSession, error) {
	var s entity.TableSession
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ActiveForTable returns the table's open session, gorm.ErrRecordNotFound when none.
func (r *SessionRepository) ActiveForTable(tableID uint) (*entity.TableSession, error) {
	var s entity.TableSession
	err := r.DB.Where("table_id = ? AND ended_at IS NULL", tableID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Close(tx *gorm.DB, sessionID uint, at time.Time) error {
	return tx.Model(&entity.TableSession{}).
		Where("id = ? AND ended_at IS NULL", sessionID).
		Update("ended_at", at).Error
}

// ---------------- Participants ----------------

func (r *SessionRepository) AddParticipant(tx *gorm.DB, p *entity.SessionParticipant) error {
	return tx.Create(p).Error
}

func (r *SessionRepository) FindParticipant(sessionID uint, publicID string) (*entity.SessionParticipant, error) {
	var p entity.SessionParticipant
	err := r.DB.Where("session_id = ? AND public_id = ?", sessionID, publicID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SessionRepository) MarkLeft(tx *gorm.DB, participantID uint, at time.Time) error {
	return tx.Model(&entity.SessionParticipant{}).
		Where("id = ? AND left_at IS NULL", participantID).
		Update("left_at", at).Error
}

func (r *SessionRepository) CountPresent(tx *gorm.DB, sessionID uint) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.SessionParticipant{}).
		Where("session_id = ? AND left_at IS NULL", sessionID).
		Count(&cnt).Error
	return cnt, err
}

// ---------------- Messages ----------------

func (r *SessionRepository) CreateMessage(m *entity.SessionMessage) error {
	return r.DB.Create(m).Error
}

func (r *SessionRepository) ListMessages(sessionID uint, limit int) ([]entity.SessionMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []entity.SessionMessage
	err := r.DB.Where("session_id = ?", sessionID).
		Order("id DESC").Limit(limit).
		Find(&out).Error
	return out, err
}
