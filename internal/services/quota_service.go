package services

import (
	"errors"
	"time"

	"veoprompt-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuotaService answers whether a user may generate right now and records
// completed generations. The counter is per-process and local-first: two
// devices racing the same account can each observe "allowed" and both
// succeed, overshooting the nominal limit by the number of in-flight
// requests. There is no server-side distributed enforcement.
type QuotaService struct {
	DB         *gorm.DB
	DailyLimit int
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewQuotaService(db *gorm.DB, dailyLimit int) *QuotaService {
	return &QuotaService{DB: db, DailyLimit: dailyLimit, Now: time.Now}
}

func (s *QuotaService) today() string {
	return s.Now().Format("2006-01-02")
}

// Allow reports whether the user may start a generation. Unlimited roles
// short-circuit the counter entirely. For quota-restricted roles the count is
// logically reset when the stored date is not today; the reset is not
// persisted here, only on Record.
func (s *QuotaService) Allow(user *models.User) (bool, error) {
	if user.Unlimited() {
		return true, nil
	}

	var record models.QuotaRecord
	err := s.DB.Where("user_id = ?", user.ID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.DailyLimit > 0, nil
		}
		return false, err
	}

	count := record.Count
	if record.LastResetDate != s.today() {
		count = 0
	}
	return count < s.DailyLimit, nil
}

// Record persists one completed generation as a single upsert: the increment
// (or the lazy reset to 1 on a stale date) happens inside the UPDATE itself,
// so two back-to-back completions can never overwrite each other with a stale
// in-memory count.
func (s *QuotaService) Record(user *models.User) error {
	today := s.today()
	record := models.QuotaRecord{UserID: user.ID, Count: 1, LastResetDate: today}
	return s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":           gorm.Expr("CASE WHEN quota_records.last_reset_date = ? THEN quota_records.count + 1 ELSE 1 END", today),
			"last_reset_date": today,
			"updated_at":      s.Now(),
		}),
	}).Create(&record).Error
}

// Remaining returns how many generations the user has left today. Unlimited
// roles report -1.
func (s *QuotaService) Remaining(user *models.User) (int, error) {
	if user.Unlimited() {
		return -1, nil
	}

	var record models.QuotaRecord
	err := s.DB.Where("user_id = ?", user.ID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.DailyLimit, nil
		}
		return 0, err
	}

	count := record.Count
	if record.LastResetDate != s.today() {
		count = 0
	}
	if count >= s.DailyLimit {
		return 0, nil
	}
	return s.DailyLimit - count, nil
}
