package jobs

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/sefask/assignment-api/models"
)

// DeactivateFinishedAssignments flips isActive off for live assignments
// whose end time has passed. Runs on a cron schedule from main.
func DeactivateFinishedAssignments(db *gorm.DB) {
	result := db.Model(&models.Assignment{}).
		Where("type = ? AND is_active = ? AND end_time <= ?", models.AssignmentTypeLive, true, time.Now()).
		Update("is_active", false)

	if result.Error != nil {
		log.Printf("Error deactivating finished assignments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Marked %d assignment(s) as inactive.", result.RowsAffected)
	}
}
