//go:build integration

package infrastructure

import (
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

func ClearTestData(db *gorm.DB) {
	truncateRes := db.Exec("TRUNCATE bid_feedback, bid_decision, bid_version, bid, tender_version, tender, " +
		"organization_responsible, organization, employee CASCADE")
	if truncateRes.Error != nil {
		log.Error(truncateRes.Error)
	} else {
		log.Info("tender tables truncated")
	}
}
