package models

import "gorm.io/gorm"

func (r *Report) AfterCreate(tx *gorm.DB) error {
	log.Debug("Report created %s for resource %s", r.UUID, r.ResourceUUID)
	return nil
}
