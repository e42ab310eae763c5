package console

import (
	"errors"

	"github.com/snnnxs25024-ux/absensi-backend/utils"
	"gorm.io/gorm"
)

func GetSites(db *gorm.DB) ([]Site, error) {
	var sites []Site
	err := db.Where(&Site{Active: true}).Find(&sites).Error
	return sites, err
}

// Schemas lists the MySQL schema names of the given sites, the form the
// fleet jobs fan out over.
func Schemas(sites []Site) []string {
	return utils.Map(sites, func(s Site) string {
		return s.Schema
	})
}

func FindSiteByDomain(db *gorm.DB, domain string) (*Site, error) {
	var site Site
	err := db.Where(&Site{Domain: domain}).First(&site).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	return &site, err
}
