package configs

import (
	"log"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"gorm.io/gorm"
)

// SeedCities fills the city lookup used by the address forms.
func SeedCities(db *gorm.DB) error {
	cities := []string{
		"Toronto", "North York", "Scarborough", "Etobicoke", "Mississauga",
		"Brampton", "Markham", "Vaughan", "Richmond Hill", "Oakville",
		"Burlington", "Milton", "Pickering", "Ajax", "Whitby", "Oshawa",
		"Newmarket", "Hamilton", "Kitchener", "Waterloo", "London", "Ottawa",
	}
	for _, name := range cities {
		if err := db.FirstOrCreate(&entity.City{}, entity.City{Name: name, Province: "ON"}).Error; err != nil {
			return err
		}
	}
	log.Println("city lookup seeded")
	return nil
}
