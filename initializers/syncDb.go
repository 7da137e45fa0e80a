package initializers

import (
	"log"

	"github.com/hostelmate/hostelmate-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Hostel{},
		&models.HostelImage{},
		&models.Room{},
		&models.Booking{},
		&models.Canteen{},
		&models.MenuItem{},
		&models.MealPlan{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderFeedback{},
		&models.ProviderFeedback{},
		&models.Subscription{},
		&models.Contract{},
	)
	log.Println("Database synced successfully.")
}
