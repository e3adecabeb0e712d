package database

import (
	"log"
	"time"

	"approval-tracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init abre la conexión con reintentos, migra el esquema y siembra los
// usuarios de demostración. Devuelve el handle en vez de dejarlo en una
// variable global: cada componente lo recibe de forma explícita.
func Init(dsn string) *gorm.DB {
	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	// migraciones
	err = db.AutoMigrate(
		&models.User{},
		&models.Request{},
		&models.HistoryEntry{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaultUsers(db)

	return db
}

// La aplicación no tiene registro de usuarios: el directorio se siembra
// con cuentas de demostración la primera vez.
func seedDefaultUsers(db *gorm.DB) {
	users := []models.User{
		{
			Username: "mgonzalez",
			Email:    "maria.gonzalez@empresa.com",
			FullName: "María González",
			Role:     models.RoleAdmin,
			IsActive: true,
		},
		{
			Username: "cperez",
			Email:    "carlos.perez@empresa.com",
			FullName: "Carlos Pérez",
			Role:     models.RoleUser,
			IsActive: true,
		},
		{
			Username: "lramirez",
			Email:    "lucia.ramirez@empresa.com",
			FullName: "Lucía Ramírez",
			Role:     models.RoleUser,
			IsActive: true,
		},
		{
			Username: "jtorres",
			Email:    "", // sin email: ejercita el destinatario de respaldo del notificador
			FullName: "Jorge Torres",
			Role:     models.RoleUser,
			IsActive: true,
		},
		{
			Username: "aherrera",
			Email:    "ana.herrera@empresa.com",
			FullName: "Ana Herrera",
			Role:     models.RoleUser,
			IsActive: false,
		},
	}

	for _, u := range users {
		var count int64
		if err := db.Model(&models.User{}).
			Where("username = ?", u.Username).
			Count(&count).Error; err != nil {
			log.Printf("failed to check seed user %s: %v", u.Username, err)
			continue
		}
		if count > 0 {
			// ya existe
			continue
		}

		if err := db.Create(&u).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", u.Username, err)
			continue
		}

		log.Printf("created seed user: %s (role=%s, active=%t)", u.Username, u.Role, u.IsActive)
	}
}
