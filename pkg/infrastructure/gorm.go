package infrastructure

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenPostgres abre a conexão GORM e migra os modelos informados.
func OpenPostgres(dsn string, models ...interface{}) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, err
		}
	}
	return db, nil
}
