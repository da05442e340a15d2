package backup

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var sqliteMagic = []byte("SQLite format 3\x00")

// VerifySnapshot checks that path holds a readable SQLite database: the file
// header must match and the schema table must be queryable. Restore refuses
// to touch the live file until this passes.
func VerifySnapshot(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	header := make([]byte, len(sqliteMagic))
	_, readErr := io.ReadFull(f, header)
	f.Close()
	if readErr != nil {
		return errors.New("file too short to be a database")
	}
	if !bytes.Equal(header, sqliteMagic) {
		return errors.New("file is not an SQLite database")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var tables int64
	if err := db.Raw("SELECT COUNT(*) FROM sqlite_master").Scan(&tables).Error; err != nil {
		return err
	}
	return nil
}
