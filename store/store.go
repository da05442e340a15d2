package store

import (
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"clinicore/models"
)

var validate = validator.New()

// Store owns the embedded datastore file. One Store is created per process
// and passed explicitly to everything that needs it; there is no shared
// package-level handle.
//
// Concurrency follows SQLite's single-writer discipline. The gate exists for
// the one case SQLite cannot cover: a restore replaces the file wholesale, so
// it takes the gate exclusively while every normal operation holds it shared.
type Store struct {
	db   *gorm.DB
	path string
	gate sync.RWMutex
}

// Open opens (creating if needed) the datastore at path, migrates the schema
// and seeds the initial login when the user table is empty.
func Open(path string) (*Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	if err := s.seedDefaultUser(); err != nil {
		return nil, err
	}
	log.Printf("datastore ready at %s", path)
	return s, nil
}

func openDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func (s *Store) migrate() error {
	return s.db.AutoMigrate(
		&models.Patient{},
		&models.Doctor{},
		&models.Appointment{},
		&models.Prescription{},
		&models.MedicineItem{},
		&models.Bill{},
		&models.Medicine{},
		&models.User{},
	)
}

// Path returns the location of the live datastore file.
func (s *Store) Path() string { return s.path }

// Close releases the underlying handle.
func (s *Store) Close() error {
	s.gate.Lock()
	defer s.gate.Unlock()
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Snapshot writes a consistent copy of the live database to dest using
// SQLite's VACUUM INTO, which does not require suspending normal access.
func (s *Store) Snapshot(dest string) error {
	s.gate.RLock()
	defer s.gate.RUnlock()
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return err
	}
	return wrapDB(s.db.Exec("VACUUM INTO ?", dest).Error)
}

// Restore atomically replaces the live datastore file with the verified
// snapshot at src. It closes the handle, renames src over the live file
// (atomic when src sits in the same directory) and reopens. When the rename
// fails the previous file is untouched and the handle is reopened on it.
func (s *Store) Restore(src string) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return err
	}
	renameErr := os.Rename(src, s.path)
	db, openErr := openDB(s.path)
	if openErr != nil {
		return openErr
	}
	s.db = db
	if renameErr != nil {
		return renameErr
	}
	log.Printf("datastore restored from %s", src)
	return nil
}

// tx runs fn inside a transaction while holding the gate shared, mapping
// driver failures into the store taxonomy.
func (s *Store) tx(fn func(tx *gorm.DB) error) error {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return wrapDB(s.db.Transaction(fn))
}

// read acquires the gate shared and hands out the handle for queries.
func (s *Store) read(fn func(db *gorm.DB) error) error {
	s.gate.RLock()
	defer s.gate.RUnlock()
	return wrapDB(fn(s.db))
}

func checkStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return &Error{Kind: KindValidation, Message: "missing or invalid fields", Err: err}
	}
	return nil
}

// checkDate rejects values that are not ISO calendar dates. Optional date
// columns pass when empty.
func checkDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(models.DateLayout, value); err != nil {
		return validationErr("%s must be a %s date, got %q", field, models.DateLayout, value)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
