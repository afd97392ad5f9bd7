package repository

import (
	"database/sql"
	"testing"
	"time"

	"clinic-backend/internal/domain/entity"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlite has no server-side functions, so the tests register Go
// equivalents of the migration-installed age functions under the same
// names and signatures (a DATE argument, not a patient id).
func init() {
	sql.Register("sqlite3_with_age_fns", &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			if err := conn.RegisterFunc("calculate_age", sqliteCalculateAge, true); err != nil {
				return err
			}
			return conn.RegisterFunc("get_patient_age_category", sqliteAgeCategory, true)
		},
	})
}

func sqliteCalculateAge(dob string) int64 {
	if len(dob) < 10 {
		return 0
	}
	born, err := time.Parse("2006-01-02", dob[:10])
	if err != nil {
		return 0
	}
	now := time.Now()
	age := int64(now.Year() - born.Year())
	if now.YearDay() < born.YearDay() {
		age--
	}
	return age
}

func sqliteAgeCategory(dob string) string {
	age := sqliteCalculateAge(dob)
	switch {
	case age < 18:
		return "Minor"
	case age < 65:
		return "Adult"
	default:
		return "Senior"
	}
}

func newInsightsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: "sqlite3_with_age_fns",
		DSN:        ":memory:",
	}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entity.User{}, &entity.Patient{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestPatientAges(t *testing.T) {
	db := newInsightsTestDB(t)
	repo := NewInsightsRepository()

	now := time.Now()
	patients := []entity.Patient{
		{Name: "Young", DateOfBirth: now.AddDate(-10, 0, 0), Gender: entity.GenderFemale},
		{Name: "Grown", DateOfBirth: now.AddDate(-40, 0, 0), Gender: entity.GenderMale},
		{Name: "Elder", DateOfBirth: now.AddDate(-80, 0, 0), Gender: entity.GenderOther},
	}
	for i := range patients {
		if err := db.Create(&patients[i]).Error; err != nil {
			t.Fatalf("failed to create patient %s: %v", patients[i].Name, err)
		}
	}

	rows, err := repo.PatientAges(db)
	if err != nil {
		t.Fatalf("PatientAges failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want 3", len(rows))
	}

	want := map[string]struct {
		age      int
		category string
	}{
		"Young": {10, "Minor"},
		"Grown": {40, "Adult"},
		"Elder": {80, "Senior"},
	}
	for _, row := range rows {
		w, ok := want[row.Name]
		if !ok {
			t.Errorf("unexpected patient %q", row.Name)
			continue
		}
		if row.Age != w.age {
			t.Errorf("%s: age = %d, want %d", row.Name, row.Age, w.age)
		}
		if row.Category != w.category {
			t.Errorf("%s: category = %q, want %q", row.Name, row.Category, w.category)
		}
	}
}
