package repository

import (
	"strings"
	"testing"

	domainRepo "ombaro-backend/internal/domain/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dialectDB opens a postgres-dialect handle that never connects: the pool is
// lazy and statements are only ever built, not executed.
func dialectDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open dialect db: %v", err)
	}
	return db
}

func TestFindNearbyFiltersDistanceOutsideDerivedTable(t *testing.T) {
	db := dialectDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		repo := &vendorRepository{}
		return repo.nearbyQuery(tx, 12.9716, 77.5946, 10).Find(&[]domainRepo.NearbyVendor{})
	})

	// distance_km is a SELECT-list alias; Postgres rejects it in HAVING or
	// in a same-level WHERE, so the filter must sit above a derived table
	if strings.Contains(sql, "HAVING") || strings.Contains(sql, "GROUP BY") {
		t.Fatalf("distance filter must not use HAVING or GROUP BY:\n%s", sql)
	}

	outer := strings.LastIndex(sql, "WHERE")
	if outer < 0 || !strings.Contains(sql[outer:], "distance_km <=") {
		t.Fatalf("distance filter must be the outer WHERE:\n%s", sql)
	}
	if strings.Index(sql, "AS distance_km") > strings.Index(sql, "AS nearby") {
		t.Fatalf("distance must be computed inside the derived table:\n%s", sql)
	}
	if !strings.Contains(sql, "ORDER BY distance_km") {
		t.Fatalf("results must be ordered by distance:\n%s", sql)
	}
}

func TestFindNearbyBuildsQuery(t *testing.T) {
	db := dialectDB(t).Session(&gorm.Session{DryRun: true})

	if _, err := NewVendorRepository().FindNearby(db, 12.9716, 77.5946, 10); err != nil {
		t.Fatalf("find nearby: %v", err)
	}
}
