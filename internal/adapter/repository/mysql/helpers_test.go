package mysql

import (
	"context"
	"fmt"
	"testing"

	addressDomain "usermgmt-service/internal/domain/address"
	roleDomain "usermgmt-service/internal/domain/role"
	userDomain "usermgmt-service/internal/domain/user"
	"usermgmt-service/internal/infrastructure/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with the full schema. One
// connection only: every new :memory: connection is a fresh empty database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

// newTestUser builds a valid user whose email/phone derive from n.
func newTestUser(t *testing.T, n int) *userDomain.User {
	t.Helper()
	u, err := userDomain.NewUser(
		fmt.Sprintf("user-%d", n),
		fmt.Sprintf("user%d@example.com", n),
		fmt.Sprintf("9%09d", n),
		"ValidPass1!",
	)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	return u
}

func seedUser(t *testing.T, gdb *gorm.DB, n int) *userDomain.User {
	t.Helper()
	u := newTestUser(t, n)
	if err := NewUserRepository(gdb).Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedRole(t *testing.T, gdb *gorm.DB, name string) *roleDomain.Role {
	t.Helper()
	r := roleDomain.NewRole(name)
	if err := NewRoleRepository(gdb).Create(context.Background(), r); err != nil {
		t.Fatalf("seed role: %v", err)
	}
	return r
}

func strp(s string) *string { return &s }

func seedAddress(t *testing.T, gdb *gorm.DB, line1 string) *addressDomain.Address {
	t.Helper()
	a := addressDomain.NewAddress(line1, nil, strp("Pune"), strp("MH"), strp("411001"), strp("IN"))
	if err := NewAddressRepository(gdb).Create(context.Background(), a); err != nil {
		t.Fatalf("seed address: %v", err)
	}
	return a
}
