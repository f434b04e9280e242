package database

import (
	"fmt"

	"github.com/sangkips/ledger-api/internal/config"
	"github.com/sangkips/ledger-api/internal/domain/entity"
	"github.com/sangkips/ledger-api/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection. SQL statements
// are logged only in debug mode.
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("connected to postgres", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")

	err := db.AutoMigrate(
		// Access control
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},

		// Organisation
		&entity.Department{},
		&entity.Employee{},
		&entity.ExpenseObject{},

		// CRM
		&entity.Customer{},
		&entity.Project{},

		// Project finances
		&entity.Quote{},
		&entity.QuoteItem{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.ProjectExpense{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}

// Permission names checked by the HTTP layer
const (
	PermManageCustomers      = "manage-customers"
	PermManageProjects       = "manage-projects"
	PermManageQuotes         = "manage-quotes"
	PermManageInvoices       = "manage-invoices"
	PermManageExpenses       = "manage-expenses"
	PermApproveExpenses      = "approve-expenses"
	PermManageExpenseObjects = "manage-expense-objects"
	PermManageOrganisation   = "manage-organisation"
	PermViewReports          = "view-reports"
)

// Role names created by SeedDefaultData
const (
	RoleSuperAdmin = entity.RoleSuperAdmin
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleUser       = "user"
)

var allPermissions = []string{
	PermManageCustomers,
	PermManageProjects,
	PermManageQuotes,
	PermManageInvoices,
	PermManageExpenses,
	PermApproveExpenses,
	PermManageExpenseObjects,
	PermManageOrganisation,
	PermViewReports,
}

// rolePermissions lists the grants per role; nil means every permission
var rolePermissions = map[string][]string{
	RoleSuperAdmin: nil,
	RoleAdmin:      nil,
	RoleAccountant: {
		PermManageQuotes,
		PermManageInvoices,
		PermManageExpenses,
		PermApproveExpenses,
		PermViewReports,
	},
	// default role for new registrants
	RoleUser: {
		PermManageCustomers,
		PermManageProjects,
		PermManageQuotes,
		PermManageInvoices,
		PermManageExpenses,
		PermViewReports,
	},
}

// SeedDefaultData seeds permissions, roles and the optional super admin. It is
// safe to run on every start.
func SeedDefaultData(db *gorm.DB, admin config.AdminConfig, log *zap.Logger) error {
	log.Info("seeding default data")

	for _, name := range allPermissions {
		perm := entity.Permission{Name: name, GuardName: "web"}
		if err := db.Where(entity.Permission{Name: name}).FirstOrCreate(&perm).Error; err != nil {
			return fmt.Errorf("seed permission %s: %w", name, err)
		}
	}

	var perms []entity.Permission
	if err := db.Find(&perms).Error; err != nil {
		return fmt.Errorf("load permissions: %w", err)
	}

	for roleName, grants := range rolePermissions {
		role := entity.Role{Name: roleName, GuardName: "web"}
		if err := db.Where(entity.Role{Name: roleName}).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", roleName, err)
		}
		if err := db.Model(&role).Association("Permissions").Replace(pick(perms, grants)); err != nil {
			return fmt.Errorf("sync permissions for %s: %w", roleName, err)
		}
	}

	if admin.Email == "" || admin.Password == "" {
		log.Info("default data seeding completed", zap.Bool("super_admin", false))
		return nil
	}

	var existing int64
	if err := db.Model(&entity.User{}).Where("LOWER(email) = LOWER(?)", admin.Email).Count(&existing).Error; err != nil {
		return fmt.Errorf("lookup super admin: %w", err)
	}
	if existing > 0 {
		log.Info("super admin already exists", zap.String("email", admin.Email))
		return nil
	}

	hashed, err := utils.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("hash super admin password: %w", err)
	}

	var saRole entity.Role
	if err := db.Where("name = ?", RoleSuperAdmin).First(&saRole).Error; err != nil {
		return fmt.Errorf("load super admin role: %w", err)
	}

	adminUser := entity.User{
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Email:     admin.Email,
		Password:  hashed,
		IsActive:  true,
		Roles:     []entity.Role{saRole},
	}
	if err := db.Create(&adminUser).Error; err != nil {
		return fmt.Errorf("create super admin: %w", err)
	}

	log.Info("super admin user created", zap.String("email", admin.Email))
	return nil
}

func pick(perms []entity.Permission, names []string) []entity.Permission {
	if names == nil {
		return perms
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []entity.Permission
	for _, p := range perms {
		if want[p.Name] {
			out = append(out, p)
		}
	}
	return out
}
