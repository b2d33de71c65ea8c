package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	accountantdomain "github.com/contafacil/portal/internal/accountant/domain"
	authdomain "github.com/contafacil/portal/internal/auth/domain"
	clientdomain "github.com/contafacil/portal/internal/client/domain"
	"github.com/contafacil/portal/internal/config"
	documentdomain "github.com/contafacil/portal/internal/document/domain"
	employeedomain "github.com/contafacil/portal/internal/employee/domain"
	invoicedomain "github.com/contafacil/portal/internal/invoice/domain"
	partnerdomain "github.com/contafacil/portal/internal/partner/domain"
	plandomain "github.com/contafacil/portal/internal/plan/domain"
	productdomain "github.com/contafacil/portal/internal/product/domain"
	"github.com/contafacil/portal/internal/seed"
	taxdomain "github.com/contafacil/portal/internal/tax/domain"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// SQLite and MySQL development setups derive the schema from
			// the models directly.
			if err := conn.AutoMigrate(
				&authdomain.User{},
				&authdomain.Session{},
				&invoicedomain.Invoice{},
				&invoicedomain.InvoiceItem{},
				&taxdomain.RateConfigRecord{},
				&documentdomain.Document{},
				&clientdomain.Client{},
				&partnerdomain.Partner{},
				&employeedomain.Employee{},
				&productdomain.Product{},
				&productdomain.Sale{},
				&plandomain.Subscription{},
				&accountantdomain.SupportMessage{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoData {
			return seed.EnsureDemoAccount(conn)
		}
		return nil
	}),
)
