// Package seed bootstraps a demo account so a fresh install has data to
// explore: one user, a client, two products and an issued invoice.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	authdomain "github.com/contafacil/portal/internal/auth/domain"
	"github.com/contafacil/portal/internal/auth/password"
	clientdomain "github.com/contafacil/portal/internal/client/domain"
	invoicedomain "github.com/contafacil/portal/internal/invoice/domain"
	productdomain "github.com/contafacil/portal/internal/product/domain"
)

const (
	demoEmail    = "demo@contafacil.com.br"
	demoPassword = "demo12345"
	demoCompany  = "Silva Consultoria ME"
	demoCNPJ     = "12.345.678/0001-90"
)

// EnsureDemoAccount seeds the demo user and sample records. Re-running is a
// no-op once the demo user exists.
func EnsureDemoAccount(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing authdomain.User
		err := tx.Where("email = ?", demoEmail).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		user, err := seedUser(tx, node)
		if err != nil {
			return err
		}
		client, err := seedClient(tx, node, user.ID)
		if err != nil {
			return err
		}
		if err := seedProducts(tx, node, user.ID); err != nil {
			return err
		}
		return seedInvoice(tx, node, user.ID, client)
	})
}

func seedUser(tx *gorm.DB, node *snowflake.Node) (*authdomain.User, error) {
	hashed, err := password.Hash(demoPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &authdomain.User{
		ID:                  node.Generate(),
		Email:               demoEmail,
		PasswordHash:        &hashed,
		CompanyName:         demoCompany,
		CNPJ:                demoCNPJ,
		LastPasswordChanged: &now,
	}
	return user, tx.Create(user).Error
}

func seedClient(tx *gorm.DB, node *snowflake.Node, ownerID snowflake.ID) (*clientdomain.Client, error) {
	client := &clientdomain.Client{
		ID:      node.Generate(),
		OwnerID: ownerID,
		Name:    "Padaria Estrela Ltda",
		TaxID:   "98.765.432/0001-10",
		Email:   "contato@padariaestrela.com.br",
		Street:  "Rua das Flores",
		Number:  "123",
		City:    "São Paulo",
		State:   "SP",
		Zip:     "01310-100",
	}
	return client, tx.Create(client).Error
}

func seedProducts(tx *gorm.DB, node *snowflake.Node, ownerID snowflake.ID) error {
	products := []productdomain.Product{
		{
			ID:             node.Generate(),
			OwnerID:        ownerID,
			SKU:            "CONS-001",
			Name:           "Consultoria mensal",
			Category:       "Serviços",
			CostPriceCents: 80000,
			SalePriceCents: 250000,
			CurrentStock:   10,
			MinStock:       2,
		},
		{
			ID:             node.Generate(),
			OwnerID:        ownerID,
			SKU:            "TRE-001",
			Name:           "Treinamento in company",
			Category:       "Serviços",
			CostPriceCents: 120000,
			SalePriceCents: 480000,
			CurrentStock:   4,
			MinStock:       1,
		},
	}
	return tx.Create(&products).Error
}

func seedInvoice(tx *gorm.DB, node *snowflake.Node, ownerID snowflake.ID, client *clientdomain.Client) error {
	issueDate := time.Now().UTC().AddDate(0, 0, -7)
	invoice := &invoicedomain.Invoice{
		ID:        node.Generate(),
		OwnerID:   ownerID,
		Number:    "001/" + issueDate.Format("2006"),
		Status:    invoicedomain.InvoiceStatusIssued,
		IssueDate: issueDate,
		TaxRate:   decimal.RequireFromString("6.00"),
		Issuer: invoicedomain.Party{
			Name:  demoCompany,
			TaxID: demoCNPJ,
			City:  "São Paulo",
			State: "SP",
		},
		Client: invoicedomain.Party{
			Name:   client.Name,
			TaxID:  client.TaxID,
			Email:  client.Email,
			Street: client.Street,
			Number: client.Number,
			City:   client.City,
			State:  client.State,
			Zip:    client.Zip,
		},
	}
	if err := tx.Create(invoice).Error; err != nil {
		return err
	}

	item := &invoicedomain.InvoiceItem{
		ID:             node.Generate(),
		OwnerID:        ownerID,
		InvoiceID:      invoice.ID,
		Description:    "Consultoria mensal - contrato recorrente",
		Quantity:       decimal.NewFromInt(1),
		UnitPriceCents: 250000,
		AmountCents:    250000,
	}
	return tx.Create(item).Error
}
