package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/contafacil/portal/internal/clock"
	"github.com/contafacil/portal/internal/product/domain"
	"github.com/contafacil/portal/internal/usercontext"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	Clock clock.Clock
}

type productService struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
	clock clock.Clock
}

func NewService(p Params) domain.Service {
	return &productService{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		repo:  p.Repo,
		clock: p.Clock,
	}
}

func (s *productService) Upsert(ctx context.Context, req domain.UpsertRequest) (*domain.Product, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.CostPriceCents < 0 || req.SalePriceCents < 0 {
		return nil, domain.ErrInvalidPrice
	}
	if req.CurrentStock < 0 || req.MinStock < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	if req.ID != "" {
		id, err := snowflake.ParseString(req.ID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		product, err := s.repo.FindByID(ctx, s.db, ownerID, id)
		if err != nil {
			return nil, err
		}
		applyFields(product, req)
		if err := s.repo.Save(ctx, s.db, product); err != nil {
			return nil, err
		}
		return product, nil
	}

	product := &domain.Product{
		ID:      s.genID.Generate(),
		OwnerID: ownerID,
	}
	applyFields(product, req)
	if err := s.repo.Insert(ctx, s.db, product); err != nil {
		return nil, err
	}
	s.log.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("sku", product.SKU),
	)
	return product, nil
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}
	rows, err := s.repo.List(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, *row)
	}
	return products, nil
}

func (s *productService) Delete(ctx context.Context, rawID string) error {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return domain.ErrInvalidAccount
	}
	id, err := snowflake.ParseString(rawID)
	if err != nil {
		return domain.ErrInvalidID
	}
	if _, err := s.repo.FindByID(ctx, s.db, ownerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, ownerID, id)
}

func (s *productService) RecordSale(ctx context.Context, req domain.SaleRequest) (*domain.Sale, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}
	productID, err := snowflake.ParseString(req.ProductID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var sale *domain.Sale
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		product, err := s.repo.FindByID(ctx, tx, ownerID, productID)
		if err != nil {
			return err
		}
		if req.Quantity > product.CurrentStock {
			return domain.ErrInsufficientStock
		}

		sale = &domain.Sale{
			ID:         s.genID.Generate(),
			OwnerID:    ownerID,
			ProductID:  product.ID,
			Quantity:   req.Quantity,
			TotalCents: req.Quantity * product.SalePriceCents,
			SoldAt:     s.clock.Now(),
		}
		if err := s.repo.InsertSale(ctx, tx, sale); err != nil {
			return err
		}

		product.CurrentStock -= req.Quantity
		return s.repo.Save(ctx, tx, product)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("sale recorded",
		zap.String("product_id", sale.ProductID.String()),
		zap.Int64("quantity", sale.Quantity),
		zap.Int64("total_cents", sale.TotalCents),
	)
	return sale, nil
}

func (s *productService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}
	rows, err := s.repo.ListSales(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	sales := make([]domain.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, *row)
	}
	return sales, nil
}

func (s *productService) Inventory(ctx context.Context) (*domain.InventorySummary, error) {
	ownerID, ok := usercontext.UserIDFromContext(ctx)
	if !ok {
		return nil, domain.ErrInvalidAccount
	}
	products, err := s.repo.List(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	sales, err := s.repo.ListSales(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}

	summary := &domain.InventorySummary{
		ProductCount: len(products),
		LowStock:     []domain.Product{},
	}
	for _, p := range products {
		summary.StockValueCents += p.CostPriceCents * p.CurrentStock
		summary.PotentialProfitCents += (p.SalePriceCents - p.CostPriceCents) * p.CurrentStock
		if p.LowOnStock() {
			summary.LowStock = append(summary.LowStock, *p)
		}
	}
	for _, sale := range sales {
		summary.SalesTotalCents += sale.TotalCents
	}
	return summary, nil
}

func applyFields(product *domain.Product, req domain.UpsertRequest) {
	product.SKU = strings.TrimSpace(req.SKU)
	product.Name = req.Name
	product.Category = strings.TrimSpace(req.Category)
	product.CostPriceCents = req.CostPriceCents
	product.SalePriceCents = req.SalePriceCents
	product.CurrentStock = req.CurrentStock
	product.MinStock = req.MinStock
}
