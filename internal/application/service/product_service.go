package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sangkips/booth-pos/internal/domain/entity"
	"github.com/sangkips/booth-pos/internal/domain/repository"
	"github.com/sangkips/booth-pos/pkg/apperror"
	"github.com/sangkips/booth-pos/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ProductService manages the product catalog document
type ProductService struct {
	productRepo  repository.ProductRepository
	defaultImage string
	log          *logrus.Entry

	// guards catalog read-modify-write cycles
	mu sync.Mutex
}

// NewProductService creates a new product service.
// defaultImage is stored on products saved without an image; empty disables it.
func NewProductService(productRepo repository.ProductRepository, defaultImage string) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		defaultImage: defaultImage,
		log:          logger.WithComponent("product_service"),
	}
}

// ProductInput is the data accepted when adding or updating a product
type ProductInput struct {
	Name  string
	Price int64
	Image *string
}

// List returns the catalog in stored order.
// An unreadable catalog is logged and shown as empty.
func (s *ProductService) List(ctx context.Context) []entity.Product {
	products, err := s.productRepo.Load(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to load products")
		return []entity.Product{}
	}
	return products
}

// Add appends a product unless its normalized name is already taken
func (s *ProductService) Add(ctx context.Context, input ProductInput) (*entity.Product, error) {
	product, err := s.buildProduct(input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.productRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if entity.SameName(p.Name, product.Name) {
			return nil, apperror.ErrDuplicateName
		}
	}

	products = append(products, product)
	if err := s.productRepo.Save(ctx, products); err != nil {
		return nil, err
	}

	s.log.WithField("name", product.Name).Info("product added")
	return &product, nil
}

// Update replaces the product stored under oldName.
// Matching is by normalized name; renaming onto another product's name is a duplicate.
func (s *ProductService) Update(ctx context.Context, oldName string, input ProductInput) (*entity.Product, error) {
	product, err := s.buildProduct(input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.productRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	target := entity.NormalizeName(oldName)
	index := -1
	for i, p := range products {
		normalized := entity.NormalizeName(p.Name)
		if normalized == target {
			if index < 0 {
				index = i
			}
			continue
		}
		if normalized == entity.NormalizeName(product.Name) {
			return nil, apperror.ErrDuplicateName
		}
	}
	if index < 0 {
		return nil, apperror.NewNotFoundError("Product")
	}

	updated := make([]entity.Product, len(products))
	copy(updated, products)
	updated[index] = product

	if err := s.productRepo.Save(ctx, updated); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"old_name": oldName, "name": product.Name}).Info("product updated")
	return &product, nil
}

// Remove deletes every product whose normalized name matches name.
// Removing an absent name succeeds.
func (s *ProductService) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.productRepo.Load(ctx)
	if err != nil {
		return err
	}

	kept := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if !entity.SameName(p.Name, name) {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return nil
	}

	if err := s.productRepo.Save(ctx, kept); err != nil {
		return err
	}

	s.log.WithField("name", name).Info("product removed")
	return nil
}

// ExportXLSX renders the catalog as a single-sheet workbook
func (s *ProductService) ExportXLSX(ctx context.Context) ([]byte, error) {
	products, err := s.productRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Products"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}

	header := []interface{}{"Name", "Price (VND)", "Image"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}
	for i, p := range products {
		image := ""
		if p.Image != nil {
			image = *p.Image
		}
		row := []interface{}{p.Name, p.Price, image}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("export products: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("export products: %w", err)
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 30)
	_ = f.SetColWidth(sheet, "B", "B", 14)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ProductService) buildProduct(input ProductInput) (entity.Product, error) {
	name := strings.TrimSpace(input.Name)

	var fieldErrors []apperror.FieldError
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return entity.Product{}, apperror.NewValidationError(fieldErrors)
	}

	product := entity.Product{Name: name, Price: input.Price, Image: input.Image}
	if (product.Image == nil || *product.Image == "") && s.defaultImage != "" {
		image := s.defaultImage
		product.Image = &image
	}
	return product, nil
}
