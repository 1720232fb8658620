package usecase

import (
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Acciones masivas reconocidas.
const (
	BulkActivate   = "activate"
	BulkDeactivate = "deactivate"
	BulkDelete     = "delete"
)

// ProductUseCase casos de uso CRUD y acciones masivas para productos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	images       ImageStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, images ImageStore) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, images: images}
}

// Create crea un producto; la categoría debe existir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Brand:          in.Brand,
		Description:    in.Description,
		Price:          in.Price,
		StockQuantity:  in.StockQuantity,
		CategoryID:     in.CategoryID,
		IsAvailable:    in.IsAvailable,
		Specifications: in.Specifications,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda por nombre/marca y filtro por categoría.
func (uc *ProductUseCase) List(in dto.ProductListRequest, onlyAvailable bool) (*dto.ProductListResponse, error) {
	filter := repository.ProductFilter{
		Search:        in.Search,
		CategoryID:    in.CategoryID,
		OnlyAvailable: onlyAvailable,
	}
	offset := in.Offset()
	list, total, err := uc.repo.List(filter, dto.DefaultPageSize, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.NewPageResponse(in.Page, total),
	}, nil
}

// Update actualiza un producto existente.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.StockQuantity = *in.StockQuantity
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.IsAvailable != nil {
		product.IsAvailable = *in.IsAvailable
	}
	if in.Specifications != nil {
		product.Specifications = *in.Specifications
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// SetImage guarda la imagen subida bajo un nombre generado, borra la anterior
// si la había y actualiza la ruta del producto.
func (uc *ProductUseCase) SetImage(id, originalName string, content io.Reader) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	fileName := uuid.New().String() + filepath.Ext(originalName)
	path, err := uc.images.Save(fileName, content)
	if err != nil {
		return nil, err
	}
	if product.ImageURL != "" {
		_ = uc.images.Delete(product.ImageURL)
	}
	product.ImageURL = path
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto y su imagen. Las instantáneas en order_items
// no se tocan: el histórico de pedidos sobrevive al borrado.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.ImageURL != "" {
		_ = uc.images.Delete(product.ImageURL)
	}
	return uc.repo.Delete(id)
}

// BulkAction aplica una acción masiva sobre un conjunto de ids.
// Conjunto vacío → ErrNoSelection sin tocar el almacén; acción desconocida →
// ErrUnknownAction. Los ids inexistentes se ignoran en silencio.
func (uc *ProductUseCase) BulkAction(in dto.BulkActionRequest) error {
	if len(in.IDs) == 0 {
		return domain.ErrNoSelection
	}
	switch in.Action {
	case BulkActivate:
		_, err := uc.repo.SetAvailability(in.IDs, true)
		return err
	case BulkDeactivate:
		_, err := uc.repo.SetAvailability(in.IDs, false)
		return err
	case BulkDelete:
		_, err := uc.repo.DeleteByIDs(in.IDs)
		return err
	default:
		return domain.ErrUnknownAction
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Brand:          p.Brand,
		Description:    p.Description,
		Price:          p.Price,
		StockQuantity:  p.StockQuantity,
		CategoryID:     p.CategoryID,
		IsAvailable:    p.IsAvailable,
		ImageURL:       p.ImageURL,
		Specifications: p.Specifications,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
