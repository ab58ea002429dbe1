package fields

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/sanbongvn/SBV-CatalogService/internal/infra/storage/catalog"
	"github.com/sanbongvn/SBV-CatalogService/internal/service/fields/models"
)

// Service сервис каталога полей: чтения и мутации поверх in-memory хранилища
type Service struct {
	catalog CatalogRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalog CatalogRepository, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// GetByID получает поле по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FieldResponse, error) {
	s.logger.Info("GetByID: fetching field id=%d", id)

	joined, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrFieldNotFound) {
			s.logger.Warn("GetByID: field id=%d not found", id)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetByID: repository error for field id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainJoinedField(joined), nil
}

// GetByShop получает все поля магазина
func (s *Service) GetByShop(ctx context.Context, shopID int64) (*models.FieldListResponse, error) {
	s.logger.Info("GetByShop: fetching fields for shop=%d", shopID)

	if shopID <= 0 {
		s.logger.Warn("GetByShop: invalid shop id=%d", shopID)
		return nil, fmt.Errorf("%w: shopID must be positive", ErrInvalidInput)
	}

	list, err := s.catalog.GetByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("GetByShop: repository error for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetByShop - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByShop: fetched %d fields for shop=%d", len(list), shopID)
	return models.FromDomainJoinedFieldList(list), nil
}

// Create создает новое поле в каталоге магазина.
// Вход толерантный: имя и адрес обрезаются, нечисловая цена уже приведена к
// нулю на границе (FlexNumber), пустой статус становится "available".
func (s *Service) Create(ctx context.Context, shopID int64, req *models.CreateFieldRequest) (*models.FieldResponse, error) {
	s.logger.Info("Create: creating field %q for shop=%d", req.Name, shopID)

	if shopID <= 0 {
		s.logger.Warn("Create: invalid shop id=%d", shopID)
		return nil, fmt.Errorf("%w: shopID must be positive", ErrInvalidInput)
	}

	joined, err := s.catalog.Create(ctx, shopID, req.ToDomainInput())
	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrShopNotFound):
			s.logger.Warn("Create: shop id=%d not found", shopID)
			return nil, ErrShopNotFound
		case errors.Is(err, catalogRepo.ErrInvalidStatus):
			s.logger.Warn("Create: invalid status for shop=%d: %v", shopID, err)
			return nil, ErrInvalidStatus
		default:
			s.logger.Error("Create: repository error for shop=%d: %v", shopID, err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Create: successfully created field id=%d for shop=%d", joined.ID, shopID)
	return models.FromDomainJoinedField(joined), nil
}

// Update применяет частичное обновление поля.
// Неизвестный идентификатор - штатный исход (ErrFieldNotFound), каталог
// остается без изменений.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateFieldRequest) (*models.FieldResponse, error) {
	s.logger.Info("Update: updating field id=%d", id)

	joined, err := s.catalog.Update(ctx, id, req.ToDomainInput())
	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrFieldNotFound):
			s.logger.Warn("Update: field id=%d not found", id)
			return nil, ErrFieldNotFound
		case errors.Is(err, catalogRepo.ErrInvalidStatus):
			s.logger.Warn("Update: invalid status for field id=%d: %v", id, err)
			return nil, ErrInvalidStatus
		default:
			s.logger.Error("Update: repository error for field id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated field id=%d", id)
	return models.FromDomainJoinedField(joined), nil
}

// SetStatus обновляет только статус поля (сахар над Update)
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*models.FieldResponse, error) {
	s.logger.Info("SetStatus: setting status=%s for field id=%d", status, id)
	return s.Update(ctx, id, &models.UpdateFieldRequest{Status: &status})
}
