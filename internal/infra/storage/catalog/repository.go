package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
)

// Repository in-memory хранилище каталога полей.
//
// Держит исходные записи и денормализованные JoinedField представления под
// одним RWMutex: чтения идут параллельно, мутации эксклюзивны, поэтому
// читатель никогда не видит наполовину обновлённое представление (например,
// новую цену при несинхронизированном рейтинге).
type Repository struct {
	mu sync.RWMutex

	shops   map[int64]domain.Shop
	fields  map[int64]*domain.Field
	images  map[int64][]domain.FieldImage
	reviews map[int64][]domain.Review

	joined map[int64]*domain.JoinedField

	// order хранит идентификаторы в порядке появления записей,
	// чтобы выдача без сортировки была детерминированной
	order []int64

	// lastID последний назначенный идентификатор; идентификаторы строго
	// возрастают и никогда не переиспользуются
	lastID int64
}

// NewRepository строит каталог из исходного набора записей: для каждого поля
// подбираются картинки, магазин-владелец и отзывы, считается средний рейтинг.
// Поле без существующего магазина - фатальное повреждение данных
// (ErrShopReferenceBroken), а не штатный "not found".
func NewRepository(ds *domain.Dataset) (*Repository, error) {
	r := &Repository{
		shops:   make(map[int64]domain.Shop, len(ds.Shops)),
		fields:  make(map[int64]*domain.Field, len(ds.Fields)),
		images:  make(map[int64][]domain.FieldImage),
		reviews: make(map[int64][]domain.Review),
		joined:  make(map[int64]*domain.JoinedField, len(ds.Fields)),
	}

	for _, s := range ds.Shops {
		r.shops[s.ID] = s
	}
	for _, img := range ds.Images {
		r.images[img.FieldID] = append(r.images[img.FieldID], img)
	}
	for _, rv := range ds.Reviews {
		r.reviews[rv.FieldID] = append(r.reviews[rv.FieldID], rv)
	}

	for _, f := range ds.Fields {
		field := f
		r.fields[field.ID] = &field
		r.order = append(r.order, field.ID)
		if field.ID > r.lastID {
			r.lastID = field.ID
		}

		if err := r.rebuildJoinedLocked(field.ID); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Count returns the number of fields in the catalog.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// GetAll возвращает все JoinedField в порядке появления записей.
// Результат - глубокая копия, вызывающая сторона может его менять.
func (r *Repository) GetAll(_ context.Context) ([]domain.JoinedField, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.JoinedField, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, copyJoined(r.joined[id]))
	}
	return result, nil
}

// GetByID возвращает JoinedField по идентификатору
func (r *Repository) GetByID(_ context.Context, id int64) (*domain.JoinedField, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.joined[id]
	if !ok {
		return nil, ErrFieldNotFound
	}
	cp := copyJoined(j)
	return &cp, nil
}

// GetByShop возвращает все поля магазина в порядке появления записей
func (r *Repository) GetByShop(_ context.Context, shopID int64) ([]domain.JoinedField, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.JoinedField
	for _, id := range r.order {
		if r.joined[id].ShopID == shopID {
			result = append(result, copyJoined(r.joined[id]))
		}
	}
	return result, nil
}

// Create создает новое поле и его денормализованное представление.
// Идентификатор назначается хранилищем (max + 1, монотонно). Имя и адрес
// обрезаются, пустой статус заменяется на StatusAvailable, отрицательная
// цена приводится к нулю. Картинки и отзывы нового поля пусты, рейтинг 0.
func (r *Repository) Create(_ context.Context, shopID int64, input domain.CreateFieldInput) (*domain.JoinedField, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shops[shopID]; !ok {
		return nil, fmt.Errorf("%w: shop id=%d", ErrShopNotFound, shopID)
	}

	status := input.Status
	if status == "" {
		status = domain.StatusAvailable
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	price := input.PricePerHour
	if price < 0 {
		price = 0
	}

	r.lastID++
	now := time.Now()
	field := &domain.Field{
		ID:           r.lastID,
		ShopID:       shopID,
		Name:         strings.TrimSpace(input.Name),
		SportType:    input.SportType,
		PricePerHour: price,
		Address:      strings.TrimSpace(input.Address),
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.fields[field.ID] = field
	r.order = append(r.order, field.ID)

	if err := r.rebuildJoinedLocked(field.ID); err != nil {
		// Магазин проверен выше, сюда попасть нельзя
		return nil, err
	}

	cp := copyJoined(r.joined[field.ID])
	return &cp, nil
}

// Update применяет частичное обновление поля: nil-поля не трогаются.
// Затем синхронизирует изменяемые поля JoinedField на месте - рейтинг,
// картинки, отзывы и магазин этим вызовом не затрагиваются.
// Неизвестный идентификатор - штатный исход (ErrFieldNotFound), каталог
// при этом не меняется.
func (r *Repository) Update(_ context.Context, id int64, patch domain.UpdateFieldInput) (*domain.JoinedField, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	field, ok := r.fields[id]
	if !ok {
		return nil, ErrFieldNotFound
	}

	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *patch.Status)
	}

	if patch.Name != nil {
		field.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.SportType != nil {
		field.SportType = *patch.SportType
	}
	if patch.PricePerHour != nil {
		price := *patch.PricePerHour
		if price < 0 {
			price = 0
		}
		field.PricePerHour = price
	}
	if patch.Address != nil {
		field.Address = strings.TrimSpace(*patch.Address)
	}
	if patch.Status != nil {
		field.Status = *patch.Status
	}
	field.UpdatedAt = time.Now()

	// Переносим только изменяемую часть, join-данные остаются как были
	r.joined[id].Field = *field

	cp := copyJoined(r.joined[id])
	return &cp, nil
}

// SetStatus обновляет только статус поля
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.FieldStatus) (*domain.JoinedField, error) {
	return r.Update(ctx, id, domain.UpdateFieldInput{Status: &status})
}

// rebuildJoinedLocked пересобирает JoinedField для одного поля.
// Вызывается под эксклюзивной блокировкой.
func (r *Repository) rebuildJoinedLocked(id int64) error {
	field := r.fields[id]

	shop, ok := r.shops[field.ShopID]
	if !ok {
		return fmt.Errorf("%w: field id=%d, shop id=%d", ErrShopReferenceBroken, field.ID, field.ShopID)
	}

	reviews := r.reviews[id]
	r.joined[id] = &domain.JoinedField{
		Field:         *field,
		Shop:          shop,
		Images:        r.images[id],
		Reviews:       reviews,
		AverageRating: domain.AverageRating(reviews),
	}
	return nil
}

// copyJoined возвращает копию представления с собственными слайсами
func copyJoined(j *domain.JoinedField) domain.JoinedField {
	cp := *j
	cp.Images = append([]domain.FieldImage(nil), j.Images...)
	cp.Reviews = append([]domain.Review(nil), j.Reviews...)
	return cp
}
