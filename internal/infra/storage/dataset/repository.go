package dataset

import (
	"context"
	"fmt"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	"github.com/sanbongvn/SBV-CatalogService/pkg/psqlbuilder"
)

// Repository читает полный набор исходных записей из внешнего источника
// данных. Источник append-mostly и принадлежит другой системе: сервис
// загружает его один раз при старте и дальше работает только с памятью.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория источника данных
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Load reads shops, fields, images, reviews and the booking ledger in bulk.
// Row order follows the source's insertion order (ORDER BY id), which the
// in-memory stores rely on for deterministic listings.
func (r *Repository) Load(ctx context.Context) (*domain.Dataset, error) {
	ds := &domain.Dataset{}

	var err error
	if ds.Shops, err = r.loadShops(ctx); err != nil {
		return nil, err
	}
	if ds.Fields, err = r.loadFields(ctx); err != nil {
		return nil, err
	}
	if ds.Images, err = r.loadImages(ctx); err != nil {
		return nil, err
	}
	if ds.Reviews, err = r.loadReviews(ctx); err != nil {
		return nil, err
	}
	if ds.Bookings, err = r.loadBookings(ctx); err != nil {
		return nil, err
	}

	return ds, nil
}

func (r *Repository) loadShops(ctx context.Context) ([]domain.Shop, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"address",
		"bank_name",
		"bank_account",
	).
		From("shops").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadShops - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadShops - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var shops []domain.Shop
	for rows.Next() {
		var s domain.Shop
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.BankName, &s.BankAccount); err != nil {
			return nil, fmt.Errorf("%w: loadShops - scan shop: %v", ErrScanRow, err)
		}
		shops = append(shops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadShops - iterate rows: %v", ErrExecQuery, err)
	}

	return shops, nil
}

func (r *Repository) loadFields(ctx context.Context) ([]domain.Field, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"shop_id",
		"name",
		"sport_type",
		"price_per_hour",
		"address",
		"status",
		"created_at",
		"updated_at",
	).
		From("fields").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadFields - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadFields - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var fields []domain.Field
	for rows.Next() {
		var f domain.Field
		if err := rows.Scan(
			&f.ID,
			&f.ShopID,
			&f.Name,
			&f.SportType,
			&f.PricePerHour,
			&f.Address,
			&f.Status,
			&f.CreatedAt,
			&f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: loadFields - scan field: %v", ErrScanRow, err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadFields - iterate rows: %v", ErrExecQuery, err)
	}

	return fields, nil
}

func (r *Repository) loadImages(ctx context.Context) ([]domain.FieldImage, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"field_id",
		"url",
	).
		From("field_images").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadImages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadImages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var images []domain.FieldImage
	for rows.Next() {
		var img domain.FieldImage
		if err := rows.Scan(&img.ID, &img.FieldID, &img.URL); err != nil {
			return nil, fmt.Errorf("%w: loadImages - scan image: %v", ErrScanRow, err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadImages - iterate rows: %v", ErrExecQuery, err)
	}

	return images, nil
}

func (r *Repository) loadReviews(ctx context.Context) ([]domain.Review, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"field_id",
		"customer_id",
		"rating",
		"comment",
	).
		From("reviews").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadReviews - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadReviews - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.FieldID, &rv.CustomerID, &rv.Rating, &rv.Comment); err != nil {
			return nil, fmt.Errorf("%w: loadReviews - scan review: %v", ErrScanRow, err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadReviews - iterate rows: %v", ErrExecQuery, err)
	}

	return reviews, nil
}

func (r *Repository) loadBookings(ctx context.Context) ([]domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"field_id",
		"customer_id",
		"booking_date",
		"start_time",
		"duration_hours",
		"price",
		"payment_status",
	).
		From("bookings").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID,
			&b.FieldID,
			&b.CustomerID,
			&b.Date,
			&b.StartTime,
			&b.DurationHours,
			&b.Price,
			&b.PaymentStatus,
		); err != nil {
			return nil, fmt.Errorf("%w: loadBookings - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadBookings - iterate rows: %v", ErrExecQuery, err)
	}

	return bookings, nil
}
