package catalog

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	// Это штатный исход, а не нарушение целостности данных
	ErrFieldNotFound = errors.New("catalog.repository: field not found")

	// ErrShopNotFound возвращается при создании поля для несуществующего магазина
	ErrShopNotFound = errors.New("catalog.repository: shop not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("catalog.repository: invalid field status")

	// ErrShopReferenceBroken возвращается, когда поле ссылается на
	// несуществующий магазин. Это фатальное нарушение контракта внешнего
	// источника данных, безопасного продолжения нет
	ErrShopReferenceBroken = errors.New("catalog.repository: field references missing shop")
)
