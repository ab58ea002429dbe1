package check_availability

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/sanbongvn/SBV-CatalogService/internal/domain"
	"github.com/sanbongvn/SBV-CatalogService/pkg/types"
)

var (
	errMissingParams = errors.New("check_availability: date, startTime and endTime are required")
)

// CheckRequest параметры запроса проверки доступности
type CheckRequest struct {
	FieldID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// AvailabilityResponse ответ проверки доступности
type AvailabilityResponse struct {
	FieldID   int64  `json:"fieldId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// ParseCheckRequest разбирает path-параметр и query-параметры запроса
func ParseCheckRequest(fieldIDRaw string, query url.Values) (*CheckRequest, error) {
	fieldID, err := strconv.ParseInt(fieldIDRaw, 10, 64)
	if err != nil {
		return nil, err
	}

	dateRaw := query.Get("date")
	startRaw := query.Get("startTime")
	endRaw := query.Get("endTime")
	if dateRaw == "" || startRaw == "" || endRaw == "" {
		return nil, errMissingParams
	}

	date, err := time.Parse(domain.DateFormat, dateRaw)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(startRaw)
	if err != nil {
		return nil, err
	}

	end, err := types.NewTimeStringFromString(endRaw)
	if err != nil {
		return nil, err
	}

	return &CheckRequest{
		FieldID:   fieldID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}, nil
}
