package dto

import (
	"github.com/shopspring/decimal"
)

// Response statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every JSON endpoint replies with.
type Response struct {
	Status        string `json:"status"`
	Data          any    `json:"data"`
	Count         *int   `json:"count,omitempty"`
	NextPageToken string `json:"next_page_token,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Success wraps a single object.
func Success(data any) Response {
	return Response{Status: StatusSuccess, Data: data}
}

// SuccessList wraps a list and reports its length.
func SuccessList(data any, count int) Response {
	return Response{Status: StatusSuccess, Data: data, Count: &count}
}

// Failure reports an error with no data.
func Failure(message string) Response {
	return Response{Status: StatusError, Error: message}
}

// EmptyFailure reports an error on a list endpoint. Data is an empty list so clients
// iterating over it keep working, while Status tells the failure apart from a real
// empty result.
func EmptyFailure(message string) Response {
	zero := 0
	return Response{Status: StatusError, Data: []any{}, Count: &zero, Error: message}
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func toFloatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
