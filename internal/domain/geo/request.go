package geo

import "time"

// StatusOpen is the status every new request starts in.
const StatusOpen = "open"

// Request is a geo-pinned photo request. PK: user_id, SK: request_id; a
// request_id GSI serves direct lookups.
type Request struct {
	RequestID   string    `json:"id" dynamodbav:"request_id"`
	UserID      string    `json:"user_id" dynamodbav:"user_id"`
	Lat         float64   `json:"lat" dynamodbav:"lat"`
	Lng         float64   `json:"lng" dynamodbav:"lng"`
	Status      string    `json:"status" dynamodbav:"status"`
	PlaceName   string    `json:"place_name" dynamodbav:"place_name"`
	Description string    `json:"description" dynamodbav:"description"`
	CreatedAt   time.Time `json:"created_at" dynamodbav:"created_at"`
}

// RequestWithDistance augments a request with the distance in meters from
// the caller's position. Distance is nil when no position was given.
type RequestWithDistance struct {
	Request
	Distance *float64 `json:"distance"`
}

type CreateRequestRequest struct {
	Lat         float64 `json:"lat" validate:"min=-90,max=90"`
	Lng         float64 `json:"lng" validate:"min=-180,max=180"`
	PlaceName   string  `json:"place_name" validate:"required,max=255"`
	Description string  `json:"description" validate:"required"`
}

type RequestsResponse struct {
	Requests []RequestWithDistance `json:"requests"`
}
