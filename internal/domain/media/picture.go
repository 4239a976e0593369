package media

import "time"

// Picture is an uploaded photo. PK: picture_id. ObjectKey is the S3 key the
// image lives under; ImageURL is the public URL composed at upload time.
type Picture struct {
	PictureID string    `json:"id" dynamodbav:"picture_id"`
	UserID    string    `json:"user_id" dynamodbav:"user_id"`
	ImageURL  string    `json:"image_url" dynamodbav:"image_url"`
	ObjectKey string    `json:"-" dynamodbav:"object_key"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

type PicturesResponse struct {
	Pictures []Picture `json:"pictures"`
}
