package identity

import "time"

// Auth providers recorded on the user row.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User is keyed by email in DynamoDB so the registration put can enforce
// email uniqueness with a condition expression. UserID is exposed through a
// GSI for id lookups.
type User struct {
	UserID        string    `json:"id" dynamodbav:"user_id"`
	Email         string    `json:"email" dynamodbav:"email"`
	DisplayName   string    `json:"display_name" dynamodbav:"display_name"`
	PasswordHash  string    `json:"-" dynamodbav:"password_hash"`
	EmailVerified bool      `json:"email_verified" dynamodbav:"email_verified"`
	AuthProvider  string    `json:"auth_provider,omitempty" dynamodbav:"auth_provider"`
	GoogleSub     string    `json:"-" dynamodbav:"google_sub"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Password    string `json:"password" validate:"required,min=8,max=72,passwd"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type LoginResponse struct {
	Token       string `json:"token"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyEmailResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}
