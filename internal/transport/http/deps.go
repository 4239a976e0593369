package http

import (
	"github.com/snapspot-api/internal/infrastructure/dynamo"
	googleinfra "github.com/snapspot-api/internal/infrastructure/google"
	jwtinfra "github.com/snapspot-api/internal/infrastructure/jwt"
	s3infra "github.com/snapspot-api/internal/infrastructure/s3"
	"github.com/snapspot-api/internal/infrastructure/smtp"
	"github.com/snapspot-api/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router. GoogleVerifier
// and Publisher are optional; leaving them nil disables Google sign-in and
// request-created events respectively.
type Deps struct {
	UserRepo         *dynamo.UserRepo
	VerificationRepo *dynamo.VerificationRepo
	RequestRepo      *dynamo.RequestRepo
	PictureRepo      *dynamo.PictureRepo
	S3Store          *s3infra.Store
	Mailer           smtp.Mailer
	Publisher        sns.Publisher
	JWTProvider      *jwtinfra.Provider
	GoogleVerifier   *googleinfra.Verifier
}
