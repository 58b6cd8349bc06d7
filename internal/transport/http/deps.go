package http

import (
	"net/http"

	"github.com/institute-cms/internal/application/asset"
	"github.com/institute-cms/internal/domain"
	"github.com/institute-cms/internal/infrastructure/dynamo"
	jwtinfra "github.com/institute-cms/internal/infrastructure/jwt"
	"github.com/institute-cms/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo        *dynamo.UserRepo
	OTPRepo         *dynamo.OTPRepo
	CourseRepo      *dynamo.ItemRepo[domain.Course]
	CertificateRepo *dynamo.ItemRepo[domain.Certificate]
	PlacementRepo   *dynamo.ItemRepo[domain.Placement]
	BannerRepo      *dynamo.ItemRepo[domain.Banner]
	ReviewRepo      *dynamo.ItemRepo[domain.Review]
	Assets          *asset.Manager
	Mailer          smtp.Mailer
	JWTProvider     *jwtinfra.Provider

	// StaticFS serves stored assets back to clients. It is set only for the
	// local storage backend; S3 assets are served by their public URL.
	StaticFS http.FileSystem
}
