package appcontext

import (
	"github.com/LeakhenaSok/StudioFlow/internal/auth"
	"github.com/LeakhenaSok/StudioFlow/internal/authz"
	"github.com/LeakhenaSok/StudioFlow/internal/config"
	"github.com/LeakhenaSok/StudioFlow/internal/mailer"
	"github.com/LeakhenaSok/StudioFlow/internal/repository"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Policy decides allow/deny for every table/operation/caller triple.
	Policy *authz.Evaluator

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages JWT operations for authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface

	S3 *minio.Client
}
