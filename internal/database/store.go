// server/internal/database/store.go
package database

import (
	"context"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"
)

// Store is the capability interface over the document collections. Lookups
// that find nothing return (nil, nil); errors are reserved for the store
// being unreachable or misbehaving.
//
// Implemented by the Mongo store and by an in-memory fake for tests.
type Store interface {
	// Profiles
	FetchProfile(ctx context.Context, userID string) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	ProfilesEmpty(ctx context.Context) (bool, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) error
	DeleteProfile(ctx context.Context, userID string) error

	// Auth users (credential store carrying the custom claims)
	FetchUser(ctx context.Context, userID string) (*models.User, error)
	FetchUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	SetUserClaims(ctx context.Context, userID string, role models.UserRole, approved bool) error

	// Plots
	FetchPlots(ctx context.Context) ([]models.Plot, error)
	FetchPlot(ctx context.Context, plotID string) (*models.Plot, error)
	CreatePlot(ctx context.Context, plot *models.Plot) (string, error)
	UpdatePlot(ctx context.Context, plotID string, update PlotUpdate) error
	DeletePlot(ctx context.Context, plotID string) error

	// Trees
	FetchTreesByPlot(ctx context.Context, plotID string) ([]models.Tree, error)
	FetchTreeByCode(ctx context.Context, treeCode string) (*models.Tree, error)
	CreateTree(ctx context.Context, tree *models.Tree) (string, error)
	UpdateTree(ctx context.Context, treeID string, update TreeUpdate) error
	DeleteTree(ctx context.Context, treeID string) error

	// Growth logs (append-only: create and delete, no update)
	FetchGrowthLogsByPlot(ctx context.Context, plotID string) ([]models.GrowthLog, error)
	FetchGrowthLogsByTree(ctx context.Context, treeID string) ([]models.GrowthLog, error)
	FetchAllGrowthLogs(ctx context.Context) ([]models.GrowthLog, error)
	CreateGrowthLog(ctx context.Context, log *models.GrowthLog) (string, error)
	DeleteGrowthLog(ctx context.Context, logID string) error

	// Species
	FetchSpecies(ctx context.Context) ([]models.Species, error)
	FetchSpeciesByID(ctx context.Context, speciesID string) (*models.Species, error)
	CreateSpecies(ctx context.Context, species *models.Species) (string, error)

	// Plot images
	FetchPlotImages(ctx context.Context, plotID string, imageType models.ImageType) ([]models.PlotImage, error)
	CreatePlotImage(ctx context.Context, image *models.PlotImage) (string, error)
	DeletePlotImage(ctx context.Context, imageID string) error
}

// ProfileUpdate mutates display fields (user) and role/approval (admin).
// Nil pointers leave the stored value untouched.
type ProfileUpdate struct {
	Fullname     *string
	Position     *string
	Organization *string
	Role         *models.UserRole
	Approved     *bool
}

type PlotUpdate struct {
	PlotCode        *string
	NameShort       *string
	OwnerName       *string
	GroupNumber     *int
	AreaSqM         *float64
	Tambon          *string
	ElevationM      *float64
	BoundaryGeoJSON *string
	Note            *string
	TreeCount       *int
	AliveCount      *int
}

type TreeUpdate struct {
	TagLabel    *string
	RowMain     *string
	RowSub      *string
	UtmX        *float64
	UtmY        *float64
	GridSpacing *float64
	Note        *string
}
