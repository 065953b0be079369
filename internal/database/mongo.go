// server/internal/database/mongo.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect dials MongoDB and pings it before returning the database handle.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client.Database(dbName), nil
}

// MongoStore implements Store on top of a Mongo database. Collection names
// match the Firestore-era client, so exported data stays comparable.
type MongoStore struct {
	DB *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{DB: db}
}

const (
	colProfiles   = "profiles"
	colUsers      = "users"
	colPlots      = "plots"
	colTrees      = "trees"
	colGrowthLogs = "growth_logs"
	colSpecies    = "species"
	colPlotImages = "plot_images"
)

// ── Profiles ────────────────────────────────────────────────────────────────

func (s *MongoStore) FetchProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.DB.Collection(colProfiles).FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &profile, nil
}

func (s *MongoStore) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.DB.Collection(colProfiles).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}

// ProfilesEmpty is the limit(1) emptiness probe used by the first-admin
// bootstrap. Deliberately not transactional with the subsequent insert.
func (s *MongoStore) ProfilesEmpty(ctx context.Context) (bool, error) {
	opts := options.Count().SetLimit(1)
	count, err := s.DB.Collection(colProfiles).CountDocuments(ctx, bson.M{}, opts)
	if err != nil {
		return false, fmt.Errorf("failed to probe profiles: %w", err)
	}
	return count == 0, nil
}

func (s *MongoStore) CreateProfile(ctx context.Context, profile *models.Profile) error {
	if _, err := s.DB.Collection(colProfiles).InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (s *MongoStore) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) error {
	set := bson.M{}
	if update.Fullname != nil {
		set["fullname"] = *update.Fullname
	}
	if update.Position != nil {
		set["position"] = *update.Position
	}
	if update.Organization != nil {
		set["organization"] = *update.Organization
	}
	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Approved != nil {
		set["approved"] = *update.Approved
	}
	if len(set) == 0 {
		return nil
	}
	_, err := s.DB.Collection(colProfiles).UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (s *MongoStore) DeleteProfile(ctx context.Context, userID string) error {
	if _, err := s.DB.Collection(colProfiles).DeleteOne(ctx, bson.M{"_id": userID}); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// ── Users ───────────────────────────────────────────────────────────────────

func (s *MongoStore) FetchUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.DB.Collection(colUsers).FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (s *MongoStore) FetchUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.Collection(colUsers).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	return &user, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if _, err := s.DB.Collection(colUsers).InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// SetUserClaims overwrites the custom claims on the auth record. Idempotent.
func (s *MongoStore) SetUserClaims(ctx context.Context, userID string, role models.UserRole, approved bool) error {
	_, err := s.DB.Collection(colUsers).UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$set": bson.M{"role": role, "approved": approved}})
	if err != nil {
		return fmt.Errorf("failed to set user claims: %w", err)
	}
	return nil
}

// ── Plots ───────────────────────────────────────────────────────────────────

func (s *MongoStore) FetchPlots(ctx context.Context) ([]models.Plot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "plot_code", Value: 1}})
	cursor, err := s.DB.Collection(colPlots).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query plots: %w", err)
	}
	defer cursor.Close(ctx)

	var plots []models.Plot
	if err := cursor.All(ctx, &plots); err != nil {
		return nil, fmt.Errorf("failed to decode plots: %w", err)
	}
	return plots, nil
}

func (s *MongoStore) FetchPlot(ctx context.Context, plotID string) (*models.Plot, error) {
	var plot models.Plot
	err := s.DB.Collection(colPlots).FindOne(ctx, bson.M{"_id": plotID}).Decode(&plot)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plot: %w", err)
	}
	return &plot, nil
}

func (s *MongoStore) CreatePlot(ctx context.Context, plot *models.Plot) (string, error) {
	if plot.ID == "" {
		plot.ID = uuid.New().String()
	}
	if _, err := s.DB.Collection(colPlots).InsertOne(ctx, plot); err != nil {
		return "", fmt.Errorf("failed to create plot: %w", err)
	}
	return plot.ID, nil
}

func (s *MongoStore) UpdatePlot(ctx context.Context, plotID string, update PlotUpdate) error {
	set := bson.M{}
	if update.PlotCode != nil {
		set["plot_code"] = *update.PlotCode
	}
	if update.NameShort != nil {
		set["name_short"] = *update.NameShort
	}
	if update.OwnerName != nil {
		set["owner_name"] = *update.OwnerName
	}
	if update.GroupNumber != nil {
		set["group_number"] = *update.GroupNumber
	}
	if update.AreaSqM != nil {
		set["area_sq_m"] = *update.AreaSqM
	}
	if update.Tambon != nil {
		set["tambon"] = *update.Tambon
	}
	if update.ElevationM != nil {
		set["elevation_m"] = *update.ElevationM
	}
	if update.BoundaryGeoJSON != nil {
		set["boundary_geojson"] = *update.BoundaryGeoJSON
	}
	if update.Note != nil {
		set["note"] = *update.Note
	}
	if update.TreeCount != nil {
		set["tree_count"] = *update.TreeCount
	}
	if update.AliveCount != nil {
		set["alive_count"] = *update.AliveCount
	}
	if len(set) == 0 {
		return nil
	}
	_, err := s.DB.Collection(colPlots).UpdateOne(ctx, bson.M{"_id": plotID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update plot: %w", err)
	}
	return nil
}

func (s *MongoStore) DeletePlot(ctx context.Context, plotID string) error {
	if _, err := s.DB.Collection(colPlots).DeleteOne(ctx, bson.M{"_id": plotID}); err != nil {
		return fmt.Errorf("failed to delete plot: %w", err)
	}
	return nil
}

// ── Trees ───────────────────────────────────────────────────────────────────

func (s *MongoStore) FetchTreesByPlot(ctx context.Context, plotID string) ([]models.Tree, error) {
	opts := options.Find().SetSort(bson.D{{Key: "tree_number", Value: 1}})
	cursor, err := s.DB.Collection(colTrees).Find(ctx, bson.M{"plot_id": plotID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query trees: %w", err)
	}
	defer cursor.Close(ctx)

	var trees []models.Tree
	if err := cursor.All(ctx, &trees); err != nil {
		return nil, fmt.Errorf("failed to decode trees: %w", err)
	}
	return trees, nil
}

func (s *MongoStore) FetchTreeByCode(ctx context.Context, treeCode string) (*models.Tree, error) {
	var tree models.Tree
	err := s.DB.Collection(colTrees).FindOne(ctx, bson.M{"tree_code": treeCode}).Decode(&tree)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tree: %w", err)
	}
	return &tree, nil
}

func (s *MongoStore) CreateTree(ctx context.Context, tree *models.Tree) (string, error) {
	if tree.ID == "" {
		tree.ID = uuid.New().String()
	}
	if _, err := s.DB.Collection(colTrees).InsertOne(ctx, tree); err != nil {
		return "", fmt.Errorf("failed to create tree: %w", err)
	}
	return tree.ID, nil
}

func (s *MongoStore) UpdateTree(ctx context.Context, treeID string, update TreeUpdate) error {
	set := bson.M{}
	if update.TagLabel != nil {
		set["tag_label"] = *update.TagLabel
	}
	if update.RowMain != nil {
		set["row_main"] = *update.RowMain
	}
	if update.RowSub != nil {
		set["row_sub"] = *update.RowSub
	}
	if update.UtmX != nil {
		set["utm_x"] = *update.UtmX
	}
	if update.UtmY != nil {
		set["utm_y"] = *update.UtmY
	}
	if update.GridSpacing != nil {
		set["grid_spacing"] = *update.GridSpacing
	}
	if update.Note != nil {
		set["note"] = *update.Note
	}
	if len(set) == 0 {
		return nil
	}
	_, err := s.DB.Collection(colTrees).UpdateOne(ctx, bson.M{"_id": treeID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update tree: %w", err)
	}
	return nil
}

func (s *MongoStore) DeleteTree(ctx context.Context, treeID string) error {
	if _, err := s.DB.Collection(colTrees).DeleteOne(ctx, bson.M{"_id": treeID}); err != nil {
		return fmt.Errorf("failed to delete tree: %w", err)
	}
	return nil
}

// ── Growth logs ─────────────────────────────────────────────────────────────

func (s *MongoStore) FetchGrowthLogsByPlot(ctx context.Context, plotID string) ([]models.GrowthLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "survey_date", Value: -1}})
	return s.fetchGrowthLogs(ctx, bson.M{"plot_id": plotID}, opts)
}

func (s *MongoStore) FetchGrowthLogsByTree(ctx context.Context, treeID string) ([]models.GrowthLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "survey_date", Value: 1}})
	return s.fetchGrowthLogs(ctx, bson.M{"tree_id": treeID}, opts)
}

func (s *MongoStore) FetchAllGrowthLogs(ctx context.Context) ([]models.GrowthLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "survey_date", Value: -1}})
	return s.fetchGrowthLogs(ctx, bson.M{}, opts)
}

func (s *MongoStore) fetchGrowthLogs(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.GrowthLog, error) {
	cursor, err := s.DB.Collection(colGrowthLogs).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query growth logs: %w", err)
	}
	defer cursor.Close(ctx)

	var logs []models.GrowthLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode growth logs: %w", err)
	}
	return logs, nil
}

func (s *MongoStore) CreateGrowthLog(ctx context.Context, log *models.GrowthLog) (string, error) {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if _, err := s.DB.Collection(colGrowthLogs).InsertOne(ctx, log); err != nil {
		return "", fmt.Errorf("failed to create growth log: %w", err)
	}
	return log.ID, nil
}

func (s *MongoStore) DeleteGrowthLog(ctx context.Context, logID string) error {
	if _, err := s.DB.Collection(colGrowthLogs).DeleteOne(ctx, bson.M{"_id": logID}); err != nil {
		return fmt.Errorf("failed to delete growth log: %w", err)
	}
	return nil
}

// ── Species ─────────────────────────────────────────────────────────────────

func (s *MongoStore) FetchSpecies(ctx context.Context) ([]models.Species, error) {
	opts := options.Find().SetSort(bson.D{{Key: "species_code", Value: 1}})
	cursor, err := s.DB.Collection(colSpecies).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query species: %w", err)
	}
	defer cursor.Close(ctx)

	var species []models.Species
	if err := cursor.All(ctx, &species); err != nil {
		return nil, fmt.Errorf("failed to decode species: %w", err)
	}
	return species, nil
}

func (s *MongoStore) FetchSpeciesByID(ctx context.Context, speciesID string) (*models.Species, error) {
	var sp models.Species
	err := s.DB.Collection(colSpecies).FindOne(ctx, bson.M{"_id": speciesID}).Decode(&sp)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch species: %w", err)
	}
	return &sp, nil
}

func (s *MongoStore) CreateSpecies(ctx context.Context, species *models.Species) (string, error) {
	if species.ID == "" {
		species.ID = uuid.New().String()
	}
	if _, err := s.DB.Collection(colSpecies).InsertOne(ctx, species); err != nil {
		return "", fmt.Errorf("failed to create species: %w", err)
	}
	return species.ID, nil
}

// ── Plot images ─────────────────────────────────────────────────────────────

func (s *MongoStore) FetchPlotImages(ctx context.Context, plotID string, imageType models.ImageType) ([]models.PlotImage, error) {
	filter := bson.M{"plot_id": plotID}
	if imageType != "" {
		filter["image_type"] = imageType
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.DB.Collection(colPlotImages).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query plot images: %w", err)
	}
	defer cursor.Close(ctx)

	var images []models.PlotImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("failed to decode plot images: %w", err)
	}
	return images, nil
}

func (s *MongoStore) CreatePlotImage(ctx context.Context, image *models.PlotImage) (string, error) {
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	if _, err := s.DB.Collection(colPlotImages).InsertOne(ctx, image); err != nil {
		return "", fmt.Errorf("failed to create plot image: %w", err)
	}
	return image.ID, nil
}

func (s *MongoStore) DeletePlotImage(ctx context.Context, imageID string) error {
	if _, err := s.DB.Collection(colPlotImages).DeleteOne(ctx, bson.M{"_id": imageID}); err != nil {
		return fmt.Errorf("failed to delete plot image: %w", err)
	}
	return nil
}
