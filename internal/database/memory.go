// server/internal/database/memory.go
package database

import (
	"context"
	"sort"
	"sync"

	"github.com/channieraven/maechaem-DB-v2.1.0/internal/models"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store used by tests. Same contract as the Mongo
// store, including the (nil, nil) not-found convention and the query
// orderings.
type MemStore struct {
	mu sync.RWMutex

	profiles map[string]models.Profile
	users    map[string]models.User
	plots    map[string]models.Plot
	trees    map[string]models.Tree
	logs     map[string]models.GrowthLog
	species  map[string]models.Species
	images   map[string]models.PlotImage
}

func NewMemStore() *MemStore {
	return &MemStore{
		profiles: make(map[string]models.Profile),
		users:    make(map[string]models.User),
		plots:    make(map[string]models.Plot),
		trees:    make(map[string]models.Tree),
		logs:     make(map[string]models.GrowthLog),
		species:  make(map[string]models.Species),
		images:   make(map[string]models.PlotImage),
	}
}

// ── Profiles ────────────────────────────────────────────────────────────────

func (s *MemStore) FetchProfile(ctx context.Context, userID string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *MemStore) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *MemStore) ProfilesEmpty(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles) == 0, nil
}

func (s *MemStore) CreateProfile(ctx context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = *profile
	return nil
}

func (s *MemStore) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil
	}
	if update.Fullname != nil {
		p.Fullname = *update.Fullname
	}
	if update.Position != nil {
		p.Position = update.Position
	}
	if update.Organization != nil {
		p.Organization = update.Organization
	}
	if update.Role != nil {
		p.Role = *update.Role
	}
	if update.Approved != nil {
		p.Approved = *update.Approved
	}
	s.profiles[userID] = p
	return nil
}

func (s *MemStore) DeleteProfile(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, userID)
	return nil
}

// ── Users ───────────────────────────────────────────────────────────────────

func (s *MemStore) FetchUser(ctx context.Context, userID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[userID]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *MemStore) FetchUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemStore) SetUserClaims(ctx context.Context, userID string, role models.UserRole, approved bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil
	}
	u.Role = role
	u.Approved = approved
	s.users[userID] = u
	return nil
}

// ── Plots ───────────────────────────────────────────────────────────────────

func (s *MemStore) FetchPlots(ctx context.Context) ([]models.Plot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Plot, 0, len(s.plots))
	for _, p := range s.plots {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlotCode < out[j].PlotCode })
	return out, nil
}

func (s *MemStore) FetchPlot(ctx context.Context, plotID string) (*models.Plot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.plots[plotID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *MemStore) CreatePlot(ctx context.Context, plot *models.Plot) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if plot.ID == "" {
		plot.ID = uuid.New().String()
	}
	s.plots[plot.ID] = *plot
	return plot.ID, nil
}

func (s *MemStore) UpdatePlot(ctx context.Context, plotID string, update PlotUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plots[plotID]
	if !ok {
		return nil
	}
	if update.PlotCode != nil {
		p.PlotCode = *update.PlotCode
	}
	if update.NameShort != nil {
		p.NameShort = *update.NameShort
	}
	if update.OwnerName != nil {
		p.OwnerName = *update.OwnerName
	}
	if update.GroupNumber != nil {
		p.GroupNumber = *update.GroupNumber
	}
	if update.AreaSqM != nil {
		p.AreaSqM = update.AreaSqM
	}
	if update.Tambon != nil {
		p.Tambon = update.Tambon
	}
	if update.ElevationM != nil {
		p.ElevationM = update.ElevationM
	}
	if update.BoundaryGeoJSON != nil {
		p.BoundaryGeoJSON = update.BoundaryGeoJSON
	}
	if update.Note != nil {
		p.Note = update.Note
	}
	if update.TreeCount != nil {
		p.TreeCount = *update.TreeCount
	}
	if update.AliveCount != nil {
		p.AliveCount = *update.AliveCount
	}
	s.plots[plotID] = p
	return nil
}

func (s *MemStore) DeletePlot(ctx context.Context, plotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.plots, plotID)
	return nil
}

// ── Trees ───────────────────────────────────────────────────────────────────

func (s *MemStore) FetchTreesByPlot(ctx context.Context, plotID string) ([]models.Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Tree
	for _, t := range s.trees {
		if t.PlotID == plotID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TreeNumber < out[j].TreeNumber })
	return out, nil
}

func (s *MemStore) FetchTreeByCode(ctx context.Context, treeCode string) (*models.Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trees {
		if t.TreeCode == treeCode {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateTree(ctx context.Context, tree *models.Tree) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tree.ID == "" {
		tree.ID = uuid.New().String()
	}
	s.trees[tree.ID] = *tree
	return tree.ID, nil
}

func (s *MemStore) UpdateTree(ctx context.Context, treeID string, update TreeUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trees[treeID]
	if !ok {
		return nil
	}
	if update.TagLabel != nil {
		t.TagLabel = update.TagLabel
	}
	if update.RowMain != nil {
		t.RowMain = update.RowMain
	}
	if update.RowSub != nil {
		t.RowSub = update.RowSub
	}
	if update.UtmX != nil {
		t.UtmX = update.UtmX
	}
	if update.UtmY != nil {
		t.UtmY = update.UtmY
	}
	if update.GridSpacing != nil {
		t.GridSpacing = update.GridSpacing
	}
	if update.Note != nil {
		t.Note = update.Note
	}
	s.trees[treeID] = t
	return nil
}

func (s *MemStore) DeleteTree(ctx context.Context, treeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.trees, treeID)
	return nil
}

// ── Growth logs ─────────────────────────────────────────────────────────────

func (s *MemStore) FetchGrowthLogsByPlot(ctx context.Context, plotID string) ([]models.GrowthLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.GrowthLog
	for _, l := range s.logs {
		if l.PlotID == plotID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SurveyDate > out[j].SurveyDate })
	return out, nil
}

func (s *MemStore) FetchGrowthLogsByTree(ctx context.Context, treeID string) ([]models.GrowthLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.GrowthLog
	for _, l := range s.logs {
		if l.TreeID == treeID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SurveyDate < out[j].SurveyDate })
	return out, nil
}

func (s *MemStore) FetchAllGrowthLogs(ctx context.Context) ([]models.GrowthLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GrowthLog, 0, len(s.logs))
	for _, l := range s.logs {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SurveyDate > out[j].SurveyDate })
	return out, nil
}

func (s *MemStore) CreateGrowthLog(ctx context.Context, log *models.GrowthLog) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	s.logs[log.ID] = *log
	return log.ID, nil
}

func (s *MemStore) DeleteGrowthLog(ctx context.Context, logID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.logs, logID)
	return nil
}

// ── Species ─────────────────────────────────────────────────────────────────

func (s *MemStore) FetchSpecies(ctx context.Context) ([]models.Species, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Species, 0, len(s.species))
	for _, sp := range s.species {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SpeciesCode < out[j].SpeciesCode })
	return out, nil
}

func (s *MemStore) FetchSpeciesByID(ctx context.Context, speciesID string) (*models.Species, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sp, ok := s.species[speciesID]; ok {
		return &sp, nil
	}
	return nil, nil
}

func (s *MemStore) CreateSpecies(ctx context.Context, species *models.Species) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if species.ID == "" {
		species.ID = uuid.New().String()
	}
	s.species[species.ID] = *species
	return species.ID, nil
}

// ── Plot images ─────────────────────────────────────────────────────────────

func (s *MemStore) FetchPlotImages(ctx context.Context, plotID string, imageType models.ImageType) ([]models.PlotImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.PlotImage
	for _, img := range s.images {
		if img.PlotID != plotID {
			continue
		}
		if imageType != "" && img.ImageType != imageType {
			continue
		}
		out = append(out, img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemStore) CreatePlotImage(ctx context.Context, image *models.PlotImage) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	s.images[image.ID] = *image
	return image.ID, nil
}

func (s *MemStore) DeletePlotImage(ctx context.Context, imageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.images, imageID)
	return nil
}
