// server/internal/models/common.go
package models

// PlantCategory decides which growth measurement schema applies to a species.
type PlantCategory string

const (
	CategoryForest PlantCategory = "forest"
	CategoryRubber PlantCategory = "rubber"
	CategoryBamboo PlantCategory = "bamboo"
	CategoryFruit  PlantCategory = "fruit"
	CategoryBanana PlantCategory = "banana"
)

// TreeStatus is the outcome of one survey observation.
type TreeStatus string

const (
	StatusAlive   TreeStatus = "alive"
	StatusDead    TreeStatus = "dead"
	StatusMissing TreeStatus = "missing"
)

// UserRole for profiles. New profiles start as "pending" until an admin
// approves them; the very first profile bootstraps as "admin".
type UserRole string

const (
	RolePending    UserRole = "pending"
	RoleStaff      UserRole = "staff"
	RoleResearcher UserRole = "researcher"
	RoleExecutive  UserRole = "executive"
	RoleExternal   UserRole = "external"
	RoleAdmin      UserRole = "admin"
)

// ImageType of a plot photograph or plan scan.
type ImageType string

const (
	ImagePlanPre1  ImageType = "plan_pre_1"
	ImagePlanPre2  ImageType = "plan_pre_2"
	ImagePlanPost1 ImageType = "plan_post_1"
	ImageGallery   ImageType = "gallery"
)

// GalleryCategory sub-classifies gallery images.
type GalleryCategory string

const (
	GalleryTree       GalleryCategory = "tree"
	GallerySoil       GalleryCategory = "soil"
	GalleryAtmosphere GalleryCategory = "atmosphere"
	GalleryOther      GalleryCategory = "other"
)
