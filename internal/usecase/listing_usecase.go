package usecase

import (
	"context"
	"strings"

	"smartagri/internal/domain/entity"
	"smartagri/internal/domain/repository"
	"smartagri/pkg/errors"
)

type ListingUseCase struct {
	cropRepo      repository.CropRepository
	equipmentRepo repository.EquipmentRepository
}

func NewListingUseCase(cropRepo repository.CropRepository, equipmentRepo repository.EquipmentRepository) *ListingUseCase {
	return &ListingUseCase{
		cropRepo:      cropRepo,
		equipmentRepo: equipmentRepo,
	}
}

type CreateCropInput struct {
	CropName    string
	Price       float64
	Unit        string
	Location    string
	Phone       string
	Quality     string
	Description string
	ImageURL    string
}

type CreateEquipmentInput struct {
	ShopName    string
	ProductName string
	Price       string
	ActionType  string
	Category    string
	Phone       string
	Location    string
	ImageURL    string
	Delivery    bool
}

func (uc *ListingUseCase) CreateCrop(ctx context.Context, identity entity.Identity, input CreateCropInput) (*entity.CropListing, error) {
	if identity.Role != entity.RoleFarmer {
		return nil, errors.Forbidden("Only users registered as Farmers can post listings", nil)
	}

	crop := &entity.CropListing{
		OwnerID:     identity.ID,
		CropName:    input.CropName,
		Price:       input.Price,
		Unit:        input.Unit,
		Location:    input.Location,
		Phone:       input.Phone,
		Quality:     input.Quality,
		Description: input.Description,
		SellerName:  identity.DisplayName,
		ImageURL:    input.ImageURL,
	}
	if err := uc.cropRepo.Create(ctx, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

func (uc *ListingUseCase) CreateEquipment(ctx context.Context, identity entity.Identity, input CreateEquipmentInput) (*entity.EquipmentListing, error) {
	if identity.Role != entity.RoleVendor {
		return nil, errors.Forbidden("Only registered Vendors can list equipment", nil)
	}

	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL == "" {
		imageURL = entity.DefaultEquipmentImageURL
	}

	item := &entity.EquipmentListing{
		OwnerID:     identity.ID,
		ShopName:    input.ShopName,
		ProductName: input.ProductName,
		Price:       input.Price,
		ActionType:  input.ActionType,
		Category:    input.Category,
		Phone:       input.Phone,
		Location:    input.Location,
		ImageURL:    imageURL,
		Delivery:    input.Delivery,
	}
	if err := uc.equipmentRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListCrops returns the market, newest first, matching search against crop
// name and location.
func (uc *ListingUseCase) ListCrops(ctx context.Context, search string) ([]*entity.CropListing, error) {
	crops, err := uc.cropRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.CropListing, 0, len(crops))
	for _, c := range crops {
		if matches(search, c.CropName, c.Location) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// ListEquipment filters by category ("" or "All" for every category) and by
// search against shop and product name.
func (uc *ListingUseCase) ListEquipment(ctx context.Context, category, search string) ([]*entity.EquipmentListing, error) {
	if strings.EqualFold(category, "all") {
		category = ""
	}

	items, err := uc.equipmentRepo.List(ctx, category)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.EquipmentListing, 0, len(items))
	for _, item := range items {
		if matches(search, item.ShopName, item.ProductName) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// matches is a case-insensitive substring match against any field. An empty
// search matches everything.
func matches(search string, fields ...string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}
