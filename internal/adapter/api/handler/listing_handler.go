package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"smartagri/internal/usecase"
	"smartagri/pkg/errors"
	"smartagri/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
	gateway        *usecase.MutationGateway
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase, gateway *usecase.MutationGateway) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
		gateway:        gateway,
	}
}

type createCropRequest struct {
	CropName    string  `json:"crop_name" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	Unit        string  `json:"unit" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Phone       string  `json:"phone" validate:"required"`
	Quality     string  `json:"quality"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

type createEquipmentRequest struct {
	ShopName    string `json:"shop_name" validate:"required"`
	ProductName string `json:"product_name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	ActionType  string `json:"action_type" validate:"required,oneof=Sale Rent"`
	Category    string `json:"category" validate:"required,oneof=Machinery Fertilizers Seeds Irrigation Tools"`
	Phone       string `json:"phone" validate:"required"`
	Location    string `json:"location" validate:"required"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Delivery    bool   `json:"delivery"`
}

func (h *ListingHandler) ListCrops(c echo.Context) error {
	crops, err := h.listingUseCase.ListCrops(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return fail(c, err)
	}
	return response.List(c, crops, len(crops))
}

func (h *ListingHandler) CreateCrop(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req createCropRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	crop, err := h.listingUseCase.CreateCrop(c.Request().Context(), *identity, usecase.CreateCropInput{
		CropName:    req.CropName,
		Price:       req.Price,
		Unit:        req.Unit,
		Location:    req.Location,
		Phone:       req.Phone,
		Quality:     req.Quality,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return fail(c, err)
	}

	return response.Created(c, crop)
}

func (h *ListingHandler) ListEquipment(c echo.Context) error {
	equipment, err := h.listingUseCase.ListEquipment(c.Request().Context(), c.QueryParam("category"), c.QueryParam("q"))
	if err != nil {
		return fail(c, err)
	}
	return response.List(c, equipment, len(equipment))
}

func (h *ListingHandler) CreateEquipment(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req createEquipmentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	equipment, err := h.listingUseCase.CreateEquipment(c.Request().Context(), *identity, usecase.CreateEquipmentInput{
		ShopName:    req.ShopName,
		ProductName: req.ProductName,
		Price:       req.Price,
		ActionType:  req.ActionType,
		Category:    req.Category,
		Phone:       req.Phone,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Delivery:    req.Delivery,
	})
	if err != nil {
		return fail(c, err)
	}

	return response.Created(c, equipment)
}

// DeleteListing removes one of the caller's own records. The client must pass
// confirm=true after asking the user.
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.Error(c, err)
	}

	confirmed, _ := strconv.ParseBool(c.QueryParam("confirm"))

	err = h.gateway.Delete(c.Request().Context(), *identity, c.Param("collection"), c.Param("id"), confirmed)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, map[string]string{
		"collection": c.Param("collection"),
		"id":         c.Param("id"),
	})
}
