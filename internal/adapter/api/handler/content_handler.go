package handler

import (
	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/middleware"
	"smartagri/internal/usecase"
	"smartagri/pkg/response"
)

type ContentHandler struct {
	contentUseCase *usecase.ContentUseCase
}

func NewContentHandler(contentUseCase *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{
		contentUseCase: contentUseCase,
	}
}

func (h *ContentHandler) Diseases(c echo.Context) error {
	diseases := h.contentUseCase.Diseases(middleware.LanguageFrom(c), c.QueryParam("category"), c.QueryParam("q"))
	return response.List(c, diseases, len(diseases))
}

func (h *ContentHandler) Subsidies(c echo.Context) error {
	subsidies := h.contentUseCase.Subsidies(middleware.LanguageFrom(c), c.QueryParam("category"))
	return response.List(c, subsidies, len(subsidies))
}

func (h *ContentHandler) FAQs(c echo.Context) error {
	faqs := h.contentUseCase.FAQs(middleware.LanguageFrom(c))
	return response.List(c, faqs, len(faqs))
}
