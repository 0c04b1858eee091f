package api

import (
	"net/http"

	reqdto "cuponx-backend/internal/handler/dto/request"
	resdto "cuponx-backend/internal/handler/dto/response"
	"cuponx-backend/internal/handler/httperr"
	"cuponx-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog queries.CatalogQueries
	offers  queries.OfferQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries, offers queries.OfferQueries) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		offers:  offers,
	}
}

// @Summary Categories
// @Tags catalog
// @Produce json
// @Success 200 {object} httperr.SuccessResponse{data=[]resdto.CategoryResponse}
// @Router /api/rubros [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	views, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromCategoryViews(views)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, "Rubros obtenidos correctamente", res)
}

// @Summary Merchants
// @Tags catalog
// @Produce json
// @Success 200 {object} httperr.SuccessResponse{data=[]resdto.MerchantResponse}
// @Router /api/empresas [get]
func (h *CatalogHandler) ListMerchants(c *gin.Context) {
	views, err := h.catalog.ListMerchants(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	writeMerchants(c, views, "Empresas obtenidas correctamente")
}

// @Summary Top merchants
// @Description Merchants ordered by coupons sold
// @Tags catalog
// @Produce json
// @Param limit query int false "Items to return (default 6, max 50)"
// @Success 200 {object} httperr.SuccessResponse{data=[]resdto.MerchantResponse}
// @Failure 400 {object} httperr.Response
// @Router /api/empresas/top [get]
func (h *CatalogHandler) ListTopMerchants(c *gin.Context) {
	var req reqdto.LimitQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	views, err := h.catalog.ListTopMerchants(c.Request.Context(), req.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	writeMerchants(c, views, "Top empresas obtenidas correctamente")
}

// @Summary Merchant detail
// @Tags catalog
// @Produce json
// @Param id path int true "Merchant ID"
// @Success 200 {object} httperr.SuccessResponse{data=resdto.MerchantDetailResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/empresas/{id} [get]
func (h *CatalogHandler) GetMerchant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	view, err := h.catalog.GetMerchant(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromMerchantDetailView(view)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, "Empresa obtenida correctamente", res)
}

// @Summary Merchant live offers
// @Tags catalog
// @Produce json
// @Param id path int true "Merchant ID"
// @Success 200 {object} httperr.SuccessResponse{data=[]resdto.OfferResponse}
// @Failure 400 {object} httperr.Response
// @Router /api/empresas/{id}/ofertas [get]
func (h *CatalogHandler) ListMerchantOffers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	views, err := h.offers.ListLiveByMerchant(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	writeOffers(c, views, "Ofertas de la empresa obtenidas correctamente")
}

func writeMerchants(c *gin.Context, views []*queries.MerchantView, msg string) {
	res, err := resdto.FromMerchantViews(views)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, msg, res)
}
