package api

import (
	"net/http"

	reqdto "cuponx-backend/internal/handler/dto/request"
	resdto "cuponx-backend/internal/handler/dto/response"
	"cuponx-backend/internal/handler/httperr"
	"cuponx-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	q queries.OfferQueries
}

func NewOfferHandler(q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{q: q}
}

// @Summary Approved offers
// @Tags offers
// @Produce json
// @Success 200 {object} httperr.SuccessResponse{data=[]resdto.OfferResponse}
// @Router /api/ofertas [get]
func (h *OfferHandler) ListApproved(c *gin.Context) {
	views, err := h.q.ListApproved(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	writeOffers(c, views, "Ofertas obtenidas correctamente")
}

// @Summary Top offers
// @Description Live offers ordered by coupons sold, then discount
// @Tags offers
// @Produce json
// @Param limit query int false "Items to return (default 6, max 50)"
// @Success 200 {object} httperr.SuccessResponse{data=[]resdto.OfferResponse}
// @Failure 400 {object} httperr.Response
// @Router /api/ofertas/top [get]
func (h *OfferHandler) ListTop(c *gin.Context) {
	var req reqdto.LimitQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	views, err := h.q.ListTop(c.Request.Context(), req.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	writeOffers(c, views, "Top ofertas obtenidas correctamente")
}

// @Summary Live offers
// @Description Approved offers inside their validity window
// @Tags offers
// @Produce json
// @Param rubro_id query int false "Category filter"
// @Param search query string false "Matches title or description"
// @Success 200 {object} httperr.SuccessResponse{data=[]resdto.OfferResponse}
// @Failure 400 {object} httperr.Response
// @Router /api/ofertas/vigentes [get]
func (h *OfferHandler) ListLive(c *gin.Context) {
	var req reqdto.LiveOffersQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	views, err := h.q.ListLive(c.Request.Context(), queries.OfferFilter{
		CategoryID: req.CategoryID,
		Search:     req.Search,
	})
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	writeOffers(c, views, "Ofertas vigentes obtenidas correctamente")
}

func writeOffers(c *gin.Context, views []*queries.OfferView, msg string) {
	res, err := resdto.FromOfferViews(views)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, msg, res)
}
