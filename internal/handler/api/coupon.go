package api

import (
	"net/http"

	reqdto "cuponx-backend/internal/handler/dto/request"
	resdto "cuponx-backend/internal/handler/dto/response"
	"cuponx-backend/internal/handler/httperr"
	"cuponx-backend/internal/handler/middleware"
	"cuponx-backend/internal/usecase/commands"
	"cuponx-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		cmds: cmds,
		q:    q,
	}
}

// @Summary Consumer coupons
// @Description A consumer may list only their own coupons; operators may list anyone's
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Param id path int true "Consumer ID"
// @Success 200 {object} httperr.SuccessResponse{data=[]resdto.ConsumerCouponResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/cupones/clientes/{id}/cupones [get]
func (h *CouponHandler) ListByConsumer(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	views, err := h.q.ListByConsumer(c.Request.Context(), identity, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromConsumerCouponViews(views)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, "Cupones obtenidos correctamente", res)
}

// @Summary Purchase coupons
// @Description Issues every requested unit or none. The request is not idempotent.
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PurchaseRequest true "Purchase request"
// @Success 201 {object} httperr.SuccessResponse{data=resdto.PurchaseResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cupones/comprar [post]
func (h *CouponHandler) Purchase(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	var req reqdto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Purchase(c.Request.Context(), identity, req.ToInput())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	httperr.Success(c, http.StatusCreated, "Compra realizada correctamente", resdto.FromPurchaseResult(result))
}

// @Summary Redeem coupon
// @Description The coupon must belong to an offer of the employee's merchant
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RedeemRequest true "Redeem request"
// @Success 200 {object} httperr.SuccessResponse{data=resdto.RedeemResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/cupones/canjear [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Redeem(c.Request.Context(), identity, req.ToInput())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	httperr.Success(c, http.StatusOK, "Cupón canjeado correctamente", resdto.FromRedeemResult(result))
}

// @Summary Delete coupon
// @Description Administrative hard delete
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Param id path int true "Coupon ID"
// @Success 200 {object} httperr.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cupones/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), identity, id); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	httperr.Success(c, http.StatusOK, "Cupón eliminado correctamente", nil)
}
