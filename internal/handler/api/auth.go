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

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.AccountQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.AccountQueries) *AuthHandler {
	return &AuthHandler{
		cmds: cmds,
		q:    q,
	}
}

// @Summary Login
// @Description Resolves the email to exactly one account variant and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} httperr.SuccessResponse{data=resdto.LoginResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response "same email on more than one account variant"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	httperr.Success(c, http.StatusOK, "Login exitoso", resdto.FromLoginResult(result))
}

// @Summary Register consumer
// @Description Creates an unverified consumer account and mails the verification link
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} httperr.SuccessResponse{data=resdto.RegisterResponse}
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	httperr.Success(c, http.StatusCreated, "Cliente registrado. Revisa tu correo para verificar la cuenta.",
		resdto.RegisterResponse{ID: result.ConsumerID})
}

// @Summary Verify consumer
// @Description Consumes the registration token. Replaying a used token is not an error.
// @Tags auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} httperr.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Verify(c.Request.Context(), req.Token)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	if result.AlreadyVerified {
		httperr.Success(c, http.StatusOK, "Tu cuenta ya estaba verificada. Puedes iniciar sesión.", nil)
		return
	}
	httperr.Success(c, http.StatusOK, "Cuenta verificada correctamente", nil)
}

// @Summary Forgot password
// @Description Always answers with the same message whether or not the email exists
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} httperr.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req reqdto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	if err := h.cmds.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	httperr.Success(c, http.StatusOK, "Si el correo existe, se enviará un enlace de recuperación.", nil)
}

// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResetPasswordRequest true "Reset password request"
// @Success 200 {object} httperr.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	if err := h.cmds.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	httperr.Success(c, http.StatusOK, "Contraseña actualizada", nil)
}

// @Summary Change password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ChangePasswordRequest true "Change password request"
// @Success 200 {object} httperr.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}

	if err := h.cmds.ChangePassword(c.Request.Context(), identity, req.CurrentPassword, req.NewPassword); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	httperr.Success(c, http.StatusOK, "Contraseña actualizada", nil)
}

// @Summary Current account
// @Description Account behind the session token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} httperr.SuccessResponse{data=resdto.MeResponse}
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	view, err := h.q.Me(c.Request.Context(), identity)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromAccountView(view)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	httperr.Success(c, http.StatusOK, "Usuario obtenido correctamente", res)
}
