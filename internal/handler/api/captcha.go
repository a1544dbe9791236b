package api

import (
	"errors"
	"net/http"

	resdto "phantom-mask/internal/handler/dto/response"
	"phantom-mask/internal/handler/httperr"
	"phantom-mask/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CaptchaHandler struct {
	cmds commands.CaptchaCommands
}

func NewCaptchaHandler(cmds commands.CaptchaCommands) *CaptchaHandler {
	return &CaptchaHandler{cmds: cmds}
}

func captchaImageURL(hashKey string) string {
	return "/captcha/image/" + hashKey + "/"
}

// @Summary Issue captcha
// @Description Create a single-use captcha challenge
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.CaptchaResponse
// @Failure 500 {object} httperr.Response
// @Router /captcha/ [get]
func (h *CaptchaHandler) Issue(c *gin.Context) {
	issued, err := h.cmds.Issue(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.CaptchaResponse{
		HashKey:  issued.HashKey,
		ImageURL: captchaImageURL(issued.HashKey),
	})
}

// @Summary Captcha image
// @Description Render a live captcha challenge as PNG
// @Tags auth
// @Produce png
// @Param hash_key path string true "Captcha hash key"
// @Success 200 {file} binary
// @Failure 404 {object} httperr.Response
// @Router /captcha/image/{hash_key}/ [get]
func (h *CaptchaHandler) Image(c *gin.Context) {
	png, err := h.cmds.RenderImage(c.Request.Context(), c.Param("hash_key"))
	if err != nil {
		if errors.Is(err, commands.ErrCaptchaNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}
