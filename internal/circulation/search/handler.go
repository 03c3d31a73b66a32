package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biblio-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/search-loans", h.SearchLoans)
}

// GET /search-loans?phone_number=555-1234
func (h *Handler) SearchLoans(c *gin.Context) {
	phone := c.Query("phone_number")
	res, err := h.svc.FindLoansByPhone(c.Request.Context(), phone)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
