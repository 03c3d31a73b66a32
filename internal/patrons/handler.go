package patrons

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"biblio-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/patrons", h.Create)
	r.GET("/patrons", h.List)
	r.GET("/patrons/:patron_id", h.Get)
	r.PUT("/patrons/:patron_id", h.Update)
	r.DELETE("/patrons/:patron_id", h.Delete)

	r.POST("/patrons/import", h.Import)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePatronRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.Header("Location", "/patrons/"+strconv.FormatInt(res.PatronID, 10))
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("patron_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "patron_id must be a number"))
		return
	}
	res, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) List(c *gin.Context) {
	res, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("patron_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "patron_id must be a number"))
		return
	}
	var req UpdatePatronRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("patron_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "patron_id must be a number"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Import accepts either a multipart upload (field "file") or a raw CSV body.
func (h *Handler) Import(c *gin.Context) {
	var src io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		file, _, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "multipart field 'file' is required"))
			return
		}
		defer file.Close()
		src = file
	}
	res, err := h.svc.ImportCSV(c.Request.Context(), src)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
