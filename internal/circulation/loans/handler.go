package loans

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"biblio-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// loan headers (listing returns headers with lines attached)
	r.POST("/loans", h.CreateLoan)
	r.GET("/loans", h.ListLoans)
	r.GET("/loans/:loan_id", h.GetLoan)
	r.PUT("/loans/:loan_id", h.UpdateLoan)
	r.DELETE("/loans/:loan_id", h.DeleteLoan)

	// loan line items
	r.POST("/loan-details", h.CreateDetail)
	r.GET("/loan-details", h.ListDetails)
	r.PUT("/loan-details/:detail_id", h.UpdateDetail)
	r.DELETE("/loan-details/:detail_id", h.DeleteDetail)

	// header + lines as one transaction
	r.POST("/checkouts", h.Checkout)
}

func (h *Handler) CreateLoan(c *gin.Context) {
	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}
	res, err := h.svc.CreateLoan(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.Header("Location", "/loans/"+strconv.FormatInt(res.LoanID, 10))
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) GetLoan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("loan_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "loan_id must be a number"))
		return
	}
	res, err := h.svc.GetLoan(c.Request.Context(), id)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListLoans(c *gin.Context) {
	res, err := h.svc.ListLoans(c.Request.Context())
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpdateLoan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("loan_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "loan_id must be a number"))
		return
	}
	var req UpdateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}
	res, err := h.svc.UpdateLoan(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteLoan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("loan_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "loan_id must be a number"))
		return
	}
	if err := h.svc.DeleteLoan(c.Request.Context(), id); err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateDetail(c *gin.Context) {
	var req CreateLoanDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}
	res, err := h.svc.CreateDetail(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.Header("Location", "/loan-details/"+strconv.FormatInt(res.LoanDetailID, 10))
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListDetails(c *gin.Context) {
	res, err := h.svc.ListDetails(c.Request.Context())
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpdateDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("detail_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "detail_id must be a number"))
		return
	}
	var req UpdateLoanDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}
	res, err := h.svc.UpdateDetail(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("detail_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "detail_id must be a number"))
		return
	}
	if err := h.svc.DeleteDetail(c.Request.Context(), id); err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.PayloadFrom(apierr.CodeInvalidArgument, "invalid json or missing required fields"))
		return
	}
	res, err := h.svc.Checkout(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Payload(err))
		return
	}
	c.Header("Location", "/loans/"+strconv.FormatInt(res.LoanID, 10))
	c.JSON(http.StatusCreated, res)
}
