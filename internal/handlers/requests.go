package handlers

import (
	"net/http"
	"strconv"

	"approval-tracker/internal/lifecycle"
	"approval-tracker/internal/models"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	engine *lifecycle.Engine
}

func NewRequestHandler(engine *lifecycle.Engine) *RequestHandler {
	return &RequestHandler{engine: engine}
}

//
// LISTADO Y DETALLE
//

func (h *RequestHandler) List(c *gin.Context) {
	requests, err := h.engine.ListAll(c.Request.Context())
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	req, err := h.engine.GetByID(c.Request.Context(), id)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

//
// CREACIÓN
//

type createRequestForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RequestType string `json:"request_type"`
	Priority    string `json:"priority"`
	RequesterID uint   `json:"requester_id"`
	ApproverID  uint   `json:"approver_id"`
}

func (h *RequestHandler) Create(c *gin.Context) {
	var form createRequestForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de solicitud inválidos"})
		return
	}

	req, err := h.engine.Create(c.Request.Context(), lifecycle.CreateInput{
		Title:       form.Title,
		Description: form.Description,
		RequestType: models.RequestType(form.RequestType),
		Priority:    models.RequestPriority(form.Priority),
		RequesterID: form.RequesterID,
		ApproverID:  form.ApproverID,
	})
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Solicitud creada exitosamente",
		"request": req,
	})
}

//
// DECISIÓN (aprobar / rechazar)
//

type decisionForm struct {
	UserID  uint   `json:"user_id"`
	Comment string `json:"comment"`
}

func (h *RequestHandler) Approve(c *gin.Context) {
	h.decide(c, models.StatusApproved, "Solicitud aprobada")
}

func (h *RequestHandler) Reject(c *gin.Context) {
	h.decide(c, models.StatusRejected, "Solicitud rechazada")
}

func (h *RequestHandler) decide(c *gin.Context, target models.RequestStatus, message string) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	var form decisionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de decisión inválidos"})
		return
	}

	err := h.engine.Transition(c.Request.Context(), id, target, form.UserID, form.Comment)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

//
// HISTORIAL
//

func (h *RequestHandler) History(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	entries, err := h.engine.History(c.Request.Context(), id)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func requestID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de solicitud inválido"})
		return 0, false
	}
	return uint(id), true
}
