package controllers

import (
	"errors"
	"net/http"
	"strings"

	"gaguya-backend/planner"
	"gaguya-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlannerController struct {
	sessions  *planner.SessionManager
	furniture services.FurnitureService
	inquiries services.InquiryService
}

func NewPlannerController(sessions *planner.SessionManager, furniture services.FurnitureService, inquiries services.InquiryService) *PlannerController {
	return &PlannerController{sessions: sessions, furniture: furniture, inquiries: inquiries}
}

// GetFurnitureItems lists the placeable templates for the sidebar,
// optionally filtered by category.
func (pc *PlannerController) GetFurnitureItems(c *gin.Context) {
	items, err := pc.furniture.GetAll(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateSession opens a new planning session. Room defaults to 5000×4000mm
// at 0.1 px/mm when the client sends nothing.
func (pc *PlannerController) CreateSession(c *gin.Context) {
	var payload struct {
		Width  int     `json:"width"`
		Height int     `json:"height"`
		Scale  float64 `json:"scale"`
	}
	// Empty body is fine; defaults apply.
	_ = c.ShouldBindJSON(&payload)

	if payload.Width <= 0 {
		payload.Width = 5000
	}
	if payload.Height <= 0 {
		payload.Height = 4000
	}
	if payload.Scale <= 0 {
		payload.Scale = 0.1
	}

	id, store := pc.sessions.Create(planner.RoomDimensions{Width: payload.Width, Height: payload.Height}, payload.Scale)
	c.JSON(http.StatusCreated, gin.H{"sessionId": id, "state": store.Snapshot()})
}

func (pc *PlannerController) GetSession(c *gin.Context) {
	store, ok := pc.store(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, store.Snapshot())
}

func (pc *PlannerController) DestroySession(c *gin.Context) {
	pc.sessions.Destroy(c.Param("sessionId"))
	c.JSON(http.StatusOK, gin.H{"message": "session closed"})
}

// UpdateRoom changes the room size or scale mid-session. Placed items stay
// where they are; the next move re-snaps against the new walls.
func (pc *PlannerController) UpdateRoom(c *gin.Context) {
	store, ok := pc.store(c)
	if !ok {
		return
	}

	var payload struct {
		Width  int     `json:"width"`
		Height int     `json:"height"`
		Scale  float64 `json:"scale"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if payload.Width > 0 && payload.Height > 0 {
		store.SetRoomDimensions(planner.RoomDimensions{Width: payload.Width, Height: payload.Height})
	}
	if payload.Scale > 0 {
		store.SetScale(payload.Scale)
	}
	c.JSON(http.StatusOK, store.Snapshot())
}

// AddFurniture drops a template into the room at (x, y) canvas pixels.
func (pc *PlannerController) AddFurniture(c *gin.Context) {
	store, ok := pc.store(c)
	if !ok {
		return
	}

	var payload struct {
		FurnitureItemID int     `json:"furnitureItemId"`
		X               float64 `json:"x"`
		Y               float64 `json:"y"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	item, err := pc.furniture.GetByID(payload.FurnitureItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "furniture item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	placed := store.AddFurniture(item, payload.X, payload.Y)
	c.JSON(http.StatusCreated, gin.H{"placed": placed, "state": store.Snapshot()})
}

func (pc *PlannerController) MoveFurniture(c *gin.Context) {
	store, ok := pc.store(c)
	if !ok {
		return
	}

	var payload struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	store.UpdateFurniturePosition(c.Param("itemId"), payload.X, payload.Y)
	c.JSON(http.StatusOK, store.Snapshot())
}

func (pc *PlannerController) RotateFurniture(c *gin.Context) {
	store, ok := pc.store(c)
	if !ok {
		return
	}
	store.RotateFurniture(c.Param("itemId"))
	c.JSON(http.StatusOK, store.Snapshot())
}

func (pc *PlannerController) ChangeFurnitureColor(c *gin.Context) {
	store, ok := pc.store(c)
	if !ok {
		return
	}

	var payload struct {
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	store.ChangeFurnitureColor(c.Param("itemId"), payload.Color)
	c.JSON(http.StatusOK, store.Snapshot())
}

func (pc *PlannerController) RemoveFurniture(c *gin.Context) {
	store, ok := pc.store(c)
	if !ok {
		return
	}
	store.RemoveFurniture(c.Param("itemId"))
	c.JSON(http.StatusOK, store.Snapshot())
}

func (pc *PlannerController) ClearFurniture(c *gin.Context) {
	store, ok := pc.store(c)
	if !ok {
		return
	}
	store.ClearAll()
	c.JSON(http.StatusOK, store.Snapshot())
}

func (pc *PlannerController) SelectFurniture(c *gin.Context) {
	store, ok := pc.store(c)
	if !ok {
		return
	}

	var payload struct {
		ItemID string `json:"itemId"`
	}
	_ = c.ShouldBindJSON(&payload) // empty body deselects

	store.Select(payload.ItemID)
	c.JSON(http.StatusOK, store.Snapshot())
}

// GetQuote returns the itemized furniture list and running total.
func (pc *PlannerController) GetQuote(c *gin.Context) {
	store, ok := pc.store(c)
	if !ok {
		return
	}

	state := store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"items":      state.Items,
		"list":       planner.FurnitureList(state.Items),
		"totalPrice": state.TotalPrice,
	})
}

// RequestConsultation turns the current layout into a stored inquiry with a
// pre-composed message body.
func (pc *PlannerController) RequestConsultation(c *gin.Context) {
	store, ok := pc.store(c)
	if !ok {
		return
	}

	var payload struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Company string `json:"company"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	payload.Phone = strings.TrimSpace(payload.Phone)
	if payload.Name == "" || payload.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "이름과 연락처를 입력해 주세요."})
		return
	}

	consultation := planner.ComposeConsultation(store.Snapshot(), payload.Name, payload.Phone, payload.Email, payload.Company)
	created, err := pc.inquiries.CreateFromPlanner(consultation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "문의 접수에 실패했습니다."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "상담 요청이 접수되었습니다.", "id": created.ID})
}

func (pc *PlannerController) store(c *gin.Context) (*planner.Store, bool) {
	store := pc.sessions.Get(c.Param("sessionId"))
	if store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
		return nil, false
	}
	return store, true
}
