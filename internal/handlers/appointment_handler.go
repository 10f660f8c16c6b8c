package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/audit"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/dto"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/httperr"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/models"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	timezone string
}

func NewAppointmentHandler(db *gorm.DB, audit *audit.Dispatcher, tz string) *AppointmentHandler {
	return &AppointmentHandler{db: db, audit: audit, timezone: tz}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Date       string `json:"date" binding:"required"`

	// Exactement l'un des deux : durée libre, ou prestation du catalogue
	// qui fixe la durée par sa composition.
	DurationMinutes int    `json:"duration_minutes"`
	ServiceCode     string `json:"service_code"`
	BlockIndex      int    `json:"block_index"`
}

type UpdateAppointmentRequest struct {
	Date            *string `json:"date,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.db.
		Preload("Customer").
		Order("start_time ASC").
		Find(&appointments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erreur lors de la récupération des rendez-vous.")
		return
	}

	out := make([]dto.AppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, toDTO(ap))
	}

	c.JSON(http.StatusOK, out)
}

func toDTO(ap models.Appointment) dto.AppointmentDTO {
	d := dto.AppointmentDTO{
		ID:              ap.ID.String(),
		CustomerID:      ap.CustomerID.String(),
		Customer:        ap.Customer.Name,
		Date:            formatAPIDate(ap.StartTime),
		DurationMinutes: ap.DurationMin,
		BlockIndex:      ap.BlockIndex,
	}
	if ap.ServiceCode != nil {
		d.ServiceCode = *ap.ServiceCode
	}
	return d
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", customerID).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Client introuvable.")
		return
	}

	start, err := parseAPIDate(h.timezone, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide.")
		return
	}

	duration := req.DurationMinutes
	var serviceCode *string

	if req.ServiceCode != "" {
		catalog, err := loadCatalog(h.db)
		if err != nil {
			httperr.Internal(c, "failed_to_load_services", "Erreur lors du chargement des prestations.")
			return
		}
		if _, ok := catalog.Get(req.ServiceCode); !ok {
			httperr.BadRequest(c, "unknown_service", "Prestation inconnue.")
			return
		}
		duration = catalog.Compose(req.ServiceCode, req.BlockIndex).TotalDuration()
		serviceCode = &req.ServiceCode
	}

	clamp, err := schedule.ClampToClose(start, duration)
	if err != nil {
		httperr.BadRequest(c, httperr.BusinessCode(err), "Durée invalide pour ce créneau.")
		return
	}

	ap := models.Appointment{
		CustomerID:  customerID,
		StartTime:   start,
		DurationMin: clamp.DurationMin,
		ServiceCode: serviceCode,
		BlockIndex:  req.BlockIndex,
	}

	if err := h.db.Create(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_create_appointment", "Erreur lors de l'ajout du rendez-vous.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID.String(),
	})

	ap.Customer = customer
	c.JSON(http.StatusCreated, toDTO(ap))
}

// ======================================================
// UPDATE (déplacement / redimensionnement)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var ap models.Appointment
	if err := h.db.Preload("Customer").First(&ap, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Rendez-vous introuvable.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.Date != nil {
		start, err := parseAPIDate(h.timezone, *req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date invalide.")
			return
		}
		ap.StartTime = start
	}

	if req.DurationMinutes != nil {
		ap.DurationMin = *req.DurationMinutes
	}

	clamp, err := schedule.ClampToClose(ap.StartTime, ap.DurationMin)
	if err != nil {
		httperr.BadRequest(c, httperr.BusinessCode(err), "Durée invalide pour ce créneau.")
		return
	}
	ap.DurationMin = clamp.DurationMin

	if err := h.db.Save(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erreur lors de la mise à jour du rendez-vous.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: ap.ID.String(),
	})

	c.JSON(http.StatusOK, toDTO(ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Rendez-vous introuvable.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erreur lors de la suppression du rendez-vous.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id.String(),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Rendez-vous supprimé."})
}
