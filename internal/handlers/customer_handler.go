package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/audit"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/httperr"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/models"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type CustomerHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCustomerHandler(db *gorm.DB, audit *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{db: db, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.
		Order("name ASC").
		Find(&customers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customers", "Erreur lors de la récupération des clients.")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Le numéro de téléphone a un format incorrect.")
		return
	}

	customer := models.Customer{
		Name:  req.Name,
		Phone: req.Phone,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Erreur lors de l'ajout du client.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: customer.ID.String(),
	})

	c.JSON(http.StatusCreated, customer)
}

// ======================================================
// UPDATE (patch champ par champ)
// ======================================================

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Client introuvable.")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		if !validators.IsPhoneValid(*req.Phone) {
			httperr.BadRequest(c, "invalid_phone", "Le numéro de téléphone a un format incorrect.")
			return
		}
		customer.Phone = *req.Phone
	}

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Erreur lors de la mise à jour du client.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_updated",
		Entity:   "customer",
		EntityID: customer.ID.String(),
	})

	c.JSON(http.StatusOK, customer)
}

// ======================================================
// DELETE (cascade sur les rendez-vous du client)
// ======================================================

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Client introuvable.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("customer_id = ?", id).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&customer).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Erreur lors de la suppression du client.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: id.String(),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Client supprimé."})
}
