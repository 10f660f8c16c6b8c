package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/httperr"
	"github.com/MaisonCoiffure01/salon-scheduler/internal/schedule"
)

// ======================================================
// HANDLER
// ======================================================

// Le catalogue appartient au serveur, les clients le lisent tel quel.
type ServiceHandler struct {
	db       *gorm.DB
	rdb      *redis.Client // nil si redis n'est pas configuré
	timezone string
}

func NewServiceHandler(db *gorm.DB, rdb *redis.Client, tz string) *ServiceHandler {
	return &ServiceHandler{db: db, rdb: rdb, timezone: tz}
}

const availabilityCacheTTL = 60 * time.Second

// ======================================================
// LIST (catalogue complet)
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	catalog, err := loadCatalog(h.db)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erreur lors du chargement des prestations.")
		return
	}

	out := make(map[string]schedule.Service, catalog.Len())
	for _, code := range catalog.Codes() {
		svc, _ := catalog.Get(code)
		out[code] = svc
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// AVAILABLE (prestations réservables à un instant donné)
// ======================================================

func (h *ServiceHandler) Available(c *gin.Context) {
	atStr := c.Query("at")
	if atStr == "" {
		httperr.BadRequest(c, "missing_at", "Paramètre 'at' obligatoire.")
		return
	}

	at, err := parseAPIDate(h.timezone, atStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide.")
		return
	}

	cacheKey := "available-services:" + formatAPIDate(at)
	if cached, ok := h.cacheGet(c.Request.Context(), cacheKey); ok {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	catalog, err := loadCatalog(h.db)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erreur lors du chargement des prestations.")
		return
	}

	out := make(map[string]schedule.Service)
	for _, svc := range catalog.AvailableAt(at) {
		out[svc.Code] = svc
	}

	h.cacheSet(c.Request.Context(), cacheKey, out)
	c.JSON(http.StatusOK, out)
}

// ======================================================
// CACHE (court terme, facultatif)
// ======================================================

func (h *ServiceHandler) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if h.rdb == nil {
		return nil, false
	}

	payload, err := h.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (h *ServiceHandler) cacheSet(ctx context.Context, key string, value any) {
	if h.rdb == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	// best effort : un cache indisponible ne doit pas gêner la réponse
	_ = h.rdb.Set(ctx, key, payload, availabilityCacheTTL).Err()
}
