package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"productshelf/catalog"
	"productshelf/models"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

var (
	s1 = `
	{
		"border": [
			{
			"type": "left",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "top",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "right",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "bottom",
			"color": "#000000",
			"style": 1
			}
		],
		"fill": {
			"type": "pattern",
			"pattern": 1,
			"color": ["#96b753"]
		},
		"font": {
			"bold": true
		},
		"alignment": {
			"shrink_to_fit": true,
			"horizontal": "center"
		}
	}
	`
	s2 = `
	{
		"border": [
			{
			"type": "left",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "top",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "right",
			"color": "#000000",
			"style": 1
			},
			{
			"type": "bottom",
			"color": "#000000",
			"style": 1
			}
		],
		"fill": {
			"type": "pattern",
			"pattern": 1
		},
		"alignment": {
			"shrink_to_fit": true
		}
	}
	`
)

// productsCacheKey holds the last fetched list until the TTL runs out or a
// mutation invalidates it.
const productsCacheKey = "products"

var genericOK = map[string]string{"message": "ok"}

type GenericResponse struct {
	Message   string `json:"message"`
	Reference string `json:"reference,omitempty"`
}

type API struct {
	Redis    *redis.Client
	Catalog  catalog.Client
	CacheTTL time.Duration
}

func NewAPI() *API {
	return &API{CacheTTL: time.Minute}
}

func (api *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, genericOK)
}

func sendError(c *gin.Context, code int, msg string) {
	c.JSON(code, GenericResponse{
		Message:   msg,
		Reference: c.Writer.Header().Get("X-Request-Id"),
	})
}

// sendUpstreamError surfaces a catalog failure to the page: the catalog's own
// status and message when it replied, 502 when it could not be reached.
func sendUpstreamError(c *gin.Context, err error) {
	log.Println(err)

	var catalogErr *catalog.Error
	if errors.As(err, &catalogErr) {
		sendError(c, catalogErr.Status, catalogErr.Message)
		return
	}

	sendError(c, http.StatusBadGateway, err.Error())
}

func validateProductRequest(req models.ProductRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("missing-title")
	}

	return nil
}
