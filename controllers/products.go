package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"productshelf/models"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func (api *API) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()
	refresh, _ := strconv.ParseBool(c.Query("refresh"))
	asExcel, _ := strconv.ParseBool(c.Query("export_as_excel"))

	var list *models.ProductList
	if !refresh {
		list = api.cachedProducts(ctx)
	}

	if list == nil {
		fetched, err := api.Catalog.ListProducts(ctx)
		if err != nil {
			sendUpstreamError(c, err)
			return
		}

		fetched.FetchedAt = time.Now().UTC()
		list = fetched
		api.storeProducts(ctx, list)
	}

	if asExcel {
		handleExcelProducts(c, list.Products)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (api *API) CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateProductRequest(req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := api.Catalog.CreateProduct(c.Request.Context(), req)
	if err != nil {
		sendUpstreamError(c, err)
		return
	}

	api.invalidateProducts(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "created", "product": product})
}

func (api *API) UpdateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Println(err)
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := validateProductRequest(req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := api.Catalog.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		sendUpstreamError(c, err)
		return
	}

	api.invalidateProducts(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "updated", "product": product})
}

func (api *API) DeleteProduct(c *gin.Context) {
	product, err := api.Catalog.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		sendUpstreamError(c, err)
		return
	}

	api.invalidateProducts(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "deleted", "product": product})
}

// cachedProducts returns the stored list, or nil on a miss. Redis trouble is
// logged and counted as a miss so the cache can never take down reads.
func (api *API) cachedProducts(ctx context.Context) *models.ProductList {
	raw, err := api.Redis.Get(ctx, productsCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println(err)
		}
		return nil
	}

	var list models.ProductList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Println(err)
		return nil
	}

	return &list
}

func (api *API) storeProducts(ctx context.Context, list *models.ProductList) {
	data, err := json.Marshal(list)
	if err != nil {
		log.Println(err)
		return
	}

	if err := api.Redis.Set(ctx, productsCacheKey, string(data), api.CacheTTL).Err(); err != nil {
		log.Println(err)
	}
}

// invalidateProducts drops the cached list after a successful mutation so the
// next read refetches. A failed DEL only delays that until the TTL runs out.
func (api *API) invalidateProducts(ctx context.Context) {
	if err := api.Redis.Del(ctx, productsCacheKey).Err(); err != nil {
		log.Println(err)
	}
}

func handleExcelProducts(c *gin.Context, products []models.Product) {
	if len(products) == 0 {
		sendError(c, http.StatusNotFound, "products-not-found")
		return
	}

	f := excelize.NewFile()

	sheet := "List Products"
	f.NewSheet(sheet)
	// delete default sheet
	f.DeleteSheet("Sheet1")

	err := f.SetColWidth(sheet, "A", "E", 50)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	headerStyle, err := f.NewStyle(s1)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	dataStyle, err := f.NewStyle(s2)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	streamWriter, err := f.NewStreamWriter(sheet)
	if err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if err = streamWriter.SetRow("A1", []interface{}{
		excelize.Cell{StyleID: headerStyle, Value: "ID"},
		excelize.Cell{StyleID: headerStyle, Value: "Title"},
		excelize.Cell{StyleID: headerStyle, Value: "Description"},
		excelize.Cell{StyleID: headerStyle, Value: "Price"},
		excelize.Cell{StyleID: headerStyle, Value: "Thumbnail"}}); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	for n, product := range products {
		price := product.Price.String()
		if v, err := product.Price.Float64(); err == nil {
			price = fmt.Sprintf("$%s", humanize.Commaf(v))
		}

		row := make([]interface{}, 5)
		row[0] = excelize.Cell{StyleID: dataStyle, Value: product.Id.String()}
		row[1] = excelize.Cell{StyleID: dataStyle, Value: product.Title}
		row[2] = excelize.Cell{StyleID: dataStyle, Value: product.Description}
		row[3] = excelize.Cell{StyleID: dataStyle, Value: price}
		row[4] = excelize.Cell{StyleID: dataStyle, Value: product.Thumbnail}

		cell, _ := excelize.CoordinatesToCellName(1, n+2)
		if err = streamWriter.SetRow(cell, row); err != nil {
			sendError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}

	if err := streamWriter.Flush(); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	fileName := fmt.Sprintf("report_products_%s.xlsx", time.Now().UTC().Format("20060102_150405"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment;filename=\""+fileName+"\"")

	if _, err := f.WriteTo(c.Writer); err != nil {
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}

}
