package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rafaeldias/pos-backoffice/controllers"
	"github.com/rafaeldias/pos-backoffice/middlewares"
	"github.com/rafaeldias/pos-backoffice/models"
	"github.com/rafaeldias/pos-backoffice/repository"
	"github.com/rafaeldias/pos-backoffice/services"
)

func setupTestDBForOrders(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.Product{}, &models.TableSession{}, &models.Order{})
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middlewares.ErrorHandler())

	store := repository.NewGormStore(db)
	orderCtrl := controllers.NewOrderController(services.NewOrderService(store))
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders/:table_session_id", orderCtrl.ListOrders)
	router.GET("/orders/:table_session_id/total", orderCtrl.SummarizeOrders)
	return router
}

func seedOpenSessionAndProduct(db *gorm.DB) (models.TableSession, models.Product) {
	session := models.TableSession{TableID: 5, OpenedAt: time.Now()}
	db.Create(&session)
	product := models.Product{Name: "Margherita Pizza", Price: 9.50}
	db.Create(&product)
	return session, product
}

func TestCreateOrder(t *testing.T) {
	db := setupTestDBForOrders(t)
	session, product := seedOpenSessionAndProduct(db)
	router := setupOrderRouter(db)

	w := postJSON(t, router, "/orders", map[string]interface{}{
		"table_session_id": session.ID,
		"product_id":       product.ID,
		"quantity":         3,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	assert.NoError(t, db.First(&order).Error)
	assert.Equal(t, session.ID, order.TableSessionID)
	assert.Equal(t, product.ID, order.ProductID)
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, 9.50, order.Price)
}

func TestCreateOrderValidation(t *testing.T) {
	db := setupTestDBForOrders(t)
	session, product := seedOpenSessionAndProduct(db)
	router := setupOrderRouter(db)

	// Missing fields
	w := postJSON(t, router, "/orders", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-positive quantity
	w = postJSON(t, router, "/orders", map[string]interface{}{
		"table_session_id": session.ID,
		"product_id":       product.ID,
		"quantity":         0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderClosedSession(t *testing.T) {
	db := setupTestDBForOrders(t)
	closedAt := time.Now()
	session := models.TableSession{TableID: 5, OpenedAt: time.Now().Add(-time.Hour), ClosedAt: &closedAt}
	db.Create(&session)
	product := models.Product{Name: "Tiramisu", Price: 18.00}
	db.Create(&product)

	router := setupOrderRouter(db)
	w := postJSON(t, router, "/orders", map[string]interface{}{
		"table_session_id": session.ID,
		"product_id":       product.ID,
		"quantity":         1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOrderSessionNotFound(t *testing.T) {
	db := setupTestDBForOrders(t)
	product := models.Product{Name: "Tiramisu", Price: 18.00}
	db.Create(&product)

	router := setupOrderRouter(db)
	w := postJSON(t, router, "/orders", map[string]interface{}{
		"table_session_id": 42,
		"product_id":       product.ID,
		"quantity":         1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderProductNotFound(t *testing.T) {
	db := setupTestDBForOrders(t)
	session := models.TableSession{TableID: 5, OpenedAt: time.Now()}
	db.Create(&session)

	router := setupOrderRouter(db)
	w := postJSON(t, router, "/orders", map[string]interface{}{
		"table_session_id": session.ID,
		"product_id":       42,
		"quantity":         1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderPriceIsSnapshot(t *testing.T) {
	db := setupTestDBForOrders(t)
	session, product := seedOpenSessionAndProduct(db)
	router := setupOrderRouter(db)

	w := postJSON(t, router, "/orders", map[string]interface{}{
		"table_session_id": session.ID,
		"product_id":       product.ID,
		"quantity":         2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Catalog price change must not touch the stored order price
	db.Model(&models.Product{}).Where("id = ?", product.ID).Update("price", 99.99)

	var order models.Order
	db.First(&order)
	assert.Equal(t, 9.50, order.Price)
}

func TestListOrders(t *testing.T) {
	db := setupTestDBForOrders(t)
	session, product := seedOpenSessionAndProduct(db)

	older := models.Order{
		TableSessionID: session.ID,
		ProductID:      product.ID,
		Quantity:       1,
		Price:          product.Price,
		CreatedAt:      time.Now().Add(-time.Hour),
		UpdatedAt:      time.Now().Add(-time.Hour),
	}
	newer := models.Order{
		TableSessionID: session.ID,
		ProductID:      product.ID,
		Quantity:       2,
		Price:          product.Price,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	db.Create(&older)
	db.Create(&newer)

	router := setupOrderRouter(db)
	req, _ := http.NewRequest("GET", "/orders/"+strconv.Itoa(int(session.ID)), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	// Most recent first, joined with the product name and line total
	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(newer.ID), first["id"])
	assert.Equal(t, "Margherita Pizza", first["product_name"])
	assert.Equal(t, 2.0, first["quantity"])
	assert.InDelta(t, 19.0, first["total"].(float64), 0.001)
}

func TestSummarizeOrders(t *testing.T) {
	db := setupTestDBForOrders(t)
	session, product := seedOpenSessionAndProduct(db)
	router := setupOrderRouter(db)

	w := postJSON(t, router, "/orders", map[string]interface{}{
		"table_session_id": session.ID,
		"product_id":       product.ID,
		"quantity":         3,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	req, _ := http.NewRequest("GET", "/orders/"+strconv.Itoa(int(session.ID))+"/total", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w2.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.InDelta(t, 28.50, data["total"].(float64), 0.001)
	assert.Equal(t, 3.0, data["quantity"])
}

func TestSummarizeOrdersEmptySession(t *testing.T) {
	db := setupTestDBForOrders(t)
	session := models.TableSession{TableID: 5, OpenedAt: time.Now()}
	db.Create(&session)

	router := setupOrderRouter(db)
	req, _ := http.NewRequest("GET", "/orders/"+strconv.Itoa(int(session.ID))+"/total", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["total"])
	assert.Equal(t, 0.0, data["quantity"])
}
