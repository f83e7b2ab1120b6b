package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/marketplace-service/internal/app/marketplace/entity"
	"bazaar/marketplace-service/internal/app/marketplace/infrastructure"
	"bazaar/marketplace-service/internal/app/marketplace/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	validToken  = "valid-token"
	callerEmail = "buyer@example.com"
)

type testDeps struct {
	verifier  *MockVerifier
	users     *MockUserService
	products  *MockProductService
	watchlist *MockWatchlistService
	orders    *MockOrderService
	reviews   *MockReviewService
	ads       *MockAdvertisementService
	payments  *MockPaymentService
}

// Хелпер: полный роутер с моками сервисов; validToken принадлежит callerEmail
func newTestRouter() (*gin.Engine, *testDeps) {
	deps := &testDeps{
		verifier:  new(MockVerifier),
		users:     new(MockUserService),
		products:  new(MockProductService),
		watchlist: new(MockWatchlistService),
		orders:    new(MockOrderService),
		reviews:   new(MockReviewService),
		ads:       new(MockAdvertisementService),
		payments:  new(MockPaymentService),
	}

	deps.verifier.On("Verify", mock.Anything, validToken).
		Return(&infrastructure.Identity{UID: "uid-1", Email: callerEmail}, nil).Maybe()
	deps.verifier.On("Verify", mock.Anything, mock.Anything).
		Return(nil, infrastructure.ErrInvalidToken).Maybe()

	router := SetupRoutes(Handlers{
		Users:          NewUserHandler(deps.users),
		Products:       NewProductHandler(deps.products),
		Watchlist:      NewWatchlistHandler(deps.watchlist),
		Orders:         NewOrderHandler(deps.orders),
		Reviews:        NewReviewHandler(deps.reviews),
		Advertisements: NewAdvertisementHandler(deps.ads),
		Payments:       NewPaymentHandler(deps.payments),
	}, NewAuthMiddleware(deps.verifier, deps.users), []string{"*"})

	return router, deps
}

func doRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// ==================== Auth gate ====================

func TestGatedRoutes_WithoutToken(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/products"},
		{http.MethodGet, "/unique_itemName"},
		{http.MethodPut, "/product/" + id},
		{http.MethodPatch, "/products/" + id + "/status"},
		{http.MethodPost, "/watchList"},
		{http.MethodGet, "/my_watchList/" + callerEmail},
		{http.MethodDelete, "/watchList/" + id},
		{http.MethodPost, "/reviews"},
		{http.MethodGet, "/reviews/" + id},
		{http.MethodPost, "/orders"},
		{http.MethodGet, "/myOrders/" + callerEmail},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			router, deps := newTestRouter()

			rec := doRequest(router, route.method, route.path, `{}`, "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, "Unauthorized", body["error"])
			assert.Equal(t, "Unauthorized Access", body["message"])

			deps.verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
			assert.Empty(t, deps.products.Calls)
			assert.Empty(t, deps.watchlist.Calls)
			assert.Empty(t, deps.reviews.Calls)
			assert.Empty(t, deps.orders.Calls)
		})
	}
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	router, deps := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/myOrders/"+callerEmail, nil)
	req.Header.Set("Authorization", "Basic "+validToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	deps.verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestAuthenticate_InvalidTokenSameMessage(t *testing.T) {
	router, deps := newTestRouter()

	rec := doRequest(router, http.MethodGet, "/myOrders/"+callerEmail, nil, "expired-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized Access", decodeBody(t, rec)["message"])
	assert.Empty(t, deps.orders.Calls)
}

func TestRequireRole(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	req := entity.UpdateProductStatusRequest{Status: entity.ProductStatusApproved}

	t.Run("non-admin is forbidden", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.users.On("HasRole", mock.Anything, callerEmail, []string{entity.RoleAdmin}).Return(false, nil)

		rec := doRequest(router, http.MethodPatch, "/products/"+id+"/status", req, validToken)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, deps.products.Calls)
	})

	t.Run("admin moderates product", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.users.On("HasRole", mock.Anything, callerEmail, []string{entity.RoleAdmin}).Return(true, nil)
		deps.products.On("UpdateStatus", mock.Anything, id, &req).
			Return(&entity.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

		rec := doRequest(router, http.MethodPatch, "/products/"+id+"/status", req, validToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), decodeBody(t, rec)["modifiedCount"])
	})

	t.Run("role lookup error", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.users.On("HasRole", mock.Anything, callerEmail, []string{entity.RoleAdmin}).Return(false, errors.New("db down"))

		rec := doRequest(router, http.MethodPatch, "/products/"+id+"/status", req, validToken)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

// ==================== Users ====================

func TestUpsertUser(t *testing.T) {
	t.Run("new user gets 201 with insert result", func(t *testing.T) {
		router, deps := newTestRouter()
		id := primitive.NewObjectID()
		deps.users.On("Upsert", mock.Anything, &entity.UpsertUserRequest{Email: "new@example.com"}).
			Return(&service.UpsertUserResult{Created: true, Insert: &entity.InsertResult{Acknowledged: true, InsertedID: id}}, nil)

		rec := doRequest(router, http.MethodPost, "/users", map[string]string{"email": "new@example.com"}, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, id.Hex(), decodeBody(t, rec)["insertedId"])
	})

	t.Run("known user gets 200 with update result", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.users.On("Upsert", mock.Anything, mock.Anything).
			Return(&service.UpsertUserResult{Update: &entity.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}}, nil)

		rec := doRequest(router, http.MethodPost, "/users", map[string]string{"email": "old@example.com"}, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), decodeBody(t, rec)["matchedCount"])
	})

	t.Run("invalid email", func(t *testing.T) {
		router, deps := newTestRouter()

		rec := doRequest(router, http.MethodPost, "/users", map[string]string{"email": "nope"}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, deps.users.Calls)
	})

	t.Run("malformed json", func(t *testing.T) {
		router, _ := newTestRouter()

		rec := doRequest(router, http.MethodPost, "/users", `{"email":`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, invalidBodyMessage, decodeBody(t, rec)["message"])
	})
}

func TestUpdateRole(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	t.Run("sets supplied role", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.users.On("UpdateRole", mock.Anything, id, "vendor").
			Return(&entity.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

		rec := doRequest(router, http.MethodPatch, "/users/"+id, map[string]string{"newRole": "vendor"}, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		deps.users.AssertExpectations(t)
	})

	t.Run("missing user", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.users.On("UpdateRole", mock.Anything, id, "vendor").Return(nil, service.ErrUserNotFound)

		rec := doRequest(router, http.MethodPatch, "/users/"+id, map[string]string{"newRole": "vendor"}, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeBody(t, rec)["message"])
	})

	t.Run("malformed id", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.users.On("UpdateRole", mock.Anything, "abc", "vendor").Return(nil, service.ErrInvalidID)

		rec := doRequest(router, http.MethodPatch, "/users/abc", map[string]string{"newRole": "vendor"}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing newRole", func(t *testing.T) {
		router, deps := newTestRouter()

		rec := doRequest(router, http.MethodPatch, "/users/"+id, map[string]string{}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, deps.users.Calls)
	})
}

func TestGetUserRole(t *testing.T) {
	router, deps := newTestRouter()
	deps.users.On("GetByEmail", mock.Anything, "vendor@example.com").
		Return(&entity.User{Email: "vendor@example.com", Role: entity.RoleVendor}, nil)
	deps.users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, service.ErrUserNotFound)

	rec := doRequest(router, http.MethodGet, "/users/role/vendor@example.com", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "vendor", decodeBody(t, rec)["role"])

	rec = doRequest(router, http.MethodGet, "/users/role/ghost@example.com", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ==================== Products ====================

func TestCreateProduct(t *testing.T) {
	router, deps := newTestRouter()
	id := primitive.NewObjectID()
	deps.products.On("Create", mock.Anything, mock.MatchedBy(func(req *entity.ProductRequest) bool {
		return req.ItemName == "Onion" && req.PricePerUnit == 30
	})).Return(&entity.InsertResult{Acknowledged: true, InsertedID: id}, nil)

	body := `{"vendor_email":"vendor@example.com","market":"Karwan Bazar","itemName":"Onion",
		"pricePerUnit":"30","status":"approved","created_at":"2025-07-01"}`
	rec := doRequest(router, http.MethodPost, "/products", body, validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id.Hex(), decodeBody(t, rec)["insertedId"])
}

func TestCreateProduct_InvalidDate(t *testing.T) {
	router, deps := newTestRouter()
	deps.products.On("Create", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: %q", service.ErrInvalidDate, "soon"))

	body := map[string]string{"vendor_email": "vendor@example.com", "market": "M", "itemName": "Onion", "created_at": "soon"}
	rec := doRequest(router, http.MethodPost, "/products", body, validToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProduct_NonFinitePrice(t *testing.T) {
	router, deps := newTestRouter()

	body := `{"vendor_email":"vendor@example.com","market":"M","itemName":"Onion","pricePerUnit":"Infinity"}`
	rec := doRequest(router, http.MethodPost, "/products", body, validToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, deps.products.Calls)
}

func TestListAllProducts_PassesQuery(t *testing.T) {
	router, deps := newTestRouter()
	deps.products.On("List", mock.Anything, entity.ProductListQuery{Start: "2025-07-01", End: "2025-07-05", Sort: "asc"}).
		Return([]entity.Product{{ItemName: "Onion"}}, nil)

	rec := doRequest(router, http.MethodGet, "/products/all?start=2025-07-01&end=2025-07-05&sort=asc", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var products []entity.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 1)
}

func TestHomeFeed(t *testing.T) {
	router, deps := newTestRouter()
	deps.products.On("HomeFeed", mock.Anything).Return([]entity.Product{}, nil)

	rec := doRequest(router, http.MethodGet, "/products", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetProduct_UpstreamErrorPassesMessage(t *testing.T) {
	router, deps := newTestRouter()
	id := primitive.NewObjectID().Hex()
	deps.products.On("GetByID", mock.Anything, id).Return(nil, errors.New("server selection timeout"))

	rec := doRequest(router, http.MethodGet, "/product/"+id, nil, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Internal Server Error", body["error"])
	assert.Equal(t, "server selection timeout", body["message"])
}

func TestDeleteProduct_NotFound(t *testing.T) {
	router, deps := newTestRouter()
	id := primitive.NewObjectID().Hex()
	deps.products.On("Delete", mock.Anything, id).Return(nil, service.ErrProductNotFound)

	rec := doRequest(router, http.MethodDelete, "/products/"+id, nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decodeBody(t, rec)["message"])
}

func TestUniqueItemNames(t *testing.T) {
	router, deps := newTestRouter()
	deps.products.On("ItemNames", mock.Anything).Return([]entity.ItemName{{ItemName: "Onion"}}, nil)

	rec := doRequest(router, http.MethodGet, "/unique_itemName", nil, validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"itemName":"Onion"}]`, rec.Body.String())
}

// ==================== Watchlist & reviews ====================

func TestAddWatchlist(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, deps := newTestRouter()
		id := primitive.NewObjectID()
		deps.watchlist.On("Add", mock.Anything, callerEmail, &entity.AddWatchlistRequest{ProductID: "p-1"}).
			Return(&entity.InsertResult{Acknowledged: true, InsertedID: id}, true, nil)

		rec := doRequest(router, http.MethodPost, "/watchList", map[string]string{"productId": "p-1"}, validToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id.Hex(), decodeBody(t, rec)["insertedId"])
	})

	t.Run("duplicate is a soft success", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.watchlist.On("Add", mock.Anything, callerEmail, mock.Anything).Return(nil, false, nil)

		rec := doRequest(router, http.MethodPost, "/watchList", map[string]string{"productId": "p-1"}, validToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "This item already in watchList", body["message"])
		assert.NotContains(t, body, "insertedId")
	})
}

func TestDeleteWatchlist_NotFound(t *testing.T) {
	router, deps := newTestRouter()
	id := primitive.NewObjectID().Hex()
	deps.watchlist.On("Delete", mock.Anything, id).Return(nil, service.ErrWatchlistItemNotFound)

	rec := doRequest(router, http.MethodDelete, "/watchList/"+id, nil, validToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Watchlist item not found", decodeBody(t, rec)["message"])
}

func TestCreateReview(t *testing.T) {
	t.Run("duplicate is a soft success", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.reviews.On("Add", mock.Anything, callerEmail, mock.Anything).Return(nil, false, nil)

		rec := doRequest(router, http.MethodPost, "/reviews", map[string]interface{}{"productId": "p-1", "rating": 4}, validToken)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "You have already reviewed this product.", decodeBody(t, rec)["message"])
	})

	t.Run("rating out of range", func(t *testing.T) {
		router, deps := newTestRouter()

		rec := doRequest(router, http.MethodPost, "/reviews", map[string]interface{}{"productId": "p-1", "rating": 7}, validToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, deps.reviews.Calls)
	})
}

func TestListReviews(t *testing.T) {
	router, deps := newTestRouter()
	deps.reviews.On("ListByProduct", mock.Anything, "p-1").Return([]entity.Review{{Rating: 5}}, nil)

	rec := doRequest(router, http.MethodGet, "/reviews/p-1", nil, validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ==================== Orders ====================

func TestCreateOrder_UsesTokenEmail(t *testing.T) {
	router, deps := newTestRouter()
	deps.orders.On("Create", mock.Anything, callerEmail, mock.Anything).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil)

	rec := doRequest(router, http.MethodPost, "/orders", map[string]interface{}{"productId": "p-1", "quantity": 2}, validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	deps.orders.AssertExpectations(t)
}

// ==================== Advertisements ====================

func TestDeleteAdvertisement(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	t.Run("deleted", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.ads.On("Delete", mock.Anything, id).Return(nil)

		rec := doRequest(router, http.MethodDelete, "/myAdvertisements/"+id, nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Advertisement deleted successfully"}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.ads.On("Delete", mock.Anything, id).Return(service.ErrAdvertisementNotFound)

		rec := doRequest(router, http.MethodDelete, "/myAdvertisements/"+id, nil, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Advertisement not found"}`, rec.Body.String())
	})
}

func TestUpdateAdvertisement_PartialPatch(t *testing.T) {
	router, deps := newTestRouter()
	id := primitive.NewObjectID().Hex()
	deps.ads.On("Update", mock.Anything, id, mock.MatchedBy(func(req *entity.UpdateAdvertisementRequest) bool {
		return req.Title != nil && *req.Title == "Mango season" && req.Description == nil && req.Image == nil
	})).Return(&entity.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	rec := doRequest(router, http.MethodPatch, "/myAdvertisements/"+id, map[string]string{"title": "Mango season"}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	deps.ads.AssertExpectations(t)
}

// ==================== Payments ====================

func TestCreatePaymentIntent(t *testing.T) {
	t.Run("string amount is accepted", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.payments.On("CreatePaymentIntent", mock.Anything, 25.5).Return("pi_secret", nil)

		rec := doRequest(router, http.MethodPost, "/create-payment-intent", `{"amount":"25.5"}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"clientSecret":"pi_secret"}`, rec.Body.String())
	})

	t.Run("zero amount", func(t *testing.T) {
		router, deps := newTestRouter()

		rec := doRequest(router, http.MethodPost, "/create-payment-intent", `{"amount":0}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, deps.payments.Calls)
	})

	t.Run("non-finite amount", func(t *testing.T) {
		for _, body := range []string{`{"amount":"Infinity"}`, `{"amount":"NaN"}`, `{"amount":"-Inf"}`} {
			router, deps := newTestRouter()

			rec := doRequest(router, http.MethodPost, "/create-payment-intent", body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Empty(t, deps.payments.Calls, body)
		}
	})

	t.Run("gateway failure passes message through", func(t *testing.T) {
		router, deps := newTestRouter()
		deps.payments.On("CreatePaymentIntent", mock.Anything, 0.1).
			Return("", errors.New("Amount must be at least $0.50 usd"))

		rec := doRequest(router, http.MethodPost, "/create-payment-intent", `{"amount":0.1}`, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Amount must be at least $0.50 usd", decodeBody(t, rec)["message"])
	})
}

// ==================== Misc ====================

func TestHealth(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "marketplace-service", decodeBody(t, rec)["service"])
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, http.MethodGet, "/nope", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
