//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"limited-drop-api/internal/handler/api"
	reqdto "limited-drop-api/internal/handler/dto/request"
	resdto "limited-drop-api/internal/handler/dto/response"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/queries"
	"limited-drop-api/tests/common/httptest"
	commandsmock "limited-drop-api/tests/mock/commands"
	queriesmock "limited-drop-api/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockOwnerTags *commandsmock.MockOwnerTagCommands
	mockSettings  *commandsmock.MockSettingsCommands
	mockSettingsQ *queriesmock.MockSettingsQueries
	mockCart      *commandsmock.MockCartCommands
	mockCartQ     *queriesmock.MockCartQueries
	userID        uuid.UUID
}

func (s *AccountHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOwnerTags = commandsmock.NewMockOwnerTagCommands(s.mockCtrl)
	s.mockSettings = commandsmock.NewMockSettingsCommands(s.mockCtrl)
	s.mockSettingsQ = queriesmock.NewMockSettingsQueries(s.mockCtrl)
	s.mockCart = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockCartQ = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.userID = uuid.New()

	account := api.NewAccountHandler(s.mockOwnerTags, s.mockSettings, s.mockSettingsQ)
	cart := api.NewCartHandler(s.mockCart, s.mockCartQ)
	auth := fakeAuth(s.userID)

	s.router.POST("/api/me/owner-tag", auth, account.AssignOwnerTag)
	s.router.GET("/api/verify", account.VerifyOwner)
	s.router.GET("/api/settings/contact", account.Contact)
	s.router.PUT("/api/settings/contact", auth, account.UpdateContact)
	s.router.GET("/api/cart", auth, cart.Get)
	s.router.DELETE("/api/cart", auth, cart.Clear)
	s.router.POST("/api/cart/items", auth, cart.AddItem)
	s.router.DELETE("/api/cart/items/:id", auth, cart.RemoveItem)
}

func (s *AccountHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) TestOwnerTag() {
	s.Run("assign: 201", func() {
		s.mockOwnerTags.EXPECT().Assign(gomock.Any(), s.userID).Return("ADB-23-78", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/me/owner-tag", nil, "customer-token")

		var got resdto.OwnerTagResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal("ADB-23-78", got.OwnerTag)
	})

	s.Run("assign twice: 409", func() {
		s.mockOwnerTags.EXPECT().Assign(gomock.Any(), s.userID).Return("", errs.ErrOwnerTagAssigned)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/me/owner-tag", nil, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already has an owner tag")
	})

	s.Run("verify", func() {
		registered := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
		s.mockSettingsQ.EXPECT().VerifyOwner(gomock.Any(), "adb-23-78").Return(&queries.OwnerVerificationView{
			OwnerTag: "ADB-23-78", OwnerName: "Adaeze Bakare", RegisteredDate: registered, Verified: true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/verify?tag=adb-23-78", nil, "")

		var got resdto.OwnerVerificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Verified)
		s.Equal("Adaeze Bakare", got.OwnerName)
	})

	s.Run("verify malformed tag: 400", func() {
		s.mockSettingsQ.EXPECT().VerifyOwner(gomock.Any(), "nope").
			Return(nil, errs.Mark(errors.New("invalid owner tag format"), errs.ErrDomainValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/verify?tag=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid owner tag format")
	})

	s.Run("verify unknown tag: 404", func() {
		s.mockSettingsQ.EXPECT().VerifyOwner(gomock.Any(), "ZZ-00-00").Return(nil, errs.ErrOwnerTagNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/verify?tag=ZZ-00-00", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "owner tag not found")
	})
}

func (s *AccountHandlerTestSuite) TestContactSettings() {
	s.Run("get", func() {
		s.mockSettingsQ.EXPECT().Contact(gomock.Any()).Return(&queries.ContactSettingsView{WhatsAppNumber: "+2348000000000"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/settings/contact", nil, "")

		var got resdto.ContactSettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("+2348000000000", got.WhatsAppNumber)
	})

	s.Run("update", func() {
		s.mockSettings.EXPECT().UpdateContact(gomock.Any(), "+2348011112222").Return("+2348011112222", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/settings/contact",
			reqdto.UpdateContactRequest{WhatsAppNumber: "+2348011112222"}, "admin-token")

		var got resdto.ContactSettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("+2348011112222", got.WhatsAppNumber)
	})

	s.Run("update rejects local numbers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/settings/contact",
			reqdto.UpdateContactRequest{WhatsAppNumber: "08011112222"}, "admin-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AccountHandlerTestSuite) TestCart() {
	item := queries.CartItemView{ID: uuid.New(), ProductID: uuid.New(), VariantRef: "indigo", Quantity: 2, PriceSnapshot: 45000, LineTotal: 90000}

	s.Run("empty cart renders an empty list", func() {
		s.mockCartQ.EXPECT().Get(gomock.Any(), s.userID).Return(&queries.CartView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "customer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[],"subtotal":0}`, rec.Body.String())
	})

	s.Run("add item re-renders the cart", func() {
		body := reqdto.AddCartItemRequest{ProductID: item.ProductID, VariantRef: "indigo", Quantity: 2}
		gomock.InOrder(
			s.mockCart.EXPECT().AddItem(gomock.Any(), body.ToCommand(), s.userID).Return(item.ID, nil),
			s.mockCartQ.EXPECT().Get(gomock.Any(), s.userID).Return(&queries.CartView{Items: []queries.CartItemView{item}, Subtotal: 90000}, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/cart/items", body, "customer-token")

		var got resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got.Items, 1)
		s.Equal(int64(90000), got.Subtotal)
	})

	s.Run("add item beyond stock: 409", func() {
		s.mockCart.EXPECT().AddItem(gomock.Any(), gomock.Any(), s.userID).Return(uuid.Nil, errs.InsufficientStock(1))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/cart/items",
			reqdto.AddCartItemRequest{ProductID: item.ProductID, Quantity: 2}, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "insufficient stock")
	})

	s.Run("remove someone else's item: 404", func() {
		s.mockCart.EXPECT().RemoveItem(gomock.Any(), item.ID, s.userID).Return(errs.ErrCartItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/items/"+item.ID.String(), nil, "customer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "cart item not found")
	})

	s.Run("clear: 204", func() {
		s.mockCart.EXPECT().Clear(gomock.Any(), s.userID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart", nil, "customer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
