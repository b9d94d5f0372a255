package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	bValidator "github.com/x-xyz/marketplace/base/validator"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/event"
	mEvent "github.com/x-xyz/marketplace/domain/event/mocks"
	"github.com/x-xyz/marketplace/domain/listing"
	mListing "github.com/x-xyz/marketplace/domain/listing/mocks"
	mDomain "github.com/x-xyz/marketplace/domain/mocks"
	authMiddleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
)

const (
	token    = "token"
	seller   = domain.Address("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")
	assetRef = "0x4b20993bc481177ec7e8f571cecae8a9e22c02db"
)

type handlerSuite struct {
	suite.Suite

	listing *mListing.UseCase
	event   *mEvent.UseCase
	e       *echo.Echo
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.listing = &mListing.UseCase{}
	s.event = &mEvent.UseCase{}
	auth := &mDomain.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, token).Return(seller, nil)

	s.e = echo.New()
	s.e.Validator = bValidator.NewCustomValidator(validator.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(s.e, s.listing, s.event, authMiddleware.New(auth))
}

func (s *handlerSuite) do(method, path, body string) (*httptest.ResponseRecorder, delivery.JsonResponse) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	res := delivery.JsonResponse{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	return rec, res
}

func (s *handlerSuite) TestList() {
	s.listing.On("List", mock.Anything, seller, domain.Address(assetRef), domain.TokenId("5"), uint64(1000)).Return(listing.Id(1), nil).Once()

	rec, res := s.do(http.MethodPost, "/listings", `{"assetRef":"`+assetRef+`","assetId":"5","price":1000}`)
	s.Equal(http.StatusCreated, rec.Code)
	s.Equal(map[string]interface{}{"listingId": float64(1)}, res.Data)

	rec, _ = s.do(http.MethodPost, "/listings", `{"assetRef":"0x01","assetId":"5","price":1000}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	s.listing.On("List", mock.Anything, seller, domain.Address(assetRef), domain.TokenId("6"), uint64(0)).Return(listing.Id(0), domain.ErrInvalidPrice).Once()
	rec, res = s.do(http.MethodPost, "/listings", `{"assetRef":"`+assetRef+`","assetId":"6","price":0}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(delivery.JsonResponseStatusFail, res.Status)
}

func (s *handlerSuite) TestBuy() {
	receipt := &listing.Receipt{ListingId: 1, Price: 1000, Fee: 25, SellerProceeds: 975, Refund: 200}
	s.listing.On("Buy", mock.Anything, seller, listing.Id(1), uint64(1200)).Return(receipt, nil).Once()

	rec, res := s.do(http.MethodPost, "/listings/1/buy", `{"payment":1200}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(float64(200), res.Data.(map[string]interface{})["refund"])

	s.listing.On("Buy", mock.Anything, seller, listing.Id(2), uint64(1)).Return(nil, domain.ErrListingInactive).Once()
	rec, _ = s.do(http.MethodPost, "/listings/2/buy", `{"payment":1}`)
	s.Equal(http.StatusConflict, rec.Code)

	s.listing.On("Buy", mock.Anything, seller, listing.Id(3), uint64(1)).Return(nil, xerrors.Errorf("asset: %w", domain.ErrTransferFailed)).Once()
	rec, _ = s.do(http.MethodPost, "/listings/3/buy", `{"payment":1}`)
	s.Equal(http.StatusBadGateway, rec.Code)

	rec, _ = s.do(http.MethodPost, "/listings/abc/buy", `{"payment":1}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestCancelAndUpdatePrice() {
	s.listing.On("Cancel", mock.Anything, seller, listing.Id(1)).Return(domain.ErrUnauthorized).Once()
	rec, _ := s.do(http.MethodPost, "/listings/1/cancel", "")
	s.Equal(http.StatusForbidden, rec.Code)

	s.listing.On("UpdatePrice", mock.Anything, seller, listing.Id(1), uint64(800)).Return(nil).Once()
	rec, _ = s.do(http.MethodPut, "/listings/1/price", `{"price":800}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestQueries() {
	s.listing.On("ListActive", mock.Anything).Return([]listing.Id{1, 3}, nil).Once()
	rec, res := s.do(http.MethodGet, "/listings/active", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal([]interface{}{float64(1), float64(3)}, res.Data)

	s.listing.On("Get", mock.Anything, listing.Id(9)).Return(nil, domain.ErrNotFound).Once()
	rec, _ = s.do(http.MethodGet, "/listings/9", "")
	s.Equal(http.StatusNotFound, rec.Code)

	s.listing.On("ListingsBySeller", mock.Anything, seller, true).Return([]listing.Id{3}, nil).Once()
	rec, res = s.do(http.MethodGet, "/accounts/"+string(seller)+"/listings?active=true", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal([]interface{}{float64(3)}, res.Data)

	rec, _ = s.do(http.MethodGet, "/accounts/0x01/listings", "")
	s.Equal(http.StatusBadRequest, rec.Code)

	s.event.On("FindAll", mock.Anything, mock.Anything).Return(nil, nil).Once()
	rec, _ = s.do(http.MethodGet, "/listings/1/events", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestEventsPagination() {
	page := mock.MatchedBy(func(opt event.FindAllOptionsFunc) bool {
		opts := event.FindAllOptions{}
		return opt(&opts) == nil && opts.Offset != nil && *opts.Offset == 3 && opts.Limit != nil && *opts.Limit == 2
	})
	s.event.On("FindAll", mock.Anything, mock.Anything, page).Return([]event.Record{}, nil).Once()
	rec, _ := s.do(http.MethodGet, "/listings/1/events?limit=2&offset=3", "")
	s.Equal(http.StatusOK, rec.Code)

	for _, query := range []string{
		"limit=4294967297",
		"limit=-1",
		"limit=2&offset=abc",
		"limit=2&offset=4294967299",
	} {
		rec, _ = s.do(http.MethodGet, "/listings/1/events?"+query, "")
		s.Equal(http.StatusBadRequest, rec.Code, query)
	}
	s.event.AssertNumberOfCalls(s.T(), "FindAll", 1)
}
