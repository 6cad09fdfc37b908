package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tahiratravels/backend/internal/auth"
	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/handler"
	"github.com/tahiratravels/backend/internal/middleware"
)

// Test doubles for the handler.*Servicer interfaces.
// Set only the method fields your test needs.

type mockTourServicer struct {
	list           func(ctx context.Context, userID string, filter domain.TourFilter) ([]domain.TourSummary, int64, error)
	details        func(ctx context.Context, id int64, userID string) (domain.TourDetails, error)
	create         func(ctx context.Context, input domain.TourInput, userID string) (domain.Tour, error)
	getForEdit     func(ctx context.Context, id int64, userID string) (domain.TourEditForm, error)
	edit           func(ctx context.Context, id int64, input domain.TourInput, userID string) error
	getForDelete   func(ctx context.Context, id int64, userID string) (domain.TourDeleteView, error)
	delete         func(ctx context.Context, id int64, userID string) error
	save           func(ctx context.Context, tourID int64, userID string) error
	removeFavorite func(ctx context.Context, tourID int64, userID string) error
	favorites      func(ctx context.Context, userID string) ([]domain.FavoriteTour, error)
	isSaved        func(ctx context.Context, tourID int64, userID string) (bool, error)
}

func (m *mockTourServicer) List(ctx context.Context, userID string, f domain.TourFilter) ([]domain.TourSummary, int64, error) {
	return m.list(ctx, userID, f)
}
func (m *mockTourServicer) Details(ctx context.Context, id int64, userID string) (domain.TourDetails, error) {
	return m.details(ctx, id, userID)
}
func (m *mockTourServicer) Create(ctx context.Context, in domain.TourInput, userID string) (domain.Tour, error) {
	return m.create(ctx, in, userID)
}
func (m *mockTourServicer) GetForEdit(ctx context.Context, id int64, userID string) (domain.TourEditForm, error) {
	return m.getForEdit(ctx, id, userID)
}
func (m *mockTourServicer) Edit(ctx context.Context, id int64, in domain.TourInput, userID string) error {
	return m.edit(ctx, id, in, userID)
}
func (m *mockTourServicer) GetForDelete(ctx context.Context, id int64, userID string) (domain.TourDeleteView, error) {
	return m.getForDelete(ctx, id, userID)
}
func (m *mockTourServicer) Delete(ctx context.Context, id int64, userID string) error {
	return m.delete(ctx, id, userID)
}
func (m *mockTourServicer) Save(ctx context.Context, tourID int64, userID string) error {
	return m.save(ctx, tourID, userID)
}
func (m *mockTourServicer) RemoveFavorite(ctx context.Context, tourID int64, userID string) error {
	return m.removeFavorite(ctx, tourID, userID)
}
func (m *mockTourServicer) Favorites(ctx context.Context, userID string) ([]domain.FavoriteTour, error) {
	return m.favorites(ctx, userID)
}
func (m *mockTourServicer) IsSaved(ctx context.Context, tourID int64, userID string) (bool, error) {
	return m.isSaved(ctx, tourID, userID)
}

type mockBookingServicer struct {
	create      func(ctx context.Context, b domain.Booking, userID string) (domain.Booking, error)
	delete      func(ctx context.Context, id int64, userID string) (bool, error)
	listForUser func(ctx context.Context, userID string) ([]domain.Booking, error)
}

func (m *mockBookingServicer) Create(ctx context.Context, b domain.Booking, userID string) (domain.Booking, error) {
	return m.create(ctx, b, userID)
}
func (m *mockBookingServicer) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	return m.delete(ctx, id, userID)
}
func (m *mockBookingServicer) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return m.listForUser(ctx, userID)
}

type mockReviewServicer struct {
	listForTour func(ctx context.Context, tourID int64) ([]domain.ReviewView, error)
	add         func(ctx context.Context, tourID int64, userID, comment string) (domain.Review, error)
	canReview   func(ctx context.Context, tourID int64, userID string) (bool, error)
}

func (m *mockReviewServicer) ListForTour(ctx context.Context, tourID int64) ([]domain.ReviewView, error) {
	return m.listForTour(ctx, tourID)
}
func (m *mockReviewServicer) Add(ctx context.Context, tourID int64, userID, comment string) (domain.Review, error) {
	return m.add(ctx, tourID, userID, comment)
}
func (m *mockReviewServicer) CanReview(ctx context.Context, tourID int64, userID string) (bool, error) {
	return m.canReview(ctx, tourID, userID)
}

type mockGuideServicer struct {
	forTour func(ctx context.Context, tourID int64) (domain.TourGuide, error)
	byID    func(ctx context.Context, id int64) (domain.TourGuide, error)
	add     func(ctx context.Context, g domain.TourGuide) (domain.TourGuide, error)
}

func (m *mockGuideServicer) ForTour(ctx context.Context, tourID int64) (domain.TourGuide, error) {
	return m.forTour(ctx, tourID)
}
func (m *mockGuideServicer) ByID(ctx context.Context, id int64) (domain.TourGuide, error) {
	return m.byID(ctx, id)
}
func (m *mockGuideServicer) Add(ctx context.Context, g domain.TourGuide) (domain.TourGuide, error) {
	return m.add(ctx, g)
}

type mockCategoryServicer struct {
	list func(ctx context.Context) ([]domain.Category, error)
}

func (m *mockCategoryServicer) List(ctx context.Context) ([]domain.Category, error) {
	return m.list(ctx)
}

type mockUserServicer struct {
	managementBoard func(ctx context.Context, callerID string) ([]domain.UserWithRoles, error)
	assignRole      func(ctx context.Context, a domain.RoleAssignment) (bool, error)
}

func (m *mockUserServicer) ManagementBoard(ctx context.Context, callerID string) ([]domain.UserWithRoles, error) {
	return m.managementBoard(ctx, callerID)
}
func (m *mockUserServicer) AssignRole(ctx context.Context, a domain.RoleAssignment) (bool, error) {
	return m.assignRole(ctx, a)
}

type mockAccountServicer struct {
	register func(ctx context.Context, c domain.Credentials) (domain.User, error)
	login    func(ctx context.Context, c domain.Credentials) (string, error)
}

func (m *mockAccountServicer) Register(ctx context.Context, c domain.Credentials) (domain.User, error) {
	return m.register(ctx, c)
}
func (m *mockAccountServicer) Login(ctx context.Context, c domain.Credentials) (string, error) {
	return m.login(ctx, c)
}

// compile-time checks: every mock must satisfy its servicer interface.
var (
	_ handler.TourServicer     = (*mockTourServicer)(nil)
	_ handler.BookingServicer  = (*mockBookingServicer)(nil)
	_ handler.ReviewServicer   = (*mockReviewServicer)(nil)
	_ handler.GuideServicer    = (*mockGuideServicer)(nil)
	_ handler.CategoryServicer = (*mockCategoryServicer)(nil)
	_ handler.UserServicer     = (*mockUserServicer)(nil)
	_ handler.AccountServicer  = (*mockAccountServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

var testTokens = auth.NewTokens("handler-test-secret", time.Hour)

var (
	traveller = auth.Principal{UserID: "user1", UserName: "user1@example.com", Roles: []string{domain.RoleUser}}
	admin     = auth.Principal{UserID: "admin1", UserName: "admin@example.com", Roles: []string{domain.RoleAdmin}}
)

// newHTTPHandler wires a Server with the given mocks behind the authenticator
// and admin redirect, mirroring how main.go wires it in production.
func newHTTPHandler(svc handler.Services) http.Handler {
	srv := handler.NewServer(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h := middleware.NewAdminRedirect(domain.RoleAdmin, "/admin/users")(srv.Routes())
	return middleware.NewAuthenticator(testTokens)(h)
}

// do sends method/path with an optional JSON body as p (nil for anonymous).
func do(t *testing.T, h http.Handler, method, path string, body any, p *auth.Principal) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if p != nil {
		raw, err := testTokens.Issue(*p)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+raw)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
