package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightbill/models"
	"lightbill/repository"
)

type fakeRentalRepo struct {
	repository.RentalRepository
	created []*models.Rental
	failing bool
}

func (f *fakeRentalRepo) CreateRental(rental *models.Rental) error {
	if f.failing {
		return errors.New("db down")
	}
	rental.ID = "64f2a1b0c9e77a0012345678"
	f.created = append(f.created, rental)
	return nil
}

type fakeClientRepo struct {
	repository.ClientRepository
	client *models.Client
}

func (f *fakeClientRepo) GetClientByName(name string) (*models.Client, error) {
	if f.client != nil && f.client.Name == name {
		return f.client, nil
	}
	return nil, nil
}

type fakeSettingsRepo struct {
	repository.SettingsRepository
}

func (f *fakeSettingsRepo) GetSettings() (*models.Settings, error) {
	return nil, nil
}

type fakeMailer struct {
	sent    int
	lastTo  string
	lastPDF []byte
	err     error
}

func (f *fakeMailer) SendBookingConfirmation(to string, rental *models.Rental, pdf []byte) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	f.lastTo = to
	f.lastPDF = pdf
	return nil
}

func bookingBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"clientName": "Dream Events",
		"doh":        "2024-01-01",
		"dor":        "2024-01-04",
		"transport":  200,
		"items": []map[string]interface{}{
			{"name": "LED Par", "qty": 2, "rate": 500},
			{"name": "Follow Spot", "qty": 1, "rate": 1000},
		},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func postRental(t *testing.T, h *RentalHandler, body *bytes.Buffer) (*httptest.ResponseRecorder, ApiResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/rentals", body)
	rec := httptest.NewRecorder()
	h.CreateRental(rec, req)

	var resp ApiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestCreateRental(t *testing.T) {
	t.Run("saves booking and sends invoice email", func(t *testing.T) {
		repo := &fakeRentalRepo{}
		mailer := &fakeMailer{}
		h := &RentalHandler{
			Repo:         repo,
			ClientRepo:   &fakeClientRepo{client: &models.Client{Name: "Dream Events", Email: "dream@events.in"}},
			SettingsRepo: &fakeSettingsRepo{},
			Mailer:       mailer,
		}

		rec, resp := postRental(t, h, bookingBody(t))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "Booking saved and invoice sent!", resp.Message)

		require.Len(t, repo.created, 1)
		saved := repo.created[0]
		assert.Equal(t, 3, saved.NOD)
		assert.Equal(t, 6000.0, saved.Subtotal)
		assert.Equal(t, 6200.0, saved.GrandTotal)
		assert.Equal(t, 6200.0, saved.Due)
		assert.Equal(t, models.RentalStatusBooked, saved.Status)

		assert.Equal(t, 1, mailer.sent)
		assert.Equal(t, "dream@events.in", mailer.lastTo)
	})

	t.Run("saves without email when client has no address", func(t *testing.T) {
		repo := &fakeRentalRepo{}
		mailer := &fakeMailer{}
		h := &RentalHandler{
			Repo:         repo,
			ClientRepo:   &fakeClientRepo{client: &models.Client{Name: "Dream Events"}},
			SettingsRepo: &fakeSettingsRepo{},
			Mailer:       mailer,
		}

		rec, resp := postRental(t, h, bookingBody(t))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Booking saved!", resp.Message)
		assert.Len(t, repo.created, 1)
		assert.Equal(t, 0, mailer.sent)
	})

	t.Run("saves but warns when email fails", func(t *testing.T) {
		repo := &fakeRentalRepo{}
		h := &RentalHandler{
			Repo:         repo,
			ClientRepo:   &fakeClientRepo{client: &models.Client{Name: "Dream Events", Email: "dream@events.in"}},
			SettingsRepo: &fakeSettingsRepo{},
			Mailer:       &fakeMailer{err: errors.New("smtp timeout")},
		}

		rec, resp := postRental(t, h, bookingBody(t))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, "Booking saved, but failed to send email.", resp.Message)
		assert.Len(t, repo.created, 1, "booking must persist exactly once despite email failure")
	})

	t.Run("rejects missing client name without persisting", func(t *testing.T) {
		repo := &fakeRentalRepo{}
		h := &RentalHandler{Repo: repo}

		body, err := json.Marshal(map[string]interface{}{
			"clientName": "   ",
			"items":      []map[string]interface{}{{"name": "LED Par", "qty": 1, "rate": 500}},
		})
		require.NoError(t, err)

		rec, resp := postRental(t, h, bytes.NewBuffer(body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, resp.Success)
		assert.Equal(t, "Please fill in client name and item details.", resp.Message)
		assert.Empty(t, repo.created)
	})

	t.Run("rejects unnamed line item without persisting", func(t *testing.T) {
		repo := &fakeRentalRepo{}
		h := &RentalHandler{Repo: repo}

		body, err := json.Marshal(map[string]interface{}{
			"clientName": "Dream Events",
			"items":      []map[string]interface{}{{"name": "", "qty": 1, "rate": 500}},
		})
		require.NoError(t, err)

		rec, resp := postRental(t, h, bytes.NewBuffer(body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please fill in client name and item details.", resp.Message)
		assert.Empty(t, repo.created)
	})

	t.Run("returns 500 when persistence fails", func(t *testing.T) {
		h := &RentalHandler{Repo: &fakeRentalRepo{failing: true}}

		rec, resp := postRental(t, h, bookingBody(t))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.False(t, resp.Success)
	})

	t.Run("tolerates malformed numeric fields", func(t *testing.T) {
		repo := &fakeRentalRepo{}
		h := &RentalHandler{Repo: repo}

		body, err := json.Marshal(map[string]interface{}{
			"clientName": "Dream Events",
			"doh":        "2024-01-01",
			"dor":        "2024-01-04",
			"transport":  "not-a-number",
			"items":      []map[string]interface{}{{"name": "LED Par", "qty": "2", "rate": "500"}},
		})
		require.NoError(t, err)

		rec, resp := postRental(t, h, bytes.NewBuffer(body))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, resp.Success)
		require.Len(t, repo.created, 1)
		saved := repo.created[0]
		assert.Equal(t, 3000.0, saved.Subtotal, "quoted numerics parse, junk defaults to zero")
		assert.Equal(t, 3000.0, saved.GrandTotal)
	})
}

func TestUpdateRentalReprices(t *testing.T) {
	repo := &fakeUpdateRepo{}
	h := &RentalHandler{Repo: repo}

	body, err := json.Marshal(map[string]interface{}{
		"clientName": "Dream Events",
		"doh":        "2024-02-01",
		"dor":        "2024-02-03",
		"subtotal":   999999,
		"items":      []map[string]interface{}{{"name": "LED Par", "qty": 4, "rate": 250}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/rentals/abc123", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	h.UpdateRental(rec, req, "abc123")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.updated)
	assert.Equal(t, 2, repo.updated.NOD)
	assert.Equal(t, 2000.0, repo.updated.Subtotal, "stored subtotal is recomputed, not taken from the payload")
}

type fakeUpdateRepo struct {
	repository.RentalRepository
	updated *models.Rental
}

func (f *fakeUpdateRepo) UpdateRental(id string, rental *models.Rental) error {
	f.updated = rental
	return nil
}
