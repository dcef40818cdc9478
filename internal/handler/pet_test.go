package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/pet"
)

type MockPetReader struct {
	mock.Mock
}

func (m *MockPetReader) Status(ctx context.Context, entityID string) (pet.Status, error) {
	args := m.Called(ctx, entityID)
	return args.Get(0).(pet.Status), args.Error(1)
}

type staticShop []domain.Item

func (s staticShop) All() []domain.Item { return s }

func routeGetPet(reader PetReader) http.Handler {
	r := chi.NewRouter()
	r.Get("/pets/{id}", HandleGetPet(reader))
	return r
}

func TestHandleGetPet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		reader := &MockPetReader{}
		reader.On("Status", mock.Anything, "alice").Return(pet.Status{
			EntityID:  "alice",
			MoodLabel: "happy",
			Wallet:    domain.Wallet{Balance: 42},
		}, nil)

		req := httptest.NewRequest("GET", "/pets/alice", nil)
		w := httptest.NewRecorder()
		routeGetPet(reader).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data pet.Status `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "alice", body.Data.EntityID)
		assert.Equal(t, 42, body.Data.Wallet.Balance)
		reader.AssertExpectations(t)
	})

	t.Run("Closed Pet", func(t *testing.T) {
		reader := &MockPetReader{}
		reader.On("Status", mock.Anything, "bob").Return(pet.Status{}, domain.ErrPetClosed)

		req := httptest.NewRequest("GET", "/pets/bob", nil)
		w := httptest.NewRecorder()
		routeGetPet(reader).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgPetUnavailableError)
	})
}

func TestHandleGetShop(t *testing.T) {
	shop := staticShop{
		{ID: "kibble", Name: "Kibble", Category: domain.CategoryFood, Price: 10},
		{ID: "red_bow", Name: "Red Bow", Category: domain.CategoryAccessory, Price: 50, Equippable: true},
	}

	req := httptest.NewRequest("GET", "/shop", nil)
	w := httptest.NewRecorder()
	HandleGetShop(shop).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []domain.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "red_bow", body.Data[1].ID)
	assert.True(t, body.Data[1].Equippable)
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"entity id", domain.ErrEntityIDRequired, http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"item not found", fmt.Errorf("%w: wizard_cap", domain.ErrItemNotFound), http.StatusNotFound, ErrMsgItemNotFoundError},
		{"not owned", domain.ErrNotInInventory, http.StatusBadRequest, ErrMsgNotInInventoryError},
		{"funds", domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughCoinsError},
		{"unknown action", domain.ErrUnknownAction, http.StatusBadRequest, ErrMsgUnknownActionError},
		{"cooldown", domain.ErrOnCooldown, http.StatusTooManyRequests, ErrMsgOnCooldownError},
		{"closed", domain.ErrPetClosed, http.StatusServiceUnavailable, ErrMsgPetUnavailableError},
		{"other", assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, msg)
		})
	}
}
