package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/logger"
	"github.com/osse101/BrandishPet_Go/internal/pet"
)

// PetReader resolves the current status of a pet
type PetReader interface {
	Status(ctx context.Context, entityID string) (pet.Status, error)
}

// PetService reads and changes pets
type PetService interface {
	PetReader
	Act(ctx context.Context, entityID string, action domain.Action) (*pet.ActionOutcome, error)
	Buy(ctx context.Context, entityID, itemID string) (*domain.InventoryItem, error)
	Use(ctx context.Context, entityID, itemID string) (domain.StatDeltas, error)
	Equip(ctx context.Context, entityID, itemID string, equipped bool) error
	ClaimDaily(ctx context.Context, entityID string) (int, error)
	AddCoins(ctx context.Context, entityID string, amount int, source string) (int, error)
	UnlockPremium(ctx context.Context, entityID, feature string) (bool, error)
	Unlocks(ctx context.Context, entityID, name string) (pet.Unlocks, error)
}

// ShopLister lists the items the shop sells
type ShopLister interface {
	All() []domain.Item
}

// HandleGetPet returns the status of the pet named by the {id} path parameter
func HandleGetPet(pets PetReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		ctx := logger.WithEntityID(r.Context(), id)

		status, err := pets.Status(ctx, id)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgPetStatusError, "error", err)
			code, msg := mapServiceErrorToUserMessage(err)
			respondError(w, code, msg)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: status})
	}
}

// HandleGetShop lists the shop catalog
func HandleGetShop(shop ShopLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: shop.All()})
	}
}

// ActionRequest names a care action
type ActionRequest struct {
	Action string `json:"action" validate:"required,max=32"`
}

// ItemRequest names a shop item
type ItemRequest struct {
	ItemID string `json:"itemId" validate:"required,max=64"`
}

// EquipRequest sets the equipped flag of an owned item
type EquipRequest struct {
	ItemID   string `json:"itemId" validate:"required,max=64"`
	Equipped *bool  `json:"equipped" validate:"required"`
}

// CoinsRequest credits coins from an external source
type CoinsRequest struct {
	Amount int    `json:"amount" validate:"required,min=1"`
	Source string `json:"source" validate:"required,max=64"`
}

// PremiumRequest grants a feature outside the stage table
type PremiumRequest struct {
	Feature string `json:"feature" validate:"required,max=64"`
}

// ClaimResponse reports a daily claim; Reward is 0 while the claim is on cooldown
type ClaimResponse struct {
	Reward int `json:"reward"`
}

// BalanceResponse reports the balance after a credit
type BalanceResponse struct {
	Balance int `json:"balance"`
}

// PremiumResponse reports whether a premium grant was new
type PremiumResponse struct {
	Feature string `json:"feature"`
	Added   bool   `json:"added"`
}

// HandleAct performs the care action in the request body
func HandleAct(pets PetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, id := petContext(r)
		var req ActionRequest
		if err := DecodeAndValidateRequest(r.WithContext(ctx), w, &req, "Act"); err != nil {
			return
		}

		out, err := pets.Act(ctx, id, domain.Action(strings.ToLower(req.Action)))
		if err != nil {
			respondServiceError(ctx, w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: out.Message, Data: out})
	}
}

// HandleBuy buys one unit of the item in the request body
func HandleBuy(pets PetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, id := petContext(r)
		var req ItemRequest
		if err := DecodeAndValidateRequest(r.WithContext(ctx), w, &req, "Buy"); err != nil {
			return
		}

		stack, err := pets.Buy(ctx, id, req.ItemID)
		if err != nil {
			respondServiceError(ctx, w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: stack})
	}
}

// HandleUse consumes one unit of the item in the request body and returns the stat changes
func HandleUse(pets PetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, id := petContext(r)
		var req ItemRequest
		if err := DecodeAndValidateRequest(r.WithContext(ctx), w, &req, "Use"); err != nil {
			return
		}

		applied, err := pets.Use(ctx, id, req.ItemID)
		if err != nil {
			respondServiceError(ctx, w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: applied})
	}
}

// HandleEquip equips or unequips the item in the request body
func HandleEquip(pets PetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, id := petContext(r)
		var req EquipRequest
		if err := DecodeAndValidateRequest(r.WithContext(ctx), w, &req, "Equip"); err != nil {
			return
		}

		if err := pets.Equip(ctx, id, req.ItemID, *req.Equipped); err != nil {
			respondServiceError(ctx, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleClaimDaily claims the daily coin reward
func HandleClaimDaily(pets PetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, id := petContext(r)

		reward, err := pets.ClaimDaily(ctx, id)
		if err != nil {
			respondServiceError(ctx, w, err)
			return
		}
		resp := DataResponse{Data: ClaimResponse{Reward: reward}}
		if reward == 0 {
			resp.Message = ErrMsgOnCooldownError
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleAddCoins credits coins from the source in the request body
func HandleAddCoins(pets PetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, id := petContext(r)
		var req CoinsRequest
		if err := DecodeAndValidateRequest(r.WithContext(ctx), w, &req, "Add coins"); err != nil {
			return
		}

		balance, err := pets.AddCoins(ctx, id, req.Amount, req.Source)
		if err != nil {
			respondServiceError(ctx, w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: BalanceResponse{Balance: balance}})
	}
}

// HandleUnlockPremium grants the feature in the request body
func HandleUnlockPremium(pets PetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, id := petContext(r)
		var req PremiumRequest
		if err := DecodeAndValidateRequest(r.WithContext(ctx), w, &req, "Unlock premium"); err != nil {
			return
		}

		added, err := pets.UnlockPremium(ctx, id, req.Feature)
		if err != nil {
			respondServiceError(ctx, w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: PremiumResponse{Feature: req.Feature, Added: added}})
	}
}

// HandleGetUnlock reports whether the {name} path parameter is an unlocked feature or room
func HandleGetUnlock(pets PetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, id := petContext(r)

		u, err := pets.Unlocks(ctx, id, chi.URLParam(r, "name"))
		if err != nil {
			respondServiceError(ctx, w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: u})
	}
}

func petContext(r *http.Request) (context.Context, string) {
	id := chi.URLParam(r, "id")
	return logger.WithEntityID(r.Context(), id), id
}

func respondServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	logger.FromContext(ctx).Warn(LogMsgPetUpdateError, "error", err)
	code, msg := mapServiceErrorToUserMessage(err)
	respondError(w, code, msg)
}
