package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/BrandishPet_Go/internal/logger"
	"github.com/osse101/BrandishPet_Go/internal/validation"
)

// ValidationErrorResponse reports which request fields failed validation
type ValidationErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates its `validate` tags.
// If it returns an error, the response has already been written and the handler should return.
//
//	var req BuyRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Buy"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogFmtDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return err
	}
	log.Debug(fmt.Sprintf(LogFmtDecoded, actionName))

	if err := validation.Get().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf(LogFmtInvalid, actionName), "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestError,
			Detail: err.Error(),
		})
		return err
	}
	return nil
}
