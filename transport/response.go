package transport

import (
	"encoding/json"
	"net/http"

	"github.com/agrocoop/distribution/constant"
	"github.com/agrocoop/distribution/utils/errors"
)

type responseEnvelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(responseEnvelope{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	ce, ok := err.(errors.CustomError)
	if !ok {
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ce.ErrorHTTPCode())

	_ = json.NewEncoder(w).Encode(responseEnvelope{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}
