package handlers

import (
	"errors"
	"fmt"
	"net/http"

	apierrors "github.com/pribylovaa/orastria/internal/errors"
	"github.com/pribylovaa/orastria/internal/models"
	"github.com/pribylovaa/orastria/internal/service"
)

// chartRequest — вход POST /chart.
type chartRequest struct {
	BirthDate  string `json:"birth_date"`
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
}

func (in *chartRequest) missingField() string {
	switch {
	case in.BirthDate == "":
		return "birth_date"
	case in.BirthTime == "":
		return "birth_time"
	case in.BirthPlace == "":
		return "birth_place"
	}
	return ""
}

type chartResponse struct {
	Success  bool            `json:"success"`
	Location models.Location `json:"location"`
	Chart    models.Chart    `json:"chart"`
}

// ResolveChart — POST /chart: геокодинг и расчёт карты без генерации книги.
func (h *Handlers) ResolveChart(w http.ResponseWriter, r *http.Request) {
	var in chartRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteValidation(w, r, "Invalid JSON body")
		return
	}

	if f := in.missingField(); f != "" {
		apierrors.WriteValidation(w, r, "Missing required field: "+f)
		return
	}

	result, err := h.svc.ResolveChart(r.Context(), service.BirthInput{
		BirthDate:  in.BirthDate,
		BirthTime:  in.BirthTime,
		BirthPlace: in.BirthPlace,
	})
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			apierrors.WriteErrorMessage(w, r, err, fmt.Sprintf("Could not find location: %s", in.BirthPlace))
			return
		}
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chartResponse{
		Success:  true,
		Location: result.Location,
		Chart:    result.Chart,
	})
}
