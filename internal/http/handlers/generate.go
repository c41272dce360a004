package handlers

import (
	"errors"
	"fmt"
	"net/http"

	apierrors "github.com/pribylovaa/orastria/internal/errors"
	"github.com/pribylovaa/orastria/internal/service"
)

// generateRequest — вход POST /generate.
type generateRequest struct {
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`
	BookType   string `json:"book_type"`
	Email      string `json:"email"`
}

// missingField возвращает имя первого отсутствующего обязательного поля.
func (in *generateRequest) missingField() string {
	switch {
	case in.Name == "":
		return "name"
	case in.BirthDate == "":
		return "birth_date"
	case in.BirthTime == "":
		return "birth_time"
	case in.BirthPlace == "":
		return "birth_place"
	}
	return ""
}

type generatePerson struct {
	Name       string `json:"name"`
	SunSign    string `json:"sun_sign"`
	MoonSign   string `json:"moon_sign"`
	RisingSign string `json:"rising_sign"`
}

type generateResponse struct {
	Success     bool           `json:"success"`
	DownloadURL string         `json:"download_url"`
	Person      generatePerson `json:"person"`
	BookType    string         `json:"book_type"`
}

// GenerateBook — POST /generate: полный конвейер генерации книги.
func (h *Handlers) GenerateBook(w http.ResponseWriter, r *http.Request) {
	var in generateRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteValidation(w, r, "Invalid JSON body")
		return
	}

	if f := in.missingField(); f != "" {
		apierrors.WriteValidation(w, r, "Missing required field: "+f)
		return
	}

	result, err := h.svc.GenerateBook(r.Context(), service.GenerateBookInput{
		Name: in.Name,
		Birth: service.BirthInput{
			BirthDate:  in.BirthDate,
			BirthTime:  in.BirthTime,
			BirthPlace: in.BirthPlace,
		},
		BookType: in.BookType,
		Email:    in.Email,
	})
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			apierrors.WriteErrorMessage(w, r, err, fmt.Sprintf("Could not find location: %s", in.BirthPlace))
			return
		}
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Success:     true,
		DownloadURL: result.DownloadURL,
		Person: generatePerson{
			Name:       result.Person.Name,
			SunSign:    result.Person.Chart.SunSign,
			MoonSign:   result.Person.Chart.MoonSign,
			RisingSign: result.Person.Chart.RisingSign,
		},
		BookType: result.BookType,
	})
}
