package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/service"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/utils"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		h.writeError(w, r, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := request.Validate(); err != nil {
		log.Warn().Err(err).Msg("registration request failed validation")
		h.writeError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Warn().Err(err).Msg(msgInvalidData)
			h.writeError(w, r, msgInvalidData, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrLoginAlreadyExists):
			log.Warn().Err(err).Msg("login already exists")
			h.writeError(w, r, msgLoginAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Data: models.RegisterData{
			ID:       registeredUser.UserID,
			Nome:     registeredUser.Name,
			Login:    registeredUser.Login,
			CriadoEm: registeredUser.CreatedAt.UTC().Format(time.RFC3339),
		},
		Message:  "Usuário criado com sucesso",
		Metadata: h.metadata(r),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		h.writeError(w, r, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := request.Validate(); err != nil {
		log.Warn().Err(err).Msg("login request failed validation")
		h.writeError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Warn().Err(err).Msg(msgInvalidData)
			h.writeError(w, r, msgInvalidData, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUserNotFound):
			log.Warn().Err(err).Msg("login failed")
			h.writeError(w, r, msgUserNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			h.writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	metadata := h.metadata(r)
	metadata.UserID = foundUser.UserID

	utils.WriteJSON(w, models.LoginResponse{
		Data:     models.LoginData{AccessToken: token.SignedString},
		Message:  "Login realizado com sucesso",
		Metadata: metadata,
	}, http.StatusOK)
}
