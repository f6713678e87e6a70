package profiles

import (
	"context"
	"net/http"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/dto"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/respond"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/utils"
)

//go:generate mockgen -source=profiles.go -destination=mock_profiles.go -package=profiles

type Service interface {
	BecomeSeller(ctx context.Context, p domain.Principal, profile *domain.Profile) (*domain.Profile, error)
	GetProfile(ctx context.Context, userID int) (*domain.Profile, error)
}

type TokenIssuer interface {
	GenerateToken(userID int, role string) (string, error)
}

type ProfileHandler struct {
	profileService Service
	tokens         TokenIssuer
}

func New(profileService Service, tokens TokenIssuer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, tokens: tokens}
}

// BecomeSeller godoc
//
//	@Summary		Become a seller
//	@Description	Creates or updates the caller's seller profile and returns a token carrying the seller role.
//	@Tags			Profiles
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.SellerProfileRequestDTO	true	"Profile"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SellerProfileResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid profile"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/seller/profile [post]
func (h *ProfileHandler) BecomeSeller(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var req dto.SellerProfileRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}
	profile, err := h.profileService.BecomeSeller(r.Context(), p, &domain.Profile{
		Bio:        req.Bio,
		Skills:     req.Skills,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}
	token, err := h.tokens.GenerateToken(p.UserID, domain.RoleSeller)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.SellerProfileResponseDTO{Profile: profile, Token: token})
}

// GetMyProfile godoc
//
//	@Summary	Own seller profile
//	@Tags		Profiles
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Profile
//	@Failure	404	{object}	utils.Response	"Profile not found"
//	@Router		/api/seller/profile [get]
func (h *ProfileHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	h.writeProfile(w, r, p.UserID)
}

// GetSellerProfile godoc
//
//	@Summary	Public seller profile
//	@Tags		Profiles
//	@Produce	json
//	@Param		id	path	int	true	"Seller user ID"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Profile
//	@Failure	404	{object}	utils.Response	"Profile not found"
//	@Router		/api/sellers/{id}/profile [get]
func (h *ProfileHandler) GetSellerProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	h.writeProfile(w, r, id)
}

func (h *ProfileHandler) writeProfile(w http.ResponseWriter, r *http.Request, userID int) {
	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}
