package catalog

import (
	"context"
	"net/http"

	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/domain"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/dto"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/internal/handlers/respond"
	"github.com/Arpit-Yadav-12/Freelance-Fuze/pkg/utils"
)

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=catalog

type Service interface {
	CreateService(ctx context.Context, p domain.Principal, service *domain.Service) (*domain.Service, error)
	GetService(ctx context.Context, id int) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListSellerServices(ctx context.Context, p domain.Principal) ([]domain.Service, error)
	UpdateService(ctx context.Context, p domain.Principal, id int, update *domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, p domain.Principal, id int) error
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateService godoc
//
//	@Summary		Publish a service
//	@Description	Seller publishes a service with one or more packages.
//	@Tags			Services
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateServiceRequestDTO	true	"Service"
//	@Security		BearerAuth
//	@Success		201	{object}	domain.Service
//	@Failure		400	{object}	utils.Response	"Invalid service"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not a seller"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/services [post]
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var req dto.CreateServiceRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}

	service := &domain.Service{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Packages:    make([]domain.Package, 0, len(req.Packages)),
	}
	for _, pkg := range req.Packages {
		service.Packages = append(service.Packages, toPackage(0, pkg))
	}

	created, err := h.catalogService.CreateService(r.Context(), p, service)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// GetService godoc
//
//	@Summary	Get a service with its packages
//	@Tags		Services
//	@Produce	json
//	@Param		id	path	int	true	"Service ID"
//	@Security	BearerAuth
//	@Success	200	{object}	domain.Service
//	@Failure	404	{object}	utils.Response	"Service not found"
//	@Router		/api/services/{id} [get]
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	service, err := h.catalogService.GetService(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, service)
}

// ListServices godoc
//
//	@Summary	List services
//	@Tags		Services
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.Service
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/services [get]
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.ListServices(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, services)
}

// ListSellerServices godoc
//
//	@Summary	List the caller's services
//	@Tags		Services
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		domain.Service
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/seller/services [get]
func (h *CatalogHandler) ListSellerServices(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	services, err := h.catalogService.ListSellerServices(r.Context(), p)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, services)
}

// UpdateService godoc
//
//	@Summary		Update a service
//	@Description	Packages with an id are edited, packages without one are added. Packages an order refers to cannot change.
//	@Tags			Services
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int							true	"Service ID"
//	@Param			request	body	dto.UpdateServiceRequestDTO	true	"Service"
//	@Security		BearerAuth
//	@Success		200	{object}	domain.Service
//	@Failure		400	{object}	utils.Response	"Invalid service or package already ordered"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the owner"
//	@Failure		404	{object}	utils.Response	"Service not found"
//	@Router			/api/services/{id} [put]
func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdateServiceRequestDTO
	if !respond.Decode(w, r, &req) {
		return
	}

	update := &domain.Service{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Packages:    make([]domain.Package, 0, len(req.Packages)),
	}
	for _, pkg := range req.Packages {
		update.Packages = append(update.Packages, toPackage(pkg.ID, pkg.PackageRequestDTO))
	}

	updated, err := h.catalogService.UpdateService(r.Context(), p, id, update)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DeleteService godoc
//
//	@Summary	Delete a service
//	@Tags		Services
//	@Param		id	path	int	true	"Service ID"
//	@Security	BearerAuth
//	@Success	204
//	@Failure	400	{object}	utils.Response	"Service has orders"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Not the owner"
//	@Failure	404	{object}	utils.Response	"Service not found"
//	@Router		/api/services/{id} [delete]
func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	p, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	id, ok := respond.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteService(r.Context(), p, id); err != nil {
		respond.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toPackage(id int, pkg dto.PackageRequestDTO) domain.Package {
	return domain.Package{
		ID:           id,
		Name:         pkg.Name,
		Description:  pkg.Description,
		Price:        pkg.Price,
		DeliveryDays: pkg.DeliveryDays,
		Features:     pkg.Features,
	}
}
