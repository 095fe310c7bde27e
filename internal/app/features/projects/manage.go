// internal/app/features/projects/manage.go
package projects

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	sysauth "github.com/causewayhq/causeway/internal/app/system/auth"
	"github.com/causewayhq/causeway/internal/app/system/htmlsanitize"
	"github.com/causewayhq/causeway/internal/app/system/httpjson"
	"github.com/causewayhq/causeway/internal/app/system/timeouts"
	"github.com/causewayhq/causeway/internal/app/system/validate"
	"github.com/causewayhq/causeway/internal/domain/models"
)

type projectRequest struct {
	Title       string                `json:"title" validate:"required,min=3,max=200"`
	Description string                `json:"description" validate:"required"`
	Category    string                `json:"category" validate:"required,oneof=education health environment ai community"`
	Status      string                `json:"status" validate:"omitempty,oneof=planning active completed paused"`
	Featured    bool                  `json:"featured"`
	Location    string                `json:"location" validate:"omitempty,max=200"`
	StartDate   *time.Time            `json:"startDate"`
	EndDate     *time.Time            `json:"endDate"`
	Impact      models.ImpactMetrics  `json:"impact"`
	Videos      []models.ProjectVideo `json:"videos"`
	Team        []models.TeamMember   `json:"team"`
	PartnerIDs  []string              `json:"partnerIds"`
}

func (req projectRequest) toModel() (models.Project, []httpjson.FieldError) {
	partnerIDs := make([]primitive.ObjectID, 0, len(req.PartnerIDs))
	for _, raw := range req.PartnerIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return models.Project{}, []httpjson.FieldError{{Field: "partnerIds", Message: "contains an invalid id"}}
		}
		partnerIDs = append(partnerIDs, id)
	}
	return models.Project{
		Title:       req.Title,
		Description: htmlsanitize.Sanitize(req.Description),
		Category:    req.Category,
		Status:      req.Status,
		Featured:    req.Featured,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Impact:      req.Impact,
		Videos:      req.Videos,
		Team:        req.Team,
		PartnerIDs:  partnerIDs,
	}, nil
}

// ServeCreate handles POST /projects.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validate.Struct(req); fields != nil {
		httpjson.ValidationFailed(w, fields)
		return
	}
	project, fields := req.toModel()
	if fields != nil {
		httpjson.ValidationFailed(w, fields)
		return
	}

	if user, ok := sysauth.CurrentUser(r); ok {
		project.CreatedBy = user.ID
		project.UpdatedBy = user.ID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Projects.Create(ctx, project)
	if err != nil {
		h.Log.Error("projects: create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not create project")
		return
	}
	httpjson.Created(w, created)
}

// ServeUpdate handles PUT /projects/{id}.
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req projectRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := validate.Struct(req); fields != nil {
		httpjson.ValidationFailed(w, fields)
		return
	}
	project, fields := req.toModel()
	if fields != nil {
		httpjson.ValidationFailed(w, fields)
		return
	}

	if user, ok := sysauth.CurrentUser(r); ok {
		project.UpdatedBy = user.ID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Projects.Update(ctx, id, project); err != nil {
		h.Log.Error("projects: update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update project")
		return
	}

	updated, err := h.Projects.GetByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpjson.NotFound(w, "project not found")
			return
		}
		h.Log.Error("projects: reload failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not update project")
		return
	}
	httpjson.OK(w, updated)
}

// ServeDelete handles DELETE /projects/{id}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Projects.Delete(ctx, id)
	if err != nil {
		h.Log.Error("projects: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "could not delete project")
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "project not found")
		return
	}
	httpjson.OKMessage(w, "project deleted")
}
