package handlers

import (
	"net/http"

	"studio-console/internal/models"
	"studio-console/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ConsoleHandler handles operator requests against the control console
type ConsoleHandler struct {
	console   service.ConsoleInterface
	validator *validator.Validate
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(console service.ConsoleInterface, validator *validator.Validate) *ConsoleHandler {
	return &ConsoleHandler{
		console:   console,
		validator: validator,
	}
}

// SelectEpisodeRequest selects the episode the console works on
type SelectEpisodeRequest struct {
	EpisodeID int64 `json:"episode_id" validate:"gte=0" example:"12"`
}

// EpisodeResponse reports the selected episode
type EpisodeResponse struct {
	EpisodeID int64 `json:"episode_id" example:"12"`
}

// ToggleRequest sets the visibility of one source
type ToggleRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

// AssignRequest binds a source to an entity; a missing id clears it
type AssignRequest struct {
	Kind       models.EntityKind `json:"kind" validate:"required,oneof=media group camera person" example:"camera"`
	ID         *int64            `json:"id,omitempty" example:"2"`
	PersonType models.PersonType `json:"person_type,omitempty" validate:"omitempty,oneof=staff guest" example:"staff"`
}

func (r AssignRequest) ref() models.EntityRef {
	return models.EntityRef{Kind: r.Kind, ID: r.ID, PersonType: r.PersonType}
}

// OpenWorkflowRequest opens the assignment dialog for a source
type OpenWorkflowRequest struct {
	Kind models.EntityKind `json:"kind" validate:"required,oneof=media group camera person" example:"person"`
}

// VolumeRequest moves a fader
type VolumeRequest struct {
	Position *float64 `json:"position" validate:"required,gte=0,lte=100" example:"75"`
}

// SourcesResponse lists a scene's sources top-most first
type SourcesResponse struct {
	Scene      string          `json:"scene_name"`
	Sources    []models.Source `json:"sources"`
	HasChanges bool            `json:"has_changes"`
	OnAir      string          `json:"on_air,omitempty"`
}

func (h *ConsoleHandler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return false
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return false
	}
	return true
}

func (h *ConsoleHandler) sourcesResponse(scene string, sources []models.Source) SourcesResponse {
	resp := SourcesResponse{
		Scene:      scene,
		Sources:    sources,
		HasChanges: h.console.HasUnsavedOrder(scene),
	}
	if onAirScene, onAirSource := h.console.OnAir(); onAirScene == scene {
		resp.OnAir = onAirSource
	}
	return resp
}

// SelectEpisode handles POST /episode
// @Summary Select episode
// @Description Select the episode the console works on; 0 selects the backend's current episode. Reloads assignments and scenes.
// @Tags episode
// @Accept json
// @Produce json
// @Param request body SelectEpisodeRequest true "Episode selection"
// @Success 200 {object} EpisodeResponse "Episode selected"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "No current episode"
// @Failure 502 {object} map[string]interface{} "Backend failure"
// @Router /episode [post]
func (h *ConsoleHandler) SelectEpisode(c *gin.Context) {
	var req SelectEpisodeRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.console.Init(c.Request.Context(), req.EpisodeID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, EpisodeResponse{EpisodeID: h.console.EpisodeID()})
}

// GetEpisode handles GET /episode
// @Summary Selected episode
// @Tags episode
// @Produce json
// @Success 200 {object} EpisodeResponse "Selected episode, 0 when none"
// @Router /episode [get]
func (h *ConsoleHandler) GetEpisode(c *gin.Context) {
	c.JSON(http.StatusOK, EpisodeResponse{EpisodeID: h.console.EpisodeID()})
}

// LeaveEpisode handles DELETE /episode
// @Summary Leave episode
// @Description Drop the episode context and every piece of derived state
// @Tags episode
// @Success 204 "Episode left"
// @Router /episode [delete]
func (h *ConsoleHandler) LeaveEpisode(c *gin.Context) {
	h.console.Teardown()
	c.Status(http.StatusNoContent)
}

// GetSources handles GET /scenes/:scene/sources
// @Summary List scene sources
// @Description Sources of a loaded scene, top-most first
// @Tags scenes
// @Produce json
// @Param scene path string true "Scene name"
// @Success 200 {object} SourcesResponse "Scene sources"
// @Failure 404 {object} map[string]interface{} "Scene not loaded"
// @Router /scenes/{scene}/sources [get]
func (h *ConsoleHandler) GetSources(c *gin.Context) {
	scene := c.Param("scene")
	sources, err := h.console.Sources(scene)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sourcesResponse(scene, sources))
}

// LoadScene handles POST /scenes/:scene/load
// @Summary Reload scene
// @Description Sync the stored order into the engine and fetch the scene again
// @Tags scenes
// @Produce json
// @Param scene path string true "Scene name"
// @Success 200 {object} SourcesResponse "Scene sources"
// @Failure 503 {object} map[string]interface{} "Realtime channel down"
// @Failure 504 {object} map[string]interface{} "Engine did not answer"
// @Router /scenes/{scene}/load [post]
func (h *ConsoleHandler) LoadScene(c *gin.Context) {
	scene := c.Param("scene")
	sources, err := h.console.LoadScene(c.Request.Context(), scene)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sourcesResponse(scene, sources))
}

// SaveOrder handles POST /scenes/:scene/save-order
// @Summary Save source order
// @Tags scenes
// @Param scene path string true "Scene name"
// @Success 204 "Order saved"
// @Failure 504 {object} map[string]interface{} "Engine did not answer"
// @Router /scenes/{scene}/save-order [post]
func (h *ConsoleHandler) SaveOrder(c *gin.Context) {
	if err := h.console.SaveOrder(c.Request.Context(), c.Param("scene")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Switch handles POST /scenes/:scene/sources/:source/switch
// @Summary Put a main source on air
// @Description Show the source, raise it and turn every other main source off
// @Tags scenes
// @Produce json
// @Param scene path string true "Main scene name"
// @Param source path string true "Source name"
// @Success 200 {object} map[string]interface{} "Source on air"
// @Failure 400 {object} map[string]interface{} "Not a main scene"
// @Failure 409 {object} map[string]interface{} "Another switch is running"
// @Failure 504 {object} map[string]interface{} "Engine did not answer"
// @Router /scenes/{scene}/sources/{source}/switch [post]
func (h *ConsoleHandler) Switch(c *gin.Context) {
	scene, source := c.Param("scene"), c.Param("source")
	if err := h.console.Switch(c.Request.Context(), scene, source); err != nil {
		respondError(c, err)
		return
	}
	onAirScene, onAirSource := h.console.OnAir()
	c.JSON(http.StatusOK, gin.H{"scene_name": onAirScene, "on_air": onAirSource})
}

// Toggle handles POST /scenes/:scene/sources/:source/toggle
// @Summary Toggle a source
// @Tags scenes
// @Accept json
// @Param scene path string true "Scene name"
// @Param source path string true "Source name"
// @Param request body ToggleRequest true "Visibility"
// @Success 204 "Visibility set"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /scenes/{scene}/sources/{source}/toggle [post]
func (h *ConsoleHandler) Toggle(c *gin.Context) {
	var req ToggleRequest
	if !h.bind(c, &req) {
		return
	}
	if err := h.console.Toggle(c.Request.Context(), c.Param("scene"), c.Param("source"), *req.Visible); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAssignments handles GET /assignments
// @Summary Source assignments
// @Description Cached assignments of the selected episode, keyed by source name
// @Tags assignments
// @Produce json
// @Success 200 {object} map[string]models.Assignment "Assignments"
// @Router /assignments [get]
func (h *ConsoleHandler) GetAssignments(c *gin.Context) {
	c.JSON(http.StatusOK, h.console.Assignments())
}

// RefreshAssignments handles POST /assignments/refresh
// @Summary Reload assignments
// @Tags assignments
// @Produce json
// @Success 200 {object} map[string]models.Assignment "Assignments"
// @Failure 412 {object} map[string]interface{} "No episode selected"
// @Failure 502 {object} map[string]interface{} "Backend failure"
// @Router /assignments/refresh [post]
func (h *ConsoleHandler) RefreshAssignments(c *gin.Context) {
	if err := h.console.RefreshAssignments(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.console.Assignments())
}

// AutoAssign handles POST /assignments/auto
// @Summary Auto-assign media sources
// @Description Let the backend fill empty media and playlist sources
// @Tags assignments
// @Produce json
// @Success 200 {object} map[string]models.Assignment "Sources the backend assigned"
// @Failure 412 {object} map[string]interface{} "No episode selected"
// @Failure 502 {object} map[string]interface{} "Backend failure"
// @Router /assignments/auto [post]
func (h *ConsoleHandler) AutoAssign(c *gin.Context) {
	out, err := h.console.AutoAssign(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Assign handles POST /sources/:source/assign
// @Summary Assign a source
// @Description Bind a source to an entity without the dialog
// @Tags assignments
// @Accept json
// @Produce json
// @Param source path string true "Source name"
// @Param request body AssignRequest true "Entity"
// @Success 200 {object} models.Assignment "New assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} ConflictResponse "Entity held by another source"
// @Failure 412 {object} map[string]interface{} "No episode selected"
// @Router /sources/{source}/assign [post]
func (h *ConsoleHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if !h.bind(c, &req) {
		return
	}
	a, err := h.console.Assign(c.Request.Context(), c.Param("source"), req.ref())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// OpenWorkflow handles POST /sources/:source/workflow
// @Summary Open assignment dialog
// @Description Target a source and list the entities it may be bound to
// @Tags workflow
// @Accept json
// @Produce json
// @Param source path string true "Source name"
// @Param request body OpenWorkflowRequest true "Entity kind"
// @Success 200 {object} service.WorkflowView "Dialog contents"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 412 {object} map[string]interface{} "No episode selected"
// @Router /sources/{source}/workflow [post]
func (h *ConsoleHandler) OpenWorkflow(c *gin.Context) {
	var req OpenWorkflowRequest
	if !h.bind(c, &req) {
		return
	}
	view, err := h.console.OpenWorkflow(c.Request.Context(), c.Param("source"), req.Kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ChooseInWorkflow handles POST /workflow/choose
// @Summary Choose in assignment dialog
// @Description Bind the dialog's source; the dialog stays open on conflict
// @Tags workflow
// @Accept json
// @Produce json
// @Param request body AssignRequest true "Chosen entity"
// @Success 200 {object} models.Assignment "New assignment"
// @Failure 409 {object} ConflictResponse "Entity held by another source"
// @Failure 412 {object} map[string]interface{} "No dialog open"
// @Router /workflow/choose [post]
func (h *ConsoleHandler) ChooseInWorkflow(c *gin.Context) {
	var req AssignRequest
	if !h.bind(c, &req) {
		return
	}
	a, err := h.console.ChooseInWorkflow(c.Request.Context(), req.ref())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// CloseWorkflow handles DELETE /workflow
// @Summary Close assignment dialog
// @Tags workflow
// @Success 204 "Dialog closed"
// @Router /workflow [delete]
func (h *ConsoleHandler) CloseWorkflow(c *gin.Context) {
	h.console.CloseWorkflow()
	c.Status(http.StatusNoContent)
}

// GetVolume handles GET /volumes/:source
// @Summary Read volume
// @Description Last known level; ?refresh=true asks the engine
// @Tags volumes
// @Produce json
// @Param source path string true "Audio source name"
// @Param refresh query bool false "Ask the engine"
// @Success 200 {object} models.VolumeState "Level"
// @Failure 404 {object} map[string]interface{} "Level unknown"
// @Router /volumes/{source} [get]
func (h *ConsoleHandler) GetVolume(c *gin.Context) {
	source := c.Param("source")
	if c.Query("refresh") == "true" {
		st, err := h.console.RefreshVolume(c.Request.Context(), source)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
		return
	}

	st, ok := h.console.Volume(source)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "volume of " + source + " not known yet"})
		return
	}
	c.JSON(http.StatusOK, st)
}

// SetVolume handles PUT /volumes/:source
// @Summary Move fader
// @Tags volumes
// @Accept json
// @Produce json
// @Param source path string true "Audio source name"
// @Param request body VolumeRequest true "Fader position 0-100"
// @Success 200 {object} models.VolumeState "New level"
// @Failure 400 {object} map[string]interface{} "Invalid position"
// @Failure 504 {object} map[string]interface{} "Engine did not answer, level reverted"
// @Router /volumes/{source} [put]
func (h *ConsoleHandler) SetVolume(c *gin.Context) {
	var req VolumeRequest
	if !h.bind(c, &req) {
		return
	}
	st, err := h.console.SetVolume(c.Request.Context(), c.Param("source"), *req.Position)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
