package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "studio-console/internal/errors"
	"studio-console/internal/logger"
	"studio-console/internal/models"
)

// AssignmentClient talks to the production backend's REST API
type AssignmentClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ AssignmentAPI = (*AssignmentClient)(nil)

// NewAssignmentClient creates a client rooted at baseURL (e.g. http://host:8080/api)
func NewAssignmentClient(baseURL string, timeout time.Duration) *AssignmentClient {
	return &AssignmentClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *AssignmentClient) sourceURL(episodeID int64, source, suffix string) string {
	return fmt.Sprintf("%s/episodes/%d/sources/%s/%s", c.baseURL, episodeID, url.PathEscape(source), suffix)
}

// do sends a request and decodes a JSON reply into out (when non-nil)
func (c *AssignmentClient) do(ctx context.Context, op, method, fullURL string, body, out interface{}) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"op":     op,
		"method": method,
	})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debugf("Backend request: url=%s", fullURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Backend request failed: %v", err)
		return apperrors.NewBackendError(op, 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		log.Warnf("Backend rejected request: status=%d, body=%s", resp.StatusCode, string(raw))
		return statusError(op, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Errorf("Failed to decode backend response: %v", err)
		return apperrors.NewBackendError(op, resp.StatusCode, "malformed response: "+err.Error())
	}
	return nil
}

type errorBody struct {
	Error      string `json:"error"`
	AssignedTo string `json:"assigned_to"`
}

func statusError(op string, status int, raw []byte) error {
	var body errorBody
	message := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		message = body.Error
	}

	switch status {
	case http.StatusConflict:
		return &apperrors.ConflictError{Entity: op, Holder: body.AssignedTo}
	case http.StatusNotFound:
		return apperrors.NewNotFoundError(op)
	case http.StatusBadRequest:
		return apperrors.NewValidationError(op, message)
	}
	return apperrors.NewBackendError(op, status, message)
}

// GetCurrentEpisode resolves the episode marked current by the backend
func (c *AssignmentClient) GetCurrentEpisode(ctx context.Context) (*models.Episode, error) {
	var episodes []models.Episode
	if err := c.do(ctx, "current-episode", http.MethodGet, c.baseURL+"/episodes?current=true", nil, &episodes); err != nil {
		return nil, err
	}
	if len(episodes) == 0 {
		return nil, apperrors.ErrEpisodeNotFound
	}
	return &episodes[0], nil
}

// GetAssignments fetches the full assignment snapshot of an episode
func (c *AssignmentClient) GetAssignments(ctx context.Context, episodeID int64) (map[string]models.AssignmentRecord, error) {
	out := make(map[string]models.AssignmentRecord)
	fullURL := fmt.Sprintf("%s/episodes/%d/source-assignments", c.baseURL, episodeID)
	if err := c.do(ctx, "source-assignments", http.MethodGet, fullURL, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type personBody struct {
	PersonID   *int64            `json:"person_id"`
	PersonType models.PersonType `json:"person_type"`
}

// Assign writes one binding; ref.ID nil clears cameras and microphones
func (c *AssignmentClient) Assign(ctx context.Context, episodeID int64, source string, ref models.EntityRef) error {
	switch ref.Kind {
	case models.KindMedia:
		return c.do(ctx, "assign-media", http.MethodPost, c.sourceURL(episodeID, source, "assign-media"),
			map[string]*int64{"media_id": ref.ID}, nil)
	case models.KindGroup:
		return c.do(ctx, "assign-group", http.MethodPost, c.sourceURL(episodeID, source, "assign-group"),
			map[string]*int64{"group_id": ref.ID}, nil)
	case models.KindCamera:
		return c.do(ctx, "assign-camera-type", http.MethodPost, c.sourceURL(episodeID, source, "assign-camera-type"),
			map[string]*int64{"camera_type_id": ref.ID}, nil)
	case models.KindPerson:
		body := personBody{PersonID: ref.ID, PersonType: ref.PersonType}
		if ref.ID == nil {
			body.PersonType = ""
		}
		return c.do(ctx, "assign-microphone-person", http.MethodPost, c.sourceURL(episodeID, source, "assign-microphone-person"),
			body, nil)
	}
	return apperrors.ErrUnknownKind
}

type cameraTypesReply struct {
	CameraTypes []struct {
		ID         int64  `json:"id"`
		Name       string `json:"name"`
		IsSystem   bool   `json:"is_system"`
		IsAssigned bool   `json:"is_assigned"`
		IsCurrent  bool   `json:"is_current"`
		AssignedTo string `json:"assigned_to"`
	} `json:"camera_types"`
}

// CameraTypes lists camera types with their holder in the episode
func (c *AssignmentClient) CameraTypes(ctx context.Context, episodeID int64, source string) ([]models.Candidate, error) {
	var reply cameraTypesReply
	if err := c.do(ctx, "camera-types-list", http.MethodGet, c.sourceURL(episodeID, source, "camera-types-list"), nil, &reply); err != nil {
		return nil, err
	}

	out := make([]models.Candidate, 0, len(reply.CameraTypes))
	for _, t := range reply.CameraTypes {
		out = append(out, models.Candidate{
			ID:         t.ID,
			Kind:       models.KindCamera,
			Name:       t.Name,
			IsSystem:   t.IsSystem,
			IsCurrent:  t.IsCurrent,
			IsAssigned: t.IsAssigned,
			AssignedTo: t.AssignedTo,
		})
	}
	return out, nil
}

type personEntry struct {
	ID                  int64             `json:"id"`
	Type                models.PersonType `json:"type"`
	FirstName           string            `json:"first_name"`
	LastName            string            `json:"last_name"`
	FullName            string            `json:"full_name"`
	IsCurrent           bool              `json:"is_current"`
	AssignedMicrophones []string          `json:"assigned_microphones"`
}

type microphonePeopleReply struct {
	Staff  []personEntry `json:"staff"`
	Guests []personEntry `json:"guests"`
}

// MicrophonePeople lists staff then guests of the episode
func (c *AssignmentClient) MicrophonePeople(ctx context.Context, episodeID int64, source string) ([]models.Candidate, error) {
	var reply microphonePeopleReply
	if err := c.do(ctx, "microphone-people-list", http.MethodGet, c.sourceURL(episodeID, source, "microphone-people-list"), nil, &reply); err != nil {
		return nil, err
	}

	out := make([]models.Candidate, 0, len(reply.Staff)+len(reply.Guests))
	add := func(p personEntry, fallback models.PersonType) {
		personType := p.Type
		if personType == "" {
			personType = fallback
		}
		name := p.FullName
		if name == "" {
			name = strings.TrimSpace(p.FirstName + " " + p.LastName)
		}

		candidate := models.Candidate{
			ID:         p.ID,
			Kind:       models.KindPerson,
			PersonType: personType,
			Name:       name,
			IsCurrent:  p.IsCurrent,
		}
		for _, mic := range p.AssignedMicrophones {
			if mic != source {
				candidate.IsAssigned = true
				candidate.AssignedTo = mic
				break
			}
		}
		out = append(out, candidate)
	}

	for _, p := range reply.Staff {
		add(p, models.PersonStaff)
	}
	for _, p := range reply.Guests {
		add(p, models.PersonGuest)
	}
	return out, nil
}

type mediaListReply struct {
	CurrentMediaID *int64 `json:"current_media_id"`
	Groups         []struct {
		ID         int64  `json:"id"`
		Name       string `json:"name"`
		IsSystem   bool   `json:"is_system"`
		MediaItems []struct {
			ID    int64  `json:"id"`
			Title string `json:"title"`
		} `json:"media_items"`
	} `json:"groups"`
}

// MediaList lists media files grouped as the backend orders them
func (c *AssignmentClient) MediaList(ctx context.Context, episodeID int64, source string) ([]models.Candidate, error) {
	var reply mediaListReply
	if err := c.do(ctx, "media-list", http.MethodGet, c.sourceURL(episodeID, source, "media-list"), nil, &reply); err != nil {
		return nil, err
	}

	var out []models.Candidate
	for _, g := range reply.Groups {
		for _, item := range g.MediaItems {
			out = append(out, models.Candidate{
				ID:        item.ID,
				Kind:      models.KindMedia,
				Name:      item.Title,
				Group:     g.Name,
				IsSystem:  g.IsSystem,
				IsCurrent: reply.CurrentMediaID != nil && *reply.CurrentMediaID == item.ID,
			})
		}
	}
	return out, nil
}

type groupsListReply struct {
	Groups []struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		IsSystem  bool   `json:"is_system"`
		IsCurrent bool   `json:"is_current"`
	} `json:"groups"`
}

// GroupsList lists playlist groups for a media player source
func (c *AssignmentClient) GroupsList(ctx context.Context, episodeID int64, source string) ([]models.Candidate, error) {
	var reply groupsListReply
	if err := c.do(ctx, "groups-list", http.MethodGet, c.sourceURL(episodeID, source, "groups-list"), nil, &reply); err != nil {
		return nil, err
	}

	out := make([]models.Candidate, 0, len(reply.Groups))
	for _, g := range reply.Groups {
		out = append(out, models.Candidate{
			ID:        g.ID,
			Kind:      models.KindGroup,
			Name:      g.Name,
			IsSystem:  g.IsSystem,
			IsCurrent: g.IsCurrent,
		})
	}
	return out, nil
}

// AutoAssignMedia asks the backend to fill empty media sources
func (c *AssignmentClient) AutoAssignMedia(ctx context.Context, episodeID int64) (map[string]models.AutoAssignResult, error) {
	out := make(map[string]models.AutoAssignResult)
	fullURL := fmt.Sprintf("%s/episodes/%d/auto-assign-media-sources", c.baseURL, episodeID)
	if err := c.do(ctx, "auto-assign-media-sources", http.MethodPost, fullURL, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AutoAssignGroups asks the backend to fill empty playlist sources
func (c *AssignmentClient) AutoAssignGroups(ctx context.Context, episodeID int64) (map[string]models.AutoAssignResult, error) {
	out := make(map[string]models.AutoAssignResult)
	fullURL := fmt.Sprintf("%s/episodes/%d/auto-assign-vlc-sources", c.baseURL, episodeID)
	if err := c.do(ctx, "auto-assign-vlc-sources", http.MethodPost, fullURL, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
