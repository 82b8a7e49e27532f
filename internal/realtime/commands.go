package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"studio-console/internal/models"
)

type sceneRequest struct {
	SceneName string `json:"scene_name"`
}

type toggleRequest struct {
	SceneName  string `json:"scene_name"`
	SourceName string `json:"source_name"`
	Visible    bool   `json:"visible"`
}

type indexRequest struct {
	SceneName  string `json:"scene_name"`
	SourceName string `json:"source_name"`
	ToTop      bool   `json:"to_top"`
}

type volumeRequest struct {
	InputName     string  `json:"inputName"`
	InputVolumeDb float64 `json:"inputVolumeDb"`
}

type volumeReply struct {
	SourceName string  `json:"source_name"`
	VolumeDB   float64 `json:"volume_db"`
}

// GetSources lists the items of scene in engine order
func (c *Client) GetSources(ctx context.Context, scene string) (*models.SceneSources, error) {
	data, err := c.Call(ctx, "get_sources", scene)
	if err != nil {
		return nil, err
	}
	var out models.SceneSources
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("get_sources: malformed reply: %w", err)
	}
	return &out, nil
}

// SyncSourceOrder pushes the stored order of scene into the engine
func (c *Client) SyncSourceOrder(ctx context.Context, scene string) error {
	_, err := c.Call(ctx, "sync_source_order", sceneRequest{SceneName: scene})
	return err
}

// SaveSourceOrder stores the engine's current order of scene
func (c *Client) SaveSourceOrder(ctx context.Context, scene string) error {
	_, err := c.Call(ctx, "save_source_order", sceneRequest{SceneName: scene})
	return err
}

func (c *Client) ToggleSource(ctx context.Context, scene, source string, visible bool) error {
	_, err := c.Call(ctx, "toggle_source", toggleRequest{SceneName: scene, SourceName: source, Visible: visible})
	return err
}

func (c *Client) SetCurrentScene(ctx context.Context, scene string) error {
	_, err := c.Call(ctx, "set_current_scene", sceneRequest{SceneName: scene})
	return err
}

func (c *Client) SetSourceIndex(ctx context.Context, scene, source string, toTop bool) error {
	_, err := c.Call(ctx, "set_source_index", indexRequest{SceneName: scene, SourceName: source, ToTop: toTop})
	return err
}

func (c *Client) MuteAllMicrophones(ctx context.Context) error {
	_, err := c.Call(ctx, "mute_all_microphones", struct{}{})
	return err
}

func (c *Client) RestoreMicrophones(ctx context.Context) error {
	_, err := c.Call(ctx, "restore_microphones", struct{}{})
	return err
}

func (c *Client) SetInputVolume(ctx context.Context, source string, db float64) error {
	_, err := c.Call(ctx, "set_input_volume", volumeRequest{InputName: source, InputVolumeDb: db})
	return err
}

// GetInputVolume reads the current level of source in dB
func (c *Client) GetInputVolume(ctx context.Context, source string) (float64, error) {
	data, err := c.Call(ctx, "get_input_volume", source)
	if err != nil {
		return 0, err
	}
	var out volumeReply
	if err := json.Unmarshal(data, &out); err != nil {
		return 0, fmt.Errorf("get_input_volume: malformed reply: %w", err)
	}
	return out.VolumeDB, nil
}

// SendToOverlay relays msg to every overlay renderer
func (c *Client) SendToOverlay(ctx context.Context, msg map[string]interface{}) error {
	_, err := c.Call(ctx, "send_to_overlay", msg)
	return err
}
