package models

// Source is one composable item inside a scene of the scene engine
type Source struct {
	Scene   string `json:"scene_name"`
	Name    string `json:"source_name"`
	ItemID  int64  `json:"scene_item_id"`
	Index   int    `json:"scene_item_index"`
	Visible bool   `json:"visible"`
	Type    string `json:"source_type,omitempty"`
}

// SceneItem is the engine's wire form of a scene item
type SceneItem struct {
	SceneItemID      float64 `json:"sceneItemId"`
	SceneItemIndex   float64 `json:"sceneItemIndex"`
	SceneItemEnabled bool    `json:"sceneItemEnabled"`
	SourceName       string  `json:"sourceName"`
	SourceType       string  `json:"sourceType"`
}

// ToSource converts a wire scene item
func (i SceneItem) ToSource(scene string) Source {
	return Source{
		Scene:   scene,
		Name:    i.SourceName,
		ItemID:  int64(i.SceneItemID),
		Index:   int(i.SceneItemIndex),
		Visible: i.SceneItemEnabled,
		Type:    i.SourceType,
	}
}

// SceneSources is the payload of a get_sources reply
type SceneSources struct {
	Sources    []SceneItem `json:"sources"`
	HasChanges bool        `json:"has_changes"`
}

// VolumeState is the authoritative level of one audio source
type VolumeState struct {
	Source   string  `json:"source_name"`
	DB       float64 `json:"volume_db"`
	Position float64 `json:"position"`
	Muted    bool    `json:"muted"`
	Label    string  `json:"label"`
}
