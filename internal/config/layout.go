package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MicrophonePolicy is what happens to the microphone bus when a main
// scene goes on air.
type MicrophonePolicy string

const (
	MicrophoneNone    MicrophonePolicy = "none"
	MicrophoneMuteAll MicrophonePolicy = "mute_all"
	MicrophoneRestore MicrophonePolicy = "restore"
)

// SceneLayout describes how the scene engine's scenes are composed
type SceneLayout struct {
	// ProgramScene is made current before a main source goes on air
	ProgramScene string `yaml:"program_scene"`
	// ScreenScene nests the main scenes; the top one is what viewers see
	ScreenScene     string                      `yaml:"screen_scene"`
	MainScenes      []string                    `yaml:"main_scenes"`
	AuxScenes       []string                    `yaml:"aux_scenes"`
	MicrophoneScene string                      `yaml:"microphone_scene"`
	AudioScenes     []string                    `yaml:"audio_scenes"`
	Microphones     map[string]MicrophonePolicy `yaml:"microphone_policy"`
}

// DefaultSceneLayout returns the layout used by the studio when no file is given
func DefaultSceneLayout() *SceneLayout {
	return &SceneLayout{
		ProgramScene:    "STREAM",
		ScreenScene:     "SCREEN",
		MainScenes:      []string{"KAMERY", "MEDIA", "REPORTAZE"},
		AuxScenes:       []string{"MIKROFONY", "MUZYKA"},
		MicrophoneScene: "MIKROFONY",
		AudioScenes:     []string{"MIKROFONY", "MUZYKA"},
		Microphones: map[string]MicrophonePolicy{
			"KAMERY":    MicrophoneRestore,
			"REPORTAZE": MicrophoneMuteAll,
		},
	}
}

// LoadSceneLayout reads a layout file; an empty path yields the default layout
func LoadSceneLayout(path string) (*SceneLayout, error) {
	if path == "" {
		return DefaultSceneLayout(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading scene layout: %w", err)
	}

	layout := DefaultSceneLayout()
	if err := yaml.Unmarshal(data, layout); err != nil {
		return nil, fmt.Errorf("error parsing scene layout: %w", err)
	}

	if err := layout.validate(); err != nil {
		return nil, fmt.Errorf("scene layout validation failed: %w", err)
	}
	return layout, nil
}

func (l *SceneLayout) validate() error {
	if l.ProgramScene == "" {
		return fmt.Errorf("program_scene is required")
	}
	if l.ScreenScene == "" {
		return fmt.Errorf("screen_scene is required")
	}
	if len(l.MainScenes) == 0 {
		return fmt.Errorf("at least one main scene is required")
	}
	for scene, policy := range l.Microphones {
		switch policy {
		case MicrophoneNone, MicrophoneMuteAll, MicrophoneRestore:
		default:
			return fmt.Errorf("unknown microphone policy %q for scene %s", policy, scene)
		}
	}
	return nil
}

// IsMainScene reports whether scene holds mutually exclusive main sources
func (l *SceneLayout) IsMainScene(scene string) bool {
	for _, s := range l.MainScenes {
		if s == scene {
			return true
		}
	}
	return false
}

// IsAudioScene reports whether sources of scene carry volume controls
func (l *SceneLayout) IsAudioScene(scene string) bool {
	for _, s := range l.AudioScenes {
		if s == scene {
			return true
		}
	}
	return false
}

// MicrophonePolicyFor returns the policy applied when scene goes on air
func (l *SceneLayout) MicrophonePolicyFor(scene string) MicrophonePolicy {
	if policy, ok := l.Microphones[scene]; ok {
		return policy
	}
	return MicrophoneNone
}

// AllScenes lists main scenes followed by auxiliary scenes
func (l *SceneLayout) AllScenes() []string {
	scenes := make([]string, 0, len(l.MainScenes)+len(l.AuxScenes))
	scenes = append(scenes, l.MainScenes...)
	return append(scenes, l.AuxScenes...)
}
