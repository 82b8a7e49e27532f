package service

import (
	"context"

	"studio-console/internal/config"
	"studio-console/internal/logger"
)

// MicrophonePolicy mutes or restores the microphone bus when a main scene
// goes on air. Restore brings back the microphones operators had enabled.
type MicrophonePolicy struct {
	engine SceneEngine
	layout *config.SceneLayout
}

// NewMicrophonePolicy creates the policy for layout
func NewMicrophonePolicy(engine SceneEngine, layout *config.SceneLayout) *MicrophonePolicy {
	return &MicrophonePolicy{engine: engine, layout: layout}
}

// Apply runs the policy configured for scene. The result is informational;
// callers never roll back on failure.
func (p *MicrophonePolicy) Apply(ctx context.Context, scene string) error {
	log := logger.WithContext(ctx).WithField("scene", scene)

	switch p.layout.MicrophonePolicyFor(scene) {
	case config.MicrophoneMuteAll:
		log.Debug("Muting all microphones")
		return p.engine.MuteAllMicrophones(ctx)
	case config.MicrophoneRestore:
		log.Debug("Restoring microphones")
		return p.engine.RestoreMicrophones(ctx)
	}
	return nil
}
