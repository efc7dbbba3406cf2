//go:build !ebiten

package ui

import "meadow/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// ChangeFunc is called after the HUD changed a parameter.
type ChangeFunc func(key string)

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// OnChange is a no-op in the headless build.
func (h *HUD) OnChange(ChangeFunc) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
