package app

import (
	"fmt"
	"log/slog"

	"meadow/internal/growth"
	"meadow/internal/sims/meadow"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	paramsObject   = "growth"
	paramsProperty = "params"
)

// ParamStore persists growth parameters tuned from the HUD in the user's data
// directory. A store without a manager keeps nothing and always yields the
// defaults.
type ParamStore struct {
	mgr *gdata.Manager
	log *slog.Logger
}

// OpenParamStore opens the data directory for appName.
func OpenParamStore(appName string, logger *slog.Logger) (*ParamStore, error) {
	mgr, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open data dir: %w", err)
	}
	return NewParamStore(mgr, logger), nil
}

// NewParamStore wraps an existing manager. mgr may be nil.
func NewParamStore(mgr *gdata.Manager, logger *slog.Logger) *ParamStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParamStore{mgr: mgr, log: logger}
}

// Load returns the saved parameters and whether usable saved data exists.
// When nothing was saved, or the saved data cannot be read, it returns the
// defaults and false; read failures are also reported as an error.
func (s *ParamStore) Load() (growth.Params, bool, error) {
	if s.mgr == nil || !s.mgr.ObjectPropExists(paramsObject, paramsProperty) {
		return growth.DefaultParams(), false, nil
	}
	data, err := s.mgr.LoadObjectProp(paramsObject, paramsProperty)
	if err != nil {
		return growth.DefaultParams(), false, fmt.Errorf("load params: %w", err)
	}
	params := growth.DefaultParams()
	if err := yaml.Unmarshal(data, &params); err != nil {
		return growth.DefaultParams(), false, fmt.Errorf("unmarshal params: %w", err)
	}
	s.log.Info("loaded saved growth parameters")
	return params.Validate(), true, nil
}

// StartupParams picks the parameters a run starts with. Saved parameters
// replace base when present and readable; overrides are applied last, so
// command-line values always win. A read failure keeps base and is returned
// alongside the result.
func StartupParams(base growth.Params, store *ParamStore, overrides map[string]string) (growth.Params, error) {
	params := base
	var loadErr error
	if store != nil {
		saved, ok, err := store.Load()
		if ok {
			params = saved
		}
		loadErr = err
	}
	cfg := meadow.DefaultConfig()
	cfg.Params = params
	return cfg.Apply(overrides).Params, loadErr
}

// Save stores p, replacing any earlier save.
func (s *ParamStore) Save(p growth.Params) error {
	if s.mgr == nil {
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}
	if err := s.mgr.SaveObjectProp(paramsObject, paramsProperty, data); err != nil {
		return fmt.Errorf("save params: %w", err)
	}
	s.log.Debug("saved growth parameters")
	return nil
}
