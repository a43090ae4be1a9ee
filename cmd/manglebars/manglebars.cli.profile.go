package main

import (
	"errors"

	"github.com/pkg/profile"
)

// stopper ends a profiling session
type stopper interface {
	Stop()
}

type noopStopper struct{}

func (noopStopper) Stop() {}

var profileModes = map[string]func(*profile.Profile){
	ProfileModeCPU: profile.CPUProfile,
	ProfileModeMem: profile.MemProfile,
}

// validateProfileMode checks a --profile value before any work starts
func validateProfileMode(mode string) error {
	if mode == ProfileModeNone {
		return nil
	}
	if _, ok := profileModes[mode]; !ok {
		return errors.New(ErrMsgInvalidProfileMode)
	}
	return nil
}

// startProfile begins profiling in mode, writing into dir. An empty mode profiles nothing.
func startProfile(mode, dir string, quiet bool) stopper {
	fn, ok := profileModes[mode]
	if !ok {
		return noopStopper{}
	}

	opts := []func(*profile.Profile){fn, profile.NoShutdownHook}
	if dir != "" {
		opts = append(opts, profile.ProfilePath(dir))
	}
	if quiet {
		opts = append(opts, profile.Quiet)
	}
	return profile.Start(opts...)
}
