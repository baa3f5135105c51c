package tui

import "github.com/ghtyrant/sinfonia-server/internal/domain"

type serverStatus struct {
	Playing       bool     `json:"playing"`
	ThemeLoaded   bool     `json:"theme_loaded"`
	SoundsPlaying []string `json:"sounds_playing"`
}

type statusLoadedMsg struct {
	status serverStatus
	err    error
}

type libraryLoadedMsg struct {
	sounds []string
	err    error
}

type callDoneMsg struct {
	cmd domain.Command
	res domain.CallResult
	err error
}
