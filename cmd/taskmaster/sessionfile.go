package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"taskmaster/internal/api"
	"taskmaster/internal/auth"
	"taskmaster/internal/model"
)

// The CLI equivalent of the browser's localStorage: only the credential and
// the identity it belongs to are persisted, never task state.
type sessionFile struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

func restoreSession(path string, session *auth.Session) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var stored sessionFile
	if err := json.Unmarshal(data, &stored); err != nil {
		log.WithError(err).Warn("discarding unreadable session file")
		removeSessionFile(path)
		return
	}
	if stored.Token == "" || auth.Expired(stored.Token) {
		removeSessionFile(path)
		return
	}
	session.Establish(&stored.User, stored.Token)
}

func saveSession(path string, creds *api.Credentials) {
	data, err := json.MarshalIndent(sessionFile{Token: creds.Token, User: creds.User}, "", "  ")
	if err != nil {
		log.WithError(err).Warn("could not encode session")
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.WithError(err).Warn("could not create session directory")
		return
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.WithError(err).Warn("could not persist session")
	}
}

func removeSessionFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not remove session file")
	}
}
