// Package vision provides clients for the face-descriptor and
// text-recognition inference services. Model weights live in the
// inference sidecar; this package only speaks its request/response
// contract, and initializes its shared session state exactly once.
package vision

import (
	"net/http"
	"sync"
	"time"

	"gravity/config"
)

const (
	defaultTimeout = 30 * time.Second

	// DefaultMatchThreshold is the descriptor distance below which two
	// faces count as the same person.
	DefaultMatchThreshold = 0.6
)

// session holds the process-wide client state shared by the face and
// OCR clients. It is built exactly once and read-only afterwards.
type session struct {
	httpClient *http.Client
}

var (
	sessionOnce   sync.Once
	sharedSession *session
)

func getSession(timeout time.Duration) *session {
	sessionOnce.Do(func() {
		if timeout == 0 {
			timeout = defaultTimeout
		}
		sharedSession = &session{
			httpClient: &http.Client{Timeout: timeout},
		}
	})

	return sharedSession
}

func visionTimeout(cfg *config.Config) time.Duration {
	if cfg.Vision != nil && cfg.Vision.Timeout > 0 {
		return cfg.Vision.Timeout
	}

	return defaultTimeout
}
