// Package playbackqueue serves already-computed detector output to a
// local client UI over a websocket connection, authenticated with a
// bearer JWT. It never streams a replay whose decode is still in
// progress; only finished Computer output is queued, grounded on the
// connection-handling shape of abrahamVado-DriftPursuit's go-broker.
package playbackqueue

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// Entry is one flattened playback-queue row: a match header prefix plus
// the originating frame index and the detector record itself.
type Entry struct {
	Fingerprint string      `json:"fingerprint"`
	Port        int         `json:"port"`
	Kind        string      `json:"kind"`
	FrameIndex  int         `json:"frame_index"`
	Record      interface{} `json:"record"`
}

// Server authenticates websocket clients with a bearer JWT signed by
// SigningKey and streams queued Entry values to them in the order Broadcast
// is called.
type Server struct {
	SigningKey []byte

	mu      sync.Mutex
	clients map[string]chan Entry
}

// NewServer creates a Server that validates connections against
// signingKey.
func NewServer(signingKey []byte) *Server {
	return &Server{
		SigningKey: signingKey,
		clients:    make(map[string]chan Entry),
	}
}

// Broadcast pushes entry to every currently-connected client whose send
// buffer has room; a client whose buffer is full does not receive it.
func (s *Server) Broadcast(entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.clients {
		select {
		case ch <- entry:
		default:
		}
	}
}

// ServeHTTP upgrades the request to a websocket connection after
// validating the bearer JWT carried in the Authorization header, then
// streams queued entries to the client until it disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" || !s.validToken(token) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	clientID := uuid.NewString()
	send := make(chan Entry, 64)
	s.mu.Lock()
	s.clients[clientID] = send
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, clientID)
		s.mu.Unlock()
	}()

	for entry := range send {
		payload, err := json.Marshal(entry)
		if err != nil {
			continue
		}
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimPrefix(h, prefix)
}

func (s *Server) validToken(raw string) bool {
	_, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.SigningKey, nil
	})
	return err == nil
}
