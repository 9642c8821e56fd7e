package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/matt-g-everett/ledscan/scan"
	"github.com/matt-g-everett/ledscan/stream"
)

// Player is the part of the controller the API drives.
type Player interface {
	Submit(cmd stream.Command) error
	Snapshot() scan.Snapshot
}

type Api struct {
	player Player
	dir    string
}

func NewApi(player Player, dir string) *Api {
	a := new(Api)
	a.player = player
	a.dir = dir
	return a
}

// Handler routes the status and scan endpoints and serves the client
// pages from dir.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", a.handleStatus)
	mux.HandleFunc("/scan/", a.handleScan)
	if a.dir != "" {
		mux.Handle("/", http.FileServer(http.Dir(a.dir)))
	}
	return mux
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, a.player.Snapshot())
}

func (a *Api) handleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cmd, err := stream.ParseCommand(strings.TrimPrefix(r.URL.Path, "/scan/"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err := a.player.Submit(cmd); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, stream.ErrBusy) {
			status = http.StatusServiceUnavailable
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"command": string(cmd)})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println(err)
	}
}

func (a *Api) Serve(addr string) {
	log.Println("Listening...")
	if err := http.ListenAndServe(addr, a.Handler()); err != nil {
		log.Println(err)
	}
}
