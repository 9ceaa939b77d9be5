// Package gallery saves snapshots of rendered views alongside the
// navigation state that produced them.
package gallery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/mandelscope/internal/export"
	"github.com/san-kum/mandelscope/internal/fractal"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// ShotMetadata records where a snapshot was taken. It is enough to
// recreate the view via the render command but is never loaded back
// into a running explorer.
type ShotMetadata struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	CenterX    float64   `json:"center_x"`
	CenterY    float64   `json:"center_y"`
	Zoom       float64   `json:"zoom"`
	Iterations int       `json:"iterations"`
	Palette    string    `json:"palette"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
}

// Save writes the bitmap and its metadata under a timestamped directory
// and returns the shot ID.
func (s *Store) Save(bm *fractal.Bitmap, view fractal.Viewport, paletteName string) (string, error) {
	shotID := fmt.Sprintf("shot_%d", time.Now().Unix())
	shotDir := filepath.Join(s.baseDir, shotID)

	if err := os.MkdirAll(shotDir, 0755); err != nil {
		return "", err
	}

	meta := ShotMetadata{
		ID:         shotID,
		Timestamp:  time.Now(),
		CenterX:    view.CenterX,
		CenterY:    view.CenterY,
		Zoom:       view.Zoom,
		Iterations: view.MaxIter,
		Palette:    paletteName,
		Width:      bm.Width,
		Height:     bm.Height,
	}

	metaFile, err := os.Create(filepath.Join(shotDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := export.WritePNG(filepath.Join(shotDir, "image.png"), bm); err != nil {
		return "", err
	}
	return shotID, nil
}

// List returns the metadata of every stored shot, newest first.
func (s *Store) List() ([]ShotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var shots []ShotMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, e.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta ShotMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		shots = append(shots, meta)
	}

	sort.Slice(shots, func(i, j int) bool {
		return shots[i].Timestamp.After(shots[j].Timestamp)
	})
	return shots, nil
}
