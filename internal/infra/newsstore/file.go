package newsstore

import (
	"context"
	"encoding/json"
	"os"

	"bakery-preorder/internal/domain/news"
	"bakery-preorder/internal/pkg/config"
	"bakery-preorder/internal/pkg/errs"
)

var ErrUnknownKind = errs.New("unknown news kind")

// FileSource reads the static news lists the site ships as JSON documents.
type FileSource struct {
	updatesPath string
	eventsPath  string
}

func NewFileSource(cfg config.NewsConfig) *FileSource {
	return &FileSource{
		updatesPath: cfg.UpdatesPath,
		eventsPath:  cfg.EventsPath,
	}
}

func (s *FileSource) Load(_ context.Context, kind news.Kind) ([]news.Entry, error) {
	var path string
	switch kind {
	case news.KindUpdate:
		path = s.updatesPath
	case news.KindEvent:
		path = s.eventsPath
	default:
		return nil, ErrUnknownKind
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read news file")
	}

	var entries []news.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errs.Wrap(err, "failed to parse news file")
	}
	return entries, nil
}
