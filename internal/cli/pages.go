package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/dimmer/internal/app/content"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/infrastructure/document"
	"github.com/bnema/dimmer/internal/infrastructure/pagehost"
	"github.com/bnema/dimmer/internal/logging"
)

// PageFile is a saved HTML page opened in the CLI's page host.
type PageFile struct {
	ID   entity.PageID
	Path string
	URL  string
	Doc  *document.HTML
	mode os.FileMode
}

// PageSession opens HTML files as pages so broadcasts and popup actions
// reach them, then writes them back.
type PageSession struct {
	host       *pagehost.Host
	repo       repository.SettingsRepository
	privileged []string
	files      []*PageFile
	loaded     func(context.Context, entity.Page)
}

// NewPageSession creates an empty session on host.
func NewPageSession(host *pagehost.Host, repo repository.SettingsRepository, privileged []string) *PageSession {
	return &PageSession{host: host, repo: repo, privileged: privileged}
}

// OnLoaded sets the navigation-complete hook run after each page is opened.
func (s *PageSession) OnLoaded(fn func(context.Context, entity.Page)) *PageSession {
	s.loaded = fn
	return s
}

// ParsePageSpec splits "file.html@https://example.com/" into its file path and
// page URL. Without a URL the page is addressed by its file:// URL.
func ParsePageSpec(spec string) (path, rawURL string, err error) {
	path, rawURL, _ = strings.Cut(spec, "@")
	path = strings.TrimSpace(path)
	rawURL = strings.TrimSpace(rawURL)
	if path == "" {
		return "", "", fmt.Errorf("page %q has no file", spec)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if rawURL == "" {
		rawURL = "file://" + filepath.ToSlash(abs)
	}
	return abs, rawURL, nil
}

// Open loads the page described by spec, attaches its content agent and lets
// the agent apply the load-time state.
func (s *PageSession) Open(ctx context.Context, spec string) (*PageFile, error) {
	path, rawURL, err := ParsePageSpec(spec)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer f.Close()

	doc, err := document.ParseHTML(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	id := s.host.Open(rawURL, filepath.Base(path), doc)
	page := &PageFile{ID: id, Path: path, URL: rawURL, Doc: doc, mode: info.Mode().Perm()}
	s.files = append(s.files, page)

	agent := content.NewAgent(id, rawURL, doc, s.repo, s.host, s.privileged)
	if err := agent.Attach(); err != nil {
		return nil, err
	}
	if err := agent.Load(ctx); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("url", rawURL).Msg("failed to style page on load")
	}
	if s.loaded != nil {
		s.loaded(ctx, entity.Page{ID: id, URL: rawURL, Title: filepath.Base(path)})
	}
	return page, nil
}

// OpenAll opens every spec in order. The first one becomes the active page.
func (s *PageSession) OpenAll(ctx context.Context, specs []string) error {
	for _, spec := range specs {
		if _, err := s.Open(ctx, spec); err != nil {
			return err
		}
	}
	return nil
}

// Files returns the opened pages in opening order.
func (s *PageSession) Files() []*PageFile {
	return s.files
}

// Save writes every opened page back to its file.
func (s *PageSession) Save() error {
	for _, p := range s.files {
		if err := WriteDocument(p.Path, p.Doc, p.mode); err != nil {
			return err
		}
	}
	return nil
}

// WriteDocument renders doc into path.
func WriteDocument(path string, doc *document.HTML, mode os.FileMode) error {
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	if mode == 0 {
		mode = 0o644
	}
	if err := os.WriteFile(path, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
