package config

import (
	"context"
	"fmt"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Source is one data file listed in a weekly manifest.
type Source struct {
	Name string
	Path string
}

type SourceRegistry interface {
	GetSources(ctx context.Context) ([]Source, error)
	GetSource(ctx context.Context, name string) (Source, error)
}

type iniRegistry struct {
	cfg *ini.File
	dir string
}

// NewSourceRegistry loads a manifest with one section per source, each carrying a path key.
// Relative paths are resolved against the manifest's directory.
func NewSourceRegistry(path string) (SourceRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
	}
	return &iniRegistry{cfg: cfg, dir: filepath.Dir(path)}, nil
}

// GetSources returns the sources in manifest order.
func (r *iniRegistry) GetSources(ctx context.Context) ([]Source, error) {
	var sources []Source
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		source, err := r.GetSource(ctx, section.Name())
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}

func (r *iniRegistry) GetSource(_ context.Context, name string) (Source, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return Source{}, fmt.Errorf("source %s not found", name)
	}

	path := section.Key("path").String()
	if path == "" {
		return Source{}, fmt.Errorf("source %s has no path", name)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.dir, path)
	}
	return Source{Name: name, Path: path}, nil
}
