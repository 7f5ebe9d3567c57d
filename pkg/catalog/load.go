package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/ionut85/ai-marketing-tools-directory/pkg/common/jsoncompat"
	"github.com/ionut85/ai-marketing-tools-directory/pkg/types"
	log "github.com/sirupsen/logrus"
)

const (
	ToolsFile        = "tools.json"
	CategoriesFile   = "categories.json"
	UseCasesFile     = "useCases.json"
	DescriptionsFile = "categoryDescriptions.json"
)

func readJson(ctx context.Context, src Source, name string, out any, optional bool) error {
	data, err := src.Read(ctx, name)
	if err != nil {
		if optional && errors.Is(err, ErrNotFound) {
			log.WithField("document", name).Warn("optional catalog document missing")
			return nil
		}
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := jsoncompat.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

// Load reads and validates the catalog documents from src.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	var items []types.Item
	var categories []types.Category
	var useCases []types.UseCase
	descriptions := map[string]types.CategoryDescription{}

	if err := readJson(ctx, src, ToolsFile, &items, false); err != nil {
		return nil, err
	}
	if err := readJson(ctx, src, CategoriesFile, &categories, false); err != nil {
		return nil, err
	}
	if err := readJson(ctx, src, UseCasesFile, &useCases, true); err != nil {
		return nil, err
	}
	if err := readJson(ctx, src, DescriptionsFile, &descriptions, true); err != nil {
		return nil, err
	}

	c, err := New(items, categories, useCases, descriptions)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog from %s: %w", src, err)
	}
	log.WithFields(log.Fields{
		"source":     src.String(),
		"items":      c.Len(),
		"categories": len(c.Categories()),
		"useCases":   len(c.UseCases()),
	}).Info("catalog loaded")
	return c, nil
}
