package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nkahoots/beauty-bot/internal/skin"
)

// ProfileMarkdown builds the product view for a skin type. When imageDir is
// set, a product whose image file is missing is shown without its description.
func ProfileMarkdown(p skin.Profile, imageDir string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Products for %s Skin\n\n", p.Type.Label())
	fmt.Fprintf(&sb, "**Skin Type:** %s\n\n", p.Type.Label())
	fmt.Fprintf(&sb, "_%s_\n\n", p.BestTimeToWash)
	fmt.Fprintf(&sb, "## Description\n\n%s\n\n", p.Description)
	sb.WriteString("## Recommended Products\n\n")

	for i, prod := range p.Products {
		fmt.Fprintf(&sb, "### %d. %s\n\n", i+1, prod.Name)
		if !imageAvailable(imageDir, prod.Image) {
			sb.WriteString("Product Description: N/A\n\n")
			continue
		}
		fmt.Fprintf(&sb, "Product Description:\n%s\n\n", prod.Description)
	}

	sb.WriteString("Use /schedule to view your skincare schedule.\n")
	return sb.String()
}

// ScheduleMarkdown builds the daily schedule view for a skin type.
func ScheduleMarkdown(p skin.Profile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Daily Skincare Schedule for %s Skin\n\n", p.Type.Label())
	sb.WriteString(RoutineMarkdown(p.Schedule))
	sb.WriteString("\n")
	sb.WriteString(RoutineMarkdown(p.Tips))
	fmt.Fprintf(&sb, "\n### Best Times to Wash Face\n\n%s\n\n", p.BestTimeToWash)
	sb.WriteString("Use /remind to set a reminder for your routine.\n")
	return sb.String()
}

// TypesMarkdown lists every skin type with its summary.
func TypesMarkdown(profiles []skin.Profile) string {
	var sb strings.Builder
	sb.WriteString("# Skin Types\n\n")
	for _, p := range profiles {
		fmt.Fprintf(&sb, "- **%s**: %s\n", p.Type.Label(), strings.ReplaceAll(p.Summary, "\n", " "))
	}
	return sb.String()
}

func imageAvailable(imageDir, name string) bool {
	if imageDir == "" {
		return true
	}
	path := filepath.Join(imageDir, name)
	if _, err := os.Stat(path); err != nil {
		log.Printf("[content] Image not found: %s", path)
		return false
	}
	return true
}
