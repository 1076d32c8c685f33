package service

import (
	"fmt"
	"path"
	"strings"
)

// Category adalah enum tertutup untuk folder aset di object storage.
type Category string

const (
	CategorySlider      Category = "slider"
	CategoryTeam        Category = "team"
	CategoryPartners    Category = "partners"
	CategoryProperties  Category = "properties"
	CategoryBackgrounds Category = "backgrounds"
	CategoryMisc        Category = "misc"
	CategoryBranding    Category = "branding"
)

// CategoryConfig menentukan perlakuan gambar per kategori.
// MaxWidth nil berarti tidak pernah di-resize (pass-through).
// ThumbWidth 0 berarti tidak ada thumbnail.
type CategoryConfig struct {
	MaxWidth   *int
	ThumbWidth int
}

func intPtr(v int) *int { return &v }

var categoryConfigs = map[Category]CategoryConfig{
	CategorySlider:      {MaxWidth: intPtr(1920)},
	CategoryTeam:        {MaxWidth: intPtr(800)},
	CategoryPartners:    {MaxWidth: intPtr(600)},
	CategoryProperties:  {MaxWidth: intPtr(1600), ThumbWidth: 400},
	CategoryBackgrounds: {MaxWidth: intPtr(1920)},
	CategoryMisc:        {MaxWidth: intPtr(1200)},
	CategoryBranding:    {MaxWidth: nil},
}

// ParseCategory memvalidasi string menjadi Category.
func ParseCategory(s string) (Category, error) {
	cat := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categoryConfigs[cat]; !ok {
		return "", fmt.Errorf("kategori tidak dikenal: %q", s)
	}
	return cat, nil
}

func ConfigFor(cat Category) CategoryConfig {
	return categoryConfigs[cat]
}

// folderCategory memetakan folder sumber ke kategori tujuan.
// Folder yang tidak terdaftar jatuh ke misc.
var folderCategory = map[string]Category{
	"slider":      CategorySlider,
	"sliders":     CategorySlider,
	"hero":        CategorySlider,
	"team":        CategoryTeam,
	"agents":      CategoryTeam,
	"partner":     CategoryPartners,
	"partners":    CategoryPartners,
	"property":    CategoryProperties,
	"properties":  CategoryProperties,
	"listings":    CategoryProperties,
	"background":  CategoryBackgrounds,
	"backgrounds": CategoryBackgrounds,
	"bg":          CategoryBackgrounds,
	"branding":    CategoryBranding,
	"logo":        CategoryBranding,
	"logos":       CategoryBranding,
}

// MapToKey memetakan path sumber (hasil upload lama / folder statis) ke
// key kanonis "{category}/{subfolder?}/{filename}".
//
// Subfolder sumber dipertahankan sebagai segmen path kecuali namanya sama
// dengan kategori tujuan (termasuk beda singular/plural "s" di salah satu
// sisi), supaya file bernama sama dari folder berbeda tidak saling timpa.
func MapToKey(sourcePath string) (Category, string) {
	p := strings.TrimPrefix(strings.TrimSpace(sourcePath), "/")
	p = strings.TrimPrefix(p, "public/")

	segments := make([]string, 0, 4)
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return CategoryMisc, ""
	}

	if len(segments) == 1 {
		name := segments[0]
		if isBrandingFile(name) {
			return CategoryBranding, path.Join(string(CategoryBranding), name)
		}
		return CategoryMisc, path.Join(string(CategoryMisc), name)
	}

	sourceFolder := strings.ToLower(segments[0])
	remainder := strings.Join(segments[1:], "/")

	category, ok := folderCategory[sourceFolder]
	if !ok {
		category = CategoryMisc
	}

	if isSameAsCategory(sourceFolder, category) {
		return category, path.Join(string(category), remainder)
	}
	return category, path.Join(string(category), sourceFolder, remainder)
}

// isBrandingFile: file di root storage yang merupakan aset branding
// (logo*.png, icon.svg, dst).
func isBrandingFile(name string) bool {
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "logo") {
		return true
	}
	ext := path.Ext(lower)
	return ext != "" && lower == "icon"+ext
}

// isSameAsCategory: folder sumber sama dengan kategori, atau hanya beda
// trailing "s" (singular/plural sederhana).
func isSameAsCategory(folder string, cat Category) bool {
	c := string(cat)
	return folder == c || folder+"s" == c || folder == c+"s"
}
