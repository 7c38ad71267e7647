package icons

import (
	"path/filepath"

	"github.com/KirkDiggler/megastones/internal/helditem"
)

// Resolver picks an icon file for a held item
type Resolver struct {
	GameRoot   string
	Normalizer helditem.Normalizer
}

// IconFile keeps primary when it resolves. Otherwise it tries Graphics/Items/<TOKEN>
// for the normalized item and falls back to primary.
func (r *Resolver) IconFile(primary string, raw any) string {
	if primary != "" && r.exists(primary) {
		return primary
	}

	held := r.Normalizer.Normalize(raw)
	if held.Kind != helditem.KindToken {
		return primary
	}
	alt := ItemsDir + "/" + held.Token
	if r.exists(alt) {
		return alt
	}
	return primary
}

// exists accepts paths with or without the .png extension, relative to GameRoot
func (r *Resolver) exists(path string) bool {
	full := path
	if !filepath.IsAbs(full) {
		root := r.GameRoot
		if root == "" {
			root = "."
		}
		full = filepath.Join(root, filepath.FromSlash(path))
	}
	return fileExists(full) || fileExists(full+".png")
}
