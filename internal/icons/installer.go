// Package icons installs stone icon files into the game's item graphics folder and
// resolves an icon path for a held item when the host's own lookup misses.
package icons

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/megastones/internal/diagnostics"
)

const (
	// AssetDirName is the folder that ships the stone icons
	AssetDirName = "MegaStoneIcons"

	// ItemsDir is the host's item graphics folder, relative to the game root
	ItemsDir = "Graphics/Items"
)

// Installer copies icons once per process
type Installer struct {
	// GameRoot is the host's working directory
	GameRoot string

	// ModDir is the directory the mod was loaded from; may be empty
	ModDir string

	Sink diagnostics.Sink

	done bool
}

// Result summarizes one EnsurePresent pass
type Result struct {
	AssetDir string
	Copied   []string
	Existing []string
	Missing  []string
	Failed   []string
}

// Done reports whether the pass already ran
func (in *Installer) Done() bool {
	return in.done
}

// Candidates lists the asset folders searched, in order
func (in *Installer) Candidates() []string {
	var out []string
	if in.ModDir != "" {
		out = append(out, filepath.Join(in.ModDir, AssetDirName))
	}
	root := in.root()
	return append(out,
		filepath.Join(root, "Mods", AssetDirName),
		filepath.Join(root, "mods", AssetDirName),
		filepath.Join(root, AssetDirName),
	)
}

// EnsurePresent copies <TOKEN>.png for every token whose destination is missing.
// It runs once; later calls return nil.
func (in *Installer) EnsurePresent(tokens []string) *Result {
	if in.done {
		return nil
	}
	in.done = true
	sink := in.sink()

	itemsDir := filepath.Join(in.root(), filepath.FromSlash(ItemsDir))
	if err := os.MkdirAll(itemsDir, 0o755); err != nil {
		sink.Error(err, "icons: create items dir")
	}

	candidates := in.Candidates()
	assetDir := ""
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			assetDir = dir
			break
		}
	}
	if assetDir == "" {
		sink.Logf("No icon asset folder found; tried: %s", strings.Join(candidates, " | "))
		return &Result{}
	}
	sink.Logf("Icon copy: assets_dir=%s items_dir=%s", assetDir, itemsDir)

	res := &Result{AssetDir: assetDir}
	for _, token := range tokens {
		src := findSource(assetDir, token)
		if src == "" {
			sink.Logf("Icon: %s SOURCE MISSING (looked for %s)", token, filepath.Join(assetDir, token+".png"))
			res.Missing = append(res.Missing, token)
			continue
		}

		dst := filepath.Join(itemsDir, token+".png")
		if fileExists(dst) {
			sink.Logf("Icon: %s DEST EXISTS (%s) [skip]", token, dst)
			res.Existing = append(res.Existing, token)
			continue
		}
		if err := copyFile(src, dst); err != nil {
			sink.Logf("Icon: %s COPY FAILED -> %s", token, dst)
			sink.Error(err, fmt.Sprintf("icons: copy %s", token))
			res.Failed = append(res.Failed, token)
			continue
		}
		sink.Logf("Icon: %s COPIED -> %s", token, dst)
		res.Copied = append(res.Copied, token)
	}

	if len(res.Copied) > 0 {
		sink.Logf("Icon copy result: COPIED AT LEAST ONE FILE")
	} else {
		sink.Logf("Icon copy result: NOTHING COPIED")
	}
	return res
}

func (in *Installer) root() string {
	if in.GameRoot == "" {
		return "."
	}
	return in.GameRoot
}

func (in *Installer) sink() diagnostics.Sink {
	if in.Sink == nil {
		return diagnostics.Nop{}
	}
	return in.Sink
}

func findSource(assetDir, token string) string {
	lower := strings.ToLower(token)
	for _, name := range []string{token + ".png", token + ".PNG", lower + ".png", lower + ".PNG"} {
		p := filepath.Join(assetDir, name)
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// copyFile writes dst from src and refuses to overwrite
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}
