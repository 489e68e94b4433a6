package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver resolves the word list, config and cache locations relative
// to the running binary.
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  filepath.Dir(execPath),
		homeDir:        homeDir,
		configDir:      getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		pr.executablePath, pr.executableDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordsolve")
		}
		return filepath.Join(homeDir, ".config", "wordsolve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordsolve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordsolve")
	case "darwin":
		return filepath.Join(homeDir, ".config", "wordsolve")
	default:
		return filepath.Join(homeDir, ".wordsolve")
	}
}

// WordListCandidates lists, in order of preference, where a word list named
// by the user may live:
// 1. the path itself when absolute
// 2. relative to the executable dir
// 3. relative to the working dir
// 4. the data/ dirs next to the executable and in the config dir
func (pr *PathResolver) WordListCandidates(userPath string) []string {
	var candidates []string
	if filepath.IsAbs(userPath) {
		return append(candidates, userPath)
	}
	candidates = append(candidates, filepath.Join(pr.executableDir, userPath))
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userPath))
	}
	base := filepath.Base(userPath)
	return append(candidates,
		filepath.Join(pr.executableDir, "data", base),
		filepath.Join(filepath.Dir(pr.executableDir), "data", base),
		filepath.Join(pr.configDir, "data", base),
	)
}

// GetWordListPath returns the first existing candidate for userPath. When
// none exists the executable-relative path is returned for error reporting.
func (pr *PathResolver) GetWordListPath(userPath string) string {
	candidates := pr.WordListCandidates(userPath)
	for _, path := range candidates {
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			log.Debugf("Found word list: %s", path)
			return path
		}
		log.Debugf("Word list candidate not found: %s", path)
	}
	return candidates[0]
}

// GetConfigPath returns the full path for a config file, falling back to
// other writable dirs when the config dir is read-only.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if pr.ensureDir(pr.configDir) {
		return filepath.Join(pr.configDir, filename), nil
	}
	fallbackDirs := []string{
		filepath.Join(pr.homeDir, ".wordsolve"),
		filepath.Join(os.TempDir(), "wordsolve"),
		pr.executableDir,
	}
	for _, dir := range fallbackDirs {
		if pr.ensureDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("Using fallback config location: %s", path)
			return path, nil
		}
	}
	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath, nil
}

// GetCacheDir resolves the dir used by the raw asset cache. Relative paths
// are taken from the config dir.
func (pr *PathResolver) GetCacheDir(userPath string) string {
	if userPath == "" {
		userPath = "cache"
	}
	if filepath.IsAbs(userPath) {
		return userPath
	}
	return filepath.Join(pr.configDir, userPath)
}

// ensureDir creates the directory if it doesn't exist and tests writability
func (pr *PathResolver) ensureDir(dir string) bool {
	result := CheckDirStatus(dir)
	if !result.Writable {
		log.Debugf("Directory %s is not usable: exists=%v err=%v", dir, result.Exists, result.Error)
	}
	return result.Writable
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
