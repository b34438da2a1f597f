package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider in memory. Names are
// case-sensitive regardless of the host platform, which makes it suitable
// for exercising case-insensitive matching deterministically.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry // absolute slash path -> entry
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// Relative paths passed to its methods are resolved against root.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.entries[root] = newDirEntry(root)
	return mfs
}

func newDirEntry(absPath string) *memoryEntry {
	return &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

// Root returns the normalized root path.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a file to the in-memory filesystem, creating parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.abs(filePath)
	data := []byte(content)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.entries[absPath] = &memoryEntry{
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory, creating parent directories.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.abs(dirPath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if _, exists := mfs.entries[absPath]; !exists {
		mfs.entries[absPath] = newDirEntry(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddFiles adds a tree of files. Map values are either file content
// (string) or a nested map describing a subdirectory.
//
//	mfs.AddFiles(map[string]any{
//	    "scene": map[string]any{"agdc-metadata.yaml": "id: ..."},
//	    "scene.tif": "",
//	})
func (mfs *MemoryFileSystem) AddFiles(tree map[string]any) {
	mfs.addTree(mfs.root, tree)
}

func (mfs *MemoryFileSystem) addTree(dir string, tree map[string]any) {
	for name, v := range tree {
		p := path.Join(dir, name)
		switch node := v.(type) {
		case map[string]any:
			mfs.AddDir(p)
			mfs.addTree(p, node)
		case string:
			mfs.AddFile(p, node)
		default:
			panic(fmt.Sprintf("unsupported tree node %T at %s", v, p))
		}
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories.
// Caller must hold mu.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(p string) {
	dir := path.Dir(p)
	if dir == p {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}
	mfs.entries[dir] = newDirEntry(dir)
	mfs.ensureDirectoriesExist(dir)
}

// abs normalizes p to an absolute slash path within the virtual filesystem.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) lookup(op, p string) (*memoryEntry, error) {
	absPath := mfs.abs(p)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, &fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist}
	}
	return entry, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	entry, err := mfs.lookup("stat", statPath)
	if err != nil {
		return nil, err
	}
	return entry.info, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	entry, err := mfs.lookup("readdir", dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("failed to read directory: %w",
			&fs.PathError{Op: "readdir", Path: dirPath, Err: fmt.Errorf("not a directory")})
	}

	absPath := mfs.abs(dirPath)
	prefix := absPath + "/"
	if absPath == "/" {
		prefix = "/"
	}

	mfs.mu.RLock()
	var result []FileInfo
	for p, e := range mfs.entries {
		if p == absPath || !strings.HasPrefix(p, prefix) {
			continue
		}
		if strings.Contains(p[len(prefix):], "/") {
			continue
		}
		result = append(result, e.info)
	}
	mfs.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	entry, err := mfs.lookup("open", filePath)
	if err != nil {
		return nil, err
	}
	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return entry.content, nil
}
