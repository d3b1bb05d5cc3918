// Package context provides the shared state for a multi-file extraction run.
//
// All pipeline phases are stateless workers; a Context is the single
// registry of inputs and their per-file results. Each file carries its own
// diagnostic bag, so files can be processed in parallel with no shared
// mutable state beyond the registry itself.
package context

import (
	"os"
	"path/filepath"
	"sync"
)

// Context is the central hub for one extraction session spanning one or
// more input files.
type Context struct {
	// Files maps absolute file path -> SourceFile. The single registry
	// of all inputs in the session.
	Files map[string]*SourceFile

	// FileOrder tracks the order files were added, for deterministic output.
	FileOrder []string

	// Options - session configuration
	Options Options

	pipeline *Pipeline
	mu       sync.RWMutex
}

// SourceFile is one input through all pipeline phases. The Result attached
// after a run carries the tokens' products (AST, widgets) and the file's
// own diagnostic bag.
type SourceFile struct {
	Path    string // Absolute file path
	Content string // Raw source text
	Result  Result
	Done    bool
}

// New creates a session context with the given options.
func New(options Options) *Context {
	return &Context{
		Files:    make(map[string]*SourceFile),
		Options:  options,
		pipeline: NewPipeline(options),
	}
}

// AddFile registers an in-memory source text.
func (c *Context) AddFile(path, content string) *SourceFile {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.Files[path]; ok {
		return existing
	}

	file := &SourceFile{Path: path, Content: content}
	c.Files[path] = file
	c.FileOrder = append(c.FileOrder, path)
	return file
}

// LoadFile reads a file from disk and registers it.
func (c *Context) LoadFile(path string) (*SourceFile, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return c.AddFile(absPath, string(content)), nil
}

// GetAllFiles returns the registered files in registration order.
func (c *Context) GetAllFiles() []*SourceFile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	files := make([]*SourceFile, 0, len(c.FileOrder))
	for _, path := range c.FileOrder {
		files = append(files, c.Files[path])
	}
	return files
}

// RunAll executes the pipeline for every registered file and attaches the
// results. Files are independent; this runs them sequentially, and the
// cmd runner fans out in parallel when asked to.
func (c *Context) RunAll() {
	for _, file := range c.GetAllFiles() {
		c.RunOne(file)
	}
}

// RunOne executes the pipeline for a single registered file.
func (c *Context) RunOne(file *SourceFile) {
	file.Result = c.pipeline.Run(file.Path, file.Content)
	file.Done = true
}

// HasErrors reports whether any file's run recorded an error.
func (c *Context) HasErrors() bool {
	for _, file := range c.GetAllFiles() {
		if file.Done && !file.Result.Success {
			return true
		}
	}
	return false
}
